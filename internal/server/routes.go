package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nexchat/internal/server/handler"
	"nexchat/internal/server/middleware"
)

func NewRouter(
	chatHandler *handler.ChatHandler,
	enrichHandler *handler.EnrichHandler,
	marketHandler *handler.MarketHandler,
	wsHandler *handler.SessionWSHandler,
) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler())

	api := r.PathPrefix("/api").Subrouter()

	// Session surface
	api.HandleFunc("/contacts", chatHandler.HandleListContacts).Methods(http.MethodGet)
	api.HandleFunc("/chats", chatHandler.HandleListChats).Methods(http.MethodGet)
	api.HandleFunc("/chats/{id}", chatHandler.HandleGetChat).Methods(http.MethodGet)
	api.HandleFunc("/chats/{id}/select", chatHandler.HandleSelectChat).Methods(http.MethodPost)
	api.HandleFunc("/chats/{id}/messages", chatHandler.HandleSendMessage).Methods(http.MethodPost)
	api.HandleFunc("/chats/{id}/polls", chatHandler.HandleSendPoll).Methods(http.MethodPost)
	api.HandleFunc("/chats/{id}/votes", chatHandler.HandleCastVote).Methods(http.MethodPost)
	api.HandleFunc("/chats/{id}/autoreply", chatHandler.HandleAutoReply).Methods(http.MethodPost)
	api.HandleFunc("/chats/{id}/mood", chatHandler.HandleMoodTheme).Methods(http.MethodGet)

	// Enrichment capabilities
	api.HandleFunc("/enrich/summarize", enrichHandler.HandleSummarize).Methods(http.MethodPost)
	api.HandleFunc("/enrich/translate", enrichHandler.HandleTranslate).Methods(http.MethodPost)
	api.HandleFunc("/enrich/sentiment", enrichHandler.HandleSentiment).Methods(http.MethodPost)
	api.HandleFunc("/enrich/rewrite", enrichHandler.HandleRewrite).Methods(http.MethodPost)
	api.HandleFunc("/enrich/fact-check", enrichHandler.HandleFactCheck).Methods(http.MethodPost)
	api.HandleFunc("/enrich/schedule", enrichHandler.HandleSchedule).Methods(http.MethodPost)
	api.HandleFunc("/enrich/poll-analysis", enrichHandler.HandlePollAnalysis).Methods(http.MethodPost)
	api.HandleFunc("/enrich/avatar", enrichHandler.HandleAvatar).Methods(http.MethodPost)
	api.HandleFunc("/enrich/animation", enrichHandler.HandleAnimation).Methods(http.MethodPost)
	api.HandleFunc("/enrich/auto-reply", enrichHandler.HandleAutoReply).Methods(http.MethodPost)
	api.HandleFunc("/enrich/mood-theme", enrichHandler.HandleMoodTheme).Methods(http.MethodPost)

	// Marketplace
	api.HandleFunc("/marketplace/listings", marketHandler.HandleListings).Methods(http.MethodGet)
	api.HandleFunc("/marketplace/requests", marketHandler.HandleRequests).Methods(http.MethodGet)
	api.HandleFunc("/marketplace/hub", marketHandler.HandleHub).Methods(http.MethodGet)

	// Session event stream
	r.HandleFunc("/ws/session", wsHandler.HandleSessionWS)

	return middleware.CORS(r)
}
