package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"nexchat/internal/session"
)

// ChatHandler serves the session store's REST surface.
type ChatHandler struct {
	svc    *session.Service
	logger *zap.Logger
}

func NewChatHandler(svc *session.Service, logger *zap.Logger) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{svc: svc, logger: logger}
}

// HandleListContacts returns the derived contact view for every chat.
func (h *ChatHandler) HandleListContacts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Store().ListContacts())
}

// HandleListChats returns every thread with its full transcript.
func (h *ChatHandler) HandleListChats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Store().Chats())
}

// HandleGetChat returns one thread by id.
func (h *ChatHandler) HandleGetChat(w http.ResponseWriter, r *http.Request) {
	c, ok := h.svc.Store().Chat(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "chat not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// HandleSelectChat sets the active thread. Selecting an unknown chat
// changes nothing; the response is 204 either way.
func (h *ChatHandler) HandleSelectChat(w http.ResponseWriter, r *http.Request) {
	h.svc.Store().SelectChat(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

// HandleSendMessage appends a message from the local user, with best-effort
// animation classification before commit.
func (h *ChatHandler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	msg, err := h.svc.SendMessage(r.Context(), mux.Vars(r)["id"], req.Text)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

type sendPollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// HandleSendPoll appends a poll message.
func (h *ChatHandler) HandleSendPoll(w http.ResponseWriter, r *http.Request) {
	var req sendPollRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Options) < 2 {
		writeError(w, http.StatusBadRequest, "a poll needs at least two options")
		return
	}
	msg, err := h.svc.SendPoll(mux.Vars(r)["id"], req.Question, req.Options)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

type castVoteRequest struct {
	PollID   string `json:"pollId"`
	OptionID string `json:"optionId"`
}

type castVoteResponse struct {
	Status string `json:"status"`
	Shares any    `json:"shares,omitempty"`
}

// HandleCastVote records the local user's vote. A double vote is not an
// error at the transport level; it comes back as an informational outcome.
func (h *ChatHandler) HandleCastVote(w http.ResponseWriter, r *http.Request) {
	var req castVoteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	store := h.svc.Store()
	shares, err := store.CastVote(mux.Vars(r)["id"], req.PollID, req.OptionID, store.Self().ID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, castVoteResponse{Status: "recorded", Shares: shares})
	case errors.Is(err, session.ErrAlreadyVoted):
		writeJSON(w, http.StatusOK, castVoteResponse{Status: "already voted"})
	default:
		h.respondStoreError(w, err)
	}
}

type autoReplyRequest struct {
	Routine string `json:"routine"`
}

// HandleAutoReply generates and appends a routine-based reply.
func (h *ChatHandler) HandleAutoReply(w http.ResponseWriter, r *http.Request) {
	var req autoReplyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	msg, err := h.svc.AutoReply(r.Context(), mux.Vars(r)["id"], req.Routine)
	if err != nil {
		if errors.Is(err, session.ErrChatNotFound) {
			writeError(w, http.StatusNotFound, "chat not found")
			return
		}
		h.logger.Warn("auto-reply generation failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "auto-reply unavailable")
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

// HandleMoodTheme classifies the chat's mood. It always succeeds, falling
// back to the default theme.
func (h *ChatHandler) HandleMoodTheme(w http.ResponseWriter, r *http.Request) {
	theme := h.svc.MoodTheme(r.Context(), mux.Vars(r)["id"])
	writeJSON(w, http.StatusOK, map[string]string{"theme": theme})
}

func (h *ChatHandler) respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrChatNotFound),
		errors.Is(err, session.ErrPollNotFound),
		errors.Is(err, session.ErrOptionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrEmptyMessage):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
