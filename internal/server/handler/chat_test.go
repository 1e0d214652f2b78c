package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexchat/internal/chat"
	"nexchat/internal/enrich"
	"nexchat/internal/session"
)

// neutralClient answers every capability with a minimal valid payload.
type neutralClient struct{}

func (neutralClient) Name() string { return "neutral" }
func (neutralClient) Close() error { return nil }
func (neutralClient) GenerateJSON(ctx context.Context, capability enrich.Capability, prompt string, input any) (json.RawMessage, error) {
	switch capability {
	case enrich.CapabilityAnimation:
		return json.Marshal(enrich.AnimationResult{AnimationType: "fade"})
	case enrich.CapabilitySentiment:
		return json.Marshal(enrich.SentimentResult{Sentiment: "neutral", EmotionEmoji: "🙂"})
	default:
		return json.Marshal(map[string]any{})
	}
}

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	store := session.NewStore(chat.NewSeed(time.Now()), nil, nil)
	svc := session.NewService(store, neutralClient{}, nil, nil)
	h := NewChatHandler(svc, nil)

	r := mux.NewRouter()
	r.HandleFunc("/api/contacts", h.HandleListContacts).Methods(http.MethodGet)
	r.HandleFunc("/api/chats/{id}", h.HandleGetChat).Methods(http.MethodGet)
	r.HandleFunc("/api/chats/{id}/select", h.HandleSelectChat).Methods(http.MethodPost)
	r.HandleFunc("/api/chats/{id}/messages", h.HandleSendMessage).Methods(http.MethodPost)
	r.HandleFunc("/api/chats/{id}/votes", h.HandleCastVote).Methods(http.MethodPost)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleSendMessage(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/chats/chat-2/messages", map[string]string{"text": "hello there"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var msg chat.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Equal(t, "hello there", msg.Text)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, chat.AnimationFadeIn, msg.Animation)

	rec = doJSON(t, r, http.MethodPost, "/api/chats/chat-404/messages", map[string]string{"text": "hi"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/chats/chat-2/messages", map[string]string{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCastVote(t *testing.T) {
	r := newTestRouter(t)
	body := map[string]string{"pollId": "poll-1", "optionId": "opt-1"}

	rec := doJSON(t, r, http.MethodPost, "/api/chats/chat-3/votes", body)
	require.Equal(t, http.StatusOK, rec.Code)
	var first castVoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	assert.Equal(t, "recorded", first.Status)

	// Same local voter again: informational outcome, not an error.
	rec = doJSON(t, r, http.MethodPost, "/api/chats/chat-3/votes", body)
	require.Equal(t, http.StatusOK, rec.Code)
	var second castVoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.Equal(t, "already voted", second.Status)

	rec = doJSON(t, r, http.MethodPost, "/api/chats/chat-3/votes", map[string]string{"pollId": "poll-404", "optionId": "opt-1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListContacts(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/contacts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var contacts []chat.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contacts))
	require.Len(t, contacts, 3)
	for _, c := range contacts {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.LastMessage)
	}
}

func TestHandleSelectChat_UnknownIsNoOp(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/chats/chat-404/select", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandleGetChat(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/chats/chat-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var c chat.Chat
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "chat-1", c.ID)
	assert.NotEmpty(t, c.Messages)

	rec = doJSON(t, r, http.MethodGet, "/api/chats/chat-404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
