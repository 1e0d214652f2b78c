package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"nexchat/internal/session"
)

const (
	sessionWSWriteWait = 10 * time.Second
	sessionWSPongWait  = 60 * time.Second
	sessionWSPingEvery = (sessionWSPongWait * 9) / 10
)

var sessionWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type sessionWSInbound struct {
	Type     string `json:"type"`
	ChatID   string `json:"chatId,omitempty"`
	Text     string `json:"text,omitempty"`
	PollID   string `json:"pollId,omitempty"`
	OptionID string `json:"optionId,omitempty"`
}

type sessionWSOutbound struct {
	Type    string         `json:"type"`
	Event   *session.Event `json:"event,omitempty"`
	Code    string         `json:"code,omitempty"`
	Message string         `json:"message,omitempty"`
}

// SessionWSHandler streams committed session events to the UI and accepts
// the same operations the REST surface offers. Events are pushed after the
// mutation commits, so the stream never reorders or front-runs state.
type SessionWSHandler struct {
	svc    *session.Service
	logger *zap.Logger
}

func NewSessionWSHandler(svc *session.Service, logger *zap.Logger) *SessionWSHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionWSHandler{svc: svc, logger: logger}
}

func (h *SessionWSHandler) HandleSessionWS(w http.ResponseWriter, r *http.Request) {
	conn, err := sessionWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(sessionWSPongWait)); err != nil {
		h.logger.Debug("session ws set read deadline failed", zap.Error(err))
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(sessionWSPongWait))
	})

	writeCh := make(chan sessionWSOutbound, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(sessionWSPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(sessionWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(sessionWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	events, unsubscribe := h.svc.Store().Subscribe(64)
	defer unsubscribe()

	pushSessionWS(writeCh, sessionWSOutbound{Type: "subscribed"})

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				evCopy := ev
				pushSessionWS(writeCh, sessionWSOutbound{Type: "event", Event: &evCopy})
			}
		}
	}()

	for {
		var in sessionWSInbound
		if err := conn.ReadJSON(&in); err != nil {
			cancel()
			<-writerDone
			return
		}
		switch strings.ToLower(strings.TrimSpace(in.Type)) {
		case "ping":
			pushSessionWS(writeCh, sessionWSOutbound{Type: "pong"})
		case "select":
			h.svc.Store().SelectChat(in.ChatID)
		case "send":
			if _, err := h.svc.SendMessage(ctx, in.ChatID, in.Text); err != nil {
				pushSessionWS(writeCh, sessionWSOutbound{
					Type:    "error",
					Code:    "invalid_argument",
					Message: err.Error(),
				})
			}
		case "vote":
			store := h.svc.Store()
			_, err := store.CastVote(in.ChatID, in.PollID, in.OptionID, store.Self().ID)
			switch {
			case err == nil:
			case errors.Is(err, session.ErrAlreadyVoted):
				pushSessionWS(writeCh, sessionWSOutbound{
					Type:    "notice",
					Code:    "already_voted",
					Message: "already voted",
				})
			default:
				pushSessionWS(writeCh, sessionWSOutbound{
					Type:    "error",
					Code:    "not_found",
					Message: err.Error(),
				})
			}
		default:
			pushSessionWS(writeCh, sessionWSOutbound{
				Type:    "error",
				Code:    "invalid_argument",
				Message: "unsupported type: " + in.Type,
			})
		}
	}
}

func pushSessionWS(writeCh chan sessionWSOutbound, out sessionWSOutbound) {
	select {
	case writeCh <- out:
		return
	default:
	}
	select {
	case <-writeCh:
	default:
	}
	select {
	case writeCh <- out:
	default:
	}
}
