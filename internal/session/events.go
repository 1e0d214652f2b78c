package session

import "nexchat/internal/chat"

// EventKind labels a session event pushed to subscribers.
type EventKind string

const (
	EventMessageAppended   EventKind = "message_appended"
	EventEnrichmentApplied EventKind = "enrichment_applied"
	EventVoteRecorded      EventKind = "vote_recorded"
	EventChatSelected      EventKind = "chat_selected"
)

// Event is one committed state transition. Events describe state that has
// already been applied; they never precede the mutation they report.
type Event struct {
	Kind      EventKind          `json:"kind"`
	ChatID    string             `json:"chatId,omitempty"`
	Message   *chat.Message      `json:"message,omitempty"`
	MessageID string             `json:"messageId,omitempty"`
	Emotion   string             `json:"emotion,omitempty"`
	PollID    string             `json:"pollId,omitempty"`
	OptionID  string             `json:"optionId,omitempty"`
	Shares    []chat.OptionShare `json:"shares,omitempty"`
}
