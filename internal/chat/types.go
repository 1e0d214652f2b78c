// Package chat holds the NexChat domain entities and the pure helpers that
// operate on them. Everything here is plain data owned by the session store;
// ownership is strictly tree-shaped (Chat -> Message -> Poll -> PollOption)
// and nothing holds a back-reference.
package chat

import "strings"

// User is a chat participant. Immutable once created within a session.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	IsOnline bool   `json:"isOnline,omitempty"`
}

// PollOption is a single votable answer.
type PollOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// Poll is embedded in exactly one message. Vote counts only ever increase.
type Poll struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Options  []PollOption `json:"options"`
}

// Message belongs to exactly one chat. After commit it is only ever touched
// to attach an enrichment result (emotion, animation); there is no delete
// path and no edit path.
type Message struct {
	ID        string    `json:"id"`
	Sender    User      `json:"sender"`
	Text      string    `json:"text"`
	Timestamp int64     `json:"timestamp"`
	Emotion   string    `json:"emotion,omitempty"`
	Animation Animation `json:"animation,omitempty"`
	Poll      *Poll     `json:"poll,omitempty"`
}

// HasPoll reports whether the message carries an embedded poll.
func (m *Message) HasPoll() bool { return m != nil && m.Poll != nil }

// Chat is one thread. Messages are append-only; insertion order is display
// order.
type Chat struct {
	ID       string    `json:"id"`
	Users    []User    `json:"users"`
	Messages []Message `json:"messages"`
	IsGroup  bool      `json:"isGroup"`
	Name     string    `json:"name,omitempty"`
}

// DisplayName resolves the name shown for a chat from the perspective of
// selfID: group chats use their own name (or a generic label when unset),
// direct chats use the other participant's name.
func (c *Chat) DisplayName(selfID string) string {
	if c.IsGroup {
		if strings.TrimSpace(c.Name) != "" {
			return c.Name
		}
		return GroupChatLabel
	}
	if other, ok := c.OtherParticipant(selfID); ok {
		return other.Name
	}
	return c.Name
}

// OtherParticipant returns the first participant that is not selfID.
func (c *Chat) OtherParticipant(selfID string) (User, bool) {
	for _, u := range c.Users {
		if u.ID != selfID {
			return u, true
		}
	}
	return User{}, false
}

// FindPoll locates a poll by id within the chat's message sequence.
func (c *Chat) FindPoll(pollID string) (*Poll, bool) {
	for i := range c.Messages {
		if p := c.Messages[i].Poll; p != nil && p.ID == pollID {
			return p, true
		}
	}
	return nil, false
}

// Clone deep-copies the chat so callers can hand it across a goroutine
// boundary without sharing the store's backing slices.
func (c *Chat) Clone() Chat {
	cp := *c
	cp.Users = append([]User(nil), c.Users...)
	cp.Messages = CloneMessages(c.Messages)
	return cp
}

// CloneMessages deep-copies a message sequence including embedded polls.
func CloneMessages(msgs []Message) []Message {
	if msgs == nil {
		return nil
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	for i := range out {
		out[i].Poll = ClonePoll(out[i].Poll)
	}
	return out
}

// ClonePoll deep-copies a poll; nil stays nil.
func ClonePoll(p *Poll) *Poll {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Options = append([]PollOption(nil), p.Options...)
	return &cp
}

// GroupChatLabel is the fallback display name for unnamed group chats.
const GroupChatLabel = "Group Chat"

// NoMessagesPlaceholder is the contact preview for an empty chat.
const NoMessagesPlaceholder = "No messages yet"

// PreviewLimit bounds the contact list's last-message preview.
const PreviewLimit = 30

// Contact is a derived, read-only projection of a chat for list display.
// It is recomputed from the owning chat on demand and never stored.
type Contact struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	IsOnline    bool   `json:"isOnline,omitempty"`
	LastMessage string `json:"lastMessage"`
}

// Preview shortens a message body for the contact list. Texts longer than
// PreviewLimit are cut at a rune boundary and ellipsized.
func Preview(text string) string {
	if strings.TrimSpace(text) == "" {
		return NoMessagesPlaceholder
	}
	runes := []rune(text)
	if len(runes) <= PreviewLimit {
		return text
	}
	return string(runes[:PreviewLimit]) + "..."
}
