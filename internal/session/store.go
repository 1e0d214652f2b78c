// Package session owns the in-memory chat session: every thread, the active
// selection, poll vote bookkeeping and the event stream the UI consumes.
// All state lives for exactly one session; nothing is persisted.
package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"nexchat/internal/chat"
)

var (
	ErrChatNotFound   = errors.New("session: chat not found")
	ErrPollNotFound   = errors.New("session: poll not found")
	ErrOptionNotFound = errors.New("session: poll option not found")
	ErrAlreadyVoted   = errors.New("session: already voted")
	ErrEmptyMessage   = errors.New("session: empty message")
)

// Draft is the caller-supplied part of a message. The store assigns id and
// timestamp at commit time.
type Draft struct {
	Sender    chat.User
	Text      string
	Emotion   string
	Animation chat.Animation
	Poll      *chat.Poll
}

// Store is the single source of truth for all chat threads. Every mutation
// is one synchronous transition under the lock, so no two operations ever
// interleave mid-way and derived views always reflect committed state.
type Store struct {
	mu     sync.RWMutex
	logger *zap.Logger

	self     chat.User
	chats    map[string]*chat.Chat
	order    []string
	activeID string

	// voted tracks chatID+pollID -> voterID so each voter increments a
	// poll at most once per session. Keys carry the chat id because the
	// seed embeds the same poll id in more than one chat as independent
	// copies, and each copy takes its own vote.
	voted map[string]map[string]bool

	// clock hands out strictly increasing timestamps even when two appends
	// land within the same millisecond.
	clock int64

	// enrichSeq tracks the most recent enrichment request per message so a
	// superseded completion is discarded at apply time.
	enrichSeq map[string]uint64

	subs    map[int]chan Event
	nextSub int
	newID   func() string
}

// NewStore seeds a session. newID generates message ids; pass nil for the
// default uuid-based generator.
func NewStore(seed chat.Seed, newID func() string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if newID == nil {
		newID = defaultNewID
	}
	s := &Store{
		logger:    logger,
		self:      seed.Self,
		chats:     make(map[string]*chat.Chat, len(seed.Chats)),
		voted:     make(map[string]map[string]bool),
		enrichSeq: make(map[string]uint64),
		subs:      make(map[int]chan Event),
		newID:     newID,
	}
	for i := range seed.Chats {
		c := seed.Chats[i].Clone()
		s.chats[c.ID] = &c
		s.order = append(s.order, c.ID)
	}
	s.activeID = seed.Active
	if _, ok := s.chats[s.activeID]; !ok && len(s.order) > 0 {
		s.activeID = s.order[0]
	}
	return s
}

// Self returns the local user.
func (s *Store) Self() chat.User {
	return s.self
}

// SelectChat sets the active thread. An unknown id is a silent no-op; the
// returned bool reports whether the selection changed.
func (s *Store) SelectChat(chatID string) bool {
	s.mu.Lock()
	if _, ok := s.chats[chatID]; !ok || s.activeID == chatID {
		s.mu.Unlock()
		return false
	}
	s.activeID = chatID
	s.mu.Unlock()
	s.publish(Event{Kind: EventChatSelected, ChatID: chatID})
	return true
}

// ActiveChat returns a deep copy of the currently active thread.
func (s *Store) ActiveChat() (chat.Chat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.chats[s.activeID]
	if !ok {
		return chat.Chat{}, false
	}
	return c.Clone(), true
}

// Chat returns a deep copy of one thread by id.
func (s *Store) Chat(chatID string) (chat.Chat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.chats[chatID]
	if !ok {
		return chat.Chat{}, false
	}
	return c.Clone(), true
}

// Chats returns deep copies of every thread in seed order.
func (s *Store) Chats() []chat.Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]chat.Chat, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.chats[id].Clone())
	}
	return out
}

// AppendMessage commits a draft to the target chat, assigning id and a
// strictly monotonic timestamp at call time. Arrival order is display
// order; the committed message is returned.
func (s *Store) AppendMessage(chatID string, draft Draft) (chat.Message, error) {
	if strings.TrimSpace(draft.Text) == "" && draft.Poll == nil {
		return chat.Message{}, ErrEmptyMessage
	}
	s.mu.Lock()
	c, ok := s.chats[chatID]
	if !ok {
		s.mu.Unlock()
		return chat.Message{}, ErrChatNotFound
	}
	anim := draft.Animation
	if anim == "" {
		anim = chat.AnimationFadeIn
	}
	msg := chat.Message{
		ID:        s.newID(),
		Sender:    draft.Sender,
		Text:      draft.Text,
		Timestamp: s.nextTimestamp(),
		Emotion:   draft.Emotion,
		Animation: anim,
		Poll:      chat.ClonePoll(draft.Poll),
	}
	c.Messages = append(c.Messages, msg)
	committed := msg
	committed.Poll = chat.ClonePoll(msg.Poll)
	s.mu.Unlock()

	ev := committed
	s.publish(Event{Kind: EventMessageAppended, ChatID: chatID, Message: &ev})
	return committed, nil
}

// CastVote increments exactly the named option once per voter per chat's
// poll instance.
// A repeat vote returns ErrAlreadyVoted and leaves every count unchanged;
// unresolved ids return not-found errors and mutate nothing.
func (s *Store) CastVote(chatID, pollID, optionID, voterID string) ([]chat.OptionShare, error) {
	s.mu.Lock()
	c, ok := s.chats[chatID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrChatNotFound
	}
	poll, ok := c.FindPoll(pollID)
	if !ok {
		s.mu.Unlock()
		return nil, ErrPollNotFound
	}
	idx := -1
	for i := range poll.Options {
		if poll.Options[i].ID == optionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil, ErrOptionNotFound
	}
	key := voteKey(chatID, pollID)
	if s.voted[key][voterID] {
		s.mu.Unlock()
		return nil, ErrAlreadyVoted
	}
	poll.Options[idx].Votes++
	if s.voted[key] == nil {
		s.voted[key] = make(map[string]bool)
	}
	s.voted[key][voterID] = true
	shares := chat.ComputePercentages(poll.Options)
	s.mu.Unlock()

	s.publish(Event{Kind: EventVoteRecorded, ChatID: chatID, PollID: pollID, OptionID: optionID, Shares: shares})
	return shares, nil
}

// HasVoted reports whether the voter already voted on the chat's poll this
// session.
func (s *Store) HasVoted(chatID, pollID, voterID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.voted[voteKey(chatID, pollID)][voterID]
}

func voteKey(chatID, pollID string) string {
	return chatID + "\x00" + pollID
}

// ListContacts projects every chat into its contact view. The projection is
// computed from committed state under the lock, so it can never lag a
// mutation.
func (s *Store) ListContacts() []chat.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]chat.Contact, 0, len(s.order))
	for _, id := range s.order {
		c := s.chats[id]
		contact := chat.Contact{
			ID:          c.ID,
			Name:        c.DisplayName(s.self.ID),
			LastMessage: chat.NoMessagesPlaceholder,
		}
		if c.IsGroup {
			contact.IsOnline = true
			contact.Avatar = s.groupAvatar()
		} else if other, ok := c.OtherParticipant(s.self.ID); ok {
			contact.Avatar = other.Avatar
			contact.IsOnline = other.IsOnline
		}
		if n := len(c.Messages); n > 0 {
			contact.LastMessage = chat.Preview(c.Messages[n-1].Text)
		}
		out = append(out, contact)
	}
	return out
}

// groupAvatar picks a stable avatar for group chats: the last non-self
// participant seen across the session's threads.
func (s *Store) groupAvatar() string {
	avatar := ""
	for _, id := range s.order {
		for _, u := range s.chats[id].Users {
			if u.ID != s.self.ID {
				avatar = u.Avatar
			}
		}
	}
	return avatar
}

// BeginEnrichment registers a new enrichment attempt against a message and
// returns its sequence number. Only the most recently issued sequence may
// apply; anything older is stale by definition.
func (s *Store) BeginEnrichment(messageID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enrichSeq[messageID]++
	return s.enrichSeq[messageID]
}

// ApplyEmotion attaches an emotion marker to an already-visible message iff
// the attempt is still the latest for that message. Superseded results are
// dropped without touching state; the bool reports whether the attach
// happened.
func (s *Store) ApplyEmotion(chatID, messageID string, seq uint64, emotion string) bool {
	s.mu.Lock()
	if s.enrichSeq[messageID] != seq {
		s.mu.Unlock()
		return false
	}
	c, ok := s.chats[chatID]
	if !ok {
		s.mu.Unlock()
		return false
	}
	applied := false
	for i := range c.Messages {
		if c.Messages[i].ID == messageID {
			c.Messages[i].Emotion = emotion
			applied = true
			break
		}
	}
	s.mu.Unlock()
	if applied {
		s.publish(Event{Kind: EventEnrichmentApplied, ChatID: chatID, MessageID: messageID, Emotion: emotion})
	}
	return applied
}

// Subscribe registers an event channel. The returned cancel func must be
// called to release the subscription. Slow subscribers drop events rather
// than block a mutation.
func (s *Store) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 32
	}
	ch := make(chan Event, buffer)
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()
	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// publish fans an event out after its mutation has released the write lock.
// A subscriber never sees an event before the state it reports is committed,
// but when two mutations race, their events may fan out in either order.
func (s *Store) publish(ev Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
			s.logger.Debug("session event dropped", zap.String("kind", string(ev.Kind)))
		}
	}
}

func (s *Store) nextTimestamp() int64 {
	now := time.Now().UnixMilli()
	if now <= s.clock {
		now = s.clock + 1
	}
	s.clock = now
	return now
}
