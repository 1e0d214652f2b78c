package session

import (
	"strconv"
	"testing"
	"time"

	"nexchat/internal/chat"
)

func testSeed() chat.Seed {
	return chat.NewSeed(time.Now())
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	n := 0
	return NewStore(testSeed(), func() string {
		n++
		return "test-msg-" + strconv.Itoa(n)
	}, nil)
}

func TestAppendMessage_FIFO(t *testing.T) {
	s := newTestStore(t)
	self := s.Self()

	texts := []string{"one", "two", "three", "four"}
	for _, text := range texts {
		if _, err := s.AppendMessage("chat-2", Draft{Sender: self, Text: text}); err != nil {
			t.Fatalf("append %q: %v", text, err)
		}
	}

	c, ok := s.Chat("chat-2")
	if !ok {
		t.Fatal("chat-2 missing")
	}
	if len(c.Messages) != len(texts) {
		t.Fatalf("expected %d messages, got %d", len(texts), len(c.Messages))
	}
	var prevTS int64
	for i, m := range c.Messages {
		if m.Text != texts[i] {
			t.Fatalf("position %d: expected %q, got %q", i, texts[i], m.Text)
		}
		if m.Timestamp <= prevTS {
			t.Fatalf("timestamps not strictly increasing at %d", i)
		}
		prevTS = m.Timestamp
	}
}

func TestAppendMessage_UnknownChat(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.AppendMessage("no-such-chat", Draft{Sender: s.Self(), Text: "hi"}); err != ErrChatNotFound {
		t.Fatalf("expected ErrChatNotFound, got %v", err)
	}
}

func TestCastVote_SumEqualsDistinctVoters(t *testing.T) {
	s := newTestStore(t)
	c, _ := s.Chat("chat-3")
	poll, ok := c.FindPoll("poll-1")
	if !ok {
		t.Fatal("seed poll missing")
	}
	before := chat.TotalVotes(poll.Options)

	voters := []string{"user-1", "user-2", "user-3"}
	for _, voter := range voters {
		if _, err := s.CastVote("chat-3", "poll-1", "opt-1", voter); err != nil {
			t.Fatalf("vote by %s: %v", voter, err)
		}
	}

	c, _ = s.Chat("chat-3")
	poll, _ = c.FindPoll("poll-1")
	if got := chat.TotalVotes(poll.Options); got != before+len(voters) {
		t.Fatalf("expected total %d, got %d", before+len(voters), got)
	}
}

func TestCastVote_RepeatVoterUnchanged(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CastVote("chat-3", "poll-1", "opt-2", "user-1"); err != nil {
		t.Fatalf("first vote: %v", err)
	}
	c, _ := s.Chat("chat-3")
	poll, _ := c.FindPoll("poll-1")
	total := chat.TotalVotes(poll.Options)

	if _, err := s.CastVote("chat-3", "poll-1", "opt-3", "user-1"); err != ErrAlreadyVoted {
		t.Fatalf("expected ErrAlreadyVoted, got %v", err)
	}
	c, _ = s.Chat("chat-3")
	poll, _ = c.FindPoll("poll-1")
	if got := chat.TotalVotes(poll.Options); got != total {
		t.Fatalf("repeat vote changed the sum: %d -> %d", total, got)
	}
}

func TestCastVote_UnresolvedIDs(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CastVote("chat-3", "poll-404", "opt-1", "user-1"); err != ErrPollNotFound {
		t.Fatalf("expected ErrPollNotFound, got %v", err)
	}
	if _, err := s.CastVote("chat-3", "poll-1", "opt-404", "user-1"); err != ErrOptionNotFound {
		t.Fatalf("expected ErrOptionNotFound, got %v", err)
	}
	// Neither attempt may have counted as a vote.
	if s.HasVoted("chat-3", "poll-1", "user-1") {
		t.Fatal("failed vote was recorded")
	}
}

func TestCastVote_SamePollIDAcrossChats(t *testing.T) {
	s := newTestStore(t)

	// The seed embeds poll-1 in chat-1 and chat-3 as independent copies.
	if _, err := s.CastVote("chat-1", "poll-1", "opt-1", "user-1"); err != nil {
		t.Fatalf("vote on chat-1 copy: %v", err)
	}
	if _, err := s.CastVote("chat-3", "poll-1", "opt-1", "user-1"); err != nil {
		t.Fatalf("vote on chat-3 copy after voting in chat-1: %v", err)
	}
	if _, err := s.CastVote("chat-3", "poll-1", "opt-2", "user-1"); err != ErrAlreadyVoted {
		t.Fatalf("second vote on the same copy: expected ErrAlreadyVoted, got %v", err)
	}

	// Each copy counted exactly one new vote.
	for _, chatID := range []string{"chat-1", "chat-3"} {
		c, _ := s.Chat(chatID)
		poll, _ := c.FindPoll("poll-1")
		fresh := chat.NewSeed(time.Now())
		seedPoll, _ := fresh.Chats[0].FindPoll("poll-1")
		if got, want := chat.TotalVotes(poll.Options), chat.TotalVotes(seedPoll.Options)+1; got != want {
			t.Fatalf("%s: expected total %d, got %d", chatID, want, got)
		}
	}
}

func TestSelectChat(t *testing.T) {
	s := newTestStore(t)
	if !s.SelectChat("chat-1") {
		t.Fatal("valid selection rejected")
	}
	if s.SelectChat("chat-404") {
		t.Fatal("unknown chat selection should be a no-op")
	}
	active, ok := s.ActiveChat()
	if !ok || active.ID != "chat-1" {
		t.Fatalf("active chat should stay chat-1, got %q", active.ID)
	}
}

func TestListContacts_ReflectsCommittedState(t *testing.T) {
	s := newTestStore(t)

	contacts := s.ListContacts()
	byID := make(map[string]chat.Contact, len(contacts))
	for _, c := range contacts {
		byID[c.ID] = c
	}
	if byID["chat-2"].LastMessage != chat.NoMessagesPlaceholder {
		t.Fatalf("empty chat preview: got %q", byID["chat-2"].LastMessage)
	}
	if byID["chat-3"].Name != "Project Nexa" {
		t.Fatalf("group name: got %q", byID["chat-3"].Name)
	}

	text := "Hello world, are we still meeting tomorrow?"
	if _, err := s.AppendMessage("chat-2", Draft{Sender: s.Self(), Text: text}); err != nil {
		t.Fatal(err)
	}
	contacts = s.ListContacts()
	for _, c := range contacts {
		if c.ID != "chat-2" {
			continue
		}
		want := text[:chat.PreviewLimit] + "..."
		if c.LastMessage != want {
			t.Fatalf("preview after append: expected %q, got %q", want, c.LastMessage)
		}
		return
	}
	t.Fatal("chat-2 missing from contacts")
}

func TestListContacts_UnnamedGroupLabel(t *testing.T) {
	seed := testSeed()
	for i := range seed.Chats {
		if seed.Chats[i].IsGroup {
			seed.Chats[i].Name = ""
		}
	}
	s := NewStore(seed, nil, nil)
	for _, c := range s.ListContacts() {
		if c.ID == "chat-3" && c.Name != chat.GroupChatLabel {
			t.Fatalf("unnamed group: expected %q, got %q", chat.GroupChatLabel, c.Name)
		}
	}
}

func TestApplyEmotion_LatestRequestWins(t *testing.T) {
	s := newTestStore(t)
	msg, err := s.AppendMessage("chat-1", Draft{Sender: s.Self(), Text: "hello"})
	if err != nil {
		t.Fatal(err)
	}

	first := s.BeginEnrichment(msg.ID)
	second := s.BeginEnrichment(msg.ID)

	if s.ApplyEmotion("chat-1", msg.ID, first, "😡") {
		t.Fatal("stale enrichment result was applied")
	}
	if !s.ApplyEmotion("chat-1", msg.ID, second, "😀") {
		t.Fatal("latest enrichment result was rejected")
	}

	c, _ := s.Chat("chat-1")
	got := c.Messages[len(c.Messages)-1]
	if got.Emotion != "😀" {
		t.Fatalf("expected latest emotion, got %q", got.Emotion)
	}
}

func TestSubscribe_DeliversCommittedEvents(t *testing.T) {
	s := newTestStore(t)
	events, cancel := s.Subscribe(8)
	defer cancel()

	if _, err := s.AppendMessage("chat-1", Draft{Sender: s.Self(), Text: "ping"}); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-events:
		if ev.Kind != EventMessageAppended {
			t.Fatalf("expected %s, got %s", EventMessageAppended, ev.Kind)
		}
		if ev.Message == nil || ev.Message.Text != "ping" {
			t.Fatal("event is missing the committed message")
		}
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}
