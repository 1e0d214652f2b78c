package chat

import "time"

// Seed is the fixed data a session starts from. Nothing here survives a
// reload; every session rebuilds the same graph.
type Seed struct {
	Self   User
	Users  []User
	Chats  []Chat
	Active string
}

// NewSeed builds the canonical demo session anchored at the given time so
// the seeded message timestamps land in the recent past.
func NewSeed(now time.Time) Seed {
	self := User{
		ID:     "user-1",
		Name:   "You",
		Avatar: "https://placehold.co/100x100/9400D3/FFFFFF.png",
	}
	others := []User{
		{ID: "user-2", Name: "Alex Cryp", Avatar: "https://placehold.co/100x100/7DF9FF/1A0029.png", IsOnline: true},
		{ID: "user-3", Name: "Nina Quant", Avatar: "https://placehold.co/100x100/A020F0/FFFFFF.png", IsOnline: false},
		{ID: "user-4", Name: "Dev Team", Avatar: "https://placehold.co/100x100/4B0082/FFFFFF.png", IsOnline: true},
	}

	poll := Poll{
		ID:       "poll-1",
		Question: "Next feature to build?",
		Options: []PollOption{
			{ID: "opt-1", Text: "Holographic Chat", Votes: 5},
			{ID: "opt-2", Text: "Crypto Transfer", Votes: 12},
			{ID: "opt-3", Text: "More Mini-Games", Votes: 3},
		},
	}

	at := func(minutesAgo int) int64 {
		return now.Add(-time.Duration(minutesAgo) * time.Minute).UnixMilli()
	}
	messages := []Message{
		{ID: "msg-1", Sender: others[0], Text: "Hey, check out the new design mockups. I think they're ready for the next phase.", Timestamp: at(10), Animation: AnimationFadeIn},
		{ID: "msg-2", Sender: self, Text: "Looking great! The color palette is spot on. I'll start implementing the front-end components.", Timestamp: at(8), Animation: AnimationFadeIn},
		{ID: "msg-3", Sender: others[1], Text: "Did we decide on the encryption standard? Quantum-encrypted messaging is the future, we should aim for that.", Timestamp: at(6), Animation: AnimationFadeIn},
		{ID: "msg-4", Sender: others[0], Text: "Good point, Nina. Let's create a poll to get the whole team's input.", Timestamp: at(5), Animation: AnimationFadeIn},
		{ID: "msg-5", Sender: others[0], Text: "Here is the poll:", Timestamp: at(4), Poll: ClonePoll(&poll), Animation: AnimationFadeIn},
		{ID: "msg-6", Sender: self, Text: "I've voted! Also, let's schedule a meeting for tomorrow to finalize the roadmap. Can you find a slot?", Timestamp: at(2), Emotion: "👍"},
	}

	// Each chat owns its messages exclusively, so seeded chats sharing the
	// same transcript get independent copies.
	chats := []Chat{
		{ID: "chat-1", Users: []User{self, others[0]}, Messages: CloneMessages(messages), IsGroup: false},
		{ID: "chat-2", Users: []User{self, others[1]}, Messages: nil, IsGroup: false},
		{ID: "chat-3", Users: []User{self, others[0], others[1]}, Messages: CloneMessages(messages), IsGroup: true, Name: "Project Nexa"},
	}

	return Seed{Self: self, Users: others, Chats: chats, Active: "chat-3"}
}
