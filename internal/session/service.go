package session

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nexchat/internal/chat"
	"nexchat/internal/enrich"
)

// DefaultTheme is the mood theme used whenever classification is
// unavailable or fails.
const DefaultTheme = "calm"

// Metrics receives counters from the service. The prometheus-backed
// implementation lives in internal/metrics; tests pass nil.
type Metrics interface {
	MessageSent()
	EnrichmentFailed(capability string)
}

// Service drives the session store through its enrichment-aware operations.
// Enrichment is advisory everywhere: a failed or slow call degrades to a
// neutral default and the operation still commits.
type Service struct {
	store    *Store
	enricher enrich.Client
	logger   *zap.Logger
	metrics  Metrics

	// classifyWait bounds the pre-commit animation classification so a
	// slow model can never delay a message becoming visible for long.
	classifyWait time.Duration
}

func NewService(store *Store, enricher enrich.Client, metrics Metrics, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:        store,
		enricher:     enricher,
		logger:       logger,
		metrics:      metrics,
		classifyWait: 2 * time.Second,
	}
}

// Store exposes the underlying session store for read paths.
func (s *Service) Store() *Store { return s.store }

// SendMessage appends a message from the local user. Animation
// classification is attempted exactly once under a short deadline before
// commit; on any failure the default animation is used and the append
// proceeds. Sentiment attaches asynchronously after commit under the
// latest-request-wins rule and never delays visibility.
func (s *Service) SendMessage(ctx context.Context, chatID, text string) (chat.Message, error) {
	draft := Draft{
		Sender:    s.store.Self(),
		Text:      text,
		Animation: s.classifyAnimation(ctx, text),
	}
	msg, err := s.store.AppendMessage(chatID, draft)
	if err != nil {
		return chat.Message{}, err
	}
	if s.metrics != nil {
		s.metrics.MessageSent()
	}
	s.attachSentimentAsync(chatID, msg.ID, text)
	return msg, nil
}

// SendPoll appends a poll message from the local user.
func (s *Service) SendPoll(chatID, question string, options []string) (chat.Message, error) {
	poll := &chat.Poll{
		ID:       "poll-" + uuid.NewString(),
		Question: question,
	}
	for i, text := range options {
		poll.Options = append(poll.Options, chat.PollOption{
			ID:   poll.ID + "-opt-" + strconv.Itoa(i+1),
			Text: text,
		})
	}
	return s.store.AppendMessage(chatID, Draft{
		Sender:    s.store.Self(),
		Text:      question,
		Animation: chat.AnimationFadeIn,
		Poll:      poll,
	})
}

// AutoReply generates a reply on the local user's behalf to the most recent
// incoming message, given the user's routine, and appends it. Failure of
// the generation call surfaces as an error; nothing is appended then.
func (s *Service) AutoReply(ctx context.Context, chatID, routine string) (chat.Message, error) {
	c, ok := s.store.Chat(chatID)
	if !ok {
		return chat.Message{}, ErrChatNotFound
	}
	incoming := ""
	selfID := s.store.Self().ID
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].Sender.ID != selfID {
			incoming = c.Messages[i].Text
			break
		}
	}
	res, err := enrich.GenerateAutoReply(ctx, s.enricher, enrich.AutoReplyInput{
		UserRoutine:     routine,
		IncomingMessage: incoming,
	})
	if err != nil {
		if s.metrics != nil {
			s.metrics.EnrichmentFailed(string(enrich.CapabilityAutoReply))
		}
		return chat.Message{}, err
	}
	reply := strings.TrimSpace(res.AutoReply)
	if reply == "" {
		return chat.Message{}, enrich.ErrInvalidJSON
	}
	return s.store.AppendMessage(chatID, Draft{
		Sender:    s.store.Self(),
		Text:      reply,
		Animation: chat.AnimationFadeIn,
	})
}

// MoodTheme classifies the active chat's recent transcript into a UI theme.
// Any failure degrades to the default theme; this call never errors.
func (s *Service) MoodTheme(ctx context.Context, chatID string) string {
	c, ok := s.store.Chat(chatID)
	if !ok {
		return DefaultTheme
	}
	var recent []string
	start := len(c.Messages) - 5
	if start < 0 {
		start = 0
	}
	for _, m := range c.Messages[start:] {
		recent = append(recent, m.Text)
	}
	if len(recent) == 0 {
		return DefaultTheme
	}
	res, err := enrich.ClassifyMoodTheme(ctx, s.enricher, enrich.MoodThemeInput{RecentMessages: recent})
	if err != nil || strings.TrimSpace(res.Theme) == "" {
		if s.metrics != nil {
			s.metrics.EnrichmentFailed(string(enrich.CapabilityMoodTheme))
		}
		return DefaultTheme
	}
	return strings.TrimSpace(res.Theme)
}

// classifyAnimation makes the single pre-commit classification attempt.
// The selector is total, so an error or timeout simply yields the default.
func (s *Service) classifyAnimation(ctx context.Context, text string) chat.Animation {
	cctx, cancel := context.WithTimeout(ctx, s.classifyWait)
	defer cancel()
	res, err := enrich.ClassifyAnimation(cctx, s.enricher, enrich.AnimationInput{Message: text})
	if err != nil {
		if s.metrics != nil {
			s.metrics.EnrichmentFailed(string(enrich.CapabilityAnimation))
		}
		s.logger.Debug("animation classification failed, using default", zap.Error(err))
		return chat.AnimationFadeIn
	}
	return chat.SelectAnimation(res.AnimationType)
}

// attachSentimentAsync fires the post-commit sentiment enrichment. The
// message is already visible; the result attaches only while this attempt
// is still the latest for the message.
func (s *Service) attachSentimentAsync(chatID, messageID, text string) {
	seq := s.store.BeginEnrichment(messageID)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		res, err := enrich.AnalyzeSentiment(ctx, s.enricher, enrich.SentimentInput{Message: text})
		if err != nil {
			if s.metrics != nil {
				s.metrics.EnrichmentFailed(string(enrich.CapabilitySentiment))
			}
			s.logger.Debug("sentiment enrichment failed", zap.String("message_id", messageID), zap.Error(err))
			return
		}
		emoji := strings.TrimSpace(res.EmotionEmoji)
		if emoji == "" {
			return
		}
		s.store.ApplyEmotion(chatID, messageID, seq, emoji)
	}()
}
