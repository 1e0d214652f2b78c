package enrich

import (
	"context"
	"encoding/json"
	"strings"
)

// FakeClient returns deterministic, minimal JSON payloads per capability for
// offline development and tests. It mirrors the real client's contract: one
// "call" per invocation, no state between calls.
type FakeClient struct{}

func NewFakeClient() *FakeClient { return &FakeClient{} }

func (f *FakeClient) Name() string { return "FakeEnrichment" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) GenerateJSON(ctx context.Context, capability Capability, prompt string, input any) (json.RawMessage, error) {
	var obj any
	switch capability {
	case CapabilitySummarize:
		obj = SummarizeResult{Summary: "Summary: " + truncateInput(input, 40)}
	case CapabilityTranslate:
		obj = TranslateResult{TranslatedMessage: "[translated] " + truncateInput(input, 60)}
	case CapabilitySentiment:
		obj = SentimentResult{Sentiment: "neutral", EmotionEmoji: "🙂"}
	case CapabilityRewrite:
		obj = RewriteResult{RewrittenMessage: truncateInput(input, 80)}
	case CapabilityFactCheck:
		obj = FactCheckResult{IsCorrect: true, Explanation: "No contradicting evidence found."}
	case CapabilitySchedule:
		obj = ScheduleResult{SuggestedTimes: []string{"Tomorrow 10:00", "Tomorrow 15:00"}}
	case CapabilityPollAnalysis:
		obj = PollAnalysisResult{Analysis: "The leading option holds a clear majority."}
	case CapabilityAvatar:
		obj = AvatarResult{AvatarImage: "https://placehold.co/100x100.png", AvatarBio: "A friendly digital companion."}
	case CapabilityAnimation:
		obj = AnimationResult{AnimationType: fakeAnimationFor(input)}
	case CapabilityAutoReply:
		obj = AutoReplyResult{AutoReply: "Thanks, I'll get back to you shortly."}
	case CapabilityMoodTheme:
		obj = MoodThemeResult{Theme: "calm"}
	default:
		obj = map[string]any{}
	}
	return json.Marshal(obj)
}

// fakeAnimationFor keys off the message text so excited punctuation still
// exercises the non-default paths in development.
func fakeAnimationFor(input any) string {
	msg := truncateInput(input, 200)
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "!") || strings.Contains(lower, "🎉"):
		return "bounce"
	case strings.Contains(lower, "urgent") || strings.Contains(lower, "now"):
		return "shake"
	default:
		return "fade"
	}
}

func truncateInput(input any, n int) string {
	b, err := json.Marshal(input)
	if err != nil {
		return ""
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return ""
	}
	for _, key := range []string{"message", "statement", "conversation", "incomingMessage", "description"} {
		if v, ok := m[key].(string); ok && v != "" {
			if len(v) > n {
				return v[:n]
			}
			return v
		}
	}
	return ""
}
