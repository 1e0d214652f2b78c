package enrich

import "context"

// The request/response shapes below are the fixed schemas of the enrichment
// boundary. Field names are part of the wire contract with the UI and with
// the model's JSON output; they do not change between calls.

type SummarizeInput struct {
	Message string `json:"message"`
}

type SummarizeResult struct {
	Summary string `json:"summary"`
}

// Summarize condenses a long message into a short summary.
func Summarize(ctx context.Context, c Client, in SummarizeInput) (*SummarizeResult, error) {
	prompt, err := BuildPrompt(PromptSpec{
		Purpose: "Summarize the given chat message so it can be read at a glance.",
		OutputFields: []PromptField{
			{Name: "summary", Type: "string", Required: true, Description: "The summarized message."},
		},
		Rules: []string{"Keep the summary to one or two sentences.", "Preserve names, dates and amounts."},
	}, in)
	if err != nil {
		return nil, err
	}
	var out SummarizeResult
	if err := call(ctx, c, CapabilitySummarize, prompt, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type TranslateInput struct {
	Message        string `json:"message"`
	TargetLanguage string `json:"targetLanguage"`
}

type TranslateResult struct {
	TranslatedMessage string `json:"translatedMessage"`
}

// Translate renders a message in the target language.
func Translate(ctx context.Context, c Client, in TranslateInput) (*TranslateResult, error) {
	prompt, err := BuildPrompt(PromptSpec{
		Purpose: "Translate the given chat message into the target language.",
		OutputFields: []PromptField{
			{Name: "translatedMessage", Type: "string", Required: true, Description: "The translated message."},
		},
		Rules: []string{"Keep tone and emoji intact.", "Do not add commentary."},
	}, in)
	if err != nil {
		return nil, err
	}
	var out TranslateResult
	if err := call(ctx, c, CapabilityTranslate, prompt, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type SentimentInput struct {
	Message string `json:"message"`
}

type SentimentResult struct {
	Sentiment               string `json:"sentiment"`
	SuggestedToneCorrection string `json:"suggestedToneCorrection"`
	EmotionEmoji            string `json:"emotionEmoji"`
}

// AnalyzeSentiment classifies a message's tone and proposes an emoji marker.
func AnalyzeSentiment(ctx context.Context, c Client, in SentimentInput) (*SentimentResult, error) {
	prompt, err := BuildPrompt(PromptSpec{
		Purpose: "Analyze the sentiment of the given message.",
		OutputFields: []PromptField{
			{Name: "sentiment", Type: "string", Required: true, Description: "positive, negative or neutral."},
			{Name: "suggestedToneCorrection", Type: "string", Required: false, Description: "A suggested tone correction, empty when none is needed."},
			{Name: "emotionEmoji", Type: "string", Required: true, Description: "A single emoji representing the emotion."},
		},
	}, in)
	if err != nil {
		return nil, err
	}
	var out SentimentResult
	if err := call(ctx, c, CapabilitySentiment, prompt, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type RewriteInput struct {
	Message string `json:"message"`
	Style   string `json:"style"`
}

type RewriteResult struct {
	RewrittenMessage string `json:"rewrittenMessage"`
}

// Rewrite restates a message in the requested style (professional, funny,
// persuasive, ...).
func Rewrite(ctx context.Context, c Client, in RewriteInput) (*RewriteResult, error) {
	prompt, err := BuildPrompt(PromptSpec{
		Purpose: "Rewrite the given message in the requested style.",
		OutputFields: []PromptField{
			{Name: "rewrittenMessage", Type: "string", Required: true, Description: "The rewritten message."},
		},
		Rules: []string{"Preserve the original meaning."},
	}, in)
	if err != nil {
		return nil, err
	}
	var out RewriteResult
	if err := call(ctx, c, CapabilityRewrite, prompt, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type FactCheckInput struct {
	Statement string `json:"statement"`
}

type FactCheckResult struct {
	IsCorrect   bool   `json:"isCorrect"`
	Explanation string `json:"explanation"`
	Source      string `json:"source,omitempty"`
}

// FactCheck verifies a statement and explains the verdict.
func FactCheck(ctx context.Context, c Client, in FactCheckInput) (*FactCheckResult, error) {
	prompt, err := BuildPrompt(PromptSpec{
		Purpose: "Fact check the given statement.",
		OutputFields: []PromptField{
			{Name: "isCorrect", Type: "bool", Required: true, Description: "Whether the statement is correct."},
			{Name: "explanation", Type: "string", Required: true, Description: "Why the statement is correct or incorrect."},
			{Name: "source", Type: "string", Required: false, Description: "The source of the information, when known."},
		},
	}, in)
	if err != nil {
		return nil, err
	}
	var out FactCheckResult
	if err := call(ctx, c, CapabilityFactCheck, prompt, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type ScheduleInput struct {
	Conversation string `json:"conversation"`
}

type ScheduleResult struct {
	SuggestedTimes []string `json:"suggestedTimes"`
}

// ExtractSchedule pulls meeting time suggestions out of a conversation.
func ExtractSchedule(ctx context.Context, c Client, in ScheduleInput) (*ScheduleResult, error) {
	prompt, err := BuildPrompt(PromptSpec{
		Purpose: "Extract meeting scheduling intent from the conversation and suggest concrete time slots.",
		OutputFields: []PromptField{
			{Name: "suggestedTimes", Type: "[]string", Required: true, Description: "Human-readable time slot suggestions."},
		},
		Rules: []string{"Suggest at most three slots.", "Return an empty list when no scheduling intent exists."},
	}, in)
	if err != nil {
		return nil, err
	}
	var out ScheduleResult
	if err := call(ctx, c, CapabilitySchedule, prompt, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type PollAnalysisInput struct {
	Question string           `json:"question"`
	Options  []PollVoteOption `json:"options"`
}

type PollVoteOption struct {
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

type PollAnalysisResult struct {
	Analysis string `json:"analysis"`
}

// AnalyzePoll summarizes where a poll is trending.
func AnalyzePoll(ctx context.Context, c Client, in PollAnalysisInput) (*PollAnalysisResult, error) {
	prompt, err := BuildPrompt(PromptSpec{
		Purpose: "Analyze the poll results and describe the trend in one short paragraph.",
		OutputFields: []PromptField{
			{Name: "analysis", Type: "string", Required: true, Description: "A short analysis of the poll results."},
		},
	}, in)
	if err != nil {
		return nil, err
	}
	var out PollAnalysisResult
	if err := call(ctx, c, CapabilityPollAnalysis, prompt, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type AvatarInput struct {
	Description string `json:"description"`
}

type AvatarResult struct {
	AvatarImage string `json:"avatarImage"`
	AvatarBio   string `json:"avatarBio"`
}

// BuildAvatar produces an avatar image reference and a short bio from a
// free-text description.
func BuildAvatar(ctx context.Context, c Client, in AvatarInput) (*AvatarResult, error) {
	prompt, err := BuildPrompt(PromptSpec{
		Purpose: "Design an AI avatar from the description: an image reference and a short bio.",
		OutputFields: []PromptField{
			{Name: "avatarImage", Type: "string", Required: true, Description: "A data URI or URL for the avatar image."},
			{Name: "avatarBio", Type: "string", Required: true, Description: "A short bio of the avatar."},
		},
	}, in)
	if err != nil {
		return nil, err
	}
	var out AvatarResult
	if err := call(ctx, c, CapabilityAvatar, prompt, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type AnimationInput struct {
	Message string `json:"message"`
}

type AnimationResult struct {
	AnimationType string `json:"animationType"`
}

// ClassifyAnimation names the entrance effect that suits the message's
// energy. The caller maps the free-text label onto the closed animation set.
func ClassifyAnimation(ctx context.Context, c Client, in AnimationInput) (*AnimationResult, error) {
	prompt, err := BuildPrompt(PromptSpec{
		Purpose: "Classify which entrance animation suits the message: fade, bounce or shake.",
		OutputFields: []PromptField{
			{Name: "animationType", Type: "string", Required: true, Description: "One of: fade, bounce, shake."},
		},
		Rules: []string{"bounce for excited or playful messages.", "shake for urgent or angry messages.", "fade for everything else."},
	}, in)
	if err != nil {
		return nil, err
	}
	var out AnimationResult
	if err := call(ctx, c, CapabilityAnimation, prompt, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type AutoReplyInput struct {
	UserRoutine     string `json:"userRoutine"`
	IncomingMessage string `json:"incomingMessage"`
}

type AutoReplyResult struct {
	AutoReply string `json:"autoReply"`
}

// GenerateAutoReply drafts a reply to an incoming message given the user's
// routine.
func GenerateAutoReply(ctx context.Context, c Client, in AutoReplyInput) (*AutoReplyResult, error) {
	prompt, err := BuildPrompt(PromptSpec{
		Purpose: "Generate a short auto-reply to the incoming message, consistent with the user's routine.",
		OutputFields: []PromptField{
			{Name: "autoReply", Type: "string", Required: true, Description: "The generated auto-reply message."},
		},
		Rules: []string{"Write in first person.", "Keep it under two sentences."},
	}, in)
	if err != nil {
		return nil, err
	}
	var out AutoReplyResult
	if err := call(ctx, c, CapabilityAutoReply, prompt, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type MoodThemeInput struct {
	RecentMessages []string `json:"recentMessages"`
}

type MoodThemeResult struct {
	Theme string `json:"theme"`
}

// ClassifyMoodTheme names a UI theme matching the mood of the recent
// transcript.
func ClassifyMoodTheme(ctx context.Context, c Client, in MoodThemeInput) (*MoodThemeResult, error) {
	prompt, err := BuildPrompt(PromptSpec{
		Purpose: "Classify the mood of the recent messages into a UI theme.",
		OutputFields: []PromptField{
			{Name: "theme", Type: "string", Required: true, Description: "One of: calm, energetic, focused, celebratory."},
		},
	}, in)
	if err != nil {
		return nil, err
	}
	var out MoodThemeResult
	if err := call(ctx, c, CapabilityMoodTheme, prompt, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
