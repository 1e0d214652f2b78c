package enrich

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	genai "google.golang.org/genai"
)

// GeminiClient is a thin wrapper around the official genai client. One
// invocation makes exactly one API call; there is no retry loop here
// because the session layer treats every enrichment as attempt-once with a
// safe fallback.
type GeminiClient struct {
	cli    *genai.Client
	model  string
	rl     *rate.Limiter
	logger *zap.Logger
}

// NewGeminiClient dials the Gemini API. rps <= 0 disables throttling.
func NewGeminiClient(ctx context.Context, model string, rps float64, burst int, logger *zap.Logger) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	var rl *rate.Limiter
	if rps > 0 {
		if burst <= 0 {
			burst = 1
		}
		rl = rate.NewLimiter(rate.Limit(rps), burst)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiClient{cli: cli, model: model, rl: rl, logger: logger}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }
func (g *GeminiClient) Close() error { return nil }

// GenerateJSON sends the concatenated prompt/input and requests
// application/json output.
func (g *GeminiClient) GenerateJSON(ctx context.Context, capability Capability, prompt string, input any) (json.RawMessage, error) {
	if g.rl != nil {
		if err := g.rl.Wait(ctx); err != nil {
			return nil, err
		}
	}

	in, _ := json.MarshalIndent(input, "", "  ")
	full := prompt + "\n\n[INPUT JSON]\n" + string(in)
	g.logger.Debug("enrichment request",
		zap.String("capability", string(capability)),
		zap.Int("bytes", len(full)),
	)

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: full}}}},
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		g.logger.Warn("enrichment call failed",
			zap.String("capability", string(capability)),
			zap.Error(err),
		)
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrInvalidJSON
	}
	return json.RawMessage(resp.Candidates[0].Content.Parts[0].Text), nil
}
