// Package enrich is the boundary adapter for the hosted generation
// capabilities. Each capability is one typed request against the external
// model with a fixed output schema; the client performs exactly one outbound
// call per invocation and never retries on its own. Retry and fallback
// policy belong to the caller.
package enrich

import (
	"context"
	"encoding/json"
	"errors"
)

// Capability names one request/response binding to the generation service.
type Capability string

const (
	CapabilitySummarize    Capability = "summarize"
	CapabilityTranslate    Capability = "translate"
	CapabilitySentiment    Capability = "sentiment"
	CapabilityRewrite      Capability = "rewrite"
	CapabilityFactCheck    Capability = "fact-check"
	CapabilitySchedule     Capability = "schedule"
	CapabilityPollAnalysis Capability = "poll-analysis"
	CapabilityAvatar       Capability = "avatar"
	CapabilityAnimation    Capability = "animation"
	CapabilityAutoReply    Capability = "auto-reply"
	CapabilityMoodTheme    Capability = "mood-theme"
)

// Capabilities lists every known capability in a stable order.
func Capabilities() []Capability {
	return []Capability{
		CapabilitySummarize,
		CapabilityTranslate,
		CapabilitySentiment,
		CapabilityRewrite,
		CapabilityFactCheck,
		CapabilitySchedule,
		CapabilityPollAnalysis,
		CapabilityAvatar,
		CapabilityAnimation,
		CapabilityAutoReply,
		CapabilityMoodTheme,
	}
}

var ErrInvalidJSON = errors.New("enrich: invalid JSON from model")

// Client generates one schema-validated JSON document per call. The prompt
// carries the capability's instructions; input is serialized into the
// request verbatim.
type Client interface {
	Name() string
	GenerateJSON(ctx context.Context, capability Capability, prompt string, input any) (json.RawMessage, error)
	Close() error
}

// call runs one capability round-trip and decodes the result into out.
// Decode failures count as capability failures; callers treat any error
// uniformly.
func call(ctx context.Context, c Client, capability Capability, prompt string, input, out any) error {
	raw, err := c.GenerateJSON(ctx, capability, prompt, input)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return ErrInvalidJSON
	}
	return nil
}
