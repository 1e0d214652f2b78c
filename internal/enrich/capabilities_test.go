package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// rawClient returns a fixed payload regardless of capability.
type rawClient struct {
	payload string
	err     error
}

func (c *rawClient) Name() string { return "raw" }
func (c *rawClient) Close() error { return nil }
func (c *rawClient) GenerateJSON(ctx context.Context, capability Capability, prompt string, input any) (json.RawMessage, error) {
	if c.err != nil {
		return nil, c.err
	}
	return json.RawMessage(c.payload), nil
}

func TestCapabilities_DecodeTypedResults(t *testing.T) {
	ctx := context.Background()

	cli := &rawClient{payload: `{"summary":"short"}`}
	sum, err := Summarize(ctx, cli, SummarizeInput{Message: "a very long message"})
	if err != nil {
		t.Fatal(err)
	}
	if sum.Summary != "short" {
		t.Fatalf("unexpected summary: %q", sum.Summary)
	}

	cli = &rawClient{payload: `{"isCorrect":true,"explanation":"verified","source":"docs"}`}
	fc, err := FactCheck(ctx, cli, FactCheckInput{Statement: "water is wet"})
	if err != nil {
		t.Fatal(err)
	}
	if !fc.IsCorrect || fc.Source != "docs" {
		t.Fatalf("unexpected fact check result: %+v", fc)
	}
}

func TestCapabilities_InvalidJSONIsFailure(t *testing.T) {
	cli := &rawClient{payload: `not json at all`}
	if _, err := Translate(context.Background(), cli, TranslateInput{Message: "hi", TargetLanguage: "fr"}); !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
}

func TestCapabilities_ClientErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	cli := &rawClient{err: boom}
	if _, err := AnalyzeSentiment(context.Background(), cli, SentimentInput{Message: "hi"}); !errors.Is(err, boom) {
		t.Fatalf("expected client error, got %v", err)
	}
}

func TestFakeClient_CoversEveryCapability(t *testing.T) {
	cli := NewFakeClient()
	for _, capability := range Capabilities() {
		raw, err := cli.GenerateJSON(context.Background(), capability, "", map[string]string{"message": "hello"})
		if err != nil {
			t.Fatalf("%s: %v", capability, err)
		}
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil {
			t.Fatalf("%s: invalid JSON: %v", capability, err)
		}
	}
}

func TestFakeClient_AnimationKeysOffText(t *testing.T) {
	cli := NewFakeClient()
	res, err := ClassifyAnimation(context.Background(), cli, AnimationInput{Message: "party time 🎉!"})
	if err != nil {
		t.Fatal(err)
	}
	if res.AnimationType != "bounce" {
		t.Fatalf("expected bounce, got %q", res.AnimationType)
	}
}
