package enrich

import (
	"strings"
	"testing"
)

func TestBuildPrompt_RendersSections(t *testing.T) {
	spec := PromptSpec{
		Purpose: "Classify the message.",
		OutputFields: []PromptField{
			{Name: "animationType", Type: "string", Required: true, Description: "One of: fade, bounce, shake."},
		},
		Rules: []string{"fade for everything else."},
	}
	out, err := BuildPrompt(spec, map[string]string{"message": "hello"})
	if err != nil {
		t.Fatalf("builder error: %v", err)
	}
	for _, sec := range []string{"[PURPOSE]", "[INPUT]", "[OUTPUT]", "[RULES]", "[OUTPUT_FORMAT]"} {
		if !strings.Contains(out, sec) {
			t.Fatalf("expected section %s in prompt", sec)
		}
	}
	if !strings.Contains(out, "animationType (string, required)") {
		t.Fatalf("output field not rendered:\n%s", out)
	}
	if !strings.Contains(out, `"message": "hello"`) {
		t.Fatalf("input JSON not rendered:\n%s", out)
	}
}

func TestBuildPrompt_Validation(t *testing.T) {
	if _, err := BuildPrompt(PromptSpec{OutputFields: []PromptField{{Name: "x"}}}, nil); err == nil {
		t.Fatal("empty purpose must error")
	}
	if _, err := BuildPrompt(PromptSpec{Purpose: "p"}, nil); err == nil {
		t.Fatal("empty output fields must error")
	}
}
