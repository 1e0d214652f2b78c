package chat

import "testing"

func TestSelectAnimation_Total(t *testing.T) {
	cases := []struct {
		label string
		want  Animation
	}{
		{"it should bounce", AnimationBounce},
		{"SHAKE now", AnimationShake},
		{"", AnimationFadeIn},
		{"calm message", AnimationFadeIn},
		{"Bouncy!", AnimationBounce},
		{"shaking with urgency", AnimationShake},
		{"fade", AnimationFadeIn},
	}
	for _, tc := range cases {
		if got := SelectAnimation(tc.label); got != tc.want {
			t.Fatalf("SelectAnimation(%q) = %s, want %s", tc.label, got, tc.want)
		}
	}
}

func TestPreview(t *testing.T) {
	long := "Hello world, are we still meeting tomorrow?"
	got := Preview(long)
	if len([]rune(got)) > PreviewLimit+3 {
		t.Fatalf("preview too long: %q", got)
	}
	if got[:PreviewLimit] != long[:PreviewLimit] {
		t.Fatalf("preview is not a prefix: %q", got)
	}

	if got := Preview(""); got != NoMessagesPlaceholder {
		t.Fatalf("empty text: expected placeholder, got %q", got)
	}
	if got := Preview("short"); got != "short" {
		t.Fatalf("short text should be unchanged, got %q", got)
	}
}
