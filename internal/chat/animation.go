package chat

import "strings"

// Animation is the closed set of message entrance effects the UI knows how
// to render.
type Animation string

const (
	AnimationFadeIn Animation = "message-fade-in"
	AnimationBounce Animation = "message-bounce"
	AnimationShake  Animation = "message-shake"
)

// SelectAnimation maps a free-text classification label onto one of the
// known animations. Matching is case-insensitive substring matching on the
// keyword stems, so "Bouncy", "BOUNCE" and "it should bounce" all resolve
// the same way. Anything unrecognized, including the empty string, falls
// back to the fade-in default; the function is total and never fails.
func SelectAnimation(label string) Animation {
	kind := strings.ToLower(label)
	switch {
	case strings.Contains(kind, "bounc"):
		return AnimationBounce
	case strings.Contains(kind, "shak"):
		return AnimationShake
	default:
		return AnimationFadeIn
	}
}
