package driven

import "context"

// AudioOutput delivers spoken messages to the user.
type AudioOutput interface {
	// Speak emits a single message.
	Speak(ctx context.Context, message string) error
}
