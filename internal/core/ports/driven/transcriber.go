package driven

import "context"

// Transcriber turns captured speech into text.
type Transcriber interface {
	// Listen returns the next utterance.
	// An empty string signals that the source has no more input.
	Listen(ctx context.Context) (string, error)
}
