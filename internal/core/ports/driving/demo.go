package driving

import (
	"context"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
)

// DemoOptions controls a demo run.
type DemoOptions struct {
	// Transcripts overrides the configured utterances when non-empty.
	Transcripts []string

	// UntilEndOfInput keeps dispatching until the transcriber runs dry
	// instead of performing exactly one step per transcript.
	UntilEndOfInput bool
}

// DemoRunner drives the scripted demo end to end.
type DemoRunner interface {
	// Run creates a fresh voice session and dispatches every scripted utterance.
	Run(ctx context.Context, opts DemoOptions) (*domain.DemoReport, error)
}

// Dispatcher routes utterances to the assistant for the active mode.
// Implementations share the voice session's lack of synchronisation.
type Dispatcher interface {
	// ActiveMode returns the current mode.
	ActiveMode() domain.Mode

	// Step listens for one utterance and processes a frame in the resulting mode.
	// It returns domain.ErrEndOfInput once the transcriber has run dry.
	Step(ctx context.Context) (domain.DispatchStep, error)

	// Dispatch handles the given transcript and processes a frame in the resulting mode.
	Dispatch(ctx context.Context, transcript string) (domain.DispatchStep, error)

	// Run performs steps dispatch cycles, or runs until end of input when steps <= 0.
	Run(ctx context.Context, steps int) ([]domain.DispatchStep, error)
}

// SessionFactory creates sessions from the current settings for callers that
// supply transcripts themselves.
type SessionFactory interface {
	// NewVoiceSession creates a voice assistant without a transcriber.
	// An empty initial mode uses the configured one.
	NewVoiceSession(initial domain.Mode) (VoiceAssistant, error)

	// NewDispatchSession creates a dispatcher to be driven through Dispatch.
	NewDispatchSession() (Dispatcher, error)
}
