package driving

import (
	"context"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
)

// VoiceAssistant switches the active mode based on spoken commands.
// Implementations are not safe for concurrent use; use one per session.
type VoiceAssistant interface {
	// ActiveMode returns the current mode.
	ActiveMode() domain.Mode

	// SessionID identifies this assistant instance.
	SessionID() string

	// HandleTranscript matches a transcript and updates the active mode on a match.
	HandleTranscript(transcript string) domain.ModeSwitchResult

	// ListenAndHandle pulls one utterance from the transcriber and handles it.
	ListenAndHandle(ctx context.Context) (domain.ModeSwitchResult, error)
}
