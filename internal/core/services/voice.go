package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driving"
	"github.com/custodia-labs/sightline-cli/internal/logger"
)

// Ensure VoiceAssistant implements the interface.
var _ driving.VoiceAssistant = (*VoiceAssistant)(nil)

// VoiceAssistant switches between assistant modes based on fixed voice commands.
// It holds the only cross-call mutable state in the system, the active mode,
// and provides no internal synchronisation.
type VoiceAssistant struct {
	transcriber driven.Transcriber
	matcher     *ModeMatcher
	activeMode  domain.Mode
	sessionID   string
}

// NewVoiceAssistant creates a voice assistant starting in initialMode.
// A nil matcher uses the built-in phrases. The transcriber may be nil when
// transcripts are only supplied through HandleTranscript.
func NewVoiceAssistant(
	transcriber driven.Transcriber,
	matcher *ModeMatcher,
	initialMode domain.Mode,
) (*VoiceAssistant, error) {
	if !initialMode.IsValid() {
		return nil, fmt.Errorf("initial mode: %w: %q", domain.ErrUnsupportedMode, initialMode)
	}
	if matcher == nil {
		matcher = NewDefaultModeMatcher()
	}
	return &VoiceAssistant{
		transcriber: transcriber,
		matcher:     matcher,
		activeMode:  initialMode,
		sessionID:   uuid.New().String(),
	}, nil
}

// ActiveMode returns the current mode.
func (v *VoiceAssistant) ActiveMode() domain.Mode {
	return v.activeMode
}

// SessionID identifies this assistant instance.
func (v *VoiceAssistant) SessionID() string {
	return v.sessionID
}

// HandleTranscript matches a transcript and switches mode on a match.
func (v *VoiceAssistant) HandleTranscript(transcript string) domain.ModeSwitchResult {
	result := domain.ModeSwitchResult{Transcript: transcript}

	if mode, ok := v.matcher.Match(transcript); ok {
		matched := mode
		result.MatchedMode = &matched
		if mode != v.activeMode {
			logger.Debug("Session %s: mode %s -> %s", v.sessionID, v.activeMode, mode)
		}
		v.activeMode = mode
	} else {
		logger.Debug("Session %s: no command in %q, staying in %s", v.sessionID, transcript, v.activeMode)
	}

	result.ActiveMode = v.activeMode
	return result
}

// ListenAndHandle pulls one utterance from the transcriber and handles it.
func (v *VoiceAssistant) ListenAndHandle(ctx context.Context) (domain.ModeSwitchResult, error) {
	if v.transcriber == nil {
		return domain.ModeSwitchResult{ActiveMode: v.activeMode}, domain.ErrNotImplemented
	}
	transcript, err := v.transcriber.Listen(ctx)
	if err != nil {
		return domain.ModeSwitchResult{ActiveMode: v.activeMode}, fmt.Errorf("listen: %w", err)
	}
	return v.HandleTranscript(transcript), nil
}
