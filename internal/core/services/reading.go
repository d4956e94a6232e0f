package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driving"
	"github.com/custodia-labs/sightline-cli/internal/logger"
)

// Ensure ReadingAssistant implements the interface.
var _ driving.ReadingAssistant = (*ReadingAssistant)(nil)

// ReadingAssistant captures frames, extracts text and speaks it aloud.
type ReadingAssistant struct {
	camera          driven.Camera
	recognizer      driven.TextRecognizer
	audio           driven.AudioOutput
	fallbackMessage string
}

// NewReadingAssistant creates a reading assistant.
// fallbackMessage is spoken when no text is found; pass "" to stay silent.
func NewReadingAssistant(
	camera driven.Camera,
	recognizer driven.TextRecognizer,
	audio driven.AudioOutput,
	fallbackMessage string,
) (*ReadingAssistant, error) {
	if camera == nil || recognizer == nil || audio == nil {
		return nil, fmt.Errorf("%w: reading needs a camera, text recognizer and audio output", domain.ErrInvalidArgument)
	}
	return &ReadingAssistant{
		camera:          camera,
		recognizer:      recognizer,
		audio:           audio,
		fallbackMessage: fallbackMessage,
	}, nil
}

// ProcessFrame captures a frame, extracts its text and speaks it.
func (r *ReadingAssistant) ProcessFrame(ctx context.Context) (*domain.ReadingResult, error) {
	frame, err := r.camera.Frame(ctx)
	if err != nil {
		return nil, fmt.Errorf("capture frame: %w", err)
	}

	raw, err := r.recognizer.ExtractText(ctx, frame)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}
	text := strings.TrimSpace(raw)

	result := &domain.ReadingResult{Text: text, Announcements: []string{}}

	message := text
	if message == "" {
		logger.Debug("Reading: no text in frame %s", frame.ID)
		message = r.fallbackMessage
	}
	if message == "" {
		return result, nil
	}

	if err := r.audio.Speak(ctx, message); err != nil {
		return nil, fmt.Errorf("speak text: %w", err)
	}
	result.Announcements = append(result.Announcements, message)
	return result, nil
}
