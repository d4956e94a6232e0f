package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driving"
	"github.com/custodia-labs/sightline-cli/internal/logger"
)

// Ensure Dispatcher implements the interface.
var _ driving.Dispatcher = (*Dispatcher)(nil)

// Dispatcher routes each utterance's resulting mode to exactly one assistant.
type Dispatcher struct {
	voice      driving.VoiceAssistant
	navigation driving.NavigationAssistant
	detection  driving.ObjectDetectionAssistant
	reading    driving.ReadingAssistant
}

// NewDispatcher creates a dispatcher. All collaborators are required.
func NewDispatcher(
	voice driving.VoiceAssistant,
	navigation driving.NavigationAssistant,
	detection driving.ObjectDetectionAssistant,
	reading driving.ReadingAssistant,
) (*Dispatcher, error) {
	if voice == nil || navigation == nil || detection == nil || reading == nil {
		return nil, fmt.Errorf("%w: dispatcher needs a voice assistant and all three mode assistants", domain.ErrInvalidArgument)
	}
	return &Dispatcher{
		voice:      voice,
		navigation: navigation,
		detection:  detection,
		reading:    reading,
	}, nil
}

// ActiveMode returns the voice assistant's current mode.
func (d *Dispatcher) ActiveMode() domain.Mode {
	return d.voice.ActiveMode()
}

// Step listens for one utterance and processes a frame in the resulting mode.
// It returns domain.ErrEndOfInput, without processing a frame, once the
// transcriber has run dry.
func (d *Dispatcher) Step(ctx context.Context) (domain.DispatchStep, error) {
	switched, err := d.voice.ListenAndHandle(ctx)
	if err != nil {
		return domain.DispatchStep{Switch: switched}, err
	}
	if switched.Transcript == "" {
		return domain.DispatchStep{Switch: switched}, domain.ErrEndOfInput
	}
	return d.route(ctx, switched)
}

// Dispatch handles a transcript supplied directly and processes a frame in the resulting mode.
func (d *Dispatcher) Dispatch(ctx context.Context, transcript string) (domain.DispatchStep, error) {
	return d.route(ctx, d.voice.HandleTranscript(transcript))
}

// Run performs steps dispatch cycles and returns them in order.
// With steps <= 0 it runs until the transcriber signals end of input;
// the empty end-of-input utterance itself is not routed.
func (d *Dispatcher) Run(ctx context.Context, steps int) ([]domain.DispatchStep, error) {
	logger.Section("Dispatch")

	var out []domain.DispatchStep
	for i := 0; steps <= 0 || i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		switched, err := d.voice.ListenAndHandle(ctx)
		if err != nil {
			return out, err
		}
		if steps <= 0 && switched.Transcript == "" {
			logger.Debug("Transcriber reached end of input after %d steps", len(out))
			return out, nil
		}

		step, err := d.route(ctx, switched)
		if err != nil {
			return out, err
		}
		out = append(out, step)
	}
	return out, nil
}

func (d *Dispatcher) route(ctx context.Context, switched domain.ModeSwitchResult) (domain.DispatchStep, error) {
	step := domain.DispatchStep{Switch: switched}
	logger.Debug("Routing %q to %s", switched.Transcript, switched.ActiveMode)

	var err error
	switch switched.ActiveMode {
	case domain.ModeNavigation:
		step.Guidance, err = d.navigation.ProcessFrame(ctx)
	case domain.ModeObjectDetection:
		step.Detection, err = d.detection.ProcessFrame(ctx)
	case domain.ModeReading:
		step.Reading, err = d.reading.ProcessFrame(ctx)
	default:
		err = fmt.Errorf("%w: %q", domain.ErrUnsupportedMode, switched.ActiveMode)
	}
	if err != nil {
		return step, fmt.Errorf("%s: %w", switched.ActiveMode, err)
	}
	return step, nil
}
