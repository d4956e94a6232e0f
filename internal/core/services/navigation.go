package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driving"
	"github.com/custodia-labs/sightline-cli/internal/logger"
)

// Ensure NavigationAssistant implements the interface.
var _ driving.NavigationAssistant = (*NavigationAssistant)(nil)

// NavigationAssistant detects obstacles and speaks left/right/forward guidance.
type NavigationAssistant struct {
	camera     driven.Camera
	detector   driven.ObstacleDetector
	audio      driven.AudioOutput
	frameWidth int
}

// NewNavigationAssistant creates a navigation assistant.
// frameWidth must be positive.
func NewNavigationAssistant(
	camera driven.Camera,
	detector driven.ObstacleDetector,
	audio driven.AudioOutput,
	frameWidth int,
) (*NavigationAssistant, error) {
	if frameWidth <= 0 {
		return nil, fmt.Errorf("%w: frame width must be positive, got %d", domain.ErrInvalidArgument, frameWidth)
	}
	if camera == nil || detector == nil || audio == nil {
		return nil, fmt.Errorf("%w: navigation needs a camera, obstacle detector and audio output", domain.ErrInvalidArgument)
	}
	return &NavigationAssistant{
		camera:     camera,
		detector:   detector,
		audio:      audio,
		frameWidth: frameWidth,
	}, nil
}

// FrameWidth returns the frame width used to locate the midpoint.
func (n *NavigationAssistant) FrameWidth() int {
	return n.frameWidth
}

// ProcessFrame captures a frame, detects obstacles and speaks the chosen direction.
func (n *NavigationAssistant) ProcessFrame(ctx context.Context) (*domain.GuidanceResult, error) {
	frame, err := n.camera.Frame(ctx)
	if err != nil {
		return nil, fmt.Errorf("capture frame: %w", err)
	}

	obstacles, err := n.detector.DetectObstacles(ctx, frame)
	if err != nil {
		return nil, fmt.Errorf("detect obstacles: %w", err)
	}
	if obstacles == nil {
		obstacles = []domain.Obstacle{}
	}

	direction, err := domain.ChooseDirection(obstacles, n.frameWidth)
	if err != nil {
		return nil, err
	}
	logger.Debug("Navigation: %d obstacles in frame %s -> %s", len(obstacles), frame.ID, direction)

	if err := n.audio.Speak(ctx, direction.String()); err != nil {
		return nil, fmt.Errorf("speak direction: %w", err)
	}

	return &domain.GuidanceResult{
		Direction:     direction,
		Obstacles:     obstacles,
		Announcements: []string{direction.String()},
	}, nil
}
