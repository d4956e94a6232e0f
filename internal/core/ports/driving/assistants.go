package driving

import (
	"context"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
)

// NavigationAssistant announces a steering direction for the current frame.
type NavigationAssistant interface {
	ProcessFrame(ctx context.Context) (*domain.GuidanceResult, error)
}

// ObjectDetectionAssistant announces the objects in the current frame.
type ObjectDetectionAssistant interface {
	ProcessFrame(ctx context.Context) (*domain.DetectionResult, error)
}

// ReadingAssistant reads the text in the current frame aloud.
type ReadingAssistant interface {
	ProcessFrame(ctx context.Context) (*domain.ReadingResult, error)
}
