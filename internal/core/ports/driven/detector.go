package driven

import (
	"context"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
)

// ObstacleDetector finds obstacles in a frame.
type ObstacleDetector interface {
	// DetectObstacles returns the obstacles in the frame. An empty slice is a valid result.
	DetectObstacles(ctx context.Context, frame domain.Frame) ([]domain.Obstacle, error)
}

// ObjectDetector finds named objects in a frame.
type ObjectDetector interface {
	// DetectObjects returns the objects in the frame. An empty slice is a valid result.
	DetectObjects(ctx context.Context, frame domain.Frame) ([]domain.DetectedObject, error)
}

// TextRecognizer extracts printed text from a frame (OCR).
type TextRecognizer interface {
	// ExtractText returns the raw recognised text, possibly blank.
	ExtractText(ctx context.Context, frame domain.Frame) (string, error)
}
