package fixture

import (
	"context"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driven"
)

// Ensure fixtures implement the interfaces.
var (
	_ driven.ObstacleDetector = (*ObstacleDetector)(nil)
	_ driven.ObjectDetector   = (*ObjectDetector)(nil)
	_ driven.TextRecognizer   = (*TextRecognizer)(nil)
)

// DefaultObstacles returns the demo obstacles: a chair on the left and a desk on the right
// of a 320-pixel frame.
func DefaultObstacles() []domain.Obstacle {
	return []domain.Obstacle{
		{BBox: domain.BoundingBox{Left: 20, Top: 0, Right: 80, Bottom: 60}, Label: "chair", Confidence: 0.91},
		{BBox: domain.BoundingBox{Left: 200, Top: 0, Right: 260, Bottom: 80}, Label: "desk", Confidence: 0.87},
	}
}

// DefaultObjects returns the demo objects: a person and a book.
func DefaultObjects() []domain.DetectedObject {
	return []domain.DetectedObject{
		{Label: "person", BBox: domain.BoundingBox{Left: 10, Top: 10, Right: 100, Bottom: 200}, Confidence: 0.95},
		{Label: "book", BBox: domain.BoundingBox{Left: 140, Top: 40, Right: 220, Bottom: 120}, Confidence: 0.89},
	}
}

// ObstacleDetector returns the same obstacles for every frame.
type ObstacleDetector struct {
	obstacles []domain.Obstacle
}

// NewObstacleDetector creates a detector that always reports obstacles.
func NewObstacleDetector(obstacles []domain.Obstacle) *ObstacleDetector {
	return &ObstacleDetector{obstacles: append([]domain.Obstacle(nil), obstacles...)}
}

// DetectObstacles returns a copy of the scripted obstacles.
func (d *ObstacleDetector) DetectObstacles(_ context.Context, _ domain.Frame) ([]domain.Obstacle, error) {
	return append([]domain.Obstacle{}, d.obstacles...), nil
}

// ObjectDetector returns the same objects for every frame.
type ObjectDetector struct {
	objects []domain.DetectedObject
}

// NewObjectDetector creates a detector that always reports objects.
func NewObjectDetector(objects []domain.DetectedObject) *ObjectDetector {
	return &ObjectDetector{objects: append([]domain.DetectedObject(nil), objects...)}
}

// DetectObjects returns a copy of the scripted objects.
func (d *ObjectDetector) DetectObjects(_ context.Context, _ domain.Frame) ([]domain.DetectedObject, error) {
	return append([]domain.DetectedObject{}, d.objects...), nil
}

// TextRecognizer returns the same text for every frame.
type TextRecognizer struct {
	text string
}

// NewTextRecognizer creates an OCR engine that always reads text.
func NewTextRecognizer(text string) *TextRecognizer {
	return &TextRecognizer{text: text}
}

// ExtractText returns the scripted text unmodified.
func (r *TextRecognizer) ExtractText(_ context.Context, _ domain.Frame) (string, error) {
	return r.text, nil
}
