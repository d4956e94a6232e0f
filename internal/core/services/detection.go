package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driving"
	"github.com/custodia-labs/sightline-cli/internal/logger"
)

// Ensure ObjectDetectionAssistant implements the interface.
var _ driving.ObjectDetectionAssistant = (*ObjectDetectionAssistant)(nil)

// ObjectDetectionAssistant detects objects in camera frames and speaks their names.
type ObjectDetectionAssistant struct {
	camera   driven.Camera
	detector driven.ObjectDetector
	audio    driven.AudioOutput
}

// NewObjectDetectionAssistant creates an object detection assistant.
func NewObjectDetectionAssistant(
	camera driven.Camera,
	detector driven.ObjectDetector,
	audio driven.AudioOutput,
) (*ObjectDetectionAssistant, error) {
	if camera == nil || detector == nil || audio == nil {
		return nil, fmt.Errorf("%w: object detection needs a camera, object detector and audio output", domain.ErrInvalidArgument)
	}
	return &ObjectDetectionAssistant{
		camera:   camera,
		detector: detector,
		audio:    audio,
	}, nil
}

// ProcessFrame captures a frame, detects objects and speaks each label in order.
// When nothing is found it speaks domain.NoObjectsMessage instead.
func (o *ObjectDetectionAssistant) ProcessFrame(ctx context.Context) (*domain.DetectionResult, error) {
	frame, err := o.camera.Frame(ctx)
	if err != nil {
		return nil, fmt.Errorf("capture frame: %w", err)
	}

	objects, err := o.detector.DetectObjects(ctx, frame)
	if err != nil {
		return nil, fmt.Errorf("detect objects: %w", err)
	}
	if objects == nil {
		objects = []domain.DetectedObject{}
	}
	logger.Debug("Object detection: %d objects in frame %s", len(objects), frame.ID)

	announcements := make([]string, 0, len(objects))
	if len(objects) == 0 {
		announcements = append(announcements, domain.NoObjectsMessage)
	}
	for i := range objects {
		if !domain.IsCommonObject(objects[i].Label) {
			logger.Warn("Object detection: unexpected label %q", objects[i].Label)
		}
		announcements = append(announcements, objects[i].Label)
	}

	for _, message := range announcements {
		if err := o.audio.Speak(ctx, message); err != nil {
			return nil, fmt.Errorf("speak %q: %w", message, err)
		}
	}

	return &domain.DetectionResult{
		Objects:       objects,
		Announcements: announcements,
	}, nil
}
