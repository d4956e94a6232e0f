package fixture

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driven"
)

// Ensure Camera implements the interface.
var _ driven.Camera = (*Camera)(nil)

// Camera produces empty frames with fresh IDs.
type Camera struct {
	now func() time.Time
}

// NewCamera creates a scripted camera.
func NewCamera() *Camera {
	return &Camera{now: time.Now}
}

// Frame returns a new empty frame.
func (c *Camera) Frame(ctx context.Context) (domain.Frame, error) {
	if err := ctx.Err(); err != nil {
		return domain.Frame{}, err
	}
	return domain.Frame{
		ID:         uuid.New().String(),
		CapturedAt: c.now(),
	}, nil
}
