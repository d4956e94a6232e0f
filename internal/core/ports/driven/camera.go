package driven

import (
	"context"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
)

// Camera captures frames.
type Camera interface {
	// Frame captures a single frame.
	Frame(ctx context.Context) (domain.Frame, error)
}
