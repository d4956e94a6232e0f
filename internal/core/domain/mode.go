package domain

import (
	"fmt"
	"strings"
)

// Mode selects which assistant receives the next frame.
type Mode string

// Available modes. The set is closed.
const (
	// ModeNavigation steers the user around obstacles.
	ModeNavigation Mode = "navigation"

	// ModeObjectDetection names the objects in view.
	ModeObjectDetection Mode = "object_detection"

	// ModeReading reads printed text aloud.
	ModeReading Mode = "reading"
)

// Modes returns the fixed mode set in canonical order.
func Modes() []Mode {
	return []Mode{ModeNavigation, ModeObjectDetection, ModeReading}
}

// IsValid returns true if the mode belongs to the fixed set.
func (m Mode) IsValid() bool {
	switch m {
	case ModeNavigation, ModeObjectDetection, ModeReading:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m Mode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m Mode) Description() string {
	switch m {
	case ModeNavigation:
		return "Navigation (left/right/forward guidance)"
	case ModeObjectDetection:
		return "Object Detection (speaks object names)"
	case ModeReading:
		return "Reading (speaks recognised text)"
	default:
		return "Unknown"
	}
}

// ParseMode converts user input into a Mode.
// Spaces and hyphens are accepted in place of underscores, so
// "object detection" and "object-detection" both parse.
func ParseMode(s string) (Mode, error) {
	normalised := strings.ToLower(strings.TrimSpace(s))
	normalised = strings.ReplaceAll(normalised, "-", "_")
	normalised = strings.Join(strings.Fields(normalised), "_")

	m := Mode(normalised)
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
	}
	return m, nil
}
