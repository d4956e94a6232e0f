package domain

import "time"

// Frame is an opaque handle to one camera capture.
// The core never inspects Data; it only passes frames from a camera to a detector.
type Frame struct {
	// ID uniquely identifies the capture.
	ID string

	// CapturedAt is when the frame was taken.
	CapturedAt time.Time

	// Data holds backend-specific image bytes, if any.
	Data []byte
}
