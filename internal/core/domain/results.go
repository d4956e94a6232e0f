package domain

// ModeSwitchResult is the observable outcome of one voice dispatch.
type ModeSwitchResult struct {
	// Transcript is the utterance exactly as received.
	Transcript string `json:"transcript"`

	// MatchedMode is the mode whose phrase matched, or nil when nothing matched.
	MatchedMode *Mode `json:"matched_mode"`

	// ActiveMode is the assistant's mode after the dispatch.
	ActiveMode Mode `json:"active_mode"`
}

// Matched reports whether the transcript matched a trigger phrase.
func (r ModeSwitchResult) Matched() bool {
	return r.MatchedMode != nil
}

// GuidanceResult is the outcome of processing a frame for navigation.
type GuidanceResult struct {
	Direction     Direction  `json:"direction"`
	Obstacles     []Obstacle `json:"obstacles"`
	Announcements []string   `json:"announcements"`
}

// DetectionResult is the outcome of processing a frame for object detection.
type DetectionResult struct {
	Objects       []DetectedObject `json:"objects"`
	Announcements []string         `json:"announcements"`
}

// ReadingResult is the outcome of processing a frame for reading.
type ReadingResult struct {
	// Text is the recognised text after trimming; empty when nothing was read.
	Text          string   `json:"text"`
	Announcements []string `json:"announcements"`
}

// DispatchStep records one cycle of the demo driver loop.
type DispatchStep struct {
	Switch ModeSwitchResult `json:"switch"`

	// Exactly one of Guidance, Detection and Reading is set.
	Guidance  *GuidanceResult  `json:"guidance,omitempty"`
	Detection *DetectionResult `json:"detection,omitempty"`
	Reading   *ReadingResult   `json:"reading,omitempty"`
}

// Announcements returns the messages spoken during the step.
func (s DispatchStep) Announcements() []string {
	switch {
	case s.Guidance != nil:
		return s.Guidance.Announcements
	case s.Detection != nil:
		return s.Detection.Announcements
	case s.Reading != nil:
		return s.Reading.Announcements
	default:
		return nil
	}
}

// DemoReport summarises a full demo run.
type DemoReport struct {
	SessionID string         `json:"session_id"`
	Steps     []DispatchStep `json:"steps"`

	// Messages lists every spoken message in emission order.
	Messages []string `json:"messages"`
}
