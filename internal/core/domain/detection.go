package domain

// BoundingBox is a rectangular region in frame pixel coordinates.
// Coordinates are not validated: a box with Right < Left is accepted
// and its centre is computed as given.
type BoundingBox struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// CenterX returns the horizontal centre of the box. The edges are converted
// before they are summed so extreme coordinates cannot wrap around.
func (b BoundingBox) CenterX() float64 {
	return (float64(b.Left) + float64(b.Right)) / 2
}

// Obstacle is something in the camera frame that the user may walk into.
type Obstacle struct {
	BBox  BoundingBox `json:"bbox"`
	Label string      `json:"label"`

	// Confidence is carried through from the detector and never thresholded.
	Confidence float64 `json:"confidence"`
}

// DetectedObject is a recognised object in the camera frame.
type DetectedObject struct {
	Label      string      `json:"label"`
	BBox       BoundingBox `json:"bbox"`
	Confidence float64     `json:"confidence"`
}

// NoObjectsMessage is spoken when object detection finds nothing.
const NoObjectsMessage = "no objects detected"

// CommonObjects returns the labels the object detector is expected to produce.
func CommonObjects() []string {
	return []string{"chair", "table", "person", "book", "bottle"}
}

// IsCommonObject reports whether label is in the common object vocabulary.
func IsCommonObject(label string) bool {
	for _, known := range CommonObjects() {
		if known == label {
			return true
		}
	}
	return false
}
