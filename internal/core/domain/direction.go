package domain

import "fmt"

// Direction is a steering recommendation.
type Direction string

// Available directions.
const (
	DirectionForward Direction = "forward"
	DirectionLeft    Direction = "left"
	DirectionRight   Direction = "right"
)

// Directions returns every direction the guidance heuristic can produce.
func Directions() []Direction {
	return []Direction{DirectionLeft, DirectionRight, DirectionForward}
}

// String returns the string representation.
func (d Direction) String() string {
	return string(d)
}

// ChooseDirection picks a steering direction away from the denser side of the frame.
//
// An obstacle whose horizontal centre lies strictly left of frameWidth/2 counts
// as left-side; everything else counts as right-side. More left-side obstacles
// steer right, more right-side obstacles steer left, and a tie (or no obstacles)
// keeps the user going forward.
func ChooseDirection(obstacles []Obstacle, frameWidth int) (Direction, error) {
	if frameWidth <= 0 {
		return "", fmt.Errorf("%w: frame width must be positive, got %d", ErrInvalidArgument, frameWidth)
	}
	if len(obstacles) == 0 {
		return DirectionForward, nil
	}

	midpoint := float64(frameWidth) / 2
	left, right := 0, 0
	for i := range obstacles {
		if obstacles[i].BBox.CenterX() < midpoint {
			left++
		} else {
			right++
		}
	}

	switch {
	case left > right:
		return DirectionRight, nil
	case right > left:
		return DirectionLeft, nil
	default:
		return DirectionForward, nil
	}
}
