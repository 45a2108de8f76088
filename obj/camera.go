package obj

import "math"

// Camera computes the horizontal scroll offset that keeps the follow target
// centered once it passes the middle of the screen. The view never scrolls
// left of the world origin and never moves vertically.
type Camera struct {
	OffsetX float64

	screenW float64
}

// NewCamera creates a camera for the given logical screen width.
func NewCamera(screenW float64) *Camera {
	return &Camera{screenW: screenW}
}

// SetScreenSize updates the logical screen width used by the camera.
func (c *Camera) SetScreenSize(w float64) {
	if w <= 0 {
		return
	}
	c.screenW = w
}

// Update recomputes the offset from the follow target's x position.
func (c *Camera) Update(targetX float64) {
	c.OffsetX = math.Max(0, targetX-c.screenW/2)
}
