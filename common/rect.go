package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Rect is an axis-aligned box with its origin at the top-left corner and y
// increasing downward. Width and Height are never negative.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Intersection returns the overlap between r and other. The overlap's Width
// and Height are the horizontal and vertical penetration depths used to
// classify contacts. Rects that merely touch along an edge don't overlap.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	left := math.Max(r.X, other.X)
	top := math.Max(r.Y, other.Y)
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())
	if right <= left || bottom <= top {
		return Rect{}, false
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}, true
}

// Contains reports whether the point lies inside r. All four edges are
// inclusive.
func (r Rect) Contains(p cp.Vector) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}
