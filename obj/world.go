package obj

import (
	"github.com/jakecoffman/cp"

	"github.com/angel10x/Maple-Side-Scroller/common"
)

// Platform is one static axis-aligned rectangle. Platforms are created at
// scene setup and never move or die during a session.
type Platform struct {
	Rect common.Rect
}

// World is the active scene: an ordered platform list plus the bounds bodies
// are clamped against. Collision resolution visits platforms in this order.
type World struct {
	Width  float64
	Height float64

	platforms []Platform
}

func NewWorld(width, height float64, platforms []Platform) *World {
	return &World{Width: width, Height: height, platforms: platforms}
}

// Platforms returns the ordered platform list.
func (w *World) Platforms() []Platform {
	return w.platforms
}

// Supported reports whether the point is held up by a platform or lies at or
// below the bottom of the world. The patrol edge probe queries this.
func (w *World) Supported(p cp.Vector) bool {
	for _, plat := range w.platforms {
		if plat.Rect.Contains(p) {
			return true
		}
	}
	return p.Y >= w.Height
}
