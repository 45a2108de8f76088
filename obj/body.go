package obj

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/angel10x/Maple-Side-Scroller/common"
)

// contactPolicy decides how a body reacts to one overlapping platform.
// Resolve may adjust the in-progress position and mutate the body's velocity
// and grounded flag. Only the first matching branch inside a policy applies
// per platform; platforms are visited in list order and a later platform's
// adjustment overrides an earlier one.
type contactPolicy interface {
	Resolve(b *Body, pos cp.Vector, platform, overlap common.Rect) cp.Vector
}

// Body is a kinematic body: a position and velocity integrated by gravity
// and clipped against platforms, with no mass or impulse model.
type Body struct {
	Pos      cp.Vector
	Vel      cp.Vector
	Width    float64
	Height   float64
	Grounded bool
}

// Rect returns the body's bounding rectangle at its current position.
func (b *Body) Rect() common.Rect {
	return b.rectAt(b.Pos)
}

func (b *Body) rectAt(pos cp.Vector) common.Rect {
	return common.Rect{X: pos.X, Y: pos.Y, Width: b.Width, Height: b.Height}
}

// ClampDelta guards integration against NaN, infinite, or negative frame
// times.
func ClampDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	return dt
}

// Step advances the body by dt seconds: accumulate gravity, compute the
// candidate position, resolve the candidate rectangle against every platform
// in list order through policy, then clamp against the bottom of the world.
//
// The candidate rectangle is computed once, before any resolution; each
// intersecting platform adjusts the in-progress position and velocity, so
// with ambiguously overlapping platforms the last applicable one wins.
func (b *Body) Step(dt, gravity float64, platforms []Platform, policy contactPolicy, floor float64) {
	dt = ClampDelta(dt)

	// Gravity accumulates every frame, grounded or not; only a landing
	// zeroes it again.
	b.Vel.Y += gravity * dt

	pos := b.Pos.Add(b.Vel.Mult(dt))
	candidate := b.rectAt(pos)
	b.Grounded = false

	for _, p := range platforms {
		overlap, ok := candidate.Intersection(p.Rect)
		if !ok {
			continue
		}
		pos = policy.Resolve(b, pos, p.Rect, overlap)
	}

	b.Pos = pos

	if b.Pos.Y > floor-b.Height {
		b.Pos.Y = floor - b.Height
		b.Vel.Y = 0
		b.Grounded = true
	}
}

// fullContact resolves all four directions: land on top while falling, bump
// the head while rising, otherwise snap to the wall being moved toward.
type fullContact struct{}

func (fullContact) Resolve(b *Body, pos cp.Vector, platform, overlap common.Rect) cp.Vector {
	switch {
	case b.Vel.Y > 0 && overlap.Height < overlap.Width:
		pos.Y = platform.Y - b.Height
		b.Vel.Y = 0
		b.Grounded = true
	case b.Vel.Y < 0 && overlap.Height > overlap.Width:
		pos.Y = platform.Bottom()
		b.Vel.Y = 0
	case b.Vel.X > 0:
		pos.X = platform.X - b.Width
		b.Vel.X = 0
	case b.Vel.X < 0:
		pos.X = platform.Right()
		b.Vel.X = 0
	}
	return pos
}

// landingContact only lands on top of platforms while falling. Enemies carry
// no head-bump or wall resolution; adding it would change patrol behavior.
type landingContact struct{}

func (landingContact) Resolve(b *Body, pos cp.Vector, platform, overlap common.Rect) cp.Vector {
	if b.Vel.Y > 0 && overlap.Height < overlap.Width {
		pos.Y = platform.Y - b.Height
		b.Vel.Y = 0
		b.Grounded = true
	}
	return pos
}
