package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/angel10x/Maple-Side-Scroller/common"
)

// one floating ledge, matching the default level's second platform
func newPatrolWorld() *World {
	return NewWorld(1600, 720, []Platform{
		{Rect: common.Rect{X: 300, Y: 520, Width: 200, Height: 20}},
	})
}

func TestPatrolContinuesWhileSupported(t *testing.T) {
	e := NewEnemy(400, 488, DefaultTuning(), newPatrolWorld())

	e.Update(testDT)

	assert.True(t, e.MovingRight)
	assert.InDelta(t, 400.8, e.Pos.X, 1e-9)
	assert.Equal(t, 488.0, e.Pos.Y)
	assert.Equal(t, 0.0, e.Vel.Y)
	assert.Equal(t, e.Rect(), e.Bounds)
}

func TestReversalAtPlatformEdge(t *testing.T) {
	// probe lands 5 past the right edge: 464+32+5 = 501 > 500
	e := NewEnemy(464, 488, DefaultTuning(), newPatrolWorld())

	e.Update(testDT)

	// flips for the next frame but still moves in the old direction now
	assert.False(t, e.MovingRight)
	assert.InDelta(t, 464.8, e.Pos.X, 1e-9)

	// next frame the left probe is supported, so exactly one flip happened
	e.Update(testDT)
	assert.False(t, e.MovingRight)
	assert.InDelta(t, 464.0, e.Pos.X, 1e-9)
}

func TestAirborneProbeOscillates(t *testing.T) {
	// deep world so the probe never reaches the bottom
	world := NewWorld(1600, 1e6, nil)
	e := NewEnemy(500, 100, DefaultTuning(), world)

	want := true
	for frame := 0; frame < 4; frame++ {
		want = !want
		e.Update(testDT)
		assert.Equal(t, want, e.MovingRight, "frame %d", frame)
	}
}

func TestBottomOfWorldCountsAsSupport(t *testing.T) {
	// standing on the world floor: probe is below the bottom of the world
	world := NewWorld(1600, 720, nil)
	e := NewEnemy(500, 688, DefaultTuning(), world)

	e.Update(testDT)

	assert.True(t, e.MovingRight)
	assert.Equal(t, 688.0, e.Pos.Y)
}

func TestEnemyWalksThroughWalls(t *testing.T) {
	world := NewWorld(1600, 720, []Platform{
		{Rect: common.Rect{X: 0, Y: 680, Width: 1600, Height: 40}},
		{Rect: common.Rect{X: 500, Y: 560, Width: 40, Height: 120}},
	})
	e := NewEnemy(470, 648, DefaultTuning(), world)

	e.Update(testDT)

	// landing-only resolution: the wall doesn't stop the patrol
	assert.InDelta(t, 470.8, e.Pos.X, 1e-9)
	assert.Equal(t, 50.0, e.Vel.X)
	assert.Equal(t, 648.0, e.Pos.Y)
}

func TestEnemySettlesOntoPlatform(t *testing.T) {
	// spawned above the ledge like the default level's enemies; it falls,
	// lands, and patrols. Direction flips while airborne are expected.
	e := NewEnemy(400, 470, DefaultTuning(), newPatrolWorld())

	for frame := 0; frame < 60; frame++ {
		e.Update(testDT)
	}

	assert.Equal(t, 488.0, e.Pos.Y)
	assert.Equal(t, 0.0, e.Vel.Y)
}
