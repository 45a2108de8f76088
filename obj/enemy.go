package obj

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/angel10x/Maple-Side-Scroller/common"
)

// Brain can steer an enemy after the built-in edge probe has run. The probe
// keeps a plain patrol on its platform; a brain may override the direction
// for scripted enemy variants.
type Brain interface {
	Think(e *Enemy) error
}

// Enemy patrols back and forth along platform edges. It shares the kinematic
// step with the player but only resolves the landing contact; it never bumps
// its head or stops at walls.
type Enemy struct {
	Body
	MovingRight bool

	// Bounds is recomputed at the end of every update so renderers and
	// collision queries read a cached rectangle.
	Bounds common.Rect

	brain Brain
	world *World
	cfg   Tuning
}

func NewEnemy(x, y float64, cfg Tuning, world *World) *Enemy {
	e := &Enemy{
		Body: Body{
			Pos:    cp.Vector{X: x, Y: y},
			Vel:    cp.Vector{X: cfg.EnemySpeed},
			Width:  cfg.EnemyWidth,
			Height: cfg.EnemyHeight,
		},
		MovingRight: true,
		world:       world,
		cfg:         cfg,
	}
	e.Bounds = e.Rect()
	return e
}

// SetBrain attaches a scripted brain. A nil brain keeps the default patrol.
func (e *Enemy) SetBrain(b Brain) {
	e.brain = b
}

// Update advances the enemy by dt seconds: patrol intent, edge probe, then
// the shared gravity/collision step.
func (e *Enemy) Update(dt float64) {
	if e.MovingRight {
		e.Vel.X = e.cfg.EnemySpeed
	} else {
		e.Vel.X = -e.cfg.EnemySpeed
	}

	// An unsupported probe flips the direction for the next frame's velocity
	// assignment; this frame still moves in the old direction. An enemy
	// parked exactly on an edge flips every frame.
	if !e.world.Supported(e.probePoint()) {
		e.MovingRight = !e.MovingRight
	}

	if e.brain != nil {
		if err := e.brain.Think(e); err != nil {
			log.Printf("enemy brain: %v", err)
		}
	}

	e.Step(dt, e.cfg.Gravity, e.world.Platforms(), landingContact{}, e.world.Height)

	e.Bounds = e.Rect()
}

// probePoint sits just past the leading edge and below the feet.
func (e *Enemy) probePoint() cp.Vector {
	x := e.Pos.X - e.cfg.EdgeProbe
	if e.MovingRight {
		x = e.Pos.X + e.Width + e.cfg.EdgeProbe
	}
	return cp.Vector{X: x, Y: e.Pos.Y + e.Height + e.cfg.EdgeProbe}
}

// Draw renders the enemy as a red rectangle with two yellow eyes.
func (e *Enemy) Draw(screen *ebiten.Image, camX float64) {
	x := float32(e.Bounds.X - camX)
	y := float32(e.Bounds.Y)

	vector.DrawFilledRect(screen, x, y, float32(e.Bounds.Width), float32(e.Bounds.Height), colornames.Red, false)
	vector.DrawFilledCircle(screen, x+10, y+10, 3, colornames.Yellow, false)
	vector.DrawFilledCircle(screen, x+22, y+10, 3, colornames.Yellow, false)
}
