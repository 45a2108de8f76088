package obj

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

// Player is the controllable character: input-driven horizontal intent, an
// edge-triggered grounded jump, and full four-direction platform resolution.
type Player struct {
	Body
	FacingRight bool

	input *Input
	world *World
	cfg   Tuning
}

func NewPlayer(x, y float64, cfg Tuning, input *Input, world *World) *Player {
	return &Player{
		Body: Body{
			Pos:    cp.Vector{X: x, Y: y},
			Width:  cfg.PlayerWidth,
			Height: cfg.PlayerHeight,
		},
		FacingRight: true,
		input:       input,
		world:       world,
		cfg:         cfg,
	}
}

// Update advances the player by dt seconds against the world's platforms.
func (p *Player) Update(dt float64) {
	// Horizontal velocity is set from intent every frame; the only carried
	// momentum is the grounded friction residue below.
	p.Vel.X = p.cfg.PlayerSpeed * p.input.MoveX
	if p.input.MoveX < 0 {
		p.FacingRight = false
	} else if p.input.MoveX > 0 {
		p.FacingRight = true
	}

	// Jump is edge-triggered and gated on standing on something.
	if p.input.JumpPressed && p.Grounded {
		p.Vel.Y = -p.cfg.JumpStrength
		p.Grounded = false
	}

	p.Step(dt, p.cfg.Gravity, p.world.Platforms(), fullContact{}, p.world.Height)

	// Per-frame decay, not time-scaled. Intent overwrites Vel.X at the top
	// of the next frame, so only residual velocity decays.
	if p.Grounded {
		p.Vel.X *= p.cfg.GroundFriction
	}
}

// StateString renders the player's physics state for the debug HUD and the
// clipboard capture key.
func (p *Player) StateString() string {
	return fmt.Sprintf("pos=(%.1f, %.1f) vel=(%.1f, %.1f) grounded=%t facing_right=%t",
		p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y, p.Grounded, p.FacingRight)
}

// Draw renders the player as a filled rectangle with two eye dots offset
// toward the facing direction.
func (p *Player) Draw(screen *ebiten.Image, camX float64) {
	x := float32(p.Pos.X - camX)
	y := float32(p.Pos.Y)

	body := colornames.Lightgray
	if p.FacingRight {
		body = colornames.Blue
	}
	vector.DrawFilledRect(screen, x, y, float32(p.Width), float32(p.Height), body, false)

	if p.FacingRight {
		vector.DrawFilledCircle(screen, x+20, y+12, 3, colornames.Black, false)
		vector.DrawFilledCircle(screen, x+24, y+12, 3, colornames.Black, false)
	} else {
		vector.DrawFilledCircle(screen, x+8, y+12, 3, colornames.Black, false)
		vector.DrawFilledCircle(screen, x+12, y+12, 3, colornames.Black, false)
	}
}
