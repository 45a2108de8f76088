package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the current input state for movement and jumping. Fields are
// plain data so game logic can be driven without a live keyboard in tests.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	// JumpPressed is true on the frame a jump key (space/W/up) is pressed.
	JumpPressed bool
	// PausePressed is true on the frame Escape is pressed.
	PausePressed bool
	// CopyStatePressed is true on the frame F9 is pressed. Debug mode copies
	// the player's physics state to the clipboard on it.
	CopyStatePressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard.
func (i *Input) Update() {
	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}
	i.MoveX = moveX

	i.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsKeyJustPressed(ebiten.KeyUp)

	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.CopyStatePressed = inpututil.IsKeyJustPressed(ebiten.KeyF9)
}
