package obj

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// brainVars are the globals a brain script reads. moving_right is the only
// one written back.
var brainVars = map[string]interface{}{
	"pos_x":        0.0,
	"pos_y":        0.0,
	"vel_x":        0.0,
	"vel_y":        0.0,
	"grounded":     false,
	"moving_right": true,
}

// ScriptBrain steers an enemy with a compiled tengo script. The script sees
// the enemy's state as globals and may reassign moving_right; everything
// else is read-only by convention.
type ScriptBrain struct {
	compiled *tengo.Compiled
}

// NewScriptBrain compiles src once; Think reuses the compiled program every
// frame.
func NewScriptBrain(src []byte) (*ScriptBrain, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	for name, value := range brainVars {
		if err := script.Add(name, value); err != nil {
			return nil, fmt.Errorf("brain: add %s: %w", name, err)
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("brain: compile: %w", err)
	}
	return &ScriptBrain{compiled: compiled}, nil
}

func (b *ScriptBrain) Think(e *Enemy) error {
	vals := map[string]interface{}{
		"pos_x":        e.Pos.X,
		"pos_y":        e.Pos.Y,
		"vel_x":        e.Vel.X,
		"vel_y":        e.Vel.Y,
		"grounded":     e.Grounded,
		"moving_right": e.MovingRight,
	}
	for name, value := range vals {
		if err := b.compiled.Set(name, value); err != nil {
			return fmt.Errorf("brain: set %s: %w", name, err)
		}
	}
	if err := b.compiled.Run(); err != nil {
		return fmt.Errorf("brain: run: %w", err)
	}
	e.MovingRight = b.compiled.Get("moving_right").Bool()
	return nil
}
