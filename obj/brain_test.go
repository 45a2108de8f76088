package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angel10x/Maple-Side-Scroller/common"
	"github.com/angel10x/Maple-Side-Scroller/prefabs"
)

func TestScriptBrainThink(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		moving bool
		want   bool
	}{
		{"force_right", `moving_right = true`, false, true},
		{"force_left", `moving_right = false`, true, false},
		{"reads_state", `moving_right = pos_x > 100`, false, true},
		{"leaves_direction_alone", `x := pos_x`, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			brain, err := NewScriptBrain([]byte(c.src))
			require.NoError(t, err)

			e := NewEnemy(400, 100, DefaultTuning(), NewWorld(1600, 720, nil))
			e.MovingRight = c.moving

			require.NoError(t, brain.Think(e))
			assert.Equal(t, c.want, e.MovingRight)
		})
	}
}

func TestScriptBrainCompileError(t *testing.T) {
	_, err := NewScriptBrain([]byte(`if {`))
	assert.Error(t, err)
}

func TestScriptBrainOverridesProbe(t *testing.T) {
	world := NewWorld(1600, 720, []Platform{
		{Rect: common.Rect{X: 300, Y: 520, Width: 200, Height: 20}},
	})
	e := NewEnemy(464, 488, DefaultTuning(), world)

	brain, err := NewScriptBrain([]byte(`moving_right = true`))
	require.NoError(t, err)
	e.SetBrain(brain)

	// the probe would flip at the edge; the brain wins
	e.Update(testDT)
	assert.True(t, e.MovingRight)
}

// the embedded sample script compiles and steers
func TestMarchScript(t *testing.T) {
	src, err := prefabs.LoadScript("march.tengo")
	require.NoError(t, err)

	brain, err := NewScriptBrain(src)
	require.NoError(t, err)

	e := NewEnemy(400, 100, DefaultTuning(), NewWorld(1600, 720, nil))
	e.MovingRight = false
	require.NoError(t, brain.Think(e))
	assert.True(t, e.MovingRight)
}
