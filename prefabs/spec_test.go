package prefabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTuningSpec(t *testing.T) {
	spec, err := LoadTuningSpec()
	require.NoError(t, err)

	assert.Equal(t, 980.0, spec.Gravity)
	assert.Equal(t, 200.0, spec.Player.MoveSpeed)
	assert.Equal(t, 500.0, spec.Player.JumpStrength)
	assert.Equal(t, 32.0, spec.Player.Width)
	assert.Equal(t, 48.0, spec.Player.Height)
	assert.Equal(t, 0.8, spec.Player.GroundFriction)
	assert.Equal(t, 50.0, spec.Enemy.MoveSpeed)
	assert.Equal(t, 32.0, spec.Enemy.Width)
	assert.Equal(t, 32.0, spec.Enemy.Height)
	assert.Equal(t, 5.0, spec.Enemy.EdgeProbe)
}

func TestLoadLevelSpec(t *testing.T) {
	for _, name := range []string{"level1", "level1.yaml"} {
		t.Run(name, func(t *testing.T) {
			spec, err := LoadLevelSpec(name)
			require.NoError(t, err)

			assert.Equal(t, "grasslands", spec.Name)
			assert.Equal(t, 1600.0, spec.Width)
			assert.Equal(t, 720.0, spec.Height)
			assert.Equal(t, PointSpec{X: 100, Y: 100}, spec.Spawn)

			require.Len(t, spec.Platforms, 5)
			assert.Equal(t, PlatformSpec{X: 0, Y: 680, Width: 1600, Height: 40}, spec.Platforms[0])

			require.Len(t, spec.Enemies, 3)
			assert.Equal(t, EnemySpawnSpec{X: 400, Y: 470}, spec.Enemies[0])
		})
	}
}

func TestLoadLevelSpecMissing(t *testing.T) {
	_, err := LoadLevelSpec("no_such_level")
	assert.Error(t, err)
}

func TestLevelValidate(t *testing.T) {
	cases := []struct {
		name    string
		spec    LevelSpec
		wantErr bool
	}{
		{
			name: "valid",
			spec: LevelSpec{Width: 100, Height: 100, Platforms: []PlatformSpec{{Width: 10, Height: 10}}},
		},
		{
			name:    "zero_dimensions",
			spec:    LevelSpec{},
			wantErr: true,
		},
		{
			name:    "negative_platform",
			spec:    LevelSpec{Width: 100, Height: 100, Platforms: []PlatformSpec{{Width: -1, Height: 10}}},
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.spec.Validate()
			if c.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTuningValidate(t *testing.T) {
	good := TuningSpec{
		Gravity: 980,
		Player:  PlayerTuningSpec{Width: 32, Height: 48, GroundFriction: 0.8},
		Enemy:   EnemyTuningSpec{Width: 32, Height: 32},
	}
	assert.NoError(t, good.Validate())

	noGravity := good
	noGravity.Gravity = 0
	assert.Error(t, noGravity.Validate())

	badFriction := good
	badFriction.Player.GroundFriction = 1.5
	assert.Error(t, badFriction.Validate())
}

func TestLoadScript(t *testing.T) {
	data, err := LoadScript("march.tengo")
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// path prefixes are cleaned off
	same, err := LoadScript("prefabs/scripts/march.tengo")
	require.NoError(t, err)
	assert.Equal(t, data, same)
}

func TestIsPrefabFile(t *testing.T) {
	assert.True(t, isPrefabFile("tuning.yaml"))
	assert.True(t, isPrefabFile("level1.yml"))
	assert.True(t, isPrefabFile("scripts/march.tengo"))
	assert.False(t, isPrefabFile("notes.txt"))
}
