package prefabs

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TuningSpec is the physics configuration loaded from tuning.yaml.
type TuningSpec struct {
	Gravity float64          `yaml:"gravity"`
	Player  PlayerTuningSpec `yaml:"player"`
	Enemy   EnemyTuningSpec  `yaml:"enemy"`
}

type PlayerTuningSpec struct {
	MoveSpeed      float64 `yaml:"move_speed"`
	JumpStrength   float64 `yaml:"jump_strength"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	GroundFriction float64 `yaml:"ground_friction"`
}

type EnemyTuningSpec struct {
	MoveSpeed float64 `yaml:"move_speed"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	EdgeProbe float64 `yaml:"edge_probe"`
}

func (s *TuningSpec) Validate() error {
	if s.Gravity <= 0 {
		return fmt.Errorf("prefabs: tuning: gravity must be positive, got %g", s.Gravity)
	}
	if s.Player.Width <= 0 || s.Player.Height <= 0 {
		return fmt.Errorf("prefabs: tuning: invalid player size %gx%g", s.Player.Width, s.Player.Height)
	}
	if s.Enemy.Width <= 0 || s.Enemy.Height <= 0 {
		return fmt.Errorf("prefabs: tuning: invalid enemy size %gx%g", s.Enemy.Width, s.Enemy.Height)
	}
	if s.Player.GroundFriction < 0 || s.Player.GroundFriction > 1 {
		return fmt.Errorf("prefabs: tuning: ground_friction must be in [0,1], got %g", s.Player.GroundFriction)
	}
	return nil
}

// LevelSpec describes one scene: world bounds, the platform list in
// resolution order, and spawn points.
type LevelSpec struct {
	Name      string           `yaml:"name"`
	Width     float64          `yaml:"width"`
	Height    float64          `yaml:"height"`
	Spawn     PointSpec        `yaml:"spawn"`
	Platforms []PlatformSpec   `yaml:"platforms"`
	Enemies   []EnemySpawnSpec `yaml:"enemies"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlatformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type EnemySpawnSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	// Brain names an optional tengo script in prefabs/scripts (basename,
	// no extension). Empty keeps the default patrol.
	Brain string `yaml:"brain,omitempty"`
}

func (s *LevelSpec) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("prefabs: level %s: invalid dimensions %gx%g", s.Name, s.Width, s.Height)
	}
	for i, p := range s.Platforms {
		if p.Width < 0 || p.Height < 0 {
			return fmt.Errorf("prefabs: level %s: platform %d has negative size %gx%g", s.Name, i, p.Width, p.Height)
		}
	}
	return nil
}

// LoadSpec loads and unmarshals one YAML spec by file name.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadTuningSpec() (*TuningSpec, error) {
	spec, err := LoadSpec[TuningSpec]("tuning.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadLevelSpec loads a level by basename; the .yaml extension is optional.
func LoadLevelSpec(name string) (*LevelSpec, error) {
	if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
		name += ".yaml"
	}
	spec, err := LoadSpec[LevelSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}
