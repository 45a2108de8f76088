package obj

// Tuning is the immutable physics configuration for a scene. It is loaded
// once at startup and passed to constructors; nothing mutates it afterwards.
//
// Units are pixels and seconds: speeds in px/s, gravity in px/s².
type Tuning struct {
	Gravity float64

	PlayerSpeed  float64
	JumpStrength float64
	PlayerWidth  float64
	PlayerHeight float64
	// GroundFriction is a per-frame decay factor applied to horizontal
	// velocity while grounded. It is not time-scaled.
	GroundFriction float64

	EnemySpeed  float64
	EnemyWidth  float64
	EnemyHeight float64
	// EdgeProbe is how far past the leading edge (horizontally) and below
	// the feet (vertically) the patrol probe point sits.
	EdgeProbe float64
}

// DefaultTuning returns the stock tuning values. prefabs/tuning.yaml carries
// the same numbers and wins when present.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:        980,
		PlayerSpeed:    200,
		JumpStrength:   500,
		PlayerWidth:    32,
		PlayerHeight:   48,
		GroundFriction: 0.8,
		EnemySpeed:     50,
		EnemyWidth:     32,
		EnemyHeight:    32,
		EdgeProbe:      5,
	}
}
