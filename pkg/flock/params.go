package flock

// Params controls the physics constants for the simulation.
// It is a plain value record with no identity: copy it, share it, mutate any
// field between ticks. Values are not validated; out-of-range settings just
// produce different emergent behavior.
type Params struct {
	MaxSpeed     float64 // Per-axis velocity clamp
	ViewDistance float64 // How far a boid can see neighbors
	MinDistance  float64 // Personal space radius (also wall repulsion range)
	BoxSize      float64 // Edge length of the [0, BoxSize]^3 world cube

	Avoidance float64 // Separation strength
	Centering float64 // Cohesion strength
	Matching  float64 // Alignment strength

	NumBoids int // Flock size used by Reset
}

// Slider ranges the host exposes for live adjustment.
// Note: DefaultMaxSpeed (500) sits outside MaxSpeedMax on purpose; the range
// only constrains values the user drags to, not the starting value.
const (
	BoxSizeMin, BoxSizeMax           = 1.0, 1000.0
	MaxSpeedMin, MaxSpeedMax         = 1.0, 100.0
	AvoidanceMin, AvoidanceMax       = 0.0, 2.0
	CenteringMin, CenteringMax       = 0.0, 2.0
	MatchingMin, MatchingMax         = 0.0, 2.0
	MinDistanceMin, MinDistanceMax   = 0.0, 2.0
	ViewDistanceMin, ViewDistanceMax = 0.0, 100.0
)

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		MaxSpeed:     500.0,
		ViewDistance: 10.0,
		MinDistance:  5.0,
		BoxSize:      100.0,
		Avoidance:    0.5,
		Centering:    0.075,
		Matching:     0.2,
		NumBoids:     100,
	}
}
