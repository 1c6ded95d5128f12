package flock

import (
	"math"

	"github.com/Vixeliz/boid-test/pkg/geometry"
)

// wallFactor is the fixed multiplier for wall repulsion. Unlike the agent
// separation strength it is not tunable.
const wallFactor = 4.0

// update advances a single boid by dt against a start-of-tick snapshot of the
// whole flock. The receiver is a scratch copy; the snapshot is never written,
// so every boid in the same tick sees identical neighbor state.
//
// Rule order matters: centering, avoidance (agents then walls), velocity
// matching, then integration and containment.
func (b *Boid) update(dt float64, snapshot []Boid, p Params) {
	b.center(snapshot, p)
	b.avoid(snapshot, p)
	b.match(snapshot, p)

	b.Pos = b.Pos.Add(b.Vel.Mul(dt))

	// Bounce: negate the velocity component on any axis that left the box,
	// then clamp position back onto the face. Reflection happens before the
	// clamp so an overshooting boid ends exactly on the boundary, moving away.
	if b.Pos.X > p.BoxSize {
		b.Vel.X = -b.Vel.X
	}
	if b.Pos.Y > p.BoxSize {
		b.Vel.Y = -b.Vel.Y
	}
	if b.Pos.Z > p.BoxSize {
		b.Vel.Z = -b.Vel.Z
	}
	if b.Pos.X < 0 {
		b.Vel.X = -b.Vel.X
	}
	if b.Pos.Y < 0 {
		b.Vel.Y = -b.Vel.Y
	}
	if b.Pos.Z < 0 {
		b.Vel.Z = -b.Vel.Z
	}

	b.Pos = b.Pos.Clamp(geometry.Vector3D{}, geometry.Splat(p.BoxSize))
	b.Vel = b.Vel.Clamp(geometry.Splat(-p.MaxSpeed), geometry.Splat(p.MaxSpeed))
}

// center nudges velocity toward the centroid of all boids within view
// distance. The boid itself is part of the snapshot and counts as its own
// neighbor (distance 0 < ViewDistance), contributing its own position to the
// centroid, which is harmless.
func (b *Boid) center(snapshot []Boid, p Params) {
	var sum geometry.Vector3D
	neighbors := 0

	for i := range snapshot {
		if b.Pos.DistanceTo(snapshot[i].Pos) < p.ViewDistance {
			sum = sum.Add(snapshot[i].Pos)
			neighbors++
		}
	}
	if neighbors > 0 {
		centroid := sum.Mul(1 / float64(neighbors))
		b.Vel = b.Vel.Add(centroid.Sub(b.Pos).Mul(p.Centering))
	}
}

// avoid steers away from boids inside the personal space radius, then away
// from any wall closer than that same radius.
func (b *Boid) avoid(snapshot []Boid, p Params) {
	// Separation from other boids. The dist > 0 guard excludes self and any
	// boid exactly on top of us (no direction to flee in).
	var push geometry.Vector3D
	for i := range snapshot {
		dist := b.Pos.DistanceTo(snapshot[i].Pos)
		if dist < p.MinDistance && dist > 0 {
			push = push.Add(b.Pos.Sub(snapshot[i].Pos))
		}
	}
	b.Vel = b.Vel.Add(push.Mul(p.Avoidance))

	// Wall repulsion, per axis and per face, applied after agent separation
	// with its own fixed strength.
	var wall geometry.Vector3D
	wall.X += facePush(b.Pos.X, p.BoxSize, p.MinDistance)
	wall.Y += facePush(b.Pos.Y, p.BoxSize, p.MinDistance)
	wall.Z += facePush(b.Pos.Z, p.BoxSize, p.MinDistance)
	b.Vel = b.Vel.Add(wall.Mul(wallFactor))
}

// facePush returns the repulsion along one axis for both faces of the box:
// away from the high face at boxSize and away from the low face at 0. A boid
// sitting exactly on a face (distance 0) gets no push from it.
func facePush(coord, boxSize, minDistance float64) float64 {
	var push float64

	if d := math.Abs(boxSize - coord); d < minDistance && d > 0 {
		push += coord - boxSize
	}
	if d := math.Abs(coord); d < minDistance && d > 0 {
		push += coord
	}
	return push
}

// match nudges velocity toward the average velocity of all boids within view
// distance. Same neighbor set definition as center, recomputed independently;
// self is again included, contributing its own velocity to the average.
func (b *Boid) match(snapshot []Boid, p Params) {
	var sum geometry.Vector3D
	neighbors := 0

	for i := range snapshot {
		if b.Pos.DistanceTo(snapshot[i].Pos) < p.ViewDistance {
			sum = sum.Add(snapshot[i].Vel)
			neighbors++
		}
	}
	if neighbors > 0 {
		avg := sum.Mul(1 / float64(neighbors))
		b.Vel = b.Vel.Add(avg.Sub(b.Vel).Mul(p.Matching))
	}
}
