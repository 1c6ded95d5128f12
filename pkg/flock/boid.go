// Package flock implements a 3D boids simulation: autonomous agents that
// steer each tick from local interactions (cohesion, separation, alignment)
// plus containment inside an axis-aligned box.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds and related group motion.
// https://en.wikipedia.org/wiki/Boids
//
// The package is pure numeric state transformation with no rendering
// dependencies; a host reads positions, velocities and colors after each
// Step and draws them however it likes.
package flock

import (
	"math/rand"

	"github.com/Vixeliz/boid-test/pkg/geometry"
)

// Color is a display attribute carried for the renderer, RGBA in [0,1].
// It is assigned once at creation and never read by the simulation.
type Color struct {
	R, G, B, A float64
}

// Boid represents a single entity in the flock.
// We export fields so the renderer can read them directly.
type Boid struct {
	Pos geometry.Vector3D
	Vel geometry.Vector3D
	Col Color
}

// newBoid creates a boid with random position inside the box, random velocity
// in [0,10) per axis and a random opaque color.
func newBoid(rng *rand.Rand, boxSize float64) Boid {
	return Boid{
		Pos: geometry.Vector3D{
			X: rng.Float64() * boxSize,
			Y: rng.Float64() * boxSize,
			Z: rng.Float64() * boxSize,
		},
		Vel: geometry.Vector3D{
			X: rng.Float64() * 10,
			Y: rng.Float64() * 10,
			Z: rng.Float64() * 10,
		},
		Col: Color{
			R: rng.Float64(),
			G: rng.Float64(),
			B: rng.Float64(),
			A: 1.0,
		},
	}
}

// defaultHeading is the facing used when a boid has no velocity to derive one from.
var defaultHeading = geometry.Vector3D{X: 0, Y: 0, Z: -1}

// Heading returns the unit direction the boid is facing, for renderers that
// orient a mesh or sprite along the motion. A (near) zero velocity falls back
// to a fixed default direction rather than producing NaNs.
func (b *Boid) Heading() geometry.Vector3D {
	h := b.Vel.Normalize()
	if h.Eq(geometry.Vector3D{}) {
		return defaultHeading
	}
	return h
}
