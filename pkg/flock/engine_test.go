package flock

import (
	"math/rand"
	"testing"

	"github.com/Vixeliz/boid-test/pkg/geometry"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()

	// Exact values matter: hosts and tests rely on them.
	if p.MaxSpeed != 500.0 {
		t.Errorf("MaxSpeed = %v; want 500.0", p.MaxSpeed)
	}
	if p.ViewDistance != 10.0 {
		t.Errorf("ViewDistance = %v; want 10.0", p.ViewDistance)
	}
	if p.MinDistance != 5.0 {
		t.Errorf("MinDistance = %v; want 5.0", p.MinDistance)
	}
	if p.BoxSize != 100.0 {
		t.Errorf("BoxSize = %v; want 100.0", p.BoxSize)
	}
	if p.Avoidance != 0.5 {
		t.Errorf("Avoidance = %v; want 0.5", p.Avoidance)
	}
	if p.Centering != 0.075 {
		t.Errorf("Centering = %v; want 0.075", p.Centering)
	}
	if p.Matching != 0.2 {
		t.Errorf("Matching = %v; want 0.2", p.Matching)
	}
	if p.NumBoids != 100 {
		t.Errorf("NumBoids = %v; want 100", p.NumBoids)
	}
}

func TestNew_SpawnsInsideBox(t *testing.T) {
	p := DefaultParams()
	e := New(p, rand.New(rand.NewSource(1)))

	if e.Len() != p.NumBoids {
		t.Fatalf("Len() = %d; want %d", e.Len(), p.NumBoids)
	}
	for i, b := range e.Boids() {
		for axis, c := range [3]float64{b.Pos.X, b.Pos.Y, b.Pos.Z} {
			if c < 0 || c >= p.BoxSize {
				t.Errorf("boid %d axis %d position %v outside [0, %v)", i, axis, c, p.BoxSize)
			}
		}
		for axis, c := range [3]float64{b.Vel.X, b.Vel.Y, b.Vel.Z} {
			if c < 0 || c >= 10 {
				t.Errorf("boid %d axis %d velocity %v outside [0, 10)", i, axis, c)
			}
		}
		for ch, c := range [3]float64{b.Col.R, b.Col.G, b.Col.B} {
			if c < 0 || c >= 1 {
				t.Errorf("boid %d color channel %d = %v outside [0, 1)", i, ch, c)
			}
		}
		if b.Col.A != 1.0 {
			t.Errorf("boid %d alpha = %v; want 1.0", i, b.Col.A)
		}
	}
}

func TestStep_InvariantsHoldUnderExtremeInput(t *testing.T) {
	p := DefaultParams()
	e := New(p, rand.New(rand.NewSource(2)))

	// Blow up a few velocities way past any reasonable value.
	e.boids[0].Vel = geometry.Vector3D{X: 1e6, Y: -1e6, Z: 1e6}
	e.boids[1].Pos = geometry.Vector3D{X: 99.99, Y: 0.01, Z: 50}

	for tick := 0; tick < 50; tick++ {
		e.Step(10.0) // large dt on purpose
		for i, b := range e.Boids() {
			for axis, c := range [3]float64{b.Pos.X, b.Pos.Y, b.Pos.Z} {
				if c < 0 || c > p.BoxSize {
					t.Fatalf("tick %d boid %d axis %d position %v outside [0, %v]", tick, i, axis, c, p.BoxSize)
				}
			}
			for axis, c := range [3]float64{b.Vel.X, b.Vel.Y, b.Vel.Z} {
				if c < -p.MaxSpeed || c > p.MaxSpeed {
					t.Fatalf("tick %d boid %d axis %d velocity %v outside [%v, %v]", tick, i, axis, c, -p.MaxSpeed, p.MaxSpeed)
				}
			}
		}
	}
}

func TestStep_Deterministic(t *testing.T) {
	p := DefaultParams()
	e1 := New(p, rand.New(rand.NewSource(42)))
	e2 := New(p, rand.New(rand.NewSource(42)))

	for tick := 0; tick < 20; tick++ {
		e1.Step(1.0 / 60)
		e2.Step(1.0 / 60)
	}

	b1, b2 := e1.Boids(), e2.Boids()
	if len(b1) != len(b2) {
		t.Fatalf("flock sizes diverged: %d vs %d", len(b1), len(b2))
	}
	for i := range b1 {
		if b1[i] != b2[i] {
			t.Fatalf("boid %d diverged after identical steps: %+v vs %+v", i, b1[i], b2[i])
		}
	}
}

func TestReset_AlwaysYieldsConfiguredCount(t *testing.T) {
	p := DefaultParams()
	e := New(p, rand.New(rand.NewSource(3)))

	tests := []struct {
		name string
		n    int
	}{
		{"Same size", 100},
		{"Grow", 250},
		{"Shrink", 10},
		{"Back to default", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.NumBoids = tt.n
			e.Post(SetParams{Params: p})
			e.Post(ResetFlock{})
			e.Step(1.0 / 60)

			if e.Len() != tt.n {
				t.Errorf("Len() after reset = %d; want %d", e.Len(), tt.n)
			}
			for i, b := range e.Boids() {
				if b.Pos.X < 0 || b.Pos.X > p.BoxSize {
					t.Errorf("boid %d spawned outside the box: %v", i, b.Pos)
					break
				}
			}
		})
	}
}

func TestPost_FullQueueStillDeliversReset(t *testing.T) {
	p := DefaultParams()
	e := New(p, rand.New(rand.NewSource(8)))

	small := p
	small.NumBoids = 10
	e.Post(SetParams{Params: small})
	e.Post(ResetFlock{})
	e.Step(1.0 / 60)
	if e.Len() != 10 {
		t.Fatalf("Len() = %d; want 10 before the backlog scenario", e.Len())
	}

	// A long stretch without Step (a paused host) can fill the queue with
	// parameter updates. A one-shot reset posted on top must not be lost.
	big := p
	big.NumBoids = 100
	for i := 0; i < 3*commandQueueSize; i++ {
		e.Post(SetParams{Params: big})
	}
	e.Post(ResetFlock{})
	e.Step(1.0 / 60)

	if e.Len() != 100 {
		t.Fatalf("Len() = %d after draining the backlog; want 100 (reset command was lost)", e.Len())
	}
}

func TestReset_UsesCurrentBoxSize(t *testing.T) {
	p := DefaultParams()
	e := New(p, rand.New(rand.NewSource(9)))

	shrunk := p
	shrunk.BoxSize = 25
	e.Post(SetParams{Params: shrunk})
	e.Post(ResetFlock{})
	e.drainCommands()

	// Checked before any Step: the integration clamp would pull strays back
	// into the box and mask a reset that spawned against a stale size.
	for i, b := range e.Boids() {
		for axis, c := range [3]float64{b.Pos.X, b.Pos.Y, b.Pos.Z} {
			if c < 0 || c >= shrunk.BoxSize {
				t.Errorf("boid %d axis %d spawned at %v; want inside [0, %v)", i, axis, c, shrunk.BoxSize)
			}
		}
	}
}

func TestStep_CommandsConsumedAtTickBoundary(t *testing.T) {
	p := DefaultParams()
	e := New(p, rand.New(rand.NewSource(4)))

	slow := p
	slow.MaxSpeed = 0.5
	e.Post(SetParams{Params: slow})

	// Posting alone must not touch the live parameter set.
	if got := e.Params().MaxSpeed; got != 500.0 {
		t.Fatalf("MaxSpeed changed before Step: %v", got)
	}

	e.Step(1.0 / 60)

	if got := e.Params().MaxSpeed; got != 0.5 {
		t.Fatalf("MaxSpeed after Step = %v; want 0.5", got)
	}
	for i, b := range e.Boids() {
		for axis, c := range [3]float64{b.Vel.X, b.Vel.Y, b.Vel.Z} {
			if c < -0.5 || c > 0.5 {
				t.Errorf("boid %d axis %d velocity %v not clamped to new MaxSpeed", i, axis, c)
			}
		}
	}
}

func TestStep_TwoCoincidentBoids(t *testing.T) {
	// Two boids at the same position with the same velocity, default
	// parameters, one step with dt=1: avoidance is excluded by the zero
	// distance, centering and matching contribute nothing (already at the
	// centroid and the average velocity), so both just advance by their
	// velocity.
	p := DefaultParams()
	e := New(p, rand.New(rand.NewSource(5)))

	pos := geometry.Vector3D{X: 50, Y: 50, Z: 50}
	vel := geometry.Vector3D{X: 1, Y: 2, Z: 3}
	e.boids = []Boid{{Pos: pos, Vel: vel}, {Pos: pos, Vel: vel}}
	e.next = make([]Boid, 2)

	e.Step(1.0)

	want := geometry.Vector3D{X: 51, Y: 52, Z: 53}
	for i, b := range e.Boids() {
		if b.Vel != vel {
			t.Errorf("boid %d velocity = %v; want unchanged %v", i, b.Vel, vel)
		}
		if b.Pos != want {
			t.Errorf("boid %d position = %v; want %v", i, b.Pos, want)
		}
	}
}

func TestStep_SnapshotSemantics(t *testing.T) {
	// Boid 0 sits inside boid 1's view distance. If the pass mutated the
	// flock in place, boid 1 would see boid 0's post-update state. With the
	// double buffer, stepping must give the same result as computing each
	// update independently against a frozen copy.
	p := DefaultParams()
	e := New(p, rand.New(rand.NewSource(6)))
	e.boids = []Boid{
		{Pos: geometry.Vector3D{X: 50, Y: 50, Z: 50}, Vel: geometry.Vector3D{X: 5, Y: 0, Z: 0}},
		{Pos: geometry.Vector3D{X: 52, Y: 50, Z: 50}, Vel: geometry.Vector3D{X: -5, Y: 0, Z: 0}},
		{Pos: geometry.Vector3D{X: 54, Y: 50, Z: 50}, Vel: geometry.Vector3D{X: 0, Y: 5, Z: 0}},
	}
	e.next = make([]Boid, 3)

	frozen := make([]Boid, 3)
	copy(frozen, e.boids)

	want := make([]Boid, 3)
	for i := range frozen {
		b := frozen[i]
		b.update(1.0/60, frozen, p)
		want[i] = b
	}

	e.Step(1.0 / 60)

	for i, b := range e.Boids() {
		if b != want[i] {
			t.Errorf("boid %d = %+v; want snapshot-consistent %+v", i, b, want[i])
		}
	}
}

func BenchmarkEngine_Step(b *testing.B) {
	e := New(DefaultParams(), rand.New(rand.NewSource(7)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Step(1.0 / 60)
	}
}
