package flock

import (
	"math/rand"
	"time"
)

// commandQueueSize bounds how many UI commands can pile up between two ticks.
// At one Step per frame this never fills in practice.
const commandQueueSize = 64

// Command is a request the host posts to the engine. Commands are buffered
// and consumed at the next tick boundary, so the simulation never observes a
// parameter change or a reset mid-step.
type Command interface {
	apply(e *Engine)
}

// SetParams replaces the live parameter set.
type SetParams struct {
	Params Params
}

func (c SetParams) apply(e *Engine) { e.params = c.Params }

// ResetFlock discards all boids and spawns a fresh random flock.
type ResetFlock struct{}

func (c ResetFlock) apply(e *Engine) { e.Reset() }

// Engine owns the flock and advances it one tick at a time.
//
// The contract is strictly single-threaded: the host calls Step once per
// frame and reads Boids only between calls. Within a Step every boid is
// computed against the start-of-tick snapshot and written into a second
// buffer, swapped in after the full pass; no boid ever sees a neighbor's
// same-tick update. The O(n^2) neighbor scan is fine at the default flock
// size; a spatial grid is the extension point if that ever changes.
type Engine struct {
	params Params
	boids  []Boid
	next   []Boid // scratch buffer, same length as boids
	cmds   chan Command
	rng    *rand.Rand
}

// New creates an engine with an initial random flock of p.NumBoids boids.
// Step itself never touches the RNG; it is only used by Reset, so two engines
// stepped from identical flocks stay identical regardless of seed.
func New(p Params, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e := &Engine{
		params: p,
		cmds:   make(chan Command, commandQueueSize),
		rng:    rng,
	}
	e.Reset()
	return e
}

// Post queues a command for the next tick boundary. It never blocks and
// never loses a command: if the queue has filled up (e.g. a long stretch
// without a Step to drain it), the backlog is applied immediately — safe
// under the single-threaded contract, since Post is never called mid-step —
// and cmd is queued behind it.
func (e *Engine) Post(cmd Command) {
	select {
	case e.cmds <- cmd:
	default:
		e.drainCommands()
		e.cmds <- cmd
	}
}

// Step drains pending commands, then advances every boid by dt seconds.
// dt is expected non-negative; there are no error conditions.
func (e *Engine) Step(dt float64) {
	e.drainCommands()

	cur := e.boids
	next := e.next
	for i := range cur {
		b := cur[i]
		b.update(dt, cur, e.params)
		next[i] = b
	}
	e.boids, e.next = next, cur
}

func (e *Engine) drainCommands() {
Loop:
	for {
		select {
		case cmd := <-e.cmds:
			cmd.apply(e)
		default:
			break Loop
		}
	}
}

// Reset replaces the flock with NumBoids fresh boids at random positions
// inside the current box, with random velocities and colors. Buffers are
// reused when the flock size is unchanged.
func (e *Engine) Reset() {
	n := e.params.NumBoids
	if len(e.boids) != n {
		e.boids = make([]Boid, n)
		e.next = make([]Boid, n)
	}
	for i := range e.boids {
		e.boids[i] = newBoid(e.rng, e.params.BoxSize)
	}
}

// Boids returns the ordered agent list for rendering. The slice is owned by
// the engine and only valid to read between Step calls.
func (e *Engine) Boids() []Boid {
	return e.boids
}

// Params returns the live parameter set.
func (e *Engine) Params() Params {
	return e.params
}

// Len returns the current flock size.
func (e *Engine) Len() int {
	return len(e.boids)
}
