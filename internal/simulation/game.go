package simulation

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Vixeliz/boid-test/pkg/flock"
	"github.com/Vixeliz/boid-test/pkg/geometry"
	"github.com/Vixeliz/boid-test/pkg/ui"
)

const (
	ScreenWidth  = 960
	ScreenHeight = 720

	// Viewport for the projected box, to the right of the control panel.
	viewCenterX = 590
	viewCenterY = 360
	viewSpan    = 560 // on-screen pixels spanned by the box at zero depth
)

// widget is what the host needs from every control it owns.
type widget interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Game is the ebiten host around the flock engine. It owns the widgets,
// translates them into engine commands once per frame, steps the engine, and
// draws the result. The engine itself never sees any of this.
type Game struct {
	engine *flock.Engine

	boxSize      *ui.Slider
	maxSpeed     *ui.Slider
	avoidance    *ui.Slider
	centering    *ui.Slider
	matching     *ui.Slider
	minDistance  *ui.Slider
	viewDistance *ui.Slider

	pause *ui.Checkbox
	reset *ui.Button
	quit  *ui.Button

	widgets  []widget
	quitting bool
}

// NewGame builds the host around an engine, seeding the sliders from its
// current parameters.
func NewGame(engine *flock.Engine) *Game {
	p := engine.Params()

	const (
		panelX = 10
		width  = 180
		step   = 42
	)
	y := 40.0
	next := func() float64 { v := y; y += step; return v }

	g := &Game{engine: engine}
	g.boxSize = ui.NewSlider(panelX, next(), width, "Box Size", flock.BoxSizeMin, flock.BoxSizeMax, p.BoxSize)
	g.maxSpeed = ui.NewSlider(panelX, next(), width, "Max Speed", flock.MaxSpeedMin, flock.MaxSpeedMax, p.MaxSpeed)
	g.avoidance = ui.NewSlider(panelX, next(), width, "Avoidance", flock.AvoidanceMin, flock.AvoidanceMax, p.Avoidance)
	g.centering = ui.NewSlider(panelX, next(), width, "Centering", flock.CenteringMin, flock.CenteringMax, p.Centering)
	g.matching = ui.NewSlider(panelX, next(), width, "Matching Velocity", flock.MatchingMin, flock.MatchingMax, p.Matching)
	g.minDistance = ui.NewSlider(panelX, next(), width, "Min Distance", flock.MinDistanceMin, flock.MinDistanceMax, p.MinDistance)
	g.viewDistance = ui.NewSlider(panelX, next(), width, "View Distance", flock.ViewDistanceMin, flock.ViewDistanceMax, p.ViewDistance)

	g.pause = ui.NewCheckbox(panelX, next(), "Pause", false)
	g.reset = ui.NewButton(panelX, next(), 80, 24, "reset", func() {
		engine.Post(flock.ResetFlock{})
	})
	y += 4
	g.quit = ui.NewButton(panelX, next(), 80, 24, "quit", func() {
		g.quitting = true
	})

	g.widgets = []widget{
		g.boxSize, g.maxSpeed, g.avoidance, g.centering, g.matching,
		g.minDistance, g.viewDistance, g.pause, g.reset, g.quit,
	}
	return g
}

func (g *Game) Update() error {
	for _, w := range g.widgets {
		w.Update()
	}
	if g.quitting {
		return ebiten.Termination
	}

	// While paused nothing drains the queue, so don't feed it a parameter
	// command per frame; the sliders are re-read on the unpause frame anyway.
	// A reset clicked during the pause stays queued until then.
	if g.pause.Value {
		return nil
	}

	// Slider state becomes a single parameter command, consumed by the engine
	// at the tick boundary. The flock size is config-only and carried over.
	p := g.engine.Params()
	p.BoxSize = g.boxSize.Value
	p.MaxSpeed = g.maxSpeed.Value
	p.Avoidance = g.avoidance.Value
	p.Centering = g.centering.Value
	p.Matching = g.matching.Value
	p.MinDistance = g.minDistance.Value
	p.ViewDistance = g.viewDistance.Value
	g.engine.Post(flock.SetParams{Params: p})

	g.engine.Step(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 18, B: 28, A: 255})

	boxSize := g.engine.Params().BoxSize
	g.drawBox(screen, boxSize)
	for i := range g.engine.Boids() {
		g.drawBoid(screen, &g.engine.Boids()[i], boxSize)
	}

	for _, w := range g.widgets {
		w.Draw(screen)
	}

	msg := fmt.Sprintf("TPS: %.0f  FPS: %.0f  Boids: %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), g.engine.Len())
	ebitenutil.DebugPrint(screen, msg)
}

// project maps a world position inside the box onto the screen with a weak
// perspective around the box center. It also returns the perspective factor
// so callers can scale sprite sizes with depth.
func project(pos geometry.Vector3D, boxSize float64) (sx, sy, persp float64) {
	rel := pos.Sub(geometry.Splat(boxSize / 2))
	focal := boxSize * 2
	persp = focal / (focal + rel.Z)
	scale := viewSpan / boxSize
	sx = viewCenterX + rel.X*persp*scale
	sy = viewCenterY - rel.Y*persp*scale
	return sx, sy, persp
}

// drawBox outlines the near and far faces of the world cube.
func (g *Game) drawBox(screen *ebiten.Image, boxSize float64) {
	clr := color.RGBA{R: 60, G: 60, B: 90, A: 255}
	for _, z := range [2]float64{0, boxSize} {
		x, y, persp := project(geometry.Vector3D{X: 0, Y: boxSize, Z: z}, boxSize)
		side := viewSpan * persp
		vector.StrokeRect(screen, float32(x), float32(y), float32(side), float32(side), 1, clr, true)
	}
}

func (g *Game) drawBoid(screen *ebiten.Image, b *flock.Boid, boxSize float64) {
	sx, sy, persp := project(b.Pos, boxSize)

	// Orient the triangle along the projected heading. Heading falls back to
	// a fixed direction for a motionless boid, so there is always an angle.
	h := b.Heading()
	angle := math.Atan2(-h.Y, h.X)

	size := 6 * persp
	tipX := sx + math.Cos(angle)*size
	tipY := sy + math.Sin(angle)*size
	rightX := sx + math.Cos(angle+2.5)*size*0.8
	rightY := sy + math.Sin(angle+2.5)*size*0.8
	leftX := sx + math.Cos(angle-2.5)*size*0.8
	leftY := sy + math.Sin(angle-2.5)*size*0.8

	r := float32(b.Col.R)
	gc := float32(b.Col.G)
	bc := float32(b.Col.B)
	a := float32(b.Col.A)
	vertices := []ebiten.Vertex{
		{DstX: float32(tipX), DstY: float32(tipY), SrcX: 1, SrcY: 1, ColorR: r, ColorG: gc, ColorB: bc, ColorA: a},
		{DstX: float32(rightX), DstY: float32(rightY), SrcX: 1, SrcY: 1, ColorR: r, ColorG: gc, ColorB: bc, ColorA: a},
		{DstX: float32(leftX), DstY: float32(leftY), SrcX: 1, SrcY: 1, ColorR: r, ColorG: gc, ColorB: bc, ColorA: a},
	}
	indices := []uint16{0, 1, 2}

	screen.DrawTriangles(vertices, indices, whiteImage, &ebiten.DrawTrianglesOptions{})
}

func (g *Game) Layout(w, h int) (int, int) {
	return ScreenWidth, ScreenHeight
}

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}
