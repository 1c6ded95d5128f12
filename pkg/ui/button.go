package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button fires its callback once per click.
type Button struct {
	Label   string
	X, Y    float64
	W, H    float64
	OnClick func()

	pressed bool // debounce: true while the current click is held
}

// NewButton creates a button at (x, y).
func NewButton(x, y, w, h float64, label string, onClick func()) *Button {
	return &Button{
		Label:   label,
		X:       x,
		Y:       y,
		W:       w,
		H:       h,
		OnClick: onClick,
	}
}

func (b *Button) hovered() bool {
	mx, my := ebiten.CursorPosition()
	return float64(mx) >= b.X && float64(mx) <= b.X+b.W &&
		float64(my) >= b.Y && float64(my) <= b.Y+b.H
}

// Update checks for mouse interaction.
func (b *Button) Update() {
	if b.hovered() && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !b.pressed && b.OnClick != nil {
			b.OnClick()
		}
		b.pressed = true
	} else {
		b.pressed = false
	}
}

// Draw renders the button.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := color.RGBA{R: 70, G: 110, B: 170, A: 255}
	if b.hovered() {
		bg = color.RGBA{R: 95, G: 140, B: 210, A: 255}
	}

	vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, true)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H),
		1, color.RGBA{R: 190, G: 190, B: 190, A: 255}, true)
	ebitenutil.DebugPrintAt(screen, b.Label, int(b.X)+8, int(b.Y)+int(b.H)/2-8)
}
