package ghelper

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"evilboard/ui/gui/gbase"
)

// ---- UI ELEMENTS ----

// ---- Button ----

type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image // pre-rendered rounded rect with stroke
	Disabled   bool

	// animation state
	Hover   bool // mouse over
	Pressed bool // mouse currently pressed on this button
	// animation variables
	Scale         float64 // current scale (1.0 default)
	TargetScale   float64
	OffsetY       float64 // current vertical offset for pressed effect
	TargetOffsetY float64
	AnimSpeed     float64 // how fast to approach target (per second)
}

func NewButton(label string, x, y, w, h int, theme gbase.Palette) *Button {
	return &Button{
		Label: label,
		X:     x, Y: y, W: w, H: h,
		Image: RenderRoundedRect(w, h, 10, theme.ButtonFill, theme.ButtonStroke, 2),
		Scale: 1.0, TargetScale: 1.0, AnimSpeed: 10.0,
	}
}

// AppendButton adds a button and returns its index.
func AppendButton(buttons []*Button, b *Button) (int, []*Button) {
	return len(buttons), append(buttons, b)
}

func (b *Button) Contains(px, py int) bool {
	return PointInRect(px, py, b.X, b.Y, b.W, b.H)
}

// Call every Update: pass mouse info, returns true if click finished on this button
func (b *Button) HandleInput(px, py int, justClicked, justReleased bool) bool {
	inside := b.Contains(px, py) && !b.Disabled
	b.Hover = inside

	// a press must start inside the button
	if justClicked && inside {
		b.Pressed = true
		b.TargetScale = 0.96
		b.TargetOffsetY = 2.0
	}
	if justReleased {
		clicked := b.Pressed && inside
		b.Pressed = false
		b.TargetOffsetY = 0
		if clicked {
			b.TargetScale = 1.03 // small click bounce out
			return true
		}
		b.TargetScale = 1.0
	}
	if !b.Pressed {
		b.TargetOffsetY = 0
		b.TargetScale = 1.0
		if inside {
			b.TargetScale = 1.02
		}
	}
	return false
}

// Call every Update with dt seconds to approach the target values
func (b *Button) UpdateAnim(dt float64) {
	if b.AnimSpeed <= 0 {
		b.AnimSpeed = 8.0
	}
	approach := func(cur *float64, target float64) {
		t := 1.0 - math.Exp(-b.AnimSpeed*dt)
		*cur = *cur*(1.0-t) + target*t
	}
	approach(&b.Scale, b.TargetScale)
	approach(&b.OffsetY, b.TargetOffsetY)

	if !b.Pressed && math.Abs(b.Scale-1.03) < 0.005 {
		b.TargetScale = 1.0
	}
}

func (b *Button) DrawAnimated(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	if b.Image == nil {
		return
	}
	cx := float64(b.X + b.W/2)
	cy := float64(b.Y+b.H/2) + b.OffsetY

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Image.Bounds().Dx())/2, -float64(b.Image.Bounds().Dy())/2)
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	if b.Disabled {
		op.ColorScale.ScaleAlpha(0.45)
	}
	screen.DrawImage(b.Image, op)

	col := theme.ButtonText
	if b.Disabled {
		col.A = 0x70
	}
	bounds := text.BoundString(face, b.Label)
	text.Draw(screen, b.Label, face, int(cx)-bounds.Dx()/2, int(cy)+bounds.Dy()/2, col)
}

// ---- Toast ----

// Toast is a short message that fades out on its own.
type Toast struct {
	Text  string
	ttl   float64
	total float64
}

func (t *Toast) Show(msg string, seconds float64) {
	t.Text = msg
	t.ttl = seconds
	t.total = seconds
}

func (t *Toast) Visible() bool { return t.ttl > 0 }

func (t *Toast) Update(dt float64) {
	if t.ttl > 0 {
		t.ttl -= dt
	}
}

// Alpha fades during the last third of the lifetime.
func (t *Toast) Alpha() float64 {
	if t.ttl <= 0 || t.total <= 0 {
		return 0
	}
	return math.Min(1, 3*t.ttl/t.total)
}

func (t *Toast) Draw(screen *ebiten.Image, face font.Face, theme gbase.Palette, cx, y int) {
	if !t.Visible() {
		return
	}
	bounds := text.BoundString(face, t.Text)
	w, h := bounds.Dx()+32, bounds.Dy()+20
	img := RenderRoundedRect(w, h, 10, theme.ButtonFill, theme.Accent, 2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(cx-w/2), float64(y))
	op.ColorScale.ScaleAlpha(float32(t.Alpha()))
	screen.DrawImage(img, op)

	col := theme.MenuText
	col.A = uint8(float64(col.A) * t.Alpha())
	text.Draw(screen, t.Text, face, cx-bounds.Dx()/2, y+h/2+bounds.Dy()/2-2, col)
}
