package ghelper

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) *ebiten.Image {
	// anti-aliased rounded rectangle via gg
	dc := gg.NewContext(w, h)
	dc.SetColor(fill)
	dc.DrawRoundedRectangle(strokeW/2, strokeW/2, float64(w)-strokeW, float64(h)-strokeW, float64(radius))
	dc.FillPreserve()
	dc.SetColor(stroke)
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

func PointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}

var pixel = func() *ebiten.Image {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return px
}()

// DrawRect fills an axis-aligned rectangle.
func DrawRect(screen *ebiten.Image, x, y, w, h float64, col color.Color) {
	if screen == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(pixel, op)
}

func DrawRectStroke(screen *ebiten.Image, x, y, w, h, thickness float64, col color.Color) {
	if screen == nil || w <= 0 || h <= 0 || thickness <= 0 {
		return
	}
	thickness = math.Min(thickness, math.Min(w, h)/2.0)

	DrawRect(screen, x, y, w, thickness, col)                                   // up
	DrawRect(screen, x, y+h-thickness, w, thickness, col)                       // down
	DrawRect(screen, x, y+thickness, thickness, h-thickness*2, col)             // left
	DrawRect(screen, x+w-thickness, y+thickness, thickness, h-2*thickness, col) // right
}

// Upload copies src into dst, reallocating dst when the size differs.
func Upload(dst *ebiten.Image, src image.Image) *ebiten.Image {
	if src == nil {
		return dst
	}
	b := src.Bounds()
	if dst == nil || dst.Bounds().Dx() != b.Dx() || dst.Bounds().Dy() != b.Dy() {
		if dst != nil {
			dst.Deallocate()
		}
		return ebiten.NewImageFromImage(src)
	}
	if rgba, ok := src.(*image.RGBA); ok && rgba.Stride == 4*b.Dx() {
		dst.WritePixels(rgba.Pix)
		return dst
	}
	dst.Clear()
	dst.DrawImage(ebiten.NewImageFromImage(src), nil)
	return dst
}
