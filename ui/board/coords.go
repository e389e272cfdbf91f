package board

import (
	"math"

	"evilboard/src/base"
)

// Layout returns the side of the square the board occupies in a w x h area.
func Layout(w, h float64) float64 {
	return math.Min(w, h)
}

func (r Rect) side() float64 { return Layout(r.W, r.H) }

// Contains reports whether pos falls on the board square anchored at the
// top-left corner of r.
func (r Rect) Contains(pos base.Point) bool {
	s := r.side()
	return s > 0 && pos.X >= r.X && pos.Y >= r.Y && pos.X < r.X+s && pos.Y < r.Y+s
}

// Normalize converts a pixel position into screen tile units, so that the
// board spans [0,8) on both axes.
func Normalize(bounds Rect, pos base.Point) base.Point {
	s := bounds.side()
	if s <= 0 {
		return base.Point{}
	}
	return base.Point{
		X: (pos.X - bounds.X) * 8 / s,
		Y: (pos.Y - bounds.Y) * 8 / s,
	}
}

// TileToSquare maps screen tile units to a square. Unflipped, the top row is
// rank 8; flipped, the leftmost column is the h-file.
func TileToSquare(p base.Point, flipped bool) base.Square {
	fx := clampTile(p.X)
	fy := clampTile(p.Y)

	var file, rank int
	if !flipped {
		file = fx
		rank = 7 - fy
	} else {
		file = 7 - fx
		rank = fy
	}
	return base.NewSquare(file, rank)
}

func clampTile(v float64) int {
	i := int(math.Floor(v))
	if i < 0 {
		return 0
	}
	if i > 7 {
		return 7
	}
	return i
}

func PixelToSquare(bounds Rect, pos base.Point, flipped bool) base.Square {
	return TileToSquare(Normalize(bounds, pos), flipped)
}

// screenTile returns the column and row a square is drawn at.
func screenTile(sq base.Square, flipped bool) (col, row int) {
	if flipped {
		return 7 - sq.File(), sq.Rank()
	}
	return sq.File(), 7 - sq.Rank()
}

// SquareToPixel returns the top-left pixel of the tile of sq, relative to the
// board origin.
func SquareToPixel(sq base.Square, tile float64, flipped bool) base.Point {
	col, row := screenTile(sq, flipped)
	return base.Point{X: float64(col) * tile, Y: float64(row) * tile}
}

// SquareCenter returns the pixel at the centre of sq inside bounds.
func SquareCenter(bounds Rect, sq base.Square, flipped bool) base.Point {
	tile := bounds.side() / 8
	p := SquareToPixel(sq, tile, flipped)
	return base.Point{X: bounds.X + p.X + tile/2, Y: bounds.Y + p.Y + tile/2}
}
