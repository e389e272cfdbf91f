package board

import (
	"math"

	"evilboard/src/base"
)

// Outline points in tile units, relative to a tile centre with the arrow
// pointing along +x.
var (
	arrowTail = [2]base.Point{{X: 0.36, Y: 0.11}, {X: 0.36, Y: -0.11}}
	arrowHead = [5]base.Point{
		{X: -0.36, Y: -0.11},
		{X: -0.36, Y: -0.26},
		{X: 0, Y: 0},
		{X: -0.36, Y: 0.26},
		{X: -0.36, Y: 0.11},
	}
)

const arrowHalfWidth = 0.11

// ArrowPath returns the closed outline of the arrow for mv in board pixels.
// Knight-shaped moves bend once at a right angle; everything else is straight.
func ArrowPath(mv base.Move, tile float64, flipped bool) []base.Point {
	spos := SquareToPixel(mv.From, tile, flipped)
	dpos := SquareToPixel(mv.To, tile, flipped)

	dx := int(math.Round((dpos.X - spos.X) / tile))
	dy := int(math.Round((dpos.Y - spos.Y) / tile))

	at := func(p, origin base.Point, angle float64) base.Point {
		x, y := p.X*tile, p.Y*tile
		sin, cos := math.Sincos(angle)
		return base.Point{
			X: origin.X + x*cos - y*sin + tile/2,
			Y: origin.Y + x*sin + y*cos + tile/2,
		}
	}

	adx, ady := absInt(dx), absInt(dy)
	if min(adx, ady) == 1 && max(adx, ady) == 2 {
		// the elbow sits two tiles out along the long leg
		zy := -arrowHalfWidth
		if (dx*dy < 0) != (adx > ady) {
			zy = arrowHalfWidth
		}

		var legA, legB float64
		if adx > ady {
			legA, legB = math.Atan2(0, float64(dx)), math.Atan2(float64(dy), 0)
		} else {
			legA, legB = math.Atan2(float64(dy), 0), math.Atan2(0, float64(dx))
		}

		out := make([]base.Point, 0, len(arrowTail)+len(arrowHead)+2)
		for _, p := range arrowTail {
			out = append(out, at(p, spos, legA))
		}
		out = append(out, at(base.Point{X: 2 + zy, Y: -arrowHalfWidth}, spos, legA))
		for _, p := range arrowHead {
			out = append(out, at(p, dpos, legB))
		}
		return append(out, at(base.Point{X: 2 - zy, Y: arrowHalfWidth}, spos, legA))
	}

	angle := math.Atan2(float64(dy), float64(dx))
	out := make([]base.Point, 0, len(arrowTail)+len(arrowHead))
	for _, p := range arrowTail {
		out = append(out, at(p, spos, angle))
	}
	for _, p := range arrowHead {
		out = append(out, at(p, dpos, angle))
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
