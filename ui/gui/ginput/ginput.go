// Package ginput turns polled mouse state into widget pointer events.
package ginput

import (
	"evilboard/src/base"
	"evilboard/ui/board"
)

// Pointer is the mouse state sampled once per tick.
type Pointer struct {
	X, Y        int
	Left, Right bool
}

// Translate diffs two consecutive samples. A motion event comes first, then
// button edges in left, right order, all at the current position.
func Translate(prev, cur Pointer, bounds board.Rect) []board.Event {
	pos := base.Point{X: float64(cur.X), Y: float64(cur.Y)}
	var out []board.Event
	if prev.X != cur.X || prev.Y != cur.Y {
		out = append(out, board.Event{Kind: board.Moved, Pos: pos, Bounds: bounds})
	}
	edge := func(was, is bool, btn board.Button) {
		switch {
		case !was && is:
			out = append(out, board.Event{Kind: board.Pressed, Button: btn, Pos: pos, Bounds: bounds})
		case was && !is:
			out = append(out, board.Event{Kind: board.Released, Button: btn, Pos: pos, Bounds: bounds})
		}
	}
	edge(prev.Left, cur.Left, board.ButtonLeft)
	edge(prev.Right, cur.Right, board.ButtonRight)
	return out
}
