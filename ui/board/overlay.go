package board

import (
	"math/bits"

	"evilboard/src/base"
	"evilboard/src/game"
)

// Context is the external state an event is interpreted against.
type Context struct {
	Board   base.Position
	Role    game.Role
	Flipped bool
}

// Overlay is the interaction state of one board: selection, drag, hints and
// the right-button annotations.
type Overlay struct {
	selected  base.Square
	hints     []base.Move
	drag      base.Point
	dragging  bool
	highlight uint64
	anchor    base.Square
	arrows    []base.Move
}

func NewOverlay() *Overlay {
	return &Overlay{selected: base.NoSquare, anchor: base.NoSquare}
}

// Transition is the outcome of one event: the layers it made stale and the
// move it committed, if any.
type Transition struct {
	Invalidate Invalidation
	Move       base.Move
	Committed  bool
}

func (o *Overlay) Selected() (base.Square, bool) { return o.selected, o.selected != base.NoSquare }
func (o *Overlay) Anchor() (base.Square, bool)   { return o.anchor, o.anchor != base.NoSquare }
func (o *Overlay) Drag() (base.Point, bool)      { return o.drag, o.dragging }
func (o *Overlay) Dragging() bool                { return o.dragging }

func (o *Overlay) Hints() []base.Move {
	return append([]base.Move(nil), o.hints...)
}

func (o *Overlay) Arrows() []base.Move {
	return append([]base.Move(nil), o.arrows...)
}

func (o *Overlay) Highlighted(sq base.Square) bool {
	return sq.Valid() && o.highlight&(1<<sq) != 0
}

// Highlights returns the highlighted squares in index order.
func (o *Overlay) Highlights() []base.Square {
	out := make([]base.Square, 0, bits.OnesCount64(o.highlight))
	for set := o.highlight; set != 0; set &= set - 1 {
		out = append(out, base.Square(bits.TrailingZeros64(set)))
	}
	return out
}

func (o *Overlay) ToggleHighlight(sq base.Square) {
	o.highlight ^= 1 << sq
}

// ToggleArrow removes mv from the arrows if present, else appends it.
func (o *Overlay) ToggleArrow(mv base.Move) {
	for i, a := range o.arrows {
		if a == mv {
			o.arrows = append(o.arrows[:i], o.arrows[i+1:]...)
			return
		}
	}
	o.arrows = append(o.arrows, mv)
}

func (o *Overlay) hintTo(sq base.Square) (base.Move, bool) {
	for _, mv := range o.hints {
		if mv.To == sq {
			return mv, true
		}
	}
	return base.Move{}, false
}

// clearSelection drops the selection, hints and drag and reports whether
// there was a selection to drop.
func (o *Overlay) clearSelection() bool {
	had := o.selected != base.NoSquare || o.dragging
	o.selected = base.NoSquare
	o.hints = o.hints[:0]
	o.dragging = false
	o.drag = base.Point{}
	return had
}

// clearAnnotations drops highlights and arrows and reports whether there were
// any arrows to drop.
func (o *Overlay) clearAnnotations() bool {
	had := len(o.arrows) > 0
	o.highlight = 0
	o.arrows = o.arrows[:0]
	return had
}

// Reset returns the overlay to its initial state.
func (o *Overlay) Reset() {
	o.clearSelection()
	o.clearAnnotations()
	o.anchor = base.NoSquare
}

// Handle interprets ev against ctx.
func (o *Overlay) Handle(ev Event, ctx Context) Transition {
	in := ev.Bounds.Contains(ev.Pos)
	p := Normalize(ev.Bounds, ev.Pos)

	switch {
	case ev.Kind == Pressed && ev.Button == ButtonLeft:
		if !in {
			return Transition{}
		}
		return o.leftPress(p, ctx)
	case ev.Kind == Released && ev.Button == ButtonLeft:
		return o.leftRelease(p, in, ctx)
	case ev.Kind == Moved:
		if !o.dragging || !in {
			return Transition{}
		}
		o.drag = p
		return Transition{Invalidate: invalidate(LayerDrag, LayerBoardOverlay)}
	case ev.Kind == Pressed && ev.Button == ButtonRight:
		if !in {
			return Transition{}
		}
		o.anchor = TileToSquare(p, ctx.Flipped)
		t := Transition{Invalidate: invalidate(LayerBoardOverlay)}
		if o.clearSelection() {
			// the dragged piece goes back to its square
			t.Invalidate |= invalidate(LayerPieces, LayerDrag)
		}
		return t
	case ev.Kind == Released && ev.Button == ButtonRight:
		return o.rightRelease(p, in, ctx)
	}
	return Transition{}
}

func (o *Overlay) leftPress(p base.Point, ctx Context) Transition {
	sq := TileToSquare(p, ctx.Flipped)

	var t Transition
	if o.clearAnnotations() {
		t.Invalidate |= invalidate(LayerArrows)
	}
	t.Invalidate |= invalidate(LayerBoardOverlay)

	// click-click entry
	if mv, ok := o.hintTo(sq); ok {
		o.clearSelection()
		t.Invalidate |= invalidate(LayerPieces, LayerDrag)
		t.Move, t.Committed = mv, true
		return t
	}

	if _, ok := ctx.Board.PieceAt(sq); !ok {
		o.clearSelection()
		t.Invalidate |= invalidate(LayerPieces, LayerDrag)
		return t
	}

	o.clearSelection()
	o.selected = sq
	o.drag = p
	o.dragging = true
	if ctx.Role.CanMove(ctx.Board.Turn()) {
		o.hints = collectHints(o.hints, ctx.Board.LegalMoves(sq))
	}
	t.Invalidate |= invalidate(LayerPieces, LayerDrag)
	return t
}

// collectHints keeps one move per destination; among promotions the queen
// stands for the rest.
func collectHints(dst, moves []base.Move) []base.Move {
	for _, mv := range moves {
		idx := -1
		for i, h := range dst {
			if h.To == mv.To {
				idx = i
				break
			}
		}
		switch {
		case idx < 0:
			dst = append(dst, mv)
		case mv.Promotion == base.Queen:
			dst[idx] = mv
		}
	}
	return dst
}

func (o *Overlay) leftRelease(p base.Point, in bool, ctx Context) Transition {
	if !o.dragging {
		return Transition{}
	}
	o.dragging = false
	o.drag = base.Point{}

	t := Transition{Invalidate: invalidate(LayerBoardOverlay, LayerPieces, LayerDrag, LayerArrows)}
	if !in {
		return t
	}
	if mv, ok := o.hintTo(TileToSquare(p, ctx.Flipped)); ok {
		o.clearSelection()
		t.Move, t.Committed = mv, true
	}
	return t
}

func (o *Overlay) rightRelease(p base.Point, in bool, ctx Context) Transition {
	anchor, ok := o.Anchor()
	if !ok {
		return Transition{}
	}
	o.anchor = base.NoSquare
	if !in {
		return Transition{}
	}

	sq := TileToSquare(p, ctx.Flipped)
	if sq == anchor {
		o.ToggleHighlight(sq)
		return Transition{Invalidate: invalidate(LayerBoardOverlay)}
	}
	o.ToggleArrow(base.Move{From: anchor, To: sq})
	return Transition{Invalidate: invalidate(LayerArrows)}
}

// Interaction reports the affordance for a pointer at pos.
func (o *Overlay) Interaction(bounds Rect, pos base.Point, ctx Context) Interaction {
	if o.dragging {
		return Grabbing
	}
	if ctx.Board == nil || !bounds.Contains(pos) {
		return Idle
	}
	if _, ok := ctx.Board.PieceAt(PixelToSquare(bounds, pos, ctx.Flipped)); ok {
		return Grab
	}
	return Idle
}
