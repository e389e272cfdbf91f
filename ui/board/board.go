// Package board is an embeddable chessboard widget: it turns pointer events
// into moves and paints the board as five cached layers.
package board

import (
	"image"

	"github.com/fogleman/gg"

	"evilboard/src/base"
	"evilboard/src/game"
	"evilboard/src/logx"
)

// BState is the external state the host hands the widget each frame.
type BState struct {
	Game    game.GameState
	Role    game.Role
	Flipped bool
}

type Board struct {
	style   Style
	log     logx.Logger
	pieces  *PieceSet
	state   BState
	synced  bool
	overlay *Overlay
	caches  Caches
	subs    []func(Feedback)
}

type Option func(*Board)

func WithStyle(s Style) Option {
	return func(b *Board) { b.style = s }
}

func WithLogger(l logx.Logger) Option {
	return func(b *Board) { b.log = l }
}

// WithPieceSet shares one sprite cache between several boards.
func WithPieceSet(ps *PieceSet) Option {
	return func(b *Board) { b.pieces = ps }
}

func New(opts ...Option) *Board {
	b := &Board{
		style:   GreenStyle,
		overlay: NewOverlay(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = logx.NewNop()
	}
	if b.pieces == nil {
		b.pieces = NewPieceSet()
	}
	return b
}

func (b *Board) State() BState     { return b.state }
func (b *Board) Overlay() *Overlay { return b.overlay }
func (b *Board) Caches() *Caches   { return &b.caches }
func (b *Board) Style() Style      { return b.style }
func (b *Board) context() Context {
	return Context{Board: b.state.Game.Board, Role: b.state.Role, Flipped: b.state.Flipped}
}

func (b *Board) SetStyle(s Style) {
	b.style = s
	b.caches.Invalidate(InvalidateAll)
}

// Subscribe registers fn to receive every feedback signal. Subscribers run
// synchronously and must not block.
func (b *Board) Subscribe(fn func(Feedback)) {
	b.subs = append(b.subs, fn)
}

// Sync hands the widget the current external state. A changed game resets
// the overlay and raises exactly one feedback signal, which is also returned.
// Any change invalidates every layer.
func (b *Board) Sync(st BState) Feedback {
	first := !b.synced
	gameChanged := first || !b.state.Game.Equal(st.Game)
	viewChanged := b.state.Role != st.Role || b.state.Flipped != st.Flipped

	b.state = st
	b.synced = true
	if !gameChanged && !viewChanged {
		return FeedbackNone
	}
	b.caches.Invalidate(InvalidateAll)

	if !gameChanged {
		// hints and drag coordinates depend on role and orientation
		b.overlay.clearSelection()
		return FeedbackNone
	}

	b.overlay.Reset()
	fb := Classify(st.Game)
	if st.Game.Annotation != nil {
		b.log.Debugf("transition %s (%s): %s", st.Game.Annotation.Move, st.Game.Annotation.Kind, fb)
	} else {
		b.log.Debugf("transition to initial position: %s", fb)
	}
	for _, fn := range b.subs {
		fn(fb)
	}
	return fb
}

// Handle feeds one pointer event through the interaction state machine.
func (b *Board) Handle(ev Event) Response {
	if !b.synced || b.state.Game.Board == nil {
		return Response{}
	}
	t := b.overlay.Handle(ev, b.context())
	b.caches.Invalidate(t.Invalidate)
	if t.Committed {
		b.log.Debugf("commit %s", t.Move)
	}
	return Response{Move: t.Move, Committed: t.Committed, Redraw: t.Invalidate != 0 || t.Committed}
}

func (b *Board) Interaction(bounds Rect, pos base.Point) Interaction {
	return b.overlay.Interaction(bounds, pos, b.context())
}

// Render brings every stale layer up to date for a board of side pixels.
func (b *Board) Render(side int) {
	if side <= 0 || !b.synced || b.state.Game.Board == nil {
		return
	}
	p := &painter{
		tile:    float64(side) / 8,
		style:   b.style,
		state:   b.state,
		overlay: b.overlay,
		pieces:  b.pieces,
		log:     b.log,
	}
	b.caches[LayerBoard].get(side, p.paintBoard)
	b.caches[LayerBoardOverlay].get(side, p.paintBoardOverlay)
	b.caches[LayerPieces].get(side, p.paintPieces)
	b.caches[LayerDrag].get(side, p.paintDrag)
	b.caches[LayerArrows].get(side, p.paintArrows)
}

// Draw renders and composites the layers back to front into a square image
// sized for a w x h area.
func (b *Board) Draw(w, h int) image.Image {
	side := int(Layout(float64(w), float64(h)))
	if side <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	b.Render(side)

	dc := gg.NewContext(side, side)
	for l := Layer(0); l < layerCount; l++ {
		if img := b.caches[l].img; img != nil {
			dc.DrawImage(img, 0, 0)
		}
	}
	return dc.Image()
}
