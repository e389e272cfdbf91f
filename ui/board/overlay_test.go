package board

import (
	"math/rand"
	"testing"

	"evilboard/src/base"
	"evilboard/src/game"
	"evilboard/src/rules"
)

const testTile = 50.0

var testBounds = Rect{W: testTile * 8, H: testTile * 8}

func sq(s string) base.Square {
	i, err := base.SquareFromAlgebraic(s)
	if err != nil {
		panic(err)
	}
	return base.Square(i)
}

func centre(s string, flipped bool) base.Point {
	p := SquareToPixel(sq(s), testTile, flipped)
	return base.Point{X: p.X + testTile/2, Y: p.Y + testTile/2}
}

func press(b Button, s string, flipped bool) Event {
	return Event{Kind: Pressed, Button: b, Pos: centre(s, flipped), Bounds: testBounds}
}

func release(b Button, s string, flipped bool) Event {
	return Event{Kind: Released, Button: b, Pos: centre(s, flipped), Bounds: testBounds}
}

func moveTo(s string, flipped bool) Event {
	return Event{Kind: Moved, Pos: centre(s, flipped), Bounds: testBounds}
}

func outside(kind EventKind, b Button) Event {
	return Event{Kind: kind, Button: b, Pos: base.Point{X: -10, Y: 900}, Bounds: testBounds}
}

func mustFEN(t *testing.T, fen string) *rules.Position {
	t.Helper()
	p, err := rules.FromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func startCtx(role game.Role) Context {
	return Context{Board: rules.Start(), Role: role}
}

func destinations(moves []base.Move) map[base.Square]bool {
	out := map[base.Square]bool{}
	for _, m := range moves {
		out[m.To] = true
	}
	return out
}

func TestLeftPressSelectsAndHints(t *testing.T) {
	o := NewOverlay()
	tr := o.Handle(press(ButtonLeft, "e2", false), startCtx(game.Analyst()))

	if got, ok := o.Selected(); !ok || got != sq("e2") {
		t.Fatalf("selected = %v %v", got, ok)
	}
	if !o.Dragging() {
		t.Fatal("press on a piece starts a drag")
	}
	got := destinations(o.Hints())
	if len(got) != 2 || !got[sq("e3")] || !got[sq("e4")] {
		t.Fatalf("hints = %v", o.Hints())
	}
	for _, l := range []Layer{LayerPieces, LayerDrag, LayerBoardOverlay} {
		if !tr.Invalidate.Has(l) {
			t.Errorf("%v not invalidated", l)
		}
	}
	if tr.Invalidate.Has(LayerBoard) {
		t.Error("board layer must stay cached")
	}
}

func TestHintCoverage(t *testing.T) {
	positions := []string{
		base.FEN_START_GAME,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	}
	for _, fen := range positions {
		pos := mustFEN(t, fen)
		ctx := Context{Board: pos, Role: game.Player(base.White)}
		for i := 0; i < 64; i++ {
			from := base.Square(i)
			pc, ok := pos.PieceAt(from)
			if !ok || pc.Side != base.White {
				continue
			}
			o := NewOverlay()
			o.Handle(Event{Kind: Pressed, Button: ButtonLeft, Pos: centre(from.String(), false), Bounds: testBounds}, ctx)
			want := destinations(pos.LegalMoves(from))
			hints := o.Hints()
			if len(hints) != len(want) {
				t.Fatalf("%s %s: %d hints, want %d", fen, from, len(hints), len(want))
			}
			for _, h := range hints {
				if !want[h.To] || h.From != from {
					t.Fatalf("%s %s: unexpected hint %s", fen, from, h)
				}
			}
		}
	}
}

func TestPromotionHintCollapsesToQueen(t *testing.T) {
	ctx := Context{Board: mustFEN(t, "k7/4P3/8/8/8/8/8/7K w - - 0 1"), Role: game.Analyst()}
	o := NewOverlay()
	o.Handle(press(ButtonLeft, "e7", false), ctx)
	hints := o.Hints()
	if len(hints) != 1 || hints[0].Promotion != base.Queen || hints[0].To != sq("e8") {
		t.Fatalf("hints = %v", hints)
	}
	tr := o.Handle(release(ButtonLeft, "e8", false), ctx)
	if !tr.Committed || tr.Move.String() != "e7e8q" {
		t.Fatalf("commit = %+v", tr)
	}
}

func TestRoleGatesHints(t *testing.T) {
	for _, role := range []game.Role{game.Spectator(), game.Player(base.Black)} {
		o := NewOverlay()
		ctx := startCtx(role)
		o.Handle(press(ButtonLeft, "e2", false), ctx)
		if _, ok := o.Selected(); !ok {
			t.Fatalf("%v: piece should still be selectable", role)
		}
		if len(o.Hints()) != 0 {
			t.Fatalf("%v: got hints", role)
		}
		if tr := o.Handle(release(ButtonLeft, "e4", false), ctx); tr.Committed {
			t.Fatalf("%v: committed %s", role, tr.Move)
		}
	}
}

func TestDragCommit(t *testing.T) {
	ctx := startCtx(game.Player(base.White))
	o := NewOverlay()
	o.Handle(press(ButtonLeft, "g1", false), ctx)
	o.Handle(moveTo("f3", false), ctx)
	if d, _ := o.Drag(); TileToSquare(d, false) != sq("f3") {
		t.Fatalf("drag at %v", TileToSquare(d, false))
	}
	tr := o.Handle(release(ButtonLeft, "f3", false), ctx)
	if !tr.Committed || tr.Move.String() != "g1f3" {
		t.Fatalf("commit = %+v", tr)
	}
	if _, ok := o.Selected(); ok || o.Dragging() || len(o.Hints()) != 0 {
		t.Fatal("selection not cleared after commit")
	}
	want := invalidate(LayerBoardOverlay, LayerPieces, LayerDrag, LayerArrows)
	if tr.Invalidate != want {
		t.Fatalf("invalidate = %b, want %b", tr.Invalidate, want)
	}
}

func TestReleaseOffHintKeepsSelection(t *testing.T) {
	ctx := startCtx(game.Analyst())
	o := NewOverlay()
	o.Handle(press(ButtonLeft, "e2", false), ctx)
	tr := o.Handle(release(ButtonLeft, "e6", false), ctx)
	if tr.Committed {
		t.Fatal("release off a hint committed")
	}
	if o.Dragging() {
		t.Fatal("drag survived release")
	}
	if _, ok := o.Selected(); !ok {
		t.Fatal("selection should survive for click-click entry")
	}
	if tr.Invalidate != invalidate(LayerBoardOverlay, LayerPieces, LayerDrag, LayerArrows) {
		t.Fatalf("invalidate = %b", tr.Invalidate)
	}
}

func TestClickClickEntry(t *testing.T) {
	ctx := Context{Board: rules.Start(), Role: game.Analyst(), Flipped: true}
	o := NewOverlay()
	o.Handle(press(ButtonLeft, "b1", true), ctx)
	o.Handle(release(ButtonLeft, "b1", true), ctx)
	tr := o.Handle(press(ButtonLeft, "c3", true), ctx)
	if !tr.Committed || tr.Move.String() != "b1c3" {
		t.Fatalf("commit = %+v", tr)
	}
	if _, ok := o.Selected(); ok {
		t.Fatal("selection not cleared")
	}
}

func TestPressEmptySquareClearsSelection(t *testing.T) {
	ctx := startCtx(game.Analyst())
	o := NewOverlay()
	o.Handle(press(ButtonLeft, "e2", false), ctx)
	o.Handle(release(ButtonLeft, "e2", false), ctx)
	o.Handle(press(ButtonLeft, "d5", false), ctx)
	if _, ok := o.Selected(); ok || len(o.Hints()) != 0 {
		t.Fatal("empty square press should clear selection")
	}
}

func TestReleaseWithoutDragIsNoop(t *testing.T) {
	o := NewOverlay()
	if tr := o.Handle(release(ButtonLeft, "e4", false), startCtx(game.Analyst())); tr != (Transition{}) {
		t.Fatalf("transition = %+v", tr)
	}
}

func TestMoveInvalidatesOnlyDragLayers(t *testing.T) {
	ctx := startCtx(game.Analyst())
	o := NewOverlay()
	if tr := o.Handle(moveTo("e4", false), ctx); tr.Invalidate != 0 {
		t.Fatal("move without drag must not invalidate")
	}
	o.Handle(press(ButtonLeft, "e2", false), ctx)
	tr := o.Handle(moveTo("e4", false), ctx)
	if tr.Invalidate != invalidate(LayerDrag, LayerBoardOverlay) {
		t.Fatalf("invalidate = %b", tr.Invalidate)
	}
}

func TestRightPressCancelsSelection(t *testing.T) {
	ctx := startCtx(game.Analyst())
	o := NewOverlay()
	o.Handle(press(ButtonLeft, "e2", false), ctx)
	tr := o.Handle(press(ButtonRight, "e5", false), ctx)
	if _, ok := o.Selected(); ok || o.Dragging() || len(o.Hints()) != 0 {
		t.Fatal("right press must cancel the left-button interaction")
	}
	if a, ok := o.Anchor(); !ok || a != sq("e5") {
		t.Fatalf("anchor = %v %v", a, ok)
	}
	if tr.Invalidate != invalidate(LayerBoardOverlay, LayerPieces, LayerDrag) {
		t.Fatalf("invalidate = %b", tr.Invalidate)
	}
	// nothing selected: only the overlay changes
	o.Handle(release(ButtonRight, "e5", false), ctx)
	tr = o.Handle(press(ButtonRight, "e6", false), ctx)
	if tr.Invalidate != invalidate(LayerBoardOverlay) {
		t.Fatalf("invalidate without selection = %b", tr.Invalidate)
	}
}

func TestHighlightToggleIdempotent(t *testing.T) {
	ctx := startCtx(game.Spectator())
	o := NewOverlay()
	for i, want := range []bool{true, false, true} {
		o.Handle(press(ButtonRight, "d4", false), ctx)
		tr := o.Handle(release(ButtonRight, "d4", false), ctx)
		if o.Highlighted(sq("d4")) != want {
			t.Fatalf("toggle %d: highlighted = %v", i, !want)
		}
		if tr.Invalidate != invalidate(LayerBoardOverlay) {
			t.Fatalf("invalidate = %b", tr.Invalidate)
		}
		if _, ok := o.Anchor(); ok {
			t.Fatal("anchor not cleared")
		}
	}
}

func TestArrowToggleIdempotent(t *testing.T) {
	ctx := startCtx(game.Spectator())
	o := NewOverlay()
	draw := func(from, to string) Transition {
		o.Handle(press(ButtonRight, from, false), ctx)
		return o.Handle(release(ButtonRight, to, false), ctx)
	}
	draw("g1", "f3")
	tr := draw("e2", "e4")
	if tr.Invalidate != invalidate(LayerArrows) {
		t.Fatalf("invalidate = %b", tr.Invalidate)
	}
	if got := o.Arrows(); len(got) != 2 || got[1].String() != "e2e4" {
		t.Fatalf("arrows = %v", got)
	}
	draw("g1", "f3")
	if got := o.Arrows(); len(got) != 1 || got[0].String() != "e2e4" {
		t.Fatalf("arrows after toggle = %v", got)
	}
	draw("f3", "g1")
	if got := o.Arrows(); len(got) != 2 {
		t.Fatalf("reverse arrow is distinct: %v", got)
	}
}

func TestRightReleaseEdgeCases(t *testing.T) {
	ctx := startCtx(game.Spectator())
	o := NewOverlay()
	if tr := o.Handle(release(ButtonRight, "d4", false), ctx); tr != (Transition{}) {
		t.Fatal("release without anchor must be a no-op")
	}
	o.Handle(press(ButtonRight, "d4", false), ctx)
	o.Handle(outside(Released, ButtonRight), ctx)
	if _, ok := o.Anchor(); ok {
		t.Fatal("anchor must be cleared on release outside the board")
	}
	if len(o.Highlights()) != 0 || len(o.Arrows()) != 0 {
		t.Fatal("release outside toggled something")
	}
	if tr := o.Handle(outside(Pressed, ButtonRight), ctx); tr != (Transition{}) {
		t.Fatal("press outside must be ignored")
	}
}

func TestLeftPressClearsAnnotations(t *testing.T) {
	ctx := startCtx(game.Analyst())
	o := NewOverlay()
	o.Handle(press(ButtonRight, "d4", false), ctx)
	o.Handle(release(ButtonRight, "d4", false), ctx)
	o.Handle(press(ButtonRight, "a1", false), ctx)
	o.Handle(release(ButtonRight, "a8", false), ctx)

	tr := o.Handle(press(ButtonLeft, "h5", false), ctx)
	if len(o.Highlights()) != 0 || len(o.Arrows()) != 0 {
		t.Fatal("left press must clear highlights and arrows")
	}
	if !tr.Invalidate.Has(LayerArrows) || !tr.Invalidate.Has(LayerBoardOverlay) {
		t.Fatalf("invalidate = %b", tr.Invalidate)
	}
}

func TestInteraction(t *testing.T) {
	ctx := startCtx(game.Analyst())
	o := NewOverlay()
	if got := o.Interaction(testBounds, centre("e2", false), ctx); got != Grab {
		t.Fatalf("over piece: %v", got)
	}
	if got := o.Interaction(testBounds, centre("e4", false), ctx); got != Idle {
		t.Fatalf("over empty square: %v", got)
	}
	o.Handle(press(ButtonLeft, "e2", false), ctx)
	if got := o.Interaction(testBounds, centre("e4", false), ctx); got != Grabbing {
		t.Fatalf("while dragging: %v", got)
	}
}

// Random event sequences must never reach a state where a drag or hints
// exist without a selection, or where annotations are duplicated.
func TestOverlayInvariantsUnderRandomEvents(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	roles := []game.Role{game.Analyst(), game.Player(base.White), game.Player(base.Black), game.Spectator()}

	for run := 0; run < 50; run++ {
		ctx := Context{Board: rules.Start(), Role: roles[run%len(roles)], Flipped: run%2 == 1}
		o := NewOverlay()
		for step := 0; step < 200; step++ {
			ev := Event{
				Kind:   EventKind(rng.Intn(3)),
				Button: Button(rng.Intn(2)),
				Pos:    base.Point{X: rng.Float64()*500 - 50, Y: rng.Float64()*500 - 50},
				Bounds: testBounds,
			}
			tr := o.Handle(ev, ctx)
			if tr.Committed {
				ctx.Board = ctx.Board.Apply(tr.Move)
				o.Reset()
				if ctx.Board.Status() == base.Checkmate || ctx.Board.Status() == base.Stalemate {
					ctx.Board = rules.Start()
				}
			}

			_, selected := o.Selected()
			if o.Dragging() && !selected {
				t.Fatalf("run %d step %d: drag without selection", run, step)
			}
			if len(o.Hints()) > 0 && !selected {
				t.Fatalf("run %d step %d: hints without selection", run, step)
			}
			seen := map[base.Move]bool{}
			for _, a := range o.Arrows() {
				if seen[a] {
					t.Fatalf("run %d step %d: duplicate arrow %s", run, step, a)
				}
				seen[a] = true
			}
		}
	}
}
