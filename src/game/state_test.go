package game

import (
	"fmt"
	"testing"

	"evilboard/src/base"
)

// mailbox is a minimal position: it knows pieces and the en-passant target
// and moves pieces without any rule checking.
type mailbox struct {
	pieces map[base.Square]base.Piece
	ep     base.Square
	turn   base.Side
	kinds  map[base.Move]base.MoveKind
}

func newMailbox(pieces map[string]base.Piece) *mailbox {
	m := &mailbox{pieces: map[base.Square]base.Piece{}, ep: base.NoSquare}
	for s, p := range pieces {
		m.pieces[sq(s)] = p
	}
	return m
}

func (m *mailbox) LegalMoves(from base.Square) []base.Move { return nil }
func (m *mailbox) Status() base.GameStatus                 { return base.Ongoing }
func (m *mailbox) Turn() base.Side                         { return m.turn }

func (m *mailbox) PieceAt(s base.Square) (base.Piece, bool) {
	p, ok := m.pieces[s]
	return p, ok
}

func (m *mailbox) EnPassant() (base.Square, bool) {
	return m.ep, m.ep != base.NoSquare
}

func (m *mailbox) Apply(mv base.Move) base.Position {
	next := &mailbox{pieces: map[base.Square]base.Piece{}, ep: base.NoSquare, turn: m.turn.Other()}
	for s, p := range m.pieces {
		next.pieces[s] = p
	}
	p := next.pieces[mv.From]
	delete(next.pieces, mv.From)
	if mv.Promotion != base.NoKind {
		p.Kind = mv.Promotion
	}
	next.pieces[mv.To] = p
	return next
}

func (m *mailbox) Key() string {
	return fmt.Sprintf("%v/%d/%d", m.pieces, m.ep, m.turn)
}

type reportingMailbox struct {
	*mailbox
}

func (r reportingMailbox) MoveKind(mv base.Move) (base.MoveKind, bool) {
	k, ok := r.kinds[mv]
	return k, ok
}

func sq(s string) base.Square {
	i, err := base.SquareFromAlgebraic(s)
	if err != nil {
		panic(err)
	}
	return base.Square(i)
}

func mv(s string) base.Move {
	m, err := base.MoveFromUCI(s)
	if err != nil {
		panic(err)
	}
	return m
}

var (
	wK = base.Piece{Kind: base.King, Side: base.White}
	wP = base.Piece{Kind: base.Pawn, Side: base.White}
	wR = base.Piece{Kind: base.Rook, Side: base.White}
	bP = base.Piece{Kind: base.Pawn, Side: base.Black}
	bN = base.Piece{Kind: base.Knight, Side: base.Black}
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]base.Piece
		ep     string
		move   string
		want   base.MoveKind
	}{
		{name: "quiet pawn push", pieces: map[string]base.Piece{"e2": wP}, move: "e2e4", want: base.Normal},
		{name: "king one step", pieces: map[string]base.Piece{"e1": wK}, move: "e1f1", want: base.Normal},
		{name: "king side castle", pieces: map[string]base.Piece{"e1": wK, "h1": wR}, move: "e1g1", want: base.Castling},
		{name: "queen side castle", pieces: map[string]base.Piece{"e1": wK, "a1": wR}, move: "e1c1", want: base.Castling},
		{name: "rook two files is not castling", pieces: map[string]base.Piece{"a1": wR}, move: "a1c1", want: base.Normal},
		{name: "capture", pieces: map[string]base.Piece{"e4": wP, "d5": bP}, move: "e4d5", want: base.Capture},
		{name: "promotion", pieces: map[string]base.Piece{"a7": wP}, move: "a7a8q", want: base.Promotion},
		{name: "promotion beats capture", pieces: map[string]base.Piece{"a7": wP, "b8": bN}, move: "a7b8n", want: base.Promotion},
		{name: "en passant", pieces: map[string]base.Piece{"e5": wP, "d5": bP}, ep: "d6", move: "e5d6", want: base.EnPassant},
		{name: "pawn onto other square with ep set", pieces: map[string]base.Piece{"e5": wP, "d5": bP}, ep: "d6", move: "e5e6", want: base.Normal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMailbox(tt.pieces)
			if tt.ep != "" {
				m.ep = sq(tt.ep)
			}
			if got := Classify(m, mv(tt.move)); got != tt.want {
				t.Fatalf("Classify(%s) = %v, want %v", tt.move, got, tt.want)
			}
		})
	}
}

func TestClassifyPrefersReporter(t *testing.T) {
	m := newMailbox(map[string]base.Piece{"e1": wK, "h1": wR})
	m.kinds = map[base.Move]base.MoveKind{mv("e1g1"): base.Normal}
	if got := Classify(reportingMailbox{m}, mv("e1g1")); got != base.Normal {
		t.Fatalf("reporter answer ignored: got %v", got)
	}
	// moves the reporter does not know fall back to the heuristic
	if got := Classify(reportingMailbox{m}, mv("h1h8")); got != base.Normal {
		t.Fatalf("fallback = %v", got)
	}
}

func TestApplyProducesAnnotation(t *testing.T) {
	start := New(newMailbox(map[string]base.Piece{"e4": wP, "d5": bP}))
	if start.Annotation != nil {
		t.Fatal("initial state must not be annotated")
	}
	next := start.Apply(mv("e4d5"))
	if next.Annotation == nil {
		t.Fatal("applied move must be annotated")
	}
	if next.Annotation.Kind != base.Capture || next.Annotation.Move != mv("e4d5") {
		t.Fatalf("annotation = %+v", *next.Annotation)
	}
	if _, ok := start.Board.PieceAt(sq("e4")); !ok {
		t.Fatal("old state was mutated")
	}
	if start.Equal(next) {
		t.Fatal("states must differ after a move")
	}
	if !next.Equal(GameState{Board: next.Board, Annotation: &Annotation{Move: mv("e4d5"), Kind: base.Capture}}) {
		t.Fatal("equal value states compare unequal")
	}
}

func TestRoleCanMove(t *testing.T) {
	tests := []struct {
		role  Role
		side  base.Side
		allow bool
	}{
		{Player(base.White), base.White, true},
		{Player(base.White), base.Black, false},
		{Player(base.Black), base.Black, true},
		{Analyst(), base.White, true},
		{Analyst(), base.Black, true},
		{Spectator(), base.White, false},
		{Spectator(), base.Black, false},
		{Role{}, base.White, false},
	}
	for _, tt := range tests {
		if got := tt.role.CanMove(tt.side); got != tt.allow {
			t.Errorf("%v.CanMove(%v) = %v", tt.role, tt.side, got)
		}
	}
}

func TestParseRole(t *testing.T) {
	for in, want := range map[string]Role{
		"white":     Player(base.White),
		"Black":     Player(base.Black),
		"analyst":   Analyst(),
		"spectator": Spectator(),
	} {
		got, err := ParseRole(in)
		if err != nil || got != want {
			t.Errorf("ParseRole(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseRole("referee"); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestHistoryTruncatesOnPush(t *testing.T) {
	h := NewHistory(New(newMailbox(map[string]base.Piece{"e2": wP, "d7": bP})))
	h.Push(mv("e2e3"))
	h.Push(mv("d7d6"))
	if h.Len() != 3 || !h.AtTip() {
		t.Fatalf("len %d current %d", h.Len(), h.CurrentMove())
	}
	if err := h.Undo(); err != nil {
		t.Fatal(err)
	}
	if h.AtTip() {
		t.Fatal("undo should leave the tip")
	}
	h.Push(mv("d7d5"))
	if h.Len() != 3 {
		t.Fatalf("future states not truncated: len %d", h.Len())
	}
	if got := h.Current().Annotation.Move; got != mv("d7d5") {
		t.Fatalf("current move %v", got)
	}
	if err := h.Redo(); err == nil {
		t.Fatal("redo past the tip must fail")
	}
	if err := h.GotoMove(0); err != nil || h.Current().Annotation != nil {
		t.Fatalf("goto start: %v", err)
	}
	if n := len(h.Moves()); n != 2 {
		t.Fatalf("moves = %d", n)
	}
}
