package game

import "evilboard/src/base"

// Annotation describes the move that produced a position.
type Annotation struct {
	Move base.Move
	Kind base.MoveKind
}

// KindReporter is implemented by positions whose engine knows the kind of a
// move explicitly. Classify prefers it over the heuristic.
type KindReporter interface {
	MoveKind(mv base.Move) (base.MoveKind, bool)
}

// GameState is an immutable board snapshot plus the annotation of the move
// that produced it. The initial state has no annotation.
type GameState struct {
	Board      base.Position
	Annotation *Annotation
}

func New(board base.Position) GameState {
	return GameState{Board: board}
}

// Apply returns the state after mv. The move must be legal in s.Board.
func (s GameState) Apply(mv base.Move) GameState {
	kind := Classify(s.Board, mv)
	return GameState{
		Board:      s.Board.Apply(mv),
		Annotation: &Annotation{Move: mv, Kind: kind},
	}
}

func (s GameState) Equal(o GameState) bool {
	if (s.Board == nil) != (o.Board == nil) {
		return false
	}
	if s.Board != nil && s.Board.Key() != o.Board.Key() {
		return false
	}
	if (s.Annotation == nil) != (o.Annotation == nil) {
		return false
	}
	return s.Annotation == nil || *s.Annotation == *o.Annotation
}

// Classify derives the kind of mv from the pre-move board.
// Order: promotion, capture, castling, en passant, normal.
func Classify(board base.Position, mv base.Move) base.MoveKind {
	if kr, ok := board.(KindReporter); ok {
		if kind, ok := kr.MoveKind(mv); ok {
			return kind
		}
	}

	if mv.Promotion != base.NoKind {
		return base.Promotion
	}
	if _, ok := board.PieceAt(mv.To); ok {
		return base.Capture
	}
	piece, ok := board.PieceAt(mv.From)
	if !ok {
		return base.Normal
	}
	// heuristic: a king moving exactly two files is castling
	if piece.Kind == base.King && abs(mv.From.File()-mv.To.File()) == 2 {
		return base.Castling
	}
	if piece.Kind == base.Pawn {
		if ep, ok := board.EnPassant(); ok && ep == mv.To {
			return base.EnPassant
		}
	}
	return base.Normal
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
