// Package rules adapts github.com/corentings/chess/v2 to base.Position.
package rules

import (
	"fmt"
	"strings"

	nchess "github.com/corentings/chess/v2"

	"evilboard/src/base"
)

// Position is an immutable snapshot of a corentings game. Everything the
// widget asks for is computed once when the snapshot is built.
type Position struct {
	fen    string
	board  mailbox
	moves  []base.Move
	kinds  map[base.Move]base.MoveKind
	turn   base.Side
	ep     base.Square
	status base.GameStatus
}

// Start returns the standard initial position.
func Start() *Position {
	p, err := FromFEN(base.FEN_START_GAME)
	if err != nil {
		panic(err)
	}
	return p
}

func FromFEN(fen string) (*Position, error) {
	g, err := newGame(fen)
	if err != nil {
		return nil, err
	}
	return fromGame(g, nil)
}

func newGame(fen string) (*nchess.Game, error) {
	opt, err := nchess.FEN(strings.TrimSpace(fen))
	if err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	return nchess.NewGame(opt), nil
}

// fromGame snapshots g. last is the move that produced the position, nil for
// a position loaded from FEN.
func fromGame(g *nchess.Game, last *nchess.Move) (*Position, error) {
	pos := g.Position()
	if pos == nil {
		return nil, fmt.Errorf("game has no position")
	}
	p := &Position{
		fen:   g.FEN(),
		kinds: map[base.Move]base.MoveKind{},
		ep:    base.NoSquare,
	}

	board := pos.Board()
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			pc := board.Piece(nchess.NewSquare(nchess.File(file), nchess.Rank(rank)))
			if pc == nchess.NoPiece {
				continue
			}
			p.board[rank*8+file] = base.Piece{Kind: kindFromType(pc.Type()), Side: sideFromColor(pc.Color())}
		}
	}

	for _, m := range g.ValidMoves() {
		mv := base.Move{
			From:      squareFromLib(m.S1()),
			To:        squareFromLib(m.S2()),
			Promotion: kindFromType(m.Promo()),
		}
		p.moves = append(p.moves, mv)
		p.kinds[mv] = kindFromTags(mv, m.HasTag)
	}

	p.turn = sideFromColor(pos.Turn())
	if fields := strings.Fields(p.fen); len(fields) > 3 && fields[3] != "-" {
		if idx, err := base.SquareFromAlgebraic(fields[3]); err == nil {
			p.ep = base.Square(idx)
		}
	}

	p.status = statusOf(g, pos, last, p.board.inCheck)
	return p, nil
}

func (p *Position) LegalMoves(from base.Square) []base.Move {
	var out []base.Move
	for _, mv := range p.moves {
		if mv.From == from {
			out = append(out, mv)
		}
	}
	return out
}

// Moves returns every legal move of the side to move.
func (p *Position) Moves() []base.Move {
	return append([]base.Move(nil), p.moves...)
}

// Apply panics when mv is not legal here.
func (p *Position) Apply(mv base.Move) base.Position {
	next, err := p.Play(mv)
	if err != nil {
		panic(err)
	}
	return next
}

// Play is Apply with an error instead of a panic, for input the host
// has not validated.
func (p *Position) Play(mv base.Move) (*Position, error) {
	if _, ok := p.kinds[mv]; !ok {
		return nil, fmt.Errorf("illegal move %s in %s", mv, p.fen)
	}
	g, err := newGame(p.fen)
	if err != nil {
		return nil, err
	}
	m, err := nchess.UCINotation{}.Decode(g.Position(), mv.String())
	if err != nil {
		return nil, fmt.Errorf("decode move %s: %w", mv, err)
	}
	// the generated move carries the full tag set, Check included
	for _, vm := range g.ValidMoves() {
		if vm.S1() == m.S1() && vm.S2() == m.S2() && vm.Promo() == m.Promo() {
			m = &vm
			break
		}
	}
	if err := g.Move(m, nil); err != nil {
		return nil, fmt.Errorf("apply move %s: %w", mv, err)
	}
	return fromGame(g, m)
}

// statusOf asks the library for mate and stalemate after a played move. A
// position loaded from FEN has no last move to read the check tag from and
// the library does not derive check from FEN, so it falls back to the
// attack scan.
func statusOf(g *nchess.Game, pos *nchess.Position, last *nchess.Move, inCheck func(base.Side) bool) base.GameStatus {
	var check bool
	if last != nil {
		check = last.HasTag(nchess.Check)
		switch pos.Status() {
		case nchess.Checkmate:
			return base.Checkmate
		case nchess.Stalemate:
			return base.Stalemate
		}
	} else {
		check = inCheck(sideFromColor(pos.Turn()))
		if len(g.ValidMoves()) == 0 {
			if check {
				return base.Checkmate
			}
			return base.Stalemate
		}
	}
	switch {
	case g.Outcome() == nchess.Draw:
		return base.Draw
	case check:
		return base.Check
	}
	return base.Ongoing
}

func (p *Position) Status() base.GameStatus { return p.status }
func (p *Position) Turn() base.Side         { return p.turn }
func (p *Position) Key() string             { return p.fen }
func (p *Position) FEN() string             { return p.fen }

func (p *Position) PieceAt(sq base.Square) (base.Piece, bool) {
	if !sq.Valid() {
		return base.Piece{}, false
	}
	pc := p.board[sq]
	return pc, pc.Kind != base.NoKind
}

func (p *Position) EnPassant() (base.Square, bool) {
	return p.ep, p.ep != base.NoSquare
}

// MoveKind reports the kind the engine tagged mv with.
func (p *Position) MoveKind(mv base.Move) (base.MoveKind, bool) {
	k, ok := p.kinds[mv]
	return k, ok
}

func kindFromTags(mv base.Move, hasTag func(nchess.MoveTag) bool) base.MoveKind {
	switch {
	case mv.Promotion != base.NoKind:
		return base.Promotion
	case hasTag(nchess.EnPassant):
		return base.EnPassant
	case hasTag(nchess.Capture):
		return base.Capture
	case hasTag(nchess.KingSideCastle), hasTag(nchess.QueenSideCastle):
		return base.Castling
	default:
		return base.Normal
	}
}

func squareFromLib(sq nchess.Square) base.Square {
	return base.NewSquare(int(sq.File()), int(sq.Rank()))
}

func sideFromColor(c nchess.Color) base.Side {
	if c == nchess.Black {
		return base.Black
	}
	return base.White
}

func kindFromType(t nchess.PieceType) base.PieceKind {
	switch t {
	case nchess.Pawn:
		return base.Pawn
	case nchess.Knight:
		return base.Knight
	case nchess.Bishop:
		return base.Bishop
	case nchess.Rook:
		return base.Rook
	case nchess.Queen:
		return base.Queen
	case nchess.King:
		return base.King
	default:
		return base.NoKind
	}
}
