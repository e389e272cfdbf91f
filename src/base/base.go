package base

import "fmt"

// Forsyth–Edwards Notation
const FEN_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type Side uint8

const (
	White Side = iota
	Black
)

func (s Side) Other() Side {
	if s == White {
		return Black
	}
	return White
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

type Piece struct {
	Kind PieceKind
	Side Side
}

type GameStatus uint8

const (
	Ongoing GameStatus = iota
	Check
	Checkmate
	Stalemate
	Draw
)

func (gs GameStatus) String() string {
	switch gs {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Square is a board cell: index = rank*8 + file, a1 == 0, h8 == 63.
type Square uint8

const NoSquare Square = 0xff

func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		panic(fmt.Sprintf("square out of grid: file %d rank %d", file, rank))
	}
	return Square(rank*8 + file)
}

func (sq Square) File() int { return int(sq) % 8 }
func (sq Square) Rank() int { return int(sq) / 8 }

func (sq Square) Valid() bool { return sq < 64 }

func (sq Square) String() string {
	s, err := AlgebraicFromSquare(int(sq))
	if err != nil {
		return "-"
	}
	return s
}

// Move is a move descriptor: source, destination and an optional promotion.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

// String returns the move in UCI form, e.g. "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	switch m.Promotion {
	case Knight:
		s += "n"
	case Bishop:
		s += "b"
	case Rook:
		s += "r"
	case Queen:
		s += "q"
	}
	return s
}

func MoveFromUCI(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("invalid move %q", s)
	}
	from, err := SquareFromAlgebraic(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	to, err := SquareFromAlgebraic(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	mv := Move{From: Square(from), To: Square(to)}
	if len(s) == 5 {
		mv.Promotion = ConvertKindFromRune(rune(s[4]))
		if mv.Promotion == NoKind || mv.Promotion == Pawn || mv.Promotion == King {
			return Move{}, fmt.Errorf("invalid promotion in %q", s)
		}
	}
	return mv, nil
}

type MoveKind uint8

const (
	Normal MoveKind = iota
	Capture
	EnPassant
	Castling
	Promotion
)

func (k MoveKind) String() string {
	switch k {
	case Capture:
		return "capture"
	case EnPassant:
		return "en passant"
	case Castling:
		return "castling"
	case Promotion:
		return "promotion"
	default:
		return "normal"
	}
}

// Point is a position in pixels or tile units, depending on context.
type Point struct {
	X float64
	Y float64
}

// Position is the board authority consulted by the game model and the widget.
// Implementations are immutable: Apply returns a new position.
type Position interface {
	LegalMoves(from Square) []Move
	Apply(mv Move) Position
	Status() GameStatus
	Turn() Side
	PieceAt(sq Square) (Piece, bool)
	EnPassant() (Square, bool)
	// Key identifies the position for change detection.
	Key() string
}

func SquareFromAlgebraic(pos string) (int, error) {
	// 'a' ~ 'h' to number
	// '1' ~ '8' to 0-7
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return -1, fmt.Errorf("invalid position")
	}
	return int(pos[1]-'1')*8 + int(pos[0]-'a'), nil
}

func AlgebraicFromSquare(index int) (string, error) {
	if index < 0 || index >= 64 {
		return "", fmt.Errorf("invalid square index")
	}
	return string([]rune{rune(index%8 + 'a'), rune(index/8 + '1')}), nil
}

func ConvertKindFromRune(p rune) PieceKind {
	switch p {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

func ConvertRuneFromPiece(p Piece) rune {
	var r rune
	switch p.Kind {
	case Pawn:
		r = 'P'
	case Knight:
		r = 'N'
	case Bishop:
		r = 'B'
	case Rook:
		r = 'R'
	case Queen:
		r = 'Q'
	case King:
		r = 'K'
	default:
		return '.'
	}
	if p.Side == Black {
		r += 'a' - 'A'
	}
	return r
}
