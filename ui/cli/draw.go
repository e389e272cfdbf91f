package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"evilboard/src/base"
)

// ANSI-code
const (
	reset       = "\033[0m"
	lightBg     = "\033[47m"
	darkBg      = "\033[100m"
	highlightBg = "\033[41m"
	lastMoveBg  = "\033[43m"
	selectedBg  = "\033[42m"
	whiteF      = "\033[97m"
	blackF      = "\033[30m"
	dimF        = "\033[90m"
)

// DrawOptions carries the overlay state shown next to the pieces.
type DrawOptions struct {
	Color      bool
	Flipped    bool
	Selected   base.Square
	Hints      []base.Square
	Highlights []base.Square
	LastMove   *base.Move
}

// IsColorTerminal reports whether f is a terminal that can show ANSI colours.
func IsColorTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == ""
}

var glyphs = map[base.Piece]string{
	{Kind: base.King, Side: base.White}:   "♔",
	{Kind: base.Queen, Side: base.White}:  "♕",
	{Kind: base.Rook, Side: base.White}:   "♖",
	{Kind: base.Bishop, Side: base.White}: "♗",
	{Kind: base.Knight, Side: base.White}: "♘",
	{Kind: base.Pawn, Side: base.White}:   "♙",
	{Kind: base.King, Side: base.Black}:   "♚",
	{Kind: base.Queen, Side: base.Black}:  "♛",
	{Kind: base.Rook, Side: base.Black}:   "♜",
	{Kind: base.Bishop, Side: base.Black}: "♝",
	{Kind: base.Knight, Side: base.Black}: "♞",
	{Kind: base.Pawn, Side: base.Black}:   "♟",
}

type mark uint8

const (
	markNone mark = iota
	markLastMove
	markSelected
	markHighlight
)

func squareMarks(opts DrawOptions) (map[base.Square]mark, map[base.Square]bool) {
	marks := map[base.Square]mark{}
	if opts.LastMove != nil {
		marks[opts.LastMove.From] = markLastMove
		marks[opts.LastMove.To] = markLastMove
	}
	if opts.Selected.Valid() {
		marks[opts.Selected] = markSelected
	}
	for _, sq := range opts.Highlights {
		marks[sq] = markHighlight
	}
	hints := map[base.Square]bool{}
	for _, sq := range opts.Hints {
		hints[sq] = true
	}
	return marks, hints
}

// PrintPosition writes the board as text, white at the bottom unless
// flipped. Without colour, highlighted squares are wrapped in <>, the last
// move in (), the selection in [] and hint targets carry a dot.
func PrintPosition(w io.Writer, pos base.Position, opts DrawOptions) {
	marks, hints := squareMarks(opts)

	files := "   a  b  c  d  e  f  g  h"
	if opts.Flipped {
		files = "   h  g  f  e  d  c  b  a"
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, files)
	for row := 0; row < 8; row++ {
		rank := 7 - row
		if opts.Flipped {
			rank = row
		}
		fmt.Fprintf(w, "%d ", rank+1)
		for col := 0; col < 8; col++ {
			file := col
			if opts.Flipped {
				file = 7 - col
			}
			sq := base.NewSquare(file, rank)
			p, ok := pos.PieceAt(sq)
			g := " "
			if ok {
				g = glyphs[p]
			} else if hints[sq] {
				g = "·"
			}
			if opts.Color {
				fmt.Fprint(w, colorCell(sq, g, p, ok, marks[sq]))
			} else {
				fmt.Fprint(w, plainCell(g, ok, hints[sq], marks[sq]))
			}
		}
		fmt.Fprintf(w, " %d\n", rank+1)
	}
	fmt.Fprintln(w, files)
	fmt.Fprintln(w)
}

func plainCell(g string, occupied, hint bool, m mark) string {
	if !occupied && !hint {
		g = "."
	}
	switch m {
	case markHighlight:
		return "<" + g + ">"
	case markSelected:
		return "[" + g + "]"
	case markLastMove:
		return "(" + g + ")"
	default:
		return " " + g + " "
	}
}

func colorCell(sq base.Square, g string, p base.Piece, occupied bool, m mark) string {
	// a1 is dark
	bg := lightBg
	if (sq.File()+sq.Rank())%2 == 0 {
		bg = darkBg
	}
	switch m {
	case markHighlight:
		bg = highlightBg
	case markSelected:
		bg = selectedBg
	case markLastMove:
		bg = lastMoveBg
	}
	fg := dimF
	if occupied {
		fg = blackF
		if p.Side == base.White && bg == darkBg {
			fg = whiteF
		}
	}
	return bg + fg + " " + g + " " + reset
}
