package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"evilboard/src/base"
	"evilboard/src/game"
	"evilboard/src/logx"
	"evilboard/ui/board"
)

// terminal hosts address squares, so any fixed area works
var termBounds = board.Rect{W: 800, H: 800}

type Options struct {
	Role    game.Role
	Flipped bool
	Color   bool
}

// CLIProcessing is a terminal host for the board widget: squares are
// clicked by name and the overlay is printed next to the pieces.
type CLIProcessing struct {
	history *game.History
	board   *board.Board
	opts    Options
	in      io.Reader
	out     io.Writer
	log     logx.Logger
}

func NewCLI(h *game.History, opts Options, l logx.Logger, in io.Reader, out io.Writer) *CLIProcessing {
	c := &CLIProcessing{
		history: h,
		board:   board.New(board.WithLogger(l.Named("board"))),
		opts:    opts,
		in:      in,
		out:     out,
		log:     l,
	}
	c.board.Subscribe(func(fb board.Feedback) {
		fmt.Fprintf(c.out, "» %s\n", fb)
	})
	return c
}

// raw processing
// - enter a command or a UCI move
// - left/right arrow keys to undo/redo
// - q or Ctrl+C to exit
func (c *CLIProcessing) Run() error {
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.RunLineMode()
	}
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	// raw terminals need explicit carriage returns
	out := c.out
	c.out = crlfWriter{w: out}
	defer func() { c.out = out }()

	r := bufio.NewReader(c.in)
	var inputBuf strings.Builder

	c.refresh()
	fmt.Fprint(c.out, "\nType a move or a command ('help'), left/right arrows to undo/redo, 'q' to quit.\n> ")

	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		switch {
		case b == 3: // Ctrl+C
			fmt.Fprintln(c.out, "\nInterrupted")
			return nil
		case b == 0x1b: // escape sequence, possibly an arrow
			b1, err1 := r.ReadByte()
			b2, err2 := r.ReadByte()
			if err1 != nil || err2 != nil || b1 != '[' {
				continue
			}
			switch b2 {
			case 'D':
				c.exec("undo")
			case 'C':
				c.exec("redo")
			}
			fmt.Fprint(c.out, "> ")
		case b == '\r' || b == '\n':
			line := inputBuf.String()
			inputBuf.Reset()
			fmt.Fprintln(c.out)
			if c.exec(line) {
				return nil
			}
			fmt.Fprint(c.out, "> ")
		case b == 127 || b == 8: // backspace
			s := inputBuf.String()
			if len(s) > 0 {
				inputBuf.Reset()
				inputBuf.WriteString(s[:len(s)-1])
				fmt.Fprint(c.out, "\b \b")
			}
		case b >= 32 && b <= 126:
			inputBuf.WriteByte(b)
			fmt.Fprintf(c.out, "%c", b)
		}
	}
}

func (c *CLIProcessing) RunLineMode() error {
	// fallback: basic line mode using bufio.Scanner
	scanner := bufio.NewScanner(c.in)
	c.refresh()
	fmt.Fprintln(c.out, "Type a move or a command ('help'), 'q' to quit.")
	for scanner.Scan() {
		if c.exec(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

const help = `commands:
  e2e4            play a move (e7e8q promotes)
  click <sq>      left click a square (select, move to a hint)
  mark <sq>       right click a square (toggle highlight)
  arrow <a> <b>   right drag from a to b (toggle arrow)
  undo, redo, first, last
  flip, fen, moves, help, q`

// exec runs one command line and reports whether the session should end.
func (c *CLIProcessing) exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	h := c.history
	var err error
	switch cmd := strings.ToLower(fields[0]); cmd {
	case "q", "quit", "exit":
		fmt.Fprintln(c.out, "Quitting")
		return true
	case "help", "?":
		fmt.Fprintln(c.out, help)
		return false
	case "undo":
		err = h.Undo()
	case "redo":
		err = h.Redo()
	case "first":
		err = h.GotoMove(0)
	case "last":
		err = h.GotoMove(h.Len() - 1)
	case "flip":
		c.opts.Flipped = !c.opts.Flipped
	case "fen":
		fmt.Fprintf(c.out, "FEN: %s\n", fenOf(h.Current().Board))
		return false
	case "moves":
		fmt.Fprintf(c.out, "Moves: %s\n", movesString(h.Moves()))
		return false
	case "click", "c":
		err = c.pointer(fields, board.ButtonLeft)
	case "mark", "m":
		err = c.pointer(fields, board.ButtonRight)
	case "arrow", "a":
		err = c.arrow(fields)
	default:
		err = c.play(cmd)
	}
	if err != nil {
		c.log.Debugf("command %q: %v", line, err)
		fmt.Fprintf(c.out, "%v\n", err)
	}
	c.refresh()
	return false
}

func (c *CLIProcessing) state() board.BState {
	role := c.opts.Role
	if !c.history.AtTip() {
		role = game.Spectator()
	}
	return board.BState{Game: c.history.Current(), Role: role, Flipped: c.opts.Flipped}
}

func parseSquare(s string) (base.Square, error) {
	i, err := base.SquareFromAlgebraic(strings.ToLower(s))
	if err != nil {
		return base.NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return base.Square(i), nil
}

// handle feeds one event to the widget and records a committed move.
func (c *CLIProcessing) handle(ev board.Event) {
	c.board.Sync(c.state())
	if resp := c.board.Handle(ev); resp.Committed {
		c.history.Push(resp.Move)
	}
}

func (c *CLIProcessing) pointer(fields []string, btn board.Button) error {
	if len(fields) != 2 {
		return fmt.Errorf("usage: %s <square>", fields[0])
	}
	sq, err := parseSquare(fields[1])
	if err != nil {
		return err
	}
	c.handle(board.SquareEvent(board.Pressed, btn, sq, termBounds, c.opts.Flipped))
	c.handle(board.SquareEvent(board.Released, btn, sq, termBounds, c.opts.Flipped))
	return nil
}

func (c *CLIProcessing) arrow(fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("usage: %s <from> <to>", fields[0])
	}
	from, err := parseSquare(fields[1])
	if err != nil {
		return err
	}
	to, err := parseSquare(fields[2])
	if err != nil {
		return err
	}
	c.handle(board.SquareEvent(board.Pressed, board.ButtonRight, from, termBounds, c.opts.Flipped))
	c.handle(board.SquareEvent(board.Released, board.ButtonRight, to, termBounds, c.opts.Flipped))
	return nil
}

// play checks a typed move against the role and the legal moves.
func (c *CLIProcessing) play(s string) error {
	mv, err := base.MoveFromUCI(s)
	if err != nil {
		return fmt.Errorf("unknown command or move %q", s)
	}
	st := c.state()
	pos := st.Game.Board
	if !st.Role.CanMove(pos.Turn()) {
		return fmt.Errorf("%s may not move for %s", st.Role, pos.Turn())
	}
	for _, legal := range pos.LegalMoves(mv.From) {
		if legal == mv {
			c.history.Push(mv)
			return nil
		}
	}
	return fmt.Errorf("illegal move %s", s)
}

// refresh syncs the widget and prints the board with its overlay.
func (c *CLIProcessing) refresh() {
	c.board.Sync(c.state())
	st := c.board.State()
	ov := c.board.Overlay()

	opts := DrawOptions{
		Color:      c.opts.Color,
		Flipped:    st.Flipped,
		Selected:   base.NoSquare,
		Highlights: ov.Highlights(),
	}
	if sq, ok := ov.Selected(); ok {
		opts.Selected = sq
	}
	for _, mv := range ov.Hints() {
		opts.Hints = append(opts.Hints, mv.To)
	}
	if a := st.Game.Annotation; a != nil {
		mv := a.Move
		opts.LastMove = &mv
	}
	PrintPosition(c.out, st.Game.Board, opts)
	for _, mv := range ov.Arrows() {
		fmt.Fprintf(c.out, "arrow %s -> %s\n", mv.From, mv.To)
	}
	c.printStatus()
}

func (c *CLIProcessing) printStatus() {
	st := c.board.State()
	pos := st.Game.Board
	fmt.Fprintf(c.out, "FEN: %s\n", fenOf(pos))
	fmt.Fprintf(c.out, "Move %d/%d, %s to move, status %s, role %s\n",
		c.history.CurrentMove(), c.history.Len()-1, pos.Turn(), pos.Status(), st.Role)
}

func fenOf(pos base.Position) string {
	if f, ok := pos.(interface{ FEN() string }); ok {
		return f.FEN()
	}
	return pos.Key()
}

func movesString(moves []game.Annotation) string {
	parts := make([]string, 0, len(moves))
	for i, a := range moves {
		s := a.Move.String()
		if a.Kind != base.Normal {
			s += " (" + a.Kind.String() + ")"
		}
		if i%2 == 0 {
			s = fmt.Sprintf("%d. %s", i/2+1, s)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

type crlfWriter struct {
	w io.Writer
}

func (cw crlfWriter) Write(p []byte) (int, error) {
	if _, err := cw.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
