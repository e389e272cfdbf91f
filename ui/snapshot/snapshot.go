// Package snapshot renders a board position to an image without a window,
// through the same widget and layer caches the GUI uses.
package snapshot

import (
	"fmt"
	"image"
	"strings"

	"github.com/fogleman/gg"

	"evilboard/src/base"
	"evilboard/src/logx"
	"evilboard/ui/board"
)

type Options struct {
	Size       int
	Style      board.Style
	Select     base.Square // NoSquare for none
	Highlights []base.Square
	Arrows     []base.Move
	Pieces     *board.PieceSet // shared sprite cache, nil for a private one
}

// Render draws st with the requested overlay. The selection is made with a
// click so its hints match what a user would see.
func Render(st board.BState, opts Options, log logx.Logger) (image.Image, error) {
	if opts.Size < 8 {
		return nil, fmt.Errorf("size %d is too small", opts.Size)
	}
	if log == nil {
		log = logx.NewNop()
	}
	bopts := []board.Option{board.WithStyle(opts.Style), board.WithLogger(log)}
	if opts.Pieces != nil {
		bopts = append(bopts, board.WithPieceSet(opts.Pieces))
	}
	b := board.New(bopts...)
	b.Sync(st)

	if opts.Select.Valid() {
		bounds := board.Rect{W: float64(opts.Size), H: float64(opts.Size)}
		b.Handle(board.SquareEvent(board.Pressed, board.ButtonLeft, opts.Select, bounds, st.Flipped))
		b.Handle(board.SquareEvent(board.Released, board.ButtonLeft, opts.Select, bounds, st.Flipped))
	}
	ov := b.Overlay()
	for _, sq := range opts.Highlights {
		if !ov.Highlighted(sq) {
			ov.ToggleHighlight(sq)
		}
	}
	seen := map[base.Move]bool{}
	for _, mv := range opts.Arrows {
		if !seen[mv] {
			seen[mv] = true
			ov.ToggleArrow(mv)
		}
	}
	b.Caches().Invalidate(board.InvalidateAll)
	return b.Draw(opts.Size, opts.Size), nil
}

func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("error save %s: %w", path, err)
	}
	return nil
}

func ParseSquares(list []string) ([]base.Square, error) {
	out := make([]base.Square, 0, len(list))
	for _, s := range list {
		i, err := base.SquareFromAlgebraic(strings.ToLower(strings.TrimSpace(s)))
		if err != nil {
			return nil, fmt.Errorf("invalid square %q", s)
		}
		out = append(out, base.Square(i))
	}
	return out, nil
}

// ParseArrows reads arrows written as from-to pairs, e.g. "e2e4".
func ParseArrows(list []string) ([]base.Move, error) {
	out := make([]base.Move, 0, len(list))
	for _, s := range list {
		s = strings.ToLower(strings.TrimSpace(s))
		if len(s) != 4 {
			return nil, fmt.Errorf("invalid arrow %q", s)
		}
		mv, err := base.MoveFromUCI(s)
		if err != nil || mv.From == mv.To {
			return nil, fmt.Errorf("invalid arrow %q", s)
		}
		out = append(out, mv)
	}
	return out, nil
}
