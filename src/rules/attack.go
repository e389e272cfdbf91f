package rules

import "evilboard/src/base"

// mailbox is the 64-square piece array of a position, indexed like base.Square.
type mailbox [64]base.Piece

func (mb *mailbox) at(file, rank int) (base.Piece, bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return base.Piece{}, false
	}
	p := mb[rank*8+file]
	return p, p.Kind != base.NoKind
}

func (mb *mailbox) findKing(side base.Side) base.Square {
	for i, p := range mb {
		if p.Kind == base.King && p.Side == side {
			return base.Square(i)
		}
	}
	return base.NoSquare
}

var knightOffsets = [8][2]int{{2, 1}, {1, 2}, {-1, 2}, {-2, 1}, {-2, -1}, {-1, -2}, {1, -2}, {2, -1}}

// first four are orthogonal, last four diagonal
var rayDirs = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func (mb *mailbox) attacked(sq base.Square, by base.Side) bool {
	f, r := sq.File(), sq.Rank()

	// pawns attack forward diagonally, so look one rank behind
	pr := r - 1
	if by == base.Black {
		pr = r + 1
	}
	for _, df := range []int{-1, 1} {
		if p, ok := mb.at(f+df, pr); ok && p.Kind == base.Pawn && p.Side == by {
			return true
		}
	}

	for _, o := range knightOffsets {
		if p, ok := mb.at(f+o[0], r+o[1]); ok && p.Kind == base.Knight && p.Side == by {
			return true
		}
	}

	for di, d := range rayDirs {
		for step := 1; ; step++ {
			tf, tr := f+d[0]*step, r+d[1]*step
			if tf < 0 || tf > 7 || tr < 0 || tr > 7 {
				break
			}
			p, ok := mb.at(tf, tr)
			if !ok {
				continue
			}
			if p.Side != by {
				break
			}
			if step == 1 && p.Kind == base.King {
				return true
			}
			if p.Kind == base.Queen ||
				(di <= 3 && p.Kind == base.Rook) ||
				(di > 3 && p.Kind == base.Bishop) {
				return true
			}
			break
		}
	}
	return false
}

// inCheck serves positions loaded from FEN, which carry no move tags.
func (mb *mailbox) inCheck(side base.Side) bool {
	king := mb.findKing(side)
	if king == base.NoSquare {
		return false
	}
	return mb.attacked(king, side.Other())
}
