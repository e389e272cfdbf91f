package base

import "testing"

func TestSquareAlgebraic(t *testing.T) {
	for i := 0; i < 64; i++ {
		sq := Square(i)
		idx, err := SquareFromAlgebraic(sq.String())
		if err != nil {
			t.Fatalf("square %d: %v", i, err)
		}
		if idx != i {
			t.Fatalf("square %d round-tripped to %d", i, idx)
		}
		if NewSquare(sq.File(), sq.Rank()) != sq {
			t.Fatalf("square %d: file/rank mismatch", i)
		}
	}
	if NoSquare.String() != "-" {
		t.Fatalf("NoSquare string = %q", NoSquare.String())
	}
}

func TestMoveUCI(t *testing.T) {
	tests := []struct {
		in   string
		want Move
		err  bool
	}{
		{in: "e2e4", want: Move{From: 12, To: 28}},
		{in: "a7a8q", want: Move{From: 48, To: 56, Promotion: Queen}},
		{in: "h2h1n", want: Move{From: 15, To: 7, Promotion: Knight}},
		{in: "e2e", err: true},
		{in: "e2e9", err: true},
		{in: "a7a8k", err: true},
	}
	for _, tt := range tests {
		got, err := MoveFromUCI(tt.in)
		if tt.err {
			if err == nil {
				t.Errorf("%s: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %+v want %+v", tt.in, got, tt.want)
		}
		if got.String() != tt.in {
			t.Errorf("%s: String() = %s", tt.in, got.String())
		}
	}
}

func TestNewSquareOffGridPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for off-grid square")
		}
	}()
	NewSquare(8, 0)
}

func TestRuneFromPiece(t *testing.T) {
	if r := ConvertRuneFromPiece(Piece{Kind: Knight, Side: White}); r != 'N' {
		t.Fatalf("white knight = %c", r)
	}
	if r := ConvertRuneFromPiece(Piece{Kind: Queen, Side: Black}); r != 'q' {
		t.Fatalf("black queen = %c", r)
	}
}
