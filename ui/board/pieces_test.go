package board

import (
	"testing"

	"evilboard/src/base"
)

func TestPieceSpritesRender(t *testing.T) {
	ps := NewPieceSet()
	for _, side := range []base.Side{base.White, base.Black} {
		for k := base.Pawn; k <= base.King; k++ {
			pc := base.Piece{Kind: k, Side: side}
			img, err := ps.Image(pc, 90)
			if err != nil {
				t.Fatalf("%v %v: %v", side, k, err)
			}
			if img.Bounds().Dx() != 90 {
				t.Fatalf("%v %v: size %v", side, k, img.Bounds())
			}
			if _, _, _, a := img.At(45, 60).RGBA(); a == 0 {
				t.Errorf("%v %v: body pixel is transparent", side, k)
			}
			if _, _, _, a := img.At(1, 1).RGBA(); a != 0 {
				t.Errorf("%v %v: corner pixel is painted", side, k)
			}
			again, _ := ps.Image(pc, 90)
			if again != img {
				t.Errorf("%v %v: sprite not cached", side, k)
			}
		}
	}
	if _, err := ps.Image(base.Piece{Kind: base.Pawn}, 0); err == nil {
		t.Fatal("zero size must fail")
	}
}

func TestColorizeSwapsTemplateColours(t *testing.T) {
	out := string(colorize([]byte(`fill="#fafafa" stroke="#0a0a0a" detail="#0b0b0b"`), base.Black))
	if out != `fill="#262421" stroke="#000000" detail="#ececec"` {
		t.Fatalf("colorize = %s", out)
	}
}
