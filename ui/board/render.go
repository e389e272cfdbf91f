package board

import (
	"image/color"
	"math"
	"strconv"

	"github.com/fogleman/gg"

	"evilboard/src/base"
	"evilboard/src/logx"
)

// painter draws the five layers for one frame size.
type painter struct {
	tile    float64
	style   Style
	state   BState
	overlay *Overlay
	pieces  *PieceSet
	log     logx.Logger
}

func (p *painter) squareColor(sq base.Square) color.NRGBA {
	if (sq.File()+sq.Rank())%2 == 0 {
		return p.style.Board.Dark
	}
	return p.style.Board.Light
}

// labelColor contrasts with the square the label sits on.
func (p *painter) labelColor(sq base.Square) color.NRGBA {
	if (sq.File()+sq.Rank())%2 == 0 {
		return p.style.Board.Light
	}
	return p.style.Board.Dark
}

func (p *painter) fillSquare(dc *gg.Context, sq base.Square, c color.Color) {
	pos := SquareToPixel(sq, p.tile, p.state.Flipped)
	dc.SetColor(c)
	dc.DrawRectangle(pos.X, pos.Y, p.tile, p.tile)
	dc.Fill()
}

func (p *painter) paintBoard(dc *gg.Context) {
	for i := 0; i < 64; i++ {
		sq := base.Square(i)
		p.fillSquare(dc, sq, p.squareColor(sq))
	}

	face, err := labelFace(0.16 * p.tile)
	if err != nil {
		p.log.Warnf("label font: %v", err)
		return
	}
	defer face.Close()
	dc.SetFontFace(face)

	offX, offY := p.tile/15, p.tile/10
	leftFile, bottomRank := 0, 0
	if p.state.Flipped {
		leftFile, bottomRank = 7, 7
	}
	for rank := 0; rank < 8; rank++ {
		sq := base.NewSquare(leftFile, rank)
		pos := SquareToPixel(sq, p.tile, p.state.Flipped)
		dc.SetColor(p.labelColor(sq))
		dc.DrawStringAnchored(strconv.Itoa(rank+1), pos.X+offX, pos.Y+offY, 0, 1)
	}
	for file := 0; file < 8; file++ {
		sq := base.NewSquare(file, bottomRank)
		pos := SquareToPixel(sq, p.tile, p.state.Flipped)
		dc.SetColor(p.labelColor(sq))
		dc.DrawStringAnchored(string(rune('a'+file)), pos.X+p.tile-offX, pos.Y+p.tile-offY, 1, 0)
	}
}

func (p *painter) paintBoardOverlay(dc *gg.Context) {
	o, st := p.overlay, p.style.Overlay

	if drag, ok := o.Drag(); ok {
		width := p.tile * 0.05
		pos := SquareToPixel(TileToSquare(drag, p.state.Flipped), p.tile, p.state.Flipped)
		dc.SetColor(st.Hover)
		dc.SetLineWidth(width)
		dc.DrawRectangle(pos.X+width/2, pos.Y+width/2, p.tile-width, p.tile-width)
		dc.Stroke()
	}

	for _, sq := range o.Highlights() {
		p.fillSquare(dc, sq, st.Highlight)
	}

	if ant := p.state.Game.Annotation; ant != nil {
		for _, sq := range []base.Square{ant.Move.From, ant.Move.To} {
			if !o.Highlighted(sq) {
				p.fillSquare(dc, sq, st.PrevMove)
			}
		}
	}

	if sq, ok := o.Selected(); ok {
		p.fillSquare(dc, sq, st.Selected)
	}

	board := p.state.Game.Board
	for _, mv := range o.hints {
		pos := SquareToPixel(mv.To, p.tile, p.state.Flipped)
		cx, cy := pos.X+p.tile/2, pos.Y+p.tile/2
		dc.SetColor(st.Drag)
		if _, occupied := board.PieceAt(mv.To); occupied {
			width := p.tile * 0.084
			dc.SetLineWidth(width)
			dc.DrawCircle(cx, cy, p.tile/2-width/2)
			dc.Stroke()
		} else {
			dc.DrawCircle(cx, cy, p.tile*0.168)
			dc.Fill()
		}
	}
}

func (p *painter) spriteSize() int {
	return int(math.Round(p.tile))
}

func (p *painter) drawPiece(dc *gg.Context, pc base.Piece, x, y float64) {
	img, err := p.pieces.Image(pc, p.spriteSize())
	if err != nil {
		p.log.Warnf("piece sprite %v %v: %v", pc.Side, pc.Kind, err)
		return
	}
	dc.DrawImage(img, int(math.Round(x)), int(math.Round(y)))
}

func (p *painter) paintPieces(dc *gg.Context) {
	board := p.state.Game.Board
	selected, _ := p.overlay.Selected()
	for i := 0; i < 64; i++ {
		sq := base.Square(i)
		if p.overlay.Dragging() && sq == selected {
			continue
		}
		pc, ok := board.PieceAt(sq)
		if !ok {
			continue
		}
		pos := SquareToPixel(sq, p.tile, p.state.Flipped)
		p.drawPiece(dc, pc, pos.X, pos.Y)
	}
}

func (p *painter) paintDrag(dc *gg.Context) {
	drag, ok := p.overlay.Drag()
	if !ok {
		return
	}
	sq, _ := p.overlay.Selected()
	pc, ok := p.state.Game.Board.PieceAt(sq)
	if !ok {
		return
	}
	// centred under the pointer
	p.drawPiece(dc, pc, drag.X*p.tile-p.tile/2, drag.Y*p.tile-p.tile/2)
}

func (p *painter) paintArrows(dc *gg.Context) {
	dc.SetColor(p.style.Overlay.Arrow)
	for _, mv := range p.overlay.arrows {
		pts := ArrowPath(mv, p.tile, p.state.Flipped)
		if len(pts) == 0 {
			continue
		}
		dc.MoveTo(pts[0].X, pts[0].Y)
		for _, pt := range pts[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		dc.ClosePath()
		dc.Fill()
	}
}
