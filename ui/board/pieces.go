package board

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"
	"unicode"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"evilboard/src/base"
)

//go:embed assets/pieces/*.svg
var pieceFiles embed.FS

// colours baked into the templates
var (
	templateFill   = []byte("#fafafa")
	templateStroke = []byte("#0a0a0a")
	templateDetail = []byte("#0b0b0b")
)

type pieceColors struct {
	fill, stroke, detail string
}

var sideColors = map[base.Side]pieceColors{
	base.White: {fill: "#ffffff", stroke: "#000000", detail: "#000000"},
	base.Black: {fill: "#262421", stroke: "#000000", detail: "#ececec"},
}

type pieceKey struct {
	piece base.Piece
	size  int
}

// PieceSet rasterizes piece sprites on demand and keeps them per size.
type PieceSet struct {
	mu    sync.Mutex
	cache map[pieceKey]image.Image
}

func NewPieceSet() *PieceSet {
	return &PieceSet{cache: map[pieceKey]image.Image{}}
}

func (ps *PieceSet) Image(p base.Piece, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid sprite size %d", size)
	}
	key := pieceKey{piece: p, size: size}

	ps.mu.Lock()
	defer ps.mu.Unlock()
	if img, ok := ps.cache[key]; ok {
		return img, nil
	}

	img, err := renderPiece(p, size)
	if err != nil {
		return nil, err
	}
	ps.cache[key] = img
	return img, nil
}

func renderPiece(p base.Piece, size int) (image.Image, error) {
	name := pieceAssetName(p)
	data, err := pieceFiles.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read piece asset %s: %w", name, err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(colorize(data, p.Side)), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse piece svg %s: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Transparent), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

func colorize(svg []byte, side base.Side) []byte {
	c := sideColors[side]
	out := bytes.ReplaceAll(svg, templateFill, []byte(c.fill))
	out = bytes.ReplaceAll(out, templateStroke, []byte(c.stroke))
	return bytes.ReplaceAll(out, templateDetail, []byte(c.detail))
}

func pieceAssetName(p base.Piece) string {
	r := unicode.ToLower(base.ConvertRuneFromPiece(base.Piece{Kind: p.Kind}))
	return fmt.Sprintf("assets/pieces/%c.svg", r)
}
