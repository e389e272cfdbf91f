package gdraw

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"evilboard/src/base"
	"evilboard/src/game"
	"evilboard/src/rules"
	"evilboard/ui/board"
	"evilboard/ui/gui/gbase"
	"evilboard/ui/gui/gctx"
	"evilboard/ui/gui/ghelper"
	"evilboard/ui/gui/ghelper/gclipboard"
	"evilboard/ui/gui/ghelper/gdialog"
	"evilboard/ui/gui/ginput"
)

const (
	toastSeconds = 2.5
	exportSize   = 1024
)

var layers = []board.Layer{
	board.LayerBoard,
	board.LayerBoardOverlay,
	board.LayerPieces,
	board.LayerDrag,
	board.LayerArrows,
}

type saveResult struct {
	path string
	err  error
}

// GUIBoardDrawer hosts the board widget: it feeds pointer input, records
// committed moves in the history and blits the widget layers.
type GUIBoardDrawer struct {
	layout gbase.Layout
	window struct{ W, H int }

	// ebiten copies of the widget layers and the cache generation they hold
	images [board.LayerArrows + 1]*ebiten.Image
	gens   [board.LayerArrows + 1]uint64

	pointer ginput.Pointer
	cursor  ebiten.CursorShapeType

	buttons     []*ghelper.Button
	idxFlip     int
	idxRestart  int
	idxFirst    int
	idxBack     int
	idxNext     int
	idxLast     int
	idxSave     int
	idxCopy     int
	idxPaste    int
	idxSettings int

	toast   ghelper.Toast
	saving  bool
	savedCh chan saveResult

	lastTick time.Time
}

func NewGUIBoardDrawer(ctx *gctx.GUIGameContext) *GUIBoardDrawer {
	d := &GUIBoardDrawer{
		savedCh:  make(chan saveResult, 1),
		lastTick: time.Now(),
		cursor:   ebiten.CursorShapeDefault,
	}
	d.recalcLayout(ctx)
	d.pointer = samplePointer()
	ctx.Board().Sync(ctx.State())
	return d
}

func samplePointer() ginput.Pointer {
	x, y := ebiten.CursorPosition()
	return ginput.Pointer{
		X:     x,
		Y:     y,
		Left:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Right: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}
}

func (d *GUIBoardDrawer) recalcLayout(ctx *gctx.GUIGameContext) {
	if d.buttons != nil && d.window == ctx.Window {
		return
	}
	d.window = ctx.Window
	d.layout = gbase.NewLayout(ctx.Window.W, ctx.Window.H)
	d.makeLayoutButtons(ctx)
}

func (d *GUIBoardDrawer) makeLayoutButtons(ctx *gctx.GUIGameContext) {
	T := ctx.AssetsWorker.Lang().T
	d.buttons = []*ghelper.Button{}

	h, sp := gbase.ButtonH, gbase.Spacing
	add := func(key string, x, y, w int) int {
		var idx int
		idx, d.buttons = ghelper.AppendButton(d.buttons, ghelper.NewButton(T(key), x, y, w, h, ctx.Theme))
		return idx
	}

	x, y, w := d.layout.PanelX, d.layout.PanelY, gbase.PanelW
	d.idxFlip = add("board.flip", x, y, w)
	y += h + sp
	d.idxRestart = add("board.restart", x, y, w)
	y += h + sp

	// history navigation row
	nw := (w - 3*sp) / 4
	d.idxFirst = add("board.first", x, y, nw)
	d.idxBack = add("board.back", x+nw+sp, y, nw)
	d.idxNext = add("board.next", x+2*(nw+sp), y, nw)
	d.idxLast = add("board.last", x+3*(nw+sp), y, nw)
	y += h + 3*sp

	d.idxSave = add("board.save_png", x, y, w)
	y += h + sp
	d.idxCopy = add("board.copy_fen", x, y, w)
	y += h + sp
	d.idxPaste = add("board.paste_fen", x, y, w)
	y += h + 3*sp
	d.idxSettings = add("board.settings", x, y, w)
}

func (d *GUIBoardDrawer) bounds() board.Rect {
	l := d.layout
	return board.Rect{
		X: float64(l.BoardX),
		Y: float64(l.BoardY),
		W: float64(l.BoardSide),
		H: float64(l.BoardSide),
	}
}

// Update
func (d *GUIBoardDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	d.recalcLayout(ctx)

	now := time.Now()
	dt := now.Sub(d.lastTick).Seconds()
	d.lastTick = now

	// snapshot dialog finished
	select {
	case r := <-d.savedCh:
		d.saving = false
		d.reportSave(ctx, r)
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return SceneNotChanged, gbase.ErrExit
	}

	cur := samplePointer()
	c := clicks{
		x:            cur.X,
		y:            cur.Y,
		justPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		justReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}

	d.refreshButtons(ctx)
	for i, btn := range d.buttons {
		clicked := btn.HandleInput(c.x, c.y, c.justPressed, c.justReleased)
		btn.UpdateAnim(dt)
		if clicked {
			if next := d.onButton(ctx, i); next != SceneNotChanged {
				return next, nil
			}
		}
	}
	d.handleKeys(ctx)

	// board interaction
	b := ctx.Board()
	b.Sync(ctx.State())
	bounds := d.bounds()
	for _, ev := range ginput.Translate(d.pointer, cur, bounds) {
		resp := b.Handle(ev)
		if resp.Committed {
			ctx.History.Push(resp.Move)
			b.Sync(ctx.State())
		}
	}
	d.pointer = cur
	d.setCursor(b.Interaction(bounds, base.Point{X: float64(cur.X), Y: float64(cur.Y)}))

	d.toast.Update(dt)
	return SceneNotChanged, nil
}

func (d *GUIBoardDrawer) onButton(ctx *gctx.GUIGameContext, i int) SceneType {
	h := ctx.History
	switch i {
	case d.idxFlip:
		ctx.Config.Flipped = !ctx.Config.Flipped
	case d.idxRestart:
		d.restart(ctx, ctx.Config.FEN)
	case d.idxFirst:
		d.navigate(ctx, h.GotoMove(0))
	case d.idxBack:
		d.navigate(ctx, h.Undo())
	case d.idxNext:
		d.navigate(ctx, h.Redo())
	case d.idxLast:
		d.navigate(ctx, h.GotoMove(h.Len()-1))
	case d.idxSave:
		d.startSave(ctx)
	case d.idxCopy:
		d.copyFEN(ctx)
	case d.idxPaste:
		d.pasteFEN(ctx)
	case d.idxSettings:
		return SceneSettings
	}
	return SceneNotChanged
}

func (d *GUIBoardDrawer) handleKeys(ctx *gctx.GUIGameContext) {
	h := ctx.History
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		d.navigate(ctx, h.Undo())
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		d.navigate(ctx, h.Redo())
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		d.navigate(ctx, h.GotoMove(0))
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		d.navigate(ctx, h.GotoMove(h.Len()-1))
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		ctx.Config.Flipped = !ctx.Config.Flipped
	}
}

func (d *GUIBoardDrawer) navigate(ctx *gctx.GUIGameContext, err error) {
	if err != nil {
		ctx.Logx.Debugf("history: %v", err)
	}
}

func (d *GUIBoardDrawer) restart(ctx *gctx.GUIGameContext, fen string) bool {
	pos, err := rules.FromFEN(fen)
	if err != nil {
		ctx.Logx.Warnf("error load FEN %q: %v", fen, err)
		return false
	}
	ctx.History.Reset(game.New(pos))
	return true
}

func (d *GUIBoardDrawer) copyFEN(ctx *gctx.GUIGameContext) {
	T := ctx.AssetsWorker.Lang().T
	fen := fenOf(ctx.History.Current().Board)
	if err := gclipboard.WriteAll(fen); err != nil {
		ctx.Logx.Errorf("error write clipboard: %v", err)
		d.toast.Show(T("board.error"), toastSeconds)
		return
	}
	d.toast.Show(T("board.copied"), toastSeconds)
}

func (d *GUIBoardDrawer) pasteFEN(ctx *gctx.GUIGameContext) {
	T := ctx.AssetsWorker.Lang().T
	fen, err := gclipboard.ReadAll()
	if err != nil {
		ctx.Logx.Errorf("error read clipboard: %v", err)
		d.toast.Show(T("board.error"), toastSeconds)
		return
	}
	if !d.restart(ctx, fen) {
		d.toast.Show(T("board.bad_fen"), toastSeconds)
		return
	}
	d.toast.Show(T("board.pasted"), toastSeconds)
}

// startSave renders the board off-screen and asks for a destination in the
// background; the result comes back through savedCh.
func (d *GUIBoardDrawer) startSave(ctx *gctx.GUIGameContext) {
	if d.saving {
		return
	}
	img, err := ctx.Export(exportSize)
	if err != nil {
		d.reportSave(ctx, saveResult{err: err})
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		d.reportSave(ctx, saveResult{err: err})
		return
	}
	d.saving = true
	title := ctx.AssetsWorker.Lang().T("board.save_png")
	go func() {
		path, err := gdialog.SaveFile(title, "evilboard.png", buf.Bytes())
		d.savedCh <- saveResult{path: path, err: err}
	}()
}

func (d *GUIBoardDrawer) reportSave(ctx *gctx.GUIGameContext, r saveResult) {
	T := ctx.AssetsWorker.Lang().T
	switch {
	case errors.Is(r.err, gdialog.ErrCancelled):
	case r.err != nil:
		ctx.Logx.Errorf("error save snapshot: %v", r.err)
		d.toast.Show(T("board.error"), toastSeconds)
	default:
		ctx.Logx.Infof("snapshot saved to %s", r.path)
		d.toast.Show(T("board.saved"), toastSeconds)
	}
}

func (d *GUIBoardDrawer) setCursor(i board.Interaction) {
	shape := ebiten.CursorShapeDefault
	switch i {
	case board.Grab:
		shape = ebiten.CursorShapePointer
	case board.Grabbing:
		shape = ebiten.CursorShapeMove
	}
	if shape != d.cursor {
		d.cursor = shape
		ebiten.SetCursorShape(shape)
	}
}

// grey out navigation that would fail
func (d *GUIBoardDrawer) refreshButtons(ctx *gctx.GUIGameContext) {
	h := ctx.History
	d.buttons[d.idxFirst].Disabled = h.CurrentMove() == 0
	d.buttons[d.idxBack].Disabled = h.CurrentMove() == 0
	d.buttons[d.idxNext].Disabled = h.AtTip()
	d.buttons[d.idxLast].Disabled = h.AtTip()
	d.buttons[d.idxSave].Disabled = d.saving
}

// Draw
func (d *GUIBoardDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	l := d.layout
	fonts := ctx.AssetsWorker.Fonts()

	ghelper.DrawRectStroke(screen, float64(l.BoardX-3), float64(l.BoardY-3),
		float64(l.BoardSide+6), float64(l.BoardSide+6), 3, ctx.Theme.ButtonStroke)

	// only layers whose cache was repainted are uploaded again
	b := ctx.Board()
	b.Render(l.BoardSide)
	for _, layer := range layers {
		slot := b.Caches().Slot(layer)
		if slot.Image() == nil {
			continue
		}
		if d.images[layer] == nil || d.gens[layer] != slot.Gen() {
			d.images[layer] = ghelper.Upload(d.images[layer], slot.Image())
			d.gens[layer] = slot.Gen()
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(l.BoardX), float64(l.BoardY))
		screen.DrawImage(d.images[layer], op)
	}

	text.Draw(screen, d.statusLine(ctx), fonts.Normal, l.BoardX, l.StatusY, ctx.Theme.MenuText)

	for _, btn := range d.buttons {
		btn.DrawAnimated(screen, fonts.Normal, ctx.Theme)
	}
	d.toast.Draw(screen, fonts.Normal, ctx.Theme, l.BoardX+l.BoardSide/2, l.BoardY+l.BoardSide/2-20)

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f repaints: %v", ebiten.ActualTPS(), b.Caches().Draws()))
	}
}

func (d *GUIBoardDrawer) statusLine(ctx *gctx.GUIGameContext) string {
	T := ctx.AssetsWorker.Lang().T
	st := ctx.State()
	pos := st.Game.Board

	var status string
	switch pos.Status() {
	case base.Checkmate:
		status = T("status.checkmate")
	case base.Stalemate:
		status = T("status.stalemate")
	case base.Draw:
		status = T("status.draw")
	case base.Check:
		status = fmt.Sprintf("%s %s, %s", pos.Turn(), T("status.turn"), T("status.check"))
	default:
		status = fmt.Sprintf("%s %s", pos.Turn(), T("status.turn"))
	}
	return fmt.Sprintf("%s   %d/%d   %s: %s   %s",
		status, ctx.History.CurrentMove(), ctx.History.Len()-1, T("status.role"), st.Role, ctx.Feedback)
}

func fenOf(pos base.Position) string {
	if f, ok := pos.(interface{ FEN() string }); ok {
		return f.FEN()
	}
	return pos.Key()
}
