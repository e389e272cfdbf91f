package gctx

import (
	"image"

	"github.com/google/uuid"

	"evilboard/src/base"
	"evilboard/src/game"
	"evilboard/src/logx"
	"evilboard/ui/board"
	"evilboard/ui/gui/gbase"
	"evilboard/ui/gui/gbase/gconf"
	"evilboard/ui/gui/ghelper"
	"evilboard/ui/gui/tools/lang"
	"evilboard/ui/snapshot"
)

// ---- GUI Context ----

type GUIGameContext struct {
	History      *game.History
	Arena        *board.Arena
	BoardID      uuid.UUID
	Pieces       *board.PieceSet
	AssetsWorker *ghelper.GUIAssetsWorker
	Config       *gconf.Config
	Theme        gbase.Palette
	Logx         logx.Logger
	Window       struct{ W, H int }

	// last signal raised by the board, for the status line
	Feedback board.Feedback
}

func NewGUIGameContext(h *game.History, a *ghelper.GUIAssetsWorker, c *gconf.Config, l logx.Logger) *GUIGameContext {
	ctx := &GUIGameContext{
		History:      h,
		Arena:        board.NewArena(),
		Pieces:       board.NewPieceSet(),
		AssetsWorker: a,
		Config:       c,
		Theme:        gbase.PaletteFromString(c.Theme),
		Logx:         l,
	}
	ctx.Window.W, ctx.Window.H = c.WindowW, c.WindowH

	b := board.New(
		board.WithStyle(c.BoardStyle()),
		board.WithLogger(l.Named("board")),
		board.WithPieceSet(ctx.Pieces),
	)
	b.Subscribe(func(fb board.Feedback) {
		ctx.Feedback = fb
		l.Infof("board signal: %s", fb)
	})
	ctx.BoardID = ctx.Arena.Add(b)
	return ctx
}

func (ctx *GUIGameContext) Board() *board.Board {
	b, _ := ctx.Arena.Get(ctx.BoardID)
	return b
}

// State is what the board shows: the current history entry, with input
// allowed only at the tip of the history.
func (ctx *GUIGameContext) State() board.BState {
	role := ctx.Config.BoardRole()
	if !ctx.History.AtTip() {
		role = game.Spectator()
	}
	return board.BState{
		Game:    ctx.History.Current(),
		Role:    role,
		Flipped: ctx.Config.Flipped,
	}
}

// ApplyConfig pushes theme, board style, log level and language changes to
// the live UI.
func (ctx *GUIGameContext) ApplyConfig() error {
	ctx.Theme = gbase.PaletteFromString(ctx.Config.Theme)
	ctx.Board().SetStyle(ctx.Config.BoardStyle())
	if ls, ok := ctx.Logx.(logx.LevelSetter); ok {
		level := ctx.Config.LogLevel
		if ctx.Config.Debug {
			level = "debug"
		}
		ls.SetLevel(level)
	}
	return ctx.AssetsWorker.Lang().SetLang(lang.LangFromString(ctx.Config.Lang))
}

// Export renders what the live board shows at a fixed size, independent of
// the window. Sprites come from the cache the live board already filled.
func (ctx *GUIGameContext) Export(size int) (image.Image, error) {
	b := ctx.Board()
	ov := b.Overlay()
	sel, ok := ov.Selected()
	if !ok {
		sel = base.NoSquare
	}
	return snapshot.Render(b.State(), snapshot.Options{
		Size:       size,
		Style:      b.Style(),
		Select:     sel,
		Highlights: ov.Highlights(),
		Arrows:     ov.Arrows(),
		Pieces:     ctx.Pieces,
	}, ctx.Logx.Named("export"))
}
