package gui

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"evilboard/src/game"
	"evilboard/src/logx"
	"evilboard/ui/gui/gbase"
	"evilboard/ui/gui/gbase/gconf"
	"evilboard/ui/gui/gctx"
	"evilboard/ui/gui/gdraw"
	"evilboard/ui/gui/ghelper"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIGameContext
}

func NewGUI(conf *gconf.Config, h *game.History, l logx.Logger) (*GUIProcessing, error) {
	assets, err := ghelper.NewGUIAssetsWorker(conf.Lang)
	if err != nil {
		return nil, err
	}
	ctx := gctx.NewGUIGameContext(h, assets, conf, l)
	return &GUIProcessing{
		current: gdraw.NewGUIBoardDrawer(ctx),
		ctx:     ctx,
	}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Window.W, gp.ctx.Window.H)
	ebiten.SetWindowTitle(gp.ctx.AssetsWorker.Lang().T("title"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(gp); err != nil && !errors.Is(err, gbase.ErrExit) {
		return err
	}
	return nil
}

func (gp *GUIProcessing) Update() error {
	next, err := gp.current.Update(gp.ctx)
	if err != nil {
		return err
	}
	gp.current = next.ToScene(gp.current, gp.ctx)
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

// Layout follows the window so the board grows with it.
func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	gp.ctx.Window.W, gp.ctx.Window.H = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
