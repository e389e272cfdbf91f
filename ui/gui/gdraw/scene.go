package gdraw

import (
	"github.com/hajimehoshi/ebiten/v2"

	"evilboard/ui/gui/gctx"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *gctx.GUIGameContext) (SceneType, error)
	Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image)
}

type SceneType int

const (
	SceneBoard SceneType = iota
	SceneSettings
	SceneNotChanged
)

func (t SceneType) ToScene(s Scene, ctx *gctx.GUIGameContext) Scene {
	switch t {
	case SceneBoard:
		s = NewGUIBoardDrawer(ctx)
	case SceneSettings:
		s = NewGUISettingsDrawer(ctx)
	case SceneNotChanged:
	default:
	}
	return s
}

// mouse edges for the button column, sampled once per tick
type clicks struct {
	x, y                      int
	justPressed, justReleased bool
}
