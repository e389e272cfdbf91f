package gdraw

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"evilboard/ui/board"
	"evilboard/ui/gui/gctx"
	"evilboard/ui/gui/ghelper"
)

var (
	themes = []string{"light", "dark"}
	roles  = []string{"analyst", "white", "black", "spectator"}
	langs  = []string{"en", "ru"}
)

// next returns the element after cur in list, wrapping around.
func next(list []string, cur string) string {
	for i, v := range list {
		if v == cur {
			return list[(i+1)%len(list)]
		}
	}
	return list[0]
}

type GUISettingsDrawer struct {
	toast   ghelper.Toast
	buttons []*ghelper.Button

	// index of buttons
	btnThemeIdx int
	btnBoardIdx int
	btnRoleIdx  int
	btnLangIdx  int
	btnDebugIdx int
	btnApplyIdx int
	btnBackIdx  int

	lastTick time.Time
}

func NewGUISettingsDrawer(ctx *gctx.GUIGameContext) *GUISettingsDrawer {
	sd := &GUISettingsDrawer{lastTick: time.Now()}

	btnW, btnH := 240, 44
	startX, startY := 200, 90
	spacingY := 16

	y := startY
	add := func(x, y, w int) int {
		var idx int
		idx, sd.buttons = ghelper.AppendButton(sd.buttons, ghelper.NewButton("", x, y, w, btnH, ctx.Theme))
		return idx
	}
	sd.btnThemeIdx = add(startX, y, btnW)
	y += btnH + spacingY
	sd.btnBoardIdx = add(startX, y, btnW)
	y += btnH + spacingY
	sd.btnRoleIdx = add(startX, y, btnW)
	y += btnH + spacingY
	sd.btnLangIdx = add(startX, y, btnW)
	y += btnH + spacingY
	sd.btnDebugIdx = add(startX, y, btnW)
	y += btnH + 3*spacingY
	sd.btnApplyIdx = add(startX, y, (btnW-spacingY)/2)
	sd.btnBackIdx = add(startX+(btnW+spacingY)/2, y, (btnW-spacingY)/2)

	sd.refreshButtons(ctx)
	return sd
}

func (sd *GUISettingsDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	mx, my := ebiten.CursorPosition()
	justClicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	justReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	now := time.Now()
	dt := now.Sub(sd.lastTick).Seconds()
	sd.lastTick = now
	sd.toast.Update(dt)

	T := ctx.AssetsWorker.Lang().T
	for i, b := range sd.buttons {
		clicked := b.HandleInput(mx, my, justClicked, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		switch i {
		case sd.btnThemeIdx:
			ctx.Config.Theme = next(themes, ctx.Config.Theme)
		case sd.btnBoardIdx:
			ctx.Config.Board = next(board.StyleNames(), ctx.Config.Board)
		case sd.btnRoleIdx:
			ctx.Config.Role = next(roles, ctx.Config.Role)
		case sd.btnLangIdx:
			ctx.Config.Lang = next(langs, ctx.Config.Lang)
		case sd.btnDebugIdx:
			ctx.Config.Debug = !ctx.Config.Debug
		case sd.btnApplyIdx:
			if err := ctx.Config.Save(); err != nil {
				ctx.Logx.Errorf("error save config: %v", err)
				sd.toast.Show(T("board.error"), toastSeconds)
			} else {
				sd.toast.Show(T("settings.saved"), toastSeconds)
			}
		case sd.btnBackIdx:
			return SceneBoard, nil
		}
		if err := ctx.ApplyConfig(); err != nil {
			ctx.Logx.Errorf("error apply config: %v", err)
		}
		sd.refreshButtons(ctx)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return SceneBoard, nil
	}
	return SceneNotChanged, nil
}

func (sd *GUISettingsDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	T := ctx.AssetsWorker.Lang().T
	fonts := ctx.AssetsWorker.Fonts()
	text.Draw(screen, T("settings.title"), fonts.Bold, 40, 60, ctx.Theme.MenuText)

	labels := map[int]string{
		sd.btnThemeIdx: T("settings.theme"),
		sd.btnBoardIdx: T("settings.board"),
		sd.btnRoleIdx:  T("settings.role"),
		sd.btnLangIdx:  T("settings.lang"),
		sd.btnDebugIdx: T("settings.debug"),
	}
	for i, b := range sd.buttons {
		if label, ok := labels[i]; ok {
			text.Draw(screen, label, fonts.Normal, 40, b.Y+b.H/2+5, ctx.Theme.MenuText)
		}
		b.DrawAnimated(screen, fonts.Normal, ctx.Theme)
	}
	sd.toast.Draw(screen, fonts.Normal, ctx.Theme, ctx.Window.W/2, ctx.Window.H-80)

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

// update labels and accent buttons
func (sd *GUISettingsDrawer) refreshButtons(ctx *gctx.GUIGameContext) {
	T := ctx.AssetsWorker.Lang().T
	for i, b := range sd.buttons {
		fill := ctx.Theme.ButtonFill
		switch i {
		case sd.btnThemeIdx:
			b.Label = ctx.Config.Theme
		case sd.btnBoardIdx:
			b.Label = ctx.Config.Board
		case sd.btnRoleIdx:
			b.Label = ctx.Config.Role
		case sd.btnLangIdx:
			b.Label = ctx.Config.Lang
		case sd.btnDebugIdx:
			b.Label = T("button.off")
			if ctx.Config.Debug {
				b.Label = T("button.on")
				fill = ctx.Theme.Accent
			}
		case sd.btnApplyIdx:
			b.Label = T("settings.apply")
			fill = ctx.Theme.Accent
		case sd.btnBackIdx:
			b.Label = T("button.back")
		}
		b.Image = ghelper.RenderRoundedRect(b.W, b.H, 10, fill, ctx.Theme.ButtonStroke, 2)
	}
}
