package systems

import (
	"os"

	"github.com/automoto/lixtricks/components"
	cfg "github.com/automoto/lixtricks/config"
	"github.com/automoto/lixtricks/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

var menuOptions = []string{"start", "quit"}

// NewUpdateMenu returns the menu system bound to its scene factories.
func NewUpdateMenu(sc SceneChanger, createArena func() interface{}) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		menuEntry, ok := components.Menu.First(e.World)
		if !ok {
			return
		}
		menu := components.Menu.Get(menuEntry)
		in := firstInput(e)
		if in == nil {
			return
		}

		if in.Action(cfg.ActionMenuDown).JustPressed {
			menu.Selected = (menu.Selected + 1) % len(menuOptions)
		}
		if in.Action(cfg.ActionMenuUp).JustPressed {
			menu.Selected = (menu.Selected + len(menuOptions) - 1) % len(menuOptions)
		}

		if !in.Action(cfg.ActionMenuSelect).JustPressed {
			return
		}
		switch menuOptions[menu.Selected] {
		case "start":
			sc.ChangeScene(createArena())
		case "quit":
			os.Exit(0)
		}
	}
}

// DrawMenu renders the title and the option list.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menuEntry, ok := components.Menu.First(e.World)
	if !ok {
		return
	}
	menu := components.Menu.Get(menuEntry)

	centerX := cfg.C.Width / 2
	titleFace := fonts.Title.Get()
	titleW := text.BoundString(titleFace, cfg.C.Title).Dx()
	text.Draw(screen, cfg.C.Title, titleFace,
		centerX-titleW/2, cfg.C.Height/3, cfg.HUD.TextColor)

	face := fonts.HUD.Get()
	y := cfg.C.Height / 2
	for i, option := range menuOptions {
		col := cfg.HUD.TextColor
		label := option
		if i == menu.Selected {
			label = "> " + option
			col = cfg.HUD.BarFgColor
		}
		w := text.BoundString(face, label).Dx()
		text.Draw(screen, label, face, centerX-w/2, y, col)
		y += 34
	}
}
