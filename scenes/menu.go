package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/lixtricks/components"
	"github.com/automoto/lixtricks/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the title menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger systems.SceneChanger
	once         sync.Once
}

func NewMenuScene(sc systems.SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createArena := func() interface{} {
		return NewArenaScene(ms.sceneChanger)
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createArena))
	ms.ecs.AddRenderer(ecs.LayerDefault, systems.DrawMenu)

	menu := ms.ecs.World.Entry(ms.ecs.Create(ecs.LayerDefault, components.Menu, components.Input))
	components.Menu.SetValue(menu, components.MenuData{})

	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	systems.ResetCursorTracking()
}
