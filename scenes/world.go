package scenes

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/lixtricks/assets"
	"github.com/automoto/lixtricks/leveldata"
	"github.com/automoto/lixtricks/systems"
	"github.com/automoto/lixtricks/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs one play session. The session itself handles game-over and
// restart; the scene only hosts the ECS and the cursor mode.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger systems.SceneChanger
	once         sync.Once
}

func NewArenaScene(sc systems.SceneChanger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	arena, err := leveldata.LoadArena(assets.FS, assets.ArenaPath)
	if err != nil {
		panic("load arena: " + err.Error())
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Systems run in the frame order the simulation depends on: input and
	// session bookkeeping, then locomotion, combat, AI, and compaction.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSession)
	e.AddSystem(systems.WithActiveSession(systems.UpdateLocomotion))
	e.AddSystem(systems.WithActiveSession(systems.UpdateCombat))
	e.AddSystem(systems.WithActiveSession(systems.UpdateEnemies))
	e.AddSystem(systems.WithActiveSession(systems.UpdateDeaths))
	e.AddSystem(systems.UpdateOutcome)

	e.AddRenderer(ecs.LayerDefault, systems.DrawWorld)
	e.AddRenderer(ecs.LayerDefault, systems.DrawHUD)

	factory.CreateSession(e, rand.New(rand.NewSource(time.Now().UnixNano())))
	factory.CreateLevel(e, arena)
	factory.CreatePlayer(e)

	as.ecs = e

	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	systems.ResetCursorTracking()
}
