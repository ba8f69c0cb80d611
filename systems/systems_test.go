package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/lixtricks/components"
	cfg "github.com/automoto/lixtricks/config"
	"github.com/automoto/lixtricks/gamemath"
	"github.com/automoto/lixtricks/leveldata"
	"github.com/automoto/lixtricks/systems/factory"
	"github.com/automoto/lixtricks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testWorld is a headless session: the same systems in the same order as the
// arena scene, minus input polling and rendering. Tests write InputData and
// DeltaTime directly.
type testWorld struct {
	t   *testing.T
	ecs *ecs.ECS

	playerEntry *donburi.Entry
	player      *components.PlayerData
	body        *components.BodyData
	health      *components.HealthData
	input       *components.InputData
	session     *components.SessionData
	level       *components.LevelData
}

// floorPlatform is a 40x40 floor with its top surface at height zero.
func floorPlatform() leveldata.Platform {
	return leveldata.Platform{Box: gamemath.Box{
		Center:  gamemath.Vec3{Y: -0.5},
		Extents: gamemath.Vec3{X: 40, Y: 1, Z: 40},
	}}
}

// wallPlatform builds an extra platform from a center and full extents.
func wallPlatform(cx, cy, cz, ex, ey, ez float64) leveldata.Platform {
	return leveldata.Platform{Box: gamemath.Box{
		Center:  gamemath.Vec3{X: cx, Y: cy, Z: cz},
		Extents: gamemath.Vec3{X: ex, Y: ey, Z: ez},
	}}
}

func newTestWorld(t *testing.T, extra ...leveldata.Platform) *testWorld {
	t.Helper()

	arena := &leveldata.Arena{
		Platforms: append([]leveldata.Platform{floorPlatform()}, extra...),
	}

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(UpdateSession)
	e.AddSystem(WithActiveSession(UpdateLocomotion))
	e.AddSystem(WithActiveSession(UpdateCombat))
	e.AddSystem(WithActiveSession(UpdateEnemies))
	e.AddSystem(WithActiveSession(UpdateDeaths))
	e.AddSystem(UpdateOutcome)

	sessionEntry := factory.CreateSession(e, rand.New(rand.NewSource(1)))
	factory.CreateLevel(e, arena)
	playerEntry := factory.CreatePlayer(e)

	w := &testWorld{
		t:           t,
		ecs:         e,
		playerEntry: playerEntry,
		player:      components.Player.Get(playerEntry),
		body:        components.Body.Get(playerEntry),
		health:      components.Health.Get(playerEntry),
		input:       components.Input.Get(playerEntry),
		session:     components.Session.Get(sessionEntry),
	}
	levelEntry, _ := components.Level.First(e.World)
	w.level = components.Level.Get(levelEntry)

	// Start at rest on the floor instead of falling in from the spawn height.
	w.body.Pos = gamemath.Vec3{Y: cfg.Player.Radius}
	w.player.WasOnGround = true
	return w
}

func (w *testWorld) hold(a cfg.ActionID)    { w.input.Current[a] = true }
func (w *testWorld) release(a cfg.ActionID) { w.input.Current[a] = false }

// step advances one frame. The previous-frame input buffer rolls over
// afterwards, exactly as the input system would do it.
func (w *testWorld) step(dt float64) {
	w.session.DeltaTime = dt
	w.ecs.Update()
	w.input.Previous = w.input.Current
}

func (w *testWorld) steps(n int, dt float64) {
	for i := 0; i < n; i++ {
		w.step(dt)
	}
}

func (w *testWorld) projectileCount() int {
	n := 0
	tags.Projectile.Each(w.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

func (w *testWorld) enemyCount() int {
	n := 0
	tags.Enemy.Each(w.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

func (w *testWorld) firstEnemy() *donburi.Entry {
	entry, ok := components.Enemy.First(w.ecs.World)
	if !ok {
		w.t.Fatal("no live enemy")
	}
	return entry
}
