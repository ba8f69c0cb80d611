package components

import (
	"github.com/automoto/lixtricks/gamemath"
	"github.com/yohamta/donburi"
)

// LevelData owns the static collision geometry and the enemy spawn timer.
// Collider.Boxes keeps the floor at index 0; the floor is the fallback rest
// surface and the enemy spawn area, and it never blocks enemy movement.
type LevelData struct {
	Collider   *gamemath.Collider
	Floor      gamemath.Box
	SpawnTimer float64
}

var Level = donburi.NewComponentType[LevelData]()
