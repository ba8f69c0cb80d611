package components

import (
	"github.com/automoto/lixtricks/gamemath"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Extents        gamemath.Vec3
	AttackCooldown float64 // seconds until it may hurt the player again
}

var Enemy = donburi.NewComponentType[EnemyData]()

// Box returns the enemy's collision box around its Body position.
func (e *EnemyData) Box(center gamemath.Vec3) gamemath.Box {
	return gamemath.Box{Center: center, Extents: e.Extents}
}
