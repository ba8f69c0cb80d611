package components

import (
	"github.com/automoto/lixtricks/gamemath"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Vel  gamemath.Vec3
	Life float64 // remaining lifetime in seconds; dead at or below zero
}

var Projectile = donburi.NewComponentType[ProjectileData]()
