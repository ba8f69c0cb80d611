package components

import (
	"github.com/automoto/lixtricks/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is the spatial state shared by every moving entity: a sphere for
// the player and projectiles, the box center for enemies.
type BodyData struct {
	Pos    gamemath.Vec3
	Radius float64
}

var Body = donburi.NewComponentType[BodyData]()
