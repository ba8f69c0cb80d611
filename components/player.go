package components

import (
	"github.com/automoto/lixtricks/config"
	"github.com/automoto/lixtricks/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Camera orientation, radians
	Yaw   float64
	Pitch float64

	// Movement
	Mode          config.MoveMode
	Speed         float64 // current horizontal speed, units per second
	AirborneSpeed float64 // speed frozen at liftoff, restored until landing
	VerticalVel   float64

	// Slide
	Sliding     bool
	SlideQueued bool // set on slide start, cleared only when crouch is released
	SlideTimer  float64

	// Sprint resource
	SprintTimer     float64
	SprintExhausted bool

	// Jumping
	JumpCount   int
	WasOnGround bool

	// Edge detection for the crouch key
	PrevCrouch bool
}

var Player = donburi.NewComponentType[PlayerData]()

// Forward returns the full look vector including pitch.
func (p *PlayerData) Forward() gamemath.Vec3 {
	return gamemath.DirectionFromAngles(p.Yaw, p.Pitch)
}

// Left returns the ground-plane strafe vector.
func (p *PlayerData) Left() gamemath.Vec3 {
	return gamemath.LeftFromYaw(p.Yaw)
}
