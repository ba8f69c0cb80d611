package systems

import (
	"github.com/automoto/lixtricks/components"
	cfg "github.com/automoto/lixtricks/config"
	"github.com/automoto/lixtricks/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLocomotion advances the player one frame: mouse look, horizontal
// movement with wall sliding, ground detection, jumping with a double-jump
// budget, the slide state, and the sprint resource.
func UpdateLocomotion(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	session := currentSession(e)
	level := currentLevel(e)
	if session == nil || level == nil {
		return
	}
	dt := session.DeltaTime

	in := components.Input.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)
	collider := level.Collider

	// Orientation
	player.Yaw -= in.MouseDX * cfg.Player.MouseSensitivity
	player.Pitch -= in.MouseDY * cfg.Player.MouseSensitivity
	if player.Pitch > cfg.Player.PitchLimit {
		player.Pitch = cfg.Player.PitchLimit
	}
	if player.Pitch < -cfg.Player.PitchLimit {
		player.Pitch = -cfg.Player.PitchLimit
	}

	// Horizontal movement. Each held direction refines the candidate, with
	// height held fixed; blocked moves degrade to single-axis wall slides.
	forward := player.Forward()
	left := player.Left()
	step := player.Speed * dt
	pos := body.Pos
	headings := [...]struct {
		action cfg.ActionID
		dir    gamemath.Vec3
	}{
		{cfg.ActionMoveForward, forward},
		{cfg.ActionMoveBack, forward.Scale(-1)},
		{cfg.ActionMoveLeft, left},
		{cfg.ActionMoveRight, left.Scale(-1)},
	}
	for _, h := range headings {
		if !in.Action(h.action).Pressed {
			continue
		}
		delta := gamemath.Vec3{X: h.dir.X, Z: h.dir.Z}.Scale(step)
		pos = gamemath.ResolveMovement(pos, delta, collider.Blocked)
	}

	groundHeight, onGround := collider.GroundHeight(pos)

	// Landing is the only place the jump budget replenishes.
	if onGround && !player.WasOnGround {
		player.JumpCount = 0
	}

	// Speed selection. Grounded speed is snapshotted for the air; airborne
	// speed never changes mid-air regardless of key state.
	runHeld := in.Action(cfg.ActionRun).Pressed
	crouchHeld := in.Action(cfg.ActionCrouch).Pressed
	if onGround {
		switch {
		case player.Sliding:
			player.Speed = cfg.Player.SlideSpeed
			player.Mode = cfg.ModeSlide
		case runHeld && !crouchHeld && !player.SprintExhausted:
			player.Speed = cfg.Player.RunSpeed
			player.Mode = cfg.ModeRun
		case crouchHeld:
			player.Speed = cfg.Player.CrouchSpeed
			player.Mode = cfg.ModeCrouch
		default:
			player.Speed = cfg.Player.WalkSpeed
			player.Mode = cfg.ModeWalk
		}
		player.AirborneSpeed = player.Speed
	} else {
		player.Speed = player.AirborneSpeed
		player.Mode = cfg.ModeAirborne
	}

	// Vertical motion. Snap to the surface only while descending so a jump
	// can leave the ground cleanly.
	if onGround && player.VerticalVel < 0 {
		pos.Y = groundHeight
		player.VerticalVel = 0
	}
	if in.Action(cfg.ActionJump).JustPressed &&
		(onGround || player.JumpCount < cfg.Player.MaxJumps) {
		player.VerticalVel = cfg.Player.JumpSpeed
		player.JumpCount++
	}
	if !onGround {
		player.VerticalVel -= cfg.Player.Gravity * dt
	}
	pos.Y += player.VerticalVel * dt

	// Slide state. The queued flag debounces the crouch hold: it clears only
	// once crouch is released.
	crouchEdge := crouchHeld && !player.PrevCrouch
	startedSlide := false
	if !player.Sliding && crouchEdge && runHeld && onGround && !player.SlideQueued {
		player.Sliding = true
		player.SlideQueued = true
		player.SlideTimer = cfg.Player.SlideDuration
		startedSlide = true
	}
	if player.Sliding && !startedSlide {
		player.SlideTimer -= dt
		if player.SlideTimer <= 0 {
			player.SlideTimer = 0
			player.Sliding = false
		}
	}
	if !crouchHeld {
		player.SlideQueued = false
	}

	// Sprint resource: charges while running, drains at twice the rate
	// otherwise, and holds exhausted until fully drained.
	if runHeld && !player.SprintExhausted {
		player.SprintTimer += dt
		if player.SprintTimer >= cfg.Player.SprintMax {
			player.SprintTimer = cfg.Player.SprintMax
			player.SprintExhausted = true
		}
	} else {
		player.SprintTimer -= cfg.Player.SprintDrainRate * dt
		if player.SprintTimer <= 0 {
			player.SprintTimer = 0
			player.SprintExhausted = false
		}
	}

	player.WasOnGround = onGround
	player.PrevCrouch = crouchHeld
	body.Pos = pos
}
