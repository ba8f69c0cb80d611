package config

// MoveMode identifies the player's movement mode for the current frame.
type MoveMode int

const (
	ModeWalk MoveMode = iota
	ModeRun
	ModeCrouch
	ModeSlide
	ModeAirborne
)

func (m MoveMode) String() string {
	switch m {
	case ModeWalk:
		return "walk"
	case ModeRun:
		return "run"
	case ModeCrouch:
		return "crouch"
	case ModeSlide:
		return "slide"
	case ModeAirborne:
		return "airborne"
	default:
		return "unknown"
	}
}
