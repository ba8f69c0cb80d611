package config

import (
	"image/color"
	"math"

	"github.com/automoto/lixtricks/gamemath"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement speeds (units per second)
	WalkSpeed   float64
	RunSpeed    float64
	CrouchSpeed float64
	SlideSpeed  float64

	// Vertical motion
	JumpSpeed float64 // initial upward velocity on jump
	Gravity   float64 // downward acceleration, units per second squared
	MaxJumps  int     // jump budget between ground contacts

	// Slide mechanics
	SlideDuration float64 // seconds a slide lasts once started

	// Sprint resource
	SprintMax       float64 // seconds of sprint before exhaustion
	SprintDrainRate float64 // recovery rate multiplier relative to charge rate

	// Camera
	MouseSensitivity float64
	PitchLimit       float64 // radians

	// Body
	Radius   float64
	Health   int
	SpawnPos gamemath.Vec3
}

// ProjectileConfig contains projectile tuning values
type ProjectileConfig struct {
	Speed       float64 // units per second
	Radius      float64
	Lifetime    float64 // seconds
	Damage      int
	SpawnOffset float64 // distance along the look vector from the player center
}

// EnemyConfig contains enemy and spawner configuration
type EnemyConfig struct {
	Health         int
	Extents        gamemath.Vec3
	MoveSpeed      float64 // pursuit speed, units per second
	Damage         int
	AttackCooldown float64 // seconds between hits on the player
	SpawnInterval  float64 // seconds between spawn attempts
	MaxAlive       int
	FlashDuration  float64 // seconds of hit flash
	TintColor      color.RGBA
}

// SessionConfig contains scoring values
type SessionConfig struct {
	ScorePerKill int
}

// HUDConfig contains HUD layout and color values
type HUDConfig struct {
	BarWidth  float32
	BarHeight float32
	Margin    float32

	BarBgColor    color.RGBA
	BarFgColor    color.RGBA
	TextColor     color.RGBA
	OverlayColor  color.RGBA
	VignetteColor color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Projectile ProjectileConfig
var Enemy EnemyConfig
var Session SessionConfig
var HUD HUDConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Lixtricks",
	}

	Player = PlayerConfig{
		WalkSpeed:   5.0,
		RunSpeed:    9.0,
		CrouchSpeed: 2.5,
		SlideSpeed:  12.0,

		JumpSpeed: 8.0,
		Gravity:   20.0,
		MaxJumps:  2,

		SlideDuration: 0.5,

		SprintMax:       3.0,
		SprintDrainRate: 2.0,

		MouseSensitivity: 0.003,
		PitchLimit:       89.0 * math.Pi / 180.0,

		Radius:   0.4,
		Health:   100,
		SpawnPos: gamemath.Vec3{X: 0, Y: 1.8, Z: 0},
	}

	Projectile = ProjectileConfig{
		Speed:       50.0,
		Radius:      0.1,
		Lifetime:    2.0,
		Damage:      25,
		SpawnOffset: 0.6,
	}

	Enemy = EnemyConfig{
		Health:         75,
		Extents:        gamemath.Vec3{X: 1.0, Y: 2.0, Z: 1.0},
		MoveSpeed:      2.5,
		Damage:         10,
		AttackCooldown: 1.0,
		SpawnInterval:  3.0,
		MaxAlive:       8,
		FlashDuration:  0.15,
		TintColor:      color.RGBA{R: 200, G: 40, B: 40, A: 255},
	}

	Session = SessionConfig{
		ScorePerKill: 100,
	}

	HUD = HUDConfig{
		BarWidth:  260,
		BarHeight: 18,
		Margin:    16,

		BarBgColor:    color.RGBA{R: 40, G: 40, B: 40, A: 255},
		BarFgColor:    color.RGBA{R: 40, G: 220, B: 40, A: 255},
		TextColor:     color.RGBA{R: 235, G: 235, B: 235, A: 255},
		OverlayColor:  color.RGBA{R: 0, G: 0, B: 0, A: 180},
		VignetteColor: color.RGBA{R: 200, G: 20, B: 20, A: 90},
	}
}
