package factory

import (
	"math/rand"

	"github.com/automoto/lixtricks/archetypes"
	"github.com/automoto/lixtricks/components"
	cfg "github.com/automoto/lixtricks/config"
	"github.com/automoto/lixtricks/gamemath"
	"github.com/automoto/lixtricks/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the session entity with the injected random source.
func CreateSession(e *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	session := archetypes.Session.Spawn(e)
	components.Session.SetValue(session, components.SessionData{Rand: rng})
	return session
}

// CreateLevel spawns the level entity plus one platform entity per arena box.
// The collider keeps the floor at index 0, matching the arena's ordering.
func CreateLevel(e *ecs.ECS, arena *leveldata.Arena) *donburi.Entry {
	level := archetypes.Level.Spawn(e)
	components.Level.SetValue(level, components.LevelData{
		Collider: &gamemath.Collider{
			Boxes:  arena.Boxes(),
			Radius: cfg.Player.Radius,
		},
		Floor: arena.Floor(),
	})

	for _, p := range arena.Platforms {
		platform := archetypes.Platform.Spawn(e)
		components.Platform.SetValue(platform, components.PlatformData{
			Box:   p.Box,
			Color: p.Color,
		})
	}
	return level
}

// CreatePlayer spawns the player at the configured start position.
func CreatePlayer(e *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(e)
	components.Body.SetValue(player, components.BodyData{
		Pos:    cfg.Player.SpawnPos,
		Radius: cfg.Player.Radius,
	})
	components.Player.SetValue(player, components.PlayerData{
		Speed: cfg.Player.WalkSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	return player
}

// CreateEnemy spawns an enemy resting at pos.
func CreateEnemy(e *ecs.ECS, pos gamemath.Vec3) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(e)
	components.Body.SetValue(enemy, components.BodyData{
		Pos:    pos,
		Radius: cfg.Enemy.Extents.X / 2,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		Extents: cfg.Enemy.Extents,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: cfg.Enemy.Health,
		Max:     cfg.Enemy.Health,
	})
	return enemy
}

// CreateProjectile spawns a projectile just ahead of origin along dir, which
// must be a unit vector.
func CreateProjectile(e *ecs.ECS, origin, dir gamemath.Vec3) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(e)
	components.Body.SetValue(projectile, components.BodyData{
		Pos:    origin.Add(dir.Scale(cfg.Projectile.SpawnOffset)),
		Radius: cfg.Projectile.Radius,
	})
	components.Projectile.SetValue(projectile, components.ProjectileData{
		Vel:  dir.Scale(cfg.Projectile.Speed),
		Life: cfg.Projectile.Lifetime,
	})
	return projectile
}
