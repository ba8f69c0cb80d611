package systems

import (
	"github.com/automoto/lixtricks/components"
	cfg "github.com/automoto/lixtricks/config"
	"github.com/automoto/lixtricks/gamemath"
	"github.com/automoto/lixtricks/systems/factory"
	"github.com/automoto/lixtricks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// pursuitEpsilon is the distance below which an enemy stops steering, so the
// direction is never normalized from a near-zero length.
const pursuitEpsilon = 1e-3

// UpdateEnemies runs the spawner and per-enemy behavior: straight-line
// pursuit on the ground plane, cooldown-gated contact damage, and flash
// decay.
func UpdateEnemies(e *ecs.ECS) {
	session := currentSession(e)
	level := currentLevel(e)
	if session == nil || level == nil {
		return
	}
	dt := session.DeltaTime

	updateSpawner(e, session, level, dt)

	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	playerBody := components.Body.Get(playerEntry)
	playerHealth := components.Health.Get(playerEntry)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		body := components.Body.Get(entry)

		components.Flash.Get(entry).Advance(dt)

		if enemy.AttackCooldown > 0 {
			enemy.AttackCooldown -= dt
		}

		pursue(level, enemy, body, playerBody.Pos, dt)

		// Contact damage, gated by the cooldown regardless of proximity.
		if enemy.AttackCooldown <= 0 {
			combined := playerBody.Radius + enemy.Extents.X/2
			if playerBody.Pos.Sub(body.Pos).Length() < combined {
				playerHealth.Current -= cfg.Enemy.Damage
				if playerHealth.Current < 0 {
					playerHealth.Current = 0
				}
				session.DamageFlash.Start(cfg.Enemy.FlashDuration * 2)
				enemy.AttackCooldown = cfg.Enemy.AttackCooldown
			}
		}
	})
}

// updateSpawner advances the spawn timer and, at each interval, tries to
// place one enemy at a random spot on the floor. The timer resets whether or
// not the spawn happened.
func updateSpawner(e *ecs.ECS, session *components.SessionData, level *components.LevelData, dt float64) {
	level.SpawnTimer += dt
	if level.SpawnTimer < cfg.Enemy.SpawnInterval {
		return
	}
	level.SpawnTimer = 0

	alive := 0
	tags.Enemy.Each(e.World, func(*donburi.Entry) {
		alive++
	})
	if alive >= cfg.Enemy.MaxAlive {
		return
	}

	factory.CreateEnemy(e, spawnPosition(session, level.Floor))
}

// spawnPosition samples a uniform point on the floor, inset by the enemy's
// radius, resting on the floor's top surface.
func spawnPosition(session *components.SessionData, floor gamemath.Box) gamemath.Vec3 {
	inset := cfg.Enemy.Extents.X / 2
	min, max := floor.Min(), floor.Max()
	return gamemath.Vec3{
		X: uniform(session, min.X+inset, max.X-inset),
		Y: floor.Top() + cfg.Enemy.Extents.Y/2,
		Z: uniform(session, min.Z+inset, max.Z-inset),
	}
}

func uniform(session *components.SessionData, lo, hi float64) float64 {
	return lo + session.Rand.Float64()*(hi-lo)
}

// pursue steps the enemy toward the player on the ground plane. The step is
// dropped when it would push the enemy into a non-floor platform; the floor
// itself never blocks.
func pursue(level *components.LevelData, enemy *components.EnemyData, body *components.BodyData, target gamemath.Vec3, dt float64) {
	to := gamemath.Vec3{X: target.X - body.Pos.X, Z: target.Z - body.Pos.Z}
	if to.Length() <= pursuitEpsilon {
		return
	}
	next := body.Pos.Add(to.Normalize().Scale(cfg.Enemy.MoveSpeed * dt))

	for _, box := range level.Collider.Boxes[1:] {
		if gamemath.SphereVsBox(next, body.Radius, box) {
			return
		}
	}
	body.Pos = next
}
