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

// UpdateCombat spawns projectiles on the fire edge and advances every live
// projectile: integrate, then swept tests against platforms, then enemies.
// A projectile dies on its first collision and can affect at most one enemy.
func UpdateCombat(e *ecs.ECS) {
	session := currentSession(e)
	level := currentLevel(e)
	if session == nil || level == nil {
		return
	}
	dt := session.DeltaTime

	if playerEntry, ok := components.Player.First(e.World); ok {
		in := components.Input.Get(playerEntry)
		if in.Action(cfg.ActionFire).JustPressed {
			player := components.Player.Get(playerEntry)
			body := components.Body.Get(playerEntry)
			factory.CreateProjectile(e, body.Pos, player.Forward())
			session.ShotsFired++
		}
	}

	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		projectile := components.Projectile.Get(entry)
		if projectile.Life <= 0 {
			return
		}
		body := components.Body.Get(entry)

		start := body.Pos
		body.Pos = start.Add(projectile.Vel.Scale(dt))
		projectile.Life -= dt
		if projectile.Life <= 0 {
			return
		}

		for _, box := range level.Collider.Boxes {
			if gamemath.SweptSphereVsBox(start, body.Pos, body.Radius, box) {
				projectile.Life = 0
				break
			}
		}
		if projectile.Life <= 0 {
			return
		}

		var hit *donburi.Entry
		tags.Enemy.Each(e.World, func(enemyEntry *donburi.Entry) {
			if hit != nil {
				return
			}
			enemy := components.Enemy.Get(enemyEntry)
			enemyBody := components.Body.Get(enemyEntry)
			if gamemath.SweptSphereVsBox(start, body.Pos, body.Radius, enemy.Box(enemyBody.Pos)) {
				hit = enemyEntry
			}
		})
		if hit != nil {
			components.Health.Get(hit).Current -= cfg.Projectile.Damage
			components.Flash.Get(hit).Start(cfg.Enemy.FlashDuration)
			projectile.Life = 0
			session.ShotsHit++
		}
	})
}
