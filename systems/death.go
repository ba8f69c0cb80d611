package systems

import (
	"github.com/automoto/lixtricks/components"
	"github.com/automoto/lixtricks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths is the compaction pass: it removes expired projectiles and
// depleted enemies after the combat and AI systems have run, crediting one
// defeat per enemy removed this frame.
func UpdateDeaths(e *ecs.ECS) {
	session := currentSession(e)
	if session == nil {
		return
	}

	var toRemove []*donburi.Entry

	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		if components.Projectile.Get(entry).Life <= 0 {
			toRemove = append(toRemove, entry)
		}
	})

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Health.Get(entry).Current <= 0 {
			toRemove = append(toRemove, entry)
			session.EnemiesDefeated++
		}
	})

	for _, entry := range toRemove {
		e.World.Remove(entry.Entity())
	}
}
