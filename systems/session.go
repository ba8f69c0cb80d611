package systems

import (
	"github.com/automoto/lixtricks/components"
	cfg "github.com/automoto/lixtricks/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WithActiveSession wraps a gameplay system so it is skipped while the
// session is in game-over. Only the restart check keeps running then.
func WithActiveSession(sys func(*ecs.ECS)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if session, ok := components.Session.First(e.World); ok {
			if components.Session.Get(session).GameOver {
				return
			}
		}
		sys(e)
	}
}

// UpdateSession runs first each frame: it accrues survival time while the
// session is active and, while in game-over, watches for the restart edge.
func UpdateSession(e *ecs.ECS) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	if session.GameOver {
		if in := firstInput(e); in != nil && in.Action(cfg.ActionRestart).JustPressed {
			resetSession(e, session)
		}
		return
	}

	session.SurvivalTime += session.DeltaTime
	session.DamageFlash.Advance(session.DeltaTime)
}

// UpdateOutcome runs last each frame and flips the game-over flag the exact
// frame health reaches zero.
func UpdateOutcome(e *ecs.ECS) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	if session.GameOver {
		return
	}

	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	if components.Health.Get(playerEntry).Current <= 0 {
		session.GameOver = true
	}
}

// resetSession returns every piece of session state to its starting value:
// player, health, counters, timers, and the live enemy/projectile sets.
// Platforms are immutable and stay.
func resetSession(e *ecs.ECS, session *components.SessionData) {
	*session = components.SessionData{Rand: session.Rand}

	if levelEntry, ok := components.Level.First(e.World); ok {
		components.Level.Get(levelEntry).SpawnTimer = 0
	}

	if playerEntry, ok := components.Player.First(e.World); ok {
		input := *components.Input.Get(playerEntry)
		components.Player.SetValue(playerEntry, components.PlayerData{
			Speed: cfg.Player.WalkSpeed,
		})
		components.Body.SetValue(playerEntry, components.BodyData{
			Pos:    cfg.Player.SpawnPos,
			Radius: cfg.Player.Radius,
		})
		components.Health.SetValue(playerEntry, components.HealthData{
			Current: cfg.Player.Health,
			Max:     cfg.Player.Health,
		})
		components.Input.SetValue(playerEntry, input)
	}

	var toRemove []*donburi.Entry
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry)
	})
	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry)
	})
	for _, entry := range toRemove {
		e.World.Remove(entry.Entity())
	}
}

func firstInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}

func currentSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

func currentLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}
