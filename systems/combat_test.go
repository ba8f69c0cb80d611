package systems

import (
	"math"
	"testing"

	"github.com/automoto/lixtricks/components"
	cfg "github.com/automoto/lixtricks/config"
	"github.com/automoto/lixtricks/gamemath"
	"github.com/automoto/lixtricks/systems/factory"
)

func TestFireSpawnsOneProjectilePerPress(t *testing.T) {
	w := newTestWorld(t)

	w.hold(cfg.ActionFire)
	w.step(0.25)

	if got := w.projectileCount(); got != 1 {
		t.Fatalf("projectiles = %d, want 1", got)
	}
	if w.session.ShotsFired != 1 {
		t.Fatalf("ShotsFired = %d", w.session.ShotsFired)
	}

	entry, _ := components.Projectile.First(w.ecs.World)
	projectile := components.Projectile.Get(entry)
	body := components.Body.Get(entry)

	if got := projectile.Vel.Length(); math.Abs(got-cfg.Projectile.Speed) > 1e-9 {
		t.Fatalf("projectile speed = %v", got)
	}
	// The projectile already advanced one frame on its spawn tick.
	if got := cfg.Projectile.Lifetime - 0.25; projectile.Life != got {
		t.Fatalf("projectile life = %v, want %v", projectile.Life, got)
	}
	wantZ := cfg.Projectile.SpawnOffset + cfg.Projectile.Speed*0.25
	if math.Abs(body.Pos.Z-wantZ) > 1e-9 || math.Abs(body.Pos.Y-cfg.Player.Radius) > 1e-9 {
		t.Fatalf("projectile at %+v, want z %v at eye height", body.Pos, wantZ)
	}

	// Holding the button does not fire again.
	w.step(0.25)
	if w.session.ShotsFired != 1 {
		t.Fatalf("held fire button fired again, ShotsFired = %d", w.session.ShotsFired)
	}
}

func TestProjectileHitsEnemy(t *testing.T) {
	w := newTestWorld(t)
	factory.CreateEnemy(w.ecs, gamemath.Vec3{X: 0, Y: 1, Z: 6})

	w.hold(cfg.ActionFire)
	w.step(0.125)

	enemy := w.firstEnemy()
	health := components.Health.Get(enemy)
	if got := cfg.Enemy.Health - cfg.Projectile.Damage; health.Current != got {
		t.Fatalf("enemy health = %d, want %d", health.Current, got)
	}
	if components.Flash.Get(enemy).Value <= 0 {
		t.Fatal("hit flash did not start")
	}
	if w.session.ShotsHit != 1 {
		t.Fatalf("ShotsHit = %d", w.session.ShotsHit)
	}
	// The spent projectile is compacted the same frame.
	if got := w.projectileCount(); got != 0 {
		t.Fatalf("spent projectile still present, count %d", got)
	}
}

func TestProjectileStoppedByWall(t *testing.T) {
	// A thin wall between the player and the enemy. The swept test has to
	// catch it even though the projectile crosses it within a single frame.
	w := newTestWorld(t, wallPlatform(0, 1, 3, 4, 2, 0.2))
	factory.CreateEnemy(w.ecs, gamemath.Vec3{X: 0, Y: 1, Z: 6})

	w.hold(cfg.ActionFire)
	w.step(0.25)

	health := components.Health.Get(w.firstEnemy())
	if health.Current != cfg.Enemy.Health {
		t.Fatalf("enemy behind wall took damage, health %d", health.Current)
	}
	if w.session.ShotsHit != 0 {
		t.Fatalf("ShotsHit = %d", w.session.ShotsHit)
	}
	if got := w.projectileCount(); got != 0 {
		t.Fatalf("wall hit did not remove projectile, count %d", got)
	}
}

func TestProjectileExpires(t *testing.T) {
	w := newTestWorld(t)

	w.hold(cfg.ActionFire)
	w.step(0.5)
	w.release(cfg.ActionFire)

	// Lifetime 2.0 at dt 0.5: alive for three more frames, gone on the
	// fourth.
	w.steps(2, 0.5)
	if got := w.projectileCount(); got != 1 {
		t.Fatalf("projectile expired early, count %d", got)
	}
	w.step(0.5)
	if got := w.projectileCount(); got != 0 {
		t.Fatalf("projectile outlived its lifetime, count %d", got)
	}
}

func TestKillRemovesEnemyAndScores(t *testing.T) {
	w := newTestWorld(t)
	factory.CreateEnemy(w.ecs, gamemath.Vec3{X: 0, Y: 1, Z: 6})

	// Three hits at 25 damage each. The enemy closes in between shots but
	// stays on the firing line.
	for i := 0; i < 3; i++ {
		w.hold(cfg.ActionFire)
		w.step(0.25)
		w.release(cfg.ActionFire)
		w.step(0.25)
	}

	if got := w.enemyCount(); got != 0 {
		t.Fatalf("enemy survived three hits, count %d", got)
	}
	if w.session.EnemiesDefeated != 1 {
		t.Fatalf("EnemiesDefeated = %d", w.session.EnemiesDefeated)
	}
	if w.session.ShotsFired != 3 || w.session.ShotsHit != 3 {
		t.Fatalf("shots fired/hit = %d/%d", w.session.ShotsFired, w.session.ShotsHit)
	}
	if got := w.session.Score(); got != cfg.Session.ScorePerKill {
		t.Fatalf("score = %d", got)
	}
}
