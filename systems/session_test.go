package systems

import (
	"testing"

	"github.com/automoto/lixtricks/components"
	cfg "github.com/automoto/lixtricks/config"
	"github.com/automoto/lixtricks/gamemath"
	"github.com/automoto/lixtricks/systems/factory"
)

func TestScoreAndAccuracy(t *testing.T) {
	s := components.SessionData{
		EnemiesDefeated: 3,
		ShotsFired:      4,
		ShotsHit:        3,
	}

	if got := s.Score(); got != 300 {
		t.Fatalf("Score() = %d", got)
	}
	if got := s.Accuracy(); got != 0.75 {
		t.Fatalf("Accuracy() = %v", got)
	}
	if got := s.FinalScore(); got != 525 {
		t.Fatalf("FinalScore() = %d", got)
	}
}

func TestAccuracyZeroWithoutShots(t *testing.T) {
	s := components.SessionData{EnemiesDefeated: 2}

	if got := s.Accuracy(); got != 0 {
		t.Fatalf("Accuracy() = %v, want 0", got)
	}
	if got := s.FinalScore(); got != s.Score() {
		t.Fatalf("FinalScore() = %d, want bare score %d", got, s.Score())
	}
}

func TestSurvivalTimeAccrues(t *testing.T) {
	w := newTestWorld(t)

	w.steps(4, 0.25)

	if w.session.SurvivalTime != 1.0 {
		t.Fatalf("SurvivalTime = %v, want 1.0", w.session.SurvivalTime)
	}
}

func TestGameOverFreezesSimulation(t *testing.T) {
	w := newTestWorld(t)
	factory.CreateEnemy(w.ecs, gamemath.Vec3{X: 0.5, Y: 1, Z: 0})
	w.health.Current = cfg.Enemy.Damage

	w.step(frameDt)
	if !w.session.GameOver {
		t.Fatal("game over not raised")
	}

	// Input no longer moves the player, fires, or accrues time.
	elapsed := w.session.SurvivalTime
	pos := w.body.Pos
	w.hold(cfg.ActionMoveForward)
	w.hold(cfg.ActionFire)
	w.steps(5, frameDt)

	if w.body.Pos != pos {
		t.Fatalf("player moved during game over: %+v", w.body.Pos)
	}
	if w.session.ShotsFired != 0 || w.projectileCount() != 0 {
		t.Fatal("fired during game over")
	}
	if w.session.SurvivalTime != elapsed {
		t.Fatalf("survival time advanced during game over: %v", w.session.SurvivalTime)
	}
}

func TestRestartResetsSession(t *testing.T) {
	w := newTestWorld(t)
	factory.CreateEnemy(w.ecs, gamemath.Vec3{X: 0.5, Y: 1, Z: 0})
	w.session.EnemiesDefeated = 2
	w.session.ShotsFired = 5
	w.session.ShotsHit = 4
	w.health.Current = cfg.Enemy.Damage

	w.step(frameDt)
	if !w.session.GameOver {
		t.Fatal("game over not raised")
	}

	w.hold(cfg.ActionRestart)
	w.step(frameDt)

	if w.session.GameOver {
		t.Fatal("restart did not clear game over")
	}
	if w.session.EnemiesDefeated != 0 || w.session.ShotsFired != 0 || w.session.ShotsHit != 0 {
		t.Fatalf("counters survived restart: %+v", *w.session)
	}
	if w.session.SurvivalTime != 0 {
		t.Fatalf("survival time survived restart: %v", w.session.SurvivalTime)
	}
	if w.session.Rand == nil {
		t.Fatal("restart dropped the random source")
	}
	if w.health.Current != cfg.Player.Health {
		t.Fatalf("health after restart = %d", w.health.Current)
	}
	if w.enemyCount() != 0 {
		t.Fatalf("enemies survived restart, count %d", w.enemyCount())
	}
	if w.body.Pos.X != cfg.Player.SpawnPos.X || w.body.Pos.Z != cfg.Player.SpawnPos.Z {
		t.Fatalf("player not back at spawn: %+v", w.body.Pos)
	}
}
