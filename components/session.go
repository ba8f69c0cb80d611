package components

import (
	"math/rand"

	cfg "github.com/automoto/lixtricks/config"
	"github.com/yohamta/donburi"
)

// SessionData aggregates the outcome of one play session and carries the
// frame delta time and the injected random source.
type SessionData struct {
	DeltaTime float64 // seconds since the previous frame, set by the host

	GameOver        bool
	EnemiesDefeated int
	ShotsFired      int
	ShotsHit        int
	SurvivalTime    float64

	DamageFlash FlashData // HUD vignette when the player takes damage

	Rand *rand.Rand
}

var Session = donburi.NewComponentType[SessionData]()

// Score is derived, never stored.
func (s *SessionData) Score() int {
	return s.EnemiesDefeated * cfg.Session.ScorePerKill
}

// Accuracy is 0 when no shots have been fired.
func (s *SessionData) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.ShotsHit) / float64(s.ShotsFired)
}

func (s *SessionData) FinalScore() int {
	score := s.Score()
	return score + int(float64(score)*s.Accuracy())
}
