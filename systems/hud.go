package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/lixtricks/components"
	cfg "github.com/automoto/lixtricks/config"
	"github.com/automoto/lixtricks/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the health bar, the session stats line, the damage
// vignette, and the game-over overlay.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	session := currentSession(e)
	if session == nil {
		return
	}
	hp := components.Health.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	hud := cfg.HUD

	if session.DamageFlash.Value > 0 {
		v := hud.VignetteColor
		v.A = uint8(float32(v.A) * session.DamageFlash.Value)
		vector.DrawFilledRect(screen, 0, 0,
			float32(cfg.C.Width), float32(cfg.C.Height), v, false)
	}

	// Health bar
	vector.DrawFilledRect(screen,
		hud.Margin, hud.Margin,
		hud.BarWidth, hud.BarHeight,
		hud.BarBgColor, false)
	ratio := float32(hp.Current) / float32(hp.Max)
	vector.DrawFilledRect(screen,
		hud.Margin, hud.Margin,
		hud.BarWidth*ratio, hud.BarHeight,
		hud.BarFgColor, false)

	stats := fmt.Sprintf("score %d   accuracy %.0f%%   kills %d   %.0fs",
		session.Score(), session.Accuracy()*100, session.EnemiesDefeated, session.SurvivalTime)
	text.Draw(screen, stats, fonts.HUD.Get(),
		int(hud.Margin), int(hud.Margin+hud.BarHeight)+24, hud.TextColor)

	text.Draw(screen, player.Mode.String(), fonts.Small.Get(),
		int(hud.Margin), cfg.C.Height-int(hud.Margin), hud.TextColor)

	if session.GameOver {
		drawGameOver(screen, session)
	}
}

func drawGameOver(screen *ebiten.Image, session *components.SessionData) {
	hud := cfg.HUD
	vector.DrawFilledRect(screen, 0, 0,
		float32(cfg.C.Width), float32(cfg.C.Height), hud.OverlayColor, false)

	centerX := cfg.C.Width / 2
	title := "GAME OVER"
	titleFace := fonts.Title.Get()
	titleW := text.BoundString(titleFace, title).Dx()
	text.Draw(screen, title, titleFace,
		centerX-titleW/2, cfg.C.Height/2-60, color.RGBA{R: 255, G: 80, B: 80, A: 255})

	lines := []string{
		fmt.Sprintf("final score %d", session.FinalScore()),
		fmt.Sprintf("%d kills, %.0f%% accuracy, survived %.0fs",
			session.EnemiesDefeated, session.Accuracy()*100, session.SurvivalTime),
		"press R to restart",
	}
	face := fonts.HUD.Get()
	y := cfg.C.Height / 2
	for _, line := range lines {
		w := text.BoundString(face, line).Dx()
		text.Draw(screen, line, face, centerX-w/2, y, hud.TextColor)
		y += 28
	}
}
