package systems

import (
	"github.com/automoto/lixtricks/components"
	cfg "github.com/automoto/lixtricks/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Cursor position from the previous frame; the first frame after a scene
// change must not produce a look spike.
var (
	lastCursorX, lastCursorY int
	cursorSeen               bool
)

// ResetCursorTracking drops the stored cursor position, for scene changes.
func ResetCursorTracking() {
	cursorSeen = false
}

// UpdateInput polls raw input and updates the InputData component, and
// stamps the frame delta time onto the session. Must run before every other
// system. Headless tests skip this system and write InputData directly.
func UpdateInput(e *ecs.ECS) {
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	in := components.Input.Get(inputEntry)

	// Swap buffers: current becomes previous, then re-poll
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[actionID] = true
			}
		}
		for _, button := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(button) {
				in.Current[actionID] = true
			}
		}
	}

	cx, cy := ebiten.CursorPosition()
	if cursorSeen {
		in.MouseDX = float64(cx - lastCursorX)
		in.MouseDY = float64(cy - lastCursorY)
	} else {
		in.MouseDX, in.MouseDY = 0, 0
		cursorSeen = true
	}
	lastCursorX, lastCursorY = cx, cy

	if session := currentSession(e); session != nil {
		session.DeltaTime = 1.0 / float64(ebiten.TPS())
	}
}
