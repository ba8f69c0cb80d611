package systems

import (
	"image/color"
	"math"

	"github.com/automoto/lixtricks/components"
	cfg "github.com/automoto/lixtricks/config"
	"github.com/automoto/lixtricks/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	nearPlane  = 0.1
	fovY       = 60.0 * math.Pi / 180.0
	lineWidth  = 1.5
	crosshairR = 8
)

var skyColor = color.RGBA{R: 24, G: 28, B: 38, A: 255}

// camera projects world points onto the screen from the player's eye.
type camera struct {
	eye           gamemath.Vec3
	right, up, fw gamemath.Vec3
	focal         float64
	halfW, halfH  float64
}

func newCamera(body *components.BodyData, player *components.PlayerData) camera {
	fw := player.Forward()
	right := player.Left().Scale(-1)
	return camera{
		eye:   body.Pos,
		right: right,
		up:    right.Cross(fw),
		fw:    fw,
		focal: float64(cfg.C.Height) / 2 / math.Tan(fovY/2),
		halfW: float64(cfg.C.Width) / 2,
		halfH: float64(cfg.C.Height) / 2,
	}
}

// project returns screen coordinates and the camera-space depth; ok is false
// when the point is behind the near plane.
func (c camera) project(p gamemath.Vec3) (sx, sy float32, depth float64, ok bool) {
	rel := p.Sub(c.eye)
	x, y, z := rel.Dot(c.right), rel.Dot(c.up), rel.Dot(c.fw)
	if z < nearPlane {
		return 0, 0, z, false
	}
	return float32(c.halfW + x*c.focal/z), float32(c.halfH - y*c.focal/z), z, true
}

// boxEdges pairs the corner indices of an axis-aligned box.
var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0}, // bottom
	{4, 5}, {5, 7}, {7, 6}, {6, 4}, // top
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // verticals
}

func (c camera) strokeBox(screen *ebiten.Image, box gamemath.Box, col color.RGBA) {
	min, max := box.Min(), box.Max()
	var corners [8]gamemath.Vec3
	for i := range corners {
		corners[i] = gamemath.Vec3{X: min.X, Y: min.Y, Z: min.Z}
		if i&1 != 0 {
			corners[i].X = max.X
		}
		if i&2 != 0 {
			corners[i].Z = max.Z
		}
		if i&4 != 0 {
			corners[i].Y = max.Y
		}
	}
	for _, edge := range boxEdges {
		x0, y0, _, ok0 := c.project(corners[edge[0]])
		x1, y1, _, ok1 := c.project(corners[edge[1]])
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, lineWidth, col, true)
	}
}

// DrawWorld renders the first-person view: platform and enemy wireframes and
// projectile markers, then the crosshair.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(skyColor)

	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	cam := newCamera(components.Body.Get(playerEntry), components.Player.Get(playerEntry))

	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		platform := components.Platform.Get(entry)
		cam.strokeBox(screen, platform.Box, platform.Color)
	})

	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		body := components.Body.Get(entry)
		flash := components.Flash.Get(entry)
		cam.strokeBox(screen, enemy.Box(body.Pos), flashTint(cfg.Enemy.TintColor, flash.Value))
	})

	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		sx, sy, depth, visible := cam.project(body.Pos)
		if !visible {
			return
		}
		r := float32(cam.focal * body.Radius / depth)
		if r < 1.5 {
			r = 1.5
		}
		vector.DrawFilledCircle(screen, sx, sy, r, color.RGBA{R: 255, G: 230, B: 120, A: 255}, true)
	})

	drawCrosshair(screen)
}

// flashTint lerps a color toward white by the flash strength.
func flashTint(base color.RGBA, strength float32) color.RGBA {
	lerp := func(c uint8) uint8 {
		return uint8(float32(c) + (255-float32(c))*strength)
	}
	return color.RGBA{R: lerp(base.R), G: lerp(base.G), B: lerp(base.B), A: 255}
}

func drawCrosshair(screen *ebiten.Image) {
	cx := float32(cfg.C.Width) / 2
	cy := float32(cfg.C.Height) / 2
	white := color.RGBA{R: 255, G: 255, B: 255, A: 200}
	vector.StrokeLine(screen, cx-crosshairR, cy, cx+crosshairR, cy, 1, white, true)
	vector.StrokeLine(screen, cx, cy-crosshairR, cx, cy+crosshairR, 1, white, true)
}
