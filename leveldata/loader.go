package leveldata

import (
	"fmt"
	"image/color"
	"io/fs"
	"strconv"

	"github.com/automoto/lixtricks/gamemath"
	"github.com/lafriks/go-tiled"
)

const platformsLayer = "Platforms"

var defaultColor = color.RGBA{R: 120, G: 120, B: 130, A: 255}

// LoadArena parses a TMX file and returns the arena's platform boxes. It
// takes an fs.FS so callers can pass embed.FS or os.DirFS.
//
// Platforms come from the "Platforms" object layer: the object rectangle is
// the horizontal footprint (Tiled X/Y map to world X/Z), and the custom
// properties "elevation" (center height), "thickness" (vertical extent),
// "color" and "floor" fill in the rest. Exactly one object must be marked
// floor=true; it is moved to index 0.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{}
	floorIndex := -1
	for _, og := range arenaMap.ObjectGroups {
		if og.Name != platformsLayer {
			continue
		}
		for _, o := range og.Objects {
			thickness := o.Properties.GetFloat("thickness")
			if thickness <= 0 {
				thickness = 1
			}
			p := Platform{
				Box: gamemath.Box{
					Center: gamemath.Vec3{
						X: o.X + o.Width/2,
						Y: o.Properties.GetFloat("elevation"),
						Z: o.Y + o.Height/2,
					},
					Extents: gamemath.Vec3{X: o.Width, Y: thickness, Z: o.Height},
				},
				Color: parseColor(o.Properties.GetString("color")),
			}
			if o.Properties.GetBool("floor") {
				if floorIndex >= 0 {
					return nil, fmt.Errorf("level %s: multiple floor objects", tmxPath)
				}
				floorIndex = len(arena.Platforms)
			}
			arena.Platforms = append(arena.Platforms, p)
		}
		break
	}

	if len(arena.Platforms) == 0 {
		return nil, fmt.Errorf("level %s: no %q object layer or no objects in it", tmxPath, platformsLayer)
	}
	if floorIndex < 0 {
		return nil, fmt.Errorf("level %s: no object marked floor=true", tmxPath)
	}
	arena.Platforms[0], arena.Platforms[floorIndex] = arena.Platforms[floorIndex], arena.Platforms[0]

	return arena, nil
}

// parseColor accepts Tiled color properties, "#RRGGBB" or "#AARRGGBB".
func parseColor(s string) color.RGBA {
	var hex string
	switch len(s) {
	case 7:
		hex = "ff" + s[1:]
	case 9:
		hex = s[1:]
	default:
		return defaultColor
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return defaultColor
	}
	return color.RGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}
