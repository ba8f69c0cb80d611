// Package leveldata provides TMX arena parsing. It has no dependencies on
// ebitengine or donburi — pure data only.
package leveldata

import (
	"image/color"

	"github.com/automoto/lixtricks/gamemath"
)

// Platform is a static box parsed from the arena's object layer.
type Platform struct {
	Box   gamemath.Box
	Color color.RGBA
}

// Arena holds the static geometry of one level. Platforms[0] is always the
// floor: the fallback rest surface and the enemy spawn area.
type Arena struct {
	Platforms []Platform
}

// Floor returns the floor platform's box.
func (a *Arena) Floor() gamemath.Box {
	return a.Platforms[0].Box
}

// Boxes returns the platform boxes in order, floor first.
func (a *Arena) Boxes() []gamemath.Box {
	boxes := make([]gamemath.Box, len(a.Platforms))
	for i, p := range a.Platforms {
		boxes[i] = p.Box
	}
	return boxes
}
