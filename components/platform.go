package components

import (
	"image/color"

	"github.com/automoto/lixtricks/gamemath"
	"github.com/yohamta/donburi"
)

// PlatformData is a static box, immutable after world construction.
type PlatformData struct {
	Box   gamemath.Box
	Color color.RGBA
}

var Platform = donburi.NewComponentType[PlatformData]()
