package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Small FontName = "small"
	Title FontName = "title"
)

var faces = map[FontName]font.Face{}

// Load parses the bundled typeface once at startup.
func Load() error {
	fontData, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	for name, size := range map[FontName]float64{
		HUD:   18,
		Small: 13,
		Title: 40,
	} {
		faces[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	}
	return nil
}

func (f FontName) Get() font.Face {
	face, ok := faces[f]
	if !ok {
		panic(fmt.Sprintf("font %s not loaded", f))
	}
	return face
}
