package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// FlashData is a cosmetic hit-feedback value tweened from 1 to 0, independent
// of health and removal.
type FlashData struct {
	Tween *gween.Tween
	Value float32
}

var Flash = donburi.NewComponentType[FlashData]()

// Start restarts the flash at full strength for the given duration.
func (f *FlashData) Start(duration float64) {
	f.Tween = gween.New(1, 0, float32(duration), ease.Linear)
	f.Value = 1
}

// Advance steps the flash by dt seconds.
func (f *FlashData) Advance(dt float64) {
	if f.Tween == nil {
		return
	}
	value, finished := f.Tween.Update(float32(dt))
	f.Value = value
	if finished {
		f.Tween = nil
		f.Value = 0
	}
}
