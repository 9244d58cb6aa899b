package demo

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSOverlay draws the current FPS and TPS in the top-left corner. The text
// is refreshed about twice a second.
type FPSOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

// NewFPSOverlay creates an overlay. 100x32 is enough for "FPS: 60.0\nTPS: 60.0".
func NewFPSOverlay() *FPSOverlay {
	return &FPSOverlay{img: ebiten.NewImage(100, 32), lastUpdate: 1}
}

// Update refreshes the text every ~0.5 seconds.
func (o *FPSOverlay) Update(dt float64) {
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// Draw renders the overlay onto screen.
func (o *FPSOverlay) Draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
