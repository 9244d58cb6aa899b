package demo

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Background is the window clear color.
var Background = colornames.Midnightblue

// Palette is a set of fill colors that read well on Background.
var Palette = []color.RGBA{
	colornames.Tomato,
	colornames.Steelblue,
	colornames.Mediumseagreen,
	colornames.Goldenrod,
	colornames.Orchid,
	colornames.Coral,
}

// Highlight is used for hovered or selected shapes.
var Highlight = colornames.White

// Pick returns a palette color, wrapping around.
func Pick(i int) color.RGBA {
	return Palette[i%len(Palette)]
}

// Lighten mixes c toward white by t in [0, 1].
func Lighten(c color.RGBA, t float64) color.RGBA {
	mix := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*t)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
