package chart

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// The categorical colours series are drawn in.
var (
	TabBlue   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	TabOrange = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	TabGreen  = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	TabRed    = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	TabPurple = color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff}
	TabBrown  = color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff}
	TabOlive  = color.RGBA{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff}
)

// Theme is the styling shared by every panel of a figure. It is passed to the Renderer rather
// than held globally, so concurrent renders never see each other's settings.
type Theme struct {
	DPI         int
	LineWidth   vg.Length
	Grid        bool
	GridColor   color.Color
	SpanAlpha   uint8 // scene shading behind series
	SwatchAlpha uint8 // scene entries in the legend
	PanelPad    vg.Length
	XLabel      string
}

func DefaultTheme() Theme {
	return Theme{
		DPI:         128,
		LineWidth:   vg.Points(1.5),
		Grid:        true,
		GridColor:   color.Gray{Y: 0xdc},
		SpanAlpha:   20,
		SwatchAlpha: 102,
		PanelPad:    vg.Points(6),
		XLabel:      "Time (ns)",
	}
}
