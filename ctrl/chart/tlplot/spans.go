package tlplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Activity is a labelled stretch of the time axis.
type Activity struct {
	Start float64
	End   float64
	Color color.Color
	Label string
}

// SpanPlot shades each activity across the full height of the panel. Add it before any series
// so the series draw on top.
type SpanPlot struct {
	Activities []Activity
	Alpha      uint8
}

var _ plot.Plotter = &SpanPlot{}

func NewSpanPlot(activities []Activity, alpha uint8) *SpanPlot {
	return &SpanPlot{
		Activities: activities,
		Alpha:      alpha,
	}
}

// Translucent returns c with its alpha replaced.
func Translucent(c color.Color, alpha uint8) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = alpha
	return n
}

func (s *SpanPlot) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, _ := plt.Transforms(&c)
	for _, activity := range s.Activities {
		xStart, xEnd := trX(activity.Start), trX(activity.End)
		if xEnd < xStart {
			xStart, xEnd = xEnd, xStart
		}
		pts := []vg.Point{
			{X: xStart, Y: c.Min.Y},
			{X: xEnd, Y: c.Min.Y},
			{X: xEnd, Y: c.Max.Y},
			{X: xStart, Y: c.Max.Y},
		}
		c.FillPolygon(Translucent(activity.Color, s.Alpha), c.ClipPolygonX(pts))
	}
}

// Swatch is a legend entry for a shaded span.
type Swatch struct {
	Color color.Color
	Alpha uint8
}

var _ plot.Thumbnailer = Swatch{}

func (s Swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
	}
	c.FillPolygon(Translucent(s.Color, s.Alpha), c.ClipPolygonY(pts))
}
