package tlplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// RasterRow is one channel of an event raster. Row i is centred on y = i.
type RasterRow struct {
	Label  string
	Color  color.Color
	Events []float64
}

// RasterPlot draws a vertical tick at every event, one row per channel. Rows without events are
// kept so row positions never depend on event density.
type RasterPlot struct {
	Rows       []RasterRow
	LineLength float64 // in row units
	LineStyle  draw.LineStyle
}

var _ plot.Plotter = &RasterPlot{}
var _ plot.DataRanger = &RasterPlot{}

func NewRasterPlot(rows []RasterRow, lineLength float64) *RasterPlot {
	return &RasterPlot{
		Rows:       rows,
		LineLength: lineLength,
		LineStyle:  plotter.DefaultLineStyle,
	}
}

func (r *RasterPlot) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, row := range r.Rows {
		style := r.LineStyle
		if row.Color != nil {
			style.Color = row.Color
		}
		yLow := trY(float64(i) - r.LineLength/2)
		yHigh := trY(float64(i) + r.LineLength/2)
		for _, event := range row.Events {
			x := trX(event)
			if !c.ContainsX(x) {
				continue
			}
			c.StrokeLine2(style, x, yLow, x, yHigh)
		}
	}
}

// DataRange covers every event and a half-row margin around the outer rows.
func (r *RasterPlot) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, row := range r.Rows {
		for _, event := range row.Events {
			xmin = math.Min(xmin, event)
			xmax = math.Max(xmax, event)
		}
	}
	return xmin, xmax, -0.5, float64(len(r.Rows)) - 0.5
}

// Ticks labels each row with its channel, replacing the numeric y axis.
func (r *RasterPlot) Ticks() plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(r.Rows))
	for i, row := range r.Rows {
		ticks[i] = plot.Tick{
			Value: float64(i),
			Label: row.Label,
		}
	}
	return ticks
}

// EventCount is the number of ticks drawn on a row.
func (r *RasterPlot) EventCount(row int) int {
	return len(r.Rows[row].Events)
}
