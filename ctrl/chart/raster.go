package chart

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/celskeggs/spikeplot/ctrl/chart/tlplot"
	"github.com/celskeggs/spikeplot/trace"
)

// Raster is a rendered event raster panel.
type Raster struct {
	Panel
	Events *tlplot.RasterPlot
}

// Raster draws a tick at every sample where a row's channel is nonzero. Every requested channel
// gets a labelled row, including channels with no events at all.
func (r *Renderer) Raster(tr *trace.Trace, plan RasterPlan, shading *Shading) (*Raster, error) {
	if len(plan.Rows) == 0 {
		return nil, fmt.Errorf("raster %q: no channels", plan.Title)
	}
	times, err := tr.Times()
	if err != nil {
		return nil, err
	}
	p := r.newPlot(plan.Title, plan.YLabel)
	raster := &Raster{
		Panel: Panel{
			Title: plan.Title,
			Plot:  p,
		},
	}
	if plan.Scenes {
		if shading == nil {
			return nil, fmt.Errorf("raster %q: scene shading requested without scenes", plan.Title)
		}
		r.addSpans(p, &raster.Panel, shading)
	}
	r.addGrid(p)

	rows := make([]tlplot.RasterRow, len(plan.Rows))
	for i, channel := range plan.Rows {
		values, err := tr.Values(channel.Channel, plan.Title)
		if err != nil {
			return nil, err
		}
		rows[i] = tlplot.RasterRow{
			Label: channel.Label,
			Color: channel.Color,
		}
		for j, v := range values {
			if v != 0 && !math.IsNaN(v) {
				rows[i].Events = append(rows[i].Events, times[j].Axis())
			}
		}
		raster.Drawn = append(raster.Drawn, channel.Channel)
		r.Log.Debug("raster row",
			zap.String("panel", plan.Title), zap.String("channel", channel.Channel), zap.Int("events", len(rows[i].Events)))
	}
	events := tlplot.NewRasterPlot(rows, plan.LineLength)
	events.LineStyle.Width = r.Theme.LineWidth
	p.Add(events)
	raster.Events = events

	p.Y.Tick.Marker = events.Ticks()
	p.Y.Min, p.Y.Max = -0.5, float64(len(rows))-0.5
	return raster, nil
}
