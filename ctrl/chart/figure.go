package chart

import (
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/celskeggs/spikeplot/ctrl/chart/tlplot"
	"github.com/celskeggs/spikeplot/scenes"
	"github.com/celskeggs/spikeplot/trace"
)

// Figure is a vertical stack of panels sharing one time axis. Only the bottom panel labels it.
type Figure struct {
	Name     string
	Width    vg.Length
	Height   vg.Length
	Panels   []*Panel
	Raster   *Raster
	Shading  *Shading
	Warnings []error

	XMin, XMax float64
	pad        vg.Length
}

var _ tlplot.Drawable = &Figure{}

// unlabelled keeps the tick positions of a ticker but drops the labels, for the axes of upper
// panels.
type unlabelled struct {
	plot.Ticker
}

func (u unlabelled) Ticks(min, max float64) []plot.Tick {
	ticks := u.Ticker.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}

// Figure renders every panel of plan from tr. An empty trace is not an error: the panels come
// out as empty axes and ErrEmptyTrace is recorded as a warning.
func (r *Renderer) Figure(tr *trace.Trace, plan FigurePlan) (*Figure, error) {
	fig := &Figure{
		Name:   plan.Name,
		Width:  plan.Width,
		Height: plan.Height,
		pad:    r.Theme.PanelPad,
	}
	if tr.Empty() {
		r.Log.Warn("trace is empty; rendering blank panels", zap.String("trace", tr.Path))
		fig.Warnings = append(fig.Warnings, trace.ErrEmptyTrace)
	}

	if plan.UsesScenes() {
		panelName := plan.Raster.Title
		if len(plan.Panels) > 0 {
			panelName = plan.Panels[0].Title
		}
		intervals, err := scenes.FromTrace(tr, panelName)
		if err != nil {
			return nil, err
		}
		colors, err := scenes.AssignColors(scenes.Labels(intervals))
		if err != nil {
			return nil, err
		}
		fig.Shading = &Shading{
			Intervals: intervals,
			Colors:    colors,
		}
		r.Log.Info("segmented scenes",
			zap.Int("intervals", len(intervals)), zap.Strings("scenes", colors.Labels()))
	}

	for _, panelPlan := range plan.Panels {
		panel, err := r.Panel(tr, panelPlan, fig.Shading)
		if err != nil {
			return nil, err
		}
		fig.Panels = append(fig.Panels, panel)
	}
	raster, err := r.Raster(tr, plan.Raster, fig.Shading)
	if err != nil {
		return nil, err
	}
	fig.Raster = raster

	times, err := tr.Times()
	if err != nil {
		return nil, err
	}
	fig.XMin, fig.XMax = 0, 1
	if len(times) > 0 {
		fig.XMin, fig.XMax = times[0].Axis(), times[len(times)-1].Axis()
		if fig.XMin == fig.XMax {
			fig.XMin, fig.XMax = fig.XMin-1, fig.XMax+1
		}
	}
	plots := fig.Plots()
	for i, p := range plots {
		p.X.Min, p.X.Max = fig.XMin, fig.XMax
		if i == len(plots)-1 {
			p.X.Label.Text = r.Theme.XLabel
		} else {
			p.X.Tick.Marker = unlabelled{Ticker: p.X.Tick.Marker}
		}
	}
	return fig, nil
}

// Plots lists the figure's plots top to bottom.
func (f *Figure) Plots() []*plot.Plot {
	var plots []*plot.Plot
	for _, panel := range f.Panels {
		plots = append(plots, panel.Plot)
	}
	if f.Raster != nil {
		plots = append(plots, f.Raster.Plot)
	}
	return plots
}

// Draw lays the panels out in equal rows with aligned axes.
func (f *Figure) Draw(c draw.Canvas) {
	plots := f.Plots()
	if len(plots) == 0 {
		return
	}
	grid := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		grid[i] = []*plot.Plot{p}
	}
	canvases := plot.Align(grid, draw.Tiles{
		Rows:      len(plots),
		Cols:      1,
		PadTop:    f.pad,
		PadBottom: f.pad,
		PadLeft:   f.pad,
		PadRight:  f.pad,
		PadY:      f.pad,
	}, c)
	for i, p := range plots {
		p.Draw(canvases[i][0])
	}
}
