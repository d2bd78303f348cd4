package chart

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/celskeggs/spikeplot/ctrl/chart/tlplot"
	"github.com/celskeggs/spikeplot/scenes"
	"github.com/celskeggs/spikeplot/sim/model"
	"github.com/celskeggs/spikeplot/trace"
)

// Shading is the scene segmentation of the trace being rendered and the colour of each scene.
type Shading struct {
	Intervals []scenes.Interval
	Colors    *scenes.Assignment
}

func (s *Shading) activities() []tlplot.Activity {
	var out []tlplot.Activity
	for _, interval := range s.Intervals {
		c, ok := s.Colors.Color(interval.Label)
		if !ok {
			panic("scene without a colour: " + interval.Label)
		}
		out = append(out, tlplot.Activity{
			Start: interval.Start.Axis(),
			End:   interval.End.Axis(),
			Color: c,
			Label: interval.Label,
		})
	}
	return out
}

// Panel is one rendered sub-plot of a figure.
type Panel struct {
	Title  string
	Plot   *plot.Plot
	Drawn  []string // channels, bottom to top
	Legend []string // legend entries, top to bottom
	Spans  int
}

// Renderer turns plans into plots. It holds no state between calls besides its theme.
type Renderer struct {
	Theme Theme
	Log   *zap.Logger
}

func NewRenderer(theme Theme, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{
		Theme: theme,
		Log:   log,
	}
}

func (r *Renderer) newPlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = ylabel
	return p
}

func (r *Renderer) addGrid(p *plot.Plot) {
	if !r.Theme.Grid {
		return
	}
	grid := plotter.NewGrid()
	grid.Vertical.Color = r.Theme.GridColor
	grid.Horizontal.Color = r.Theme.GridColor
	p.Add(grid)
}

func (r *Renderer) addSpans(p *plot.Plot, panel *Panel, shading *Shading) {
	if shading == nil {
		return
	}
	activities := shading.activities()
	p.Add(tlplot.NewSpanPlot(activities, r.Theme.SpanAlpha))
	panel.Spans = len(activities)
}

func points(times []model.VirtualTime, values []float64) plotter.XYs {
	xys := make(plotter.XYs, len(times))
	for i := range times {
		xys[i].X = times[i].Axis()
		xys[i].Y = values[i]
	}
	return xys
}

// runs splits xys at NaN samples. Each run is drawn as its own line, leaving a gap.
func runs(xys plotter.XYs) []plotter.XYs {
	var out []plotter.XYs
	start := 0
	for i := 0; i <= len(xys); i++ {
		if i == len(xys) || math.IsNaN(xys[i].Y) {
			if i > start {
				out = append(out, xys[start:i])
			}
			start = i + 1
		}
	}
	return out
}

func (r *Renderer) styleLine(line *plotter.Line, series Series) {
	if series.Color != nil {
		line.Color = series.Color
	}
	line.Width = r.Theme.LineWidth
	line.Dashes = series.Dash.Dashes(r.Theme.LineWidth)
	if series.Style == Step {
		line.StepStyle = plotter.PostStep
	}
}

// seriesLines returns one line per run of the series, and a line styled the same way for the
// legend.
func (r *Renderer) seriesLines(xys plotter.XYs, series Series) ([]*plotter.Line, *plotter.Line, error) {
	var lines []*plotter.Line
	for _, run := range runs(xys) {
		line, err := plotter.NewLine(run)
		if err != nil {
			return nil, nil, err
		}
		r.styleLine(line, series)
		lines = append(lines, line)
	}
	legend := &plotter.Line{LineStyle: plotter.DefaultLineStyle}
	r.styleLine(legend, series)
	return lines, legend, nil
}

// Panel draws the series of plan from tr. Scene spans go underneath everything, then the grid,
// then series in plan order and thresholds last. The legend lists series, thresholds, then scenes.
func (r *Renderer) Panel(tr *trace.Trace, plan PanelPlan, shading *Shading) (*Panel, error) {
	times, err := tr.Times()
	if err != nil {
		return nil, err
	}
	p := r.newPlot(plan.Title, plan.YLabel)
	panel := &Panel{
		Title: plan.Title,
		Plot:  p,
	}
	if plan.Scenes {
		if shading == nil {
			return nil, fmt.Errorf("panel %q: scene shading requested without scenes", plan.Title)
		}
		r.addSpans(p, panel, shading)
	}
	r.addGrid(p)

	if plan.LegendTitle != "" {
		p.Legend.Add(plan.LegendTitle)
		panel.Legend = append(panel.Legend, plan.LegendTitle)
	}
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, series := range plan.Series {
		if series.Optional && !tr.HasChannel(series.Channel) {
			r.Log.Debug("optional channel absent",
				zap.String("panel", plan.Title), zap.String("channel", series.Channel))
			continue
		}
		values, err := tr.Values(series.Channel, plan.Title)
		if err != nil {
			return nil, err
		}
		lines, legend, err := r.seriesLines(points(times, values), series)
		if err != nil {
			return nil, fmt.Errorf("panel %q channel %q: %v", plan.Title, series.Channel, err)
		}
		for _, line := range lines {
			p.Add(line)
		}
		p.Legend.Add(series.Label, legend)
		panel.Drawn = append(panel.Drawn, series.Channel)
		panel.Legend = append(panel.Legend, series.Label)
		for _, v := range values {
			if !math.IsNaN(v) {
				ymin, ymax = math.Min(ymin, v), math.Max(ymax, v)
			}
		}
	}
	for _, threshold := range plan.Thresholds {
		value := threshold.Value
		fn := plotter.NewFunction(func(float64) float64 { return value })
		fn.Color = threshold.Color
		fn.Width = r.Theme.LineWidth * 2 / 3
		fn.Dashes = threshold.Dash.Dashes(fn.Width)
		p.Add(fn)
		p.Legend.Add(threshold.Label, fn)
		panel.Legend = append(panel.Legend, threshold.Label)
		ymin, ymax = math.Min(ymin, value), math.Max(ymax, value)
	}
	if plan.SceneLegend {
		if shading == nil {
			return nil, fmt.Errorf("panel %q: scene legend requested without scenes", plan.Title)
		}
		for _, label := range shading.Colors.Labels() {
			c, _ := shading.Colors.Color(label)
			p.Legend.Add(label, tlplot.Swatch{Color: c, Alpha: r.Theme.SwatchAlpha})
			panel.Legend = append(panel.Legend, label)
		}
	}
	p.Legend.Top = true
	p.Legend.Left = plan.Legend == UpperLeft

	switch {
	case plan.YRange != nil:
		p.Y.Min, p.Y.Max = plan.YRange.Min, plan.YRange.Max
	case ymin <= ymax:
		p.Y.Min, p.Y.Max = ymin, ymax
		if ymin == ymax {
			p.Y.Min, p.Y.Max = ymin-0.5, ymax+0.5
		}
	default:
		p.Y.Min, p.Y.Max = 0, 1
	}
	r.Log.Debug("panel rendered",
		zap.String("panel", plan.Title), zap.Strings("series", panel.Drawn), zap.Int("spans", panel.Spans))
	return panel, nil
}
