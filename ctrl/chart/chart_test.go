package chart

import (
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/celskeggs/spikeplot/scenes"
	"github.com/celskeggs/spikeplot/trace"
)

const suiteCSV = `time_ns,scene,n0_v_real,n1_v_real,n0_spk,n1_spk
0,warmup,0.1,0.2,0,0
10,warmup,0.4,0.3,1,0
20,test,0.9,0.5,0,0
30,test,0.2,0.8,1,0
`

func load(t *testing.T, csv string) *trace.Trace {
	t.Helper()
	tr, err := trace.Read("test", strings.NewReader(csv))
	require.NoError(t, err)
	return tr
}

func renderer() *Renderer {
	return NewRenderer(DefaultTheme(), zap.NewNop())
}

func membranePlan() PanelPlan {
	return PanelPlan{
		Title:  "Neuron membrane voltages",
		YLabel: "Membrane (V)",
		Series: []Series{
			{Channel: "n0_v_real", Label: "n0_v", Color: TabBlue},
			{Channel: "n1_v_real", Label: "n1_v", Color: TabOrange, Dash: Dashed},
		},
	}
}

func rasterPlan() RasterPlan {
	return RasterPlan{
		Title: "Spike events",
		Rows: []RasterChannel{
			{Channel: "n0_spk", Label: "n0", Color: TabBlue},
			{Channel: "n1_spk", Label: "n1", Color: TabOrange},
		},
		LineLength: 0.6,
	}
}

func drawFigure(t *testing.T, fig *Figure) {
	t.Helper()
	c := vgimg.New(4*vg.Inch, 3*vg.Inch)
	assert.NotPanics(t, func() {
		fig.Draw(draw.New(c))
	})
	assert.NotNil(t, c.Image())
}

func TestPanelDrawOrder(t *testing.T) {
	tr := load(t, suiteCSV)
	panel, err := renderer().Panel(tr, membranePlan(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"n0_v_real", "n1_v_real"}, panel.Drawn)
	assert.Equal(t, []string{"n0_v", "n1_v"}, panel.Legend)
	assert.Equal(t, 0, panel.Spans)
	assert.InDelta(t, 0.1, panel.Plot.Y.Min, 1e-9)
	assert.InDelta(t, 0.9, panel.Plot.Y.Max, 1e-9)
}

func TestPanelSpansRenderBeneathSeries(t *testing.T) {
	tr := load(t, "time_ns,v\n0,0.5\n30,0.5\n")
	colors, err := scenes.AssignColors([]string{"warmup"})
	require.NoError(t, err)
	shading := &Shading{
		Intervals: []scenes.Interval{{Label: "warmup", Start: 0, End: 30}},
		Colors:    colors,
	}
	theme := DefaultTheme()
	theme.Grid = false
	theme.LineWidth = vg.Points(6)
	theme.SpanAlpha = 128
	plan := PanelPlan{
		Series: []Series{{Channel: "v", Label: "v", Color: TabBlue}},
		YRange: &Range{Min: 0, Max: 1},
		Scenes: true,
	}
	panel, err := NewRenderer(theme, nil).Panel(tr, plan, shading)
	require.NoError(t, err)

	w, h := 4*vg.Inch, 3*vg.Inch
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(72))
	dc := draw.New(c)
	panel.Plot.Draw(dc)
	da := panel.Plot.DataCanvas(dc)
	trX, trY := panel.Plot.Transforms(&da)
	img := c.Image()
	pixel := func(x, y float64) color.NRGBA {
		px, py := trX(x), trY(y)
		return color.NRGBAModel.Convert(img.At(int(px.Points()), int((h - py).Points()))).(color.NRGBA)
	}

	// the span tints the background away from the series
	assert.NotEqual(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, pixel(15, 0.2))

	// and the series is drawn over it without blending
	want := color.NRGBAModel.Convert(TabBlue).(color.NRGBA)
	got := pixel(15, 0.5)
	assert.InDelta(t, want.R, got.R, 3)
	assert.InDelta(t, want.G, got.G, 3)
	assert.InDelta(t, want.B, got.B, 3)
	assert.Equal(t, uint8(255), got.A)
}

func TestPanelGapAtMissingSample(t *testing.T) {
	tr := load(t, "time_ns,n0_v_real,n1_v_real\n0,0.1,0.2\n10,nan,0.3\n20,0.4,\n30,0.6,0.5\n")
	panel, err := renderer().Panel(tr, membranePlan(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"n0_v_real", "n1_v_real"}, panel.Drawn)
	assert.Equal(t, []string{"n0_v", "n1_v"}, panel.Legend)
	assert.InDelta(t, 0.1, panel.Plot.Y.Min, 1e-9)
	assert.InDelta(t, 0.6, panel.Plot.Y.Max, 1e-9)

	c := vgimg.New(4*vg.Inch, 3*vg.Inch)
	assert.NotPanics(t, func() {
		panel.Plot.Draw(draw.New(c))
	})
}

func TestRuns(t *testing.T) {
	nan := math.NaN()
	xys := plotter.XYs{{X: 0, Y: 1}, {X: 1, Y: nan}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: nan}, {X: 5, Y: nan}}
	out := runs(xys)
	require.Len(t, out, 2)
	assert.Equal(t, plotter.XYs{{X: 0, Y: 1}}, out[0])
	assert.Equal(t, plotter.XYs{{X: 2, Y: 2}, {X: 3, Y: 3}}, out[1])
	assert.Empty(t, runs(plotter.XYs{{X: 0, Y: nan}}))
	assert.Empty(t, runs(nil))
}

func TestPanelMissingChannel(t *testing.T) {
	tr := load(t, suiteCSV)
	plan := membranePlan()
	plan.Series = append(plan.Series, Series{Channel: "n2_v_real", Label: "n2_v"})

	_, err := renderer().Panel(tr, plan, nil)
	var mc *trace.MissingChannelError
	require.True(t, errors.As(err, &mc))
	assert.Equal(t, "n2_v_real", mc.Channel)
	assert.Equal(t, "Neuron membrane voltages", mc.Panel)
}

func TestPanelOptionalChannel(t *testing.T) {
	tr := load(t, suiteCSV)
	plan := membranePlan()
	plan.Series = append(plan.Series,
		Series{Channel: "exp_vmem_pre_real", Label: "pre-reset", Optional: true},
		Series{Channel: "n0_spk", Label: "spk", Style: Step, Optional: true},
	)
	panel, err := renderer().Panel(tr, plan, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"n0_v_real", "n1_v_real", "n0_spk"}, panel.Drawn)
}

func TestPanelThresholdAndRange(t *testing.T) {
	tr := load(t, suiteCSV)
	plan := membranePlan()
	plan.Thresholds = []Threshold{{Value: 1.0, Label: "V_TH", Color: TabRed, Dash: Dotted}}
	panel, err := renderer().Panel(tr, plan, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"n0_v", "n1_v", "V_TH"}, panel.Legend)
	assert.Equal(t, 1.0, panel.Plot.Y.Max)

	plan.YRange = &Range{Min: -0.1, Max: 1.1}
	panel, err = renderer().Panel(tr, plan, nil)
	require.NoError(t, err)
	assert.Equal(t, -0.1, panel.Plot.Y.Min)
	assert.Equal(t, 1.1, panel.Plot.Y.Max)
}

func TestPanelScenesNeedShading(t *testing.T) {
	tr := load(t, suiteCSV)
	plan := membranePlan()
	plan.Scenes = true
	_, err := renderer().Panel(tr, plan, nil)
	assert.Error(t, err)
}

func TestRasterKeepsEmptyRows(t *testing.T) {
	tr := load(t, suiteCSV)
	raster, err := renderer().Raster(tr, rasterPlan(), nil)
	require.NoError(t, err)

	require.Len(t, raster.Events.Rows, 2)
	assert.Equal(t, 2, raster.Events.EventCount(0))
	assert.Equal(t, []float64{10, 30}, raster.Events.Rows[0].Events)
	assert.Equal(t, 0, raster.Events.EventCount(1))

	ticks := raster.Events.Ticks()
	require.Len(t, ticks, 2)
	assert.Equal(t, "n0", ticks[0].Label)
	assert.Equal(t, "n1", ticks[1].Label)
	assert.Equal(t, -0.5, raster.Plot.Y.Min)
	assert.Equal(t, 1.5, raster.Plot.Y.Max)
}

func TestRasterNonzeroIsEvent(t *testing.T) {
	tr := load(t, "time_ns,spike\n0,0\n5,2\n10,-1\n15,true\n20,false\n")
	plan := RasterPlan{Title: "Spikes", Rows: []RasterChannel{{Channel: "spike", Label: "spike"}}, LineLength: 0.8}
	raster, err := renderer().Raster(tr, plan, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 10, 15}, raster.Events.Rows[0].Events)
}

func TestRasterIgnoresMissingSamples(t *testing.T) {
	tr := load(t, "time_ns,n0_spk,n1_spk\n0,nan,1\n10,,0\n")
	raster, err := renderer().Raster(tr, rasterPlan(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, raster.Events.EventCount(0))
	assert.Equal(t, 1, raster.Events.EventCount(1))
}

func TestRasterMissingChannel(t *testing.T) {
	tr := load(t, "time_ns,n0_spk\n0,1\n")
	_, err := renderer().Raster(tr, rasterPlan(), nil)
	var mc *trace.MissingChannelError
	require.True(t, errors.As(err, &mc))
	assert.Equal(t, "n1_spk", mc.Channel)
	assert.Equal(t, "Spike events", mc.Panel)
}

func suitePlan() FigurePlan {
	membrane := membranePlan()
	membrane.Scenes = true
	membrane.SceneLegend = true
	membrane.LegendTitle = "Membrane / scenes"
	membrane.Legend = UpperLeft
	raster := rasterPlan()
	raster.Scenes = true
	return FigurePlan{
		Name:   "suite",
		Width:  12 * vg.Inch,
		Height: 9 * vg.Inch,
		Panels: []PanelPlan{membrane},
		Raster: raster,
	}
}

func TestFigureMergesSceneLegend(t *testing.T) {
	tr := load(t, suiteCSV)
	fig, err := renderer().Figure(tr, suitePlan())
	require.NoError(t, err)

	require.NotNil(t, fig.Shading)
	assert.Len(t, fig.Shading.Intervals, 2)
	require.Len(t, fig.Panels, 1)
	assert.Equal(t, []string{"Membrane / scenes", "n0_v", "n1_v", "warmup", "test"}, fig.Panels[0].Legend)
	assert.Equal(t, 2, fig.Panels[0].Spans)
	assert.Equal(t, 2, fig.Raster.Spans)
	assert.True(t, fig.Panels[0].Plot.Legend.Left)
	assert.Empty(t, fig.Warnings)

	drawFigure(t, fig)
}

func TestFigureSharesTimeAxis(t *testing.T) {
	tr := load(t, suiteCSV)
	fig, err := renderer().Figure(tr, suitePlan())
	require.NoError(t, err)

	plots := fig.Plots()
	require.Len(t, plots, 2)
	for _, p := range plots {
		assert.Equal(t, 0.0, p.X.Min)
		assert.Equal(t, 30.0, p.X.Max)
	}
	assert.Equal(t, "", plots[0].X.Label.Text)
	assert.Equal(t, "Time (ns)", plots[1].X.Label.Text)

	upper := plots[0].X.Tick.Marker.Ticks(0, 30)
	lower := plots[1].X.Tick.Marker.Ticks(0, 30)
	require.Equal(t, len(lower), len(upper))
	for i := range upper {
		assert.Equal(t, lower[i].Value, upper[i].Value)
		assert.Empty(t, upper[i].Label)
	}
}

func TestFigureWithoutSceneChannel(t *testing.T) {
	tr := load(t, "time_ns,n0_v_real,n1_v_real,n0_spk,n1_spk\n0,0,0,0,0\n")
	_, err := renderer().Figure(tr, suitePlan())
	var mc *trace.MissingChannelError
	require.True(t, errors.As(err, &mc))
	assert.Equal(t, "scene", mc.Channel)
}

func TestFigureEmptyTrace(t *testing.T) {
	tr := load(t, "time_ns,scene,n0_v_real,n1_v_real,n0_spk,n1_spk\n")
	fig, err := renderer().Figure(tr, suitePlan())
	require.NoError(t, err)

	require.Len(t, fig.Warnings, 1)
	assert.True(t, errors.Is(fig.Warnings[0], trace.ErrEmptyTrace))
	assert.Empty(t, fig.Shading.Intervals)
	assert.Equal(t, 0, fig.Raster.Events.EventCount(0))
	assert.Equal(t, 0, fig.Raster.Events.EventCount(1))
	assert.Equal(t, []string{"n0_v_real", "n1_v_real"}, fig.Panels[0].Drawn)

	drawFigure(t, fig)
}

func TestFigureSingleSample(t *testing.T) {
	tr := load(t, "time_ns,scene,n0_v_real,n1_v_real,n0_spk,n1_spk\n40,only,0.5,0.5,1,1\n")
	fig, err := renderer().Figure(tr, suitePlan())
	require.NoError(t, err)
	require.Len(t, fig.Shading.Intervals, 1)
	assert.Equal(t, fig.Shading.Intervals[0].Start, fig.Shading.Intervals[0].End)
	assert.Equal(t, 39.0, fig.XMin)
	assert.Equal(t, 41.0, fig.XMax)

	drawFigure(t, fig)
}

func TestRenderersDoNotShareTheme(t *testing.T) {
	tr := load(t, suiteCSV)
	plain := DefaultTheme()
	plain.Grid = false
	a := NewRenderer(plain, nil)
	b := renderer()

	pa, err := a.Panel(tr, membranePlan(), nil)
	require.NoError(t, err)
	pb, err := b.Panel(tr, membranePlan(), nil)
	require.NoError(t, err)
	assert.False(t, a.Theme.Grid)
	assert.True(t, b.Theme.Grid)
	assert.NotSame(t, pa.Plot, pb.Plot)
}

func TestDashes(t *testing.T) {
	assert.Nil(t, Solid.Dashes(vg.Points(1)))
	assert.Len(t, Dashed.Dashes(vg.Points(1)), 2)
	assert.Len(t, Dotted.Dashes(vg.Points(1)), 2)
}
