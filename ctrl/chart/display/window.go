package display

import (
	"image"
	"os"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gonum.org/v1/plot/vg"

	"github.com/celskeggs/spikeplot/ctrl/chart/tlplot"
)

type PlotWidget struct {
	Plot      tlplot.Drawable
	DPI       int
	AdjWidth  vg.Length
	AdjHeight vg.Length
	Image     image.Image
}

// GetImage re-renders only when the window size changes.
func (p *PlotWidget) GetImage(size image.Point) image.Image {
	wAdjusted := vg.Points(float64(size.X) * vg.Inch.Points() / float64(p.DPI))
	hAdjusted := vg.Points(float64(size.Y) * vg.Inch.Points() / float64(p.DPI))
	if p.Image == nil || p.AdjWidth != wAdjusted || p.AdjHeight != hAdjusted {
		p.Image = tlplot.Render(p.Plot, wAdjusted, hAdjusted, p.DPI)
		p.AdjWidth = wAdjusted
		p.AdjHeight = hAdjusted
	}
	return p.Image
}

func (p *PlotWidget) Layout(gtx layout.Context) layout.Dimensions {
	defer op.Save(gtx.Ops).Load()

	clip.Rect{
		Max: gtx.Constraints.Max,
	}.Add(gtx.Ops)
	paint.NewImageOp(p.GetImage(gtx.Constraints.Max)).Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	return layout.Dimensions{Size: gtx.Constraints.Max}
}

// DisplayPlot opens a window showing d and blocks until it is closed (Q or Escape). The
// process exits when the window is destroyed.
func DisplayPlot(d tlplot.Drawable, title string, width, height vg.Length, dpi int) error {
	plotWidget := &PlotWidget{
		Plot: d,
		DPI:  dpi,
	}

	go func() {
		win := app.NewWindow(
			app.Title(title),
			app.Size(
				unit.Px(float32(width.Dots(float64(dpi)))),
				unit.Px(float32(height.Dots(float64(dpi)))),
			),
		)
		defer win.Close()

		for e := range win.Events() {
			switch e := e.(type) {
			case system.FrameEvent:
				ops := new(op.Ops)
				gtx := layout.NewContext(ops, e)
				layout.UniformInset(unit.Dp(10)).Layout(gtx, plotWidget.Layout)
				e.Frame(ops)

			case key.Event:
				switch e.Name {
				case "Q", key.NameEscape:
					win.Close()
				}

			case system.DestroyEvent:
				os.Exit(0)
			}
		}
	}()

	app.Main()
	return nil
}
