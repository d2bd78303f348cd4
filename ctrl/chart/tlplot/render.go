package tlplot

import (
	"image"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Drawable is anything that renders onto a plot canvas: a single *plot.Plot or a whole figure.
type Drawable interface {
	Draw(c draw.Canvas)
}

// Render rasterises d at the given size.
func Render(d Drawable, w, h vg.Length, dpi int) image.Image {
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	d.Draw(draw.New(c))
	return c.Image()
}
