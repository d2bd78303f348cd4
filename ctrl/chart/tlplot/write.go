package tlplot

import (
	"io"
	"os"
	"os/exec"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func WritePNG(d Drawable, width, height vg.Length, dpi int, output io.Writer) error {
	c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
	d.Draw(draw.New(c))
	_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(output)
	return err
}

func combineErrors(errors ...error) (err error) {
	for _, e := range errors {
		switch {
		case e == nil:
			// ignore
		case err == nil:
			err = e
		default:
			err = multierror.Append(err, e)
		}
	}
	return err
}

func WriteClosePNG(d Drawable, width, height vg.Length, dpi int, output io.WriteCloser) (err error) {
	defer func() {
		e := output.Close()
		err = combineErrors(err, e)
	}()
	return WritePNG(d, width, height, dpi, output)
}

// DisplayPlotExternal hands a temporary PNG of d to an image viewer and removes it once the
// viewer exits.
func DisplayPlotExternal(d Drawable, width, height vg.Length, dpi int, viewer string) (err error) {
	f, err := os.CreateTemp("", "spikeplot-*.png")
	if err != nil {
		return err
	}
	defer func() {
		e := os.Remove(f.Name())
		err = combineErrors(err, e)
	}()
	if err := WriteClosePNG(d, width, height, dpi, f); err != nil {
		return err
	}
	return exec.Command(viewer, f.Name()).Run()
}
