package flows

import (
	"go.uber.org/zap"

	"github.com/celskeggs/spikeplot/ctrl/chart"
	"github.com/celskeggs/spikeplot/trace"
)

// Build loads the trace at path, keeps its first window samples and renders the flow's figure.
// A missing file fails before anything is rendered.
func Build(f Flow, path string, window int, r *chart.Renderer) (*chart.Figure, *trace.Trace, error) {
	loaded, err := trace.Load(path)
	if err != nil {
		return nil, nil, err
	}
	r.Log.Info("loaded trace",
		zap.String("flow", f.Command), zap.String("path", path), zap.Int("samples", loaded.Len()))

	tr := trace.Window(loaded, window)
	if tr.Truncated() {
		r.Log.Info("plotting leading samples only",
			zap.Int("kept", tr.Len()), zap.Int("total", tr.SourceLen()))
	}

	fig, err := r.Figure(tr, f.Plan)
	if err != nil {
		return nil, nil, err
	}
	return fig, tr, nil
}
