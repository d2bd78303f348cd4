// Package flows holds the figure layouts for each testbench trace format.
package flows

import (
	"sort"

	"gonum.org/v1/plot/vg"

	"github.com/celskeggs/spikeplot/ctrl/chart"
)

// Flow is a figure layout together with the trace file its testbench writes by default.
type Flow struct {
	Command     string
	Description string
	DefaultPath string
	Plan        chart.FigurePlan
}

// VThreshold is the LIF neuron firing threshold, in volts.
const VThreshold = 1.0

func LIF() Flow {
	return Flow{
		Command:     "lif",
		Description: "Plot lif_neuron waveforms captured by tb_lif_neuron.sv",
		DefaultPath: "lif_neuron_trace.csv",
		Plan: chart.FigurePlan{
			Name:   "lif_neuron",
			Width:  10 * vg.Inch,
			Height: 8 * vg.Inch,
			Panels: []chart.PanelPlan{
				{
					Title:  "Membrane voltage vs. expected",
					YLabel: "Membrane (V)",
					Series: []chart.Series{
						{Channel: "v_mem_real", Label: "v_mem", Color: chart.TabBlue},
						{Channel: "exp_vmem_real", Label: "expected v_mem", Color: chart.TabOrange, Dash: chart.Dashed},
						{Channel: "exp_vmem_pre_real", Label: "pre-reset v_mem", Color: chart.TabOlive, Dash: chart.Dotted, Optional: true},
					},
					Thresholds: []chart.Threshold{
						{Value: VThreshold, Label: "V_TH", Color: chart.TabRed, Dash: chart.Dotted},
					},
				},
				{
					Title:  "Input currents",
					YLabel: "Current (A)",
					Series: []chart.Series{
						{Channel: "i_in_real", Label: "i_in", Color: chart.TabGreen},
						{Channel: "exc_delayed_real", Label: "exc_delayed", Color: chart.TabPurple},
						{Channel: "inh_delayed_real", Label: "inh_delayed", Color: chart.TabRed},
					},
				},
			},
			Raster: chart.RasterPlan{
				Title:      "Spike events",
				YLabel:     "Spikes",
				Rows:       []chart.RasterChannel{{Channel: "spike", Label: "spike", Color: chart.TabBlue}},
				LineLength: 0.8,
			},
		},
	}
}

func Simple() Flow {
	return Flow{
		Command:     "simple",
		Description: "Plot waveforms from snn_simple_trace.csv",
		DefaultPath: "snn_simple_trace.csv",
		Plan: chart.FigurePlan{
			Name:   "snn_simple",
			Width:  12 * vg.Inch,
			Height: 8 * vg.Inch,
			Panels: []chart.PanelPlan{
				{
					Title:  "Neuron membrane voltages",
					YLabel: "Membrane (V)",
					Series: []chart.Series{
						{Channel: "n0_v_real", Label: "n0_v", Color: chart.TabBlue},
						{Channel: "n1_v_real", Label: "n1_v", Color: chart.TabOrange},
					},
				},
				{
					Title:  "Input spikes",
					YLabel: "Input spikes",
					Series: []chart.Series{
						{Channel: "in0_spk", Label: "in0_spk", Color: chart.TabGreen, Style: chart.Step},
						{Channel: "in1_spk", Label: "in1_spk", Color: chart.TabRed, Style: chart.Step},
					},
					YRange: &chart.Range{Min: -0.1, Max: 1.1},
				},
			},
			Raster: chart.RasterPlan{
				Title:  "Neuron spike events",
				YLabel: "Spikes",
				// n0 sits on the upper row
				Rows: []chart.RasterChannel{
					{Channel: "n1_spk", Label: "n1", Color: chart.TabOrange},
					{Channel: "n0_spk", Label: "n0", Color: chart.TabBlue},
				},
				LineLength: 0.4,
			},
		},
	}
}

func Suite() Flow {
	return Flow{
		Command:     "suite",
		Description: "Plot waveforms from snn_suite_trace.csv, shaded by test scene",
		DefaultPath: "snn_suite_trace.csv",
		Plan: chart.FigurePlan{
			Name:   "snn_suite",
			Width:  12 * vg.Inch,
			Height: 9 * vg.Inch,
			Panels: []chart.PanelPlan{
				{
					Title:  "Neuron membrane voltages",
					YLabel: "Membrane (V)",
					Series: []chart.Series{
						{Channel: "n0_v_real", Label: "n0_v", Color: chart.TabBlue},
						{Channel: "n1_v_real", Label: "n1_v", Color: chart.TabOrange},
					},
					Legend:      chart.UpperLeft,
					LegendTitle: "Membrane / scenes",
					Scenes:      true,
					SceneLegend: true,
				},
				{
					Title:  "Currents / conductances",
					YLabel: "Currents / conductances",
					Series: []chart.Series{
						{Channel: "n0_i_real", Label: "n0_i", Color: chart.TabGreen},
						{Channel: "n1_i_real", Label: "n1_i", Color: chart.TabRed},
						{Channel: "n0_g_exc_real", Label: "n0_g_exc", Color: chart.TabPurple, Dash: chart.Dashed},
						{Channel: "n1_g_exc_real", Label: "n1_g_exc", Color: chart.TabBrown, Dash: chart.Dashed},
					},
					Scenes: true,
				},
			},
			Raster: chart.RasterPlan{
				Title:  "Spike events by scene",
				YLabel: "Spikes",
				Rows: []chart.RasterChannel{
					{Channel: "n0_spk", Label: "n0", Color: chart.TabBlue},
					{Channel: "n1_spk", Label: "n1", Color: chart.TabOrange},
				},
				LineLength: 0.6,
				Scenes:     true,
			},
		},
	}
}

// All returns every flow keyed by command name.
func All() map[string]Flow {
	out := map[string]Flow{}
	for _, f := range []Flow{LIF(), Simple(), Suite()} {
		out[f.Command] = f
	}
	return out
}

// Commands lists the flow command names in sorted order.
func Commands() []string {
	var names []string
	for name := range All() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
