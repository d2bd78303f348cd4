package chart

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

type Style int

const (
	Line Style = iota
	Step       // holds each value until the next sample
)

type Dash int

const (
	Solid Dash = iota
	Dashed
	Dotted
)

func (d Dash) Dashes(width vg.Length) []vg.Length {
	switch d {
	case Dashed:
		return []vg.Length{3.7 * width, 1.6 * width}
	case Dotted:
		return []vg.Length{1 * width, 1.65 * width}
	default:
		return nil
	}
}

// Series binds a trace channel to a line on a panel. An Optional series is skipped when its
// channel is absent instead of failing the panel.
type Series struct {
	Channel  string
	Label    string
	Color    color.Color
	Style    Style
	Dash     Dash
	Optional bool
}

// Threshold is a labelled horizontal reference line across the whole panel.
type Threshold struct {
	Value float64
	Label string
	Color color.Color
	Dash  Dash
}

type Range struct {
	Min, Max float64
}

type LegendPosition int

const (
	UpperRight LegendPosition = iota
	UpperLeft
)

// PanelPlan describes one line panel. Series are drawn in order, so later series sit on top.
type PanelPlan struct {
	Title       string
	YLabel      string
	Series      []Series
	Thresholds  []Threshold
	YRange      *Range
	Legend      LegendPosition
	LegendTitle string
	Scenes      bool // shade scene intervals behind the series
	SceneLegend bool // list the scene colours in this panel's legend
}

type RasterChannel struct {
	Channel string
	Label   string
	Color   color.Color
}

// RasterPlan describes an event raster: row i shows the events of Rows[i].
type RasterPlan struct {
	Title      string
	YLabel     string
	Rows       []RasterChannel
	LineLength float64
	Scenes     bool
}

// FigurePlan is a stack of line panels above an event raster, all on one time axis.
type FigurePlan struct {
	Name   string
	Width  vg.Length
	Height vg.Length
	Panels []PanelPlan
	Raster RasterPlan
}

// UsesScenes reports whether any panel of the figure shades scene intervals.
func (f FigurePlan) UsesScenes() bool {
	for _, panel := range f.Panels {
		if panel.Scenes || panel.SceneLegend {
			return true
		}
	}
	return f.Raster.Scenes
}
