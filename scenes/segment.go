package scenes

import (
	"fmt"

	"github.com/celskeggs/spikeplot/sim/model"
	"github.com/celskeggs/spikeplot/trace"
)

// Channel is the trace column holding the testbench scenario name of each sample.
const Channel = "scene"

type Point struct {
	Time  model.VirtualTime
	Label string
}

// Interval is one maximal run of samples that share a scene label. Adjacent intervals share
// their boundary timestamp: the last sample of the earlier run.
type Interval struct {
	Label string
	Start model.VirtualTime
	End   model.VirtualTime
}

func (i Interval) String() string {
	return fmt.Sprintf("%s%v..%v", i.Label, i.Start, i.End)
}

// Segment splits an ordered sequence of labelled samples into one interval per run of identical
// labels. A run ends at its own last sample and the next run starts at that same time, so the
// intervals tile the trace without gaps. A single sample yields an interval with Start == End.
func Segment(points []Point) []Interval {
	if len(points) == 0 {
		return nil
	}
	var intervals []Interval
	open := Interval{
		Label: points[0].Label,
		Start: points[0].Time,
	}
	for i, p := range points[1:] {
		if p.Label != open.Label {
			// points[i] is the previous sample, since the walk starts at points[1]
			open.End = points[i].Time
			intervals = append(intervals, open)
			open = Interval{
				Label: p.Label,
				Start: open.End,
			}
		}
	}
	// close the run still open after the walk
	open.End = points[len(points)-1].Time
	return append(intervals, open)
}

// Labels lists each distinct interval label once, in order of first appearance.
func Labels(intervals []Interval) []string {
	seen := map[string]bool{}
	var labels []string
	for _, interval := range intervals {
		if !seen[interval.Label] {
			seen[interval.Label] = true
			labels = append(labels, interval.Label)
		}
	}
	return labels
}

// FromTrace segments the scene channel of t. The panel name is used when reporting a trace
// without a scene channel.
func FromTrace(t *trace.Trace, panel string) ([]Interval, error) {
	labels, err := t.Text(Channel, panel)
	if err != nil {
		return nil, err
	}
	times, err := t.Times()
	if err != nil {
		return nil, err
	}
	points := make([]Point, len(labels))
	for i := range labels {
		points[i] = Point{
			Time:  times[i],
			Label: labels[i],
		}
	}
	return Segment(points), nil
}
