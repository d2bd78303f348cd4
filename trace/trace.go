package trace

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/celskeggs/spikeplot/sim/model"
)

// TimeChannel is the column every testbench trace is keyed on.
const TimeChannel = "time_ns"

// Trace is an ordered table of samples read from a testbench CSV. Every row has the same
// channels. A Trace is never modified after Load; Window returns a new one.
type Trace struct {
	Path      string
	channels  []string
	index     map[string]int
	rows      [][]string
	sourceLen int
}

func newTrace(path string, header []string, rows [][]string) *Trace {
	channels := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, name := range header {
		channels[i] = strings.TrimSpace(name)
		index[channels[i]] = i
	}
	return &Trace{
		Path:      path,
		channels:  channels,
		index:     index,
		rows:      rows,
		sourceLen: len(rows),
	}
}

// Len is the number of samples in this trace.
func (t *Trace) Len() int {
	return len(t.rows)
}

// SourceLen is the number of samples in the file this trace was loaded from, before windowing.
func (t *Trace) SourceLen() int {
	return t.sourceLen
}

// Truncated reports whether windowing dropped samples from the end of the file.
func (t *Trace) Truncated() bool {
	return len(t.rows) < t.sourceLen
}

func (t *Trace) Empty() bool {
	return len(t.rows) == 0
}

// Channels lists the column names in file order.
func (t *Trace) Channels() []string {
	out := make([]string, len(t.channels))
	copy(out, t.channels)
	return out
}

// HasChannel is the capability check for optional channels: a false result is a valid absence,
// not an error.
func (t *Trace) HasChannel(name string) bool {
	_, ok := t.index[name]
	return ok
}

func (t *Trace) column(name string, panel string) (int, error) {
	col, ok := t.index[name]
	if !ok {
		return 0, &MissingChannelError{Channel: name, Panel: panel}
	}
	return col, nil
}

// Text returns the raw cell values of a channel, e.g. scene labels.
func (t *Trace) Text(name string, panel string) ([]string, error) {
	col, err := t.column(name, panel)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = strings.TrimSpace(row[col])
	}
	return out, nil
}

// Values returns a channel as reals. Boolean cells ("true"/"false") read as 1 and 0, and empty
// cells read as NaN.
func (t *Trace) Values(name string, panel string) ([]float64, error) {
	col, err := t.column(name, panel)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(t.rows))
	for i, row := range t.rows {
		v, err := parseValue(row[col])
		if err != nil {
			return nil, fmt.Errorf("channel %q row %d: %v", name, i, err)
		}
		out[i] = v
	}
	return out, nil
}

// Times returns the time channel. Timestamps must not decrease.
func (t *Trace) Times() ([]model.VirtualTime, error) {
	col, err := t.column(TimeChannel, "")
	if err != nil {
		return nil, err
	}
	out := make([]model.VirtualTime, len(t.rows))
	for i, row := range t.rows {
		ts, err := model.ParseVirtualTime(strings.TrimSpace(row[col]))
		if err != nil {
			return nil, fmt.Errorf("channel %q row %d: %v", TimeChannel, i, err)
		}
		if i > 0 && ts.Before(out[i-1]) {
			return nil, fmt.Errorf("out of order timestamps at row %d: %v after %v", i, ts, out[i-1])
		}
		out[i] = ts
	}
	return out, nil
}

func parseValue(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN(), nil
	}
	if v, err := strconv.ParseFloat(cell, 64); err == nil {
		return v, nil
	}
	if b, err := strconv.ParseBool(cell); err == nil {
		if b {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("invalid sample value: %q", cell)
}
