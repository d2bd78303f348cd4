package trace

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
)

// Load reads a testbench trace. The first row names the channels. Channel names are not
// checked here; a missing channel is only reported when something asks for it.
func Load(path string) (t *Trace, re error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, &NotFoundError{Path: path}
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			re = multierror.Append(re, err)
		}
	}()
	return Read(path, f)
}

// Read decodes a trace from r. The name is only used to label the trace.
func Read(name string, r io.Reader) (*Trace, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%s: no header found", name)
		}
		return nil, err
	}
	var rows [][]string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return newTrace(name, header, rows), nil
		} else if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
