package trace

import (
	"errors"
	"fmt"
)

// ErrEmptyTrace reports a trace with no samples left to plot. It is a warning: panels still
// render as empty axes.
var ErrEmptyTrace = errors.New("trace has no samples")

// NotFoundError is returned when the trace path does not name an existing regular file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("trace file not found: %s", e.Path)
}

// MissingChannelError is returned when a panel asks for a column the trace does not have.
type MissingChannelError struct {
	Channel string
	Panel   string
}

func (e *MissingChannelError) Error() string {
	if e.Panel == "" {
		return fmt.Sprintf("trace has no channel %q", e.Channel)
	}
	return fmt.Sprintf("panel %q: trace has no channel %q", e.Panel, e.Channel)
}
