package model

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// VirtualTime is a simulation timestamp in integer nanoseconds, as recorded by the testbench.
type VirtualTime int64

const NanosecondsPerSecond = int64(time.Second / time.Nanosecond)

func (t VirtualTime) String() string {
	ns := int64(t)
	if ns < 0 {
		return fmt.Sprintf("[-%ds+%09dns]", -ns/NanosecondsPerSecond, -ns%NanosecondsPerSecond)
	}
	return fmt.Sprintf("[%ds+%09dns]", ns/NanosecondsPerSecond, ns%NanosecondsPerSecond)
}

func (t VirtualTime) AtOrAfter(t2 VirtualTime) bool {
	return t >= t2
}

func (t VirtualTime) Before(t2 VirtualTime) bool {
	return t < t2
}

// Axis returns the timestamp as a plot coordinate. Plots are labelled in nanoseconds.
func (t VirtualTime) Axis() float64 {
	return float64(t)
}

// ParseVirtualTime accepts integer nanoseconds, or a real number of nanoseconds (as written by
// $realtime) which is rounded to the nearest nanosecond.
func ParseVirtualTime(s string) (VirtualTime, error) {
	if ns, err := strconv.ParseInt(s, 10, 64); err == nil {
		return VirtualTime(ns), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt64 {
		return 0, fmt.Errorf("timestamp out of range: %q", s)
	}
	return VirtualTime(math.Round(f)), nil
}
