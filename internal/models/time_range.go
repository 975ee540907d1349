package models

import (
	"errors"
	"fmt"
	"time"
)

var ErrStartAfterEnd = errors.New("range start is after range end")

// TimeRange is a closed interval of epoch milliseconds. Construct it with
// NewTimeRange; the zero value is the empty range at the epoch.
type TimeRange struct {
	StartMs int64 `json:"startMs"`
	EndMs   int64 `json:"endMs"`
}

func NewTimeRange(startMs, endMs int64) (TimeRange, error) {
	if startMs > endMs {
		return TimeRange{}, fmt.Errorf("%w: %d > %d", ErrStartAfterEnd, startMs, endMs)
	}
	return TimeRange{StartMs: startMs, EndMs: endMs}, nil
}

// RangeOf builds a TimeRange from two instants, truncated to milliseconds.
func RangeOf(start, end time.Time) (TimeRange, error) {
	return NewTimeRange(start.UnixMilli(), end.UnixMilli())
}

func (r TimeRange) Start() time.Time { return time.UnixMilli(r.StartMs).UTC() }

func (r TimeRange) End() time.Time { return time.UnixMilli(r.EndMs).UTC() }

func (r TimeRange) Duration() time.Duration {
	return time.Duration(r.EndMs-r.StartMs) * time.Millisecond
}

// EndsBefore reports whether the whole range lies strictly before t.
func (r TimeRange) EndsBefore(t time.Time) bool {
	return r.EndMs < t.UnixMilli()
}

func (r TimeRange) String() string {
	return fmt.Sprintf("[%s, %s]", r.Start().Format(time.RFC3339Nano), r.End().Format(time.RFC3339Nano))
}
