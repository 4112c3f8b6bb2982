package lease

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var ErrInvalidWindow = errors.New("invalid time window")

// TimeWindow is a half-open interval [start, end). Touching windows do not
// overlap.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() || end.IsZero() {
		return TimeWindow{}, ErrInvalidWindow
	}
	if !start.Before(end) {
		return TimeWindow{}, ErrInvalidWindow
	}
	return TimeWindow{start: start, end: end}, nil
}

// ReconstructTimeWindow rehydrates a window from storage without
// re-validating; persisted windows were validated at construction.
func ReconstructTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{start: start, end: end}
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

func (w TimeWindow) End() time.Time {
	return w.end
}

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

func (w TimeWindow) IsZero() bool {
	return w.start.IsZero() && w.end.IsZero()
}

func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

// Contains reports whether inner lies fully within w.
func (w TimeWindow) Contains(inner TimeWindow) bool {
	return !inner.start.Before(w.start) && !inner.end.After(w.end)
}

// Clip returns the intersection of w and boundary. The second return value
// is false when the two windows do not intersect.
func (w TimeWindow) Clip(boundary TimeWindow) (TimeWindow, bool) {
	if !w.Overlaps(boundary) {
		return TimeWindow{}, false
	}
	start := w.start
	if boundary.start.After(start) {
		start = boundary.start
	}
	end := w.end
	if boundary.end.Before(end) {
		end = boundary.end
	}
	return TimeWindow{start: start, end: end}, true
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

// CoversWindow reports whether the given windows, taken together, cover
// outer without gaps. Windows may touch but are assumed non-overlapping.
func CoversWindow(outer TimeWindow, windows []TimeWindow) bool {
	if len(windows) == 0 {
		return false
	}
	sorted := make([]TimeWindow, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].start.Before(sorted[j].start)
	})

	cursor := outer.start
	for _, w := range sorted {
		if w.start.After(cursor) {
			return false
		}
		if w.end.After(cursor) {
			cursor = w.end
		}
	}
	return !cursor.Before(outer.end)
}
