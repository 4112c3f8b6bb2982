//go:build unit

package lease_test

import (
	"testing"
	"time"

	"metalease/internal/domain/lease"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 1, hour, min, 0, 0, time.UTC)
}

func window(t *testing.T, startHour, endHour int) lease.TimeWindow {
	t.Helper()
	w, err := lease.NewTimeWindow(at(startHour, 0), at(endHour, 0))
	require.NoError(t, err)
	return w
}

func TestNewTimeWindow(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{
			name:  "valid window",
			start: at(10, 0),
			end:   at(12, 0),
		},
		{
			name:  "start equals end",
			start: at(10, 0),
			end:   at(10, 0),
			errIs: lease.ErrInvalidWindow,
		},
		{
			name:  "start after end",
			start: at(12, 0),
			end:   at(10, 0),
			errIs: lease.ErrInvalidWindow,
		},
		{
			name:  "zero start",
			start: time.Time{},
			end:   at(10, 0),
			errIs: lease.ErrInvalidWindow,
		},
		{
			name:  "zero end",
			start: at(10, 0),
			end:   time.Time{},
			errIs: lease.ErrInvalidWindow,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, err := lease.NewTimeWindow(c.start, c.end)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.start, w.Start())
				assert.Equal(t, c.end, w.End())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestTimeWindowOverlaps(t *testing.T) {
	base := window(t, 10, 12)

	cases := []struct {
		name     string
		other    lease.TimeWindow
		overlaps bool
	}{
		{name: "identical window", other: window(t, 10, 12), overlaps: true},
		{name: "contained window", other: window(t, 10, 11), overlaps: true},
		{name: "partial overlap at start", other: window(t, 9, 11), overlaps: true},
		{name: "partial overlap at end", other: window(t, 11, 13), overlaps: true},
		{name: "surrounding window", other: window(t, 9, 13), overlaps: true},
		{name: "touching at start", other: window(t, 8, 10), overlaps: false},
		{name: "touching at end", other: window(t, 12, 14), overlaps: false},
		{name: "disjoint before", other: window(t, 6, 8), overlaps: false},
		{name: "disjoint after", other: window(t, 14, 16), overlaps: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, base.Overlaps(c.other))
			// overlap is symmetric
			assert.Equal(t, c.overlaps, c.other.Overlaps(base))
		})
	}
}

func TestTimeWindowContains(t *testing.T) {
	base := window(t, 10, 12)

	assert.True(t, base.Contains(base))
	assert.True(t, base.Contains(window(t, 10, 11)))
	assert.True(t, base.Contains(window(t, 11, 12)))
	assert.False(t, base.Contains(window(t, 9, 11)))
	assert.False(t, base.Contains(window(t, 11, 13)))
	assert.False(t, base.Contains(window(t, 9, 13)))
}

func TestTimeWindowClip(t *testing.T) {
	base := window(t, 10, 12)

	t.Run("overlap is clipped to the boundary", func(t *testing.T) {
		clipped, ok := window(t, 9, 11).Clip(base)
		require.True(t, ok)
		assert.Equal(t, at(10, 0), clipped.Start())
		assert.Equal(t, at(11, 0), clipped.End())
	})

	t.Run("contained window is unchanged", func(t *testing.T) {
		clipped, ok := window(t, 10, 11).Clip(base)
		require.True(t, ok)
		assert.Equal(t, at(10, 0), clipped.Start())
		assert.Equal(t, at(11, 0), clipped.End())
	})

	t.Run("disjoint windows do not clip", func(t *testing.T) {
		_, ok := window(t, 13, 14).Clip(base)
		assert.False(t, ok)
	})

	t.Run("touching windows do not clip", func(t *testing.T) {
		_, ok := window(t, 12, 14).Clip(base)
		assert.False(t, ok)
	})
}

func TestCoversWindow(t *testing.T) {
	outer := window(t, 10, 14)

	cases := []struct {
		name    string
		windows []lease.TimeWindow
		covers  bool
	}{
		{
			name:    "no windows",
			windows: nil,
			covers:  false,
		},
		{
			name:    "exact cover",
			windows: []lease.TimeWindow{window(t, 10, 14)},
			covers:  true,
		},
		{
			name:    "touching pieces cover",
			windows: []lease.TimeWindow{window(t, 10, 12), window(t, 12, 14)},
			covers:  true,
		},
		{
			name:    "unsorted pieces cover",
			windows: []lease.TimeWindow{window(t, 12, 14), window(t, 10, 12)},
			covers:  true,
		},
		{
			name:    "gap in the middle",
			windows: []lease.TimeWindow{window(t, 10, 11), window(t, 12, 14)},
			covers:  false,
		},
		{
			name:    "missing tail",
			windows: []lease.TimeWindow{window(t, 10, 13)},
			covers:  false,
		},
		{
			name:    "missing head",
			windows: []lease.TimeWindow{window(t, 11, 14)},
			covers:  false,
		},
		{
			name:    "pieces spilling past the edges still cover",
			windows: []lease.TimeWindow{window(t, 9, 12), window(t, 12, 15)},
			covers:  true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.covers, lease.CoversWindow(outer, c.windows))
		})
	}
}

func TestTimeWindowString(t *testing.T) {
	w := window(t, 10, 12)
	assert.Equal(t, "[2026-09-01T10:00:00Z,2026-09-01T12:00:00Z)", w.String())
}
