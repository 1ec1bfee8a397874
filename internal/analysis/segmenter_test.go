package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellwatch/towerjumps-backend-go/internal/models"
)

var t0 = time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC)

func rec(ts time.Time, lat, lon float64, region string) models.LocationRecord {
	return models.LocationRecord{Timestamp: ts, Latitude: lat, Longitude: lon, Region: region}
}

func TestSegmentEmpty(t *testing.T) {
	windows, err := Segment(nil, 30*time.Minute)
	require.NoError(t, err)
	assert.Nil(t, windows)
}

func TestSegmentPartitionInvariants(t *testing.T) {
	// One record every 10 minutes for 2 hours.
	var records []models.LocationRecord
	for i := 0; i < 13; i++ {
		records = append(records, rec(t0.Add(time.Duration(i)*10*time.Minute), 40, -74, "NY"))
	}

	windows, err := Segment(records, 30*time.Minute)
	require.NoError(t, err)
	require.Len(t, windows, 5) // 0-30, 30-60, 60-90, 90-120, 120-...

	total := 0
	for i, w := range windows {
		assert.NotEmpty(t, w.Records)
		total += len(w.Records)

		if i > 0 {
			// Ordered, non-overlapping, boundary-aligned.
			assert.True(t, !w.Start.Before(windows[i-1].End), "window %d overlaps predecessor", i)
			offset := w.Start.Sub(t0)
			assert.Zero(t, offset%(30*time.Minute), "window %d start not aligned", i)
		}
		for _, r := range w.Records {
			assert.True(t, !r.Timestamp.Before(w.Start), "record before window start")
		}
	}
	assert.Equal(t, len(records), total, "windows must partition the input")
}

func TestSegmentBoundaryAnchoring(t *testing.T) {
	records := []models.LocationRecord{
		rec(t0, 40, -74, "NY"),
		rec(t0.Add(29*time.Minute+59*time.Second), 40, -74, "NY"),
		rec(t0.Add(30*time.Minute), 40, -74, "NY"), // lands exactly on the boundary
	}

	windows, err := Segment(records, 30*time.Minute)
	require.NoError(t, err)
	require.Len(t, windows, 2)

	assert.Equal(t, t0, windows[0].Start)
	assert.Equal(t, t0.Add(30*time.Minute), windows[0].End)
	assert.Len(t, windows[0].Records, 2)

	// Second window is anchored at the boundary, not at the record.
	assert.Equal(t, t0.Add(30*time.Minute), windows[1].Start)
	assert.Len(t, windows[1].Records, 1)
}

func TestSegmentSkipsEmptyWindows(t *testing.T) {
	records := []models.LocationRecord{
		rec(t0, 40, -74, "NY"),
		rec(t0.Add(100*time.Minute), 40, -74, "NY"),
	}

	windows, err := Segment(records, 30*time.Minute)
	require.NoError(t, err)
	require.Len(t, windows, 2)

	// 100 min falls in the fourth nominal slot: [90, 120).
	assert.Equal(t, t0.Add(90*time.Minute), windows[1].Start)
}

func TestSegmentFinalWindowShortened(t *testing.T) {
	records := []models.LocationRecord{
		rec(t0, 40, -74, "NY"),
		rec(t0.Add(10*time.Minute), 40, -74, "NY"),
	}

	windows, err := Segment(records, 30*time.Minute)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, t0.Add(10*time.Minute), windows[0].End)
	assert.InDelta(t, 10.0, windows[0].DurationMinutes(), 1e-9)
}

func TestSegmentSingleRecordWindow(t *testing.T) {
	windows, err := Segment([]models.LocationRecord{rec(t0, 40, -74, "NY")}, 30*time.Minute)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Zero(t, windows[0].DurationMinutes())
}

func TestSegmentRejectsOutOfOrder(t *testing.T) {
	records := []models.LocationRecord{
		rec(t0.Add(time.Minute), 40, -74, "NY"),
		rec(t0, 40, -74, "NY"),
	}

	_, err := Segment(records, 30*time.Minute)
	assert.ErrorContains(t, err, "out of order")
}
