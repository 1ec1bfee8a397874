package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellwatch/towerjumps-backend-go/internal/models"
)

func TestPipelineEmptyInput(t *testing.T) {
	p := NewPipeline(DefaultConfig())
	_, err := p.Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestPipelineCrossCountryJump(t *testing.T) {
	// Two pings in New York, then one in California ten minutes later.
	records := []models.LocationRecord{
		rec(t0, 40.0, -74.0, "NY"),
		rec(t0.Add(5*time.Minute), 40.0, -74.0, "NY"),
		rec(t0.Add(10*time.Minute), 34.0, -118.0, "CA"),
	}

	p := NewPipeline(DefaultConfig())
	results, err := p.Run(context.Background(), records)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.True(t, r.IsTowerJump)
	assert.Equal(t, 100, r.ConfidenceLevel)
	assert.Greater(t, r.MaxSpeedKmh, 1000.0)
	assert.Equal(t, "NY", r.PrimaryRegion)
	assert.Equal(t, []string{"NY", "CA"}, r.AllRegions)
	assert.Equal(t, 1, r.RegionChanges)
	assert.Equal(t, 3, r.RecordCount)
}

func TestPipelineSuppressedBorderOscillation(t *testing.T) {
	// Five pings alternating across the NY/CT border at low speed.
	coords := [][2]float64{
		{41.00, -73.66}, {41.02, -73.63}, {41.00, -73.66}, {41.02, -73.63}, {41.00, -73.66},
	}
	regions := []string{"NY", "CT", "NY", "CT", "NY"}

	var records []models.LocationRecord
	for i := 0; i < 5; i++ {
		records = append(records,
			rec(t0.Add(time.Duration(i)*7*time.Minute), coords[i][0], coords[i][1], regions[i]))
	}

	p := NewPipeline(DefaultConfig())
	results, err := p.Run(context.Background(), records)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, 4, r.RegionChanges)
	assert.Less(t, r.MaxSpeedKmh, 50.0)
	assert.False(t, r.IsTowerJump, "suppressed border oscillation must not flag")
}

func TestPipelineCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPipeline(DefaultConfig())
	_, err := p.Run(ctx, []models.LocationRecord{rec(t0, 40, -74, "NY")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	p := NewPipeline(DefaultConfig())

	results := []models.WindowResult{
		{TimeStart: t0, TimeEnd: t0.Add(30 * time.Minute), PrimaryRegion: "NY",
			IsTowerJump: true, ConfidenceLevel: 100, MaxSpeedKmh: 2400.5},
		{TimeStart: t0.Add(30 * time.Minute), TimeEnd: t0.Add(time.Hour), PrimaryRegion: "NY",
			IsTowerJump: false, ConfidenceLevel: 10, MaxSpeedKmh: 42},
		{TimeStart: t0.Add(time.Hour), TimeEnd: t0.Add(90 * time.Minute), PrimaryRegion: "CT",
			IsTowerJump: false, ConfidenceLevel: 22, MaxSpeedKmh: 66},
	}

	s := p.Summarize(results)
	assert.Equal(t, 3, s.TotalPeriods)
	assert.Equal(t, 1, s.TowerJumpsDetected)
	assert.InDelta(t, 33.3, s.TowerJumpPercentage, 1e-9)
	assert.InDelta(t, 44.0, s.AvgConfidence, 1e-9)
	assert.InDelta(t, 2400.5, s.MaxSpeedDetected, 1e-9)
	assert.Equal(t, []string{"NY", "CT"}, s.StatesInvolved)
	assert.Equal(t, "2025-07-04 12:00:00", s.DateRange.Start)
	assert.Equal(t, "2025-07-04 13:30:00", s.DateRange.End)
}

func TestSummarizeEmpty(t *testing.T) {
	p := NewPipeline(DefaultConfig())
	s := p.Summarize(nil)
	assert.Zero(t, s.TotalPeriods)
}
