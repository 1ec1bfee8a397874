package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cellwatch/towerjumps-backend-go/internal/models"
)

func TestAnalyzeMovementSingleRecord(t *testing.T) {
	w := &models.TimeWindow{Records: []models.LocationRecord{rec(t0, 40, -74, "NY")}}

	stats := AnalyzeMovement(w, 1000)
	assert.Zero(t, stats.MaxSpeedKmh)
	assert.False(t, stats.VelocityAnomaly)
}

func TestAnalyzeMovementStationary(t *testing.T) {
	w := &models.TimeWindow{Records: []models.LocationRecord{
		rec(t0, 40, -74, "NY"),
		rec(t0.Add(5*time.Minute), 40, -74, "NY"),
	}}

	stats := AnalyzeMovement(w, 1000)
	assert.InDelta(t, 0, stats.MaxSpeedKmh, 1e-9)
	assert.False(t, stats.VelocityAnomaly)
}

func TestAnalyzeMovementAnomaly(t *testing.T) {
	// New York to Los Angeles in five minutes.
	w := &models.TimeWindow{Records: []models.LocationRecord{
		rec(t0, 40.7128, -74.0060, "NY"),
		rec(t0.Add(5*time.Minute), 34.0522, -118.2437, "CA"),
	}}

	stats := AnalyzeMovement(w, 1000)
	assert.Greater(t, stats.MaxSpeedKmh, 1000.0)
	assert.True(t, stats.VelocityAnomaly)
}

func TestAnalyzeMovementDuplicateTimestamps(t *testing.T) {
	// Large displacement but zero elapsed time: the zero-speed policy must
	// keep clock-resolution artifacts from reading as infinite speed.
	w := &models.TimeWindow{Records: []models.LocationRecord{
		rec(t0, 40.7128, -74.0060, "NY"),
		rec(t0, 34.0522, -118.2437, "CA"),
	}}

	stats := AnalyzeMovement(w, 1000)
	assert.Zero(t, stats.MaxSpeedKmh)
	assert.False(t, stats.VelocityAnomaly)
}

func TestAnalyzeMovementPicksMaxPair(t *testing.T) {
	w := &models.TimeWindow{Records: []models.LocationRecord{
		rec(t0, 41.00, -73.66, "NY"),
		rec(t0.Add(10*time.Minute), 41.02, -73.63, "CT"), // slow hop
		rec(t0.Add(20*time.Minute), 41.50, -72.90, "CT"), // faster hop
	}}

	stats := AnalyzeMovement(w, 1000)
	assert.Greater(t, stats.MaxSpeedKmh, 100.0)
	assert.False(t, stats.VelocityAnomaly)
}
