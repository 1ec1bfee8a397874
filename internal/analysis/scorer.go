package analysis

import (
	"math"

	"github.com/cellwatch/towerjumps-backend-go/internal/models"
	"github.com/cellwatch/towerjumps-backend-go/internal/stats"
)

// Score combines the movement and transition analyses of one window into a
// WindowResult with a bounded confidence value and the jump verdict.
//
// Two-stage decision rule: a saturated velocity factor (a pairwise speed
// beyond the anomaly threshold) is conclusive on its own and yields
// confidence 100 regardless of the other factors; otherwise the verdict
// falls to the weighted combination of factors against the configured
// threshold, so borderline windows need corroborating evidence.
func Score(w *models.TimeWindow, mv MovementStats, tr TransitionStats, cfg Config) models.WindowResult {
	velocity := velocityFactor(mv.MaxSpeedKmh, cfg)
	transition := transitionFactor(w, tr, cfg)

	combined := cfg.VelocityWeight*velocity + cfg.TransitionWeight*transition
	isJump := combined > cfg.ConfidenceThreshold
	if mv.VelocityAnomaly {
		combined = 100
		isJump = true
	}
	combined = math.Min(math.Max(combined, 0), 100)

	var lats, lons []float64
	for _, rec := range w.Records {
		lats = append(lats, rec.Latitude)
		lons = append(lons, rec.Longitude)
	}

	first := w.Records[0]
	last := w.Records[len(w.Records)-1]

	return models.WindowResult{
		TimeStart:       first.Timestamp,
		TimeEnd:         last.Timestamp,
		DurationMinutes: stats.RoundTo(w.DurationMinutes(), 2),
		PrimaryRegion:   tr.PrimaryRegion,
		AllRegions:      tr.AllRegions,
		RegionChanges:   tr.ChangeCount,
		MaxSpeedKmh:     stats.RoundTo(mv.MaxSpeedKmh, 1),
		IsTowerJump:     isJump,
		ConfidenceLevel: int(math.Round(combined)),
		RecordCount:     len(w.Records),
		AvgLatitude:     stats.RoundTo(stats.Mean(lats), 6),
		AvgLongitude:    stats.RoundTo(stats.Mean(lons), 6),
	}
}

// velocityFactor maps max speed to [0, 100]: zero below the sanity speed,
// linear up to the anomaly threshold, saturated beyond it.
func velocityFactor(maxSpeed float64, cfg Config) float64 {
	switch {
	case maxSpeed >= cfg.MaxSpeedKmh:
		return 100
	case maxSpeed <= cfg.SanitySpeedKmh:
		return 0
	default:
		return (maxSpeed - cfg.SanitySpeedKmh) / (cfg.MaxSpeedKmh - cfg.SanitySpeedKmh) * 100
	}
}

// transitionFactor maps the suppression-weighted region change rate to
// [0, 100], saturating at the configured changes-per-hour rate. The window
// span is floored so a burst of records within seconds still yields a
// finite, comparable rate.
func transitionFactor(w *models.TimeWindow, tr TransitionStats, cfg Config) float64 {
	if tr.ChangeCount == 0 {
		return 0
	}

	spanMinutes := math.Max(w.DurationMinutes(), cfg.MinSpanMinutes)
	changesPerHour := float64(tr.ChangeCount) * tr.SuppressionWeight / (spanMinutes / 60)

	factor := changesPerHour / cfg.SaturationChangesPerHour * 100
	return math.Min(factor, 100)
}
