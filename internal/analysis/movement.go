package analysis

import (
	"github.com/cellwatch/towerjumps-backend-go/internal/models"
	"github.com/cellwatch/towerjumps-backend-go/internal/spatial"
)

// MovementStats is the per-window output of the movement analyzer.
type MovementStats struct {
	MaxSpeedKmh     float64
	VelocityAnomaly bool // some pairwise speed strictly exceeded the threshold
}

// AnalyzeMovement computes the speed between every consecutive record pair
// in the window and flags a velocity anomaly when any pairwise speed is
// strictly above maxSpeedKmh. A window with fewer than two records has no
// pair to measure and reports zero speed.
func AnalyzeMovement(w *models.TimeWindow, maxSpeedKmh float64) MovementStats {
	var stats MovementStats

	for i := 1; i < len(w.Records); i++ {
		prev, curr := w.Records[i-1], w.Records[i]

		dist := spatial.DistanceKm(prev.Latitude, prev.Longitude, curr.Latitude, curr.Longitude)
		elapsed := curr.Timestamp.Sub(prev.Timestamp).Seconds()
		speed := spatial.SpeedKmh(dist, elapsed)

		if speed > stats.MaxSpeedKmh {
			stats.MaxSpeedKmh = speed
		}
		if speed > maxSpeedKmh {
			stats.VelocityAnomaly = true
		}
	}

	return stats
}
