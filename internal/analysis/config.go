package analysis

import "time"

// Config holds the tunable parameters of the tower jump pipeline.
type Config struct {
	// WindowDuration is the nominal width of a segmentation window.
	WindowDuration time.Duration

	// MaxSpeedKmh is the velocity anomaly threshold. Any pairwise speed
	// strictly above it is physically inconsistent with ground travel
	// between consecutive cell observations (aircraft cruise speed).
	MaxSpeedKmh float64

	// SanitySpeedKmh is where the velocity factor starts ramping up.
	// Speeds below it contribute nothing to the score.
	SanitySpeedKmh float64

	// ConfidenceThreshold is the combined-score cutoff for the jump verdict.
	ConfidenceThreshold float64

	// Factor weights for the combined score. Should sum to 1.
	VelocityWeight   float64
	TransitionWeight float64

	// SaturationChangesPerHour is the suppression-weighted region change
	// rate at which the transition factor saturates to 100.
	SaturationChangesPerHour float64

	// MinSpanMinutes floors the window span used for the change-rate
	// computation, so near-instantaneous windows do not produce
	// degenerate rates.
	MinSpanMinutes float64

	// SuppressedPairs are adjacent region pairs whose cross-border tower
	// placement is known to cause spurious toggling. SuppressionWeight is
	// the down-weight applied when every transition in a window stays
	// inside the suppressed set.
	SuppressedPairs   SuppressedPairs
	SuppressionWeight float64
}

// DefaultConfig returns the production defaults. The NY/CT border is the
// canonical suppressed pair: towers along I-95 routinely hand devices back
// and forth across the state line.
func DefaultConfig() Config {
	return Config{
		WindowDuration:           30 * time.Minute,
		MaxSpeedKmh:              1000,
		SanitySpeedKmh:           200,
		ConfidenceThreshold:      50,
		VelocityWeight:           0.6,
		TransitionWeight:         0.4,
		SaturationChangesPerHour: 6,
		MinSpanMinutes:           5,
		SuppressedPairs:          NewSuppressedPairs([][2]string{{"NY", "CT"}}),
		SuppressionWeight:        0.25,
	}
}
