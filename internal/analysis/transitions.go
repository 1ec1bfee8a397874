package analysis

import (
	"strings"

	"github.com/cellwatch/towerjumps-backend-go/internal/models"
)

// SuppressedPairs is a set of unordered region-label pairs whose mutual
// transitions are known false-positive sources (bordering regions with
// tower coverage straddling the line).
type SuppressedPairs map[string]struct{}

// NewSuppressedPairs builds the set from unordered label pairs.
func NewSuppressedPairs(pairs [][2]string) SuppressedPairs {
	s := make(SuppressedPairs, len(pairs))
	for _, p := range pairs {
		s[pairKey(p[0], p[1])] = struct{}{}
	}
	return s
}

// Contains reports whether the unordered pair (a, b) is suppressed.
func (s SuppressedPairs) Contains(a, b string) bool {
	_, ok := s[pairKey(a, b)]
	return ok
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// TransitionStats is the per-window output of the state transition analyzer.
type TransitionStats struct {
	PrimaryRegion     string   // most frequent label, tie-break by earliest occurrence
	AllRegions        []string // distinct labels in order of first appearance
	ChangeCount       int      // label changes along the record sequence
	SuppressionWeight float64  // weight applied to the transition signal, (0, 1]
}

// AnalyzeTransitions walks the window's region labels in record order,
// skipping empty/unknown labels, and counts label changes and the distinct
// label set. When every transition in the window stays inside the suppressed
// pair set, the transition signal is down-weighted rather than eliminated,
// leaving the velocity factor free to still flag the window.
func AnalyzeTransitions(w *models.TimeWindow, pairs SuppressedPairs, suppressionWeight float64) TransitionStats {
	stats := TransitionStats{SuppressionWeight: 1.0}

	counts := make(map[string]int)
	prev := ""
	allSuppressed := true

	for _, rec := range w.Records {
		region := strings.TrimSpace(rec.Region)
		if region == "" {
			continue
		}

		if counts[region] == 0 {
			stats.AllRegions = append(stats.AllRegions, region)
		}
		counts[region]++

		if prev != "" && region != prev {
			stats.ChangeCount++
			if !pairs.Contains(prev, region) {
				allSuppressed = false
			}
		}
		prev = region
	}

	if stats.ChangeCount > 0 && allSuppressed && suppressionWeight > 0 {
		stats.SuppressionWeight = suppressionWeight
	}

	// Most-represented region; AllRegions is in first-appearance order, so
	// scanning it resolves ties toward the earliest occurrence.
	best := 0
	for _, region := range stats.AllRegions {
		if counts[region] > best {
			best = counts[region]
			stats.PrimaryRegion = region
		}
	}

	return stats
}
