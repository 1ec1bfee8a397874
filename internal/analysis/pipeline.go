package analysis

import (
	"context"
	"fmt"

	"github.com/cellwatch/towerjumps-backend-go/internal/models"
	"github.com/cellwatch/towerjumps-backend-go/internal/stats"
)

// Pipeline runs the full tower jump detection over a record set:
// segmentation, per-window movement and transition analysis, and scoring.
// It is pure over its input and safe to run on a background goroutine.
type Pipeline struct {
	cfg Config
}

// NewPipeline creates a pipeline with the given configuration.
func NewPipeline(cfg Config) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Run analyzes a chronologically sorted record set and returns one result
// row per produced window, in window order. The context is checked between
// windows so a superseded job can stop early.
func (p *Pipeline) Run(ctx context.Context, records []models.LocationRecord) ([]models.WindowResult, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records to analyze")
	}

	windows, err := Segment(records, p.cfg.WindowDuration)
	if err != nil {
		return nil, fmt.Errorf("segmentation failed: %w", err)
	}

	results := make([]models.WindowResult, 0, len(windows))
	for i := range windows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		w := &windows[i]
		mv := AnalyzeMovement(w, p.cfg.MaxSpeedKmh)
		tr := AnalyzeTransitions(w, p.cfg.SuppressedPairs, p.cfg.SuppressionWeight)
		results = append(results, Score(w, mv, tr, p.cfg))
	}

	return results, nil
}

// Summarize computes the completed job's summary statistics.
func (p *Pipeline) Summarize(results []models.WindowResult) *models.AnalysisSummary {
	if len(results) == 0 {
		return &models.AnalysisSummary{}
	}

	var confidences, speeds []float64
	jumps := 0
	seen := make(map[string]bool)
	var states []string

	for _, r := range results {
		confidences = append(confidences, float64(r.ConfidenceLevel))
		speeds = append(speeds, r.MaxSpeedKmh)
		if r.IsTowerJump {
			jumps++
		}
		if r.PrimaryRegion != "" && !seen[r.PrimaryRegion] {
			seen[r.PrimaryRegion] = true
			states = append(states, r.PrimaryRegion)
		}
	}

	const layout = "2006-01-02 15:04:05"
	return &models.AnalysisSummary{
		TotalPeriods:        len(results),
		TowerJumpsDetected:  jumps,
		TowerJumpPercentage: stats.RoundTo(float64(jumps)/float64(len(results))*100, 1),
		AvgConfidence:       stats.RoundTo(stats.Mean(confidences), 1),
		MaxSpeedDetected:    stats.RoundTo(stats.Max(speeds), 1),
		StatesInvolved:      states,
		DateRange: models.DateRange{
			Start: results[0].TimeStart.Format(layout),
			End:   results[len(results)-1].TimeEnd.Format(layout),
		},
	}
}
