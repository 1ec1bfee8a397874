package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cellwatch/towerjumps-backend-go/internal/analysis"
	"github.com/cellwatch/towerjumps-backend-go/internal/models"
)

// AnalysisService owns the process-wide analysis job slot and runs the
// detection pipeline off the request path. All access to the slot and to
// the published result set is serialized under one mutex; the pipeline
// itself is pure and runs unsynchronized on its own goroutine.
type AnalysisService struct {
	pipeline *analysis.Pipeline

	mu     sync.Mutex
	job    *models.AnalysisJob
	cancel context.CancelFunc

	// Latest published completed result set. Only a run whose job still
	// owns the slot publishes here, so a superseded slow run cannot
	// overwrite a newer job's results.
	results []models.WindowResult
	summary *models.AnalysisSummary
}

// NewAnalysisService creates the orchestrator around a configured pipeline.
func NewAnalysisService(pipeline *analysis.Pipeline) *AnalysisService {
	return &AnalysisService{pipeline: pipeline}
}

// Submit validates the record set, replaces the job slot with a fresh
// queued job, and schedules pipeline execution without blocking the caller.
// The previous job, if still running, is cancelled cooperatively and its id
// stops being addressable.
func (s *AnalysisService) Submit(records []models.LocationRecord) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("%w: empty record set", ErrInvalidInput)
	}

	job := &models.AnalysisJob{
		ID:        uuid.NewString(),
		Status:    models.JobStatusQueued,
		Progress:  "Analysis job created",
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.job = job
	s.cancel = cancel
	s.mu.Unlock()

	go s.run(ctx, job, records)

	log.Printf("Analysis job %s queued (%d records)", job.ID, len(records))
	return job.ID, nil
}

// run executes the pipeline for one job. Faults never escape: panics and
// pipeline errors are captured as the job's failure, and a cancelled
// (superseded) run exits without publishing anything.
func (s *AnalysisService) run(ctx context.Context, job *models.AnalysisJob, records []models.LocationRecord) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("Analysis job %s panicked: %v", job.ID, p)
			s.fail(job, fmt.Sprintf("internal error: %v", p))
		}
	}()

	s.progress(job, models.JobStatusRunning, "Initializing tower jump detector...")
	s.progress(job, models.JobStatusRunning, "Creating time windows from data...")

	results, err := s.pipeline.Run(ctx, records)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("Analysis job %s superseded, discarding", job.ID)
			return
		}
		log.Printf("Analysis job %s failed: %v", job.ID, err)
		s.fail(job, err.Error())
		return
	}

	s.progress(job, models.JobStatusRunning, "Generating summary statistics...")
	summary := s.pipeline.Summarize(results)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.job != job {
		// A newer submission took the slot while we were finishing.
		log.Printf("Analysis job %s completed after supersession, discarding", job.ID)
		return
	}

	job.Status = models.JobStatusCompleted
	job.Progress = "Analysis completed successfully"
	job.Results = results
	job.Summary = summary
	s.results = results
	s.summary = summary

	log.Printf("Analysis job %s completed: %d windows, %d jumps",
		job.ID, summary.TotalPeriods, summary.TowerJumpsDetected)
}

func (s *AnalysisService) progress(job *models.AnalysisJob, status, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job.Status = status
	job.Progress = msg
}

func (s *AnalysisService) fail(job *models.AnalysisJob, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job.Status = models.JobStatusFailed
	job.Progress = "Analysis failed"
	job.Error = msg
}

// GetStatus returns a snapshot of the job with the given id. Ids of
// superseded jobs are not retained and report ErrJobNotFound; callers must
// poll with the id returned by their own Submit call.
func (s *AnalysisService) GetStatus(jobID string) (*models.JobStatusView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.job == nil || s.job.ID != jobID {
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}

	view := &models.JobStatusView{
		JobID:    s.job.ID,
		Status:   s.job.Status,
		Progress: s.job.Progress,
		Error:    s.job.Error,
	}

	if s.job.Status == models.JobStatusCompleted && s.job.Summary != nil {
		view.Results = &models.JobResultsView{
			Message:            "Analysis completed successfully",
			TotalPeriods:       s.job.Summary.TotalPeriods,
			TowerJumpsDetected: s.job.Summary.TowerJumpsDetected,
			AnalysisSummary:    s.job.Summary,
		}
	}

	return view, nil
}

// GetResults serves a filtered, sorted, paginated view over the most
// recently completed job's result set.
func (s *AnalysisService) GetResults(q models.ResultQuery) (*models.ResultPage, error) {
	q.Normalize()

	all, err := s.snapshotResults()
	if err != nil {
		return nil, err
	}

	filtered := filterResults(all, q.Filter)
	sortResults(filtered, q.SortBy, q.SortOrder)

	total := len(filtered)
	totalPages := (total + q.PerPage - 1) / q.PerPage

	start := (q.Page - 1) * q.PerPage
	if start > total {
		start = total
	}
	end := start + q.PerPage
	if end > total {
		end = total
	}

	return &models.ResultPage{
		Results: filtered[start:end],
		Pagination: models.Pagination{
			CurrentPage: q.Page,
			PerPage:     q.PerPage,
			TotalCount:  total,
			TotalPages:  totalPages,
			HasPrev:     q.Page > 1,
			HasNext:     q.Page < totalPages,
		},
	}, nil
}

// ExportAll returns the full result set, unpaginated, for bulk download.
func (s *AnalysisService) ExportAll() ([]models.WindowResult, error) {
	return s.snapshotResults()
}

func (s *AnalysisService) snapshotResults() ([]models.WindowResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.results == nil {
		return nil, ErrNoResults
	}

	out := make([]models.WindowResult, len(s.results))
	copy(out, s.results)
	return out, nil
}

func filterResults(results []models.WindowResult, filter string) []models.WindowResult {
	if filter == models.FilterAll {
		return results
	}

	wantJump := filter == models.FilterJumps
	out := results[:0:0]
	for _, r := range results {
		if r.IsTowerJump == wantJump {
			out = append(out, r)
		}
	}
	return out
}

// sortResults sorts in place, stably: rows tied on the key keep their
// original window order.
func sortResults(results []models.WindowResult, sortBy, order string) {
	less := lessFunc(sortBy)
	if order == "desc" {
		inner := less
		less = func(a, b *models.WindowResult) bool { return inner(b, a) }
	}
	sort.SliceStable(results, func(i, j int) bool {
		return less(&results[i], &results[j])
	})
}

func lessFunc(sortBy string) func(a, b *models.WindowResult) bool {
	switch sortBy {
	case "time_end":
		return func(a, b *models.WindowResult) bool { return a.TimeEnd.Before(b.TimeEnd) }
	case "duration_minutes":
		return func(a, b *models.WindowResult) bool { return a.DurationMinutes < b.DurationMinutes }
	case "state":
		return func(a, b *models.WindowResult) bool { return a.PrimaryRegion < b.PrimaryRegion }
	case "state_changes":
		return func(a, b *models.WindowResult) bool { return a.RegionChanges < b.RegionChanges }
	case "max_speed_kmh":
		return func(a, b *models.WindowResult) bool { return a.MaxSpeedKmh < b.MaxSpeedKmh }
	case "confidence_level":
		return func(a, b *models.WindowResult) bool { return a.ConfidenceLevel < b.ConfidenceLevel }
	case "record_count":
		return func(a, b *models.WindowResult) bool { return a.RecordCount < b.RecordCount }
	default: // time_start
		return func(a, b *models.WindowResult) bool { return a.TimeStart.Before(b.TimeStart) }
	}
}
