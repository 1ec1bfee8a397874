package models

import "time"

// JobStatus constants. Transitions are one-way:
// queued -> running -> completed | failed.
const (
	JobStatusQueued    = "queued"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// AnalysisJob is the process-wide analysis job. At most one live instance
// exists at a time; a fresh submission replaces it with a new id.
type AnalysisJob struct {
	ID        string    `json:"job_id"`
	Status    string    `json:"status"`
	Progress  string    `json:"progress"` // latest-wins human-readable message
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Populated only once Status is completed.
	Results []WindowResult   `json:"-"`
	Summary *AnalysisSummary `json:"-"`
}

// JobStatusView is the snapshot returned to status polls.
type JobStatusView struct {
	JobID    string          `json:"job_id"`
	Status   string          `json:"status"`
	Progress string          `json:"progress"`
	Error    string          `json:"error,omitempty"`
	Results  *JobResultsView `json:"results,omitempty"`
}

// JobResultsView mirrors the completed-job payload of the status endpoint.
type JobResultsView struct {
	Message            string           `json:"message"`
	TotalPeriods       int              `json:"total_periods"`
	TowerJumpsDetected int              `json:"tower_jumps_detected"`
	AnalysisSummary    *AnalysisSummary `json:"analysis_summary"`
}
