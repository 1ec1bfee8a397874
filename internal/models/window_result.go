package models

import "time"

// WindowResult is one analyzed window row. Created once by the confidence
// scorer and immutable thereafter; the ordered sequence of results is the
// job's result set.
type WindowResult struct {
	TimeStart       time.Time `json:"time_start"`
	TimeEnd         time.Time `json:"time_end"`
	DurationMinutes float64   `json:"duration_minutes"`
	PrimaryRegion   string    `json:"state"`       // most-represented region, tie-break by earliest occurrence
	AllRegions      []string  `json:"all_states"`  // distinct regions in insertion order
	RegionChanges   int       `json:"state_changes"`
	MaxSpeedKmh     float64   `json:"max_speed_kmh"`
	IsTowerJump     bool      `json:"is_tower_jump"`
	ConfidenceLevel int       `json:"confidence_level"` // 0-100
	RecordCount     int       `json:"record_count"`
	AvgLatitude     float64   `json:"avg_latitude"`
	AvgLongitude    float64   `json:"avg_longitude"`
}

// AnalysisSummary holds summary statistics computed once at job completion.
type AnalysisSummary struct {
	TotalPeriods        int       `json:"total_periods"`
	TowerJumpsDetected  int       `json:"tower_jumps_detected"`
	TowerJumpPercentage float64   `json:"tower_jump_percentage"`
	AvgConfidence       float64   `json:"avg_confidence"`
	MaxSpeedDetected    float64   `json:"max_speed_detected"`
	StatesInvolved      []string  `json:"states_involved"`
	DateRange           DateRange `json:"date_range"`
}
