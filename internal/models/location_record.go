package models

import "time"

// LocationRecord represents one normalized carrier observation for the device
// under analysis. Records are immutable once constructed by the ingest layer.
type LocationRecord struct {
	ID        int64     `json:"id,omitempty" db:"id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`       // UTC, non-decreasing after sorting
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Region    string    `json:"region" db:"region"`             // administrative region label (state), may be empty
	SourceID  string    `json:"source_id,omitempty" db:"source_id"` // originating cell/tower tag, opaque
}

// UploadStats summarizes one ingested dataset.
type UploadStats struct {
	Records   int       `json:"records"`
	Dropped   int       `json:"dropped"`
	DateRange DateRange `json:"date_range"`
}

// DateRange is the inclusive time span of a record set.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
