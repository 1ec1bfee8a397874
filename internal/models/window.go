package models

import "time"

// TimeWindow is a contiguous slice of the record stream covering the
// half-open interval [Start, End). Windows produced for a stream are
// ordered by Start, non-overlapping, and each holds at least one record.
type TimeWindow struct {
	Start   time.Time
	End     time.Time
	Records []LocationRecord
}

// Span returns the elapsed time between the first and last record in the
// window. A single-record window has a span of zero.
func (w *TimeWindow) Span() time.Duration {
	if len(w.Records) < 2 {
		return 0
	}
	return w.Records[len(w.Records)-1].Timestamp.Sub(w.Records[0].Timestamp)
}

// DurationMinutes returns Span in minutes.
func (w *TimeWindow) DurationMinutes() float64 {
	return w.Span().Minutes()
}
