package analysis

import (
	"fmt"
	"time"

	"github.com/cellwatch/towerjumps-backend-go/internal/models"
)

// Segment partitions a chronologically sorted record stream into
// non-overlapping windows of the given duration. Window boundaries are
// anchored at the first record's timestamp and advance in fixed increments,
// so the partition is deterministic and independent of record density: a
// record at time t lands in the window starting at
// start0 + floor((t-start0)/d)*d. Windows that would hold no records are
// skipped. The final window is closed at the last record's timestamp, so it
// may be shorter than the nominal duration.
//
// Sorting is the ingest layer's job; an out-of-order timestamp here is a
// contract violation and fails the whole segmentation.
func Segment(records []models.LocationRecord, duration time.Duration) ([]models.TimeWindow, error) {
	if len(records) == 0 {
		return nil, nil
	}
	if duration <= 0 {
		return nil, fmt.Errorf("window duration must be positive, got %v", duration)
	}

	anchor := records[0].Timestamp
	windows := make([]models.TimeWindow, 0, 8)

	current := models.TimeWindow{
		Start: anchor,
		End:   anchor.Add(duration),
	}

	for i, rec := range records {
		if i > 0 && rec.Timestamp.Before(records[i-1].Timestamp) {
			return nil, fmt.Errorf("record %d is out of order: %s before %s",
				i, rec.Timestamp.Format(time.RFC3339), records[i-1].Timestamp.Format(time.RFC3339))
		}

		if !rec.Timestamp.Before(current.End) {
			windows = append(windows, current)

			// Advance to the aligned boundary containing this record.
			elapsed := rec.Timestamp.Sub(anchor)
			start := anchor.Add(elapsed / duration * duration)
			current = models.TimeWindow{
				Start: start,
				End:   start.Add(duration),
			}
		}

		current.Records = append(current.Records, rec)
	}

	// The stream ends inside the last window; close it at the final record,
	// so the trailing window may be shorter than the nominal duration.
	if last := records[len(records)-1].Timestamp; last.Before(current.End) {
		current.End = last
	}
	windows = append(windows, current)

	return windows, nil
}
