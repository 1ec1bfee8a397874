package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cellwatch/towerjumps-backend-go/internal/models"
)

const timeLayout = "2006-01-02 15:04:05"

var columns = []string{
	"TimeStart", "TimeEnd", "State", "DurationMinutes",
	"IsTowerJump", "ConfidenceLevel", "MaxSpeedKMH", "StateChanges",
	"RecordCount", "AllStates", "AvgLatitude", "AvgLongitude",
}

// WriteCSV serializes the full result set for bulk download. IsTowerJump is
// written as the literal strings "yes"/"no" (downstream tooling contract).
func WriteCSV(w io.Writer, results []models.WindowResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range results {
		jump := "no"
		if r.IsTowerJump {
			jump = "yes"
		}

		row := []string{
			r.TimeStart.Format(timeLayout),
			r.TimeEnd.Format(timeLayout),
			r.PrimaryRegion,
			strconv.FormatFloat(r.DurationMinutes, 'f', 2, 64),
			jump,
			strconv.Itoa(r.ConfidenceLevel),
			strconv.FormatFloat(r.MaxSpeedKmh, 'f', 1, 64),
			strconv.Itoa(r.RegionChanges),
			strconv.Itoa(r.RecordCount),
			strings.Join(r.AllRegions, ", "),
			strconv.FormatFloat(r.AvgLatitude, 'f', 6, 64),
			strconv.FormatFloat(r.AvgLongitude, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
