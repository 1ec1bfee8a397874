package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cellwatch/towerjumps-backend-go/internal/models"
)

// Carrier export timestamps look like "7/4/25 14:05" (UTC).
const timeLayout = "1/2/06 15:04"

// requiredColumns is the carrier export schema. Order in the file does not
// matter; all columns must be present.
var requiredColumns = []string{
	"Page", "Item", "UTCDateTime", "LocalDateTime",
	"Latitude", "Longitude", "TimeZone",
	"City", "County", "State", "Country", "CellType",
}

// ParseResult is the outcome of normalizing one carrier CSV export.
type ParseResult struct {
	Records []models.LocationRecord // sorted by timestamp ascending
	Dropped int                     // rows rejected during normalization
}

// ParseCSV reads a carrier CSV export and normalizes it into sorted
// LocationRecords. Rows with unparseable timestamps, unparseable or
// out-of-range coordinates, or the (0, 0) null-island placeholder are
// dropped and counted. A missing required column or an empty surviving set
// is an error.
func ParseCSV(r io.Reader) (*ParseResult, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	result := &ParseResult{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		rec, ok := normalizeRow(row, idx)
		if !ok {
			result.Dropped++
			continue
		}
		result.Records = append(result.Records, rec)
	}

	if len(result.Records) == 0 {
		return nil, fmt.Errorf("no usable records in file (%d rows dropped)", result.Dropped)
	}

	sort.SliceStable(result.Records, func(i, j int) bool {
		return result.Records[i].Timestamp.Before(result.Records[j].Timestamp)
	})

	return result, nil
}

func normalizeRow(row []string, idx map[string]int) (models.LocationRecord, bool) {
	field := func(name string) string {
		i := idx[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	ts, err := time.ParseInLocation(timeLayout, field("UTCDateTime"), time.UTC)
	if err != nil {
		return models.LocationRecord{}, false
	}

	lat, err := strconv.ParseFloat(field("Latitude"), 64)
	if err != nil {
		return models.LocationRecord{}, false
	}
	lon, err := strconv.ParseFloat(field("Longitude"), 64)
	if err != nil {
		return models.LocationRecord{}, false
	}
	if lat == 0 && lon == 0 {
		return models.LocationRecord{}, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return models.LocationRecord{}, false
	}

	return models.LocationRecord{
		Timestamp: ts,
		Latitude:  lat,
		Longitude: lon,
		Region:    field("State"),
		SourceID:  field("CellType"),
	}, true
}
