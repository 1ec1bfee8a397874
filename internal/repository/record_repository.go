package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/cellwatch/towerjumps-backend-go/internal/database"
	"github.com/cellwatch/towerjumps-backend-go/internal/models"
)

// RecordRepository persists the current uploaded record set. The service
// holds exactly one dataset at a time; a new upload replaces it.
type RecordRepository struct {
	db *sql.DB
}

// NewRecordRepository creates a new record repository.
func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// ReplaceAll atomically swaps the stored dataset for the given records.
func (r *RecordRepository) ReplaceAll(records []models.LocationRecord) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM location_records"); err != nil {
			return fmt.Errorf("failed to clear records: %w", err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO location_records (timestamp, latitude, longitude, region, source_id)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, rec := range records {
			if _, err := stmt.Exec(
				rec.Timestamp.Unix(),
				rec.Latitude,
				rec.Longitude,
				rec.Region,
				rec.SourceID,
			); err != nil {
				return fmt.Errorf("failed to insert record: %w", err)
			}
		}
		return nil
	})
}

// GetAllSorted returns the stored dataset ordered by timestamp ascending.
func (r *RecordRepository) GetAllSorted() ([]models.LocationRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, timestamp, latitude, longitude, region, source_id
		FROM location_records
		ORDER BY timestamp ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []models.LocationRecord
	for rows.Next() {
		var rec models.LocationRecord
		var ts int64
		if err := rows.Scan(&rec.ID, &ts, &rec.Latitude, &rec.Longitude, &rec.Region, &rec.SourceID); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.Timestamp = time.Unix(ts, 0).UTC()
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Count returns the number of stored records.
func (r *RecordRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM location_records").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}

// DateRange returns the stored dataset's inclusive time span.
func (r *RecordRepository) DateRange() (start, end time.Time, err error) {
	var minTS, maxTS sql.NullInt64
	err = r.db.QueryRow("SELECT MIN(timestamp), MAX(timestamp) FROM location_records").Scan(&minTS, &maxTS)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to query date range: %w", err)
	}
	if !minTS.Valid || !maxTS.Valid {
		return time.Time{}, time.Time{}, nil
	}
	return time.Unix(minTS.Int64, 0).UTC(), time.Unix(maxTS.Int64, 0).UTC(), nil
}
