package service

import (
	"fmt"
	"io"
	"log"

	"github.com/cellwatch/towerjumps-backend-go/internal/ingest"
	"github.com/cellwatch/towerjumps-backend-go/internal/models"
	"github.com/cellwatch/towerjumps-backend-go/internal/repository"
)

// UploadService ingests carrier CSV exports and persists the current
// dataset. The process holds one dataset at a time; uploading replaces it.
type UploadService struct {
	repo *repository.RecordRepository
}

// NewUploadService creates a new upload service.
func NewUploadService(repo *repository.RecordRepository) *UploadService {
	return &UploadService{repo: repo}
}

const dateLayout = "2006-01-02 15:04:05"

// Ingest parses, normalizes and stores a carrier CSV export, replacing any
// previously uploaded dataset. Validation faults surface synchronously as
// ErrInvalidInput.
func (s *UploadService) Ingest(r io.Reader) (*models.UploadStats, error) {
	parsed, err := ingest.ParseCSV(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.ReplaceAll(parsed.Records); err != nil {
		return nil, fmt.Errorf("failed to store records: %w", err)
	}

	first := parsed.Records[0].Timestamp
	last := parsed.Records[len(parsed.Records)-1].Timestamp
	log.Printf("Ingested %d records (%d dropped), %s .. %s",
		len(parsed.Records), parsed.Dropped, first.Format(dateLayout), last.Format(dateLayout))

	return &models.UploadStats{
		Records: len(parsed.Records),
		Dropped: parsed.Dropped,
		DateRange: models.DateRange{
			Start: first.Format(dateLayout),
			End:   last.Format(dateLayout),
		},
	}, nil
}

// CurrentDataset loads the stored dataset, sorted by timestamp. Returns
// ErrInvalidInput when nothing has been uploaded yet.
func (s *UploadService) CurrentDataset() ([]models.LocationRecord, error) {
	records, err := s.repo.GetAllSorted()
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no data uploaded", ErrInvalidInput)
	}
	return records, nil
}
