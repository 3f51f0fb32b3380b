package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AndrewTr0612/healthtracker/backend/internal/types"
)

// ExportLinkTTL is how long a download link for an export stays valid.
const ExportLinkTTL = 15 * time.Minute

// ObjectStore is the blob storage exports are written to.
type ObjectStore interface {
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// ExportService writes a user's weight history to CSV and hands back a
// temporary download link.
type ExportService struct {
	db    *gorm.DB
	store ObjectStore
	now   func() time.Time
}

var _ IExportService = (*ExportService)(nil)

// NewExportService creates an ExportService. store may be nil, in which case
// every export fails with ErrStorageUnavailable.
func NewExportService(db *gorm.DB, store ObjectStore) *ExportService {
	return &ExportService{
		db:    db,
		store: store,
		now:   time.Now,
	}
}

func (s *ExportService) ExportWeights(ctx context.Context, userID uuid.UUID) (*types.ExportResponse, error) {
	if s.store == nil {
		return nil, ErrStorageUnavailable
	}

	entries, err := listEntries(ctx, s.db, userID, 0)
	if err != nil {
		return nil, err
	}
	profile, err := findProfile(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	height := heightOf(profile)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"recorded_date", "weight_kg", "bmi", "bmi_category", "notes"}); err != nil {
		return nil, err
	}
	// Oldest first, the way a spreadsheet reads.
	for i := len(entries) - 1; i >= 0; i-- {
		row := toWeightEntryResponse(&entries[i], height)
		bmi := ""
		if row.BMI != nil {
			bmi = strconv.FormatFloat(*row.BMI, 'f', 2, 64)
		}
		record := []string{
			row.RecordedDate,
			strconv.FormatFloat(row.WeightKg, 'f', -1, 64),
			bmi,
			row.BMICategory,
			row.Notes,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	key := fmt.Sprintf("exports/%s/weights-%s.csv", userID, now.Format("20060102T150405Z"))
	if err := s.store.PutObject(ctx, key, buf.Bytes(), "text/csv"); err != nil {
		return nil, fmt.Errorf("uploading export: %w", err)
	}
	url, err := s.store.PresignGet(ctx, key, ExportLinkTTL)
	if err != nil {
		return nil, fmt.Errorf("signing export link: %w", err)
	}

	return &types.ExportResponse{
		URL:       url,
		ExpiresAt: now.Add(ExportLinkTTL),
		Entries:   len(entries),
	}, nil
}
