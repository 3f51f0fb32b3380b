package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AndrewTr0612/healthtracker/backend/internal/health"
	"github.com/AndrewTr0612/healthtracker/backend/internal/models"
	"github.com/AndrewTr0612/healthtracker/backend/internal/types"
)

// DefaultHistoryLimit is how many weigh-ins a history listing returns when
// the caller does not ask for a specific number.
const DefaultHistoryLimit = 30

// WeightInput is a new weigh-in. A nil RecordedDate means today.
type WeightInput struct {
	WeightKg     float64
	RecordedDate *time.Time
	Notes        string
}

type WeightService struct {
	db  *gorm.DB
	now func() time.Time
}

var _ IWeightService = (*WeightService)(nil)

func NewWeightService(db *gorm.DB) *WeightService {
	return &WeightService{
		db:  db,
		now: time.Now,
	}
}

// AddEntry records a weigh-in. Dates after today are rejected.
func (s *WeightService) AddEntry(ctx context.Context, userID uuid.UUID, in WeightInput) (*types.WeightEntryResponse, error) {
	if err := checkRange("weight_kg", in.WeightKg, MinWeightKg, MaxWeightKg); err != nil {
		return nil, err
	}
	today := health.DateOf(s.now())
	recorded := today
	if in.RecordedDate != nil {
		recorded = health.DateOf(*in.RecordedDate)
	}
	if recorded.After(today) {
		return nil, invalid("recorded_date", futureEntryMessage)
	}

	entry := models.WeightEntry{
		UserID:       userID,
		WeightKg:     in.WeightKg,
		RecordedDate: recorded,
		Notes:        strings.TrimSpace(in.Notes),
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("saving weight entry: %w", err)
	}

	profile, err := findProfile(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	resp := toWeightEntryResponse(&entry, heightOf(profile))
	return &resp, nil
}

// ListEntries returns up to limit weigh-ins, newest first. A non-positive
// limit falls back to DefaultHistoryLimit.
func (s *WeightService) ListEntries(ctx context.Context, userID uuid.UUID, limit int) ([]types.WeightEntryResponse, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	entries, err := listEntries(ctx, s.db, userID, limit)
	if err != nil {
		return nil, err
	}
	profile, err := findProfile(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	height := heightOf(profile)

	out := make([]types.WeightEntryResponse, len(entries))
	for i := range entries {
		out[i] = toWeightEntryResponse(&entries[i], height)
	}
	return out, nil
}

// LatestEntry returns the most recent weigh-in or ErrNotFound.
func (s *WeightService) LatestEntry(ctx context.Context, userID uuid.UUID) (*types.WeightEntryResponse, error) {
	entry, err := findLatestEntry(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}
	profile, err := findProfile(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	resp := toWeightEntryResponse(entry, heightOf(profile))
	return &resp, nil
}
