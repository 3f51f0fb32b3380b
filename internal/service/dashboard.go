package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AndrewTr0612/healthtracker/backend/internal/models"
	"github.com/AndrewTr0612/healthtracker/backend/internal/types"
)

// DashboardService assembles the overview page: profile, latest weigh-in,
// goal, recent history and the chart series.
type DashboardService struct {
	db  *gorm.DB
	now func() time.Time
}

var _ IDashboardService = (*DashboardService)(nil)

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{
		db:  db,
		now: time.Now,
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context, userID uuid.UUID) (*types.DashboardResponse, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	profile, err := findProfile(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileRequired
	}

	entries, err := listEntries(ctx, s.db, userID, DefaultHistoryLimit)
	if err != nil {
		return nil, err
	}
	goal, err := findGoal(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	resp := &types.DashboardResponse{
		Profile: toProfileResponse(&user, profile, s.now()),
		History: make([]types.WeightEntryResponse, len(entries)),
		ChartData: types.ChartData{
			Dates:   make([]string, 0, len(entries)),
			Weights: make([]float64, 0, len(entries)),
		},
	}
	for i := range entries {
		resp.History[i] = toWeightEntryResponse(&entries[i], profile.HeightCm)
	}
	// The chart runs oldest to newest.
	for i := len(entries) - 1; i >= 0; i-- {
		resp.ChartData.Dates = append(resp.ChartData.Dates, formatDate(entries[i].RecordedDate))
		resp.ChartData.Weights = append(resp.ChartData.Weights, entries[i].WeightKg)
	}

	var latest *models.WeightEntry
	if len(entries) > 0 {
		latest = &entries[0]
		resp.LatestWeight = &resp.History[0]
	}
	if goal != nil {
		tl, err := timeline(ctx, s.db, goal, latest, profile.HeightCm)
		if err != nil {
			return nil, err
		}
		resp.Goal = toGoalResponse(goal, tl)
		resp.Timeline = tl
	}
	return resp, nil
}
