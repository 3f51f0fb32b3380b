package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AndrewTr0612/healthtracker/backend/internal/health"
	"github.com/AndrewTr0612/healthtracker/backend/internal/models"
	"github.com/AndrewTr0612/healthtracker/backend/internal/types"
)

// GoalInput sets the weight goal. Pace defaults to moderate, StartDate to
// today and IsActive to true.
type GoalInput struct {
	GoalType       string
	TargetWeightKg float64
	Pace           string
	StartDate      *time.Time
	IsActive       *bool
}

type GoalService struct {
	db  *gorm.DB
	now func() time.Time
}

var _ IGoalService = (*GoalService)(nil)

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{
		db:  db,
		now: time.Now,
	}
}

// GetGoal returns the goal with its timeline, or ErrNotFound.
func (s *GoalService) GetGoal(ctx context.Context, userID uuid.UUID) (*types.GoalResponse, error) {
	goal, err := findGoal(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, ErrNotFound
	}
	return s.respond(ctx, goal)
}

// SetGoal replaces the user's goal.
func (s *GoalService) SetGoal(ctx context.Context, userID uuid.UUID, in GoalInput) (*types.GoalResponse, error) {
	goalType := health.GoalType(in.GoalType)
	if !goalType.Valid() {
		return nil, invalid("goal_type", "must be one of lose, gain, maintain")
	}
	pace := health.PaceModerate
	if in.Pace != "" {
		pace = health.Pace(in.Pace)
		if !pace.Valid() {
			return nil, invalid("pace", "must be one of slow, moderate, fast")
		}
	}
	if err := checkRange("target_weight_kg", in.TargetWeightKg, MinWeightKg, MaxWeightKg); err != nil {
		return nil, err
	}

	start := health.DateOf(s.now())
	if in.StartDate != nil {
		start = health.DateOf(*in.StartDate)
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	goal, err := findGoal(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		goal = &models.WeightGoal{UserID: userID}
	}
	goal.GoalType = string(goalType)
	goal.TargetWeightKg = in.TargetWeightKg
	goal.Pace = string(pace)
	goal.StartDate = start
	goal.IsActive = active

	if err := s.db.WithContext(ctx).Save(goal).Error; err != nil {
		return nil, fmt.Errorf("saving goal: %w", err)
	}
	return s.respond(ctx, goal)
}

func (s *GoalService) respond(ctx context.Context, goal *models.WeightGoal) (*types.GoalResponse, error) {
	latest, err := findLatestEntry(ctx, s.db, goal.UserID)
	if err != nil {
		return nil, err
	}
	profile, err := findProfile(ctx, s.db, goal.UserID)
	if err != nil {
		return nil, err
	}
	tl, err := timeline(ctx, s.db, goal, latest, heightOf(profile))
	if err != nil {
		return nil, err
	}
	return toGoalResponse(goal, tl), nil
}
