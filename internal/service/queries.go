package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AndrewTr0612/healthtracker/backend/internal/health"
	"github.com/AndrewTr0612/healthtracker/backend/internal/models"
	"github.com/AndrewTr0612/healthtracker/backend/internal/types"
)

// The helpers below return (nil, nil) for missing rows. Absence is a normal
// state for profiles, weights and goals.

func findProfile(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func findLatestEntry(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*models.WeightEntry, error) {
	var entry models.WeightEntry
	err := db.WithContext(ctx).Where("user_id = ?", userID).Order(models.WeightEntryOrder).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func listEntries(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]models.WeightEntry, error) {
	var entries []models.WeightEntry
	q := db.WithContext(ctx).Where("user_id = ?", userID).Order(models.WeightEntryOrder)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func findGoal(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*models.WeightGoal, error) {
	var goal models.WeightGoal
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// goalBaseline returns the first weight recorded on or after the goal's
// start date.
func goalBaseline(ctx context.Context, db *gorm.DB, goal *models.WeightGoal) (float64, bool, error) {
	var entries []models.WeightEntry
	err := db.WithContext(ctx).
		Where("user_id = ? AND recorded_date >= ?", goal.UserID, health.DateOf(goal.StartDate)).
		Order("recorded_date ASC, created_at ASC").
		Limit(1).
		Find(&entries).Error
	if err != nil {
		return 0, false, err
	}
	measurements := make([]health.Measurement, len(entries))
	for i := range entries {
		measurements[i] = entries[i].Measurement()
	}
	baseline, ok := health.Baseline(measurements, goal.StartDate)
	return baseline, ok, nil
}

func heightOf(profile *models.UserProfile) float64 {
	if profile == nil {
		return 0
	}
	return profile.HeightCm
}

func formatDate(t time.Time) string {
	return t.Format(health.DateLayout)
}

func toWeightEntryResponse(e *models.WeightEntry, heightCm float64) types.WeightEntryResponse {
	resp := types.WeightEntryResponse{
		ID:           e.ID,
		WeightKg:     e.WeightKg,
		RecordedDate: formatDate(e.RecordedDate),
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
	}
	bmi, ok := health.BMI(e.WeightKg, heightCm)
	if ok {
		resp.BMI = &bmi
	}
	resp.BMICategory = string(health.CategoryOf(bmi, ok))
	return resp
}

func toProfileResponse(user *models.User, profile *models.UserProfile, today time.Time) types.ProfileResponse {
	resp := types.ProfileResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
	if profile == nil {
		return resp
	}
	resp.HeightCm = profile.HeightCm
	resp.Gender = profile.Gender
	resp.GenderDisplay = profile.GenderDisplay()
	if profile.DateOfBirth != nil {
		dob := formatDate(*profile.DateOfBirth)
		resp.DateOfBirth = &dob
	}
	if age, ok := profile.Age(today); ok {
		resp.Age = &age
	}
	return resp
}

// timeline builds the progress block for goal given the latest weigh-in.
// It is nil when there is no weigh-in.
func timeline(ctx context.Context, db *gorm.DB, goal *models.WeightGoal, latest *models.WeightEntry, heightCm float64) (*types.TimelineResponse, error) {
	if goal == nil || latest == nil {
		return nil, nil
	}
	baseline, hasBaseline, err := goalBaseline(ctx, db, goal)
	if err != nil {
		return nil, err
	}

	summary := goal.Goal().Summarize(latest.WeightKg, baseline, hasBaseline)
	resp := &types.TimelineResponse{
		CurrentWeight:    summary.CurrentWeight,
		TargetWeight:     summary.TargetWeight,
		WeightDifference: summary.WeightDifference,
		WeeksToGoal:      summary.WeeksToGoal,
		Progress:         summary.Progress,
		WeeklyRate:       summary.WeeklyRate,
	}
	if summary.TargetDate != nil {
		d := formatDate(*summary.TargetDate)
		resp.TargetDate = &d
	}
	entry := toWeightEntryResponse(latest, heightCm)
	resp.BMI = entry.BMI
	resp.BMICategory = entry.BMICategory
	return resp, nil
}

func toGoalResponse(goal *models.WeightGoal, tl *types.TimelineResponse) *types.GoalResponse {
	g := goal.Goal()
	return &types.GoalResponse{
		GoalType:        goal.GoalType,
		GoalTypeDisplay: g.Type.Display(),
		TargetWeightKg:  goal.TargetWeightKg,
		Pace:            goal.Pace,
		WeeklyRate:      health.WeeklyRate(g.Pace),
		StartDate:       formatDate(goal.StartDate),
		IsActive:        goal.IsActive,
		Timeline:        tl,
	}
}
