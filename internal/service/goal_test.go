package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrewTr0612/healthtracker/backend/internal/models"
	"github.com/AndrewTr0612/healthtracker/backend/internal/testhelpers"
)

func TestGoalService_SetGoal(t *testing.T) {
	db, user := setupUser(t)
	s := NewGoalService(db)
	s.now = testhelpers.Clock(testNow)
	ctx := testContext()

	t.Run("should report a missing goal", func(t *testing.T) {
		_, err := s.GetGoal(ctx, user.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("should apply defaults", func(t *testing.T) {
		resp, err := s.SetGoal(ctx, user.ID, GoalInput{GoalType: "lose", TargetWeightKg: 80})
		require.NoError(t, err)
		assert.Equal(t, "Lose Weight", resp.GoalTypeDisplay)
		assert.Equal(t, "moderate", resp.Pace)
		assert.Equal(t, 0.5, resp.WeeklyRate)
		assert.Equal(t, "2024-03-15", resp.StartDate)
		assert.True(t, resp.IsActive)
		assert.Nil(t, resp.Timeline, "no weigh-ins yet")
	})

	t.Run("should replace the existing goal", func(t *testing.T) {
		resp, err := s.SetGoal(ctx, user.ID, GoalInput{
			GoalType:       "gain",
			TargetWeightKg: 90,
			Pace:           "fast",
			StartDate:      ptr(testhelpers.Date(2024, 3, 1)),
			IsActive:       ptr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, "gain", resp.GoalType)
		assert.Equal(t, 1.0, resp.WeeklyRate)
		assert.Equal(t, "2024-03-01", resp.StartDate)
		assert.False(t, resp.IsActive)

		var count int64
		require.NoError(t, db.Model(&models.WeightGoal{}).Where("user_id = ?", user.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)

		got, err := s.GetGoal(ctx, user.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)
	})

	tests := []struct {
		name  string
		in    GoalInput
		field string
	}{
		{"unknown goal type", GoalInput{GoalType: "tone", TargetWeightKg: 80}, "goal_type"},
		{"unknown pace", GoalInput{GoalType: "lose", TargetWeightKg: 80, Pace: "sprint"}, "pace"},
		{"target out of range", GoalInput{GoalType: "lose", TargetWeightKg: 10}, "target_weight_kg"},
	}
	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			_, err := s.SetGoal(ctx, user.ID, tt.in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestGoalService_Timeline(t *testing.T) {
	db, user := setupUser(t)
	testhelpers.CreateProfile(t, db, user.ID, 175, models.GenderMale, nil)
	s := NewGoalService(db)
	s.now = testhelpers.Clock(testNow)

	created := testNow.Add(-24 * time.Hour)
	testhelpers.AddWeight(t, db, user.ID, 100, testhelpers.Date(2024, 2, 20), created)
	// Two weigh-ins on the start date: the first one entered is the baseline.
	testhelpers.AddWeight(t, db, user.ID, 95, testhelpers.Date(2024, 3, 1), created)
	testhelpers.AddWeight(t, db, user.ID, 96, testhelpers.Date(2024, 3, 1), created.Add(time.Minute))
	testhelpers.AddWeight(t, db, user.ID, 92, testhelpers.Date(2024, 3, 10), created)

	resp, err := s.SetGoal(testContext(), user.ID, GoalInput{
		GoalType:       "lose",
		TargetWeightKg: 80,
		StartDate:      ptr(testhelpers.Date(2024, 3, 1)),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Timeline)

	tl := resp.Timeline
	assert.Equal(t, 92.0, tl.CurrentWeight)
	assert.Equal(t, 80.0, tl.TargetWeight)
	assert.Equal(t, 12.0, tl.WeightDifference)
	require.NotNil(t, tl.WeeksToGoal)
	assert.Equal(t, 24.0, *tl.WeeksToGoal)
	require.NotNil(t, tl.TargetDate)
	assert.Equal(t, "2024-08-16", *tl.TargetDate)
	assert.Equal(t, 20.0, tl.Progress)
	assert.Equal(t, 0.5, tl.WeeklyRate)
	require.NotNil(t, tl.BMI)
	assert.Equal(t, 30.04, *tl.BMI)
	assert.Equal(t, "Obese", tl.BMICategory)
}

func TestGoalService_NoBaselineAfterStart(t *testing.T) {
	db, user := setupUser(t)
	s := NewGoalService(db)
	s.now = testhelpers.Clock(testNow)

	testhelpers.AddWeight(t, db, user.ID, 90, testhelpers.Date(2024, 3, 1), testNow)

	resp, err := s.SetGoal(testContext(), user.ID, GoalInput{
		GoalType:       "lose",
		TargetWeightKg: 85,
		StartDate:      ptr(testhelpers.Date(2024, 3, 10)),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Timeline)
	assert.Equal(t, 0.0, resp.Timeline.Progress)
	assert.Nil(t, resp.Timeline.BMI)
	assert.Equal(t, "Unknown", resp.Timeline.BMICategory)
}
