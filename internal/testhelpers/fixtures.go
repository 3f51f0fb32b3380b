package testhelpers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AndrewTr0612/healthtracker/backend/internal/models"
)

// TestPassword is the password of every user created by CreateUser.
const TestPassword = "testpassword123"

// Date returns the given calendar date at UTC midnight.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Clock returns a now function frozen at t.
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func CreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func CreateProfile(t *testing.T, db *gorm.DB, userID uuid.UUID, heightCm float64, gender string, dob *time.Time) *models.UserProfile {
	t.Helper()
	profile := &models.UserProfile{
		UserID:      userID,
		HeightCm:    heightCm,
		Gender:      gender,
		DateOfBirth: dob,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	return profile
}

// AddWeight inserts a weigh-in with an explicit creation time so ordering
// between same-day entries is deterministic.
func AddWeight(t *testing.T, db *gorm.DB, userID uuid.UUID, kg float64, recorded, created time.Time) *models.WeightEntry {
	t.Helper()
	entry := &models.WeightEntry{
		UserID:       userID,
		WeightKg:     kg,
		RecordedDate: recorded,
		CreatedAt:    created,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create weight entry: %v", err)
	}
	return entry
}

func CreateGoal(t *testing.T, db *gorm.DB, userID uuid.UUID, goalType string, target float64, pace string, start time.Time, active bool) *models.WeightGoal {
	t.Helper()
	goal := &models.WeightGoal{
		UserID:         userID,
		GoalType:       goalType,
		TargetWeightKg: target,
		Pace:           pace,
		StartDate:      start,
		IsActive:       active,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}
	return goal
}
