package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AndrewTr0612/healthtracker/backend/internal/health"
	"github.com/AndrewTr0612/healthtracker/backend/internal/models"
)

const (
	demoUsername = "demo"
	demoEmail    = "demo@healthtracker.com"
	demoPassword = "demo123456"

	historyDays    = 90
	startingWeight = 95.0
	targetWeight   = 80.0
)

var errDemoExists = errors.New(`user "demo" already exists, use -reset to recreate`)

var milestones = map[int]string{
	90: "Starting my weight loss journey! Excited to get healthier.",
	60: "Lost 5kg! Feeling more energetic and motivated.",
	30: "Halfway to my goal! Clothes fitting better.",
	7:  "One week progress check - staying consistent!",
	0:  "Current weight - making great progress!",
}

// demoEntries builds the weigh-in history ending on today, oldest first.
// Entries fall every third day plus every day of the last week, and the
// jitter is seeded per day so reruns produce the same weights.
func demoEntries(userID uuid.UUID, today time.Time) []models.WeightEntry {
	var entries []models.WeightEntry
	for daysAgo := historyDays; daysAgo >= 0; daysAgo-- {
		if daysAgo%3 != 0 && daysAgo > 7 {
			continue
		}
		ratio := float64(historyDays-daysAgo) / historyDays
		base := startingWeight - (startingWeight-targetWeight-3)*ratio

		rng := rand.New(rand.NewPCG(uint64(daysAgo), 0))
		variation := rng.Float64()*0.6 - 0.3

		entries = append(entries, models.WeightEntry{
			UserID:       userID,
			WeightKg:     math.Round((base+variation)*10) / 10,
			RecordedDate: today.AddDate(0, 0, -daysAgo),
			Notes:        milestones[daysAgo],
		})
	}
	return entries
}

type seedResult struct {
	User    models.User
	Profile models.UserProfile
	Entries []models.WeightEntry
	Goal    models.WeightGoal
}

// seedDemoUser creates the demo account with a profile, 90 days of weigh-ins
// and an active goal. An existing demo user is an error unless reset is set.
func seedDemoUser(db *gorm.DB, today time.Time, reset bool) (*seedResult, error) {
	today = health.DateOf(today)

	var existing models.User
	err := db.Where("username = ?", demoUsername).First(&existing).Error
	switch {
	case err == nil && !reset:
		return nil, errDemoExists
	case err == nil:
		if err := deleteUser(db, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to delete demo user: %w", err)
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to look up demo user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	dob := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)
	res := &seedResult{
		User: models.User{
			Username:     demoUsername,
			Email:        demoEmail,
			FirstName:    "John",
			LastName:     "Doe",
			PasswordHash: string(hash),
		},
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&res.User).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		res.Profile = models.UserProfile{
			UserID:      res.User.ID,
			HeightCm:    175,
			DateOfBirth: &dob,
			Gender:      models.GenderMale,
		}
		if err := tx.Create(&res.Profile).Error; err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}

		res.Entries = demoEntries(res.User.ID, today)
		if err := tx.Create(&res.Entries).Error; err != nil {
			return fmt.Errorf("failed to create weight entries: %w", err)
		}

		res.Goal = models.WeightGoal{
			UserID:         res.User.ID,
			GoalType:       string(health.GoalLose),
			TargetWeightKg: targetWeight,
			Pace:           string(health.PaceModerate),
			StartDate:      today.AddDate(0, 0, -historyDays),
			IsActive:       true,
		}
		if err := tx.Create(&res.Goal).Error; err != nil {
			return fmt.Errorf("failed to create goal: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func deleteUser(db *gorm.DB, userID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.ChatMessage{}, &models.WeightGoal{}, &models.WeightEntry{}, &models.UserProfile{},
		} {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, "id = ?", userID).Error
	})
}
