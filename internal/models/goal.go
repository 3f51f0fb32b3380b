package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AndrewTr0612/healthtracker/backend/internal/health"
)

// WeightGoal is the user's single weight target. Saving a goal replaces the
// previous one.
type WeightGoal struct {
	ID             uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	GoalType       string    `gorm:"size:10;not null" json:"goal_type"`
	TargetWeightKg float64   `gorm:"not null" json:"target_weight_kg"`
	Pace           string    `gorm:"size:10;not null;default:'moderate'" json:"pace"`
	StartDate      time.Time `gorm:"type:date;not null" json:"start_date"`
	IsActive       bool      `gorm:"not null" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (g *WeightGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.Pace == "" {
		g.Pace = string(health.PaceModerate)
	}
	return nil
}

// Goal converts the row into the calculation type.
func (g *WeightGoal) Goal() health.Goal {
	return health.Goal{
		Type:           health.GoalType(g.GoalType),
		TargetWeightKg: g.TargetWeightKg,
		Pace:           health.Pace(g.Pace),
		StartDate:      g.StartDate,
	}
}
