package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AndrewTr0612/healthtracker/backend/internal/health"
)

// WeightEntry is a single weigh-in. Entries are listed newest first by
// recorded date, then by creation time.
type WeightEntry struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID       uuid.UUID `gorm:"type:varchar(36);not null;index:idx_weight_entries_user_date,priority:1" json:"user_id"`
	WeightKg     float64   `gorm:"not null" json:"weight_kg"`
	RecordedDate time.Time `gorm:"type:date;not null;index:idx_weight_entries_user_date,priority:2" json:"recorded_date"`
	Notes        string    `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// WeightEntryOrder is the listing order for weight history.
const WeightEntryOrder = "recorded_date DESC, created_at DESC"

func (e *WeightEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *WeightEntry) Measurement() health.Measurement {
	return health.Measurement{
		WeightKg:     e.WeightKg,
		RecordedDate: e.RecordedDate,
		CreatedAt:    e.CreatedAt,
	}
}
