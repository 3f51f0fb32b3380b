package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatMessage records one chatbot exchange. Rows are only ever appended.
type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Response  string    `gorm:"type:text;not null" json:"response"`
	Topic     string    `gorm:"size:20" json:"topic"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// All lists every table in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&UserProfile{},
		&WeightEntry{},
		&WeightGoal{},
		&ChatMessage{},
	}
}
