package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AndrewTr0612/healthtracker/backend/internal/health"
)

const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

var genderDisplay = map[string]string{
	GenderMale:   "Male",
	GenderFemale: "Female",
	GenderOther:  "Other",
}

// ValidGender reports whether g is one of the stored gender codes.
func ValidGender(g string) bool {
	_, ok := genderDisplay[g]
	return ok
}

// UserProfile holds the body measurements the health calculations depend on.
// A user has at most one.
type UserProfile struct {
	ID          uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	HeightCm    float64    `gorm:"not null" json:"height_cm"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender      string     `gorm:"size:1;not null;default:'O'" json:"gender"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Gender == "" {
		p.Gender = GenderOther
	}
	return nil
}

func (p *UserProfile) GenderDisplay() string {
	if d, ok := genderDisplay[p.Gender]; ok {
		return d
	}
	return genderDisplay[GenderOther]
}

// Age is absent when no date of birth is recorded.
func (p *UserProfile) Age(today time.Time) (int, bool) {
	if p.DateOfBirth == nil {
		return 0, false
	}
	return health.Age(*p.DateOfBirth, today), true
}
