package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AndrewTr0612/healthtracker/backend/internal/health"
	"github.com/AndrewTr0612/healthtracker/backend/internal/models"
	"github.com/AndrewTr0612/healthtracker/backend/internal/types"
)

// ProfileInput carries a profile update. Nil account fields are left as
// they are.
type ProfileInput struct {
	HeightCm    float64
	DateOfBirth *time.Time
	Gender      string
	FirstName   *string
	LastName    *string
	Email       *string
}

// ProfileService handles user profile operations
type ProfileService struct {
	db  *gorm.DB
	now func() time.Time
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		db:  db,
		now: time.Now,
	}
}

// GetProfile returns the account and its body profile. ErrNotFound means
// the user has not set up a profile yet.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileResponse, error) {
	user, err := s.user(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	profile, err := findProfile(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	resp := toProfileResponse(user, profile, s.now())
	return &resp, nil
}

// UpdateProfile creates the profile on first use and replaces it afterwards.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (*types.ProfileResponse, error) {
	today := health.DateOf(s.now())
	if err := checkRange("height_cm", in.HeightCm, MinHeightCm, MaxHeightCm); err != nil {
		return nil, err
	}
	if in.DateOfBirth != nil && health.DateOf(*in.DateOfBirth).After(today) {
		return nil, invalid("date_of_birth", "cannot be in the future")
	}
	if in.Gender != "" && !models.ValidGender(in.Gender) {
		return nil, invalid("gender", "must be one of M, F, O")
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) == "" {
		return nil, invalid("email", "is required")
	}

	var (
		user    *models.User
		profile *models.UserProfile
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if user, err = s.user(ctx, tx, userID); err != nil {
			return err
		}
		if in.FirstName != nil || in.LastName != nil || in.Email != nil {
			if in.FirstName != nil {
				user.FirstName = strings.TrimSpace(*in.FirstName)
			}
			if in.LastName != nil {
				user.LastName = strings.TrimSpace(*in.LastName)
			}
			if in.Email != nil {
				user.Email = strings.TrimSpace(*in.Email)
			}
			if err := tx.Save(user).Error; err != nil {
				return fmt.Errorf("saving user: %w", err)
			}
		}

		if profile, err = findProfile(ctx, tx, userID); err != nil {
			return err
		}
		if profile == nil {
			profile = &models.UserProfile{UserID: userID}
		}
		profile.HeightCm = in.HeightCm
		if in.DateOfBirth != nil {
			dob := health.DateOf(*in.DateOfBirth)
			profile.DateOfBirth = &dob
		} else {
			profile.DateOfBirth = nil
		}
		if in.Gender != "" {
			profile.Gender = in.Gender
		}
		if err := tx.Save(profile).Error; err != nil {
			return fmt.Errorf("saving profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toProfileResponse(user, profile, s.now())
	return &resp, nil
}

func (s *ProfileService) user(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
