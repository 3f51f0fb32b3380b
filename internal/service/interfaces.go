package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/AndrewTr0612/healthtracker/backend/internal/models"
	"github.com/AndrewTr0612/healthtracker/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(user *models.User) (string, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (*types.ProfileResponse, error)
}

// IWeightService defines the interface for weight history operations
type IWeightService interface {
	AddEntry(ctx context.Context, userID uuid.UUID, in WeightInput) (*types.WeightEntryResponse, error)
	ListEntries(ctx context.Context, userID uuid.UUID, limit int) ([]types.WeightEntryResponse, error)
	LatestEntry(ctx context.Context, userID uuid.UUID) (*types.WeightEntryResponse, error)
}

// IGoalService defines the interface for weight goal operations
type IGoalService interface {
	GetGoal(ctx context.Context, userID uuid.UUID) (*types.GoalResponse, error)
	SetGoal(ctx context.Context, userID uuid.UUID, in GoalInput) (*types.GoalResponse, error)
}

type IDashboardService interface {
	GetDashboard(ctx context.Context, userID uuid.UUID) (*types.DashboardResponse, error)
}

// IChatService defines the interface for the health chatbot
type IChatService interface {
	SendMessage(ctx context.Context, userID uuid.UUID, message string) (*models.ChatMessage, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]models.ChatMessage, error)
}

type IExportService interface {
	ExportWeights(ctx context.Context, userID uuid.UUID) (*types.ExportResponse, error)
}
