package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/AndrewTr0612/healthtracker/backend/internal/service"
	"github.com/AndrewTr0612/healthtracker/backend/internal/types"
)

type MockWeightService struct {
	mock.Mock
}

func (m *MockWeightService) AddEntry(ctx context.Context, userID uuid.UUID, in service.WeightInput) (*types.WeightEntryResponse, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.WeightEntryResponse), args.Error(1)
}

func (m *MockWeightService) ListEntries(ctx context.Context, userID uuid.UUID, limit int) ([]types.WeightEntryResponse, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.WeightEntryResponse), args.Error(1)
}

func (m *MockWeightService) LatestEntry(ctx context.Context, userID uuid.UUID) (*types.WeightEntryResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.WeightEntryResponse), args.Error(1)
}

type MockGoalService struct {
	mock.Mock
}

func (m *MockGoalService) GetGoal(ctx context.Context, userID uuid.UUID) (*types.GoalResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.GoalResponse), args.Error(1)
}

func (m *MockGoalService) SetGoal(ctx context.Context, userID uuid.UUID, in service.GoalInput) (*types.GoalResponse, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.GoalResponse), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetDashboard(ctx context.Context, userID uuid.UUID) (*types.DashboardResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.DashboardResponse), args.Error(1)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportWeights(ctx context.Context, userID uuid.UUID) (*types.ExportResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ExportResponse), args.Error(1)
}
