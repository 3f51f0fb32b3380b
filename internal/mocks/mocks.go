// Package mocks provides testify mocks of the service interfaces for handler
// tests.
package mocks

import "github.com/AndrewTr0612/healthtracker/backend/internal/service"

var (
	_ service.IAuthService      = (*MockAuthService)(nil)
	_ service.IProfileService   = (*MockProfileService)(nil)
	_ service.IWeightService    = (*MockWeightService)(nil)
	_ service.IGoalService      = (*MockGoalService)(nil)
	_ service.IDashboardService = (*MockDashboardService)(nil)
	_ service.IChatService      = (*MockChatService)(nil)
	_ service.IExportService    = (*MockExportService)(nil)
)
