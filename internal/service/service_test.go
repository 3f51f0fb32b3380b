package service

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/AndrewTr0612/healthtracker/backend/internal/models"
	"github.com/AndrewTr0612/healthtracker/backend/internal/testhelpers"
)

// testNow is the wall clock every service under test sees.
var testNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func testContext() context.Context {
	return context.Background()
}

func setupUser(t *testing.T) (*gorm.DB, *models.User) {
	t.Helper()
	db := testhelpers.SetupSQLiteDB(t)
	return db, testhelpers.CreateUser(t, db, "alice")
}

func ptr[T any](v T) *T {
	return &v
}
