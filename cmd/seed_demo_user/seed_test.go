package main

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrewTr0612/healthtracker/backend/internal/models"
	"github.com/AndrewTr0612/healthtracker/backend/internal/testhelpers"
)

var today = testhelpers.Date(2024, 3, 15)

func TestDemoEntries(t *testing.T) {
	entries := demoEntries(uuid.New(), today)

	// every third day from 90 to 9, then days 7 through 0
	require.Len(t, entries, 28+8)
	assert.Equal(t, today.AddDate(0, 0, -90), entries[0].RecordedDate)
	assert.Equal(t, today, entries[len(entries)-1].RecordedDate)
	assert.Equal(t, milestones[90], entries[0].Notes)
	assert.Equal(t, milestones[0], entries[len(entries)-1].Notes)

	for i, e := range entries {
		daysAgo := int(today.Sub(e.RecordedDate).Hours() / 24)
		base := startingWeight - (startingWeight-targetWeight-3)*float64(historyDays-daysAgo)/historyDays
		assert.InDelta(t, base, e.WeightKg, 0.35, "entry %d", i)
	}

	again := demoEntries(uuid.New(), today)
	for i := range entries {
		assert.Equal(t, entries[i].WeightKg, again[i].WeightKg)
	}
}

func TestSeedDemoUser(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)

	res, err := seedDemoUser(db, today.Add(15*time.Hour), false)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", res.User.DisplayName())
	assert.Equal(t, today.AddDate(0, 0, -90), res.Goal.StartDate)

	var count int64
	require.NoError(t, db.Model(&models.WeightEntry{}).Where("user_id = ?", res.User.ID).Count(&count).Error)
	assert.EqualValues(t, len(res.Entries), count)

	_, err = seedDemoUser(db, today, false)
	assert.ErrorIs(t, err, errDemoExists)

	again, err := seedDemoUser(db, today, true)
	require.NoError(t, err)
	assert.NotEqual(t, res.User.ID, again.User.ID)

	require.NoError(t, db.Model(&models.WeightEntry{}).Count(&count).Error)
	assert.EqualValues(t, len(again.Entries), count)
	require.NoError(t, db.Model(&models.WeightGoal{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
