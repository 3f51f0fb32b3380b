package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrewTr0612/healthtracker/backend/internal/models"
	"github.com/AndrewTr0612/healthtracker/backend/internal/testhelpers"
)

type memoryStore struct {
	objects     map[string][]byte
	contentType string
	ttl         time.Duration
	putErr      error
}

func (m *memoryStore) PutObject(_ context.Context, key string, body []byte, contentType string) error {
	if m.putErr != nil {
		return m.putErr
	}
	if m.objects == nil {
		m.objects = map[string][]byte{}
	}
	m.objects[key] = body
	m.contentType = contentType
	return nil
}

func (m *memoryStore) PresignGet(_ context.Context, key string, ttl time.Duration) (string, error) {
	m.ttl = ttl
	return "https://exports.example/" + key + "?signed", nil
}

func TestExportService_ExportWeights(t *testing.T) {
	db, user := setupUser(t)
	testhelpers.CreateProfile(t, db, user.ID, 175, models.GenderMale, nil)
	testhelpers.AddWeight(t, db, user.ID, 80, testhelpers.Date(2024, 3, 14), testNow)
	entry := testhelpers.AddWeight(t, db, user.ID, 70, testhelpers.Date(2024, 3, 1), testNow)
	require.NoError(t, db.Model(entry).Update("notes", "start, finally").Error)

	store := &memoryStore{}
	s := NewExportService(db, store)
	s.now = testhelpers.Clock(testNow)

	resp, err := s.ExportWeights(testContext(), user.ID)
	require.NoError(t, err)

	key := "exports/" + user.ID.String() + "/weights-20240315T103000Z.csv"
	assert.Equal(t, "https://exports.example/"+key+"?signed", resp.URL)
	assert.Equal(t, 2, resp.Entries)
	assert.Equal(t, testNow.Add(ExportLinkTTL), resp.ExpiresAt)
	assert.Equal(t, ExportLinkTTL, store.ttl)
	assert.Equal(t, "text/csv", store.contentType)

	lines := strings.Split(strings.TrimSpace(string(store.objects[key])), "\n")
	assert.Equal(t, []string{
		"recorded_date,weight_kg,bmi,bmi_category,notes",
		`2024-03-01,70,22.86,Normal weight,"start, finally"`,
		"2024-03-14,80,26.12,Overweight,",
	}, lines)
}

func TestExportService_Failures(t *testing.T) {
	db, user := setupUser(t)

	t.Run("should fail without storage", func(t *testing.T) {
		_, err := NewExportService(db, nil).ExportWeights(testContext(), user.ID)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})

	t.Run("should surface upload errors", func(t *testing.T) {
		boom := errors.New("bucket gone")
		_, err := NewExportService(db, &memoryStore{putErr: boom}).ExportWeights(testContext(), user.ID)
		assert.ErrorIs(t, err, boom)
	})
}
