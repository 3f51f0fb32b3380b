package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrewTr0612/healthtracker/backend/internal/advisor"
	"github.com/AndrewTr0612/healthtracker/backend/internal/health"
	"github.com/AndrewTr0612/healthtracker/backend/internal/models"
	"github.com/AndrewTr0612/healthtracker/backend/internal/testhelpers"
)

func newChatService(t *testing.T) (*ChatService, *models.User) {
	db, user := setupUser(t)
	s := NewChatService(db, advisor.New(advisor.DefaultPools(), advisor.NewSeededSampler(1)))
	s.now = testhelpers.Clock(testNow)
	return s, user
}

func TestChatService_SendMessage(t *testing.T) {
	s, user := newChatService(t)
	ctx := testContext()

	t.Run("should reject an empty message", func(t *testing.T) {
		_, err := s.SendMessage(ctx, user.ID, "")
		assert.ErrorIs(t, err, ErrMessageRequired)
	})

	t.Run("should answer without context for a new user", func(t *testing.T) {
		msg, err := s.SendMessage(ctx, user.ID, "hello there")
		require.NoError(t, err)
		assert.Equal(t, string(advisor.TopicGreeting), msg.Topic)
		assert.True(t, strings.HasPrefix(msg.Response, "👋 Hello!"), msg.Response)
		assert.Equal(t, testNow, msg.CreatedAt.UTC())
	})

	t.Run("should log every exchange", func(t *testing.T) {
		var stored []models.ChatMessage
		require.NoError(t, s.db.Where("user_id = ?", user.ID).Find(&stored).Error)
		require.Len(t, stored, 1)
		assert.Equal(t, "hello there", stored[0].Message)
	})

	t.Run("should prefix the health context", func(t *testing.T) {
		dob := testhelpers.Date(1990, 6, 15)
		testhelpers.CreateProfile(t, s.db, user.ID, 175, models.GenderMale, &dob)
		testhelpers.AddWeight(t, s.db, user.ID, 90, testhelpers.Date(2024, 3, 14), testNow)
		testhelpers.CreateGoal(t, s.db, user.ID, string(health.GoalLose), 80, string(health.PaceModerate), testhelpers.Date(2024, 3, 1), true)

		msg, err := s.SendMessage(ctx, user.ID, "what is my bmi?")
		require.NoError(t, err)
		assert.Equal(t, string(advisor.TopicBMI), msg.Topic)

		want := strings.Join([]string{
			"📊 Your Profile: Height 175.0cm, Male",
			"Age: 33 years",
			"⚖️ Current: 90.0kg, BMI: 29.39 (Overweight)",
			"🎯 Goal: Lose Weight to 80.0kg",
			"⏱️ Timeline: 20.0 weeks to goal",
			"",
			"📊 Your BMI: 29.39 (Overweight)",
		}, "\n")
		assert.True(t, strings.HasPrefix(msg.Response, want), msg.Response)
	})
}

func TestChatService_HealthContext(t *testing.T) {
	s, user := newChatService(t)
	ctx := testContext()

	hc, err := s.HealthContext(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, hc.Profile)
	assert.Nil(t, hc.Latest)
	assert.Nil(t, hc.Goal)

	t.Run("should skip an inactive goal", func(t *testing.T) {
		testhelpers.CreateGoal(t, s.db, user.ID, string(health.GoalGain), 70, string(health.PaceSlow), testhelpers.Date(2024, 3, 1), false)
		hc, err := s.HealthContext(ctx, user.ID)
		require.NoError(t, err)
		assert.Nil(t, hc.Goal)
	})

	t.Run("should leave BMI unknown without a profile", func(t *testing.T) {
		testhelpers.AddWeight(t, s.db, user.ID, 65, testhelpers.Date(2024, 3, 14), testNow)
		hc, err := s.HealthContext(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, hc.Latest)
		assert.Nil(t, hc.Latest.BMI)
		assert.Equal(t, health.Unknown, hc.Latest.Category)
	})

	t.Run("should include an active goal with its timeline", func(t *testing.T) {
		require.NoError(t, s.db.Model(&models.WeightGoal{}).Where("user_id = ?", user.ID).Update("is_active", true).Error)
		hc, err := s.HealthContext(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, hc.Goal)
		assert.Equal(t, health.GoalGain, hc.Goal.Type)
		require.NotNil(t, hc.Goal.WeeksToGoal)
		assert.Equal(t, 20.0, *hc.Goal.WeeksToGoal)
	})
}

func TestChatService_History(t *testing.T) {
	s, user := newChatService(t)
	ctx := testContext()
	other := testhelpers.CreateUser(t, s.db, "bob")

	for i := 0; i < 25; i++ {
		s.now = testhelpers.Clock(testNow.Add(time.Duration(i) * time.Minute))
		_, err := s.SendMessage(ctx, user.ID, "message "+string(rune('a'+i)))
		require.NoError(t, err)
	}
	_, err := s.SendMessage(ctx, other.ID, "not yours")
	require.NoError(t, err)

	t.Run("should list the latest 20 newest first", func(t *testing.T) {
		history, err := s.History(ctx, user.ID, 0)
		require.NoError(t, err)
		require.Len(t, history, DefaultChatHistory)
		assert.Equal(t, "message y", history[0].Message)
		assert.Equal(t, "message f", history[len(history)-1].Message)
	})

	t.Run("should honour an explicit limit", func(t *testing.T) {
		history, err := s.History(ctx, user.ID, 2)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "message x", history[1].Message)
	})
}
