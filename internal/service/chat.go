package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AndrewTr0612/healthtracker/backend/internal/advisor"
	"github.com/AndrewTr0612/healthtracker/backend/internal/health"
	"github.com/AndrewTr0612/healthtracker/backend/internal/models"
)

// DefaultChatHistory is how many past exchanges the chat page shows.
const DefaultChatHistory = 20

// ChatService answers chatbot messages and keeps the conversation log.
type ChatService struct {
	db      *gorm.DB
	advisor *advisor.Advisor
	now     func() time.Time
}

var _ IChatService = (*ChatService)(nil)

func NewChatService(db *gorm.DB, adv *advisor.Advisor) *ChatService {
	if adv == nil {
		adv = advisor.NewDefault()
	}
	return &ChatService{
		db:      db,
		advisor: adv,
		now:     time.Now,
	}
}

// SendMessage replies to message using the user's health data and appends
// the exchange to the log. Persistence errors are returned as they are.
func (s *ChatService) SendMessage(ctx context.Context, userID uuid.UUID, message string) (*models.ChatMessage, error) {
	if message == "" {
		return nil, ErrMessageRequired
	}

	hc, err := s.HealthContext(ctx, userID)
	if err != nil {
		return nil, err
	}
	reply := s.advisor.Reply(message, hc)

	msg := models.ChatMessage{
		UserID:    userID,
		Message:   message,
		Response:  reply.Text,
		Topic:     string(reply.Topic),
		CreatedAt: s.now(),
	}
	if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// History lists the most recent exchanges, newest first.
func (s *ChatService) History(ctx context.Context, userID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultChatHistory
	}
	var messages []models.ChatMessage
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("loading chat history: %w", err)
	}
	return messages, nil
}

// HealthContext gathers what is known about the user for personalising a
// reply. Only an active goal is included.
func (s *ChatService) HealthContext(ctx context.Context, userID uuid.UUID) (advisor.HealthContext, error) {
	var hc advisor.HealthContext

	profile, err := findProfile(ctx, s.db, userID)
	if err != nil {
		return hc, err
	}
	if profile != nil {
		facts := &advisor.ProfileFacts{
			HeightCm: profile.HeightCm,
			Gender:   profile.GenderDisplay(),
		}
		if age, ok := profile.Age(s.now()); ok {
			facts.Age = &age
		}
		hc.Profile = facts
	}

	latest, err := findLatestEntry(ctx, s.db, userID)
	if err != nil {
		return hc, err
	}
	if latest != nil {
		bmi, ok := health.BMI(latest.WeightKg, heightOf(profile))
		facts := &advisor.WeightFacts{
			WeightKg: latest.WeightKg,
			Category: health.CategoryOf(bmi, ok),
		}
		if ok {
			facts.BMI = &bmi
		}
		hc.Latest = facts
	}

	goal, err := findGoal(ctx, s.db, userID)
	if err != nil {
		return hc, err
	}
	if goal != nil && goal.IsActive {
		g := goal.Goal()
		facts := &advisor.GoalFacts{
			Type:           g.Type,
			TargetWeightKg: g.TargetWeightKg,
		}
		if latest != nil {
			if weeks, ok := g.TimelineWeeks(latest.WeightKg); ok {
				facts.WeeksToGoal = &weeks
			}
		}
		hc.Goal = facts
	}

	return hc, nil
}
