package types

import (
	"time"

	"github.com/google/uuid"
)

type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Token  string    `json:"token"`
}

// ProfileResponse combines the account with its body profile.
type ProfileResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	HeightCm      float64   `json:"height_cm"`
	DateOfBirth   *string   `json:"date_of_birth"`
	Gender        string    `json:"gender"`
	GenderDisplay string    `json:"gender_display"`
	Age           *int      `json:"age"`
}

type WeightEntryResponse struct {
	ID           uuid.UUID `json:"id"`
	WeightKg     float64   `json:"weight_kg"`
	RecordedDate string    `json:"recorded_date"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	BMI          *float64  `json:"bmi"`
	BMICategory  string    `json:"bmi_category"`
}

// TimelineResponse is the goal progress block.
type TimelineResponse struct {
	CurrentWeight    float64  `json:"current_weight"`
	TargetWeight     float64  `json:"target_weight"`
	WeightDifference float64  `json:"weight_difference"`
	WeeksToGoal      *float64 `json:"weeks_to_goal"`
	TargetDate       *string  `json:"target_date"`
	Progress         float64  `json:"progress"`
	WeeklyRate       float64  `json:"weekly_rate"`
	BMI              *float64 `json:"bmi"`
	BMICategory      string   `json:"bmi_category"`
}

type GoalResponse struct {
	GoalType        string            `json:"goal_type"`
	GoalTypeDisplay string            `json:"goal_type_display"`
	TargetWeightKg  float64           `json:"target_weight_kg"`
	Pace            string            `json:"pace"`
	WeeklyRate      float64           `json:"weekly_rate"`
	StartDate       string            `json:"start_date"`
	IsActive        bool              `json:"is_active"`
	Timeline        *TimelineResponse `json:"timeline"`
}

type ChartData struct {
	Dates   []string  `json:"dates"`
	Weights []float64 `json:"weights"`
}

type DashboardResponse struct {
	Profile      ProfileResponse       `json:"profile"`
	LatestWeight *WeightEntryResponse  `json:"latest_weight"`
	Goal         *GoalResponse         `json:"goal"`
	History      []WeightEntryResponse `json:"history"`
	ChartData    ChartData             `json:"chart_data"`
	Timeline     *TimelineResponse     `json:"timeline"`
}

// ChatResponse is the reply envelope of the chatbot endpoint.
type ChatResponse struct {
	Success   bool   `json:"success"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

type ChatMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Topic     string    `json:"topic"`
	CreatedAt time.Time `json:"created_at"`
}

type ExportResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
	Entries   int       `json:"entries"`
}
