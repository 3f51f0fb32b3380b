package types

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,max=150"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name" binding:"required,max=150"`
}

// LoginRequest represents the request body for signing in
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest creates or replaces the body measurements and,
// optionally, the account's name and email.
type UpdateProfileRequest struct {
	HeightCm    float64 `json:"height_cm" binding:"required"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      string  `json:"gender" binding:"omitempty,oneof=M F O"`
	FirstName   *string `json:"first_name" binding:"omitempty,max=150"`
	LastName    *string `json:"last_name" binding:"omitempty,max=150"`
	Email       *string `json:"email" binding:"omitempty,email"`
}

// CreateWeightRequest represents a new weigh-in. RecordedDate defaults to
// today.
type CreateWeightRequest struct {
	WeightKg     float64 `json:"weight_kg" binding:"required"`
	RecordedDate string  `json:"recorded_date"`
	Notes        string  `json:"notes"`
}

// SetGoalRequest creates or replaces the user's weight goal.
type SetGoalRequest struct {
	GoalType       string  `json:"goal_type" binding:"required,oneof=lose gain maintain"`
	TargetWeightKg float64 `json:"target_weight_kg" binding:"required"`
	Pace           string  `json:"pace" binding:"omitempty,oneof=slow moderate fast"`
	StartDate      string  `json:"start_date"`
	IsActive       *bool   `json:"is_active"`
}

// ChatRequest is the chatbot message body.
type ChatRequest struct {
	Message string `json:"message"`
}
