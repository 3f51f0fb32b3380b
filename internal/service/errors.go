package service

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUserExists         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrProfileRequired    = errors.New("profile required")
	ErrMessageRequired    = errors.New("message is required")
	ErrStorageUnavailable = errors.New("export storage is not configured")
)

// ValidationError reports a single rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

const futureEntryMessage = "Weight entry date cannot be in the future. Please select today or an earlier date."

// Input bounds.
const (
	MinHeightCm = 50.0
	MaxHeightCm = 300.0
	MinWeightKg = 20.0
	MaxWeightKg = 500.0
)

func checkRange(field string, v, min, max float64) error {
	if v < min || v > max {
		return invalid(field, "must be between "+formatBound(min)+" and "+formatBound(max))
	}
	return nil
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
