package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AndrewTr0612/healthtracker/backend/internal/mocks"
	"github.com/AndrewTr0612/healthtracker/backend/internal/service"
	"github.com/AndrewTr0612/healthtracker/backend/internal/types"
)

func TestGetGoal(t *testing.T) {
	userID := uuid.New()
	goals := new(mocks.MockGoalService)
	goals.On("GetGoal", mock.Anything, userID).Return(nil, service.ErrNotFound)

	w := doRequest(newTestRouter(userID, NewGoalHandler(goals)), http.MethodGet, "/api/v1/goal", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetGoal(t *testing.T) {
	userID := uuid.New()

	t.Run("should save the goal", func(t *testing.T) {
		goals := new(mocks.MockGoalService)
		goals.On("SetGoal", mock.Anything, userID, mock.MatchedBy(func(in service.GoalInput) bool {
			return in.GoalType == "lose" && in.TargetWeightKg == 80 && in.Pace == "" &&
				in.StartDate != nil && in.StartDate.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) &&
				in.IsActive != nil && !*in.IsActive
		})).Return(&types.GoalResponse{GoalType: "lose", GoalTypeDisplay: "Lose Weight"}, nil)

		w := doRequest(newTestRouter(userID, NewGoalHandler(goals)), http.MethodPut, "/api/v1/goal",
			`{"goal_type":"lose","target_weight_kg":80,"start_date":"2024-03-01","is_active":false}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Lose Weight", decode(t, w)["goal_type_display"])
		goals.AssertExpectations(t)
	})

	t.Run("should reject an unknown pace", func(t *testing.T) {
		goals := new(mocks.MockGoalService)
		w := doRequest(newTestRouter(userID, NewGoalHandler(goals)), http.MethodPut, "/api/v1/goal",
			`{"goal_type":"lose","target_weight_kg":80,"pace":"sprint"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "must be one of slow, moderate, fast", fieldErrors(t, w)["pace"])
	})

	t.Run("should hide unexpected errors", func(t *testing.T) {
		goals := new(mocks.MockGoalService)
		goals.On("SetGoal", mock.Anything, userID, mock.Anything).Return(nil, errors.New("connection reset"))

		w := doRequest(newTestRouter(userID, NewGoalHandler(goals)), http.MethodPut, "/api/v1/goal",
			`{"goal_type":"gain","target_weight_kg":80}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", decode(t, w)["error"])
	})
}
