package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AndrewTr0612/healthtracker/backend/internal/service"
	"github.com/AndrewTr0612/healthtracker/backend/internal/types"
)

type GoalHandler struct {
	goalService service.IGoalService
}

func NewGoalHandler(goalService service.IGoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// RegisterRoutes expects router to be behind the auth middleware.
func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goal := router.Group("/goal")
	{
		goal.GET("", h.GetGoal)
		goal.PUT("", h.SetGoal)
	}
}

func (h *GoalHandler) GetGoal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	goal, err := h.goalService.GetGoal(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

func (h *GoalHandler) SetGoal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.SetGoalRequest
	if !bindJSON(c, &req) {
		return
	}
	start, err := parseDate("start_date", &req.StartDate)
	if err != nil {
		respondError(c, err)
		return
	}

	goal, err := h.goalService.SetGoal(c.Request.Context(), userID, service.GoalInput{
		GoalType:       req.GoalType,
		TargetWeightKg: req.TargetWeightKg,
		Pace:           req.Pace,
		StartDate:      start,
		IsActive:       req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}
