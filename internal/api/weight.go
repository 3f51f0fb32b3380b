package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AndrewTr0612/healthtracker/backend/internal/service"
	"github.com/AndrewTr0612/healthtracker/backend/internal/types"
)

// WeightHandler serves weight history and its CSV export.
type WeightHandler struct {
	weightService service.IWeightService
	exportService service.IExportService
}

func NewWeightHandler(weightService service.IWeightService, exportService service.IExportService) *WeightHandler {
	return &WeightHandler{
		weightService: weightService,
		exportService: exportService,
	}
}

// RegisterRoutes expects router to be behind the auth middleware.
func (h *WeightHandler) RegisterRoutes(router *gin.RouterGroup) {
	weights := router.Group("/weights")
	{
		weights.GET("", h.ListEntries)
		weights.POST("", h.AddEntry)
		weights.GET("/latest", h.LatestEntry)
		weights.GET("/export", h.Export)
	}
}

func (h *WeightHandler) AddEntry(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.CreateWeightRequest
	if !bindJSON(c, &req) {
		return
	}
	recorded, err := parseDate("recorded_date", &req.RecordedDate)
	if err != nil {
		respondError(c, err)
		return
	}

	entry, err := h.weightService.AddEntry(c.Request.Context(), userID, service.WeightInput{
		WeightKg:     req.WeightKg,
		RecordedDate: recorded,
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *WeightHandler) ListEntries(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	limit, err := queryLimit(c)
	if err != nil {
		respondError(c, err)
		return
	}

	entries, err := h.weightService.ListEntries(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *WeightHandler) LatestEntry(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	entry, err := h.weightService.LatestEntry(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *WeightHandler) Export(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	export, err := h.exportService.ExportWeights(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, export)
}
