package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/AndrewTr0612/healthtracker/backend/internal/middleware"
	"github.com/AndrewTr0612/healthtracker/backend/internal/service"
	"github.com/AndrewTr0612/healthtracker/backend/internal/types"
)

type ChatHandler struct {
	chatService service.IChatService
	limiter     *middleware.RateLimiter
}

// NewChatHandler creates a ChatHandler. limiter may be nil.
func NewChatHandler(chatService service.IChatService, limiter *middleware.RateLimiter) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		limiter:     limiter,
	}
}

// RegisterRoutes expects router to be behind the auth middleware.
func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	chat := router.Group("/chat")
	send := []gin.HandlerFunc{h.SendMessage}
	if h.limiter != nil {
		send = append([]gin.HandlerFunc{h.limiter.RateLimitMiddleware()}, send...)
	}
	chat.POST("", send...)
	chat.GET("/messages", h.History)
}

// SendMessage answers a chatbot message. Its error bodies are part of the
// client contract: "Invalid JSON", "Message is required", or the raw error.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	var req types.ChatRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	msg, err := h.chatService.SendMessage(c.Request.Context(), userID, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrMessageRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.ChatResponse{
		Success:   true,
		Response:  msg.Response,
		Timestamp: msg.CreatedAt.Format(time.RFC3339),
	})
}

func (h *ChatHandler) History(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	limit, err := queryLimit(c)
	if err != nil {
		respondError(c, err)
		return
	}

	messages, err := h.chatService.History(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]types.ChatMessageResponse, len(messages))
	for i, m := range messages {
		out[i] = types.ChatMessageResponse{
			ID:        m.ID,
			Message:   m.Message,
			Response:  m.Response,
			Topic:     m.Topic,
			CreatedAt: m.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, out)
}
