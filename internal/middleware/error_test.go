package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		handler  gin.HandlerFunc
		wantCode int
		wantBody string
	}{
		{
			name:     "panic",
			handler:  func(c *gin.Context) { panic("boom") },
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal Server Error"}`,
		},
		{
			name: "attached error",
			handler: func(c *gin.Context) {
				c.Status(http.StatusBadGateway)
				_ = c.Error(errors.New("upstream failed"))
			},
			wantCode: http.StatusBadGateway,
			wantBody: `{"error":"upstream failed"}`,
		},
		{
			name: "attached error without status",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("something broke"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"something broke"}`,
		},
		{
			name: "handler wrote its own body",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("ignored"))
				c.JSON(http.StatusBadRequest, gin.H{"error": "bad input"})
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"bad input"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.GET("/", tt.handler)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
