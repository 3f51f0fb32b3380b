package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AndrewTr0612/healthtracker/backend/internal/types"
)

type stubValidator struct {
	claims *types.TokenClaims
	err    error
	got    string
}

func (s *stubValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	s.got = token
	return s.claims, s.err
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	valid := &stubValidator{claims: &types.TokenClaims{UserID: userID, Username: "alice"}}

	tests := []struct {
		name      string
		header    string
		validator *stubValidator
		wantCode  int
	}{
		{"missing header", "", valid, http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", valid, http.StatusUnauthorized},
		{"empty token", "Bearer ", valid, http.StatusUnauthorized},
		{"rejected token", "Bearer bad", &stubValidator{err: errors.New("expired")}, http.StatusUnauthorized},
		{"valid token", "Bearer good", valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen uuid.UUID
			r := gin.New()
			r.GET("/", AuthMiddleware(tt.validator), func(c *gin.Context) {
				seen, _ = UserID(c)
				assert.Equal(t, "alice", c.GetString("username"))
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, userID, seen)
				assert.Equal(t, "good", tt.validator.got)
			}
		})
	}
}

func TestUserIDMissing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := UserID(c)
	assert.False(t, ok)

	SetUserID(c, uuid.Nil)
	_, ok = UserID(c)
	assert.False(t, ok)
}
