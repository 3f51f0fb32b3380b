package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/AndrewTr0612/healthtracker/backend/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type routes interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// newTestRouter mounts h under /api/v1 as if userID had authenticated. A nil
// userID leaves the request anonymous.
func newTestRouter(userID uuid.UUID, h routes) *gin.Engine {
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			middleware.SetUserID(c, userID)
		}
		c.Next()
	})
	h.RegisterRoutes(v1)
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func fieldErrors(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	body := decode(t, w)
	require.Equal(t, "validation failed", body["error"])
	fields, ok := body["fields"].(map[string]interface{})
	require.True(t, ok, "missing fields in %v", body)
	return fields
}
