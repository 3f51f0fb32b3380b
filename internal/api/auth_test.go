package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AndrewTr0612/healthtracker/backend/internal/mocks"
	"github.com/AndrewTr0612/healthtracker/backend/internal/models"
	"github.com/AndrewTr0612/healthtracker/backend/internal/service"
	"github.com/AndrewTr0612/healthtracker/backend/internal/types"
)

const registerBody = `{
	"username": "jane",
	"email": "jane@example.com",
	"password": "password123",
	"first_name": "Jane",
	"last_name": "Doe"
}`

func TestRegister(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "jane"}

	t.Run("should create the account", func(t *testing.T) {
		authService := new(mocks.MockAuthService)
		authService.On("Register", mock.Anything, mock.MatchedBy(func(req *types.RegisterRequest) bool {
			return req.Username == "jane" && req.FirstName == "Jane"
		})).Return(user, "signed-token", nil)

		w := doRequest(newTestRouter(uuid.Nil, NewAuthHandler(authService)), http.MethodPost, "/api/v1/auth/register", registerBody)

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decode(t, w)
		assert.Equal(t, user.ID.String(), body["user_id"])
		assert.Equal(t, "signed-token", body["token"])
		authService.AssertExpectations(t)
	})

	t.Run("should report a taken username", func(t *testing.T) {
		authService := new(mocks.MockAuthService)
		authService.On("Register", mock.Anything, mock.Anything).Return(nil, "", service.ErrUserExists)

		w := doRequest(newTestRouter(uuid.Nil, NewAuthHandler(authService)), http.MethodPost, "/api/v1/auth/register", registerBody)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("should name invalid fields", func(t *testing.T) {
		authService := new(mocks.MockAuthService)
		w := doRequest(newTestRouter(uuid.Nil, NewAuthHandler(authService)), http.MethodPost, "/api/v1/auth/register",
			`{"username":"jane","email":"nope","password":"short","first_name":"J"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		fields := fieldErrors(t, w)
		assert.Equal(t, "must be a valid email address", fields["email"])
		assert.Equal(t, "must be at least 8 characters", fields["password"])
		assert.Equal(t, "is required", fields["last_name"])
		authService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("should reject malformed JSON", func(t *testing.T) {
		authService := new(mocks.MockAuthService)
		w := doRequest(newTestRouter(uuid.Nil, NewAuthHandler(authService)), http.MethodPost, "/api/v1/auth/register", `{"username":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid request body", decode(t, w)["error"])
	})
}

func TestLogin(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "jane"}

	t.Run("should return a token", func(t *testing.T) {
		authService := new(mocks.MockAuthService)
		authService.On("Login", mock.Anything, "jane", "password123").Return(user, "signed-token", nil)

		w := doRequest(newTestRouter(uuid.Nil, NewAuthHandler(authService)), http.MethodPost, "/api/v1/auth/login",
			`{"username":"jane","password":"password123"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "signed-token", decode(t, w)["token"])
	})

	t.Run("should reject bad credentials", func(t *testing.T) {
		authService := new(mocks.MockAuthService)
		authService.On("Login", mock.Anything, "jane", "wrong").Return(nil, "", service.ErrInvalidCredentials)

		w := doRequest(newTestRouter(uuid.Nil, NewAuthHandler(authService)), http.MethodPost, "/api/v1/auth/login",
			`{"username":"jane","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid username or password", decode(t, w)["error"])
	})
}
