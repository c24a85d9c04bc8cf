package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gigboard/internal/config"
	"gigboard/internal/database"
	"gigboard/internal/models"
)

func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{Port: "0", JWTSecret: "test-secret", Env: "test"}
	srv := NewServer(cfg, db, nil, nil)
	return srv, srv.App()
}

// doJSON performs a request against the app and decodes the envelope.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, models.Envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env models.Envelope
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	return resp.StatusCode, env
}

func decodeInto(t *testing.T, env models.Envelope, dest any) {
	t.Helper()
	require.NotEmpty(t, env.Data)
	require.NoError(t, json.Unmarshal(env.Data, dest))
}

// signup creates an account and returns its token and user id.
func signup(t *testing.T, app *fiber.App, name, email string) (token, userID string) {
	t.Helper()
	status, env := doJSON(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, status)

	var data struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeInto(t, env, &data)
	require.NotEmpty(t, data.Token)
	require.NotEmpty(t, data.User.ID)
	return data.Token, data.User.ID
}

func TestHealthCheck(t *testing.T) {
	_, app := newTestServer(t)
	status, env := doJSON(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
}

func TestSignupAndLogin(t *testing.T) {
	_, app := newTestServer(t)
	signup(t, app, "Dana", "dana@example.com")

	status, env := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    "dana@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	_, app := newTestServer(t)
	signup(t, app, "Dana", "dana@example.com")

	status, env := doJSON(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"name":     "Dana Again",
		"email":    "dana@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, env.Success)
}

func TestSignupValidation(t *testing.T) {
	_, app := newTestServer(t)
	status, env := doJSON(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"email": "nobody@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
}

func TestLoginInvalidCredentials(t *testing.T) {
	_, app := newTestServer(t)
	signup(t, app, "Dana", "dana@example.com")

	tests := []struct {
		name string
		body fiber.Map
	}{
		{"Wrong password", fiber.Map{"email": "dana@example.com", "password": "nope"}},
		{"Unknown email", fiber.Map{"email": "ghost@example.com", "password": "password123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := doJSON(t, app, http.MethodPost, "/auth/login", "", tt.body)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.False(t, env.Success)
		})
	}
}
