package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"skillswap_backend/internal/app"
	"skillswap_backend/internal/config"
	"skillswap_backend/internal/logger"
	"skillswap_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var emailCounter atomic.Int64

// TestServer wraps the full HTTP handler chain over an in-memory database.
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

// NewTestServer builds the application exactly as production does, except
// for the sqlite database and a fixed test configuration.
func NewTestServer() (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "integration-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg

	logger.Init(cfg.Server.Env)

	db, err := OpenTestDB()
	if err != nil {
		return nil, err
	}

	return &TestServer{
		Router: app.SetupRouter(cfg, db),
		DB:     db,
	}, nil
}

// SendRequest performs one request against the router. A non-empty token is
// sent as a bearer token; a nil body sends no payload.
func (s *TestServer) SendRequest(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	s.Router.ServeHTTP(recorder, req)
	return recorder
}

// DecodeResponse unmarshals a recorded JSON body into out.
func DecodeResponse(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out),
		"body: %s", recorder.Body.String())
}

// TestUser is an account registered through the public API.
type TestUser struct {
	ID          string
	FullName    string
	Email       string
	Password    string
	AccessToken string
}

// CreateAndLoginUser registers a fresh user with a unique email and returns
// a logged-in account.
func (s *TestServer) CreateAndLoginUser(t *testing.T, fullName string) *TestUser {
	t.Helper()

	email := fmt.Sprintf("user%d@example.com", emailCounter.Add(1))
	password := "integration-pass"

	recorder := s.SendRequest(t, http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		FullName: fullName,
		Email:    email,
		Password: password,
	}, "")
	require.Equal(t, http.StatusCreated, recorder.Code, "register: %s", recorder.Body.String())

	recorder = s.SendRequest(t, http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{
		Email:    email,
		Password: password,
	}, "")
	require.Equal(t, http.StatusOK, recorder.Code, "login: %s", recorder.Body.String())

	var auth dto.AuthResponse
	DecodeResponse(t, recorder, &auth)
	require.NotEmpty(t, auth.AccessToken)

	return &TestUser{
		ID:          auth.User.ID,
		FullName:    fullName,
		Email:       email,
		Password:    password,
		AccessToken: auth.AccessToken,
	}
}

// AddSkill publishes a skill for the user and returns its id.
func (s *TestServer) AddSkill(t *testing.T, user *TestUser, name, category, level string) string {
	t.Helper()

	recorder := s.SendRequest(t, http.MethodPost, "/api/v1/skills", map[string]string{
		"name":     name,
		"category": category,
		"level":    level,
	}, user.AccessToken)
	require.Equal(t, http.StatusOK, recorder.Code, "add skill: %s", recorder.Body.String())

	var resp dto.AddSkillResponse
	DecodeResponse(t, recorder, &resp)
	require.NotEmpty(t, resp.SkillID)
	return resp.SkillID
}
