package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackhub/hackhub-api/internal/api/handler/v1/response"
	"github.com/hackhub/hackhub-api/internal/config"
	"github.com/hackhub/hackhub-api/internal/domain"
	"github.com/hackhub/hackhub-api/internal/service"
)

type stubAuthService struct {
	signupUser domain.User
	signupErr  error
	loginUser  domain.User
	loginErr   error
}

func (s *stubAuthService) Signup(_ context.Context, _ domain.User) (domain.User, error) {
	return s.signupUser, s.signupErr
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (domain.User, error) {
	return s.loginUser, s.loginErr
}

func newAuthRouter(svc AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAuthHandler(&config.APIConfig{JWTSigningKey: "test-key"}, svc)
	router := gin.New()
	router.POST("/auth/signup", h.HandleSignup)
	router.POST("/auth/login", h.HandleLogin)

	return router
}

func TestAuthHandler_HandleSignup(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		svc      *stubAuthService
		wantCode int
	}{
		{
			name: "valid signup",
			body: `{"email":"alice@example.com","username":"alice","password":"password1","role":"PARTICIPANT"}`,
			svc: &stubAuthService{
				signupUser: domain.User{ID: 1, Email: "alice@example.com", Username: "alice", Role: domain.RoleParticipant},
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "malformed JSON",
			body:     `{"email":`,
			svc:      &stubAuthService{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid email",
			body:     `{"email":"not-an-email","username":"alice","password":"password1","role":"PARTICIPANT"}`,
			svc:      &stubAuthService{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "password without a digit",
			body:     `{"email":"alice@example.com","username":"alice","password":"passwords","role":"PARTICIPANT"}`,
			svc:      &stubAuthService{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown role",
			body:     `{"email":"alice@example.com","username":"alice","password":"password1","role":"ADMIN"}`,
			svc:      &stubAuthService{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "duplicate email",
			body:     `{"email":"alice@example.com","username":"alice","password":"password1","role":"PARTICIPANT"}`,
			svc:      &stubAuthService{signupErr: service.ErrUserEmailExists},
			wantCode: http.StatusConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(tt.svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)

			if tt.wantCode == http.StatusCreated {
				var resp response.LoginResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Token)
				assert.Equal(t, "alice", resp.User.Username)
			}
		})
	}
}

func TestAuthHandler_HandleLogin(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		svc      *stubAuthService
		wantCode int
	}{
		{
			name: "valid credentials",
			body: `{"email":"alice@example.com","password":"password1"}`,
			svc: &stubAuthService{
				loginUser: domain.User{ID: 1, Email: "alice@example.com", Username: "alice"},
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong password",
			body:     `{"email":"alice@example.com","password":"nope"}`,
			svc:      &stubAuthService{loginErr: service.ErrWrongPassword},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "unknown user",
			body:     `{"email":"bob@example.com","password":"password1"}`,
			svc:      &stubAuthService{loginErr: service.ErrUserNotFound},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "missing email",
			body:     `{"password":"password1"}`,
			svc:      &stubAuthService{},
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(tt.svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)

			if tt.wantCode == http.StatusOK {
				var resp response.LoginResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Token)
			}
		})
	}
}
