package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackhub/hackhub-api/internal/pkg/jwthelper"
)

const testUserAgent = "test-agent/1.0"

func newProtectedRouter(signingKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(NewAuthenticator(signingKey).VerifyJWT())
	router.GET("/protected", func(ctx *gin.Context) {
		userID, _ := ctx.Get(ContextKeyUserID)
		ctx.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	return router
}

func TestAuthenticator_VerifyJWT(t *testing.T) {
	token, err := jwthelper.GenerateToken([]byte("secret"), 42, testUserAgent)
	require.NoError(t, err)

	tests := []struct {
		name       string
		signingKey string
		authHeader string
		userAgent  string
		wantCode   int
	}{
		{
			name:       "valid token",
			signingKey: "secret",
			authHeader: "Bearer " + token,
			userAgent:  testUserAgent,
			wantCode:   http.StatusOK,
		},
		{
			name:       "missing header",
			signingKey: "secret",
			authHeader: "",
			userAgent:  testUserAgent,
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			signingKey: "secret",
			authHeader: "Basic dXNlcjpwYXNz",
			userAgent:  testUserAgent,
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			signingKey: "secret",
			authHeader: "Bearer not.a.token",
			userAgent:  testUserAgent,
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "wrong signing key",
			signingKey: "other-secret",
			authHeader: "Bearer " + token,
			userAgent:  testUserAgent,
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "different user agent",
			signingKey: "secret",
			authHeader: "Bearer " + token,
			userAgent:  "someone-else/2.0",
			wantCode:   http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newProtectedRouter(tt.signingKey)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			req.Header.Set("User-Agent", tt.userAgent)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)

			if tt.wantCode == http.StatusOK {
				assert.JSONEq(t, `{"user_id":42}`, w.Body.String())
			}
		})
	}
}
