package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/bugtrail/bug-tracker-api/internal/auth"
)

func newAuthRouter(t *testing.T, required bool) (*gin.Engine, *auth.JWTService) {
	t.Helper()

	tokens := auth.NewJWTService("test-secret", 1)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", BearerAuth(tokens, required), func(c *gin.Context) {
		email, _ := GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})

	return r, tokens
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBearerAuth_PermitAll(t *testing.T) {
	r, tokens := newAuthRouter(t, false)

	// no token, invalid token, valid token: all pass
	require.Equal(t, http.StatusOK, get(r, "").Code)
	require.Equal(t, http.StatusOK, get(r, "Bearer garbage").Code)

	token, err := tokens.Generate("dev@example.com")
	require.NoError(t, err)
	w := get(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "dev@example.com")
}

func TestBearerAuth_Required(t *testing.T) {
	r, tokens := newAuthRouter(t, true)

	require.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	require.Equal(t, http.StatusUnauthorized, get(r, "Bearer garbage").Code)
	require.Equal(t, http.StatusUnauthorized, get(r, "Basic dXNlcg==").Code)

	token, err := tokens.Generate("dev@example.com")
	require.NoError(t, err)
	w := get(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "dev@example.com")
}

func TestBearerAuth_ExpiredToken(t *testing.T) {
	r, _ := newAuthRouter(t, true)

	expired := auth.NewJWTService("test-secret", -1)
	token, err := expired.Generate("dev@example.com")
	require.NoError(t, err)

	require.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+token).Code)
}
