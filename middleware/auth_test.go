package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   uint(7),
		"email": "owner@b.com",
		"exp":   exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authProbe() (*gin.Engine, *struct {
	userID uint
	email  string
}) {
	gin.SetMode(gin.TestMode)
	seen := &struct {
		userID uint
		email  string
	}{}

	router := gin.New()
	router.GET("/probe", RequireAuth(testSecret), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		email, _ := c.Get("email")
		seen.userID = userID.(uint)
		seen.email = email.(string)
		c.Status(http.StatusOK)
	})
	return router, seen
}

func probe(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuthValidToken(t *testing.T) {
	router, seen := authProbe()
	token := signToken(t, testSecret, time.Now().Add(time.Hour))

	w := probe(router, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), seen.userID)
	assert.Equal(t, "owner@b.com", seen.email)
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router, _ := authProbe()

	w := probe(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthWrongScheme(t *testing.T) {
	router, _ := authProbe()

	w := probe(router, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthBadSignature(t *testing.T) {
	router, _ := authProbe()
	token := signToken(t, "other-secret", time.Now().Add(time.Hour))

	w := probe(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	router, _ := authProbe()
	token := signToken(t, testSecret, time.Now().Add(-time.Minute))

	w := probe(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
