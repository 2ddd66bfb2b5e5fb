package middlewares

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, role string, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"email":   "staff@dukani.store",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin/ping", RequireAuth(), RequireAdmin(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	router := protectedRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuthRejectsBadSignature(t *testing.T) {
	os.Setenv("JWT_SECRET", "right-secret")
	router := protectedRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	request.Header.Set("Authorization", "Bearer "+signedToken(t, "admin", "wrong-secret"))
	request.Header.Set("X-Admin-Request", "true")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAdminRejectsCustomers(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	router := protectedRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	request.Header.Set("Authorization", "Bearer "+signedToken(t, "customer", "test-secret"))
	request.Header.Set("X-Admin-Request", "true")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireAdminRejectsMissingMarkerHeader(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	router := protectedRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	request.Header.Set("Authorization", "Bearer "+signedToken(t, "admin", "test-secret"))
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireAdminAllowsStaff(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	router := protectedRouter()

	for _, role := range []string{"admin", "manager"} {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		request.Header.Set("Authorization", "Bearer "+signedToken(t, role, "test-secret"))
		request.Header.Set("X-Admin-Request", "true")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code, "role %s", role)
	}
}
