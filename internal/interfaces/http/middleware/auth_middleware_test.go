package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"edu-connect.backend/internal/interfaces/http/middleware"
	"edu-connect.backend/pkg/jwt"
)

func newAuthRouter(t *testing.T, jwtSvc *jwt.JWTService, extra ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{middleware.AuthMiddleware(jwtSvc)}, extra...)
	r.GET("/protected", append(chain, func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})...)
	return r
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r := newAuthRouter(t, jwt.NewJWTService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "No token")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := newAuthRouter(t, jwt.NewJWTService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(middleware.AuthTokenHeader, "not-a-token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "not valid")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	jwtSvc := jwt.NewJWTService("secret", -time.Minute)
	token, err := jwtSvc.GenerateSessionToken(uuid.New(), "student")
	require.NoError(t, err)

	r := newAuthRouter(t, jwt.NewJWTService("secret", time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(middleware.AuthTokenHeader, token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "expired")
}

func TestAuthMiddleware_ValidTokenSetsIdentity(t *testing.T) {
	jwtSvc := jwt.NewJWTService("secret", time.Hour)
	userID := uuid.New()
	token, err := jwtSvc.GenerateSessionToken(userID, "teacher")
	require.NoError(t, err)

	r := newAuthRouter(t, jwtSvc)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(middleware.AuthTokenHeader, token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), userID.String())
	require.Contains(t, rec.Body.String(), "teacher")
}

func TestRequireRole(t *testing.T) {
	jwtSvc := jwt.NewJWTService("secret", time.Hour)
	studentToken, err := jwtSvc.GenerateSessionToken(uuid.New(), "student")
	require.NoError(t, err)
	teacherToken, err := jwtSvc.GenerateSessionToken(uuid.New(), "teacher")
	require.NoError(t, err)

	r := newAuthRouter(t, jwtSvc, middleware.RequireTeacher())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(middleware.AuthTokenHeader, studentToken)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(middleware.AuthTokenHeader, teacherToken)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
