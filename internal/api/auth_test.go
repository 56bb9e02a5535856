package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crowdfund_backend/internal/domain"
	"crowdfund_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testJWTSecret = "test_jwt_secret"

// authRouter wires the auth endpoints the way cmd/server does
func authRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.POST("/api/auth/register", RegisterHandler(db, testJWTSecret))
	r.POST("/api/auth/login", LoginHandler(db, testJWTSecret))
	r.POST("/api/auth/refresh-token", RefreshTokenHandler(testJWTSecret))
	r.GET("/api/auth/me", middleware.JWTAuthMiddleware(testJWTSecret), MeHandler(db))
	return r
}

// registerBody is a valid registration payload
func registerBody() map[string]any {
	return map[string]any{
		"fullname":  "Jane Donor",
		"email":     "jane@test.com",
		"phone":     "9876543210",
		"birthdate": "1992-04-01",
		"password":  "secret123",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter(db)

	// Register issues a token pair
	w := performRequest(r, http.MethodPost, "/api/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, w.Code)
	var tokens AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tokens))
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	// The password is stored hashed, never in the clear
	var user domain.User
	require.NoError(t, db.Where("email = ?", "jane@test.com").First(&user).Error)
	assert.NotEqual(t, "secret123", user.Password)

	// Login with the right password succeeds
	w = performRequest(r, http.MethodPost, "/api/auth/login", map[string]any{
		"email": "jane@test.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Wrong password is rejected
	w = performRequest(r, http.MethodPost, "/api/auth/login", map[string]any{
		"email": "jane@test.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter(db)

	w := performRequest(r, http.MethodPost, "/api/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, w.Code)

	// Same email again, even with different casing
	body := registerBody()
	body["email"] = "JANE@test.com"
	w = performRequest(r, http.MethodPost, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "please log in instead")
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter(db)

	// Phone must be 10 digits
	body := registerBody()
	body["phone"] = "12345"
	w := performRequest(r, http.MethodPost, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Phone must be 10 digits")

	// Password must be at least 6 characters
	body = registerBody()
	body["password"] = "abc"
	w = performRequest(r, http.MethodPost, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Email must look like an email
	body = registerBody()
	body["email"] = "not-an-email"
	w = performRequest(r, http.MethodPost, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeEndpoint(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter(db)

	w := performRequest(r, http.MethodPost, "/api/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, w.Code)
	var tokens AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tokens))

	// With a valid bearer token the profile comes back without the password
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jane@test.com")
	assert.NotContains(t, rec.Body.String(), "secret123")

	// Without a token the middleware rejects the request
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshToken(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter(db)

	w := performRequest(r, http.MethodPost, "/api/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, w.Code)
	var tokens AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tokens))

	// A valid refresh token yields a fresh pair
	w = performRequest(r, http.MethodPost, "/api/auth/refresh-token", map[string]any{
		"refreshToken": tokens.RefreshToken,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var refreshed AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refreshed))
	assert.NotEmpty(t, refreshed.AccessToken)

	// Garbage is rejected
	w = performRequest(r, http.MethodPost, "/api/auth/refresh-token", map[string]any{
		"refreshToken": "not-a-token",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
