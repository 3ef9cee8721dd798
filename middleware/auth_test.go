package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campus-news-api/config"
	"campus-news-api/helper"
	"campus-news-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type stubUserRepo struct {
	users map[uint]*models.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, models.NotFound("user not found")
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, models.NotFound("user not found")
}

func (s *stubUserRepo) GetList(ctx context.Context, params models.ListParams) ([]models.User, int64, error) {
	return nil, 0, nil
}

func (s *stubUserRepo) SearchAuthors(ctx context.Context, query string, limit int) ([]models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error { return nil }
func (s *stubUserRepo) Delete(ctx context.Context, id uint) error           { return nil }

type AuthMiddlewareSuite struct {
	suite.Suite
	router *gin.Engine
	repo   *stubUserRepo
	jwtCfg config.JWTConfig
}

func (s *AuthMiddlewareSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.jwtCfg = config.JWTConfig{Secret: []byte("test-secret"), Expiration: time.Hour}
	s.repo = &stubUserRepo{users: map[uint]*models.User{}}

	mw := New(helper.NewHTTPHelper(true), s.repo, s.jwtCfg)

	s.router = gin.New()
	s.router.GET("/me", mw.Auth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.MustGet("user_id")})
	})
	s.router.GET("/admin-only", mw.Auth(), mw.RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func (s *AuthMiddlewareSuite) signToken(userID uint, role string) string {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": "jdoe",
		"role":     role,
		"exp":      time.Now().Add(time.Hour).Unix(),
		"iat":      time.Now().Unix(),
		"nbf":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtCfg.Secret)
	require.NoError(s.T(), err)
	return signed
}

func (s *AuthMiddlewareSuite) request(path, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareSuite) TestMissingTokenIs401() {
	w := s.request("/me", "")

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Contains(s.T(), w.Body.String(), "UNAUTHENTICATED")
	assert.Contains(s.T(), w.Body.String(), "token_missing")
}

func (s *AuthMiddlewareSuite) TestNonBearerHeaderIs401() {
	w := s.request("/me", "Basic dXNlcjpwYXNz")

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Contains(s.T(), w.Body.String(), "token_missing")
}

func (s *AuthMiddlewareSuite) TestRejectedTokenIs401() {
	w := s.request("/me", "Bearer not-a-real-token")

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Contains(s.T(), w.Body.String(), "token_rejected")
}

func (s *AuthMiddlewareSuite) TestExpiredTokenIs401() {
	claims := jwt.MapClaims{
		"user_id": uint(1),
		"exp":     time.Now().Add(-time.Hour).Unix(),
		"iat":     time.Now().Add(-2 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtCfg.Secret)
	require.NoError(s.T(), err)

	w := s.request("/me", "Bearer "+signed)

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Contains(s.T(), w.Body.String(), "token_rejected")
}

func (s *AuthMiddlewareSuite) TestValidTokenPasses() {
	w := s.request("/me", "Bearer "+s.signToken(42, "reader"))

	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Contains(s.T(), w.Body.String(), "42")
}

func (s *AuthMiddlewareSuite) TestRoleIsReadFromStoreNotClaim() {
	// The token claims admin, but the persisted row says reader.
	s.repo.users[7] = &models.User{ID: 7, Role: models.RoleReader, IsActive: true}

	w := s.request("/admin-only", "Bearer "+s.signToken(7, "admin"))

	assert.Equal(s.T(), http.StatusForbidden, w.Code)
	assert.Contains(s.T(), w.Body.String(), "FORBIDDEN")
}

func (s *AuthMiddlewareSuite) TestAdminRolePasses() {
	s.repo.users[7] = &models.User{ID: 7, Role: models.RoleAdmin, IsActive: true}

	w := s.request("/admin-only", "Bearer "+s.signToken(7, "admin"))

	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *AuthMiddlewareSuite) TestMissingUserRowIs403() {
	w := s.request("/admin-only", "Bearer "+s.signToken(99, "admin"))

	assert.Equal(s.T(), http.StatusForbidden, w.Code)
}

func (s *AuthMiddlewareSuite) TestDeactivatedUserIs403() {
	s.repo.users[7] = &models.User{ID: 7, Role: models.RoleAdmin, IsActive: false}

	w := s.request("/admin-only", "Bearer "+s.signToken(7, "admin"))

	assert.Equal(s.T(), http.StatusForbidden, w.Code)
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}
