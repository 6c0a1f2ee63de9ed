package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"haatbazar_admin/internal/auth"
	"haatbazar_admin/internal/config"
	"haatbazar_admin/internal/middleware"
	"haatbazar_admin/internal/models"
	"haatbazar_admin/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubAdminRepo struct {
	admin *models.AdminInfo
}

func (s *stubAdminRepo) FindByEmail(_ context.Context, _ string) (*models.AdminInfo, error) {
	if s.admin == nil {
		return nil, repositories.ErrAdminNotFound
	}
	return s.admin, nil
}

func (s *stubAdminRepo) FindByID(_ context.Context, id string) (*models.AdminInfo, error) {
	if s.admin != nil && s.admin.ID.Hex() == id {
		return s.admin, nil
	}
	return nil, repositories.ErrAdminNotFound
}

func (s *stubAdminRepo) Create(_ context.Context, admin *models.AdminInfo) error {
	s.admin = admin
	return nil
}

func (s *stubAdminRepo) Count(_ context.Context) (int64, error) {
	if s.admin == nil {
		return 0, nil
	}
	return 1, nil
}

func setupRouter(repo repositories.AdminRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected",
		middleware.AuthMiddleware(repo),
		middleware.AdminMiddleware(),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"adminId": middleware.GetAdminID(c)})
		})
	return r
}

func setJWTConfig() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "middleware-test-secret"
	cfg.JWT.TTL = 1
	config.AppConfig = cfg
}

// TestAuthMiddleware_NoToken - запрос без заголовка отбивается с 401
func TestAuthMiddleware_NoToken(t *testing.T) {
	setJWTConfig()
	r := setupRouter(&stubAdminRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "no token")
}

// TestAuthMiddleware_BadToken - битый токен отбивается с 401
func TestAuthMiddleware_BadToken(t *testing.T) {
	setJWTConfig()
	r := setupRouter(&stubAdminRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token failed")
}

// TestAuthMiddleware_DeletedAdmin - живой токен удаленного админа
// больше не работает
func TestAuthMiddleware_DeletedAdmin(t *testing.T) {
	setJWTConfig()

	token, err := auth.GenerateToken(primitive.NewObjectID().Hex())
	require.NoError(t, err)

	r := setupRouter(&stubAdminRepo{}) // хранилище пустое

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestAdminMiddleware_WrongRole - токен валиден, но роль не admin
func TestAdminMiddleware_WrongRole(t *testing.T) {
	setJWTConfig()

	admin := &models.AdminInfo{
		ID:    primitive.NewObjectID(),
		Email: "support@haatbazar.com",
		Role:  "support",
	}
	token, err := auth.GenerateToken(admin.ID.Hex())
	require.NoError(t, err)

	r := setupRouter(&stubAdminRepo{admin: admin})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Not authorized as admin")
}

// TestAuthMiddleware_HappyPath - валидный токен пропускает запрос
// и кладет id админа в контекст
func TestAuthMiddleware_HappyPath(t *testing.T) {
	setJWTConfig()

	admin := &models.AdminInfo{
		ID:    primitive.NewObjectID(),
		Email: "admin@haatbazar.com",
		Role:  "admin",
	}
	token, err := auth.GenerateToken(admin.ID.Hex())
	require.NoError(t, err)

	r := setupRouter(&stubAdminRepo{admin: admin})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), admin.ID.Hex())
}
