package services_test

import (
	"context"
	"strings"
	"testing"

	"haatbazar_admin/internal/auth"
	"haatbazar_admin/internal/config"
	"haatbazar_admin/internal/models"
	"haatbazar_admin/internal/repositories"
	"haatbazar_admin/internal/services"
	"haatbazar_admin/internal/services/dto"
	"haatbazar_admin/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeAdminRepo - учетные записи админов в памяти
type fakeAdminRepo struct {
	admins []models.AdminInfo
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*models.AdminInfo, error) {
	email = strings.ToLower(email)
	for i := range f.admins {
		if f.admins[i].Email == email {
			return &f.admins[i], nil
		}
	}
	return nil, repositories.ErrAdminNotFound
}

func (f *fakeAdminRepo) FindByID(_ context.Context, id string) (*models.AdminInfo, error) {
	for i := range f.admins {
		if f.admins[i].ID.Hex() == id {
			return &f.admins[i], nil
		}
	}
	return nil, repositories.ErrAdminNotFound
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *models.AdminInfo) error {
	admin.ID = primitive.NewObjectID()
	f.admins = append(f.admins, *admin)
	return nil
}

func (f *fakeAdminRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.admins)), nil
}

func testConfig() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 1
	config.AppConfig = cfg
}

func seedAdmin(t *testing.T, repo *fakeAdminRepo, email, password string) *models.AdminInfo {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	admin := &models.AdminInfo{
		Email:    strings.ToLower(email),
		Password: hash,
		Name:     "Admin",
		Role:     "admin",
	}
	require.NoError(t, repo.Create(context.Background(), admin))
	return admin
}

// TestLogin_Success - валидная пара дает токен и статичную карточку
func TestLogin_Success(t *testing.T) {
	testConfig()

	repo := &fakeAdminRepo{}
	seedAdmin(t, repo, "admin@haatbazar.com", "secret123")

	svc := services.NewAuthService(repo)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@haatbazar.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "admin", res.Type)
	assert.Equal(t, "active", res.Status)
	assert.NotEmpty(t, res.Token)

	// Токен разбирается обратно в id того же админа
	claims, err := auth.ParseToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.ID.Hex(), claims.AdminID)
}

// TestLogin_WrongPassword - неверный пароль и незнакомый email
// дают одну и ту же ошибку
func TestLogin_WrongPassword(t *testing.T) {
	testConfig()

	repo := &fakeAdminRepo{}
	seedAdmin(t, repo, "admin@haatbazar.com", "secret123")

	svc := services.NewAuthService(repo)

	_, errWrongPass := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@haatbazar.com",
		Password: "wrong",
	})
	_, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@haatbazar.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, errWrongPass, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errWrongPass, errUnknown)
}
