package services

import (
	"context"

	"haatbazar_admin/internal/auth"
	"haatbazar_admin/internal/logger"
	"haatbazar_admin/internal/repositories"
	"haatbazar_admin/internal/services/dto"
	"haatbazar_admin/pkg/apperrors"
)

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	adminRepo repositories.AdminRepository
}

func NewAuthService(adminRepo repositories.AdminRepository) AuthService {
	return &AuthServiceImpl{adminRepo: adminRepo}
}

// Login - аутентификация админа
// Несуществующий email и неверный пароль неразличимы для клиента
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, admin.Password) {
		logger.CtxWarn(ctx, "admin login failed: wrong password", "email", admin.Email)
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(admin.ID.Hex())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		ID:     admin.ID,
		Name:   admin.Name,
		Email:  admin.Email,
		Type:   "admin",
		Status: "active",
		Token:  token,
	}, nil
}
