package services

import (
	"context"

	"haatbazar_admin/internal/logger"
	"haatbazar_admin/internal/models"
	"haatbazar_admin/internal/repositories"
	"haatbazar_admin/internal/services/dto"
	"haatbazar_admin/pkg/apperrors"

	"golang.org/x/sync/errgroup"
)

type UserService interface {
	// List возвращает verified- или pending-срез пользователей.
	// Пользователь без анкеты не попадает ни в один из срезов:
	// признак верификации живет только на анкете, и без нее решения нет.
	List(ctx context.Context, wantVerified bool) ([]dto.UserView, error)
	Approve(ctx context.Context, id string) error
	Suspend(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	regRepo  repositories.RegistrationRepository
}

func NewUserService(userRepo repositories.UserRepository, regRepo repositories.RegistrationRepository) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		regRepo:  regRepo,
	}
}

func (s *UserServiceImpl) List(ctx context.Context, wantVerified bool) ([]dto.UserView, error) {
	users, err := s.userRepo.FindAllTyped(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	// Вторичные lookup'ы анкет идут параллельно; результат пишется
	// по индексу, чтобы сохранить порядок первичной выборки
	candidates := make([]*dto.UserView, len(users))

	var g errgroup.Group
	for i := range users {
		i := i
		g.Go(func() error {
			candidates[i] = s.enrichUser(ctx, &users[i], wantVerified)
			return nil
		})
	}
	g.Wait()

	views := make([]dto.UserView, 0, len(users))
	for _, v := range candidates {
		if v != nil {
			views = append(views, *v)
		}
	}
	return views, nil
}

// enrichUser присоединяет данные анкеты и решает, попадает ли
// пользователь в запрошенный срез. nil означает "не попадает":
// либо верификация не совпала с фильтром, либо анкеты нет вовсе.
func (s *UserServiceImpl) enrichUser(ctx context.Context, user *models.User, wantVerified bool) *dto.UserView {
	if user.UserType == nil {
		return nil
	}

	view := dto.UserView{
		ID:        user.ID,
		Name:      user.DisplayName,
		Email:     user.Email,
		Phone:     user.PhoneNumber,
		Type:      *user.UserType,
		CreatedAt: user.CreatedAt,
		Location:  "Not specified",
	}

	switch *user.UserType {
	case models.UserTypeWorker:
		reg, err := s.regRepo.FindWorkerByUserID(ctx, user.ID)
		if err != nil {
			s.logLookupFailure(ctx, user.ID.Hex(), err)
			return nil
		}
		if reg.IsVerified != wantVerified {
			return nil
		}

		view.Skills = reg.Skills
		view.Availability = reg.Availability
		view.ProfilePhoto = reg.ProfilePhoto
		view.NIDFront = reg.NIDFront
		view.NIDBack = reg.NIDBack
		view.NIDNumber = reg.NIDNumber
		view.FirebaseUID = reg.FirebaseUID
		view.RegistrationData = reg

		if wantVerified {
			view.Rating = &reg.Rating
			view.TotalJobs = &reg.TotalJobs
			view.CompletedJobs = &reg.CompletedJobs
			view.IsVerified = &reg.IsVerified
		}

	case models.UserTypeEmployer:
		reg, err := s.regRepo.FindEmployerByUserID(ctx, user.ID)
		if err != nil {
			s.logLookupFailure(ctx, user.ID.Hex(), err)
			return nil
		}
		if reg.IsVerified != wantVerified {
			return nil
		}

		view.FullName = reg.FullName
		view.CompanyName = reg.CompanyName
		view.Company = reg.CompanyName
		view.Address = reg.Address
		view.City = reg.City
		view.District = reg.District
		view.Location = formatLocation(reg.City, reg.District)
		view.ProfilePhoto = reg.ProfilePhoto
		view.NIDFront = reg.NIDFront
		view.NIDBack = reg.NIDBack
		view.NIDNumber = reg.NIDNumber
		view.FirebaseUID = reg.FirebaseUID
		view.RegistrationData = reg

		if reg.Email != "" {
			view.Email = reg.Email
		}
		if view.Phone == "" {
			view.Phone = reg.PhoneNumber
		}

		if wantVerified {
			view.Rating = &reg.Rating
			view.TotalJobsPosted = &reg.TotalJobsPosted
			view.ActiveJobs = &reg.ActiveJobs
			view.JobsCompleted = &reg.TotalJobsPosted
			view.IsVerified = &reg.IsVerified
		}

	default:
		return nil
	}

	if wantVerified {
		view.Status = "active"
	} else {
		view.Status = "pending"
	}
	return &view
}

func (s *UserServiceImpl) logLookupFailure(ctx context.Context, userID string, err error) {
	if apperrors.Is(err, repositories.ErrRegistrationNotFound) {
		return // анкеты нет - пользователь просто невидим в обоих срезах
	}
	logger.CtxWithError(ctx, "registration lookup failed, user excluded from listing", err, "user_id", userID)
}

// setVerified применяет флаг к анкете, привязанной к пользователю.
// Операция идемпотентна: повтор с тем же значением - no-op с успехом.
func (s *UserServiceImpl) setVerified(ctx context.Context, id string, verified bool) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.DatabaseError(err)
	}

	if user.UserType == nil {
		return nil
	}

	switch *user.UserType {
	case models.UserTypeWorker:
		err = s.regRepo.SetWorkerVerified(ctx, user.ID, verified)
	case models.UserTypeEmployer:
		err = s.regRepo.SetEmployerVerified(ctx, user.ID, verified)
	}
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *UserServiceImpl) Approve(ctx context.Context, id string) error {
	return s.setVerified(ctx, id, true)
}

// Suspend снимает верификацию; аккаунт при этом не трогается
func (s *UserServiceImpl) Suspend(ctx context.Context, id string) error {
	return s.setVerified(ctx, id, false)
}

// Activate - алиас approve, оставлен ради контракта старого фронтенда
func (s *UserServiceImpl) Activate(ctx context.Context, id string) error {
	return s.setVerified(ctx, id, true)
}

// Delete каскадно удаляет анкету и сам аккаунт
func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.DatabaseError(err)
	}

	if user.UserType != nil {
		switch *user.UserType {
		case models.UserTypeWorker:
			err = s.regRepo.DeleteWorkerByUserID(ctx, user.ID)
		case models.UserTypeEmployer:
			err = s.regRepo.DeleteEmployerByUserID(ctx, user.ID)
		}
		if err != nil {
			return apperrors.DatabaseError(err)
		}
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}
