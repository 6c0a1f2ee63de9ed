package services

import (
	"context"

	"haatbazar_admin/internal/models"
	"haatbazar_admin/internal/repositories"
	"haatbazar_admin/pkg/apperrors"
)

type BookingService interface {
	List(ctx context.Context) ([]models.Booking, error)
	ListPending(ctx context.Context) ([]models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)

	// Approve выставляет adminApproval и переводит статус в approved.
	// workerApproval не затрагивается: полное подтверждение бронирования
	// требует обоих флагов.
	Approve(ctx context.Context, id string, adminNotes string) (*models.Booking, error)
	// Reject сбрасывает adminApproval независимо от прежнего значения
	Reject(ctx context.Context, id string, rejectionReason string) (*models.Booking, error)
	// UpdatePayment меняет только платежный статус, статусная модель
	// бронирования и флаги подтверждения не затрагиваются
	UpdatePayment(ctx context.Context, id string, paymentStatus string) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
}

type BookingServiceImpl struct {
	bookingRepo repositories.BookingRepository
}

func NewBookingService(bookingRepo repositories.BookingRepository) BookingService {
	return &BookingServiceImpl{bookingRepo: bookingRepo}
}

func (s *BookingServiceImpl) List(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return bookings, nil
}

func (s *BookingServiceImpl) ListPending(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.FindPending(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return bookings, nil
}

func (s *BookingServiceImpl) Get(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrapError(err)
	}
	return booking, nil
}

func (s *BookingServiceImpl) Approve(ctx context.Context, id string, adminNotes string) (*models.Booking, error) {
	booking, err := s.bookingRepo.Approve(ctx, id, adminNotes)
	if err != nil {
		return nil, s.wrapError(err)
	}
	return booking, nil
}

func (s *BookingServiceImpl) Reject(ctx context.Context, id string, rejectionReason string) (*models.Booking, error) {
	if rejectionReason == "" {
		rejectionReason = "No reason provided"
	}

	booking, err := s.bookingRepo.Reject(ctx, id, rejectionReason)
	if err != nil {
		return nil, s.wrapError(err)
	}
	return booking, nil
}

func (s *BookingServiceImpl) UpdatePayment(ctx context.Context, id string, paymentStatus string) (*models.Booking, error) {
	if !models.IsValidPaymentStatus(paymentStatus) {
		return nil, apperrors.ErrInvalidPaymentStatus
	}

	booking, err := s.bookingRepo.UpdatePayment(ctx, id, models.PaymentStatus(paymentStatus))
	if err != nil {
		return nil, s.wrapError(err)
	}
	return booking, nil
}

func (s *BookingServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return s.wrapError(err)
	}
	return nil
}

func (s *BookingServiceImpl) wrapError(err error) error {
	if apperrors.Is(err, repositories.ErrBookingNotFound) {
		return apperrors.ErrBookingNotFound
	}
	return apperrors.DatabaseError(err)
}
