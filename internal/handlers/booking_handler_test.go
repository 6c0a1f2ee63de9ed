package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"haatbazar_admin/internal/handlers"
	"haatbazar_admin/internal/models"
	"haatbazar_admin/internal/services"
	"haatbazar_admin/internal/validator"
	"haatbazar_admin/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeBookingService - сервис с одним бронированием
type fakeBookingService struct {
	booking models.Booking

	lastPaymentStatus string
	lastReason        string
}

func (f *fakeBookingService) List(_ context.Context) ([]models.Booking, error) {
	return []models.Booking{f.booking}, nil
}

func (f *fakeBookingService) ListPending(_ context.Context) ([]models.Booking, error) {
	return []models.Booking{f.booking}, nil
}

func (f *fakeBookingService) Get(_ context.Context, id string) (*models.Booking, error) {
	if id != f.booking.ID.Hex() {
		return nil, apperrors.ErrBookingNotFound
	}
	b := f.booking
	return &b, nil
}

func (f *fakeBookingService) Approve(_ context.Context, id string, adminNotes string) (*models.Booking, error) {
	if id != f.booking.ID.Hex() {
		return nil, apperrors.ErrBookingNotFound
	}
	b := f.booking
	b.AdminApproval = true
	b.AdminNotes = adminNotes
	return &b, nil
}

func (f *fakeBookingService) Reject(_ context.Context, id string, rejectionReason string) (*models.Booking, error) {
	if id != f.booking.ID.Hex() {
		return nil, apperrors.ErrBookingNotFound
	}
	f.lastReason = rejectionReason
	b := f.booking
	b.RejectionReason = rejectionReason
	return &b, nil
}

func (f *fakeBookingService) UpdatePayment(_ context.Context, id string, paymentStatus string) (*models.Booking, error) {
	if !models.IsValidPaymentStatus(paymentStatus) {
		return nil, apperrors.ErrInvalidPaymentStatus
	}
	if id != f.booking.ID.Hex() {
		return nil, apperrors.ErrBookingNotFound
	}
	f.lastPaymentStatus = paymentStatus
	b := f.booking
	b.PaymentStatus = models.PaymentStatus(paymentStatus)
	return &b, nil
}

func (f *fakeBookingService) Delete(_ context.Context, id string) error {
	if id != f.booking.ID.Hex() {
		return apperrors.ErrBookingNotFound
	}
	return nil
}

var _ services.BookingService = (*fakeBookingService)(nil)

func bookingTestRouter(svc services.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := handlers.NewBookingHandler(handlers.NewBaseHandler(validator.New()), svc)
	noop := func(c *gin.Context) { c.Next() }
	h.RegisterRoutes(r.Group("/api"), noop, noop)

	return r
}

// TestApproveBookingEndpoint - пустое тело валидно, ответ несет
// message и обновленное бронирование
func TestApproveBookingEndpoint(t *testing.T) {
	svc := &fakeBookingService{booking: models.Booking{
		ID:       primitive.NewObjectID(),
		JobTitle: "House painting",
	}}
	r := bookingTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/"+svc.booking.ID.Hex()+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Waiting for worker acceptance")
	assert.Contains(t, w.Body.String(), "House painting")
}

// TestUpdatePaymentEndpoint - paymentStatus обязателен
func TestUpdatePaymentEndpoint(t *testing.T) {
	svc := &fakeBookingService{booking: models.Booking{ID: primitive.NewObjectID()}}
	r := bookingTestRouter(svc)

	// Без тела
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/"+svc.booking.ID.Hex()+"/payment", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// С валидным статусом
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/bookings/"+svc.booking.ID.Hex()+"/payment",
		strings.NewReader(`{"paymentStatus":"paid"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "paid", svc.lastPaymentStatus)
	assert.Contains(t, w.Body.String(), "Payment status updated successfully")
}

// TestGetBookingEndpoint_NotFound - доменная 404 доезжает до клиента
func TestGetBookingEndpoint_NotFound(t *testing.T) {
	svc := &fakeBookingService{booking: models.Booking{ID: primitive.NewObjectID()}}
	r := bookingTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+primitive.NewObjectID().Hex(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
