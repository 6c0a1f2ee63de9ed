package handlers

import (
	"net/http"

	"haatbazar_admin/internal/services"
	"haatbazar_admin/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	*BaseHandler
	bookingService services.BookingService
}

func NewBookingHandler(base *BaseHandler, bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		BaseHandler:    base,
		bookingService: bookingService,
	}
}

// RegisterRoutes регистрирует маршруты бронирований
func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	bookings := rg.Group("/bookings")
	bookings.Use(authMW, adminMW)
	{
		bookings.GET("", h.List)
		bookings.GET("/pending", h.ListPending)
		bookings.GET("/:id", h.Get)
		bookings.PUT("/:id/approve", h.Approve)
		bookings.PUT("/:id/reject", h.Reject)
		bookings.PUT("/:id/payment", h.UpdatePayment)
		bookings.DELETE("/:id", h.Delete)
	}
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.bookingService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) ListPending(c *gin.Context) {
	bookings, err := h.bookingService.ListPending(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.bookingService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Approve(c *gin.Context) {
	// Заметки опциональны, пустое тело валидно
	var req dto.ApproveBookingRequest
	_ = c.ShouldBindJSON(&req)

	booking, err := h.bookingService.Approve(c.Request.Context(), c.Param("id"), req.AdminNotes)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking approved successfully. Waiting for worker acceptance.",
		"booking": booking,
	})
}

func (h *BookingHandler) Reject(c *gin.Context) {
	var req dto.RejectBookingRequest
	_ = c.ShouldBindJSON(&req)

	booking, err := h.bookingService.Reject(c.Request.Context(), c.Param("id"), req.RejectionReason)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking rejected successfully",
		"booking": booking,
	})
}

func (h *BookingHandler) UpdatePayment(c *gin.Context) {
	var req dto.UpdatePaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	booking, err := h.bookingService.UpdatePayment(c.Request.Context(), c.Param("id"), req.PaymentStatus)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment status updated successfully",
		"booking": booking,
	})
}

func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.bookingService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
