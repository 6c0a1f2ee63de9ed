package dto

// ApproveBookingRequest - подтверждение бронирования админом
type ApproveBookingRequest struct {
	AdminNotes string `json:"adminNotes"`
}

// RejectBookingRequest - отклонение бронирования
type RejectBookingRequest struct {
	RejectionReason string `json:"rejectionReason"`
}

// UpdatePaymentRequest - смена платежного статуса
type UpdatePaymentRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}
