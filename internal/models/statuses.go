package models

type UserType string
type JobStatus string
type BookingStatus string
type PaymentStatus string

const (
	UserTypeWorker   UserType = "worker"
	UserTypeEmployer UserType = "employer"

	JobStatusActive    JobStatus = "active"
	JobStatusClosed    JobStatus = "closed"
	JobStatusCompleted JobStatus = "completed"

	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusAccepted  BookingStatus = "accepted"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
	// PaymentStatusPnding - опечатка, живущая в данных с первых релизов.
	// Принимаем как валидное значение ради обратной совместимости.
	PaymentStatusPnding PaymentStatus = "pnding"
)

// IsValidPaymentStatus проверяет значение против перечисления,
// включая легаси-значение "pnding"
func IsValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusPnding:
		return true
	}
	return false
}

// IsValidJobStatus проверяет статус вакансии
func IsValidJobStatus(s string) bool {
	switch JobStatus(s) {
	case JobStatusActive, JobStatusClosed, JobStatusCompleted:
		return true
	}
	return false
}
