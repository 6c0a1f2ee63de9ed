package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок
админ-панели: авторизация, вакансии, пользователи, бронирования.
*/

// =========================================================================
// Фабричные ФУНКЦИИ (оборачивание ошибок репозиториев)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (частые, статичные ошибки)
// =========================================================================

// ErrInvalidCredentials - неверная пара email/пароль при входе админа.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - токен отсутствует, просрочен или не прошел проверку подписи.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Not authorized, token failed",
	http.StatusUnauthorized,
)

// ErrNotAdmin - аутентифицированный вызов без роли admin.
var ErrNotAdmin = New(
	CodeForbidden,
	"auth",
	"Not authorized as admin",
	http.StatusForbidden,
)

// --- Вакансии ---

var ErrJobNotFound = New(
	CodeNotFound,
	"jobs",
	"Job not found",
	http.StatusNotFound,
)

// --- Пользователи ---

var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)

// --- Бронирования ---

var ErrBookingNotFound = New(
	CodeNotFound,
	"bookings",
	"Booking not found",
	http.StatusNotFound,
)

// ErrInvalidPaymentStatus - значение вне допустимого перечисления платежных статусов.
var ErrInvalidPaymentStatus = New(
	CodeInvalidStatus,
	"bookings",
	"Invalid payment status",
	http.StatusBadRequest,
)
