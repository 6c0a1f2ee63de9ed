package dto

import "go.mongodb.org/mongo-driver/bson/primitive"

// LoginRequest - запрос входа админа
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse - ответ на успешный вход.
// Форма повторяет контракт старой админ-панели: type/status статичны.
type LoginResponse struct {
	ID     primitive.ObjectID `json:"_id"`
	Name   string             `json:"name"`
	Email  string             `json:"email"`
	Type   string             `json:"type"`
	Status string             `json:"status"`
	Token  string             `json:"token"`
}
