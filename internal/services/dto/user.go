package dto

import (
	"time"

	"haatbazar_admin/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserView - нормализованный профиль пользователя с данными анкеты.
// Списки verified и pending намеренно асимметричны: verified несет
// вычисляемые поля (рейтинг, счетчики работ), pending вместо них -
// только документы для проверки личности. Опциональные числовые поля
// сделаны указателями, чтобы отсутствие отличалось от нуля.
type UserView struct {
	ID        primitive.ObjectID `json:"_id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone"`
	Type      models.UserType    `json:"type"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	Location  string             `json:"location"`

	// Поля анкеты работника
	Skills       []string `json:"skills,omitempty"`
	Availability []string `json:"availability,omitempty"`

	// Поля анкеты работодателя
	FullName    string `json:"fullName,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Company     string `json:"company,omitempty"` // дубликат companyName для старого фронтенда
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	District    string `json:"district,omitempty"`

	// Вычисляемые поля (только verified-список)
	Rating          *float64 `json:"rating,omitempty"`
	TotalJobs       *int     `json:"totalJobs,omitempty"`
	CompletedJobs   *int     `json:"completedJobs,omitempty"`
	TotalJobsPosted *int     `json:"totalJobsPosted,omitempty"`
	ActiveJobs      *int     `json:"activeJobs,omitempty"`
	JobsCompleted   *int     `json:"jobsCompleted,omitempty"`
	IsVerified      *bool    `json:"isVerified,omitempty"`

	// Документы и медиа
	ProfilePhoto string `json:"profilePhoto,omitempty"`
	NIDFront     string `json:"nidFront,omitempty"`
	NIDBack      string `json:"nidBack,omitempty"`
	NIDNumber    string `json:"nidNumber,omitempty"`

	FirebaseUID string `json:"firebaseUid,omitempty"`

	// Полная анкета как есть
	RegistrationData interface{} `json:"registrationData,omitempty"`
}
