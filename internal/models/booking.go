package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking - бронирование работника работодателем (коллекция WorkerBookingInfo).
// Статусная модель двойная: строка bookingStatus (+ легаси-зеркало status)
// и два независимых флага adminApproval/workerApproval. Полное подтверждение
// требует обоих флагов.
//
// Схема коллекции открытая: поля вне известного набора сохраняются
// через inline-карту Extra и не теряются при апдейтах.
type Booking struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id"`

	// Внешние идентификаторы сторон
	EmployerFirebaseUID string `bson:"employerFirebaseUid,omitempty" json:"employerFirebaseUid"`
	WorkerFirebaseUID   string `bson:"workerFirebaseUid,omitempty" json:"workerFirebaseUid"`

	// Легаси-дубликаты тех же идентификаторов
	EmployerUID string `bson:"employerUid,omitempty" json:"employerUid,omitempty"`
	WorkerUID   string `bson:"workerUid,omitempty" json:"workerUid,omitempty"`

	// Ссылка на оффер
	JobID            string `bson:"jobId,omitempty" json:"jobId,omitempty"`
	WorkerJobOfferID string `bson:"workerJobOfferId,omitempty" json:"workerJobOfferId,omitempty"`

	JobTitle       string `bson:"jobTitle,omitempty" json:"jobTitle,omitempty"`
	JobDescription string `bson:"jobDescription,omitempty" json:"jobDescription,omitempty"`

	EmployerName  string `bson:"employerName,omitempty" json:"employerName,omitempty"`
	WorkerName    string `bson:"workerName,omitempty" json:"workerName,omitempty"`
	WorkerPhone   string `bson:"workerPhone,omitempty" json:"workerPhone,omitempty"`
	EmployerPhone string `bson:"employerPhone,omitempty" json:"employerPhone,omitempty"`

	Area     string `bson:"area,omitempty" json:"area,omitempty"`
	District string `bson:"district,omitempty" json:"district,omitempty"`

	Budget      string `bson:"budget,omitempty" json:"budget,omitempty"`
	AgreedRate  string `bson:"agreedRate,omitempty" json:"agreedRate,omitempty"`
	RateType    string `bson:"rateType,omitempty" json:"rateType,omitempty"`
	TotalAmount string `bson:"totalAmount,omitempty" json:"totalAmount,omitempty"`

	Duration     string     `bson:"duration,omitempty" json:"duration,omitempty"`
	WorkDuration string     `bson:"workDuration,omitempty" json:"workDuration,omitempty"`
	StartDate    *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate      *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`

	PaymentStatus PaymentStatus `bson:"paymentStatus,omitempty" json:"paymentStatus"`
	PaymentMethod string        `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	PaymentAmount float64       `bson:"paymentAmount,omitempty" json:"paymentAmount,omitempty"`

	BookingStatus BookingStatus `bson:"bookingStatus,omitempty" json:"bookingStatus"`
	Status        string        `bson:"status,omitempty" json:"status"` // легаси-зеркало bookingStatus

	AdminApproval   bool   `bson:"adminApproval" json:"adminApproval"`
	WorkerApproval  bool   `bson:"workerApproval" json:"workerApproval"`
	IsApproved      bool   `bson:"isApproved,omitempty" json:"isApproved,omitempty"` // легаси-поле
	AdminNotes      string `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	RejectionReason string `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	Notes           string `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt"`

	// Неизвестные поля документа
	Extra map[string]interface{} `bson:",inline" json:"-"`
}
