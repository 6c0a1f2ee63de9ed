package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Офферы привязаны к автору через firebaseUid (внешний идентификатор
// провайдера аутентификации), а не через ссылку на users._id.
// Поэтому автор ищется вторичным запросом по users.firebaseUid.

// WorkerJobOffer - объявление работника о поиске работы (коллекция workerjoboffers)
type WorkerJobOffer struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirebaseUID    string             `bson:"firebaseUid,omitempty" json:"firebaseUid"`
	Title          string             `bson:"title,omitempty" json:"title"`
	Description    string             `bson:"description,omitempty" json:"description"`
	Skills         []string           `bson:"skills,omitempty" json:"skills"`
	Area           string             `bson:"area,omitempty" json:"area"`
	District       string             `bson:"district,omitempty" json:"district"`
	ExpectedSalary string             `bson:"expectedSalary,omitempty" json:"expectedSalary"`
	Availability   string             `bson:"availability,omitempty" json:"availability"`
	Experience     string             `bson:"experience,omitempty" json:"experience"`
	Status         string             `bson:"status,omitempty" json:"status"`
	IsApproved     bool               `bson:"isApproved" json:"isApproved"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// EmployerJobOffer - объявление работодателя (коллекция employerjoboffers)
type EmployerJobOffer struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirebaseUID    string             `bson:"firebaseUid,omitempty" json:"firebaseUid"`
	Title          string             `bson:"title,omitempty" json:"title"`
	Description    string             `bson:"description,omitempty" json:"description"`
	RequiredSkills []string           `bson:"requiredSkills,omitempty" json:"requiredSkills"`
	Area           string             `bson:"area,omitempty" json:"area"`
	District       string             `bson:"district,omitempty" json:"district"`
	Budget         string             `bson:"budget,omitempty" json:"budget"`
	Urgency        string             `bson:"urgency,omitempty" json:"urgency"`
	Duration       string             `bson:"duration,omitempty" json:"duration"`
	MarkedUrgent   bool               `bson:"markedUrgent,omitempty" json:"markedUrgent"`
	Status         string             `bson:"status,omitempty" json:"status"`
	Applicants     []string           `bson:"applicants,omitempty" json:"applicants"`
	IsApproved     bool               `bson:"isApproved" json:"isApproved"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}
