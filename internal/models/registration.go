package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkerRegistration - анкета работника (коллекция workerRegistration).
// isVerified - единственный признак "одобрен/на модерации" для владельца.
type WorkerRegistration struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	FirebaseUID   string             `bson:"firebaseUid,omitempty" json:"firebaseUid"`
	Skills        []string           `bson:"skills,omitempty" json:"skills"`
	Availability  []string           `bson:"availability,omitempty" json:"availability"`
	IsVerified    bool               `bson:"isVerified" json:"isVerified"`
	Rating        float64            `bson:"rating,omitempty" json:"rating"`
	TotalJobs     int                `bson:"totalJobs,omitempty" json:"totalJobs"`
	CompletedJobs int                `bson:"completedJobs,omitempty" json:"completedJobs"`
	ProfilePhoto  string             `bson:"profilePhoto,omitempty" json:"profilePhoto"`
	NIDFront      string             `bson:"nidFront,omitempty" json:"nidFront"`
	NIDBack       string             `bson:"nidBack,omitempty" json:"nidBack"`
	NIDNumber     string             `bson:"nidNumber,omitempty" json:"nidNumber"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// EmployerRegistration - анкета работодателя (коллекция employerRegistration)
type EmployerRegistration struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	FirebaseUID    string             `bson:"firebaseUid,omitempty" json:"firebaseUid"`
	FullName       string             `bson:"fullName,omitempty" json:"fullName"`
	Email          string             `bson:"email,omitempty" json:"email"`
	PhoneNumber    string             `bson:"phoneNumber,omitempty" json:"phoneNumber"`
	CompanyName    string             `bson:"companyName,omitempty" json:"companyName"`
	Address        string             `bson:"address,omitempty" json:"address"`
	City           string             `bson:"city,omitempty" json:"city"`
	District       string             `bson:"district,omitempty" json:"district"`
	IsVerified     bool               `bson:"isVerified" json:"isVerified"`
	Rating         float64            `bson:"rating,omitempty" json:"rating"`
	TotalJobsPosted int               `bson:"totalJobsPosted,omitempty" json:"totalJobsPosted"`
	ActiveJobs     int                `bson:"activeJobs,omitempty" json:"activeJobs"`
	ProfilePhoto   string             `bson:"profilePhoto,omitempty" json:"profilePhoto"`
	NIDFront       string             `bson:"nidFront,omitempty" json:"nidFront"`
	NIDBack        string             `bson:"nidBack,omitempty" json:"nidBack"`
	NIDNumber      string             `bson:"nidNumber,omitempty" json:"nidNumber"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}
