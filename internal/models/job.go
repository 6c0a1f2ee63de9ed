package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job - вакансия общего вида (коллекция jobs).
// Единственная из трех коллекций-источников со store-нативной ссылкой
// на автора (postedBy -> users._id).
type Job struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description" json:"description"`
	PostedBy    primitive.ObjectID   `bson:"postedBy" json:"postedBy"`
	Type        UserType             `bson:"type" json:"type"`
	Status      JobStatus            `bson:"status" json:"status"`
	IsApproved  bool                 `bson:"isApproved" json:"isApproved"`
	Urgent      bool                 `bson:"urgent" json:"urgent"`
	Applicants  []primitive.ObjectID `bson:"applicants,omitempty" json:"applicants"`
	Location    string               `bson:"location" json:"location"`
	Budget      *int                 `bson:"budget,omitempty" json:"budget"`
	CreatedAt   time.Time            `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt,omitempty" json:"updatedAt"`
}
