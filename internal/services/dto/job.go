package dto

import (
	"time"

	"haatbazar_admin/internal/models"
	"haatbazar_admin/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobPoster - краткая карточка автора вакансии
type JobPoster struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email,omitempty"`
	Type  models.UserType    `json:"type"`
}

// JobView - единая нормализованная форма вакансии из любой из трех
// коллекций-источников. Collection сообщает фронтенду, куда адресовать
// approve/delete.
type JobView struct {
	ID          primitive.ObjectID         `json:"_id"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Type        models.UserType            `json:"type"`
	Status      string                     `json:"status"`
	Urgent      bool                       `json:"urgent"`
	Location    string                     `json:"location"`
	Budget      *int                       `json:"budget"`
	Skills      []string                   `json:"skills,omitempty"`
	Applicants  []string                   `json:"applicants,omitempty"`
	CreatedAt   time.Time                  `json:"createdAt"`
	IsApproved  bool                       `json:"isApproved"`
	PostedBy    *JobPoster                 `json:"postedBy"`
	Collection  repositories.JobCollection `json:"collection"`
}

// CreateJobRequest - создание вакансии общего вида
type CreateJobRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Type        models.UserType `json:"type" binding:"required,oneof=worker employer"`
	Urgent      bool            `json:"urgent"`
	Location    string          `json:"location" binding:"required"`
	Budget      *int            `json:"budget"`
}

// ApproveJobRequest - approve с явным указанием коллекции-источника
type ApproveJobRequest struct {
	Collection string `json:"collection"`
}

// UpdateJobStatusRequest - смена статуса вакансии общего вида
type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active closed completed"`
}
