package repositories

import (
	"context"
	"errors"

	"haatbazar_admin/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrRegistrationNotFound = errors.New("registration not found")

// RegistrationRepository - доступ к анкетам работников и работодателей.
// Связь с users строго 1:1 через userId.
type RegistrationRepository interface {
	FindWorkerByUserID(ctx context.Context, userID primitive.ObjectID) (*models.WorkerRegistration, error)
	FindEmployerByUserID(ctx context.Context, userID primitive.ObjectID) (*models.EmployerRegistration, error)

	// SetWorkerVerified / SetEmployerVerified выставляют флаг модерации.
	// Отсутствие анкеты не считается ошибкой: операция идемпотентна
	// и повторное применение тоже отвечает успехом.
	SetWorkerVerified(ctx context.Context, userID primitive.ObjectID, verified bool) error
	SetEmployerVerified(ctx context.Context, userID primitive.ObjectID, verified bool) error

	DeleteWorkerByUserID(ctx context.Context, userID primitive.ObjectID) error
	DeleteEmployerByUserID(ctx context.Context, userID primitive.ObjectID) error
}

type RegistrationRepositoryImpl struct {
	workers   *mongo.Collection
	employers *mongo.Collection
}

func NewRegistrationRepository(db *mongo.Database) RegistrationRepository {
	return &RegistrationRepositoryImpl{
		workers:   db.Collection("workerRegistration"),
		employers: db.Collection("employerRegistration"),
	}
}

func (r *RegistrationRepositoryImpl) FindWorkerByUserID(ctx context.Context, userID primitive.ObjectID) (*models.WorkerRegistration, error) {
	var reg models.WorkerRegistration
	if err := r.workers.FindOne(ctx, bson.M{"userId": userID}).Decode(&reg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepositoryImpl) FindEmployerByUserID(ctx context.Context, userID primitive.ObjectID) (*models.EmployerRegistration, error) {
	var reg models.EmployerRegistration
	if err := r.employers.FindOne(ctx, bson.M{"userId": userID}).Decode(&reg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepositoryImpl) SetWorkerVerified(ctx context.Context, userID primitive.ObjectID, verified bool) error {
	_, err := r.workers.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"isVerified": verified}},
	)
	return err
}

func (r *RegistrationRepositoryImpl) SetEmployerVerified(ctx context.Context, userID primitive.ObjectID, verified bool) error {
	_, err := r.employers.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"isVerified": verified}},
	)
	return err
}

func (r *RegistrationRepositoryImpl) DeleteWorkerByUserID(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.workers.DeleteOne(ctx, bson.M{"userId": userID})
	return err
}

func (r *RegistrationRepositoryImpl) DeleteEmployerByUserID(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.employers.DeleteOne(ctx, bson.M{"userId": userID})
	return err
}
