package repositories

import (
	"context"
	"errors"
	"time"

	"haatbazar_admin/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrJobNotFound = errors.New("job not found")

// JobCollection - дискриминатор коллекции-источника для approve/delete.
// Передается клиентом явно; неизвестное или пустое значение трактуется
// как общая коллекция jobs (так ведет себя фронтенд с первых версий).
type JobCollection string

const (
	CollectionJobs           JobCollection = "jobs"
	CollectionWorkerOffers   JobCollection = "workerjoboffers"
	CollectionEmployerOffers JobCollection = "employerjoboffers"
)

// BackfillResult - счетчики бэкфилла isApproved по коллекциям
type BackfillResult struct {
	Jobs           int64 `json:"jobs"`
	WorkerOffers   int64 `json:"workerOffers"`
	EmployerOffers int64 `json:"employerOffers"`
}

type JobRepository interface {
	FindGenericByApproval(ctx context.Context, approved bool) ([]models.Job, error)
	FindWorkerOffersByApproval(ctx context.Context, approved bool) ([]models.WorkerJobOffer, error)
	FindEmployerOffersByApproval(ctx context.Context, approved bool) ([]models.EmployerJobOffer, error)
	FindAllGeneric(ctx context.Context) ([]models.Job, error)

	CreateGeneric(ctx context.Context, job *models.Job) error
	SetApproved(ctx context.Context, collection JobCollection, id string) error
	UpdateGenericStatus(ctx context.Context, id string, status models.JobStatus) error
	Delete(ctx context.Context, collection JobCollection, id string) error

	// SetMissingApprovalFlags проставляет isApproved=false там, где поле
	// отсутствует. Записи с уже существующим полем не трогаются, поэтому
	// повторный запуск ничего не меняет.
	SetMissingApprovalFlags(ctx context.Context) (*BackfillResult, error)
}

type JobRepositoryImpl struct {
	jobs           *mongo.Collection
	workerOffers   *mongo.Collection
	employerOffers *mongo.Collection
}

func NewJobRepository(db *mongo.Database) JobRepository {
	return &JobRepositoryImpl{
		jobs:           db.Collection("jobs"),
		workerOffers:   db.Collection("workerjoboffers"),
		employerOffers: db.Collection("employerjoboffers"),
	}
}

// byCollection выбирает mongo-коллекцию по дискриминатору
func (r *JobRepositoryImpl) byCollection(collection JobCollection) *mongo.Collection {
	switch collection {
	case CollectionWorkerOffers:
		return r.workerOffers
	case CollectionEmployerOffers:
		return r.employerOffers
	default:
		return r.jobs
	}
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

func (r *JobRepositoryImpl) FindGenericByApproval(ctx context.Context, approved bool) ([]models.Job, error) {
	cur, err := r.jobs.Find(ctx, bson.M{"isApproved": approved}, newestFirst())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var jobs []models.Job
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) FindWorkerOffersByApproval(ctx context.Context, approved bool) ([]models.WorkerJobOffer, error) {
	cur, err := r.workerOffers.Find(ctx, bson.M{"isApproved": approved}, newestFirst())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var offers []models.WorkerJobOffer
	if err := cur.All(ctx, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *JobRepositoryImpl) FindEmployerOffersByApproval(ctx context.Context, approved bool) ([]models.EmployerJobOffer, error) {
	cur, err := r.employerOffers.Find(ctx, bson.M{"isApproved": approved}, newestFirst())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var offers []models.EmployerJobOffer
	if err := cur.All(ctx, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *JobRepositoryImpl) FindAllGeneric(ctx context.Context) ([]models.Job, error) {
	cur, err := r.jobs.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var jobs []models.Job
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) CreateGeneric(ctx context.Context, job *models.Job) error {
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	res, err := r.jobs.InsertOne(ctx, job)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		job.ID = oid
	}
	return nil
}

func (r *JobRepositoryImpl) SetApproved(ctx context.Context, collection JobCollection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrJobNotFound
	}

	res, err := r.byCollection(collection).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"isApproved": true, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) UpdateGenericStatus(ctx context.Context, id string, status models.JobStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrJobNotFound
	}

	res, err := r.jobs.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(ctx context.Context, collection JobCollection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrJobNotFound
	}

	res, err := r.byCollection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) SetMissingApprovalFlags(ctx context.Context) (*BackfillResult, error) {
	filter := bson.M{"isApproved": bson.M{"$exists": false}}
	update := bson.M{"$set": bson.M{"isApproved": false}}

	result := &BackfillResult{}

	res, err := r.jobs.UpdateMany(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	result.Jobs = res.ModifiedCount

	res, err = r.workerOffers.UpdateMany(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	result.WorkerOffers = res.ModifiedCount

	res, err = r.employerOffers.UpdateMany(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	result.EmployerOffers = res.ModifiedCount

	return result, nil
}
