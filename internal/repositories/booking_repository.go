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

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository interface {
	FindAll(ctx context.Context) ([]models.Booking, error)
	// FindPending возвращает бронирования, ожидающие решения админа:
	// статус pending (в любом из двух статусных полей) или легаси accepted,
	// и при этом adminApproval=false
	FindPending(ctx context.Context) ([]models.Booking, error)
	FindByID(ctx context.Context, id string) (*models.Booking, error)

	Approve(ctx context.Context, id string, adminNotes string) (*models.Booking, error)
	Reject(ctx context.Context, id string, rejectionReason string) (*models.Booking, error)
	UpdatePayment(ctx context.Context, id string, status models.PaymentStatus) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
}

type BookingRepositoryImpl struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) BookingRepository {
	// Историческое имя коллекции из мобильного приложения
	return &BookingRepositoryImpl{col: db.Collection("WorkerBookingInfo")}
}

func (r *BookingRepositoryImpl) FindAll(ctx context.Context) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepositoryImpl) FindPending(ctx context.Context) ([]models.Booking, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"bookingStatus": models.BookingStatusPending},
			{"status": "pending"},
			{"status": "accepted"},
		},
		"adminApproval": false,
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	var booking models.Booking
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// findOneAndUpdate возвращает обновленный документ; отсутствие матча -> ErrBookingNotFound
func (r *BookingRepositoryImpl) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) Approve(ctx context.Context, id string, adminNotes string) (*models.Booking, error) {
	// workerApproval намеренно не трогаем: полное подтверждение
	// требует отдельного согласия работника
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{
		"bookingStatus": models.BookingStatusApproved,
		"status":        string(models.BookingStatusApproved),
		"adminApproval": true,
		"adminNotes":    adminNotes,
		"updatedAt":     time.Now(),
	}})
}

func (r *BookingRepositoryImpl) Reject(ctx context.Context, id string, rejectionReason string) (*models.Booking, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{
		"bookingStatus":   models.BookingStatusRejected,
		"status":          string(models.BookingStatusRejected),
		"adminApproval":   false,
		"rejectionReason": rejectionReason,
		"updatedAt":       time.Now(),
	}})
}

func (r *BookingRepositoryImpl) UpdatePayment(ctx context.Context, id string, status models.PaymentStatus) (*models.Booking, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{
		"paymentStatus": status,
		"updatedAt":     time.Now(),
	}})
}

func (r *BookingRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrBookingNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}
