package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"haatbazar_admin/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrAdminNotFound = errors.New("admin not found")

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminInfo, error)
	FindByID(ctx context.Context, id string) (*models.AdminInfo, error)
	Create(ctx context.Context, admin *models.AdminInfo) error
	Count(ctx context.Context) (int64, error)
}

type AdminRepositoryImpl struct {
	col *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) AdminRepository {
	return &AdminRepositoryImpl{col: db.Collection("adminInfo")}
}

// FindByEmail ищет админа по email (регистронезависимо - email хранится в lowercase)
func (r *AdminRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.AdminInfo, error) {
	var admin models.AdminInfo
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	if err := r.col.FindOne(ctx, filter).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) FindByID(ctx context.Context, id string) (*models.AdminInfo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrAdminNotFound
	}

	var admin models.AdminInfo
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) Create(ctx context.Context, admin *models.AdminInfo) error {
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, admin)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		admin.ID = oid
	}
	return nil
}

func (r *AdminRepositoryImpl) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
