package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User - аккаунт конечного пользователя приложения (коллекция users).
// userType определяет, какая регистрационная запись к нему привязана;
// null означает незавершенный онбординг.
type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email           string             `bson:"email,omitempty" json:"email"`
	PhoneNumber     string             `bson:"phoneNumber,omitempty" json:"phoneNumber"`
	Password        string             `bson:"password,omitempty" json:"-"` // легаси-поле
	DisplayName     string             `bson:"displayName,omitempty" json:"displayName"`
	UserType        *UserType          `bson:"userType" json:"userType"`
	ProfileComplete bool               `bson:"profileComplete,omitempty" json:"profileComplete"`
	FirebaseUID     string             `bson:"firebaseUid,omitempty" json:"firebaseUid"`
	CreatedAt       time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}
