package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminInfo - учетная запись админа (коллекция adminInfo).
// Создается только сидом при старте, публичной регистрации нет.
type AdminInfo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email     string             `bson:"email" json:"email"` // хранится в lowercase
	Password  string             `bson:"password" json:"-"`  // bcrypt хеш, никогда не отдается наружу
	Name      string             `bson:"name" json:"name"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}
