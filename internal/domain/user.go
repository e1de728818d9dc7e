package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultUserRole = "user"

type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Fullname  string             `json:"fullname" bson:"fullname"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"password" bson:"password"`
	Role      string             `json:"role" bson:"role"`
	Deleted   bool               `json:"deleted" bson:"deleted"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// UserRepository persists users. FindByEmail and FindAll do not filter on
// the deleted flag: a soft-deleted user still blocks their email and still
// shows up in listings.
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) (*User, error)
}
