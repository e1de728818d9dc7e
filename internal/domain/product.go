package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Stock       int                `json:"stock" bson:"stock"`
	Category    string             `json:"category" bson:"category"`
	ImageURL    *string            `json:"imageUrl" bson:"imageUrl"`
	Deleted     bool               `json:"deleted" bson:"deleted"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductRepository persists products. FindAll excludes soft-deleted
// products; FindByID returns the document regardless of the flag, the
// deleted check belongs to the use case.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) (*Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, product *Product) (*Product, error)
}
