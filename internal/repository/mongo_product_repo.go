package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mo7amed-Boukab/E-Market-API/internal/domain"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoProductRepository struct {
	col *mongo.Collection
	log *logrus.Logger
}

func NewMongoProductRepository(database *mongo.Database, logger *logrus.Logger) domain.ProductRepository {
	return &mongoProductRepository{
		col: database.Collection("products"),
		log: logger,
	}
}

func (r *mongoProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	now := time.Now().UTC()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := r.col.InsertOne(ctx, product)
	if err != nil {
		r.log.Errorf("Failed to create product '%s': %v", product.Title, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}

	r.log.Infof("Product created successfully with ID: %s, Title: %s", product.ID.Hex(), product.Title)
	return product, nil
}

// FindByID returns the document whether or not it is soft-deleted; the use
// case decides what a deleted product means for the caller.
func (r *mongoProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	product := &domain.Product{}
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warnf("Product with ID %s not found", id.Hex())
			return nil, domain.ErrProductNotFound
		}
		r.log.Errorf("Failed to get product by ID %s: %v", id.Hex(), err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}
	return product, nil
}

// FindAll excludes soft-deleted products.
func (r *mongoProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	cursor, err := r.col.Find(ctx, bson.M{"deleted": false})
	if err != nil {
		r.log.Errorf("Failed to list products: %v", err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		r.log.Errorf("Failed to decode products: %v", err)
		return nil, fmt.Errorf("error decoding products: %w", err)
	}

	r.log.Infof("Retrieved %d products", len(products))
	return products, nil
}

func (r *mongoProductRepository) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.UpdatedAt = time.Now().UTC()

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		r.log.Errorf("Failed to update product ID %s: %v", product.ID.Hex(), err)
		return nil, fmt.Errorf("could not update product: %w", err)
	}
	if result.MatchedCount == 0 {
		r.log.Warnf("Product with ID %s not found for update", product.ID.Hex())
		return nil, domain.ErrProductNotFound
	}

	r.log.Infof("Product updated successfully with ID: %s", product.ID.Hex())
	return product, nil
}
