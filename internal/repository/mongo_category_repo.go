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

type mongoCategoryRepository struct {
	col *mongo.Collection
	log *logrus.Logger
}

func NewMongoCategoryRepository(database *mongo.Database, logger *logrus.Logger) domain.CategoryRepository {
	return &mongoCategoryRepository{
		col: database.Collection("categories"),
		log: logger,
	}
}

func (r *mongoCategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	now := time.Now().UTC()
	category.ID = primitive.NewObjectID()
	category.CreatedAt = now
	category.UpdatedAt = now

	_, err := r.col.InsertOne(ctx, category)
	if err != nil {
		r.log.Errorf("Failed to create category '%s': %v", category.Name, err)
		return nil, fmt.Errorf("could not create category: %w", err)
	}

	r.log.Infof("Category created successfully with ID: %s, Name: %s", category.ID.Hex(), category.Name)
	return category, nil
}

// FindByID receives the raw path parameter. A malformed id fails the
// ObjectID conversion here and surfaces as a storage error, not as a
// bad-request: category lookups are not pre-validated.
func (r *mongoCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		r.log.Errorf("Failed to cast category ID '%s': %v", id, err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}

	category := &domain.Category{}
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warnf("Category with ID %s not found", id)
			return nil, domain.ErrCategoryNotFound
		}
		r.log.Errorf("Failed to get category by ID %s: %v", id, err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}
	return category, nil
}

func (r *mongoCategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	category := &domain.Category{}
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warnf("Category with name '%s' not found", name)
			return nil, domain.ErrCategoryNotFound
		}
		r.log.Errorf("Failed to find category by name '%s': %v", name, err)
		return nil, fmt.Errorf("could not find category by name: %w", err)
	}
	return category, nil
}

func (r *mongoCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []domain.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		r.log.Errorf("Failed to decode categories: %v", err)
		return nil, fmt.Errorf("error decoding categories: %w", err)
	}

	r.log.Infof("Retrieved %d categories", len(categories))
	return categories, nil
}

func (r *mongoCategoryRepository) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	category.UpdatedAt = time.Now().UTC()

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		r.log.Errorf("Failed to update category ID %s: %v", category.ID.Hex(), err)
		return nil, fmt.Errorf("could not update category: %w", err)
	}
	if result.MatchedCount == 0 {
		r.log.Warnf("Category with ID %s not found for update", category.ID.Hex())
		return nil, domain.ErrCategoryNotFound
	}

	r.log.Infof("Category updated successfully with ID: %s", category.ID.Hex())
	return category, nil
}

// Delete removes the document permanently. Categories have no soft-delete
// state.
func (r *mongoCategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		r.log.Errorf("Failed to cast category ID '%s': %v", id, err)
		return fmt.Errorf("could not delete category: %w", err)
	}

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.log.Errorf("Failed to delete category ID %s: %v", id, err)
		return fmt.Errorf("could not delete category: %w", err)
	}
	if result.DeletedCount == 0 {
		r.log.Warnf("Attempted to delete non-existent category ID %s", id)
		return domain.ErrCategoryNotFound
	}

	r.log.Infof("Category deleted successfully with ID: %s", id)
	return nil
}
