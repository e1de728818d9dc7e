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

type mongoUserRepository struct {
	col *mongo.Collection
	log *logrus.Logger
}

func NewMongoUserRepository(database *mongo.Database, logger *logrus.Logger) domain.UserRepository {
	return &mongoUserRepository{
		col: database.Collection("users"),
		log: logger,
	}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.col.InsertOne(ctx, user)
	if err != nil {
		r.log.Errorf("Failed to create user '%s': %v", user.Email, err)
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	r.log.Infof("User created successfully with ID: %s, Email: %s", user.ID.Hex(), user.Email)
	return user, nil
}

// FindByEmail does not filter on the deleted flag: the email uniqueness
// check treats a soft-deleted holder as an existing user.
func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		r.log.Errorf("Failed to find user by email '%s': %v", email, err)
		return nil, fmt.Errorf("could not find user by email: %w", err)
	}
	return user, nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user := &domain.User{}
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warnf("User with ID %s not found", id.Hex())
			return nil, domain.ErrUserNotFound
		}
		r.log.Errorf("Failed to get user by ID %s: %v", id.Hex(), err)
		return nil, fmt.Errorf("could not get user by id: %w", err)
	}
	return user, nil
}

// FindAll returns every user, soft-deleted ones included.
func (r *mongoUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		r.log.Errorf("Failed to list users: %v", err)
		return nil, fmt.Errorf("could not list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		r.log.Errorf("Failed to decode users: %v", err)
		return nil, fmt.Errorf("error decoding users: %w", err)
	}

	r.log.Infof("Retrieved %d users", len(users))
	return users, nil
}

func (r *mongoUserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.UpdatedAt = time.Now().UTC()

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		r.log.Errorf("Failed to update user ID %s: %v", user.ID.Hex(), err)
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if result.MatchedCount == 0 {
		r.log.Warnf("User with ID %s not found for update", user.ID.Hex())
		return nil, domain.ErrUserNotFound
	}

	r.log.Infof("User updated successfully with ID: %s", user.ID.Hex())
	return user, nil
}
