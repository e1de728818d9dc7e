package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mo7amed-Boukab/E-Market-API/internal/domain"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserUseCase interface {
	CreateUser(ctx context.Context, payload map[string]interface{}) (*domain.User, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

type userUseCase struct {
	userRepo domain.UserRepository
	log      *logrus.Logger
}

func NewUserUseCase(repo domain.UserRepository, logger *logrus.Logger) UserUseCase {
	return &userUseCase{
		userRepo: repo,
		log:      logger,
	}
}

func (uc *userUseCase) CreateUser(ctx context.Context, payload map[string]interface{}) (*domain.User, error) {
	fullname, _ := payload["fullname"].(string)
	email, _ := payload["email"].(string)
	password, _ := payload["password"].(string)
	role, _ := payload["role"].(string)

	if fullname == "" || email == "" || password == "" {
		uc.log.Warn("Use Case: Attempted to create user with missing required fields")
		return nil, domain.ErrUserFieldsRequired
	}

	// Plain existence query: a soft-deleted holder still blocks the email.
	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		uc.log.Errorf("Use Case: Failed to check email existence for '%s': %v", email, err)
		return nil, fmt.Errorf("could not check email existence: %w", err)
	}
	if existing != nil {
		uc.log.Warnf("Use Case: Attempted to create user with duplicate email: %s", email)
		return nil, domain.ErrEmailTaken
	}

	if role == "" {
		role = domain.DefaultUserRole
	}

	newUser := &domain.User{
		Fullname: fullname,
		Email:    email,
		Password: password,
		Role:     role,
		Deleted:  false,
	}

	createdUser, err := uc.userRepo.Create(ctx, newUser)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create user '%s': %v", email, err)
		return nil, err
	}

	uc.log.Infof("Use Case: User created successfully with ID %s", createdUser.ID.Hex())
	return createdUser, nil
}

// GetAllUsers returns every persisted user. Soft-deleted users are included:
// the deleted flag is written by DeleteUser but never honored on reads.
func (uc *userUseCase) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	users, err := uc.userRepo.FindAll(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list users: %v", err)
		return nil, fmt.Errorf("could not retrieve users: %w", err)
	}

	uc.log.Infof("Use Case: Retrieved %d users", len(users))
	return users, nil
}

func (uc *userUseCase) GetUserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get user ID %s: %v", id.Hex(), err)
		return nil, err
	}

	uc.log.Infof("Use Case: User retrieved successfully for ID %s", id.Hex())
	return user, nil
}

// DeleteUser flips the deleted flag and persists the record (soft delete).
// No read path filters on the flag, so a deleted user stays visible.
func (uc *userUseCase) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: User ID %s not found for delete: %v", id.Hex(), err)
		return err
	}

	user.Deleted = true
	if _, err := uc.userRepo.Update(ctx, user); err != nil {
		uc.log.Errorf("Use Case: Repository failed to soft-delete user ID %s: %v", id.Hex(), err)
		return err
	}

	uc.log.Infof("Use Case: User soft-deleted successfully for ID %s", id.Hex())
	return nil
}
