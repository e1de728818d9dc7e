package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Mo7amed-Boukab/E-Market-API/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateUser_DefaultsRole(t *testing.T) {
	var created *domain.User
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			user.ID = primitive.NewObjectID()
			created = user
			return user, nil
		},
	}
	uc := NewUserUseCase(repo, testLogger())

	user, err := uc.CreateUser(context.Background(), map[string]interface{}{
		"fullname": "Alice Smith",
		"email":    "alice@example.com",
		"password": "secret",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Role != "user" {
		t.Fatalf("expected default role 'user', got %q", user.Role)
	}
	if user.Deleted {
		t.Fatal("new user must not be deleted")
	}
	if created.Password != "secret" {
		t.Fatalf("password must be stored as given, got %q", created.Password)
	}
}

func TestCreateUser_MissingFields(t *testing.T) {
	emailChecked := false
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			emailChecked = true
			return nil, domain.ErrUserNotFound
		},
	}
	uc := NewUserUseCase(repo, testLogger())

	_, err := uc.CreateUser(context.Background(), map[string]interface{}{
		"email": "alice@example.com",
	})
	if !errors.Is(err, domain.ErrUserFieldsRequired) {
		t.Fatalf("expected ErrUserFieldsRequired, got %v", err)
	}
	if emailChecked {
		t.Fatal("uniqueness check must not run for incomplete payloads")
	}
}

// A soft-deleted user still holds their email: the existence query does not
// filter on the deleted flag.
func TestCreateUser_DuplicateEmail_SoftDeletedHolder(t *testing.T) {
	createCalled := false
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: primitive.NewObjectID(), Email: email, Deleted: true}, nil
		},
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			createCalled = true
			return user, nil
		},
	}
	uc := NewUserUseCase(repo, testLogger())

	_, err := uc.CreateUser(context.Background(), map[string]interface{}{
		"fullname": "Alice",
		"email":    "alice@example.com",
		"password": "secret",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if createCalled {
		t.Fatal("no write may happen on a duplicate email")
	}
}

// Soft-deleted users stay visible in listings: DeleteUser writes the flag
// but no read path honors it.
func TestGetAllUsers_IncludesSoftDeleted(t *testing.T) {
	repo := &mockUserRepo{
		findAllFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{
				{Email: "a@example.com"},
				{Email: "b@example.com", Deleted: true},
			}, nil
		},
	}
	uc := NewUserUseCase(repo, testLogger())

	users, err := uc.GetAllUsers(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected soft-deleted users to be included, got %d users", len(users))
	}
}

func TestGetUserByID_SoftDeletedStillRetrievable(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, got primitive.ObjectID) (*domain.User, error) {
			return &domain.User{ID: got, Deleted: true}, nil
		},
	}
	uc := NewUserUseCase(repo, testLogger())

	user, err := uc.GetUserByID(context.Background(), id)
	if err != nil {
		t.Fatalf("a soft-deleted user remains retrievable by id: %v", err)
	}
	if !user.Deleted {
		t.Fatal("expected the deleted flag to be set")
	}
}

func TestDeleteUser_SetsFlag(t *testing.T) {
	id := primitive.NewObjectID()
	var saved *domain.User
	repo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, got primitive.ObjectID) (*domain.User, error) {
			return &domain.User{ID: got, Email: "a@example.com"}, nil
		},
		updateFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			saved = user
			return user, nil
		},
	}
	uc := NewUserUseCase(repo, testLogger())

	if err := uc.DeleteUser(context.Background(), id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if saved == nil || !saved.Deleted {
		t.Fatal("expected the deleted flag to be persisted")
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	uc := NewUserUseCase(repo, testLogger())

	err := uc.DeleteUser(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
