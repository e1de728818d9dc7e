package usecase

import (
	"context"
	"io"

	"github.com/Mo7amed-Boukab/E-Market-API/internal/domain"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	findByIDFn    func(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	findAllFn     func(ctx context.Context) ([]domain.User, error)
	updateFn      func(ctx context.Context, user *domain.User) (*domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	return m.findAllFn(ctx)
}
func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	return m.updateFn(ctx, user)
}

type mockCategoryRepo struct {
	createFn     func(ctx context.Context, category *domain.Category) (*domain.Category, error)
	findByIDFn   func(ctx context.Context, id string) (*domain.Category, error)
	findByNameFn func(ctx context.Context, name string) (*domain.Category, error)
	findAllFn    func(ctx context.Context) ([]domain.Category, error)
	updateFn     func(ctx context.Context, category *domain.Category) (*domain.Category, error)
	deleteFn     func(ctx context.Context, id string) error
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	return m.createFn(ctx, category)
}
func (m *mockCategoryRepo) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockCategoryRepo) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	return m.findByNameFn(ctx, name)
}
func (m *mockCategoryRepo) FindAll(ctx context.Context) ([]domain.Category, error) {
	return m.findAllFn(ctx)
}
func (m *mockCategoryRepo) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	return m.updateFn(ctx, category)
}
func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockProductRepo struct {
	createFn   func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	findByIDFn func(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	findAllFn  func(ctx context.Context) ([]domain.Product, error)
	updateFn   func(ctx context.Context, product *domain.Product) (*domain.Product, error)
}

func (m *mockProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return m.createFn(ctx, product)
}
func (m *mockProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockProductRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	return m.findAllFn(ctx)
}
func (m *mockProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return m.updateFn(ctx, product)
}
