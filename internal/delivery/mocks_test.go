package delivery

import (
	"context"
	"io"

	"github.com/Mo7amed-Boukab/E-Market-API/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

type mockUserUseCase struct {
	createFn  func(ctx context.Context, payload map[string]interface{}) (*domain.User, error)
	getAllFn  func(ctx context.Context) ([]domain.User, error)
	getByIDFn func(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	deleteFn  func(ctx context.Context, id primitive.ObjectID) error
}

func (m *mockUserUseCase) CreateUser(ctx context.Context, payload map[string]interface{}) (*domain.User, error) {
	return m.createFn(ctx, payload)
}
func (m *mockUserUseCase) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	return m.getAllFn(ctx)
}
func (m *mockUserUseCase) GetUserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockUserUseCase) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	return m.deleteFn(ctx, id)
}

type mockCategoryUseCase struct {
	createFn  func(ctx context.Context, payload map[string]interface{}) (*domain.Category, error)
	getAllFn  func(ctx context.Context) ([]domain.Category, error)
	getByIDFn func(ctx context.Context, id string) (*domain.Category, error)
	updateFn  func(ctx context.Context, id string, payload map[string]interface{}) (*domain.Category, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockCategoryUseCase) CreateCategory(ctx context.Context, payload map[string]interface{}) (*domain.Category, error) {
	return m.createFn(ctx, payload)
}
func (m *mockCategoryUseCase) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	return m.getAllFn(ctx)
}
func (m *mockCategoryUseCase) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockCategoryUseCase) UpdateCategory(ctx context.Context, id string, payload map[string]interface{}) (*domain.Category, error) {
	return m.updateFn(ctx, id, payload)
}
func (m *mockCategoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockProductUseCase struct {
	createFn  func(ctx context.Context, payload map[string]interface{}) (*domain.Product, error)
	getAllFn  func(ctx context.Context) ([]domain.Product, error)
	getByIDFn func(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	updateFn  func(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*domain.Product, error)
	deleteFn  func(ctx context.Context, id primitive.ObjectID) error
}

func (m *mockProductUseCase) CreateProduct(ctx context.Context, payload map[string]interface{}) (*domain.Product, error) {
	return m.createFn(ctx, payload)
}
func (m *mockProductUseCase) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	return m.getAllFn(ctx)
}
func (m *mockProductUseCase) GetProductByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockProductUseCase) UpdateProduct(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*domain.Product, error) {
	return m.updateFn(ctx, id, payload)
}
func (m *mockProductUseCase) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	return m.deleteFn(ctx, id)
}
