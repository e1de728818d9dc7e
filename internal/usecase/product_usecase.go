package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Mo7amed-Boukab/E-Market-API/internal/domain"
	"github.com/Mo7amed-Boukab/E-Market-API/internal/validation"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductUseCase interface {
	CreateProduct(ctx context.Context, payload map[string]interface{}) (*domain.Product, error)
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
}

type productUseCase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, cRepo domain.CategoryRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		log:          logger,
	}
}

// CreateProduct requires title, description, price, stock and category to be
// truthy: a price or stock of zero counts as missing here, unlike on update.
// The category must resolve by name before the write; the lookup and the
// insert are separate store calls, not a transaction.
func (uc *productUseCase) CreateProduct(ctx context.Context, payload map[string]interface{}) (*domain.Product, error) {
	title, _ := payload["title"].(string)
	description, _ := payload["description"].(string)
	category, _ := payload["category"].(string)
	price, priceOK := asNumber(payload["price"])
	stock, stockOK := asNumber(payload["stock"])

	if title == "" || description == "" || category == "" ||
		!priceOK || price == 0 || !stockOK || stock == 0 {
		uc.log.Warn("Use Case: Attempted to create product with missing required fields")
		return nil, domain.ErrProductFieldsRequired
	}

	if _, err := uc.categoryRepo.FindByName(ctx, strings.TrimSpace(category)); err != nil {
		uc.log.Warnf("Use Case: Category '%s' not found during product creation: %v", category, err)
		return nil, err
	}

	newProduct := &domain.Product{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Price:       price,
		Stock:       int(stock),
		Category:    strings.TrimSpace(category),
		ImageURL:    imageURLOrNil(payload["imageUrl"]),
		Deleted:     false,
	}

	createdProduct, err := uc.productRepo.Create(ctx, newProduct)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", newProduct.Title, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %s", createdProduct.Title, createdProduct.ID.Hex())
	return createdProduct, nil
}

func (uc *productUseCase) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := uc.productRepo.FindAll(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, fmt.Errorf("could not retrieve products: %w", err)
	}

	uc.log.Infof("Use Case: Retrieved %d products", len(products))
	return products, nil
}

// GetProductByID treats a soft-deleted product as absent.
func (uc *productUseCase) GetProductByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	product, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %s: %v", id.Hex(), err)
		return nil, err
	}
	if product.Deleted {
		uc.log.Warnf("Use Case: Product ID %s is soft-deleted", id.Hex())
		return nil, domain.ErrProductNotFound
	}

	uc.log.Infof("Use Case: Product retrieved successfully for ID %s", id.Hex())
	return product, nil
}

// UpdateProduct applies only the supplied fields. Textual fields use the
// non-empty policy; price, stock and imageUrl use the defined policy, so
// zero is a valid value here. A supplied category is re-checked against the
// store before it is applied.
func (uc *productUseCase) UpdateProduct(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*domain.Product, error) {
	product, err := uc.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if category, ok := validation.NonEmpty(payload, "category"); ok {
		if _, err := uc.categoryRepo.FindByName(ctx, category); err != nil {
			uc.log.Warnf("Use Case: Category '%s' not found during product update ID %s: %v", category, id.Hex(), err)
			return nil, err
		}
		product.Category = strings.TrimSpace(category)
	}

	if title, ok := validation.NonEmpty(payload, "title"); ok {
		product.Title = strings.TrimSpace(title)
	}
	if description, ok := validation.NonEmpty(payload, "description"); ok {
		product.Description = strings.TrimSpace(description)
	}
	if v, ok := validation.Defined(payload, "price"); ok {
		if price, numOK := asNumber(v); numOK {
			product.Price = price
		}
	}
	if v, ok := validation.Defined(payload, "stock"); ok {
		if stock, numOK := asNumber(v); numOK {
			product.Stock = int(stock)
		}
	}
	if v, ok := validation.Defined(payload, "imageUrl"); ok {
		product.ImageURL = imageURLOrNil(v)
	}

	updatedProduct, err := uc.productRepo.Update(ctx, product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update product ID %s: %v", id.Hex(), err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product updated successfully for ID %s", id.Hex())
	return updatedProduct, nil
}

// DeleteProduct flips the deleted flag and persists (soft delete). Reads
// honor the flag, so the product disappears from every endpoint.
func (uc *productUseCase) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	product, err := uc.GetProductByID(ctx, id)
	if err != nil {
		return err
	}

	product.Deleted = true
	if _, err := uc.productRepo.Update(ctx, product); err != nil {
		uc.log.Errorf("Use Case: Repository failed to soft-delete product ID %s: %v", id.Hex(), err)
		return err
	}

	uc.log.Infof("Use Case: Product soft-deleted successfully for ID %s", id.Hex())
	return nil
}

func asNumber(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

// imageURLOrNil keeps a non-empty string and turns anything falsy into nil.
func imageURLOrNil(v interface{}) *string {
	if s, ok := v.(string); ok && s != "" {
		return &s
	}
	return nil
}
