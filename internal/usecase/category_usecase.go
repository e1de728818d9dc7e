package usecase

import (
	"context"
	"fmt"

	"github.com/Mo7amed-Boukab/E-Market-API/internal/domain"

	"github.com/sirupsen/logrus"
)

type CategoryUseCase interface {
	CreateCategory(ctx context.Context, payload map[string]interface{}) (*domain.Category, error)
	GetAllCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, payload map[string]interface{}) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(repo domain.CategoryRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: repo,
		log:          logger,
	}
}

// CreateCategory requires a name; uniqueness is not enforced.
func (uc *categoryUseCase) CreateCategory(ctx context.Context, payload map[string]interface{}) (*domain.Category, error) {
	name, _ := payload["name"].(string)
	if name == "" {
		uc.log.Warn("Use Case: Attempted to create category with empty name")
		return nil, domain.ErrCategoryNameRequired
	}

	createdCategory, err := uc.categoryRepo.Create(ctx, &domain.Category{Name: name})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category '%s' created successfully with ID %s", createdCategory.Name, createdCategory.ID.Hex())
	return createdCategory, nil
}

func (uc *categoryUseCase) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, fmt.Errorf("could not retrieve categories: %w", err)
	}

	uc.log.Infof("Use Case: Retrieved %d categories", len(categories))
	return categories, nil
}

// GetCategoryByID passes the raw id through: no format pre-check, a
// malformed id comes back from the repository as a storage error.
func (uc *categoryUseCase) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	category, err := uc.categoryRepo.FindByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get category ID %s: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category retrieved successfully for ID %s", id)
	return category, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id string, payload map[string]interface{}) (*domain.Category, error) {
	name, _ := payload["name"].(string)
	if name == "" {
		uc.log.Warnf("Use Case: Attempted to update category ID %s with empty name", id)
		return nil, domain.ErrCategoryNameRequired
	}

	category, err := uc.categoryRepo.FindByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Category ID %s not found for update: %v", id, err)
		return nil, err
	}

	category.Name = name
	updatedCategory, err := uc.categoryRepo.Update(ctx, category)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update category ID %s: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category updated successfully for ID %s", id)
	return updatedCategory, nil
}

// DeleteCategory removes the record permanently after an existence check.
// The check and the delete are separate store calls, not a transaction.
func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	if _, err := uc.categoryRepo.FindByID(ctx, id); err != nil {
		uc.log.Warnf("Use Case: Category ID %s not found for delete: %v", id, err)
		return err
	}

	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Repository failed to delete category ID %s: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Category deleted successfully for ID %s", id)
	return nil
}
