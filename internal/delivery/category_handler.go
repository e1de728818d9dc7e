package delivery

import (
	"errors"
	"net/http"

	"github.com/Mo7amed-Boukab/E-Market-API/internal/domain"
	"github.com/Mo7amed-Boukab/E-Market-API/internal/usecase"
	"github.com/Mo7amed-Boukab/E-Market-API/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/categories")
	{
		categories.POST("", h.CreateCategory)
		categories.GET("", h.GetAllCategories)
		categories.GET("/:id", h.GetCategoryByID)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	payload, verrs := validation.Validate(validation.CategorySchema, payload)
	if verrs != nil {
		h.log.Warnf("Validation failed for create category: %v", verrs)
		ValidationErrorResponse(c, verrs)
		return
	}

	category, err := h.useCase.CreateCategory(c.Request.Context(), payload)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNameRequired) {
			ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
			return
		}
		h.log.Errorf("Error creating category: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Error creating category")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category created successfully",
		"category": category,
	})
}

func (h *CategoryHandler) GetAllCategories(c *gin.Context) {
	categories, err := h.useCase.GetAllCategories(c.Request.Context())
	if err != nil {
		h.log.Errorf("Error retrieving categories: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Error retrieving categories")
		return
	}
	if len(categories) == 0 {
		ErrorResponse(c, http.StatusNotFound, "No categories found")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategoryByID does not pre-validate the id format: a malformed id falls
// through to the store and comes back as a server error.
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	category, err := h.useCase.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Category not found")
			return
		}
		h.log.Errorf("Error retrieving category: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Error retrieving category")
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	payload, verrs := validation.Validate(validation.CategorySchema, payload)
	if verrs != nil {
		h.log.Warnf("Validation failed for update category: %v", verrs)
		ValidationErrorResponse(c, verrs)
		return
	}

	category, err := h.useCase.UpdateCategory(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCategoryNameRequired):
			ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, domain.ErrCategoryNotFound):
			ErrorResponse(c, http.StatusNotFound, "Category not found")
		default:
			h.log.Errorf("Error updating category: %v", err)
			ErrorResponse(c, http.StatusInternalServerError, "Error updating category")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Category updated successfully",
		"category": category,
	})
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.useCase.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Category not found")
			return
		}
		h.log.Errorf("Error deleting category: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Error deleting category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
