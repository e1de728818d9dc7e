package delivery

import (
	"errors"
	"net/http"

	"github.com/Mo7amed-Boukab/E-Market-API/internal/domain"
	"github.com/Mo7amed-Boukab/E-Market-API/internal/usecase"
	"github.com/Mo7amed-Boukab/E-Market-API/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.POST("", h.CreateProduct)
		products.GET("", h.GetAllProducts)
		products.GET("/:id", h.GetProductByID)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	payload, verrs := validation.Validate(validation.ProductCreateSchema, payload)
	if verrs != nil {
		h.log.Warnf("Validation failed for create product: %v", verrs)
		ValidationErrorResponse(c, verrs)
		return
	}

	product, err := h.useCase.CreateProduct(c.Request.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductFieldsRequired):
			ErrorResponse(c, http.StatusBadRequest, "All required fields must be provided.")
		case errors.Is(err, domain.ErrCategoryNotFound):
			ErrorResponse(c, http.StatusNotFound, "Category not found.")
		default:
			h.log.Errorf("Error creating product: %v", err)
			ErrorResponse(c, http.StatusInternalServerError, "Server error while creating product.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully.",
		"product": product,
	})
}

func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products, err := h.useCase.GetAllProducts(c.Request.Context())
	if err != nil {
		h.log.Errorf("Error retrieving products: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Server error while retrieving products.")
		return
	}
	if len(products) == 0 {
		ErrorResponse(c, http.StatusNotFound, "No products found.")
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.log.Warnf("Invalid product ID parameter: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format.")
		return
	}

	product, err := h.useCase.GetProductByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Product not found.")
			return
		}
		h.log.Errorf("Error retrieving product: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Server error while retrieving product.")
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.log.Warnf("Invalid product ID parameter for update: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format.")
		return
	}

	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	payload, verrs := validation.Validate(validation.ProductUpdateSchema, payload)
	if verrs != nil {
		h.log.Warnf("Validation failed for update product ID %s: %v", id.Hex(), verrs)
		ValidationErrorResponse(c, verrs)
		return
	}

	product, err := h.useCase.UpdateProduct(c.Request.Context(), id, payload)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			ErrorResponse(c, http.StatusNotFound, "Product not found.")
		case errors.Is(err, domain.ErrCategoryNotFound):
			ErrorResponse(c, http.StatusNotFound, "Category not found.")
		default:
			h.log.Errorf("Error updating product: %v", err)
			ErrorResponse(c, http.StatusInternalServerError, "Server error while updating product.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully.",
		"product": product,
	})
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.log.Warnf("Invalid product ID parameter for delete: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format.")
		return
	}

	if err := h.useCase.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Product not found.")
			return
		}
		h.log.Errorf("Error deleting product: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Server error while deleting product.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully."})
}
