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

type UserHandler struct {
	useCase usecase.UserUseCase
	log     *logrus.Logger
}

func NewUserHandler(uc usecase.UserUseCase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *UserHandler) RegisterRoutes(router gin.IRouter) {
	users := router.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.GetAllUsers)
		users.GET("/:id", h.GetUserByID)
		users.DELETE("/:id", h.DeleteUser)
	}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	payload, verrs := validation.Validate(validation.UserSchema, payload)
	if verrs != nil {
		h.log.Warnf("Validation failed for create user: %v", verrs)
		ValidationErrorResponse(c, verrs)
		return
	}

	user, err := h.useCase.CreateUser(c.Request.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserFieldsRequired):
			ErrorResponse(c, http.StatusBadRequest, "Fullname, email, and password are required.")
		case errors.Is(err, domain.ErrEmailTaken):
			ErrorResponse(c, http.StatusBadRequest, "This email is already in use.")
		default:
			h.log.Errorf("Error creating user: %v", err)
			ErrorResponse(c, http.StatusInternalServerError, "Server error while creating user.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully.",
		"user":    user,
	})
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.useCase.GetAllUsers(c.Request.Context())
	if err != nil {
		h.log.Errorf("Error retrieving users: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Server error while retrieving users.")
		return
	}
	if len(users) == 0 {
		ErrorResponse(c, http.StatusNotFound, "No users found.")
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.log.Warnf("Invalid user ID parameter: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid user ID format.")
		return
	}

	user, err := h.useCase.GetUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			ErrorResponse(c, http.StatusNotFound, "User not found.")
			return
		}
		h.log.Errorf("Error retrieving user: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Server error while retrieving user.")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.log.Warnf("Invalid user ID parameter for delete: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid user ID format.")
		return
	}

	if err := h.useCase.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			ErrorResponse(c, http.StatusNotFound, "User not found.")
			return
		}
		h.log.Errorf("Error deleting user: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Server error while deleting user.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully."})
}
