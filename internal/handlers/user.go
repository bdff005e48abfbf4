package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"recordstore/internal/auth"
	"recordstore/internal/dto"
	apierrors "recordstore/internal/errors"
	"recordstore/internal/services"
	"recordstore/internal/validation"
)

// UserHandler coordinates user HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers returns all users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// CreateUser registers a new user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(services.CreateUserInput{
		Username:        req.Username,
		Email:           req.Email,
		PhnNo:           req.PhnNo,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateUser applies a partial update to a user.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		apierrors.BadRequest(c, "Invalid user id")
		return
	}

	var req dto.UpdateUserRequest
	raw, err := bindPatchBody(c, &req)
	if err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if field := firstNullField(raw, "username", "email", "phn_no"); field != "" {
		apierrors.BadRequest(c, fmt.Sprintf("Field %s cannot be null", field))
		return
	}

	user, err := h.userService.UpdateUser(id, services.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		PhnNo:    req.PhnNo,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

// DeleteUser removes a user and its assigned tasks.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		apierrors.BadRequest(c, "Invalid user id")
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("User id: %d deleted", id),
	})
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, validation.ErrInvalidEmail),
		errors.Is(err, validation.ErrInvalidPhone),
		errors.Is(err, auth.ErrPasswordMismatch),
		errors.Is(err, services.ErrUsernameRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUserConflict):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
