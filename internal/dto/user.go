package dto

import (
	"time"

	"recordstore/internal/models"
)

// CreateUserRequest is the payload for POST /users
type CreateUserRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required"`
	PhnNo           string `json:"phn_no" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// UpdateUserRequest is the payload for PATCH /users/:id. Pointer fields
// capture which keys the payload actually carried.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	PhnNo    *string `json:"phn_no"`
}

// UserResponse is the projection of a stored user. The password digest is
// never projected.
type UserResponse struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	PhnNo     string    `json:"phn_no"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessageResponse carries a plain informational message
type MessageResponse struct {
	Message string `json:"message"`
}

// ToUserResponse converts a User model to UserResponse
func ToUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		PhnNo:     user.PhnNo,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserResponses converts a slice of users
func ToUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
