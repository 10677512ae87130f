package users

import (
	"time"

	"github.com/google/uuid"
)

// CreateUserRequest is the POST body. IsActive defaults to true when omitted.
type CreateUserRequest struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
	IsActive *bool   `json:"is_active"`
}

// UpdateUserRequest is the PATCH body. Only non-nil fields are applied
// (merge-patch): a field absent from the body leaves the stored value alone.
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
	IsActive *bool   `json:"is_active"`
}

// UserResponse is the output projection, including server-generated fields.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserResponse projects a domain record into the response shape.
func NewUserResponse(user User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// NewUserResponses projects a list, never returning nil so empty listings
// serialize as [].
func NewUserResponses(list []User) []UserResponse {
	out := make([]UserResponse, len(list))
	for i, user := range list {
		out[i] = NewUserResponse(user)
	}
	return out
}
