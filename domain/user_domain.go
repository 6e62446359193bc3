package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetProfile    = "profile retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"

	MessageFailedGetProfile    = "failed to fetch user profile"
	MessageFailedUpdateProfile = "failed to update user profile"

	ErrUserNotFound     = errors.New("user not found")
	ErrForbiddenProfile = errors.New("you can only access your own profile")
	ErrFullNameRequired = errors.New("full_name is required")
)

type (
	// AuthClaims is the identity carried by a verified credential. FullName
	// and Name are alternate display-name claims from the provider; either
	// may be empty.
	AuthClaims struct {
		UserID   string
		Email    string
		FullName string
		Name     string
	}

	UpdateUserRequest struct {
		FullName string `json:"full_name" validate:"required"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		FullName  string    `json:"full_name"`
		CreatedAt time.Time `json:"created_at"`
	}
)
