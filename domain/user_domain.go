package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login successful"
	MessageSuccessGetMe    = "user retrieved successfully"
	MessageFailedRegister  = "failed to register user"
	MessageFailedLogin     = "failed to login"
	MessageFailedGetMe     = "failed to retrieve user"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserNotActive      = errors.New("user is not active")
)

type (
	RegisterUserRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=5"`
		Name     string `json:"name"`
	}

	LoginUserRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UserResponse struct {
		ID        uint      `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		IsActive  bool      `json:"is_active"`
		CreatedAt time.Time `json:"created_at"`
	}

	LoginUserResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)
