package domain

import "errors"

var (
	MessageSuccessRegister    = "user registered successfully"
	MessageSuccessLogin       = "login successful"
	MessageSuccessGetMe       = "user profile retrieved successfully"
	MessageSuccessUpdateUser  = "user updated successfully"
	MessageSuccessVerifyEmail = "email verified successfully"

	MessageFailedRegister    = "failed to register user"
	MessageFailedLogin       = "failed to login"
	MessageFailedGetMe       = "failed to retrieve user profile"
	MessageFailedUpdateUser  = "failed to update user"
	MessageFailedVerifyEmail = "failed to verify email"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrCredentialsinvalid = errors.New("invalid email or password")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateUserRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Preferences string `json:"preferences" validate:"omitempty"`
	}

	UserResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Email       string `json:"email"`
		IsVerified  bool   `json:"is_verified"`
		Preferences string `json:"preferences,omitempty"`
	}
)
