package user

import "time"

// SignUpRequest represents the sign-up form.
type SignUpRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,max=254"`
	Password        string `json:"password" validate:"required,max=72"`
	ConfirmPassword string `json:"confirmPassword"`
}

// SignUpResponse carries the id of the registered user.
type SignUpResponse struct {
	ID int64
}

// LoginRequest represents the login form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// GetUserRequest represents the request payload for retrieving a user.
type GetUserRequest struct {
	ID int64
}

// User represents a user DTO for API responses. The password hash never leaves the usecase.
type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}
