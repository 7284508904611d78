package user

import "context"

// Usecase defines the interface for user business logic operations.
type Usecase interface {
	SignUp(ctx context.Context, in SignUpRequest) (*SignUpResponse, error)
	Login(ctx context.Context, in LoginRequest) (*User, error)
	GetUser(ctx context.Context, in GetUserRequest) (*User, error)
}
