package auth

import "context"

// AuthService issues access tokens for employees.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
