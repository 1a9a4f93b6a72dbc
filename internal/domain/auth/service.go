package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	// EnsureAdmin seeds the admin credential at startup.
	EnsureAdmin(ctx context.Context, username, password string) error
}
