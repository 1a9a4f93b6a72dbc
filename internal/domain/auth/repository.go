package auth

import "context"

// AdminAuthRepository stores the single admin credential.
type AdminAuthRepository interface {
	GetPasswordHash(ctx context.Context, username string) (string, error)
	// EnsureAdmin inserts the credential if the username does not exist yet;
	// an existing row is left untouched.
	EnsureAdmin(ctx context.Context, username, passwordHash string) error
}
