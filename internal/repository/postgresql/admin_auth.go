package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/auth"
	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/database"
)

type adminAuthRepository struct {
	db *database.DB
}

func NewAdminAuthRepository(db *database.DB) auth.AdminAuthRepository {
	return &adminAuthRepository{db: db}
}

func (r *adminAuthRepository) GetPasswordHash(ctx context.Context, username string) (string, error) {
	q := GetQuerier(ctx, r.db)

	var hash string
	err := q.QueryRow(ctx, `SELECT password_hash FROM admin_auth WHERE username = $1`, username).Scan(&hash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", auth.ErrAdminNotFound
		}
		return "", fmt.Errorf("failed to get admin credential: %w", err)
	}

	return hash, nil
}

func (r *adminAuthRepository) EnsureAdmin(ctx context.Context, username, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO admin_auth (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, username, passwordHash); err != nil {
		return fmt.Errorf("failed to seed admin credential: %w", err)
	}

	return nil
}
