package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/setting"
	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/database"
)

type settingRepository struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) Get(ctx context.Context, key string) (setting.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT key, value, updated_at
		FROM settings
		WHERE key = $1
	`

	var s setting.Setting
	err := q.QueryRow(ctx, query, key).Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return setting.Setting{}, setting.ErrSettingNotFound
		}
		return setting.Setting{}, fmt.Errorf("failed to get setting: %w", err)
	}

	return s, nil
}

func (r *settingRepository) Upsert(ctx context.Context, key, value string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	return nil
}
