package setting

import "context"

// SettingRepository defines data access methods for settings.
type SettingRepository interface {
	Get(ctx context.Context, key string) (Setting, error)
	Upsert(ctx context.Context, key, value string) error
}
