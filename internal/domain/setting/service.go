package setting

import (
	"context"

	"github.com/shopspring/decimal"
)

type SettingService interface {
	// Get returns the stored raw value, or defaultValue when the key was
	// never set. No write happens on the miss path.
	Get(ctx context.Context, key, defaultValue string) (string, error)
	// GetNumber parses the stored value as a number. ok is false when the
	// key is unset or the value is not numeric.
	GetNumber(ctx context.Context, key string) (value decimal.Decimal, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
