package setting

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/setting"
)

type SettingServiceImpl struct {
	settingRepo setting.SettingRepository
}

func NewSettingService(settingRepo setting.SettingRepository) setting.SettingService {
	return &SettingServiceImpl{settingRepo: settingRepo}
}

// Get returns the stored raw value; a never-set key returns defaultValue
// without writing anything.
func (s *SettingServiceImpl) Get(ctx context.Context, key, defaultValue string) (string, error) {
	stored, err := s.settingRepo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return defaultValue, nil
		}
		return "", err
	}

	return stored.Value, nil
}

// GetNumber parses the stored value as a number. Unset keys and
// non-numeric values report ok=false instead of failing; the raw value
// stays reachable through Get.
func (s *SettingServiceImpl) GetNumber(ctx context.Context, key string) (decimal.Decimal, bool, error) {
	stored, err := s.settingRepo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}

	value, err := decimal.NewFromString(stored.Value)
	if err != nil {
		return decimal.Zero, false, nil
	}

	return value, true, nil
}

func (s *SettingServiceImpl) Set(ctx context.Context, key, value string) error {
	return s.settingRepo.Upsert(ctx, key, value)
}
