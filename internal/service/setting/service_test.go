package setting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/setting"
)

type memorySettingRepo struct {
	values map[string]string
	gets   int
}

func (m *memorySettingRepo) Get(ctx context.Context, key string) (setting.Setting, error) {
	m.gets++
	v, ok := m.values[key]
	if !ok {
		return setting.Setting{}, setting.ErrSettingNotFound
	}
	return setting.Setting{Key: key, Value: v}, nil
}

func (m *memorySettingRepo) Upsert(ctx context.Context, key, value string) error {
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}

func TestGetReturnsStoredValue(t *testing.T) {
	repo := &memorySettingRepo{values: map[string]string{"expense_threshold": "500"}}
	svc := NewSettingService(repo)

	got, err := svc.Get(context.Background(), "expense_threshold", "unset")
	require.NoError(t, err)
	assert.Equal(t, "500", got)
}

func TestGetUnsetKeyReturnsDefaultWithoutWriting(t *testing.T) {
	repo := &memorySettingRepo{}
	svc := NewSettingService(repo)

	got, err := svc.Get(context.Background(), "expense_threshold", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)
	assert.Empty(t, repo.values)
}

func TestGetNumber(t *testing.T) {
	repo := &memorySettingRepo{values: map[string]string{
		"expense_threshold":   "1234.56",
		"fund_flow_threshold": "not a number",
	}}
	svc := NewSettingService(repo)

	value, ok, err := svc.GetNumber(context.Background(), "expense_threshold")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1234.56", value.String())

	_, ok, err = svc.GetNumber(context.Background(), "fund_flow_threshold")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = svc.GetNumber(context.Background(), "never_set")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetOverwrites(t *testing.T) {
	repo := &memorySettingRepo{}
	svc := NewSettingService(repo)

	require.NoError(t, svc.Set(context.Background(), "expense_threshold", "100"))
	require.NoError(t, svc.Set(context.Background(), "expense_threshold", "250"))

	got, err := svc.Get(context.Background(), "expense_threshold", "")
	require.NoError(t, err)
	assert.Equal(t, "250", got)
}
