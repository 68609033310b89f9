package cachemanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewInMemoryCacheManager(t *testing.T) {
	require.NotPanics(t, func() {
		NewInMemoryCacheManager[string, string]("test", NoExpiration, DefaultCleanupInterval)
	})
}

type reportKey string

func TestInMemoryCacheManager_GetExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[reportKey, string]("reports", NoExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "report:w=30", "table", NoExpiration)

	got, ok := cache.Get(context.Background(), "report:w=30")
	require.True(t, ok)
	require.Equal(t, "table", got)
	require.Equal(t, 1, cache.ItemCount())
}

func TestInMemoryCacheManager_GetExistingValue_SliceType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, []string]("clades", NoExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "all", []string{"Anura", "Araneae"}, NoExpiration)

	got, ok := cache.Get(context.Background(), "all")
	require.True(t, ok)
	require.Equal(t, []string{"Anura", "Araneae"}, got)
}

func TestInMemoryCacheManager_GetWithNoExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("reports", NoExpiration, DefaultCleanupInterval)

	got, ok := cache.Get(context.Background(), "report")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetWithExistingInvalidValueType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("reports", NoExpiration, DefaultCleanupInterval)

	cache.cache.Set("report", 123, NoExpiration)

	got, ok := cache.Get(context.Background(), "report")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_DeleteWithNoKeysDoesNothing(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("reports", NoExpiration, DefaultCleanupInterval)

	err := cache.Delete(context.Background())
	require.NoError(t, err)
}

func TestInMemoryCacheManager_DeleteExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("reports", NoExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "report", "table", NoExpiration)

	err := cache.Delete(context.Background(), "report")
	require.NoError(t, err)

	got, ok := cache.Get(context.Background(), "report")
	require.False(t, ok)
	require.Equal(t, "", got)
}

func TestInMemoryCacheManager_Flush(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("reports", NoExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "a", "1", NoExpiration)
	cache.Set(context.Background(), "b", "2", NoExpiration)

	err := cache.Flush(context.Background())
	require.NoError(t, err)

	require.Equal(t, 0, cache.ItemCount())
}
