package database_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/hospitalservices/internal/adapters/database"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/providers"
	"github.com/zatekoja/hospitalservices/tests/mocks"
)

type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string][]byte{}}
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.data[key]; ok {
		return v, nil
	}
	return nil, providers.ErrCacheMiss
}

func (c *mapCache) Set(_ context.Context, key string, value []byte, _ int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *mapCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

// DeletePattern only understands trailing-star prefixes
func (c *mapCache) DeletePattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range c.data {
		if strings.HasPrefix(key, prefix) {
			delete(c.data, key)
		}
	}
	return nil
}

func TestCachedCategoryAdapter_GetBySlug_ReadsThrough(t *testing.T) {
	inner := mocks.NewMockCategoryRepository(t)
	cache := newMapCache()
	repo := database.NewCachedCategoryAdapter(inner, cache)
	ctx := context.Background()

	inner.EXPECT().GetBySlug(mock.Anything, "surgery").
		Return(&entities.Category{ID: "c1", Title: "Surgery", Slug: "surgery"}, nil).Once()

	first, err := repo.GetBySlug(ctx, "surgery")
	require.NoError(t, err)
	second, err := repo.GetBySlug(ctx, "surgery")
	require.NoError(t, err)

	assert.Equal(t, "c1", first.ID)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Surgery", second.Title)
}

func TestCachedCategoryAdapter_ListIsKeyedBySearch(t *testing.T) {
	inner := mocks.NewMockCategoryRepository(t)
	repo := database.NewCachedCategoryAdapter(inner, newMapCache())
	ctx := context.Background()

	inner.EXPECT().List(mock.Anything, "").
		Return([]*entities.Category{{ID: "c1"}, {ID: "c2"}}, nil).Once()
	inner.EXPECT().List(mock.Anything, "den").
		Return([]*entities.Category{{ID: "c2"}}, nil).Once()

	for i := 0; i < 2; i++ {
		all, err := repo.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 2)

		some, err := repo.List(ctx, "den")
		require.NoError(t, err)
		assert.Len(t, some, 1)
	}
}

func TestCachedCategoryAdapter_WritesInvalidate(t *testing.T) {
	inner := mocks.NewMockCategoryRepository(t)
	cache := newMapCache()
	repo := database.NewCachedCategoryAdapter(inner, cache)
	ctx := context.Background()

	inner.EXPECT().List(mock.Anything, "").Return([]*entities.Category{{ID: "c1"}}, nil).Twice()
	inner.EXPECT().Delete(mock.Anything, "surgery").Return(nil).Once()

	_, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.NotEmpty(t, cache.data)

	require.NoError(t, repo.Delete(ctx, "surgery"))
	assert.Empty(t, cache.data)

	_, err = repo.List(ctx, "")
	require.NoError(t, err)
}

func TestCachedCategoryAdapter_ErrorsAreNotCached(t *testing.T) {
	inner := mocks.NewMockCategoryRepository(t)
	cache := newMapCache()
	repo := database.NewCachedCategoryAdapter(inner, cache)

	inner.EXPECT().GetBySlug(mock.Anything, "missing").Return(nil, assert.AnError).Twice()

	for i := 0; i < 2; i++ {
		_, err := repo.GetBySlug(context.Background(), "missing")
		assert.ErrorIs(t, err, assert.AnError)
	}
	assert.Empty(t, cache.data)
}
