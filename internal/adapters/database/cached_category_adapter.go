package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/providers"
	"github.com/zatekoja/hospitalservices/internal/domain/repositories"
)

// Cache TTLs (in seconds)
const (
	categoryBySlugTTL  = 600
	categoriesListTTL  = 300
	categoryKeyPattern = "category:*"
)

// CachedCategoryAdapter wraps a CategoryRepository with read-through caching
type CachedCategoryAdapter struct {
	adapter repositories.CategoryRepository
	cache   providers.CacheProvider
}

// NewCachedCategoryAdapter creates a new cached category adapter
func NewCachedCategoryAdapter(adapter repositories.CategoryRepository, cache providers.CacheProvider) repositories.CategoryRepository {
	return &CachedCategoryAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

func categoryCacheKey(slug string) string {
	return fmt.Sprintf("category:slug:%s", slug)
}

func categoriesListCacheKey(search string) string {
	return fmt.Sprintf("category:list:%s", search)
}

// GetBySlug retrieves a category by slug with caching
func (a *CachedCategoryAdapter) GetBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	key := categoryCacheKey(slug)

	var category entities.Category
	if a.load(ctx, key, &category) {
		return &category, nil
	}

	found, err := a.adapter.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	a.store(ctx, key, found, categoryBySlugTTL)
	return found, nil
}

// List retrieves categories with caching
func (a *CachedCategoryAdapter) List(ctx context.Context, search string) ([]*entities.Category, error) {
	key := categoriesListCacheKey(search)

	var categories []*entities.Category
	if a.load(ctx, key, &categories) {
		return categories, nil
	}

	categories, err := a.adapter.List(ctx, search)
	if err != nil {
		return nil, err
	}

	a.store(ctx, key, categories, categoriesListTTL)
	return categories, nil
}

// Create creates a category and invalidates cached categories
func (a *CachedCategoryAdapter) Create(ctx context.Context, category *entities.Category) error {
	if err := a.adapter.Create(ctx, category); err != nil {
		return err
	}
	a.invalidate(ctx)
	return nil
}

// Update updates a category and invalidates cached categories
func (a *CachedCategoryAdapter) Update(ctx context.Context, category *entities.Category) error {
	if err := a.adapter.Update(ctx, category); err != nil {
		return err
	}
	a.invalidate(ctx)
	return nil
}

// Delete deletes a category and invalidates cached categories
func (a *CachedCategoryAdapter) Delete(ctx context.Context, slug string) error {
	if err := a.adapter.Delete(ctx, slug); err != nil {
		return err
	}
	a.invalidate(ctx)
	return nil
}

func (a *CachedCategoryAdapter) load(ctx context.Context, key string, dest interface{}) bool {
	cached, err := a.cache.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(cached, dest); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to unmarshal cached categories")
		return false
	}
	return true
}

func (a *CachedCategoryAdapter) store(ctx context.Context, key string, value interface{}, ttl int) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := a.cache.Set(ctx, key, data, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache categories")
	}
}

func (a *CachedCategoryAdapter) invalidate(ctx context.Context) {
	if err := a.cache.DeletePattern(ctx, categoryKeyPattern); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate category cache")
	}
}
