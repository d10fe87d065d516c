package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/hospitalservices/internal/domain/repositories"
)

// CacheWarmingService keeps the category read-through cache populated.
// categories must be the cached repository; reading through it is what
// fills the cache.
type CacheWarmingService struct {
	categories repositories.CategoryRepository
}

// NewCacheWarmingService creates a new cache warming service
func NewCacheWarmingService(categories repositories.CategoryRepository) *CacheWarmingService {
	return &CacheWarmingService{categories: categories}
}

// WarmCache loads the full category list and every category by slug
func (s *CacheWarmingService) WarmCache(ctx context.Context) (int, error) {
	categories, err := s.categories.List(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("failed to fetch categories: %w", err)
	}

	warmed := 0
	for _, category := range categories {
		if _, err := s.categories.GetBySlug(ctx, category.Slug); err != nil {
			log.Warn().Err(err).Str("slug", category.Slug).Msg("failed to warm category")
			continue
		}
		warmed++
	}

	log.Debug().Int("categories", warmed).Msg("category cache warmed")
	return warmed, nil
}

// StartPeriodicWarming warms the cache now and then every interval until
// ctx is done
func (s *CacheWarmingService) StartPeriodicWarming(ctx context.Context, interval time.Duration) {
	if _, err := s.WarmCache(ctx); err != nil {
		log.Warn().Err(err).Msg("initial cache warming failed")
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("stopping cache warming service")
				return
			case <-ticker.C:
				if _, err := s.WarmCache(ctx); err != nil {
					log.Warn().Err(err).Msg("periodic cache warming failed")
				}
			}
		}
	}()
	log.Info().Dur("interval", interval).Msg("started periodic cache warming")
}
