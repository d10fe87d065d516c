package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/providers"
)

// HTTP response cache key patterns. Keys are laid out as
// http:cache:<path>:<query hash> by the cache middleware.
const (
	httpCachePattern     = "http:cache:*"
	hospitalCachePattern = "http:cache:/api/hospitals*"
	serviceCachePattern  = "http:cache:/api/services*"
)

// CacheInvalidationService drops cached HTTP responses when ranks, comments
// or the catalog change
type CacheInvalidationService struct {
	cache    providers.CacheProvider
	eventBus providers.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
	started  bool
	done     chan struct{}
}

// NewCacheInvalidationService creates a new cache invalidation service
func NewCacheInvalidationService(cache providers.CacheProvider, eventBus providers.EventBus) *CacheInvalidationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &CacheInvalidationService{
		cache:    cache,
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

// Start begins listening for events and invalidating cache
func (s *CacheInvalidationService) Start() error {
	eventChan, err := s.eventBus.Subscribe(s.ctx, providers.EventChannelCatalogUpdates)
	if err != nil {
		return fmt.Errorf("failed to subscribe to catalog updates: %w", err)
	}

	s.started = true
	go s.processEvents(eventChan)
	log.Info().Str("channel", providers.EventChannelCatalogUpdates).Msg("cache invalidation service started")
	return nil
}

// Stop stops the cache invalidation service and waits for the event loop
func (s *CacheInvalidationService) Stop() {
	s.cancel()
	if s.started {
		<-s.done
	}
	log.Info().Msg("cache invalidation service stopped")
}

func (s *CacheInvalidationService) processEvents(eventChan <-chan *entities.TargetEvent) {
	defer close(s.done)
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if event == nil {
				continue
			}
			s.handleEvent(event)
		}
	}
}

func (s *CacheInvalidationService) handleEvent(event *entities.TargetEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, pattern := range InvalidationPatterns(event) {
		if err := s.cache.DeletePattern(ctx, pattern); err != nil {
			log.Warn().Err(err).Str("event_id", event.ID).Str("pattern", pattern).Msg("failed to invalidate cache")
			continue
		}
		entry := log.Debug().Str("event_id", event.ID).Str("type", string(event.Type)).Str("pattern", pattern)
		if event.IsRankEvent() {
			entry = entry.Float64("average_rank", event.AverageRank)
		}
		entry.Msg("invalidated cache")
	}
}

// InvalidationPatterns returns the cached responses an event makes stale.
// Rank and comment changes touch the listings and details under their
// target's resource; catalog writes can touch any response.
func InvalidationPatterns(event *entities.TargetEvent) []string {
	if event.Type == entities.EventCatalogChanged || event.Target == nil {
		return []string{httpCachePattern}
	}
	if event.Target.IsHospital() {
		return []string{hospitalCachePattern}
	}
	return []string{serviceCachePattern}
}

// InvalidateAll drops every cached HTTP response
func (s *CacheInvalidationService) InvalidateAll(ctx context.Context) error {
	if err := s.cache.DeletePattern(ctx, httpCachePattern); err != nil {
		return fmt.Errorf("failed to invalidate pattern %s: %w", httpCachePattern, err)
	}
	return nil
}
