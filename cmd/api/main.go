package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/hospitalservices/internal/adapters/cache"
	"github.com/zatekoja/hospitalservices/internal/adapters/database"
	"github.com/zatekoja/hospitalservices/internal/adapters/events"
	"github.com/zatekoja/hospitalservices/internal/api/handlers"
	"github.com/zatekoja/hospitalservices/internal/api/middleware"
	"github.com/zatekoja/hospitalservices/internal/api/routes"
	"github.com/zatekoja/hospitalservices/internal/application/services"
	"github.com/zatekoja/hospitalservices/internal/domain/providers"
	"github.com/zatekoja/hospitalservices/internal/domain/repositories"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/clients/redis"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/migrations"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/observability"
	"github.com/zatekoja/hospitalservices/pkg/auth"
	"github.com/zatekoja/hospitalservices/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()

	if cfg.Database.MigrateOnBoot {
		if err := migrations.Run(pgClient.DB(), migrations.Up); err != nil {
			log.Fatal().Err(err).Msg("failed to apply migrations")
		}
	}

	// Redis is optional: without it responses are not cached and cache
	// invalidation events are not published.
	var (
		cacheProvider providers.CacheProvider
		eventBus      providers.EventBus
		redisPinger   handlers.Pinger
	)
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, running without cache")
	} else {
		defer redisClient.Close()
		redisPinger = redisClient
		eventBus = events.NewRedisEventBus(redisClient)
		if cfg.Cache.Enabled {
			cacheProvider = cache.NewRedisAdapter(redisClient)
		}
	}

	var categoryAdapter repositories.CategoryRepository = database.NewCategoryAdapter(pgClient)
	if cacheProvider != nil {
		categoryAdapter = database.NewCachedCategoryAdapter(categoryAdapter, cacheProvider)
		services.NewCacheWarmingService(categoryAdapter).StartPeriodicWarming(ctx, 5*time.Minute)
	}
	hospitalAdapter := database.NewHospitalAdapter(pgClient)
	serviceAdapter := database.NewServiceAdapter(pgClient)
	commentAdapter := database.NewCommentAdapter(pgClient)
	rankLedger := database.NewRankAdapter(pgClient)
	userAdapter := database.NewUserAdapter(pgClient)

	targets := services.NewTargetResolver(hospitalAdapter, serviceAdapter)
	catalogService := services.NewCatalogService(categoryAdapter, hospitalAdapter, serviceAdapter, eventBus)
	commentService := services.NewCommentService(commentAdapter, userAdapter, targets, eventBus)
	rankService := services.NewRankService(rankLedger, userAdapter, targets, eventBus, metrics)

	var cacheInvalidation *services.CacheInvalidationService
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil && eventBus != nil {
		cacheInvalidation = services.NewCacheInvalidationService(cacheProvider, eventBus)
		if err := cacheInvalidation.Start(); err != nil {
			log.Warn().Err(err).Msg("failed to start cache invalidation, response cache disabled")
			cacheInvalidation = nil
		} else {
			cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics, cfg.Cache.CatalogTTL)
		}
	}

	tokens := auth.NewTokenMaker(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	limiter := middleware.NewRateLimiter(cacheProvider, cfg.Auth.RateLimit, cfg.Auth.RateWindow)

	health := map[string]handlers.Pinger{"postgres": pgClient}
	if redisPinger != nil {
		health["redis"] = redisPinger
	}

	router := routes.NewRouter(
		routes.Handlers{
			Health:   handlers.NewHealthHandler(health),
			Catalog:  handlers.NewCatalogHandler(catalogService),
			Comments: handlers.NewCommentHandler(commentService),
			Ranks:    handlers.NewRankHandler(rankService),
			Admin:    handlers.NewAdminHandler(catalogService),
		},
		middleware.NewAuthenticator(tokens),
		limiter,
		cacheMiddleware,
		metrics,
		cfg.Server.AllowedOrigins,
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	if cacheInvalidation != nil {
		cacheInvalidation.Stop()
	}
	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Error().Err(err).Msg("error closing event bus")
		}
	}

	log.Info().Msg("server stopped")
}
