package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/hospitalservices/internal/adapters/database"
	"github.com/zatekoja/hospitalservices/internal/adapters/events"
	"github.com/zatekoja/hospitalservices/internal/application/services"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/providers"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/clients/redis"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/observability"
	"github.com/zatekoja/hospitalservices/pkg/config"
)

func main() {
	var hospitalID string
	var serviceID string

	flag.StringVar(&hospitalID, "hospital", "", "Single hospital ID to recompute")
	flag.StringVar(&serviceID, "service", "", "Single service ID to recompute")
	flag.Parse()

	if hospitalID != "" && serviceID != "" {
		log.Fatal().Msg("-hospital and -service are mutually exclusive")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	observability.InitLogger("hospital-services-backfill", cfg.Env)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	// rewritten averages reach the API's response cache through the event bus
	var eventBus providers.EventBus
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, cached responses will expire on their TTL")
	} else {
		defer redisClient.Close()
		eventBus = events.NewRedisEventBus(redisClient)
		defer eventBus.Close()
	}

	svc := services.NewBackfillService(
		database.NewHospitalAdapter(pgClient),
		database.NewServiceAdapter(pgClient),
		database.NewRankAdapter(pgClient),
		eventBus,
		nil,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	start := time.Now()

	var target *entities.TargetRef
	switch {
	case hospitalID != "":
		ref := entities.HospitalTarget(hospitalID)
		target = &ref
	case serviceID != "":
		ref := entities.ServiceTarget(serviceID)
		target = &ref
	}

	if target != nil {
		average, err := svc.RecomputeTarget(ctx, *target)
		if err != nil {
			log.Fatal().Err(err).Str("target", target.String()).Msg("failed to recompute average")
		}
		log.Info().Str("target", target.String()).Float64("average_rank", average).Msg("recomputed")
		return
	}

	report, err := svc.RecomputeAll(ctx)
	if err != nil {
		log.Error().Err(err).Int("hospitals", report.Hospitals).Int("services", report.Services).Msg("backfill failed")
		os.Exit(1)
	}
	log.Info().
		Int("hospitals", report.Hospitals).
		Int("services", report.Services).
		Dur("elapsed", time.Since(start)).
		Msg("backfill complete")
}
