package main

import (
	"flag"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/migrations"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/observability"
	"github.com/zatekoja/hospitalservices/pkg/config"
)

func main() {
	var directionFlag string
	flag.StringVar(&directionFlag, "direction", "up", "Migration direction: up or down")
	flag.Parse()

	direction, err := migrations.ParseDirection(directionFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid direction")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	observability.InitLogger("hospital-services-migrate", cfg.Env)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	if err := migrations.Run(pgClient.DB(), direction); err != nil {
		log.Fatal().Err(err).Str("direction", string(direction)).Msg("migration failed")
	}
	log.Info().Str("direction", string(direction)).Msg("migrations applied")
}
