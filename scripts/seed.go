package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/zatekoja/hospitalservices/internal/adapters/database"
	"github.com/zatekoja/hospitalservices/internal/application/services"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/observability"
	"github.com/zatekoja/hospitalservices/pkg/auth"
	"github.com/zatekoja/hospitalservices/pkg/config"
)

func str(v string) *string { return &v }
func num(v float64) *float64 { return &v }
func yes() *bool {
	v := true
	return &v
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	observability.InitLogger("hospital-services-seed", cfg.Env)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE ranks, comments, services, hospitals, categories, users
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to reset tables")
		}
	}

	hospitals := database.NewHospitalAdapter(pgClient)
	servicesRepo := database.NewServiceAdapter(pgClient)
	users := database.NewUserAdapter(pgClient)
	targets := services.NewTargetResolver(hospitals, servicesRepo)

	catalog := services.NewCatalogService(database.NewCategoryAdapter(pgClient), hospitals, servicesRepo, nil)
	comments := services.NewCommentService(database.NewCommentAdapter(pgClient), users, targets, nil)
	ranks := services.NewRankService(database.NewRankAdapter(pgClient), users, targets, nil, nil)

	// 1. Categories
	for _, in := range []services.CategoryInput{
		{Title: str("Diagnostics"), Slug: str("diagnostics"), Description: str("Imaging and laboratory tests")},
		{Title: str("Dentistry"), Slug: str("dentistry"), Description: str("Dental care")},
		{Title: str("Surgery"), Slug: str("surgery"), Description: str("Planned operations")},
	} {
		if _, err := catalog.CreateCategory(ctx, in); err != nil {
			log.Warn().Err(err).Str("slug", *in.Slug).Msg("failed to create category")
		}
	}

	// 2. Hospitals
	for _, in := range []services.HospitalInput{
		{
			Name: str("City Clinical Hospital"), Slug: str("city-clinical"), Category: str("surgery"),
			WorkTime: str("Mon-Fri 8:00-20:00, Sat 9:00-15:00, Sun Closed"), IsOnMain: yes(),
			Description: str("Multi-profile hospital in the city centre"),
		},
		{
			Name: str("Smile Dental Centre"), Slug: str("smile-dental"), Category: str("dentistry"),
			WorkTime: str("Mon-Sat 9:00-21:00"),
		},
		{
			Name: str("Northern Diagnostic Centre"), Slug: str("northern-diagnostics"), Category: str("diagnostics"),
			WorkTime: str("Daily 7:00-23:00"), IsOnMain: yes(),
		},
	} {
		if _, err := catalog.CreateHospital(ctx, in); err != nil {
			log.Warn().Err(err).Str("slug", *in.Slug).Msg("failed to create hospital")
		}
	}

	// 3. Services: fixed prices and price ranges
	var seeded []*entities.Service
	for _, in := range []services.ServiceInput{
		{Name: str("MRI Scan (Brain)"), Hospital: str("northern-diagnostics"), Category: str("diagnostics"), Price: num(450)},
		{Name: str("Full Blood Count"), Hospital: str("northern-diagnostics"), Category: str("diagnostics"), MinPrice: num(20), MaxPrice: num(35)},
		{Name: str("Dental Cleaning"), Hospital: str("smile-dental"), Category: str("dentistry"), MinPrice: num(60), MaxPrice: num(120)},
		{Name: str("Appendectomy"), Hospital: str("city-clinical"), Category: str("surgery"), Price: num(3200)},
		{Name: str("Consultation"), Hospital: str("city-clinical"), MaxPrice: num(80)},
	} {
		service, err := catalog.CreateService(ctx, in)
		if err != nil {
			log.Warn().Err(err).Str("name", *in.Name).Msg("failed to create service")
			continue
		}
		seeded = append(seeded, service)
	}

	// 4. Demo users with a comment and rank each
	reviewers := []*entities.User{
		{ID: uuid.New().String(), Username: "anna"},
		{ID: uuid.New().String(), Username: "boris"},
		{ID: uuid.New().String(), Username: "chen"},
	}
	for i, reviewer := range reviewers {
		if _, err := comments.Create(ctx, reviewer, entities.TargetHospital, "city-clinical", "Friendly staff and short queues"); err != nil {
			log.Warn().Err(err).Str("user", reviewer.Username).Msg("failed to create comment")
		}
		if _, err := ranks.Create(ctx, reviewer, entities.TargetHospital, "city-clinical", 7+i); err != nil {
			log.Warn().Err(err).Str("user", reviewer.Username).Msg("failed to rank hospital")
		}
		for _, service := range seeded {
			if _, err := ranks.Create(ctx, reviewer, entities.TargetService, service.ID, 5+i*2); err != nil {
				log.Warn().Err(err).Str("user", reviewer.Username).Str("service", service.ID).Msg("failed to rank service")
			}
		}
	}

	// 5. Tokens for trying the API
	tokens := auth.NewTokenMaker(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	userToken, err := tokens.Generate(reviewers[0].ID, reviewers[0].Username, auth.RoleUser)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to sign user token")
	}
	adminToken, err := tokens.Generate(uuid.New().String(), "admin", auth.RoleAdmin)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to sign admin token")
	}

	log.Info().Int("services", len(seeded)).Int("reviewers", len(reviewers)).Msg("seeding complete")
	fmt.Printf("user token (%s):\n%s\n\nadmin token:\n%s\n", reviewers[0].Username, userToken, adminToken)
}
