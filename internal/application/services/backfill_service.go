package services

import (
	"context"

	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/providers"
	"github.com/zatekoja/hospitalservices/internal/domain/repositories"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/observability"
)

const backfillBatchSize = 200

// BackfillReport counts the targets a backfill recomputed
type BackfillReport struct {
	Hospitals int
	Services  int
}

// BackfillService recomputes stored averages from the rank rows. Running it
// twice leaves the same averages behind. Cached responses are invalidated
// through the event bus once averages are rewritten.
type BackfillService struct {
	hospitals repositories.HospitalRepository
	services  repositories.ServiceRepository
	ledger    repositories.RankLedger
	eventBus  providers.EventBus
	metrics   *observability.Metrics
}

// NewBackfillService creates a new backfill service
func NewBackfillService(
	hospitals repositories.HospitalRepository,
	services repositories.ServiceRepository,
	ledger repositories.RankLedger,
	eventBus providers.EventBus,
	metrics *observability.Metrics,
) *BackfillService {
	return &BackfillService{
		hospitals: hospitals,
		services:  services,
		ledger:    ledger,
		eventBus:  eventBus,
		metrics:   metrics,
	}
}

// RecomputeTarget recomputes the average of a single target and publishes
// the new value
func (s *BackfillService) RecomputeTarget(ctx context.Context, target entities.TargetRef) (float64, error) {
	average, err := s.recompute(ctx, target)
	if err != nil {
		return 0, err
	}
	publishEvent(ctx, s.eventBus, entities.NewTargetEvent(entities.EventRankRecomputed, target, average))
	return average, nil
}

func (s *BackfillService) recompute(ctx context.Context, target entities.TargetRef) (float64, error) {
	ctx, span := observability.StartSpan(ctx, "backfill.recompute")
	defer span.End()

	average, err := s.ledger.Recompute(ctx, target)
	if err != nil {
		observability.RecordError(span, err)
		return 0, err
	}
	observability.RecordRankRecompute(ctx, s.metrics, string(target.Kind))
	return average, nil
}

// RecomputeAll recomputes every hospital and every service. One catalog
// event is published when any average was rewritten, including after a
// partial run.
func (s *BackfillService) RecomputeAll(ctx context.Context) (BackfillReport, error) {
	logger := observability.LoggerFromContext(ctx)
	var report BackfillReport
	defer func() {
		if report.Hospitals+report.Services > 0 {
			publishEvent(ctx, s.eventBus, entities.NewCatalogEvent())
		}
	}()

	for offset := 0; ; offset += backfillBatchSize {
		hospitals, err := s.hospitals.List(ctx, repositories.HospitalFilter{Limit: backfillBatchSize, Offset: offset})
		if err != nil {
			return report, err
		}
		for _, hospital := range hospitals {
			average, err := s.recompute(ctx, entities.HospitalTarget(hospital.ID))
			if err != nil {
				return report, err
			}
			logger.Debug().Str("hospital", hospital.Slug).Float64("average_rank", average).Msg("recomputed hospital")
			report.Hospitals++
		}
		if len(hospitals) < backfillBatchSize {
			break
		}
	}

	for offset := 0; ; offset += backfillBatchSize {
		services, err := s.services.List(ctx, repositories.ServiceFilter{Limit: backfillBatchSize, Offset: offset})
		if err != nil {
			return report, err
		}
		for _, service := range services {
			average, err := s.recompute(ctx, entities.ServiceTarget(service.ID))
			if err != nil {
				return report, err
			}
			logger.Debug().Str("service", service.ID).Float64("average_rank", average).Msg("recomputed service")
			report.Services++
		}
		if len(services) < backfillBatchSize {
			break
		}
	}

	logger.Info().Int("hospitals", report.Hospitals).Int("services", report.Services).Msg("average rank backfill finished")
	return report, nil
}
