package services

import (
	"context"

	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/providers"
	"github.com/zatekoja/hospitalservices/internal/domain/repositories"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

// RankResult is a rank together with the target average it produced
type RankResult struct {
	Rank        *entities.Rank `json:"rank"`
	AverageRank float64        `json:"average_rank"`
}

// RankService handles the numeric ranks users give hospitals and services.
// Every write goes through the ledger, which recomputes the target average
// in the same transaction.
type RankService struct {
	ledger   repositories.RankLedger
	users    repositories.UserRepository
	targets  *TargetResolver
	eventBus providers.EventBus
	metrics  *observability.Metrics
}

// NewRankService creates a new rank service
func NewRankService(
	ledger repositories.RankLedger,
	users repositories.UserRepository,
	targets *TargetResolver,
	eventBus providers.EventBus,
	metrics *observability.Metrics,
) *RankService {
	return &RankService{
		ledger:   ledger,
		users:    users,
		targets:  targets,
		eventBus: eventBus,
		metrics:  metrics,
	}
}

// List returns the ranks of one target with their labels
func (s *RankService) List(ctx context.Context, kind entities.TargetKind, key string, opts ListOptions) ([]*entities.Rank, error) {
	summary, err := s.targets.Resolve(ctx, kind, key)
	if err != nil {
		return nil, err
	}

	ranks, err := s.ledger.List(ctx, repositories.AttachmentFilter{
		Target:   summary.Target,
		Ordering: opts.Ordering,
		Limit:    opts.Limit,
		Offset:   opts.Offset,
	})
	if err != nil {
		return nil, err
	}

	if len(ranks) == 0 {
		return ranks, nil
	}

	ids := make([]string, len(ranks))
	for i, rank := range ranks {
		ids[i] = rank.AuthorID
	}
	names, err := authorNames(ctx, s.users, ids)
	if err != nil {
		return nil, err
	}
	for _, rank := range ranks {
		rank.Label = summary.Describe(names[rank.AuthorID])
	}
	return ranks, nil
}

// Create ranks the target on behalf of author. A second rank by the same
// author on the same target fails with DuplicateRank.
func (s *RankService) Create(ctx context.Context, author *entities.User, kind entities.TargetKind, key string, value int) (*RankResult, error) {
	if err := requireAuthor(author); err != nil {
		return nil, err
	}
	if err := entities.ValidateRankValue(value); err != nil {
		return nil, err
	}

	summary, err := s.targets.Resolve(ctx, kind, key)
	if err != nil {
		return nil, err
	}
	if err := s.users.Upsert(ctx, author); err != nil {
		return nil, err
	}

	rank := &entities.Rank{
		Value: value,
		Attachment: entities.Attachment{
			AuthorID: author.ID,
			Target:   summary.Target,
		},
	}

	average, err := s.ledger.Create(ctx, rank)
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeDuplicateRank) {
			observability.RecordDuplicateRank(ctx, s.metrics, string(kind))
		}
		return nil, err
	}

	return s.committed(ctx, "create", entities.EventRankCreated, summary, author, rank, average), nil
}

// Update changes the value of a rank; only its author may do so
func (s *RankService) Update(ctx context.Context, author *entities.User, kind entities.TargetKind, key, id string, value int) (*RankResult, error) {
	if err := requireAuthor(author); err != nil {
		return nil, err
	}
	if err := entities.ValidateRankValue(value); err != nil {
		return nil, err
	}

	summary, rank, err := s.owned(ctx, author, kind, key, id)
	if err != nil {
		return nil, err
	}
	if err := s.users.Upsert(ctx, author); err != nil {
		return nil, err
	}

	rank.Value = value
	average, err := s.ledger.Update(ctx, rank)
	if err != nil {
		return nil, err
	}

	return s.committed(ctx, "update", entities.EventRankUpdated, summary, author, rank, average), nil
}

// Delete removes a rank; only its author may do so. The returned average
// no longer counts the deleted rank.
func (s *RankService) Delete(ctx context.Context, author *entities.User, kind entities.TargetKind, key, id string) (float64, error) {
	summary, rank, err := s.owned(ctx, author, kind, key, id)
	if err != nil {
		return 0, err
	}

	average, err := s.ledger.Delete(ctx, rank)
	if err != nil {
		return 0, err
	}

	s.committed(ctx, "delete", entities.EventRankDeleted, summary, author, rank, average)
	return average, nil
}

func (s *RankService) owned(ctx context.Context, author *entities.User, kind entities.TargetKind, key, id string) (entities.TargetSummary, *entities.Rank, error) {
	if err := requireAuthor(author); err != nil {
		return entities.TargetSummary{}, nil, err
	}

	summary, err := s.targets.Resolve(ctx, kind, key)
	if err != nil {
		return entities.TargetSummary{}, nil, err
	}

	rank, err := s.ledger.GetByID(ctx, id)
	if err != nil {
		return entities.TargetSummary{}, nil, err
	}

	if err := checkOwnership(&rank.Attachment, summary.Target, author, "rank", id); err != nil {
		return entities.TargetSummary{}, nil, err
	}
	return summary, rank, nil
}

func (s *RankService) committed(
	ctx context.Context,
	operation string,
	eventType entities.TargetEventType,
	summary entities.TargetSummary,
	author *entities.User,
	rank *entities.Rank,
	average float64,
) *RankResult {
	observability.RecordRankWrite(ctx, s.metrics, operation, string(summary.Target.Kind))
	observability.LoggerFromContext(ctx).Info().
		Str("operation", operation).
		Str("target", summary.Target.String()).
		Str("rank_id", rank.ID).
		Float64("average_rank", average).
		Msg("rank committed")

	publishEvent(ctx, s.eventBus, entities.NewTargetEvent(eventType, summary.Target, average))

	rank.Label = summary.Describe(author.Username)
	return &RankResult{Rank: rank, AverageRank: average}
}
