package services

import (
	"context"
	"fmt"

	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/providers"
	"github.com/zatekoja/hospitalservices/internal/domain/repositories"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

// TargetResolver turns the URL form of a target (a hospital slug or a
// service id) into the reference stored on comments and ranks.
type TargetResolver struct {
	hospitals repositories.HospitalRepository
	services  repositories.ServiceRepository
}

// NewTargetResolver creates a new target resolver
func NewTargetResolver(hospitals repositories.HospitalRepository, services repositories.ServiceRepository) *TargetResolver {
	return &TargetResolver{hospitals: hospitals, services: services}
}

// Resolve looks the target up and returns its reference and display names
func (r *TargetResolver) Resolve(ctx context.Context, kind entities.TargetKind, key string) (entities.TargetSummary, error) {
	switch kind {
	case entities.TargetHospital:
		hospital, err := r.hospitals.GetBySlug(ctx, key)
		if err != nil {
			return entities.TargetSummary{}, err
		}
		return entities.TargetSummary{
			Target: entities.HospitalTarget(hospital.ID),
			Name:   hospital.Name,
		}, nil

	case entities.TargetService:
		service, err := r.services.GetByID(ctx, key)
		if err != nil {
			return entities.TargetSummary{}, err
		}
		hospital, err := r.hospitals.GetByID(ctx, service.HospitalID)
		if err != nil {
			return entities.TargetSummary{}, err
		}
		return entities.TargetSummary{
			Target:       entities.ServiceTarget(service.ID),
			Name:         service.Name,
			HospitalName: hospital.Name,
		}, nil
	}

	return entities.TargetSummary{}, apperrors.NewValidationError(apperrors.CodeInvalidInput, fmt.Sprintf("unknown target kind %q", kind))
}

func requireAuthor(author *entities.User) error {
	if author == nil || author.ID == "" {
		return apperrors.NewUnauthorizedError("authentication credentials were not provided")
	}
	return nil
}

// checkOwnership reports NotFound when the attachment belongs to another
// target and Forbidden when the caller did not write it
func checkOwnership(attachment *entities.Attachment, target entities.TargetRef, author *entities.User, what, id string) error {
	if attachment.Target != target {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s with id %s not found", what, id))
	}
	if attachment.AuthorID != author.ID {
		return apperrors.NewForbiddenError(fmt.Sprintf("only the author can modify this %s", what))
	}
	return nil
}

// authorNames maps author ids to usernames, falling back to the id for
// authors that were never projected
func authorNames(ctx context.Context, users repositories.UserRepository, ids []string) (map[string]string, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	found, err := users.GetByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(unique))
	for _, id := range unique {
		if user, ok := found[id]; ok && user.Username != "" {
			names[id] = user.Username
		} else {
			names[id] = id
		}
	}
	return names, nil
}

// publishEvent emits an event on the catalog channel; failures are logged
func publishEvent(ctx context.Context, bus providers.EventBus, event *entities.TargetEvent) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, providers.EventChannelCatalogUpdates, event); err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("event_type", string(event.Type)).
			Msg("failed to publish event")
	}
}
