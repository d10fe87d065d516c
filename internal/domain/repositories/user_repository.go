package repositories

import (
	"context"

	"github.com/zatekoja/hospitalservices/internal/domain/entities"
)

// UserRepository stores the local projection of authenticated identities
type UserRepository interface {
	// Upsert creates the user or refreshes its username
	Upsert(ctx context.Context, user *entities.User) error

	// GetByIDs retrieves users keyed by id; unknown ids are skipped
	GetByIDs(ctx context.Context, ids []string) (map[string]*entities.User, error)
}
