package repositories

import (
	"context"

	"github.com/zatekoja/hospitalservices/internal/domain/entities"
)

// Ordering of comment and rank listings
type Ordering string

const (
	OrderNewestFirst Ordering = "-updated_at"
	OrderOldestFirst Ordering = "updated_at"
)

// ParseOrdering accepts the two supported orderings; anything else is newest first
func ParseOrdering(value string) Ordering {
	if Ordering(value) == OrderOldestFirst {
		return OrderOldestFirst
	}
	return OrderNewestFirst
}

// AttachmentFilter narrows a comment or rank listing of one target
type AttachmentFilter struct {
	Target   entities.TargetRef
	AuthorID string
	Ordering Ordering
	Limit    int
	Offset   int
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *entities.Comment) error
	GetByID(ctx context.Context, id string) (*entities.Comment, error)
	List(ctx context.Context, filter AttachmentFilter) ([]*entities.Comment, error)
	// Update changes the text only; author and target are immutable
	Update(ctx context.Context, comment *entities.Comment) error
	Delete(ctx context.Context, id string) error
}

// RankLedger owns the ranks of every target and is the only writer of
// average_rank. Each mutation recomputes the target's average in the same
// transaction and returns it.
type RankLedger interface {
	// Create inserts a rank, failing with DuplicateRank when the author
	// already ranked the target
	Create(ctx context.Context, rank *entities.Rank) (float64, error)

	// Update changes the value of an existing rank
	Update(ctx context.Context, rank *entities.Rank) (float64, error)

	// Delete removes a rank
	Delete(ctx context.Context, rank *entities.Rank) (float64, error)

	GetByID(ctx context.Context, id string) (*entities.Rank, error)
	List(ctx context.Context, filter AttachmentFilter) ([]*entities.Rank, error)

	// Recompute rescans the target's ranks and persists the average
	Recompute(ctx context.Context, target entities.TargetRef) (float64, error)
}
