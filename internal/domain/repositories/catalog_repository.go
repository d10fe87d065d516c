package repositories

import (
	"context"

	"github.com/zatekoja/hospitalservices/internal/domain/entities"
)

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	// Create creates a new category
	Create(ctx context.Context, category *entities.Category) error

	// GetBySlug retrieves a category by its unique slug
	GetBySlug(ctx context.Context, slug string) (*entities.Category, error)

	// List retrieves categories whose title contains search (all when empty)
	List(ctx context.Context, search string) ([]*entities.Category, error)

	// Update updates a category
	Update(ctx context.Context, category *entities.Category) error

	// Delete deletes a category; hospitals and services keep existing uncategorized
	Delete(ctx context.Context, slug string) error
}

// HospitalRepository defines the interface for hospital data operations.
// Update never writes average_rank.
type HospitalRepository interface {
	Create(ctx context.Context, hospital *entities.Hospital) error
	GetByID(ctx context.Context, id string) (*entities.Hospital, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Hospital, error)
	List(ctx context.Context, filter HospitalFilter) ([]*entities.Hospital, error)
	Update(ctx context.Context, hospital *entities.Hospital) error
	// Delete cascades to the hospital's services, comments and ranks
	Delete(ctx context.Context, id string) error
}

// ServiceRepository defines the interface for service data operations.
// Update never writes average_rank.
type ServiceRepository interface {
	Create(ctx context.Context, service *entities.Service) error
	GetByID(ctx context.Context, id string) (*entities.Service, error)
	List(ctx context.Context, filter ServiceFilter) ([]*entities.Service, error)
	Update(ctx context.Context, service *entities.Service) error
	// Delete cascades to the service's comments and ranks
	Delete(ctx context.Context, id string) error
}

// HospitalFilter defines filters for listing hospitals
type HospitalFilter struct {
	CategorySlug string
	Search       string
	OnMain       *bool
	Limit        int
	Offset       int
}

// ServiceFilter defines filters for listing services.
// Category, hospital and search narrow the candidates first; Price then
// selects among them and Limit/Offset page the final result.
type ServiceFilter struct {
	CategorySlug string
	HospitalSlug string
	HospitalID   string
	Search       string
	Price        entities.PriceBound
	Limit        int
	Offset       int
}
