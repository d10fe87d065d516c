package services

import (
	"context"

	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/providers"
	"github.com/zatekoja/hospitalservices/internal/domain/repositories"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

// CategoryInput carries the writable category fields. Nil fields are left
// unchanged on update.
type CategoryInput struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=64"`
	Description *string `json:"description"`
	Slug        *string `json:"slug" validate:"omitempty,min=1,max=64"`
}

// HospitalInput carries the writable hospital fields. Category is a
// category slug; an empty string clears it.
type HospitalInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=64"`
	Description *string `json:"description"`
	Slug        *string `json:"slug" validate:"omitempty,min=1,max=64"`
	WorkTime    *string `json:"work_time" validate:"omitempty,max=256"`
	SmallImage  *string `json:"small_image"`
	BigImage    *string `json:"big_image"`
	IsOnMain    *bool   `json:"is_on_main"`
	Category    *string `json:"category"`
}

// ServiceInput carries the writable service fields. Hospital is a hospital
// slug and is required on create; Category is a category slug.
type ServiceInput struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=64"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	MinPrice    *float64 `json:"min_price"`
	MaxPrice    *float64 `json:"max_price"`
	Hospital    *string  `json:"hospital"`
	Category    *string  `json:"category"`
}

// ServiceDetail is a service together with its display label
type ServiceDetail struct {
	*entities.Service
	HospitalName string `json:"hospital_name"`
	Label        string `json:"label"`
}

// CatalogService serves the category, hospital and service catalog and its
// administrative writes
type CatalogService struct {
	categories repositories.CategoryRepository
	hospitals  repositories.HospitalRepository
	services   repositories.ServiceRepository
	eventBus   providers.EventBus
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	categories repositories.CategoryRepository,
	hospitals repositories.HospitalRepository,
	services repositories.ServiceRepository,
	eventBus providers.EventBus,
) *CatalogService {
	return &CatalogService{
		categories: categories,
		hospitals:  hospitals,
		services:   services,
		eventBus:   eventBus,
	}
}

// ListCategories returns categories whose title contains search
func (s *CatalogService) ListCategories(ctx context.Context, search string) ([]*entities.Category, error) {
	return s.categories.List(ctx, search)
}

// GetCategory returns a category by slug
func (s *CatalogService) GetCategory(ctx context.Context, slug string) (*entities.Category, error) {
	return s.categories.GetBySlug(ctx, slug)
}

// ListHospitals returns hospitals narrowed by category, name and main page flag
func (s *CatalogService) ListHospitals(ctx context.Context, filter repositories.HospitalFilter) ([]*entities.Hospital, error) {
	return s.hospitals.List(ctx, filter)
}

// GetHospital returns a hospital by slug
func (s *CatalogService) GetHospital(ctx context.Context, slug string) (*entities.Hospital, error) {
	return s.hospitals.GetBySlug(ctx, slug)
}

// ListServices returns services narrowed by category, hospital, name and price bound
func (s *CatalogService) ListServices(ctx context.Context, filter repositories.ServiceFilter) ([]*entities.Service, error) {
	return s.services.List(ctx, filter)
}

// GetService returns a service with the label naming its hospital
func (s *CatalogService) GetService(ctx context.Context, id string) (*ServiceDetail, error) {
	service, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hospital, err := s.hospitals.GetByID(ctx, service.HospitalID)
	if err != nil {
		return nil, err
	}

	return &ServiceDetail{
		Service:      service,
		HospitalName: hospital.Name,
		Label:        service.Label(hospital.Name),
	}, nil
}

// CreateCategory creates a category
func (s *CatalogService) CreateCategory(ctx context.Context, input CategoryInput) (*entities.Category, error) {
	if input.Title == nil || input.Slug == nil {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidInput, "title and slug are required")
	}

	category := &entities.Category{}
	input.apply(category)

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	s.changed(ctx, "category created", category.Slug)
	return category, nil
}

// UpdateCategory applies input to the category identified by slug
func (s *CatalogService) UpdateCategory(ctx context.Context, slug string, input CategoryInput) (*entities.Category, error) {
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	input.apply(category)
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}

	s.changed(ctx, "category updated", category.Slug)
	return category, nil
}

// DeleteCategory deletes a category; its hospitals and services become uncategorized
func (s *CatalogService) DeleteCategory(ctx context.Context, slug string) error {
	if err := s.categories.Delete(ctx, slug); err != nil {
		return err
	}
	s.changed(ctx, "category deleted", slug)
	return nil
}

// CreateHospital creates a hospital with default images where none are given
func (s *CatalogService) CreateHospital(ctx context.Context, input HospitalInput) (*entities.Hospital, error) {
	if input.Name == nil || input.Slug == nil {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidInput, "name and slug are required")
	}

	hospital := &entities.Hospital{}
	input.apply(hospital)
	if err := s.resolveCategory(ctx, input.Category, &hospital.CategoryID); err != nil {
		return nil, err
	}

	if err := s.hospitals.Create(ctx, hospital); err != nil {
		return nil, err
	}

	s.changed(ctx, "hospital created", hospital.Slug)
	return hospital, nil
}

// UpdateHospital applies input to the hospital identified by slug. The
// average rank is never written here.
func (s *CatalogService) UpdateHospital(ctx context.Context, slug string, input HospitalInput) (*entities.Hospital, error) {
	hospital, err := s.hospitals.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	input.apply(hospital)
	if err := s.resolveCategory(ctx, input.Category, &hospital.CategoryID); err != nil {
		return nil, err
	}

	if err := s.hospitals.Update(ctx, hospital); err != nil {
		return nil, err
	}

	s.changed(ctx, "hospital updated", hospital.Slug)
	return hospital, nil
}

// DeleteHospital deletes a hospital with its services, comments and ranks
func (s *CatalogService) DeleteHospital(ctx context.Context, slug string) error {
	hospital, err := s.hospitals.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if err := s.hospitals.Delete(ctx, hospital.ID); err != nil {
		return err
	}

	s.changed(ctx, "hospital deleted", slug)
	return nil
}

// CreateService creates a service after validating its price
func (s *CatalogService) CreateService(ctx context.Context, input ServiceInput) (*entities.Service, error) {
	if input.Name == nil || input.Hospital == nil || *input.Hospital == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidInput, "name and hospital are required")
	}

	service := &entities.Service{}
	input.apply(service)
	if err := service.PriceSpec.Validate(); err != nil {
		return nil, err
	}

	if err := s.resolveHospital(ctx, *input.Hospital, service); err != nil {
		return nil, err
	}
	if err := s.resolveCategory(ctx, input.Category, &service.CategoryID); err != nil {
		return nil, err
	}

	if err := s.services.Create(ctx, service); err != nil {
		return nil, err
	}

	s.changed(ctx, "service created", service.ID)
	return service, nil
}

// UpdateService applies input to a service after validating the resulting
// price. The average rank is never written here.
func (s *CatalogService) UpdateService(ctx context.Context, id string, input ServiceInput) (*entities.Service, error) {
	service, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input.apply(service)
	if err := service.PriceSpec.Validate(); err != nil {
		return nil, err
	}

	if input.Hospital != nil {
		if err := s.resolveHospital(ctx, *input.Hospital, service); err != nil {
			return nil, err
		}
	}
	if err := s.resolveCategory(ctx, input.Category, &service.CategoryID); err != nil {
		return nil, err
	}

	if err := s.services.Update(ctx, service); err != nil {
		return nil, err
	}

	s.changed(ctx, "service updated", service.ID)
	return service, nil
}

// DeleteService deletes a service with its comments and ranks
func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	if err := s.services.Delete(ctx, id); err != nil {
		return err
	}
	s.changed(ctx, "service deleted", id)
	return nil
}

// resolveCategory turns a category slug into its id. A nil slug leaves the
// current value alone and an empty one clears it.
func (s *CatalogService) resolveCategory(ctx context.Context, slug *string, categoryID **string) error {
	if slug == nil {
		return nil
	}
	if *slug == "" {
		*categoryID = nil
		return nil
	}

	category, err := s.categories.GetBySlug(ctx, *slug)
	if err != nil {
		return err
	}
	id := category.ID
	*categoryID = &id
	return nil
}

func (s *CatalogService) resolveHospital(ctx context.Context, slug string, service *entities.Service) error {
	hospital, err := s.hospitals.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	service.HospitalID = hospital.ID
	return nil
}

func (s *CatalogService) changed(ctx context.Context, what, key string) {
	observability.LoggerFromContext(ctx).Info().Str("key", key).Msg(what)
	publishEvent(ctx, s.eventBus, entities.NewCatalogEvent())
}

func (in CategoryInput) apply(category *entities.Category) {
	if in.Title != nil {
		category.Title = *in.Title
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.Slug != nil {
		category.Slug = *in.Slug
	}
}

func (in HospitalInput) apply(hospital *entities.Hospital) {
	if in.Name != nil {
		hospital.Name = *in.Name
	}
	if in.Description != nil {
		hospital.Description = *in.Description
	}
	if in.Slug != nil {
		hospital.Slug = *in.Slug
	}
	if in.WorkTime != nil {
		hospital.WorkTime = *in.WorkTime
	}
	if in.SmallImage != nil {
		hospital.SmallImage = *in.SmallImage
	}
	if in.BigImage != nil {
		hospital.BigImage = *in.BigImage
	}
	if in.IsOnMain != nil {
		hospital.IsOnMain = *in.IsOnMain
	}
}

func (in ServiceInput) apply(service *entities.Service) {
	if in.Name != nil {
		service.Name = *in.Name
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Price != nil {
		service.Price = *in.Price
	}
	if in.MinPrice != nil {
		service.MinPrice = *in.MinPrice
	}
	if in.MaxPrice != nil {
		service.MaxPrice = *in.MaxPrice
	}
}
