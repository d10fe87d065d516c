package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/repositories"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

// ServiceAdapter implements ServiceRepository
type ServiceAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewServiceAdapter creates a new service adapter
func NewServiceAdapter(client *postgres.Client) repositories.ServiceRepository {
	return &ServiceAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

func (a *ServiceAdapter) selectServices() *goqu.SelectDataset {
	return a.db.From(goqu.T("services").As("s")).Select(
		goqu.I("s.id"),
		goqu.I("s.name"),
		goqu.I("s.description"),
		goqu.I("s.price"),
		goqu.I("s.min_price"),
		goqu.I("s.max_price"),
		goqu.I("s.hospital_id"),
		goqu.COALESCE(goqu.I("s.average_rank"), 0).As("average_rank"),
		goqu.I("s.category_id"),
		goqu.I("s.created_at"),
		goqu.I("s.updated_at"),
	)
}

func scanService(row rowScanner) (*entities.Service, error) {
	service := &entities.Service{}
	var categoryID sql.NullString

	err := row.Scan(
		&service.ID,
		&service.Name,
		&service.Description,
		&service.Price,
		&service.MinPrice,
		&service.MaxPrice,
		&service.HospitalID,
		&service.AverageRank,
		&categoryID,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	service.CategoryID = nullableString(categoryID)
	return service, nil
}

// Create creates a new service after validating its price
func (a *ServiceAdapter) Create(ctx context.Context, service *entities.Service) error {
	if err := service.PriceSpec.Validate(); err != nil {
		return err
	}
	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	service.CreatedAt, service.UpdatedAt = now, now
	service.AverageRank = 0

	record := serviceRecord(service)
	record["id"] = service.ID
	record["created_at"] = service.CreatedAt

	query, args, err := a.db.Insert("services").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "failed to create service")
	}
	return nil
}

// GetByID retrieves a service by ID
func (a *ServiceAdapter) GetByID(ctx context.Context, id string) (*entities.Service, error) {
	query, args, err := a.selectServices().Where(goqu.I("s.id").Eq(id)).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	service, err := scanService(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("service with id %s not found", id))
	}
	if err != nil {
		return nil, translateError(err, "failed to get service")
	}

	return service, nil
}

// List filters services by category, hospital, name and price bound, ordered
// by name then id so pages are stable
func (a *ServiceAdapter) List(ctx context.Context, filter repositories.ServiceFilter) ([]*entities.Service, error) {
	ds := a.selectServices()

	if filter.CategorySlug != "" {
		ds = ds.InnerJoin(
			goqu.T("categories").As("c"),
			goqu.On(goqu.I("c.id").Eq(goqu.I("s.category_id"))),
		).Where(goqu.I("c.slug").Eq(filter.CategorySlug))
	}

	if filter.HospitalSlug != "" {
		ds = ds.InnerJoin(
			goqu.T("hospitals").As("h"),
			goqu.On(goqu.I("h.id").Eq(goqu.I("s.hospital_id"))),
		).Where(goqu.I("h.slug").Eq(filter.HospitalSlug))
	}

	if filter.HospitalID != "" {
		ds = ds.Where(goqu.I("s.hospital_id").Eq(filter.HospitalID))
	}

	if filter.Search != "" {
		ds = ds.Where(goqu.I("s.name").ILike(likePattern(filter.Search)))
	}

	if condition, ok := priceBoundCondition(filter.Price); ok {
		ds = ds.Where(condition)
	}

	ds = ds.Order(goqu.I("s.name").Asc(), goqu.I("s.id").Asc())

	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "failed to list services")
	}
	defer rows.Close()

	services := []*entities.Service{}
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan service", err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating services", err)
	}

	return services, nil
}

// priceBoundCondition is the SQL form of PriceBound.Matches: a fixed price,
// or the max price of a range, must lie inside the bound
func priceBoundCondition(bound entities.PriceBound) (exp.ExpressionList, bool) {
	if !bound.Active() {
		return nil, false
	}
	within := goqu.Range(*bound.Min, *bound.Max)
	return goqu.Or(
		goqu.And(goqu.I("s.price").Neq(0), goqu.I("s.price").Between(within)),
		goqu.And(goqu.I("s.max_price").Neq(0), goqu.I("s.max_price").Between(within)),
	), true
}

// Update updates a service after re-validating its price. average_rank is left alone.
func (a *ServiceAdapter) Update(ctx context.Context, service *entities.Service) error {
	if err := service.PriceSpec.Validate(); err != nil {
		return err
	}
	service.UpdatedAt = time.Now().UTC()

	query, args, err := a.db.Update("services").
		Set(serviceRecord(service)).
		Where(goqu.Ex{"id": service.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "failed to update service")
	}

	return expectAffected(result, fmt.Sprintf("service with id %s not found", service.ID))
}

// Delete deletes a service together with its comments and ranks
func (a *ServiceAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("services").Where(goqu.Ex{"id": id}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "failed to delete service")
	}

	return expectAffected(result, fmt.Sprintf("service with id %s not found", id))
}

func serviceRecord(service *entities.Service) goqu.Record {
	return goqu.Record{
		"name":        service.Name,
		"description": service.Description,
		"price":       service.Price,
		"min_price":   service.MinPrice,
		"max_price":   service.MaxPrice,
		"hospital_id": service.HospitalID,
		"category_id": nullString(service.CategoryID),
		"updated_at":  service.UpdatedAt,
	}
}
