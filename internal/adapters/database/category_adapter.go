package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/repositories"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

var categoryColumns = []interface{}{"id", "title", "description", "slug", "created_at", "updated_at"}

// CategoryAdapter implements CategoryRepository
type CategoryAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewCategoryAdapter creates a new category adapter
func NewCategoryAdapter(client *postgres.Client) repositories.CategoryRepository {
	return &CategoryAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new category
func (a *CategoryAdapter) Create(ctx context.Context, category *entities.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	category.CreatedAt, category.UpdatedAt = now, now

	query, args, err := a.db.Insert("categories").Rows(goqu.Record{
		"id":          category.ID,
		"title":       category.Title,
		"description": category.Description,
		"slug":        category.Slug,
		"created_at":  category.CreatedAt,
		"updated_at":  category.UpdatedAt,
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "failed to create category")
	}
	return nil
}

// GetBySlug retrieves a category by slug
func (a *CategoryAdapter) GetBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	query, args, err := a.db.Select(categoryColumns...).
		From("categories").
		Where(goqu.Ex{"slug": slug}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	category := &entities.Category{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&category.ID,
		&category.Title,
		&category.Description,
		&category.Slug,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("category with slug %s not found", slug))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get category", err)
	}

	return category, nil
}

// List retrieves categories ordered by title
func (a *CategoryAdapter) List(ctx context.Context, search string) ([]*entities.Category, error) {
	ds := a.db.Select(categoryColumns...).From("categories")
	if search != "" {
		ds = ds.Where(goqu.C("title").ILike(likePattern(search)))
	}
	ds = ds.Order(goqu.I("title").Asc())

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list categories", err)
	}
	defer rows.Close()

	categories := []*entities.Category{}
	for rows.Next() {
		category := &entities.Category{}
		if err := rows.Scan(
			&category.ID,
			&category.Title,
			&category.Description,
			&category.Slug,
			&category.CreatedAt,
			&category.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan category", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating categories", err)
	}

	return categories, nil
}

// Update updates a category by id
func (a *CategoryAdapter) Update(ctx context.Context, category *entities.Category) error {
	category.UpdatedAt = time.Now().UTC()

	query, args, err := a.db.Update("categories").
		Set(goqu.Record{
			"title":       category.Title,
			"description": category.Description,
			"slug":        category.Slug,
			"updated_at":  category.UpdatedAt,
		}).
		Where(goqu.Ex{"id": category.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "failed to update category")
	}

	return expectAffected(result, fmt.Sprintf("category with id %s not found", category.ID))
}

// Delete deletes a category by slug
func (a *CategoryAdapter) Delete(ctx context.Context, slug string) error {
	query, args, err := a.db.Delete("categories").Where(goqu.Ex{"slug": slug}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "failed to delete category")
	}

	return expectAffected(result, fmt.Sprintf("category with slug %s not found", slug))
}

// expectAffected turns a write that touched no rows into NotFound
func expectAffected(result sql.Result, notFound string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(notFound)
	}
	return nil
}
