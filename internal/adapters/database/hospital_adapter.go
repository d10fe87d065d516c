package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/repositories"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

// HospitalAdapter implements HospitalRepository
type HospitalAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewHospitalAdapter creates a new hospital adapter
func NewHospitalAdapter(client *postgres.Client) repositories.HospitalRepository {
	return &HospitalAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

func (a *HospitalAdapter) selectHospitals() *goqu.SelectDataset {
	return a.db.From(goqu.T("hospitals").As("h")).Select(
		goqu.I("h.id"),
		goqu.I("h.name"),
		goqu.I("h.description"),
		goqu.I("h.slug"),
		goqu.I("h.work_time"),
		goqu.I("h.small_image"),
		goqu.I("h.big_image"),
		goqu.I("h.is_on_main"),
		goqu.COALESCE(goqu.I("h.average_rank"), 0).As("average_rank"),
		goqu.I("h.category_id"),
		goqu.I("h.created_at"),
		goqu.I("h.updated_at"),
	)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHospital(row rowScanner) (*entities.Hospital, error) {
	hospital := &entities.Hospital{}
	var categoryID sql.NullString

	err := row.Scan(
		&hospital.ID,
		&hospital.Name,
		&hospital.Description,
		&hospital.Slug,
		&hospital.WorkTime,
		&hospital.SmallImage,
		&hospital.BigImage,
		&hospital.IsOnMain,
		&hospital.AverageRank,
		&categoryID,
		&hospital.CreatedAt,
		&hospital.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	hospital.CategoryID = nullableString(categoryID)
	return hospital, nil
}

// Create creates a new hospital. average_rank starts at 0.
func (a *HospitalAdapter) Create(ctx context.Context, hospital *entities.Hospital) error {
	if hospital.ID == "" {
		hospital.ID = uuid.New().String()
	}
	if hospital.SmallImage == "" {
		hospital.SmallImage = entities.DefaultSmallImage
	}
	if hospital.BigImage == "" {
		hospital.BigImage = entities.DefaultBigImage
	}
	now := time.Now().UTC()
	hospital.CreatedAt, hospital.UpdatedAt = now, now
	hospital.AverageRank = 0

	record := hospitalRecord(hospital)
	record["id"] = hospital.ID
	record["created_at"] = hospital.CreatedAt

	query, args, err := a.db.Insert("hospitals").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "failed to create hospital")
	}
	return nil
}

// GetByID retrieves a hospital by ID
func (a *HospitalAdapter) GetByID(ctx context.Context, id string) (*entities.Hospital, error) {
	return a.getBy(ctx, "id", id)
}

// GetBySlug retrieves a hospital by slug
func (a *HospitalAdapter) GetBySlug(ctx context.Context, slug string) (*entities.Hospital, error) {
	return a.getBy(ctx, "slug", slug)
}

func (a *HospitalAdapter) getBy(ctx context.Context, field, value string) (*entities.Hospital, error) {
	query, args, err := a.selectHospitals().
		Where(goqu.I("h." + field).Eq(value)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	hospital, err := scanHospital(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("hospital with %s %s not found", field, value))
	}
	if err != nil {
		return nil, translateError(err, "failed to get hospital")
	}

	return hospital, nil
}

// List retrieves hospitals with filters
func (a *HospitalAdapter) List(ctx context.Context, filter repositories.HospitalFilter) ([]*entities.Hospital, error) {
	ds := a.selectHospitals()

	if filter.CategorySlug != "" {
		ds = ds.InnerJoin(
			goqu.T("categories").As("c"),
			goqu.On(goqu.I("c.id").Eq(goqu.I("h.category_id"))),
		).Where(goqu.I("c.slug").Eq(filter.CategorySlug))
	}

	if filter.Search != "" {
		ds = ds.Where(goqu.I("h.name").ILike(likePattern(filter.Search)))
	}

	if filter.OnMain != nil {
		ds = ds.Where(goqu.I("h.is_on_main").Eq(*filter.OnMain))
	}

	ds = ds.Order(goqu.I("h.name").Asc(), goqu.I("h.id").Asc())

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
		return nil, apperrors.NewInternalError("failed to list hospitals", err)
	}
	defer rows.Close()

	hospitals := []*entities.Hospital{}
	for rows.Next() {
		hospital, err := scanHospital(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan hospital", err)
		}
		hospitals = append(hospitals, hospital)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating hospitals", err)
	}

	return hospitals, nil
}

// Update updates a hospital. average_rank is left alone.
func (a *HospitalAdapter) Update(ctx context.Context, hospital *entities.Hospital) error {
	hospital.UpdatedAt = time.Now().UTC()

	query, args, err := a.db.Update("hospitals").
		Set(hospitalRecord(hospital)).
		Where(goqu.Ex{"id": hospital.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "failed to update hospital")
	}

	return expectAffected(result, fmt.Sprintf("hospital with id %s not found", hospital.ID))
}

// Delete deletes a hospital together with its services, comments and ranks
func (a *HospitalAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("hospitals").Where(goqu.Ex{"id": id}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "failed to delete hospital")
	}

	return expectAffected(result, fmt.Sprintf("hospital with id %s not found", id))
}

// hospitalRecord holds the columns callers may write
func hospitalRecord(hospital *entities.Hospital) goqu.Record {
	return goqu.Record{
		"name":        hospital.Name,
		"description": hospital.Description,
		"slug":        hospital.Slug,
		"work_time":   hospital.WorkTime,
		"small_image": hospital.SmallImage,
		"big_image":   hospital.BigImage,
		"is_on_main":  hospital.IsOnMain,
		"category_id": nullString(hospital.CategoryID),
		"updated_at":  hospital.UpdatedAt,
	}
}

func nullString(value *string) sql.NullString {
	if value == nil || *value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullableString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	s := value.String
	return &s
}
