package database_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/hospitalservices/internal/adapters/database"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/repositories"
	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

var hospitalRowColumns = []string{
	"id", "name", "description", "slug", "work_time", "small_image", "big_image",
	"is_on_main", "average_rank", "category_id", "created_at", "updated_at",
}

func TestCategoryAdapter_Create_DuplicateSlug(t *testing.T) {
	client, mock := setupMockDB(t)
	repo := database.NewCategoryAdapter(client)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "categories"`)).
		WillReturnError(&pq.Error{Code: "23505", Table: "categories", Constraint: "categories_slug_key"})

	err := repo.Create(context.Background(), &entities.Category{Title: "Surgery", Slug: "surgery"})

	assert.True(t, apperrors.HasCode(err, apperrors.CodeDuplicateSlug), "got %v", err)
}

func TestCategoryAdapter_List_Search(t *testing.T) {
	client, mock := setupMockDB(t)
	repo := database.NewCategoryAdapter(client)

	rows := sqlmock.NewRows([]string{"id", "title", "description", "slug", "created_at", "updated_at"}).
		AddRow("c1", "Dentistry", "", "dentistry", fixedTime, fixedTime)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE ("title" ILIKE '%dent%') ORDER BY "title" ASC`)).WillReturnRows(rows)

	categories, err := repo.List(context.Background(), "dent")

	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "dentistry", categories[0].Slug)
}

func TestCategoryAdapter_Delete_NotFound(t *testing.T) {
	client, mock := setupMockDB(t)
	repo := database.NewCategoryAdapter(client)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "categories" WHERE ("slug" = 'gone')`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "gone")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestHospitalAdapter_GetBySlug(t *testing.T) {
	client, mock := setupMockDB(t)
	repo := database.NewHospitalAdapter(client)

	rows := sqlmock.NewRows(hospitalRowColumns).
		AddRow("h1", "City Clinic", "", "city-clinic", "Mon-Fri 8:00-20:00", entities.DefaultSmallImage, entities.DefaultBigImage, true, 7.3, nil, fixedTime, fixedTime)
	mock.ExpectQuery(regexp.QuoteMeta(`COALESCE("h"."average_rank", 0) AS "average_rank"`) + `.*` + regexp.QuoteMeta(`WHERE ("h"."slug" = 'city-clinic')`)).
		WillReturnRows(rows)

	hospital, err := repo.GetBySlug(context.Background(), "city-clinic")

	require.NoError(t, err)
	assert.Equal(t, "h1", hospital.ID)
	assert.Equal(t, 7.3, hospital.AverageRank)
	assert.True(t, hospital.IsOnMain)
	assert.Nil(t, hospital.CategoryID)
}

func TestHospitalAdapter_List_Filters(t *testing.T) {
	client, mock := setupMockDB(t)
	repo := database.NewHospitalAdapter(client)

	onMain := true
	mock.ExpectQuery(`INNER JOIN "categories" AS "c" .*"c"\."slug" = 'surgery'.*"h"\."name" ILIKE '%city%'.*"h"\."is_on_main" IS TRUE\)\) ORDER BY "h"\."name" ASC, "h"\."id" ASC LIMIT 10$`).
		WillReturnRows(sqlmock.NewRows(hospitalRowColumns))

	hospitals, err := repo.List(context.Background(), repositories.HospitalFilter{
		CategorySlug: "surgery",
		Search:       "city",
		OnMain:       &onMain,
		Limit:        10,
	})

	require.NoError(t, err)
	assert.Empty(t, hospitals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHospitalAdapter_List_PagesBreakTiesByID(t *testing.T) {
	client, mock := setupMockDB(t)
	repo := database.NewHospitalAdapter(client)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "hospitals" AS "h" ORDER BY "h"."name" ASC, "h"."id" ASC LIMIT 200 OFFSET 200`)).
		WillReturnRows(sqlmock.NewRows(hospitalRowColumns))

	_, err := repo.List(context.Background(), repositories.HospitalFilter{Limit: 200, Offset: 200})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHospitalAdapter_Create_Defaults(t *testing.T) {
	client, mock := setupMockDB(t)
	repo := database.NewHospitalAdapter(client)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "hospitals"`)).WillReturnResult(sqlmock.NewResult(0, 1))

	hospital := &entities.Hospital{Listing: entities.Listing{Name: "City Clinic", AverageRank: 9}, Slug: "city-clinic"}
	require.NoError(t, repo.Create(context.Background(), hospital))

	assert.NotEmpty(t, hospital.ID)
	assert.Equal(t, entities.DefaultSmallImage, hospital.SmallImage)
	assert.Equal(t, entities.DefaultBigImage, hospital.BigImage)
	assert.Zero(t, hospital.AverageRank)
}

func TestCommentAdapter_List_OldestFirst(t *testing.T) {
	client, mock := setupMockDB(t)
	repo := database.NewCommentAdapter(client)

	rows := sqlmock.NewRows([]string{"id", "text", "author_id", "hospital_id", "service_id", "created_at", "updated_at"}).
		AddRow("c1", "Friendly staff", "u1", "h1", nil, fixedTime, fixedTime)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "comments" WHERE ("hospital_id" = 'h1') ORDER BY "updated_at" ASC`)).WillReturnRows(rows)

	comments, err := repo.List(context.Background(), repositories.AttachmentFilter{
		Target:   entities.HospitalTarget("h1"),
		Ordering: repositories.OrderOldestFirst,
	})

	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, entities.HospitalTarget("h1"), comments[0].Target)
	assert.Equal(t, "u1", comments[0].AuthorID)
}

func TestCommentAdapter_Create_TargetCheckViolation(t *testing.T) {
	client, mock := setupMockDB(t)
	repo := database.NewCommentAdapter(client)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "comments"`)).
		WillReturnError(&pq.Error{Code: "23514", Constraint: "comments_target_check"})

	comment := &entities.Comment{Text: "ok", Attachment: entities.Attachment{AuthorID: "u1", Target: entities.ServiceTarget("s1")}}
	err := repo.Create(context.Background(), comment)

	assert.True(t, apperrors.HasCode(err, apperrors.CodeNeitherSet), "got %v", err)
}

func TestUserAdapter_Upsert(t *testing.T) {
	client, mock := setupMockDB(t)
	repo := database.NewUserAdapter(client)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`) + `.*` + regexp.QuoteMeta(`ON CONFLICT (id) DO UPDATE SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user := &entities.User{ID: "u1", Username: "anna"}
	require.NoError(t, repo.Upsert(context.Background(), user))
	assert.False(t, user.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserAdapter_GetByIDs(t *testing.T) {
	client, mock := setupMockDB(t)
	repo := database.NewUserAdapter(client)

	users, err := repo.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, users)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE ("id" IN ('u1', 'u2'))`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "created_at", "updated_at"}).
			AddRow("u1", "anna", fixedTime, fixedTime))

	users, err = repo.GetByIDs(context.Background(), []string{"u1", "u2"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "anna", users["u1"].Username)
}
