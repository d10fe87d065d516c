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
	"github.com/zatekoja/hospitalservices/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

func setupMockDB(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return postgres.NewFromDB(db), mock
}

func expectLock(mock sqlmock.Sqlmock, table, id string) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "`+table+`" WHERE ("id" = '`+id+`') FOR UPDATE`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
}

func expectRecompute(mock sqlmock.Sqlmock, table, column, id string, count, sum int64, average string) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*), COALESCE(SUM("value"), 0) FROM "ranks" WHERE ("`+column+`" = '`+id+`')`)).
		WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(count, sum))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "`+table+`" SET "average_rank"=`+average+` WHERE ("id" = '`+id+`')`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func newRank(value int, target entities.TargetRef) *entities.Rank {
	return &entities.Rank{Value: value, Attachment: entities.Attachment{AuthorID: "u1", Target: target}}
}

func TestRankAdapter_Create(t *testing.T) {
	client, mock := setupMockDB(t)
	ledger := database.NewRankAdapter(client)

	mock.ExpectBegin()
	expectLock(mock, "hospitals", "h1")
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "ranks"`)).WillReturnResult(sqlmock.NewResult(0, 1))
	expectRecompute(mock, "hospitals", "hospital_id", "h1", 4, 29, "7.3")
	mock.ExpectCommit()

	rank := newRank(8, entities.HospitalTarget("h1"))
	average, err := ledger.Create(context.Background(), rank)

	require.NoError(t, err)
	assert.Equal(t, 7.3, average)
	assert.NotEmpty(t, rank.ID)
	assert.False(t, rank.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankAdapter_Create_Duplicate(t *testing.T) {
	client, mock := setupMockDB(t)
	ledger := database.NewRankAdapter(client)

	mock.ExpectBegin()
	expectLock(mock, "services", "s1")
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "ranks"`)).
		WillReturnError(&pq.Error{Code: "23505", Table: "ranks", Constraint: "ranks_author_service_key"})
	mock.ExpectRollback()

	_, err := ledger.Create(context.Background(), newRank(5, entities.ServiceTarget("s1")))

	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeDuplicateRank), "got %v", err)
	// no recompute ran, so the average was never rewritten
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankAdapter_Create_RejectsBeforeWriting(t *testing.T) {
	client, mock := setupMockDB(t)
	ledger := database.NewRankAdapter(client)

	_, err := ledger.Create(context.Background(), newRank(11, entities.HospitalTarget("h1")))
	assert.True(t, apperrors.HasCode(err, apperrors.CodeOutOfRange))

	_, err = ledger.Create(context.Background(), newRank(3, entities.TargetRef{}))
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNeitherSet))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankAdapter_Create_MissingTarget(t *testing.T) {
	client, mock := setupMockDB(t)
	ledger := database.NewRankAdapter(client)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "hospitals"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := ledger.Create(context.Background(), newRank(5, entities.HospitalTarget("missing")))

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound), "got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankAdapter_Create_RetriesSerializationFailure(t *testing.T) {
	client, mock := setupMockDB(t)
	ledger := database.NewRankAdapter(client)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "hospitals"`)).
		WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectRollback()

	mock.ExpectBegin()
	expectLock(mock, "hospitals", "h1")
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "ranks"`)).WillReturnResult(sqlmock.NewResult(0, 1))
	expectRecompute(mock, "hospitals", "hospital_id", "h1", 1, 5, "5")
	mock.ExpectCommit()

	average, err := ledger.Create(context.Background(), newRank(5, entities.HospitalTarget("h1")))

	require.NoError(t, err)
	assert.Equal(t, 5.0, average)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankAdapter_Delete_LastRankResetsAverage(t *testing.T) {
	client, mock := setupMockDB(t)
	ledger := database.NewRankAdapter(client)

	mock.ExpectBegin()
	expectLock(mock, "services", "s1")
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "ranks" WHERE ("id" = 'r1')`)).WillReturnResult(sqlmock.NewResult(0, 1))
	expectRecompute(mock, "services", "service_id", "s1", 0, 0, "0")
	mock.ExpectCommit()

	rank := newRank(5, entities.ServiceTarget("s1"))
	rank.ID = "r1"
	average, err := ledger.Delete(context.Background(), rank)

	require.NoError(t, err)
	assert.Equal(t, 0.0, average)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankAdapter_Update_MissingRank(t *testing.T) {
	client, mock := setupMockDB(t)
	ledger := database.NewRankAdapter(client)

	mock.ExpectBegin()
	expectLock(mock, "hospitals", "h1")
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "ranks"`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	rank := newRank(5, entities.HospitalTarget("h1"))
	rank.ID = "r404"
	_, err := ledger.Update(context.Background(), rank)

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound), "got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankAdapter_Recompute_Idempotent(t *testing.T) {
	client, mock := setupMockDB(t)
	ledger := database.NewRankAdapter(client)

	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		expectLock(mock, "hospitals", "h1")
		expectRecompute(mock, "hospitals", "hospital_id", "h1", 4, 31, "7.8")
		mock.ExpectCommit()
	}

	first, err := ledger.Recompute(context.Background(), entities.HospitalTarget("h1"))
	require.NoError(t, err)
	second, err := ledger.Recompute(context.Background(), entities.HospitalTarget("h1"))
	require.NoError(t, err)

	assert.Equal(t, 7.8, first)
	assert.Equal(t, first, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankAdapter_List(t *testing.T) {
	client, mock := setupMockDB(t)
	ledger := database.NewRankAdapter(client)

	rows := sqlmock.NewRows([]string{"id", "value", "author_id", "hospital_id", "service_id", "created_at", "updated_at"}).
		AddRow("r2", 9, "u2", nil, "s1", fixedTime, fixedTime).
		AddRow("r1", 4, "u1", nil, "s1", fixedTime, fixedTime)
	mock.ExpectQuery(`FROM "ranks" WHERE \("service_id" = 's1'\) ORDER BY "updated_at" DESC`).WillReturnRows(rows)

	ranks, err := ledger.List(context.Background(), repositories.AttachmentFilter{Target: entities.ServiceTarget("s1")})

	require.NoError(t, err)
	require.Len(t, ranks, 2)
	assert.Equal(t, entities.ServiceTarget("s1"), ranks[0].Target)
	assert.Equal(t, 9, ranks[0].Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankAdapter_GetByID_CorruptTarget(t *testing.T) {
	client, mock := setupMockDB(t)
	ledger := database.NewRankAdapter(client)

	rows := sqlmock.NewRows([]string{"id", "value", "author_id", "hospital_id", "service_id", "created_at", "updated_at"}).
		AddRow("r1", 4, "u1", "h1", "s1", fixedTime, fixedTime)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "ranks" WHERE ("id" = 'r1')`)).WillReturnRows(rows)

	_, err := ledger.GetByID(context.Background(), "r1")

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal), "got %v", err)
}
