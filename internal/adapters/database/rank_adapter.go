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
	"github.com/zatekoja/hospitalservices/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
	"github.com/zatekoja/hospitalservices/pkg/retry"
)

var rankColumns = []interface{}{"id", "value", "author_id", "hospital_id", "service_id", "created_at", "updated_at"}

// RankAdapter implements RankLedger on Postgres. Every mutation locks the
// target row, writes the rank and recomputes the target's average in one
// transaction; serialization failures and deadlocks are retried.
type RankAdapter struct {
	client *postgres.Client
	db     *goqu.Database
	retry  retry.Config
}

// NewRankAdapter creates a new rank ledger adapter
func NewRankAdapter(client *postgres.Client) repositories.RankLedger {
	return &RankAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
		retry:  retry.TransactionConfig(isRetryable),
	}
}

func scanRank(row rowScanner) (*entities.Rank, error) {
	rank := &entities.Rank{}
	var attachment attachmentRow

	dest := []interface{}{&rank.ID, &rank.Value}
	dest = append(dest, attachment.dest()...)
	dest = append(dest, &rank.CreatedAt, &rank.UpdatedAt)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if err := attachment.toAttachment(&rank.Attachment); err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("rank %s has an invalid target", rank.ID), err)
	}
	return rank, nil
}

// Create inserts a rank and recomputes its target's average. A second rank
// by the same author on the same target hits the unique index and fails
// with DuplicateRank, leaving the average untouched.
func (a *RankAdapter) Create(ctx context.Context, rank *entities.Rank) (float64, error) {
	if err := rank.Validate(); err != nil {
		return 0, err
	}
	if rank.ID == "" {
		rank.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	rank.CreatedAt, rank.UpdatedAt = now, now

	record := attachmentRecord(&rank.Attachment)
	record["id"] = rank.ID
	record["value"] = rank.Value

	query, args, err := a.db.Insert("ranks").Rows(record).ToSQL()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build insert query", err)
	}

	var average float64
	err = a.inTx(ctx, "create rank", func(tx *sql.Tx) error {
		if err := a.lockTarget(ctx, tx, rank.Target); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
		average, err = a.recompute(ctx, tx, rank.Target)
		return err
	})
	if err != nil {
		return 0, err
	}

	return average, nil
}

// Update changes the value of a rank and recomputes its target's average
func (a *RankAdapter) Update(ctx context.Context, rank *entities.Rank) (float64, error) {
	if err := rank.Validate(); err != nil {
		return 0, err
	}
	rank.UpdatedAt = time.Now().UTC()

	query, args, err := a.db.Update("ranks").
		Set(goqu.Record{
			"value":      rank.Value,
			"updated_at": rank.UpdatedAt,
		}).
		Where(goqu.Ex{"id": rank.ID}).
		ToSQL()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build update query", err)
	}

	var average float64
	err = a.inTx(ctx, "update rank", func(tx *sql.Tx) error {
		if err := a.lockTarget(ctx, tx, rank.Target); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		if err := expectAffected(result, fmt.Sprintf("rank with id %s not found", rank.ID)); err != nil {
			return err
		}
		average, err = a.recompute(ctx, tx, rank.Target)
		return err
	})
	if err != nil {
		return 0, err
	}

	return average, nil
}

// Delete removes a rank and recomputes its target's average
func (a *RankAdapter) Delete(ctx context.Context, rank *entities.Rank) (float64, error) {
	if err := rank.Target.Validate(); err != nil {
		return 0, err
	}

	query, args, err := a.db.Delete("ranks").Where(goqu.Ex{"id": rank.ID}).ToSQL()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build delete query", err)
	}

	var average float64
	err = a.inTx(ctx, "delete rank", func(tx *sql.Tx) error {
		if err := a.lockTarget(ctx, tx, rank.Target); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		if err := expectAffected(result, fmt.Sprintf("rank with id %s not found", rank.ID)); err != nil {
			return err
		}
		average, err = a.recompute(ctx, tx, rank.Target)
		return err
	})
	if err != nil {
		return 0, err
	}

	return average, nil
}

// Recompute rescans the target's ranks and persists the average
func (a *RankAdapter) Recompute(ctx context.Context, target entities.TargetRef) (float64, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	var average float64
	err := a.inTx(ctx, "recompute average rank", func(tx *sql.Tx) error {
		if err := a.lockTarget(ctx, tx, target); err != nil {
			return err
		}
		var err error
		average, err = a.recompute(ctx, tx, target)
		return err
	})
	if err != nil {
		return 0, err
	}

	return average, nil
}

// GetByID retrieves a rank by ID
func (a *RankAdapter) GetByID(ctx context.Context, id string) (*entities.Rank, error) {
	query, args, err := a.db.Select(rankColumns...).
		From("ranks").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rank, err := scanRank(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("rank with id %s not found", id))
	}
	if err != nil {
		return nil, translateError(err, "failed to get rank")
	}

	return rank, nil
}

// List retrieves the ranks of one target
func (a *RankAdapter) List(ctx context.Context, filter repositories.AttachmentFilter) ([]*entities.Rank, error) {
	if err := filter.Target.Validate(); err != nil {
		return nil, err
	}

	query, args, err := filterAttachments(a.db.Select(rankColumns...).From("ranks"), filter).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "failed to list ranks")
	}
	defer rows.Close()

	ranks := []*entities.Rank{}
	for rows.Next() {
		rank, err := scanRank(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan rank")
		}
		ranks = append(ranks, rank)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating ranks", err)
	}

	return ranks, nil
}

// inTx runs fn in a transaction, retrying when it lost a race with another one
func (a *RankAdapter) inTx(ctx context.Context, operation string, fn func(tx *sql.Tx) error) error {
	err := retry.DoWithLog(ctx, a.retry, operation,
		func() error {
			return a.client.WithTx(ctx, fn)
		},
		func(attempt int, err error, nextDelay time.Duration) {
			observability.LoggerFromContext(ctx).Warn().
				Err(err).
				Str("operation", operation).
				Int("attempt", attempt).
				Dur("retry_in", nextDelay).
				Msg("rank transaction conflicted, retrying")
		},
	)
	return translateError(err, "failed to "+operation)
}

// lockTarget takes the row lock that serializes recomputes of one target
func (a *RankAdapter) lockTarget(ctx context.Context, tx *sql.Tx, target entities.TargetRef) error {
	query, args, err := a.db.From(target.Table()).
		Select("id").
		Where(goqu.Ex{"id": target.ID}).
		ForUpdate(exp.Wait).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build lock query", err)
	}

	var id string
	err = tx.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s with id %s not found", target.Kind, target.ID))
	}
	return err
}

// recompute rescans every rank of the target and writes the rounded mean back
func (a *RankAdapter) recompute(ctx context.Context, tx *sql.Tx, target entities.TargetRef) (float64, error) {
	query, args, err := a.db.From("ranks").
		Select(goqu.COUNT("*"), goqu.COALESCE(goqu.SUM("value"), 0)).
		Where(targetCondition(target)).
		ToSQL()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build aggregate query", err)
	}

	var count, sum int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&count, &sum); err != nil {
		return 0, err
	}

	average := entities.AverageRank(sum, count)

	query, args, err = a.db.Update(target.Table()).
		Set(goqu.Record{"average_rank": average}).
		Where(goqu.Ex{"id": target.ID}).
		ToSQL()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build average update query", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return 0, err
	}

	return average, nil
}
