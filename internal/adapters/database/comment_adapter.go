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

var commentColumns = []interface{}{"id", "text", "author_id", "hospital_id", "service_id", "created_at", "updated_at"}

// CommentAdapter implements CommentRepository
type CommentAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewCommentAdapter creates a new comment adapter
func NewCommentAdapter(client *postgres.Client) repositories.CommentRepository {
	return &CommentAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

func scanComment(row rowScanner) (*entities.Comment, error) {
	comment := &entities.Comment{}
	var attachment attachmentRow

	dest := []interface{}{&comment.ID, &comment.Text}
	dest = append(dest, attachment.dest()...)
	dest = append(dest, &comment.CreatedAt, &comment.UpdatedAt)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if err := attachment.toAttachment(&comment.Attachment); err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("comment %s has an invalid target", comment.ID), err)
	}
	return comment, nil
}

// Create creates a new comment
func (a *CommentAdapter) Create(ctx context.Context, comment *entities.Comment) error {
	if err := comment.Validate(); err != nil {
		return err
	}
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	comment.CreatedAt, comment.UpdatedAt = now, now

	record := attachmentRecord(&comment.Attachment)
	record["id"] = comment.ID
	record["text"] = comment.Text

	query, args, err := a.db.Insert("comments").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "failed to create comment")
	}
	return nil
}

// GetByID retrieves a comment by ID
func (a *CommentAdapter) GetByID(ctx context.Context, id string) (*entities.Comment, error) {
	query, args, err := a.db.Select(commentColumns...).
		From("comments").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	comment, err := scanComment(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("comment with id %s not found", id))
	}
	if err != nil {
		return nil, translateError(err, "failed to get comment")
	}

	return comment, nil
}

// List retrieves the comments of one target
func (a *CommentAdapter) List(ctx context.Context, filter repositories.AttachmentFilter) ([]*entities.Comment, error) {
	if err := filter.Target.Validate(); err != nil {
		return nil, err
	}

	query, args, err := filterAttachments(a.db.Select(commentColumns...).From("comments"), filter).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "failed to list comments")
	}
	defer rows.Close()

	comments := []*entities.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan comment")
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating comments", err)
	}

	return comments, nil
}

// Update changes the text of a comment
func (a *CommentAdapter) Update(ctx context.Context, comment *entities.Comment) error {
	if err := comment.Validate(); err != nil {
		return err
	}
	comment.UpdatedAt = time.Now().UTC()

	query, args, err := a.db.Update("comments").
		Set(goqu.Record{
			"text":       comment.Text,
			"updated_at": comment.UpdatedAt,
		}).
		Where(goqu.Ex{"id": comment.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "failed to update comment")
	}

	return expectAffected(result, fmt.Sprintf("comment with id %s not found", comment.ID))
}

// Delete deletes a comment
func (a *CommentAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("comments").Where(goqu.Ex{"id": id}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "failed to delete comment")
	}

	return expectAffected(result, fmt.Sprintf("comment with id %s not found", id))
}
