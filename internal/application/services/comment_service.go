package services

import (
	"context"

	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/providers"
	"github.com/zatekoja/hospitalservices/internal/domain/repositories"
)

// ListOptions pages and orders a comment or rank listing
type ListOptions struct {
	Ordering repositories.Ordering
	Limit    int
	Offset   int
}

// CommentService handles comments left on hospitals and services.
type CommentService struct {
	comments repositories.CommentRepository
	users    repositories.UserRepository
	targets  *TargetResolver
	eventBus providers.EventBus
}

// NewCommentService creates a new comment service.
func NewCommentService(
	comments repositories.CommentRepository,
	users repositories.UserRepository,
	targets *TargetResolver,
	eventBus providers.EventBus,
) *CommentService {
	return &CommentService{
		comments: comments,
		users:    users,
		targets:  targets,
		eventBus: eventBus,
	}
}

// List returns the comments of one target with their labels
func (s *CommentService) List(ctx context.Context, kind entities.TargetKind, key string, opts ListOptions) ([]*entities.Comment, error) {
	summary, err := s.targets.Resolve(ctx, kind, key)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.List(ctx, repositories.AttachmentFilter{
		Target:   summary.Target,
		Ordering: opts.Ordering,
		Limit:    opts.Limit,
		Offset:   opts.Offset,
	})
	if err != nil {
		return nil, err
	}

	if err := s.label(ctx, summary, comments...); err != nil {
		return nil, err
	}
	return comments, nil
}

// Create stores a comment written by author on the target
func (s *CommentService) Create(ctx context.Context, author *entities.User, kind entities.TargetKind, key, text string) (*entities.Comment, error) {
	if err := requireAuthor(author); err != nil {
		return nil, err
	}

	summary, err := s.targets.Resolve(ctx, kind, key)
	if err != nil {
		return nil, err
	}

	comment := &entities.Comment{
		Text: text,
		Attachment: entities.Attachment{
			AuthorID: author.ID,
			Target:   summary.Target,
		},
	}
	if err := comment.Validate(); err != nil {
		return nil, err
	}
	if err := s.users.Upsert(ctx, author); err != nil {
		return nil, err
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	comment.Label = summary.Describe(author.Username)
	publishEvent(ctx, s.eventBus, entities.NewTargetEvent(entities.EventCommentChanged, summary.Target, 0))
	return comment, nil
}

// Update replaces the text of a comment; only its author may do so
func (s *CommentService) Update(ctx context.Context, author *entities.User, kind entities.TargetKind, key, id, text string) (*entities.Comment, error) {
	summary, comment, err := s.owned(ctx, author, kind, key, id)
	if err != nil {
		return nil, err
	}

	comment.Text = text
	if err := comment.Validate(); err != nil {
		return nil, err
	}
	if err := s.users.Upsert(ctx, author); err != nil {
		return nil, err
	}

	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}

	comment.Label = summary.Describe(author.Username)
	publishEvent(ctx, s.eventBus, entities.NewTargetEvent(entities.EventCommentChanged, summary.Target, 0))
	return comment, nil
}

// Delete removes a comment; only its author may do so
func (s *CommentService) Delete(ctx context.Context, author *entities.User, kind entities.TargetKind, key, id string) error {
	summary, comment, err := s.owned(ctx, author, kind, key, id)
	if err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		return err
	}

	publishEvent(ctx, s.eventBus, entities.NewTargetEvent(entities.EventCommentChanged, summary.Target, 0))
	return nil
}

func (s *CommentService) owned(ctx context.Context, author *entities.User, kind entities.TargetKind, key, id string) (entities.TargetSummary, *entities.Comment, error) {
	if err := requireAuthor(author); err != nil {
		return entities.TargetSummary{}, nil, err
	}

	summary, err := s.targets.Resolve(ctx, kind, key)
	if err != nil {
		return entities.TargetSummary{}, nil, err
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return entities.TargetSummary{}, nil, err
	}

	if err := checkOwnership(&comment.Attachment, summary.Target, author, "comment", id); err != nil {
		return entities.TargetSummary{}, nil, err
	}
	return summary, comment, nil
}

func (s *CommentService) label(ctx context.Context, summary entities.TargetSummary, comments ...*entities.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	ids := make([]string, len(comments))
	for i, comment := range comments {
		ids[i] = comment.AuthorID
	}
	names, err := authorNames(ctx, s.users, ids)
	if err != nil {
		return err
	}

	for _, comment := range comments {
		comment.Label = summary.Describe(names[comment.AuthorID])
	}
	return nil
}
