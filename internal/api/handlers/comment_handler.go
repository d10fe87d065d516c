package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/hospitalservices/internal/api/middleware"
	"github.com/zatekoja/hospitalservices/internal/application/services"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
)

// CommentService defines the comment operations used by the handler
type CommentService interface {
	List(ctx context.Context, kind entities.TargetKind, key string, opts services.ListOptions) ([]*entities.Comment, error)
	Create(ctx context.Context, author *entities.User, kind entities.TargetKind, key, text string) (*entities.Comment, error)
	Update(ctx context.Context, author *entities.User, kind entities.TargetKind, key, id, text string) (*entities.Comment, error)
	Delete(ctx context.Context, author *entities.User, kind entities.TargetKind, key, id string) error
}

// CommentHandler serves the comments of hospitals and services. Each
// method is bound to a target kind when the routes are registered.
type CommentHandler struct {
	service CommentService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type commentRequest struct {
	Text string `json:"text" validate:"required"`
}

// List handles GET .../comments
func (h *CommentHandler) List(kind entities.TargetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := listOptions(r)
		if err != nil {
			respondWithError(w, r, err)
			return
		}

		comments, err := h.service.List(r.Context(), kind, targetKey(r, kind), opts)
		if err != nil {
			respondWithError(w, r, err)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"comments": comments,
			"count":    len(comments),
		})
	}
}

// Create handles POST .../comments
func (h *CommentHandler) Create(kind entities.TargetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload commentRequest
		if err := decodePayload(r, &payload); err != nil {
			respondWithError(w, r, err)
			return
		}

		author := middleware.UserFromContext(r.Context())
		comment, err := h.service.Create(r.Context(), author, kind, targetKey(r, kind), payload.Text)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, comment)
	}
}

// Update handles PATCH .../comments/{commentID}
func (h *CommentHandler) Update(kind entities.TargetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload commentRequest
		if err := decodePayload(r, &payload); err != nil {
			respondWithError(w, r, err)
			return
		}

		author := middleware.UserFromContext(r.Context())
		comment, err := h.service.Update(r.Context(), author, kind, targetKey(r, kind), r.PathValue("commentID"), payload.Text)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, comment)
	}
}

// Delete handles DELETE .../comments/{commentID}
func (h *CommentHandler) Delete(kind entities.TargetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		author := middleware.UserFromContext(r.Context())
		if err := h.service.Delete(r.Context(), author, kind, targetKey(r, kind), r.PathValue("commentID")); err != nil {
			respondWithError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
