package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/hospitalservices/internal/api/middleware"
	"github.com/zatekoja/hospitalservices/internal/application/services"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
)

// RankService defines the rank operations used by the handler
type RankService interface {
	List(ctx context.Context, kind entities.TargetKind, key string, opts services.ListOptions) ([]*entities.Rank, error)
	Create(ctx context.Context, author *entities.User, kind entities.TargetKind, key string, value int) (*services.RankResult, error)
	Update(ctx context.Context, author *entities.User, kind entities.TargetKind, key, id string, value int) (*services.RankResult, error)
	Delete(ctx context.Context, author *entities.User, kind entities.TargetKind, key, id string) (float64, error)
}

// RankHandler serves the ranks of hospitals and services
type RankHandler struct {
	service RankService
}

// NewRankHandler creates a new rank handler
func NewRankHandler(service RankService) *RankHandler {
	return &RankHandler{service: service}
}

// value is a pointer so that a missing field is told apart from a zero rank
type rankRequest struct {
	Value *int `json:"value" validate:"required"`
}

// List handles GET .../ranks
func (h *RankHandler) List(kind entities.TargetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := listOptions(r)
		if err != nil {
			respondWithError(w, r, err)
			return
		}

		ranks, err := h.service.List(r.Context(), kind, targetKey(r, kind), opts)
		if err != nil {
			respondWithError(w, r, err)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"ranks": ranks,
			"count": len(ranks),
		})
	}
}

// Create handles POST .../ranks
func (h *RankHandler) Create(kind entities.TargetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload rankRequest
		if err := decodePayload(r, &payload); err != nil {
			respondWithError(w, r, err)
			return
		}

		author := middleware.UserFromContext(r.Context())
		result, err := h.service.Create(r.Context(), author, kind, targetKey(r, kind), *payload.Value)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, result)
	}
}

// Update handles PATCH .../ranks/{rankID}
func (h *RankHandler) Update(kind entities.TargetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload rankRequest
		if err := decodePayload(r, &payload); err != nil {
			respondWithError(w, r, err)
			return
		}

		author := middleware.UserFromContext(r.Context())
		result, err := h.service.Update(r.Context(), author, kind, targetKey(r, kind), r.PathValue("rankID"), *payload.Value)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, result)
	}
}

// Delete handles DELETE .../ranks/{rankID}. The body carries the average
// left after the delete.
func (h *RankHandler) Delete(kind entities.TargetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		author := middleware.UserFromContext(r.Context())
		average, err := h.service.Delete(r.Context(), author, kind, targetKey(r, kind), r.PathValue("rankID"))
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]float64{"average_rank": average})
	}
}
