package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/hospitalservices/internal/application/services"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
)

// CatalogWriter defines the administrative catalog writes
type CatalogWriter interface {
	CreateCategory(ctx context.Context, input services.CategoryInput) (*entities.Category, error)
	UpdateCategory(ctx context.Context, slug string, input services.CategoryInput) (*entities.Category, error)
	DeleteCategory(ctx context.Context, slug string) error
	CreateHospital(ctx context.Context, input services.HospitalInput) (*entities.Hospital, error)
	UpdateHospital(ctx context.Context, slug string, input services.HospitalInput) (*entities.Hospital, error)
	DeleteHospital(ctx context.Context, slug string) error
	CreateService(ctx context.Context, input services.ServiceInput) (*entities.Service, error)
	UpdateService(ctx context.Context, id string, input services.ServiceInput) (*entities.Service, error)
	DeleteService(ctx context.Context, id string) error
}

// AdminHandler handles catalog writes. Routes are mounted behind the admin
// role check.
type AdminHandler struct {
	catalog CatalogWriter
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(catalog CatalogWriter) *AdminHandler {
	return &AdminHandler{catalog: catalog}
}

// CreateCategory handles POST /api/admin/categories
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input services.CategoryInput
	if err := decodePayload(r, &input); err != nil {
		respondWithError(w, r, err)
		return
	}
	category, err := h.catalog.CreateCategory(r.Context(), input)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, category)
}

// UpdateCategory handles PATCH /api/admin/categories/{slug}
func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var input services.CategoryInput
	if err := decodePayload(r, &input); err != nil {
		respondWithError(w, r, err)
		return
	}
	category, err := h.catalog.UpdateCategory(r.Context(), r.PathValue("slug"), input)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/admin/categories/{slug}
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteCategory(r.Context(), r.PathValue("slug")); err != nil {
		respondWithError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateHospital handles POST /api/admin/hospitals
func (h *AdminHandler) CreateHospital(w http.ResponseWriter, r *http.Request) {
	var input services.HospitalInput
	if err := decodePayload(r, &input); err != nil {
		respondWithError(w, r, err)
		return
	}
	hospital, err := h.catalog.CreateHospital(r.Context(), input)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, hospital)
}

// UpdateHospital handles PATCH /api/admin/hospitals/{slug}
func (h *AdminHandler) UpdateHospital(w http.ResponseWriter, r *http.Request) {
	var input services.HospitalInput
	if err := decodePayload(r, &input); err != nil {
		respondWithError(w, r, err)
		return
	}
	hospital, err := h.catalog.UpdateHospital(r.Context(), r.PathValue("slug"), input)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, hospital)
}

// DeleteHospital handles DELETE /api/admin/hospitals/{slug}
func (h *AdminHandler) DeleteHospital(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteHospital(r.Context(), r.PathValue("slug")); err != nil {
		respondWithError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateService handles POST /api/admin/services
func (h *AdminHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var input services.ServiceInput
	if err := decodePayload(r, &input); err != nil {
		respondWithError(w, r, err)
		return
	}
	service, err := h.catalog.CreateService(r.Context(), input)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, service)
}

// UpdateService handles PATCH /api/admin/services/{id}
func (h *AdminHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var input services.ServiceInput
	if err := decodePayload(r, &input); err != nil {
		respondWithError(w, r, err)
		return
	}
	service, err := h.catalog.UpdateService(r.Context(), r.PathValue("id"), input)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, service)
}

// DeleteService handles DELETE /api/admin/services/{id}
func (h *AdminHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteService(r.Context(), r.PathValue("id")); err != nil {
		respondWithError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
