package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/hospitalservices/internal/application/services"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/repositories"
)

// CatalogReader defines the catalog reads used by the handler
type CatalogReader interface {
	ListCategories(ctx context.Context, search string) ([]*entities.Category, error)
	GetCategory(ctx context.Context, slug string) (*entities.Category, error)
	ListHospitals(ctx context.Context, filter repositories.HospitalFilter) ([]*entities.Hospital, error)
	GetHospital(ctx context.Context, slug string) (*entities.Hospital, error)
	ListServices(ctx context.Context, filter repositories.ServiceFilter) ([]*entities.Service, error)
	GetService(ctx context.Context, id string) (*services.ServiceDetail, error)
}

// CatalogHandler handles category, hospital and service reads
type CatalogHandler struct {
	catalog CatalogReader
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog CatalogReader) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type hospitalView struct {
	*entities.Hospital
	Label string `json:"label"`
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
		"count":      len(categories),
	})
}

// GetCategory handles GET /api/categories/{slug}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.catalog.GetCategory(r.Context(), r.PathValue("slug"))
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, category)
}

// ListHospitals handles GET /api/hospitals
func (h *CatalogHandler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	onMain, err := optionalBool(r, "on_main")
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	query := r.URL.Query()
	hospitals, err := h.catalog.ListHospitals(r.Context(), repositories.HospitalFilter{
		CategorySlug: query.Get("category"),
		Search:       query.Get("search"),
		OnMain:       onMain,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	views := make([]hospitalView, len(hospitals))
	for i, hospital := range hospitals {
		views[i] = hospitalView{Hospital: hospital, Label: hospital.Label()}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"hospitals": views,
		"count":     len(views),
	})
}

// GetHospital handles GET /api/hospitals/{slug}
func (h *CatalogHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	hospital, err := h.catalog.GetHospital(r.Context(), r.PathValue("slug"))
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, hospitalView{Hospital: hospital, Label: hospital.Label()})
}

// ListServices handles GET /api/services. min_price and max_price must
// both be given to filter; a bound below 1 or an inverted pair is ignored.
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	var bound entities.PriceBound
	if bound.Min, err = optionalFloat(r, "min_price"); err != nil {
		respondWithError(w, r, err)
		return
	}
	if bound.Max, err = optionalFloat(r, "max_price"); err != nil {
		respondWithError(w, r, err)
		return
	}

	query := r.URL.Query()
	result, err := h.catalog.ListServices(r.Context(), repositories.ServiceFilter{
		CategorySlug: query.Get("category"),
		HospitalSlug: query.Get("hospital"),
		Search:       query.Get("search"),
		Price:        bound,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"services": result,
		"count":    len(result),
	})
}

// GetService handles GET /api/services/{id}
func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	service, err := h.catalog.GetService(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, service)
}
