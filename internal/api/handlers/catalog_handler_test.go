package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/hospitalservices/internal/api/handlers"
	"github.com/zatekoja/hospitalservices/internal/application/services"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/repositories"
	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

type stubCatalog struct {
	hospitalFilter repositories.HospitalFilter
	serviceFilter  repositories.ServiceFilter
	calls          int
	err            error
}

func (s *stubCatalog) ListCategories(ctx context.Context, search string) ([]*entities.Category, error) {
	s.calls++
	return []*entities.Category{{ID: "c1", Title: "Surgery", Slug: "surgery"}}, s.err
}

func (s *stubCatalog) GetCategory(ctx context.Context, slug string) (*entities.Category, error) {
	s.calls++
	if slug != "surgery" {
		return nil, apperrors.NewNotFoundError("category not found")
	}
	return &entities.Category{ID: "c1", Title: "Surgery", Slug: slug}, nil
}

func (s *stubCatalog) ListHospitals(ctx context.Context, filter repositories.HospitalFilter) ([]*entities.Hospital, error) {
	s.calls++
	s.hospitalFilter = filter
	if s.err != nil {
		return nil, s.err
	}
	return []*entities.Hospital{{ID: "h1", Slug: "clinic", Listing: entities.Listing{Name: "Clinic", AverageRank: 7.3}}}, nil
}

func (s *stubCatalog) GetHospital(ctx context.Context, slug string) (*entities.Hospital, error) {
	s.calls++
	return &entities.Hospital{ID: "h1", Slug: slug, Listing: entities.Listing{Name: "Clinic", AverageRank: 7.3}}, nil
}

func (s *stubCatalog) ListServices(ctx context.Context, filter repositories.ServiceFilter) ([]*entities.Service, error) {
	s.calls++
	s.serviceFilter = filter
	return []*entities.Service{{ID: "s1", HospitalID: "h1", Listing: entities.Listing{Name: "MRI"}}}, nil
}

func (s *stubCatalog) GetService(ctx context.Context, id string) (*services.ServiceDetail, error) {
	s.calls++
	service := &entities.Service{ID: id, HospitalID: "h1", Listing: entities.Listing{Name: "MRI"}}
	return &services.ServiceDetail{Service: service, HospitalName: "Clinic", Label: service.Label("Clinic")}, nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCatalogHandler_ListServices_PriceBound(t *testing.T) {
	catalog := &stubCatalog{}
	handler := handlers.NewCatalogHandler(catalog)

	req := httptest.NewRequest(http.MethodGet, "/api/services?category=mri&min_price=100&max_price=500&search=head", nil)
	w := httptest.NewRecorder()
	handler.ListServices(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	filter := catalog.serviceFilter
	assert.Equal(t, "mri", filter.CategorySlug)
	assert.Equal(t, "head", filter.Search)
	require.NotNil(t, filter.Price.Min)
	require.NotNil(t, filter.Price.Max)
	assert.Equal(t, 100.0, *filter.Price.Min)
	assert.Equal(t, 500.0, *filter.Price.Max)
	assert.Zero(t, filter.Limit, "no limit unless the client asks for one")
	assert.Zero(t, filter.Offset)

	body := decodeBody(t, w)
	assert.EqualValues(t, 1, body["count"])
}

func TestCatalogHandler_ListServices_OneBoundIsPassedThrough(t *testing.T) {
	catalog := &stubCatalog{}
	handler := handlers.NewCatalogHandler(catalog)

	w := httptest.NewRecorder()
	handler.ListServices(w, httptest.NewRequest(http.MethodGet, "/api/services?max_price=500", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, catalog.serviceFilter.Price.Min)
	assert.False(t, catalog.serviceFilter.Price.Active())
}

func TestCatalogHandler_ListServices_BadInput(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"unparseable min", "min_price=cheap&max_price=10"},
		{"unparseable max", "min_price=1&max_price=lots"},
		{"negative offset", "offset=-1"},
		{"zero limit", "limit=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &stubCatalog{}
			handler := handlers.NewCatalogHandler(catalog)

			w := httptest.NewRecorder()
			handler.ListServices(w, httptest.NewRequest(http.MethodGet, "/api/services?"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "INVALID_INPUT", decodeBody(t, w)["code"])
			assert.Zero(t, catalog.calls)
		})
	}
}

func TestCatalogHandler_ListHospitals(t *testing.T) {
	catalog := &stubCatalog{}
	handler := handlers.NewCatalogHandler(catalog)

	req := httptest.NewRequest(http.MethodGet, "/api/hospitals?category=surgery&on_main=true&limit=500&offset=10", nil)
	w := httptest.NewRecorder()
	handler.ListHospitals(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, catalog.hospitalFilter.OnMain)
	assert.True(t, *catalog.hospitalFilter.OnMain)
	assert.Equal(t, 100, catalog.hospitalFilter.Limit)
	assert.Equal(t, 10, catalog.hospitalFilter.Offset)

	body := decodeBody(t, w)
	hospitals := body["hospitals"].([]interface{})
	require.Len(t, hospitals, 1)
	assert.Equal(t, "Clinic (7.3)", hospitals[0].(map[string]interface{})["label"])
}

func TestCatalogHandler_ListHospitals_BadFlag(t *testing.T) {
	handler := handlers.NewCatalogHandler(&stubCatalog{})

	w := httptest.NewRecorder()
	handler.ListHospitals(w, httptest.NewRequest(http.MethodGet, "/api/hospitals?on_main=maybe", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_InternalErrorsAreMasked(t *testing.T) {
	catalog := &stubCatalog{err: assert.AnError}
	handler := handlers.NewCatalogHandler(catalog)

	w := httptest.NewRecorder()
	handler.ListHospitals(w, httptest.NewRequest(http.MethodGet, "/api/hospitals", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "internal server error", body["error"])
	assert.Equal(t, "INTERNAL", body["code"])
}

func TestCatalogHandler_GetCategory(t *testing.T) {
	handler := handlers.NewCatalogHandler(&stubCatalog{})

	req := httptest.NewRequest(http.MethodGet, "/api/categories/surgery", nil)
	req.SetPathValue("slug", "surgery")
	w := httptest.NewRecorder()
	handler.GetCategory(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Surgery", decodeBody(t, w)["title"])

	req = httptest.NewRequest(http.MethodGet, "/api/categories/nope", nil)
	req.SetPathValue("slug", "nope")
	w = httptest.NewRecorder()
	handler.GetCategory(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, w)["code"])
}

func TestCatalogHandler_GetService(t *testing.T) {
	handler := handlers.NewCatalogHandler(&stubCatalog{})

	req := httptest.NewRequest(http.MethodGet, "/api/services/s1", nil)
	req.SetPathValue("id", "s1")
	w := httptest.NewRecorder()
	handler.GetService(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "s1", body["id"])
	assert.Equal(t, "Clinic", body["hospital_name"])
	assert.Equal(t, "MRI - Clinic (0.0)", body["label"])
}
