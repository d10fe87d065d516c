package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/hospitalservices/internal/api/handlers"
	"github.com/zatekoja/hospitalservices/internal/application/services"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

type stubCatalogWriter struct {
	categoryInput services.CategoryInput
	hospitalInput services.HospitalInput
	serviceInput  services.ServiceInput
	key           string
	err           error
}

func (s *stubCatalogWriter) CreateCategory(ctx context.Context, input services.CategoryInput) (*entities.Category, error) {
	s.categoryInput = input
	return &entities.Category{ID: "c1", Title: *input.Title, Slug: *input.Slug}, s.err
}

func (s *stubCatalogWriter) UpdateCategory(ctx context.Context, slug string, input services.CategoryInput) (*entities.Category, error) {
	s.key, s.categoryInput = slug, input
	return &entities.Category{ID: "c1", Slug: slug}, s.err
}

func (s *stubCatalogWriter) DeleteCategory(ctx context.Context, slug string) error {
	s.key = slug
	return s.err
}

func (s *stubCatalogWriter) CreateHospital(ctx context.Context, input services.HospitalInput) (*entities.Hospital, error) {
	s.hospitalInput = input
	return &entities.Hospital{ID: "h1"}, s.err
}

func (s *stubCatalogWriter) UpdateHospital(ctx context.Context, slug string, input services.HospitalInput) (*entities.Hospital, error) {
	s.key, s.hospitalInput = slug, input
	return &entities.Hospital{ID: "h1", Slug: slug}, s.err
}

func (s *stubCatalogWriter) DeleteHospital(ctx context.Context, slug string) error {
	s.key = slug
	return s.err
}

func (s *stubCatalogWriter) CreateService(ctx context.Context, input services.ServiceInput) (*entities.Service, error) {
	s.serviceInput = input
	if s.err != nil {
		return nil, s.err
	}
	return &entities.Service{ID: "s1"}, nil
}

func (s *stubCatalogWriter) UpdateService(ctx context.Context, id string, input services.ServiceInput) (*entities.Service, error) {
	s.key, s.serviceInput = id, input
	return &entities.Service{ID: id}, s.err
}

func (s *stubCatalogWriter) DeleteService(ctx context.Context, id string) error {
	s.key = id
	return s.err
}

func TestAdminHandler_CreateCategory(t *testing.T) {
	writer := &stubCatalogWriter{}
	handler := handlers.NewAdminHandler(writer)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/categories", strings.NewReader(`{"title":"Surgery","slug":"surgery"}`))
	w := httptest.NewRecorder()
	handler.CreateCategory(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "surgery", decodeBody(t, w)["slug"])
}

func TestAdminHandler_CreateCategory_TitleTooLong(t *testing.T) {
	writer := &stubCatalogWriter{}
	handler := handlers.NewAdminHandler(writer)

	body := `{"title":"` + strings.Repeat("x", 65) + `","slug":"surgery"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/categories", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.CreateCategory(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], `"title"`)
	assert.Nil(t, writer.categoryInput.Title)
}

func TestAdminHandler_UpdateHospital_Partial(t *testing.T) {
	writer := &stubCatalogWriter{}
	handler := handlers.NewAdminHandler(writer)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/hospitals/clinic", strings.NewReader(`{"is_on_main":true,"category":""}`))
	req.SetPathValue("slug", "clinic")
	w := httptest.NewRecorder()
	handler.UpdateHospital(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "clinic", writer.key)
	assert.Nil(t, writer.hospitalInput.Name)
	require.NotNil(t, writer.hospitalInput.IsOnMain)
	assert.True(t, *writer.hospitalInput.IsOnMain)
	require.NotNil(t, writer.hospitalInput.Category)
	assert.Empty(t, *writer.hospitalInput.Category)
}

func TestAdminHandler_CreateService_PriceViolation(t *testing.T) {
	writer := &stubCatalogWriter{err: apperrors.NewValidationError(apperrors.CodeExclusivityViolation, "fixed price and price range are mutually exclusive")}
	handler := handlers.NewAdminHandler(writer)

	body := `{"name":"MRI","hospital":"clinic","price":100,"max_price":200}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/services", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.CreateService(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "EXCLUSIVITY_VIOLATION", decodeBody(t, w)["code"])
	require.NotNil(t, writer.serviceInput.Price)
	assert.Equal(t, 100.0, *writer.serviceInput.Price)
}

func TestAdminHandler_Deletes(t *testing.T) {
	writer := &stubCatalogWriter{}
	handler := handlers.NewAdminHandler(writer)

	tests := []struct {
		name    string
		param   string
		value   string
		handler http.HandlerFunc
	}{
		{"category", "slug", "surgery", handler.DeleteCategory},
		{"hospital", "slug", "clinic", handler.DeleteHospital},
		{"service", "id", "s1", handler.DeleteService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/admin/"+tt.name+"/"+tt.value, nil)
			req.SetPathValue(tt.param, tt.value)
			w := httptest.NewRecorder()
			tt.handler(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.value, writer.key)
		})
	}
}

func TestAdminHandler_DuplicateSlug(t *testing.T) {
	writer := &stubCatalogWriter{err: apperrors.NewConflictError(apperrors.CodeDuplicateSlug, "slug is already taken")}
	handler := handlers.NewAdminHandler(writer)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/categories", strings.NewReader(`{"title":"Surgery","slug":"surgery"}`))
	w := httptest.NewRecorder()
	handler.CreateCategory(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DUPLICATE_SLUG", decodeBody(t, w)["code"])
}
