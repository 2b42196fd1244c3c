package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/repair-shop-platform/internal/errors"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/services/mocks"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogHandler_List(t *testing.T) {
	mockCatalog := mocks.NewCatalogService(t)
	catalogHandler := handlers.NewCatalogHandler(mockCatalog)

	mockCatalog.On("List", mock.Anything, models.LookupMarcas).
		Return([]*models.Lookup{{ID: uuid.New(), Name: "Apple"}, {ID: uuid.New(), Name: "Samsung"}}, nil).Once()

	req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/marcas", nil, nil)
	rr := httptest.NewRecorder()

	catalogHandler.List(models.LookupMarcas).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []models.Lookup
	decodeData(t, rr, &got)
	assert.Len(t, got, 2)
}

func TestCatalogHandler_Create(t *testing.T) {

	t.Run("Success - Created", func(t *testing.T) {
		mockCatalog := mocks.NewCatalogService(t)
		catalogHandler := handlers.NewCatalogHandler(mockCatalog)

		mockCatalog.On("Create", mock.Anything, models.LookupFallas, &models.LookupRequest{Name: "Pantalla"}).
			Return(&models.Lookup{ID: uuid.New(), Name: "Pantalla"}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/fallas", strings.NewReader(`{"name": "Pantalla"}`), uuid.New(), nil)
		rr := httptest.NewRecorder()

		catalogHandler.Create(models.LookupFallas).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Failure - Duplicate name", func(t *testing.T) {
		mockCatalog := mocks.NewCatalogService(t)
		catalogHandler := handlers.NewCatalogHandler(mockCatalog)

		mockCatalog.On("Create", mock.Anything, models.LookupCategories, mock.Anything).
			Return(nil, appErrors.DuplicateEntryError("Category already exists")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/categories", strings.NewReader(`{"name": "Fundas"}`), uuid.New(), nil)
		rr := httptest.NewRecorder()

		catalogHandler.Create(models.LookupCategories).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Failure - Missing name", func(t *testing.T) {
		catalogHandler := handlers.NewCatalogHandler(mocks.NewCatalogService(t))

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/categories", strings.NewReader(`{"description": "x"}`), uuid.New(), nil)
		rr := httptest.NewRecorder()

		catalogHandler.Create(models.LookupCategories).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeValidation, decodeError(t, rr).Code)
	})
}

func TestCatalogHandler_GetUpdateDelete(t *testing.T) {
	mockCatalog := mocks.NewCatalogService(t)
	catalogHandler := handlers.NewCatalogHandler(mockCatalog)
	id := uuid.New()
	params := map[string]string{"id": id.String()}

	mockCatalog.On("Get", mock.Anything, models.LookupMarcas, id).Return(nil, appErrors.NotFoundError("Marca not found")).Once()
	mockCatalog.On("Update", mock.Anything, models.LookupMarcas, id, mock.Anything).Return(&models.Lookup{ID: id, Name: "Xiaomi"}, nil).Once()
	mockCatalog.On("Delete", mock.Anything, models.LookupMarcas, id).Return(appErrors.BadRequestError("Marca is still in use")).Once()

	rr := httptest.NewRecorder()
	catalogHandler.Get(models.LookupMarcas).ServeHTTP(rr, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/marcas/"+id.String(), nil, params))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	catalogHandler.Update(models.LookupMarcas).ServeHTTP(rr, testutils.CreateTestRequestWithContext(http.MethodPut, "/api/marcas/"+id.String(),
		strings.NewReader(`{"name": "Xiaomi"}`), uuid.New(), params))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	catalogHandler.Delete(models.LookupMarcas).ServeHTTP(rr, testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/marcas/"+id.String(), nil, uuid.New(), params))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
