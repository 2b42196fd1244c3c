package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/repair-shop-platform/internal/errors"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/services/mocks"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReportHandler_GeneralSalesReport(t *testing.T) {

	t.Run("Success - Range passed through", func(t *testing.T) {
		mockReports := mocks.NewReportService(t)
		reportHandler := handlers.NewReportHandler(mockReports)

		rng := models.DateRange{
			From: models.NewDate(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
			To:   models.NewDate(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)),
		}
		mockReports.On("GeneralSalesReport", mock.Anything, rng).Return(&models.SalesReport{
			TotalProductosVendidos: 13,
			TotalVentas:            420,
			TopCategoria:           &models.CategoryQuantity{Categoria: "Accesorios", CantidadVendida: 8},
		}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/reporte-general?fechaInicio=2025-03-01&fechaFin=2025-03-31", nil, uuid.New(), nil)
		rr := httptest.NewRecorder()

		reportHandler.GeneralSalesReport().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got models.SalesReport
		decodeData(t, rr, &got)
		assert.Equal(t, 13, got.TotalProductosVendidos)
		assert.Equal(t, "Accesorios", got.TopCategoria.Categoria)
	})

	t.Run("Failure - Malformed date", func(t *testing.T) {
		reportHandler := handlers.NewReportHandler(mocks.NewReportService(t))

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/reporte-general?fechaInicio=01/03/2025&fechaFin=2025-03-31", nil, uuid.New(), nil)
		rr := httptest.NewRecorder()

		reportHandler.GeneralSalesReport().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid fechaInicio", decodeError(t, rr).Message)
	})

	t.Run("Failure - Missing range", func(t *testing.T) {
		mockReports := mocks.NewReportService(t)
		reportHandler := handlers.NewReportHandler(mockReports)

		mockReports.On("GeneralSalesReport", mock.Anything, models.DateRange{}).
			Return(nil, appErrors.ValidationError("A date range is required")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/reporte-general", nil, uuid.New(), nil)
		rr := httptest.NewRecorder()

		reportHandler.GeneralSalesReport().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestReportHandler_RepairsBy(t *testing.T) {
	groupings := []models.RepairGrouping{
		models.GroupByStatus, models.GroupByTechnician, models.GroupByBrand, models.GroupByFault, models.GroupByDate,
	}

	for _, grouping := range groupings {
		t.Run(string(grouping), func(t *testing.T) {
			mockReports := mocks.NewReportService(t)
			reportHandler := handlers.NewReportHandler(mockReports)

			mockReports.On("RepairsBy", mock.Anything, grouping, models.DateRange{}).
				Return([]models.RepairGroup{{Key: "x", Total: 2, Cotizacion: 900, Adelanto: 200}}, nil).Once()

			req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/reparaciones-por-"+string(grouping), nil, uuid.New(), nil)
			rr := httptest.NewRecorder()

			reportHandler.RepairsBy(grouping).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			var got []models.RepairGroup
			decodeData(t, rr, &got)
			assert.Equal(t, 2, got[0].Total)
		})
	}
}

func TestReportHandler_Charts(t *testing.T) {
	mockReports := mocks.NewReportService(t)
	reportHandler := handlers.NewReportHandler(mockReports)
	from := models.NewDate(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	mockReports.On("ProductsSoldPerDay", mock.Anything, models.DateRange{From: from}).
		Return([]models.DailyQuantity{{Fecha: "2025-03-02", Cantidad: 4, Total: 120}}, nil).Once()
	mockReports.On("ProductsPerCategory", mock.Anything, models.DateRange{}).
		Return([]models.CategorySales{{Categoria: "Accesorios", Cantidad: 8, Total: 300}}, nil).Once()

	rr := httptest.NewRecorder()
	reportHandler.ProductsSoldPerDay().ServeHTTP(rr, testutils.CreateTestRequestWithContext(http.MethodGet,
		"/api/detalle-ventas/productos-vendidos?fechaInicio=2025-03-01", nil, uuid.New(), nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	reportHandler.ProductsPerCategory().ServeHTTP(rr, testutils.CreateTestRequestWithContext(http.MethodGet,
		"/api/detalle-ventas/productos-por-categoria", nil, uuid.New(), nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	var got []models.CategorySales
	decodeData(t, rr, &got)
	assert.Equal(t, "Accesorios", got[0].Categoria)
}

func TestReportHandler_ProductSoldOverTime(t *testing.T) {
	productID := uuid.New()
	rng := models.DateRange{
		From: models.NewDate(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		To:   models.NewDate(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)),
	}
	base := "/api/detalle-ventas/productos-vendidos-tiempo"

	t.Run("Success - Weekly", func(t *testing.T) {
		mockReports := mocks.NewReportService(t)
		reportHandler := handlers.NewReportHandler(mockReports)

		mockReports.On("ProductSoldOverTime", mock.Anything, productID, rng, models.BucketWeek).
			Return([]models.PeriodQuantity{{Periodo: "2025-01-06", TotalProductosVendidos: 3}}, nil).Once()

		rr := httptest.NewRecorder()
		reportHandler.ProductSoldOverTime().ServeHTTP(rr, testutils.CreateTestRequestWithContext(http.MethodGet,
			base+"?producto_id="+productID.String()+"&startDate=2025-01-01&endDate=2025-03-31&intervalo=week", nil, uuid.New(), nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var got []models.PeriodQuantity
		decodeData(t, rr, &got)
		assert.Equal(t, []models.PeriodQuantity{{Periodo: "2025-01-06", TotalProductosVendidos: 3}}, got)
	})

	t.Run("Failure - Missing parameters", func(t *testing.T) {
		reportHandler := handlers.NewReportHandler(mocks.NewReportService(t))

		rr := httptest.NewRecorder()
		reportHandler.ProductSoldOverTime().ServeHTTP(rr, testutils.CreateTestRequestWithContext(http.MethodGet,
			base+"?producto_id="+productID.String()+"&startDate=2025-01-01", nil, uuid.New(), nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		errResp := decodeError(t, rr)
		assert.Equal(t, appErrors.ErrCodeBadRequest, errResp.Code)
		assert.Equal(t, []string{"endDate, intervalo"}, errResp.Details)
	})

	t.Run("Failure - Invalid product id", func(t *testing.T) {
		reportHandler := handlers.NewReportHandler(mocks.NewReportService(t))

		rr := httptest.NewRecorder()
		reportHandler.ProductSoldOverTime().ServeHTTP(rr, testutils.CreateTestRequestWithContext(http.MethodGet,
			base+"?producto_id=abc&startDate=2025-01-01&endDate=2025-03-31&intervalo=day", nil, uuid.New(), nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Unknown interval", func(t *testing.T) {
		mockReports := mocks.NewReportService(t)
		reportHandler := handlers.NewReportHandler(mockReports)

		mockReports.On("ProductSoldOverTime", mock.Anything, productID, rng, models.TimeBucket("hour")).
			Return(nil, appErrors.ValidationError("Unknown interval")).Once()

		rr := httptest.NewRecorder()
		reportHandler.ProductSoldOverTime().ServeHTTP(rr, testutils.CreateTestRequestWithContext(http.MethodGet,
			base+"?producto_id="+productID.String()+"&startDate=2025-01-01&endDate=2025-03-31&intervalo=hour", nil, uuid.New(), nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeValidation, decodeError(t, rr).Code)
	})
}

func TestReportHandler_RepairTable(t *testing.T) {
	mockReports := mocks.NewReportService(t)
	reportHandler := handlers.NewReportHandler(mockReports)
	days := 5

	mockReports.On("RepairTable", mock.Anything).Return([]*models.RepairTableRow{
		{ID: uuid.New(), Estatus: models.RepairPendiente, DiasPendientes: &days},
		{ID: uuid.New(), Estatus: models.RepairEntregado},
	}, nil).Once()

	rr := httptest.NewRecorder()
	reportHandler.RepairTable().ServeHTTP(rr, testutils.CreateTestRequestWithContext(http.MethodGet, "/api/reparaciones/tabla", nil, uuid.New(), nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []models.RepairTableRow
	decodeData(t, rr, &got)
	assert.Equal(t, 5, *got[0].DiasPendientes)
	assert.Nil(t, got[1].DiasPendientes)
}
