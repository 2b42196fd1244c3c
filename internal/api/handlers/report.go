package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/errors"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	service "github.com/aaravmahajanofficial/repair-shop-platform/internal/services"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/utils/response"
	"github.com/google/uuid"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GeneralSalesReport godoc
//	@Summary		General sales report
//	@Description	Totals, utility, per product, category, payment method and seller, top-3 products and top category.
//	@Tags			Reports
//	@Produce		json
//	@Param			fechaInicio	query		string					true	"Start date (YYYY-MM-DD)"
//	@Param			fechaFin	query		string					true	"End date (YYYY-MM-DD)"
//	@Success		200			{object}	models.SalesReport		"Report"
//	@Failure		400			{object}	response.ErrorResponse	"Missing or invalid date range"
//	@Security		BearerAuth
//	@Router			/reporte-general [get]
func (h *ReportHandler) GeneralSalesReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		rng, err := dateRange(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		report, err := h.reportService.GeneralSalesReport(r.Context(), rng)
		if err != nil {
			logger.Error("Failed to build sales report", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, report)
	}
}

// RepairsBy godoc
//	@Summary		Repair tickets grouped
//	@Description	Count, quoted and advance totals per status, technician, brand, fault or intake date.
//	@Tags			Reports
//	@Produce		json
//	@Param			fechaInicio	query		string					false	"Start date (YYYY-MM-DD)"
//	@Param			fechaFin	query		string					false	"End date (YYYY-MM-DD)"
//	@Success		200			{array}		models.RepairGroup		"Groups"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid date range"
//	@Security		BearerAuth
//	@Router			/reparaciones-por-estatus [get]
//	@Router			/reparaciones-por-tecnico [get]
//	@Router			/reparaciones-por-marca [get]
//	@Router			/reparaciones-por-falla [get]
//	@Router			/reparaciones-por-fecha [get]
func (h *ReportHandler) RepairsBy(grouping models.RepairGrouping) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("grouping", string(grouping)))

		rng, err := dateRange(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		groups, err := h.reportService.RepairsBy(r.Context(), grouping, rng)
		if err != nil {
			logger.Error("Failed to group repairs", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, groups)
	}
}

// ProductsSoldPerDay godoc
//	@Summary		Products sold per day
//	@Tags			Reports
//	@Produce		json
//	@Param			fechaInicio	query	string	false	"Start date (YYYY-MM-DD)"
//	@Param			fechaFin	query	string	false	"End date (YYYY-MM-DD)"
//	@Success		200			{array}	models.DailyQuantity	"Per day"
//	@Security		BearerAuth
//	@Router			/detalle-ventas/productos-vendidos [get]
func (h *ReportHandler) ProductsSoldPerDay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		rng, err := dateRange(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		days, err := h.reportService.ProductsSoldPerDay(r.Context(), rng)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch products sold per day", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, days)
	}
}

// ProductSoldOverTime godoc
//	@Summary		Units of one product sold over time
//	@Description	Quantity sold of producto_id between startDate and endDate, one row per day, week, month or year.
//	@Tags			Reports
//	@Produce		json
//	@Param			producto_id	query		string					true	"Product ID (UUID)"	Format(uuid)
//	@Param			startDate	query		string					true	"Start date (YYYY-MM-DD)"
//	@Param			endDate		query		string					true	"End date (YYYY-MM-DD)"
//	@Param			intervalo	query		string					true	"Bucket width"	Enums(day, week, month, year)
//	@Success		200			{array}		models.PeriodQuantity	"Per period"
//	@Failure		400			{object}	response.ErrorResponse	"Missing or invalid parameters"
//	@Security		BearerAuth
//	@Router			/detalle-ventas/productos-vendidos-tiempo [get]
func (h *ReportHandler) ProductSoldOverTime() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		query := r.URL.Query()

		var missing []string
		for _, key := range []string{"producto_id", "startDate", "endDate", "intervalo"} {
			if query.Get(key) == "" {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			response.Error(w, errors.BadRequestError("Missing parameters").WithDetail(strings.Join(missing, ", ")))
			return
		}

		productID, err := uuid.Parse(query.Get("producto_id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid producto_id format"))
			return
		}

		var rng models.DateRange
		if rng.From, err = models.ParseDate(query.Get("startDate")); err != nil {
			response.Error(w, errors.BadRequestError("Invalid startDate").WithDetail(err.Error()))
			return
		}
		if rng.To, err = models.ParseDate(query.Get("endDate")); err != nil {
			response.Error(w, errors.BadRequestError("Invalid endDate").WithDetail(err.Error()))
			return
		}

		unit := models.TimeBucket(query.Get("intervalo"))

		periods, err := h.reportService.ProductSoldOverTime(r.Context(), productID, rng, unit)
		if err != nil {
			logger.Error("Failed to fetch product sales over time", slog.String("productId", productID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, periods)
	}
}

// ProductsPerCategory godoc
//	@Summary		Products sold per category
//	@Tags			Reports
//	@Produce		json
//	@Param			fechaInicio	query	string	false	"Start date (YYYY-MM-DD)"
//	@Param			fechaFin	query	string	false	"End date (YYYY-MM-DD)"
//	@Success		200			{array}	models.CategorySales	"Per category"
//	@Security		BearerAuth
//	@Router			/detalle-ventas/productos-por-categoria [get]
func (h *ReportHandler) ProductsPerCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		rng, err := dateRange(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		categories, err := h.reportService.ProductsPerCategory(r.Context(), rng)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch products per category", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// RepairTable godoc
//	@Summary		Repair tickets table
//	@Description	Flat view of every ticket. Pending tickets carry diasPendientes.
//	@Tags			Reports
//	@Produce		json
//	@Success		200	{array}	models.RepairTableRow	"Rows"
//	@Security		BearerAuth
//	@Router			/reparaciones/tabla [get]
func (h *ReportHandler) RepairTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		rows, err := h.reportService.RepairTable(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to build repair table", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, rows)
	}
}
