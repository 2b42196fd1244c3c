package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	service "github.com/aaravmahajanofficial/repair-shop-platform/internal/services"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/utils"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type SaleHandler struct {
	saleService service.SaleService
	validator   *validator.Validate
}

func NewSaleHandler(saleService service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService, validator: utils.NewValidator()}
}

// CreateSale godoc
//	@Summary		Register a sale
//	@Description	Takes stock for every line and records the sale in one transaction. Fails without side effects when any product is short.
//	@Tags			Sales
//	@Accept			json
//	@Produce		json
//	@Param			sale	body		models.SaleRequest		true	"Sale"
//	@Success		201		{object}	models.SaleResult		"Sale with its lines"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or insufficient stock"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/ventas [post]
func (h *SaleHandler) CreateSale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SaleRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid sale input")
			return
		}

		result, err := h.saleService.CreateSale(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create sale", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Sale created", slog.String("saleId", result.Sale.ID.String()), slog.Float64("total", result.Sale.Total))
		response.Success(w, http.StatusCreated, result)
	}
}

// UpdateSale godoc
//	@Summary		Replace a sale
//	@Description	Returns the stock of the old lines, then takes stock for the new ones.
//	@Tags			Sales
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Sale ID (UUID)"	Format(uuid)
//	@Param			sale	body		models.SaleRequest		true	"Sale"
//	@Success		200		{object}	models.SaleResult		"Sale with its lines"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or insufficient stock"
//	@Failure		404		{object}	response.ErrorResponse	"Sale or product not found"
//	@Security		BearerAuth
//	@Router			/ventas/{id} [put]
func (h *SaleHandler) UpdateSale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("saleId", id.String()))

		var req models.SaleRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid sale input")
			return
		}

		result, err := h.saleService.UpdateSale(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update sale", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Sale updated")
		response.Success(w, http.StatusOK, result)
	}
}

// DeleteSale godoc
//	@Summary		Delete a sale
//	@Description	The stock of its lines is returned.
//	@Tags			Sales
//	@Param			id	path	string	true	"Sale ID (UUID)"	Format(uuid)
//	@Success		204	"Deleted"
//	@Failure		404	{object}	response.ErrorResponse	"Sale not found"
//	@Security		BearerAuth
//	@Router			/ventas/{id} [delete]
func (h *SaleHandler) DeleteSale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.saleService.DeleteSale(r.Context(), id); err != nil {
			logger.Error("Failed to delete sale", slog.String("saleId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Sale deleted", slog.String("saleId", id.String()))
		w.WriteHeader(http.StatusNoContent)
	}
}

// GetSale godoc
//	@Summary		Get a sale
//	@Tags			Sales
//	@Produce		json
//	@Param			id	path		string					true	"Sale ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Sale				"Sale"
//	@Failure		404	{object}	response.ErrorResponse	"Sale not found"
//	@Security		BearerAuth
//	@Router			/ventas/{id} [get]
func (h *SaleHandler) GetSale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		sale, err := h.saleService.GetSale(r.Context(), id)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to get sale", slog.String("saleId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, sale)
	}
}

// ListSales godoc
//	@Summary		List sales
//	@Tags			Sales
//	@Produce		json
//	@Success		200	{array}		models.Sale				"Sales with seller"
//	@Security		BearerAuth
//	@Router			/ventas [get]
func (h *SaleHandler) ListSales() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sales, err := h.saleService.ListSales(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list sales", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, sales)
	}
}

// ListSaleLines godoc
//	@Summary		Lines of one sale
//	@Tags			Sales
//	@Produce		json
//	@Param			id	path		string					true	"Sale ID (UUID)"	Format(uuid)
//	@Success		200	{array}		models.SaleLine			"Lines with product"
//	@Failure		404	{object}	response.ErrorResponse	"Sale not found"
//	@Security		BearerAuth
//	@Router			/ventas/{id}/detalles [get]
func (h *SaleHandler) ListSaleLines() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		lines, err := h.saleService.ListSaleLines(r.Context(), id)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to list sale lines", slog.String("saleId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, lines)
	}
}

// ListAllLines godoc
//	@Summary		List every sale line
//	@Tags			Sales
//	@Produce		json
//	@Success		200	{array}	models.SaleLine	"Lines"
//	@Security		BearerAuth
//	@Router			/detalle-ventas [get]
func (h *SaleHandler) ListAllLines() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		lines, err := h.saleService.ListAllLines(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list sale lines", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, lines)
	}
}

// GetLine godoc
//	@Summary		Get a sale line
//	@Tags			Sales
//	@Produce		json
//	@Param			id	path		string					true	"Line ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.SaleLine			"Line"
//	@Failure		404	{object}	response.ErrorResponse	"Line not found"
//	@Security		BearerAuth
//	@Router			/detalle-ventas/{id} [get]
func (h *SaleHandler) GetLine() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		line, err := h.saleService.GetLine(r.Context(), id)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to get sale line", slog.String("lineId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, line)
	}
}
