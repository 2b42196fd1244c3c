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

type RepairHandler struct {
	repairService service.RepairService
	validator     *validator.Validate
}

func NewRepairHandler(repairService service.RepairService) *RepairHandler {
	return &RepairHandler{repairService: repairService, validator: utils.NewValidator()}
}

// CreateRepair godoc
//	@Summary		Open a repair ticket
//	@Description	Status defaults to PENDIENTE and intake date/time to now. The assigned technician is e-mailed.
//	@Tags			Repairs
//	@Accept			json
//	@Produce		json
//	@Param			repair	body		models.RepairRequest	true	"Ticket"
//	@Success		201		{object}	models.Repair			"Created ticket"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or unknown reference"
//	@Security		BearerAuth
//	@Router			/reparaciones [post]
func (h *RepairHandler) CreateRepair() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RepairRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid repair input")
			return
		}

		repair, err := h.repairService.CreateRepair(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create repair", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Repair created", slog.String("repairId", repair.ID.String()))
		response.Success(w, http.StatusCreated, repair)
	}
}

// GetRepair godoc
//	@Summary		Get a repair ticket
//	@Tags			Repairs
//	@Produce		json
//	@Param			id	path		string					true	"Repair ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Repair			"Ticket"
//	@Failure		404	{object}	response.ErrorResponse	"Repair not found"
//	@Security		BearerAuth
//	@Router			/reparaciones/{id} [get]
func (h *RepairHandler) GetRepair() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		repair, err := h.repairService.GetRepair(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get repair", slog.String("repairId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, repair)
	}
}

// ListRepairs godoc
//	@Summary		List repair tickets
//	@Tags			Repairs
//	@Produce		json
//	@Success		200	{array}		models.Repair			"Tickets"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/reparaciones [get]
func (h *RepairHandler) ListRepairs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		repairs, err := h.repairService.ListRepairs(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list repairs", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, repairs)
	}
}

// UpdateRepair godoc
//	@Summary		Replace a repair ticket
//	@Tags			Repairs
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Repair ID (UUID)"	Format(uuid)
//	@Param			repair	body		models.RepairRequest	true	"Ticket"
//	@Success		200		{object}	models.Repair			"Updated ticket"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		404		{object}	response.ErrorResponse	"Repair not found"
//	@Security		BearerAuth
//	@Router			/reparaciones/{id} [put]
func (h *RepairHandler) UpdateRepair() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("repairId", id.String()))

		var req models.RepairRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid repair input")
			return
		}

		repair, err := h.repairService.UpdateRepair(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update repair", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Repair updated")
		response.Success(w, http.StatusOK, repair)
	}
}

// DeleteRepair godoc
//	@Summary		Delete a repair ticket
//	@Tags			Repairs
//	@Param			id	path	string	true	"Repair ID (UUID)"	Format(uuid)
//	@Success		204	"Deleted"
//	@Failure		404	{object}	response.ErrorResponse	"Repair not found"
//	@Security		BearerAuth
//	@Router			/reparaciones/{id} [delete]
func (h *RepairHandler) DeleteRepair() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.repairService.DeleteRepair(r.Context(), id); err != nil {
			logger.Error("Failed to delete repair", slog.String("repairId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Repair deleted", slog.String("repairId", id.String()))
		w.WriteHeader(http.StatusNoContent)
	}
}

// BulkUpdateStatus godoc
//	@Summary		Change the status of many tickets
//	@Description	Every id gets its own outcome: updated, not_found or error.
//	@Tags			Repairs
//	@Accept			json
//	@Produce		json
//	@Param			update	body		models.BulkStatusRequest	true	"Ids and new status"
//	@Success		200		{object}	models.BulkStatusResult		"Per-ticket outcome"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Security		BearerAuth
//	@Router			/reparaciones/estatus [patch]
func (h *RepairHandler) BulkUpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.BulkStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid bulk status input")
			return
		}

		result, err := h.repairService.BulkUpdateStatus(r.Context(), &req)
		if err != nil {
			logger.Error("Bulk status update failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Bulk status update done",
			slog.String("status", string(req.Estatus)),
			slog.Int("updated", result.Updated),
			slog.Int("notFound", result.NotFound),
			slog.Int("failed", result.Failed))
		response.Success(w, http.StatusOK, result)
	}
}
