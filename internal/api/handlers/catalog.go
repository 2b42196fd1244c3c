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

// CatalogHandler serves the categories, marcas and fallas routes. Every
// method is bound to one lookup kind when the route is registered.
type CatalogHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, validator: utils.NewValidator()}
}

// List godoc
//	@Summary		List a lookup
//	@Tags			Catalog
//	@Produce		json
//	@Param			kind	path		string					true	"categories, marcas or fallas"
//	@Success		200		{array}		models.Lookup			"Entries sorted by name"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/{kind} [get]
func (h *CatalogHandler) List(kind models.LookupKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("kind", string(kind)))

		entries, err := h.catalogService.List(r.Context(), kind)
		if err != nil {
			logger.Error("Failed to list lookup", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, entries)
	}
}

// Get godoc
//	@Summary		Get a lookup entry
//	@Tags			Catalog
//	@Produce		json
//	@Param			kind	path		string					true	"categories, marcas or fallas"
//	@Param			id		path		string					true	"Entry ID (UUID)"	Format(uuid)
//	@Success		200		{object}	models.Lookup			"Entry"
//	@Failure		404		{object}	response.ErrorResponse	"Not found"
//	@Router			/{kind}/{id} [get]
func (h *CatalogHandler) Get(kind models.LookupKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("kind", string(kind)))

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		entry, err := h.catalogService.Get(r.Context(), kind, id)
		if err != nil {
			logger.Warn("Failed to get lookup entry", slog.String("id", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, entry)
	}
}

// Create godoc
//	@Summary		Create a lookup entry
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			kind	path		string					true	"categories, marcas or fallas"
//	@Param			entry	body		models.LookupRequest	true	"Entry"
//	@Success		201		{object}	models.Lookup			"Created entry"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		409		{object}	response.ErrorResponse	"Name already exists"
//	@Security		BearerAuth
//	@Router			/{kind} [post]
func (h *CatalogHandler) Create(kind models.LookupKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("kind", string(kind)))

		var req models.LookupRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid lookup input")
			return
		}

		entry, err := h.catalogService.Create(r.Context(), kind, &req)
		if err != nil {
			logger.Error("Failed to create lookup entry", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Lookup entry created", slog.String("id", entry.ID.String()))
		response.Success(w, http.StatusCreated, entry)
	}
}

// Update godoc
//	@Summary		Update a lookup entry
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			kind	path		string					true	"categories, marcas or fallas"
//	@Param			id		path		string					true	"Entry ID (UUID)"	Format(uuid)
//	@Param			entry	body		models.LookupRequest	true	"Entry"
//	@Success		200		{object}	models.Lookup			"Updated entry"
//	@Failure		404		{object}	response.ErrorResponse	"Not found"
//	@Failure		409		{object}	response.ErrorResponse	"Name already exists"
//	@Security		BearerAuth
//	@Router			/{kind}/{id} [put]
func (h *CatalogHandler) Update(kind models.LookupKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("kind", string(kind)))

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.LookupRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid lookup input")
			return
		}

		entry, err := h.catalogService.Update(r.Context(), kind, id, &req)
		if err != nil {
			logger.Error("Failed to update lookup entry", slog.String("id", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, entry)
	}
}

// Delete godoc
//	@Summary		Delete a lookup entry
//	@Tags			Catalog
//	@Param			kind	path	string	true	"categories, marcas or fallas"
//	@Param			id		path	string	true	"Entry ID (UUID)"	Format(uuid)
//	@Success		204		"Deleted"
//	@Failure		400		{object}	response.ErrorResponse	"Entry still in use"
//	@Failure		404		{object}	response.ErrorResponse	"Not found"
//	@Security		BearerAuth
//	@Router			/{kind}/{id} [delete]
func (h *CatalogHandler) Delete(kind models.LookupKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("kind", string(kind)))

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.catalogService.Delete(r.Context(), kind, id); err != nil {
			logger.Error("Failed to delete lookup entry", slog.String("id", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Lookup entry deleted", slog.String("id", id.String()))
		w.WriteHeader(http.StatusNoContent)
	}
}
