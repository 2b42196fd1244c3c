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

type ClientHandler struct {
	clientService service.ClientService
	validator     *validator.Validate
}

func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService, validator: utils.NewValidator()}
}

// CreateClient godoc
//	@Summary		Create a client
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			client	body		models.ClientRequest	true	"Client"
//	@Success		201		{object}	models.Client			"Created client"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Security		BearerAuth
//	@Router			/clients [post]
func (h *ClientHandler) CreateClient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ClientRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid client input")
			return
		}

		client, err := h.clientService.CreateClient(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create client", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Client created", slog.String("clientId", client.ID.String()))
		response.Success(w, http.StatusCreated, client)
	}
}

// UpdateClient godoc
//	@Summary		Update a client
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Client ID (UUID)"	Format(uuid)
//	@Param			client	body		models.ClientRequest	true	"Client"
//	@Success		200		{object}	models.Client			"Updated client"
//	@Failure		404		{object}	response.ErrorResponse	"Client not found"
//	@Security		BearerAuth
//	@Router			/clients/{id} [put]
func (h *ClientHandler) UpdateClient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.ClientRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid client input")
			return
		}

		client, err := h.clientService.UpdateClient(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update client", slog.String("clientId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, client)
	}
}

// DeleteClient godoc
//	@Summary		Delete a client
//	@Tags			Clients
//	@Param			id	path	string	true	"Client ID (UUID)"	Format(uuid)
//	@Success		204	"Deleted"
//	@Failure		400	{object}	response.ErrorResponse	"Client still has repair tickets"
//	@Failure		404	{object}	response.ErrorResponse	"Client not found"
//	@Security		BearerAuth
//	@Router			/clients/{id} [delete]
func (h *ClientHandler) DeleteClient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.clientService.DeleteClient(r.Context(), id); err != nil {
			logger.Error("Failed to delete client", slog.String("clientId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Client deleted", slog.String("clientId", id.String()))
		w.WriteHeader(http.StatusNoContent)
	}
}

// ListClients godoc
//	@Summary		List clients
//	@Tags			Clients
//	@Produce		json
//	@Success		200	{array}		models.Client			"Clients"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/clients [get]
func (h *ClientHandler) ListClients() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		clients, err := h.clientService.ListClients(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list clients", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, clients)
	}
}

// SearchClients godoc
//	@Summary		Search clients
//	@Description	Matches any name part or phone, case-insensitive.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			search	body		models.ClientSearchRequest	true	"Search term"
//	@Success		200		{array}		models.Client				"Matching clients"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Security		BearerAuth
//	@Router			/clients/search [post]
func (h *ClientHandler) SearchClients() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ClientSearchRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid client search input")
			return
		}

		clients, err := h.clientService.SearchClients(r.Context(), req.Term)
		if err != nil {
			logger.Error("Failed to search clients", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, clients)
	}
}
