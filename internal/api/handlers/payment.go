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

type PaymentHandler struct {
	paymentService service.PaymentService
	validator      *validator.Validate
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, validator: utils.NewValidator()}
}

// CreateOrder godoc
//	@Summary		Create a payment order
//	@Description	Opens a gateway order for the amount. Funds are held until the order is captured.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.CreateOrderRequest	true	"Amount and currency"
//	@Success		201		{object}	models.PaymentOrder			"Gateway order"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		500		{object}	response.ErrorResponse		"Payment gateway error"
//	@Security		BearerAuth
//	@Router			/payments/create-order [post]
func (h *PaymentHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid payment order input")
			return
		}

		order, err := h.paymentService.CreateOrder(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create payment order", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Payment order created", slog.String("orderId", order.ID))
		response.Success(w, http.StatusCreated, order)
	}
}

// CaptureOrder godoc
//	@Summary		Capture a payment order
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.CaptureOrderRequest	true	"Gateway order id"
//	@Success		200		{object}	models.PaymentOrder			"Captured order"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		500		{object}	response.ErrorResponse		"Payment gateway error"
//	@Security		BearerAuth
//	@Router			/payments/capture-order [post]
func (h *PaymentHandler) CaptureOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CaptureOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid capture input")
			return
		}

		order, err := h.paymentService.CaptureOrder(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to capture payment order", slog.String("orderId", req.OrderID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Payment order captured", slog.String("orderId", order.ID), slog.String("status", order.Status))
		response.Success(w, http.StatusOK, order)
	}
}
