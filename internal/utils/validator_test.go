package utils_test

import (
	"testing"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewValidator(t *testing.T) {
	v := utils.NewValidator()

	t.Run("Repair status", func(t *testing.T) {
		req := models.BulkStatusRequest{IDs: []uuid.UUID{uuid.New()}, Estatus: models.RepairSinReparacion}
		assert.NoError(t, v.Struct(req))

		req.Estatus = "REPARADO"
		assert.Error(t, v.Struct(req))
	})

	t.Run("Payment method", func(t *testing.T) {
		req := models.SaleRequest{
			UserID:        uuid.New(),
			PaymentMethod: models.PaymentEfectivo,
			Products:      []models.SaleLineInput{{ProductID: uuid.New(), Quantity: 1, Price: 10}},
		}
		assert.NoError(t, v.Struct(req))

		req.PaymentMethod = "bitcoin"
		assert.Error(t, v.Struct(req))
	})

	t.Run("Empty sale is rejected", func(t *testing.T) {
		req := models.SaleRequest{UserID: uuid.New(), PaymentMethod: models.PaymentTarjeta}
		assert.Error(t, v.Struct(req))
	})
}
