package service_test

import (
	"errors"
	"testing"

	appErrors "github.com/aaravmahajanofficial/repair-shop-platform/internal/errors"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	service "github.com/aaravmahajanofficial/repair-shop-platform/internal/services"
	stripeMocks "github.com/aaravmahajanofficial/repair-shop-platform/pkg/stripe/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
)

func TestNewPaymentService(t *testing.T) {
	assert.NotNil(t, service.NewPaymentService(stripeMocks.NewClient(t), "mxn"))
}

func TestCreateOrder(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Default currency and minor units", func(t *testing.T) {
		mockStripe := stripeMocks.NewClient(t)
		paymentService := service.NewPaymentService(mockStripe, "mxn")

		mockStripe.On("CreatePaymentIntent", mock.Anything, int64(27050), "mxn", "Reparacion").
			Return(&stripe.PaymentIntent{
				ID:           "pi_123",
				Status:       stripe.PaymentIntentStatusRequiresPaymentMethod,
				Amount:       27050,
				Currency:     stripe.CurrencyMXN,
				ClientSecret: "pi_123_secret",
			}, nil).Once()

		order, err := paymentService.CreateOrder(ctx, &models.CreateOrderRequest{Amount: 270.5, Description: "Reparacion"})

		require.NoError(t, err)
		assert.Equal(t, "pi_123", order.ID)
		assert.Equal(t, 270.5, order.Amount)
		assert.Equal(t, "mxn", order.Currency)
		assert.Equal(t, "pi_123_secret", order.ClientSecret)
	})

	t.Run("Success - Currency lowercased", func(t *testing.T) {
		mockStripe := stripeMocks.NewClient(t)
		paymentService := service.NewPaymentService(mockStripe, "mxn")

		mockStripe.On("CreatePaymentIntent", mock.Anything, int64(1000), "usd", "").
			Return(&stripe.PaymentIntent{ID: "pi_usd", Amount: 1000, Currency: stripe.CurrencyUSD}, nil).Once()

		order, err := paymentService.CreateOrder(ctx, &models.CreateOrderRequest{Amount: 10, Currency: "USD"})

		require.NoError(t, err)
		assert.Equal(t, "usd", order.Currency)
	})

	t.Run("Success - Zero-decimal currency is not scaled", func(t *testing.T) {
		mockStripe := stripeMocks.NewClient(t)
		paymentService := service.NewPaymentService(mockStripe, "mxn")

		mockStripe.On("CreatePaymentIntent", mock.Anything, int64(1500), "jpy", "Mica").
			Return(&stripe.PaymentIntent{ID: "pi_jpy", Amount: 1500, Currency: stripe.CurrencyJPY}, nil).Once()

		order, err := paymentService.CreateOrder(ctx, &models.CreateOrderRequest{Amount: 1500, Currency: "JPY", Description: "Mica"})

		require.NoError(t, err)
		assert.Equal(t, 1500.0, order.Amount)
		assert.Equal(t, "jpy", order.Currency)
	})

	t.Run("Failure - Gateway error", func(t *testing.T) {
		mockStripe := stripeMocks.NewClient(t)
		paymentService := service.NewPaymentService(mockStripe, "mxn")

		mockStripe.On("CreatePaymentIntent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("card network down")).Once()

		order, err := paymentService.CreateOrder(ctx, &models.CreateOrderRequest{Amount: 10})

		assert.Nil(t, order)
		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
	})
}

func TestCaptureOrder(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Secret not returned", func(t *testing.T) {
		mockStripe := stripeMocks.NewClient(t)
		paymentService := service.NewPaymentService(mockStripe, "mxn")

		mockStripe.On("CapturePaymentIntent", mock.Anything, "pi_123").
			Return(&stripe.PaymentIntent{
				ID:           "pi_123",
				Status:       stripe.PaymentIntentStatusSucceeded,
				Amount:       27050,
				Currency:     stripe.CurrencyMXN,
				ClientSecret: "pi_123_secret",
			}, nil).Once()

		order, err := paymentService.CaptureOrder(ctx, &models.CaptureOrderRequest{OrderID: "pi_123"})

		require.NoError(t, err)
		assert.Equal(t, "succeeded", order.Status)
		assert.Empty(t, order.ClientSecret)
	})

	t.Run("Failure - Gateway error", func(t *testing.T) {
		mockStripe := stripeMocks.NewClient(t)
		paymentService := service.NewPaymentService(mockStripe, "mxn")

		mockStripe.On("CapturePaymentIntent", mock.Anything, "pi_404").
			Return(nil, errors.New("no such payment_intent")).Once()

		_, err := paymentService.CaptureOrder(ctx, &models.CaptureOrderRequest{OrderID: "pi_404"})

		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Failed to capture payment order", appErr.Message)
	})
}
