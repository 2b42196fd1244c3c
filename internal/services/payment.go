package service

import (
	"context"
	"strings"

	appErrors "github.com/aaravmahajanofficial/repair-shop-platform/internal/errors"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	"github.com/aaravmahajanofficial/repair-shop-platform/pkg/stripe"
	stripeSDK "github.com/stripe/stripe-go/v81"
)

type PaymentService interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.PaymentOrder, error)
	CaptureOrder(ctx context.Context, req *models.CaptureOrderRequest) (*models.PaymentOrder, error)
}

type paymentService struct {
	stripeClient    stripe.Client
	defaultCurrency string
}

func NewPaymentService(stripeClient stripe.Client, defaultCurrency string) PaymentService {
	return &paymentService{stripeClient: stripeClient, defaultCurrency: defaultCurrency}
}

// CreateOrder opens a payment intent that is captured later by CaptureOrder.
func (s *paymentService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.PaymentOrder, error) {

	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = s.defaultCurrency
	}

	intent, err := s.stripeClient.CreatePaymentIntent(ctx, ToMinorUnits(req.Amount, currency), currency, req.Description)
	if err != nil {
		return nil, appErrors.ThirdPartyError("Failed to create payment order").WithError(err)
	}

	return toPaymentOrder(intent), nil
}

func (s *paymentService) CaptureOrder(ctx context.Context, req *models.CaptureOrderRequest) (*models.PaymentOrder, error) {

	intent, err := s.stripeClient.CapturePaymentIntent(ctx, req.OrderID)
	if err != nil {
		return nil, appErrors.ThirdPartyError("Failed to capture payment order").WithError(err)
	}

	order := toPaymentOrder(intent)
	order.ClientSecret = ""

	return order, nil
}

func toPaymentOrder(intent *stripeSDK.PaymentIntent) *models.PaymentOrder {
	return &models.PaymentOrder{
		ID:           intent.ID,
		Status:       string(intent.Status),
		Amount:       FromMinorUnits(intent.Amount, string(intent.Currency)),
		Currency:     string(intent.Currency),
		ClientSecret: intent.ClientSecret,
	}
}
