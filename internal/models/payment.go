package models

type CreateOrderRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Currency    string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	Description string  `json:"description,omitempty" validate:"max=500"`
}

type CaptureOrderRequest struct {
	OrderID string `json:"orderID" validate:"required"`
}

type PaymentOrder struct {
	ID           string  `json:"id"`
	Status       string  `json:"status"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	ClientSecret string  `json:"client_secret,omitempty"`
}
