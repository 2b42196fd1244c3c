package models

import (
	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentEfectivo      PaymentMethod = "efectivo"
	PaymentTarjeta       PaymentMethod = "tarjeta"
	PaymentTransferencia PaymentMethod = "transferencia"
	PaymentOnline        PaymentMethod = "online"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentEfectivo, PaymentTarjeta, PaymentTransferencia, PaymentOnline:
		return true
	}
	return false
}

// Sale is the Venta header.
type Sale struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"usuario_id"`
	SellerName    string        `json:"usuario,omitempty"`
	Fecha         Date          `json:"fecha"`
	Hora          string        `json:"hora"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"metodo_pago"`
}

// SaleLine is one DetalleVenta row.
type SaleLine struct {
	ID                 uuid.UUID `json:"id"`
	SaleID             uuid.UUID `json:"venta_id"`
	ProductID          uuid.UUID `json:"producto_id"`
	ProductName        string    `json:"producto,omitempty"`
	ProductDescription string    `json:"descripcion,omitempty"`
	Quantity           int       `json:"cantidad"`
	UnitPrice          float64   `json:"precio_unitario"`
	Discount           float64   `json:"descuento"`
	Subtotal           float64   `json:"subtotal"`
	Utility            float64   `json:"utilidad"`
}

type SaleLineInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	Price     float64   `json:"price" validate:"gte=0"`
	Discount  float64   `json:"discount" validate:"gte=0,lte=100"`
	// Utility is computed from the product cost when omitted.
	Utility *float64 `json:"utility,omitempty"`
}

// SaleRequest is used for both creating and replacing a sale.
type SaleRequest struct {
	UserID        uuid.UUID       `json:"userId" validate:"required"`
	PaymentMethod PaymentMethod   `json:"metodo_pago" validate:"required,payment_method"`
	Products      []SaleLineInput `json:"products" validate:"required,min=1,dive"`
	Total         float64         `json:"total"`
}

type SaleResult struct {
	Sale  *Sale       `json:"venta"`
	Lines []*SaleLine `json:"detalles"`
}

// StockLevel is the locked view of a product while a sale is written.
type StockLevel struct {
	ProductID uuid.UUID
	Name      string
	Stock     int
	Cost      float64
}
