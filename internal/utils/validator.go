package utils

import (
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the domain tags registered.
func NewValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("repair_status", func(fl validator.FieldLevel) bool {
		return models.RepairStatus(fl.Field().String()).IsValid()
	})

	_ = v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		return models.PaymentMethod(fl.Field().String()).IsValid()
	})

	return v
}
