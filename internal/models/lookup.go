package models

import (
	"time"

	"github.com/google/uuid"
)

// LookupKind names one of the labelled lookup collections.
type LookupKind string

const (
	LookupCategories LookupKind = "categories"
	LookupMarcas     LookupKind = "marcas"
	LookupFallas     LookupKind = "fallas"
)

func (k LookupKind) Singular() string {
	switch k {
	case LookupCategories:
		return "Category"
	case LookupMarcas:
		return "Marca"
	case LookupFallas:
		return "Falla"
	default:
		return string(k)
	}
}

// Lookup is a Category, Marca or Falla.
type Lookup struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type LookupRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description,omitempty" validate:"max=500"`
}
