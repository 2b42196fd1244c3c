package models

import (
	"time"

	"github.com/google/uuid"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

type Product struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"product"`
	Price        float64       `json:"price"`
	Stock        int           `json:"stock"`
	Cost         float64       `json:"cost"`
	Description  string        `json:"description,omitempty"`
	CategoryID   uuid.UUID     `json:"category"`
	CategoryName string        `json:"categoryName,omitempty"`
	Status       ProductStatus `json:"status"`
	Discount     float64       `json:"discount"`
	Image        string        `json:"image,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string        `json:"product" validate:"required,min=2,max=200"`
	Price       float64       `json:"price" validate:"gte=0"`
	Stock       int           `json:"stock" validate:"gte=0"`
	Cost        float64       `json:"cost" validate:"gte=0"`
	Description string        `json:"description,omitempty"`
	CategoryID  uuid.UUID     `json:"category" validate:"required"`
	Status      ProductStatus `json:"status" validate:"required,oneof=active inactive"`
	Discount    float64       `json:"discount" validate:"gte=0,lte=100"`
}

type UpdateProductRequest struct {
	Name        *string        `json:"product,omitempty" validate:"omitempty,min=2,max=200"`
	Price       *float64       `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int           `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Cost        *float64       `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Description *string        `json:"description,omitempty"`
	CategoryID  *uuid.UUID     `json:"category,omitempty"`
	Status      *ProductStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	Discount    *float64       `json:"discount,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type ProductSort string

const (
	SortNewest    ProductSort = "newest"
	SortPriceAsc  ProductSort = "priceAsc"
	SortPriceDesc ProductSort = "priceDesc"
	SortDiscount  ProductSort = "discount"
)

// ProductFilter carries the query string filters of the product listing.
type ProductFilter struct {
	CategoryID *uuid.UUID
	MinPrice   *float64
	MaxPrice   *float64
	Search     string
	SortBy     ProductSort
	Page       int
	PageSize   int
}
