package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/errors"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	service "github.com/aaravmahajanofficial/repair-shop-platform/internal/services"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/storage"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/utils"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: utils.NewValidator()}
}

// CreateProduct godoc
//	@Summary		Create a product
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product Details"
//	@Success		201		{object}	models.Product				"Created product"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error or unknown category"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid product input")
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product created successfully", slog.String("productId", product.ID.String()))
		response.Success(w, http.StatusCreated, product)
	}
}

// GetProduct godoc
//	@Summary		Get a product
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		string					true	"Product ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Product			"Product"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product ID format"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get product", slog.String("productId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// UpdateProduct godoc
//	@Summary		Update a product
//	@Description	Only the fields present in the body are changed.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Product ID (UUID)"	Format(uuid)
//	@Param			product	body		models.UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	models.Product				"Updated product"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Security		BearerAuth
//	@Router			/products/{id} [put]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("productId", id.String()))

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid product update input")
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update product", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated successfully")
		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
//	@Summary		Delete a product
//	@Tags			Products
//	@Param			id	path	string	true	"Product ID (UUID)"	Format(uuid)
//	@Success		204	"Deleted"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/products/{id} [delete]
func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
			logger.Error("Failed to delete product", slog.String("productId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product deleted", slog.String("productId", id.String()))
		w.WriteHeader(http.StatusNoContent)
	}
}

// ListProducts godoc
//	@Summary		List products
//	@Tags			Products
//	@Produce		json
//	@Param			category	query		string											false	"Category ID"
//	@Param			minPrice	query		number											false	"Minimum price"
//	@Param			maxPrice	query		number											false	"Maximum price"
//	@Param			search		query		string											false	"Name or description contains"
//	@Param			sortBy		query		string											false	"newest, priceAsc, priceDesc or discount"
//	@Param			page		query		int												false	"Page number (default: 1)"
//	@Param			pageSize	query		int												false	"Items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Product}	"Products"
//	@Failure		400			{object}	response.ErrorResponse							"Invalid filter"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		query := r.URL.Query()

		filter := models.ProductFilter{
			Search: query.Get("search"),
			SortBy: models.ProductSort(query.Get("sortBy")),
		}
		filter.Page, filter.PageSize = pagination(r)

		if raw := query.Get("category"); raw != "" {
			categoryID, err := uuid.Parse(raw)
			if err != nil {
				response.Error(w, errors.BadRequestError("Invalid category format"))
				return
			}
			filter.CategoryID = &categoryID
		}

		var err error
		if filter.MinPrice, err = optionalFloat(r, "minPrice"); err != nil {
			response.Error(w, err)
			return
		}
		if filter.MaxPrice, err = optionalFloat(r, "maxPrice"); err != nil {
			response.Error(w, err)
			return
		}

		products, total, err := h.productService.ListProducts(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.NewPage(products, total, filter.Page, filter.PageSize))
	}
}

// UploadImage godoc
//	@Summary		Upload a product image
//	@Description	Multipart form with the product id in productId and the file in image. Stored as {productId}.png.
//	@Tags			Products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			productId	formData	string					true	"Product ID (UUID)"
//	@Param			image		formData	file					true	"Image file"
//	@Success		200			{object}	models.Product			"Product with its image path"
//	@Failure		400			{object}	response.ErrorResponse	"Missing image, missing product id or not an image"
//	@Failure		404			{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/products/upload [post]
func (h *ProductHandler) UploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, storage.MaxImageSize+(1<<20))
		if err := r.ParseMultipartForm(storage.MaxImageSize); err != nil {
			logger.Warn("Invalid multipart form", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Invalid upload form"))
			return
		}

		productID, err := uuid.Parse(r.FormValue("productId"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Product ID not provided"))
			return
		}

		file, _, err := r.FormFile("image")
		if err != nil {
			response.Error(w, errors.BadRequestError("Image not provided"))
			return
		}
		defer file.Close()

		product, err := h.productService.UploadImage(r.Context(), productID, file)
		if err != nil {
			logger.Error("Failed to upload product image", slog.String("productId", productID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product image uploaded", slog.String("productId", productID.String()))
		response.Success(w, http.StatusOK, product)
	}
}
