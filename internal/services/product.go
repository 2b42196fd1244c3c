package service

import (
	"context"
	"errors"
	"io"

	appErrors "github.com/aaravmahajanofficial/repair-shop-platform/internal/errors"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	repository "github.com/aaravmahajanofficial/repair-shop-platform/internal/repositories"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/storage"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/utils"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error)
	UploadImage(ctx context.Context, id uuid.UUID, src io.Reader) (*models.Product, error)
}

type productService struct {
	repo       repository.ProductRepository
	categories repository.LookupRepository
	images     storage.ImageStore
}

func NewProductService(repo repository.ProductRepository, categories repository.LookupRepository, images storage.ImageStore) ProductService {
	return &productService{repo: repo, categories: categories, images: images}
}

func (s *productService) checkCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.BadRequestError("Category does not exist").WithError(err)
		}
		return appErrors.DatabaseError("Failed to fetch category").WithError(err)
	}
	return nil
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        utils.SanitizeText(req.Name),
		Price:       req.Price,
		Stock:       req.Stock,
		Cost:        req.Cost,
		Description: utils.SanitizeText(req.Description),
		CategoryID:  req.CategoryID,
		Status:      req.Status,
		Discount:    req.Discount,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, appErrors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, productError(err, "Failed to fetch product")
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, productError(err, "Failed to fetch product")
	}

	if req.CategoryID != nil && *req.CategoryID != product.CategoryID {
		if err := s.checkCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = utils.SanitizeText(*req.Name)
	}
	if req.Description != nil {
		product.Description = utils.SanitizeText(*req.Description)
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Cost != nil {
		product.Cost = *req.Cost
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if req.Discount != nil {
		product.Discount = *req.Discount
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, productError(err, "Failed to update product")
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return appErrors.BadRequestError("Product appears in registered sales").WithError(err)
		}
		return productError(err, "Failed to delete product")
	}

	return nil
}

func (s *productService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error) {

	if filter.Page < 1 {
		filter.Page = 1
	}

	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}

	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, 0, appErrors.ValidationError("minPrice cannot be greater than maxPrice")
	}

	filter.Search = utils.SanitizeText(filter.Search)

	products, total, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}

// UploadImage stores the picture and points the product at it.
func (s *productService) UploadImage(ctx context.Context, id uuid.UUID, src io.Reader) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, productError(err, "Failed to fetch product")
	}

	path, err := s.images.SaveProductImage(ctx, id, src)
	if err != nil {
		if errors.Is(err, storage.ErrNotAnImage) || errors.Is(err, storage.ErrImageTooLarge) {
			return nil, appErrors.BadRequestError(err.Error()).WithError(err)
		}
		return nil, appErrors.InternalError("Failed to store image").WithError(err)
	}

	if err := s.repo.SetProductImage(ctx, id, path); err != nil {
		return nil, productError(err, "Failed to update product image")
	}

	product.Image = path

	return product, nil
}

func productError(err error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return appErrors.NotFoundError("Product not found").WithError(err)
	}
	return appErrors.DatabaseError(message).WithError(err)
}
