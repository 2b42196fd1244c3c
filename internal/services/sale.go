package service

import (
	"context"
	"errors"
	"time"

	appErrors "github.com/aaravmahajanofficial/repair-shop-platform/internal/errors"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/metrics"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	repository "github.com/aaravmahajanofficial/repair-shop-platform/internal/repositories"
	"github.com/google/uuid"
)

type SaleService interface {
	CreateSale(ctx context.Context, req *models.SaleRequest) (*models.SaleResult, error)
	UpdateSale(ctx context.Context, id uuid.UUID, req *models.SaleRequest) (*models.SaleResult, error)
	DeleteSale(ctx context.Context, id uuid.UUID) error
	GetSale(ctx context.Context, id uuid.UUID) (*models.Sale, error)
	ListSales(ctx context.Context) ([]*models.Sale, error)
	ListSaleLines(ctx context.Context, saleID uuid.UUID) ([]*models.SaleLine, error)
	ListAllLines(ctx context.Context) ([]*models.SaleLine, error)
	GetLine(ctx context.Context, id uuid.UUID) (*models.SaleLine, error)
}

type saleService struct {
	repo repository.SaleRepository
	now  func() time.Time
}

// NewSaleService builds the sale service. A nil clock means time.Now.
func NewSaleService(repo repository.SaleRepository, clock func() time.Time) SaleService {
	if clock == nil {
		clock = time.Now
	}

	return &saleService{repo: repo, now: clock}
}

// CreateSale decrements stock for every line, then writes the header and the
// lines. Everything happens in one transaction.
func (s *saleService) CreateSale(ctx context.Context, req *models.SaleRequest) (*models.SaleResult, error) {

	result := &models.SaleResult{}

	err := s.repo.RunInTx(ctx, func(ctx context.Context, tx repository.SaleTx) error {

		lines, total, err := takeStock(ctx, tx, req.Products)
		if err != nil {
			return err
		}

		fecha, hora := models.Stamp(s.now())

		sale := &models.Sale{
			UserID:        req.UserID,
			Fecha:         fecha,
			Hora:          hora,
			Total:         total,
			PaymentMethod: req.PaymentMethod,
		}

		if err := tx.InsertSale(ctx, sale); err != nil {
			return err
		}

		if err := insertLines(ctx, tx, sale.ID, lines); err != nil {
			return err
		}

		result.Sale = sale
		result.Lines = lines

		return nil
	})
	if err != nil {
		return nil, saleError(err, "Failed to register sale")
	}

	metrics.SaleCreated()

	return result, nil
}

// UpdateSale puts back the stock of the replaced lines before taking stock
// for the new ones. Date and time of the sale are kept.
func (s *saleService) UpdateSale(ctx context.Context, id uuid.UUID, req *models.SaleRequest) (*models.SaleResult, error) {

	result := &models.SaleResult{}

	err := s.repo.RunInTx(ctx, func(ctx context.Context, tx repository.SaleTx) error {

		sale, err := tx.LockSale(ctx, id)
		if err != nil {
			return err
		}

		if err := releaseLines(ctx, tx, id); err != nil {
			return err
		}

		lines, total, err := takeStock(ctx, tx, req.Products)
		if err != nil {
			return err
		}

		sale.UserID = req.UserID
		sale.PaymentMethod = req.PaymentMethod
		sale.Total = total

		if err := tx.UpdateSaleHeader(ctx, sale); err != nil {
			return err
		}

		if err := insertLines(ctx, tx, sale.ID, lines); err != nil {
			return err
		}

		result.Sale = sale
		result.Lines = lines

		return nil
	})
	if err != nil {
		return nil, saleError(err, "Failed to update sale")
	}

	return result, nil
}

// DeleteSale removes the sale and its lines and returns their units to stock.
func (s *saleService) DeleteSale(ctx context.Context, id uuid.UUID) error {

	err := s.repo.RunInTx(ctx, func(ctx context.Context, tx repository.SaleTx) error {

		if _, err := tx.LockSale(ctx, id); err != nil {
			return err
		}

		if err := releaseLines(ctx, tx, id); err != nil {
			return err
		}

		return tx.DeleteSale(ctx, id)
	})
	if err != nil {
		return saleError(err, "Failed to delete sale")
	}

	return nil
}

func (s *saleService) GetSale(ctx context.Context, id uuid.UUID) (*models.Sale, error) {

	sale, err := s.repo.GetSale(ctx, id)
	if err != nil {
		return nil, saleError(err, "Failed to fetch sale")
	}

	return sale, nil
}

func (s *saleService) ListSales(ctx context.Context) ([]*models.Sale, error) {

	sales, err := s.repo.ListSales(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch sales").WithError(err)
	}

	return sales, nil
}

func (s *saleService) ListSaleLines(ctx context.Context, saleID uuid.UUID) ([]*models.SaleLine, error) {

	lines, err := s.repo.ListLines(ctx, saleID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch sale details").WithError(err)
	}

	return lines, nil
}

func (s *saleService) ListAllLines(ctx context.Context) ([]*models.SaleLine, error) {

	lines, err := s.repo.ListAllLines(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch sale details").WithError(err)
	}

	return lines, nil
}

func (s *saleService) GetLine(ctx context.Context, id uuid.UUID) (*models.SaleLine, error) {

	line, err := s.repo.GetLine(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Sale detail not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch sale detail").WithError(err)
	}

	return line, nil
}

// takeStock locks each product, checks and decrements its stock and prices the line.
func takeStock(ctx context.Context, tx repository.SaleTx, inputs []models.SaleLineInput) ([]*models.SaleLine, float64, error) {

	lines := make([]*models.SaleLine, 0, len(inputs))
	subtotals := make([]float64, 0, len(inputs))

	for _, in := range inputs {

		level, err := tx.LockProduct(ctx, in.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, 0, appErrors.NotFoundError("Product not found: " + in.ProductID.String()).WithError(err)
			}
			return nil, 0, err
		}

		if level.Stock < in.Quantity {
			return nil, 0, appErrors.StockShortageError(level.Name, in.Quantity, level.Stock)
		}

		if err := tx.DecrementStock(ctx, in.ProductID, in.Quantity); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				return nil, 0, appErrors.StockShortageError(level.Name, in.Quantity, level.Stock).WithError(err)
			}
			return nil, 0, err
		}

		line := &models.SaleLine{
			ProductID:   in.ProductID,
			ProductName: level.Name,
			Quantity:    in.Quantity,
			UnitPrice:   in.Price,
			Discount:    in.Discount,
			Subtotal:    LineSubtotal(in.Price, in.Quantity, in.Discount),
		}

		if in.Utility != nil {
			line.Utility = *in.Utility
		} else {
			line.Utility = LineUtility(in.Price, in.Quantity, in.Discount, level.Cost)
		}

		lines = append(lines, line)
		subtotals = append(subtotals, line.Subtotal)
	}

	return lines, Sum(subtotals...), nil
}

func releaseLines(ctx context.Context, tx repository.SaleTx, saleID uuid.UUID) error {

	removed, err := tx.DeleteLines(ctx, saleID)
	if err != nil {
		return err
	}

	for _, line := range removed {
		if err := tx.RestoreStock(ctx, line.ProductID, line.Quantity); err != nil {
			return err
		}
	}

	return nil
}

func insertLines(ctx context.Context, tx repository.SaleTx, saleID uuid.UUID, lines []*models.SaleLine) error {

	for _, line := range lines {
		line.SaleID = saleID
		if err := tx.InsertLine(ctx, line); err != nil {
			return err
		}
	}

	return nil
}

func saleError(err error, message string) error {

	if appErrors.HasCode(err, appErrors.ErrCodeInsufficientStock) {
		metrics.SaleStockRejected()
	}
	if appErr, ok := appErrors.IsAppError(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, repository.ErrNotFound):
		return appErrors.NotFoundError("Sale not found").WithError(err)
	case errors.Is(err, repository.ErrInvalidReference):
		return appErrors.BadRequestError("Sale references an unknown user or product").WithError(err)
	}

	return appErrors.DatabaseError(message).WithError(err)
}
