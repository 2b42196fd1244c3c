package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/utils"
	"github.com/google/uuid"
)

var ErrInsufficientStock = errors.New("insufficient stock")

// SaleTx is the set of writes a sale needs. Every call runs inside the
// transaction opened by SaleRepository.RunInTx.
type SaleTx interface {
	// LockProduct reads the product row with FOR UPDATE.
	LockProduct(ctx context.Context, productID uuid.UUID) (*models.StockLevel, error)
	// DecrementStock fails with ErrInsufficientStock when stock < qty.
	DecrementStock(ctx context.Context, productID uuid.UUID, qty int) error
	RestoreStock(ctx context.Context, productID uuid.UUID, qty int) error
	InsertSale(ctx context.Context, sale *models.Sale) error
	LockSale(ctx context.Context, saleID uuid.UUID) (*models.Sale, error)
	UpdateSaleHeader(ctx context.Context, sale *models.Sale) error
	// DeleteLines removes every line of the sale and returns what was removed.
	DeleteLines(ctx context.Context, saleID uuid.UUID) ([]*models.SaleLine, error)
	InsertLine(ctx context.Context, line *models.SaleLine) error
	DeleteSale(ctx context.Context, saleID uuid.UUID) error
}

type SaleRepository interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx SaleTx) error) error
	GetSale(ctx context.Context, id uuid.UUID) (*models.Sale, error)
	ListSales(ctx context.Context) ([]*models.Sale, error)
	ListLines(ctx context.Context, saleID uuid.UUID) ([]*models.SaleLine, error)
	ListAllLines(ctx context.Context) ([]*models.SaleLine, error)
	GetLine(ctx context.Context, id uuid.UUID) (*models.SaleLine, error)
}

type saleRepository struct {
	DB *sql.DB
}

func NewSaleRepo(db *sql.DB) SaleRepository {
	return &saleRepository{DB: db}
}

// RunInTx commits when fn returns nil and rolls back otherwise.
func (r *saleRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx SaleTx) error) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {
		return fn(dbCtx, &saleTx{tx: tx})
	})
}

type saleTx struct {
	tx *sql.Tx
}

func (t *saleTx) LockProduct(ctx context.Context, productID uuid.UUID) (*models.StockLevel, error) {
	level := &models.StockLevel{}

	query := `SELECT id, name, stock, cost FROM products WHERE id = $1 FOR UPDATE`

	err := t.tx.QueryRowContext(ctx, query, productID).Scan(&level.ProductID, &level.Name, &level.Stock, &level.Cost)
	if err != nil {
		return nil, mapError(err)
	}

	return level, nil
}

func (t *saleTx) DecrementStock(ctx context.Context, productID uuid.UUID, qty int) error {
	query := `UPDATE products SET stock = stock - $1, updated_at = NOW() WHERE id = $2 AND stock >= $1`

	result, err := t.tx.ExecContext(ctx, query, qty, productID)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	if err := expectAffected(result); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrInsufficientStock
		}
		return err
	}

	return nil
}

func (t *saleTx) RestoreStock(ctx context.Context, productID uuid.UUID, qty int) error {
	query := `UPDATE products SET stock = stock + $1, updated_at = NOW() WHERE id = $2`

	if _, err := t.tx.ExecContext(ctx, query, qty, productID); err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}

	return nil
}

func (t *saleTx) InsertSale(ctx context.Context, sale *models.Sale) error {
	query := `
		INSERT INTO sales (user_id, fecha, hora, total, metodo_pago)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := t.tx.QueryRowContext(ctx, query, sale.UserID, sale.Fecha, sale.Hora, sale.Total, sale.PaymentMethod).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("failed to insert sale: %w", mapError(err))
	}

	return nil
}

func (t *saleTx) LockSale(ctx context.Context, saleID uuid.UUID) (*models.Sale, error) {
	sale := &models.Sale{}

	query := `SELECT id, user_id, fecha, hora, total, metodo_pago FROM sales WHERE id = $1 FOR UPDATE`

	err := t.tx.QueryRowContext(ctx, query, saleID).Scan(&sale.ID, &sale.UserID, &sale.Fecha, &sale.Hora, &sale.Total, &sale.PaymentMethod)
	if err != nil {
		return nil, mapError(err)
	}

	return sale, nil
}

func (t *saleTx) UpdateSaleHeader(ctx context.Context, sale *models.Sale) error {
	query := `UPDATE sales SET user_id = $1, metodo_pago = $2, total = $3 WHERE id = $4`

	result, err := t.tx.ExecContext(ctx, query, sale.UserID, sale.PaymentMethod, sale.Total, sale.ID)
	if err != nil {
		return fmt.Errorf("failed to update sale: %w", mapError(err))
	}

	return expectAffected(result)
}

func (t *saleTx) DeleteLines(ctx context.Context, saleID uuid.UUID) ([]*models.SaleLine, error) {
	query := `
		DELETE FROM sale_lines WHERE sale_id = $1
		RETURNING id, sale_id, product_id, cantidad, precio_unitario, descuento, subtotal, utilidad`

	rows, err := t.tx.QueryContext(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete sale lines: %w", err)
	}
	defer rows.Close()

	lines := []*models.SaleLine{}

	for rows.Next() {
		l := &models.SaleLine{}
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.Discount, &l.Subtotal, &l.Utility); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	return lines, rows.Err()
}

func (t *saleTx) InsertLine(ctx context.Context, line *models.SaleLine) error {
	query := `
		INSERT INTO sale_lines (sale_id, product_id, cantidad, precio_unitario, descuento, subtotal, utilidad)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := t.tx.QueryRowContext(ctx, query, line.SaleID, line.ProductID, line.Quantity, line.UnitPrice, line.Discount,
		line.Subtotal, line.Utility).Scan(&line.ID)
	if err != nil {
		return fmt.Errorf("failed to insert sale line: %w", mapError(err))
	}

	return nil
}

func (t *saleTx) DeleteSale(ctx context.Context, saleID uuid.UUID) error {
	result, err := t.tx.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}

	return expectAffected(result)
}

const saleSelect = `
	SELECT s.id, s.user_id, COALESCE(u.nombre || ' ' || u.apellido, ''), s.fecha, s.hora, s.total, s.metodo_pago
	FROM sales s
	LEFT JOIN users u ON s.user_id = u.id`

func scanSale(row interface{ Scan(...any) error }) (*models.Sale, error) {
	s := &models.Sale{}

	if err := row.Scan(&s.ID, &s.UserID, &s.SellerName, &s.Fecha, &s.Hora, &s.Total, &s.PaymentMethod); err != nil {
		return nil, mapError(err)
	}

	return s, nil
}

func (r *saleRepository) GetSale(ctx context.Context, id uuid.UUID) (*models.Sale, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return scanSale(r.DB.QueryRowContext(dbCtx, saleSelect+` WHERE s.id = $1`, id))
}

func (r *saleRepository) ListSales(ctx context.Context) ([]*models.Sale, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, saleSelect+` ORDER BY s.fecha DESC, s.hora DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	sales := []*models.Sale{}

	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}

	return sales, rows.Err()
}

const lineSelect = `
	SELECT l.id, l.sale_id, l.product_id, COALESCE(p.name, ''), COALESCE(p.description, ''),
	       l.cantidad, l.precio_unitario, l.descuento, l.subtotal, l.utilidad
	FROM sale_lines l
	LEFT JOIN products p ON l.product_id = p.id`

func scanLine(row interface{ Scan(...any) error }) (*models.SaleLine, error) {
	l := &models.SaleLine{}

	err := row.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.ProductName, &l.ProductDescription,
		&l.Quantity, &l.UnitPrice, &l.Discount, &l.Subtotal, &l.Utility)
	if err != nil {
		return nil, mapError(err)
	}

	return l, nil
}

func (r *saleRepository) queryLines(ctx context.Context, query string, args ...any) ([]*models.SaleLine, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sale lines: %w", err)
	}
	defer rows.Close()

	lines := []*models.SaleLine{}

	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

func (r *saleRepository) ListLines(ctx context.Context, saleID uuid.UUID) ([]*models.SaleLine, error) {
	return r.queryLines(ctx, lineSelect+` WHERE l.sale_id = $1 ORDER BY l.created_at`, saleID)
}

func (r *saleRepository) ListAllLines(ctx context.Context) ([]*models.SaleLine, error) {
	return r.queryLines(ctx, lineSelect+` ORDER BY l.created_at DESC`)
}

func (r *saleRepository) GetLine(ctx context.Context, id uuid.UUID) (*models.SaleLine, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return scanLine(r.DB.QueryRowContext(dbCtx, lineSelect+` WHERE l.id = $1`, id))
}
