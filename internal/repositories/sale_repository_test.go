package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	repository "github.com/aaravmahajanofficial/repair-shop-platform/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSaleRepoTest(t *testing.T) (repository.SaleRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return repository.NewSaleRepo(db), mock
}

func TestSaleRepository_RunInTx(t *testing.T) {
	ctx := t.Context()
	productID := uuid.New()

	t.Run("Commits a sale", func(t *testing.T) {
		repo, mock := setupSaleRepoTest(t)
		saleID := uuid.New()
		lineID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, stock, cost FROM products WHERE id = $1 FOR UPDATE`)).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "stock", "cost"}).AddRow(productID.String(), "Mica", 10, 40.0))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE products SET stock = stock - $1, updated_at = NOW() WHERE id = $2 AND stock >= $1`)).
			WithArgs(3, productID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sales (user_id, fecha, hora, total, metodo_pago)`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(saleID.String()))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sale_lines`)).
			WithArgs(saleID, productID, 3, 100.0, 10.0, 270.0, 150.0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(lineID.String()))
		mock.ExpectCommit()

		sale := &models.Sale{UserID: uuid.New(), Hora: "10:00:00", Total: 270, PaymentMethod: models.PaymentEfectivo}
		line := &models.SaleLine{ProductID: productID, Quantity: 3, UnitPrice: 100, Discount: 10, Subtotal: 270, Utility: 150}

		err := repo.RunInTx(ctx, func(ctx context.Context, tx repository.SaleTx) error {
			level, err := tx.LockProduct(ctx, productID)
			if err != nil {
				return err
			}
			assert.Equal(t, 10, level.Stock)

			if err := tx.DecrementStock(ctx, productID, 3); err != nil {
				return err
			}
			if err := tx.InsertSale(ctx, sale); err != nil {
				return err
			}
			line.SaleID = sale.ID
			return tx.InsertLine(ctx, line)
		})

		require.NoError(t, err)
		assert.Equal(t, saleID, sale.ID)
		assert.Equal(t, lineID, line.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rolls back on insufficient stock", func(t *testing.T) {
		repo, mock := setupSaleRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE products SET stock = stock - $1`)).
			WithArgs(8, productID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.RunInTx(ctx, func(ctx context.Context, tx repository.SaleTx) error {
			return tx.DecrementStock(ctx, productID, 8)
		})

		assert.ErrorIs(t, err, repository.ErrInsufficientStock)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing product maps to not found", func(t *testing.T) {
		repo, mock := setupSaleRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "stock", "cost"}))
		mock.ExpectRollback()

		err := repo.RunInTx(ctx, func(ctx context.Context, tx repository.SaleTx) error {
			_, err := tx.LockProduct(ctx, productID)
			return err
		})

		assert.ErrorIs(t, err, repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin failure", func(t *testing.T) {
		repo, mock := setupSaleRepoTest(t)
		mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		err := repo.RunInTx(ctx, func(ctx context.Context, tx repository.SaleTx) error {
			t.Fatal("fn must not run")
			return nil
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to begin transaction")
	})

	t.Run("Delete lines returns the removed rows", func(t *testing.T) {
		repo, mock := setupSaleRepoTest(t)
		saleID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM sale_lines WHERE sale_id = $1`)).
			WithArgs(saleID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "sale_id", "product_id", "cantidad", "precio_unitario", "descuento", "subtotal", "utilidad"}).
				AddRow(uuid.NewString(), saleID.String(), productID.String(), 2, 50.0, 0.0, 100.0, 20.0))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM sales WHERE id = $1`)).
			WithArgs(saleID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		var removed []*models.SaleLine
		err := repo.RunInTx(ctx, func(ctx context.Context, tx repository.SaleTx) error {
			var err error
			if removed, err = tx.DeleteLines(ctx, saleID); err != nil {
				return err
			}
			return tx.DeleteSale(ctx, saleID)
		})

		require.NoError(t, err)
		require.Len(t, removed, 1)
		assert.Equal(t, 2, removed[0].Quantity)
		assert.Equal(t, productID, removed[0].ProductID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSaleRepository_Reads(t *testing.T) {
	ctx := t.Context()

	t.Run("GetSale_NotFound", func(t *testing.T) {
		repo, mock := setupSaleRepoTest(t)
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE s.id = $1`)).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "seller", "fecha", "hora", "total", "metodo_pago"}))

		sale, err := repo.GetSale(ctx, id)

		assert.Nil(t, sale)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("ListLines", func(t *testing.T) {
		repo, mock := setupSaleRepoTest(t)
		saleID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE l.sale_id = $1 ORDER BY l.created_at`)).
			WithArgs(saleID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "sale_id", "product_id", "producto", "descripcion", "cantidad", "precio", "descuento", "subtotal", "utilidad"}).
				AddRow(uuid.NewString(), saleID.String(), uuid.NewString(), "Cargador", "USB-C", 1, 250.0, 0.0, 250.0, 90.0))

		lines, err := repo.ListLines(ctx, saleID)

		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, "Cargador", lines[0].ProductName)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
