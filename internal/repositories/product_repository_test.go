package repository_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	repository "github.com/aaravmahajanofficial/repair-shop-platform/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{"id", "name", "price", "stock", "cost", "description", "category_id", "category_name",
	"status", "discount", "image", "created_at", "updated_at"}

func TestProductRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	ctx := t.Context()

	t.Run("CreateProduct", func(t *testing.T) {
		product := &models.Product{
			Name:       "Mica templada",
			Price:      100,
			Stock:      10,
			Cost:       40,
			CategoryID: uuid.New(),
			Status:     models.ProductStatusActive,
		}
		newID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO products (name, price, stock, cost, description, category_id, status, discount)`)).
			WithArgs(product.Name, product.Price, product.Stock, product.Cost, product.Description, product.CategoryID, product.Status, product.Discount).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(newID.String(), now, now))

		require.NoError(t, repo.CreateProduct(ctx, product))
		assert.Equal(t, newID, product.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetProductByID_NotFound", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.id = $1`)).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(productRowColumns))

		product, err := repo.GetProductByID(ctx, id)

		assert.Nil(t, product)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListProducts_WithFilters", func(t *testing.T) {
		categoryID := uuid.New()
		minPrice := 50.0
		filter := models.ProductFilter{
			CategoryID: &categoryID,
			MinPrice:   &minPrice,
			Search:     "mica",
			SortBy:     models.SortPriceDesc,
			Page:       2,
			PageSize:   10,
		}
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products p WHERE p.category_id = $1 AND p.price >= $2 AND p.name ILIKE $3`)).
			WithArgs(categoryID, minPrice, "%mica%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.category_id = $1 AND p.price >= $2 AND p.name ILIKE $3 ORDER BY p.price DESC LIMIT $4 OFFSET $5`)).
			WithArgs(categoryID, minPrice, "%mica%", 10, 10).
			WillReturnRows(sqlmock.NewRows(productRowColumns).
				AddRow(uuid.NewString(), "Mica 9H", 120.0, 4, 30.0, "", categoryID.String(), "Accesorios", "active", 0.0, "", now, now))

		products, total, err := repo.ListProducts(ctx, filter)

		require.NoError(t, err)
		assert.Equal(t, 11, total)
		require.Len(t, products, 1)
		assert.Equal(t, "Accesorios", products[0].CategoryName)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListProducts_DefaultOrder", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products p`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY p.name ASC LIMIT $1 OFFSET $2`)).
			WithArgs(20, 0).
			WillReturnRows(sqlmock.NewRows(productRowColumns))

		products, total, err := repo.ListProducts(ctx, models.ProductFilter{Page: 1, PageSize: 20})

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, products)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteProduct_NotFound", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products WHERE id = $1`)).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteProduct(ctx, id), repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
