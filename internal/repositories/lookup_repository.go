package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/utils"
	"github.com/google/uuid"
)

// LookupRepository serves the categories, marcas and fallas tables, which
// share one shape.
type LookupRepository interface {
	Kind() models.LookupKind
	Create(ctx context.Context, item *models.Lookup) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Lookup, error)
	List(ctx context.Context) ([]*models.Lookup, error)
	Update(ctx context.Context, item *models.Lookup) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type lookupRepository struct {
	DB    *sql.DB
	kind  models.LookupKind
	table string
}

func NewLookupRepo(db *sql.DB, kind models.LookupKind) LookupRepository {
	return &lookupRepository{DB: db, kind: kind, table: string(kind)}
}

func (r *lookupRepository) Kind() models.LookupKind {
	return r.kind
}

func (r *lookupRepository) Create(ctx context.Context, item *models.Lookup) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`INSERT INTO %s (name, description) VALUES ($1, $2) RETURNING id, created_at, updated_at`, r.table)

	err := r.DB.QueryRowContext(dbCtx, query, item.Name, item.Description).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", r.table, mapError(err))
	}

	return nil
}

func (r *lookupRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Lookup, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT id, name, description, created_at, updated_at FROM %s WHERE id = $1`, r.table)

	item := &models.Lookup{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}

	return item, nil
}

func (r *lookupRepository) List(ctx context.Context) ([]*models.Lookup, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT id, name, description, created_at, updated_at FROM %s ORDER BY name`, r.table)

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.table, err)
	}
	defer rows.Close()

	items := []*models.Lookup{}

	for rows.Next() {
		item := &models.Lookup{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *lookupRepository) Update(ctx context.Context, item *models.Lookup) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`UPDATE %s SET name = $1, description = $2, updated_at = NOW() WHERE id = $3 RETURNING created_at, updated_at`, r.table)

	err := r.DB.QueryRowContext(dbCtx, query, item.Name, item.Description, item.ID).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return mapError(err)
	}

	return nil
}

func (r *lookupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)

	result, err := r.DB.ExecContext(dbCtx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", r.table, mapError(err))
	}

	return expectAffected(result)
}
