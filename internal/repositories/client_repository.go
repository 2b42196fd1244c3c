package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/utils"
	"github.com/google/uuid"
)

type ClientRepository interface {
	CreateClient(ctx context.Context, client *models.Client) error
	UpdateClient(ctx context.Context, client *models.Client) error
	DeleteClient(ctx context.Context, id uuid.UUID) error
	ListClients(ctx context.Context) ([]*models.Client, error)
	SearchClients(ctx context.Context, term string) ([]*models.Client, error)
}

type clientRepository struct {
	DB *sql.DB
}

func NewClientRepo(db *sql.DB) ClientRepository {
	return &clientRepository{DB: db}
}

const clientColumns = `id, first_name, second_name, last_name, second_last_name, phone, second_phone, date_inserted`

func (r *clientRepository) CreateClient(ctx context.Context, client *models.Client) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO clients (first_name, second_name, last_name, second_last_name, phone, second_phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, date_inserted`

	err := r.DB.QueryRowContext(dbCtx, query, client.FirstName, client.SecondName, client.LastName,
		client.SecondLastName, client.Phone, client.SecondPhone).Scan(&client.ID, &client.DateInserted)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", mapError(err))
	}

	return nil
}

func (r *clientRepository) UpdateClient(ctx context.Context, client *models.Client) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE clients SET first_name = $1, second_name = $2, last_name = $3, second_last_name = $4, phone = $5, second_phone = $6
		WHERE id = $7
		RETURNING date_inserted`

	err := r.DB.QueryRowContext(dbCtx, query, client.FirstName, client.SecondName, client.LastName,
		client.SecondLastName, client.Phone, client.SecondPhone, client.ID).Scan(&client.DateInserted)
	if err != nil {
		return mapError(err)
	}

	return nil
}

func (r *clientRepository) DeleteClient(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", mapError(err))
	}

	return expectAffected(result)
}

func (r *clientRepository) ListClients(ctx context.Context) ([]*models.Client, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY date_inserted DESC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return scanClients(rows)
}

// SearchClients matches the term against every name and phone column.
func (r *clientRepository) SearchClients(ctx context.Context, term string) ([]*models.Client, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + clientColumns + ` FROM clients
		WHERE first_name ILIKE $1 OR second_name ILIKE $1 OR last_name ILIKE $1
		   OR second_last_name ILIKE $1 OR phone ILIKE $1 OR second_phone ILIKE $1
		ORDER BY last_name, first_name`

	rows, err := r.DB.QueryContext(dbCtx, query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}

	return scanClients(rows)
}

func scanClients(rows *sql.Rows) ([]*models.Client, error) {
	defer rows.Close()

	clients := []*models.Client{}

	for rows.Next() {
		c := &models.Client{}
		if err := rows.Scan(&c.ID, &c.FirstName, &c.SecondName, &c.LastName, &c.SecondLastName,
			&c.Phone, &c.SecondPhone, &c.DateInserted); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}

func expectAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}
