package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"legalcase/internal/models"
)

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

const clientColumns = `client_id, name, email, phone, address, lawyer_id`

func scanClient(row pgx.Row) (*models.Client, error) {
	var cl models.Client
	err := row.Scan(
		&cl.ClientID,
		&cl.Name,
		&cl.Email,
		&cl.Phone,
		&cl.Address,
		&cl.LawyerID,
	)
	if err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]models.Client, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY client_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		cl, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *cl)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*models.Client, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE client_id = $1`, id)
	cl, err := scanClient(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return cl, err
}

func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	query := `
		INSERT INTO clients (name, email, phone, address, lawyer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING client_id
	`

	return r.pool.QueryRow(ctx, query,
		client.Name,
		client.Email,
		client.Phone,
		client.Address,
		client.LawyerID,
	).Scan(&client.ClientID)
}

func (r *ClientRepository) Update(ctx context.Context, client *models.Client) error {
	query := `
		UPDATE clients
		SET name = $1, email = $2, phone = $3, address = $4, lawyer_id = $5
		WHERE client_id = $6
	`

	tag, err := r.pool.Exec(ctx, query,
		client.Name,
		client.Email,
		client.Phone,
		client.Address,
		client.LawyerID,
		client.ClientID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
