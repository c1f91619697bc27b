package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"legalcase/internal/models"
)

type CaseRepository struct {
	pool *pgxpool.Pool
}

func NewCaseRepository(pool *pgxpool.Pool) *CaseRepository {
	return &CaseRepository{pool: pool}
}

const caseColumns = `case_id, title, description, status::text, client_id, lawyer_id`

func scanCase(row pgx.Row) (*models.Case, error) {
	var cs models.Case
	err := row.Scan(
		&cs.CaseID,
		&cs.Title,
		&cs.Description,
		&cs.Status,
		&cs.ClientID,
		&cs.LawyerID,
	)
	if err != nil {
		return nil, err
	}
	return &cs, nil
}

func (r *CaseRepository) List(ctx context.Context) ([]models.Case, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+caseColumns+` FROM cases ORDER BY case_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cases := []models.Case{}
	for rows.Next() {
		cs, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, *cs)
	}
	return cases, rows.Err()
}

func (r *CaseRepository) FindByID(ctx context.Context, id int64) (*models.Case, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+caseColumns+` FROM cases WHERE case_id = $1`, id)
	cs, err := scanCase(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return cs, err
}

func (r *CaseRepository) Create(ctx context.Context, cs *models.Case) error {
	query := `
		INSERT INTO cases (title, description, status, client_id, lawyer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING case_id
	`

	return r.pool.QueryRow(ctx, query,
		cs.Title,
		cs.Description,
		cs.Status,
		cs.ClientID,
		cs.LawyerID,
	).Scan(&cs.CaseID)
}

func (r *CaseRepository) Update(ctx context.Context, cs *models.Case) error {
	query := `
		UPDATE cases
		SET title = $1, description = $2, status = $3, client_id = $4, lawyer_id = $5
		WHERE case_id = $6
	`

	tag, err := r.pool.Exec(ctx, query,
		cs.Title,
		cs.Description,
		cs.Status,
		cs.ClientID,
		cs.LawyerID,
		cs.CaseID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *CaseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cases WHERE case_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
