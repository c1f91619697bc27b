package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"legalcase/internal/models"
)

type LawyerRepository struct {
	pool *pgxpool.Pool
}

func NewLawyerRepository(pool *pgxpool.Pool) *LawyerRepository {
	return &LawyerRepository{pool: pool}
}

const lawyerColumns = `lawyer_id, name, email, experience_years, cases_won, cases_lost,
	phone, address, date_of_birth::text, specialization`

func scanLawyer(row pgx.Row) (*models.Lawyer, error) {
	var l models.Lawyer
	err := row.Scan(
		&l.LawyerID,
		&l.Name,
		&l.Email,
		&l.ExperienceYears,
		&l.CasesWon,
		&l.CasesLost,
		&l.Phone,
		&l.Address,
		&l.DateOfBirth,
		&l.Specialization,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LawyerRepository) List(ctx context.Context) ([]models.Lawyer, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+lawyerColumns+` FROM lawyers ORDER BY lawyer_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lawyers := []models.Lawyer{}
	for rows.Next() {
		l, err := scanLawyer(rows)
		if err != nil {
			return nil, err
		}
		lawyers = append(lawyers, *l)
	}
	return lawyers, rows.Err()
}

func (r *LawyerRepository) FindByID(ctx context.Context, id int64) (*models.Lawyer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+lawyerColumns+` FROM lawyers WHERE lawyer_id = $1`, id)
	l, err := scanLawyer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return l, err
}

func (r *LawyerRepository) FindByEmail(ctx context.Context, email string) (*models.Lawyer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+lawyerColumns+` FROM lawyers WHERE email = $1`, email)
	l, err := scanLawyer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return l, err
}

func (r *LawyerRepository) Create(ctx context.Context, lawyer *models.Lawyer) error {
	query := `
		INSERT INTO lawyers (name, email, experience_years, cases_won, cases_lost,
			phone, address, date_of_birth, specialization)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::date, $9)
		RETURNING lawyer_id
	`

	err := r.pool.QueryRow(ctx, query,
		lawyer.Name,
		lawyer.Email,
		lawyer.ExperienceYears,
		lawyer.CasesWon,
		lawyer.CasesLost,
		lawyer.Phone,
		lawyer.Address,
		lawyer.DateOfBirth,
		lawyer.Specialization,
	).Scan(&lawyer.LawyerID)

	if isUniqueViolation(err) {
		return models.ErrDuplicateEmail
	}
	return err
}

func (r *LawyerRepository) Update(ctx context.Context, lawyer *models.Lawyer) error {
	query := `
		UPDATE lawyers
		SET name = $1, email = $2, experience_years = $3, cases_won = $4,
			cases_lost = $5, phone = $6, address = $7, date_of_birth = $8::date,
			specialization = $9
		WHERE lawyer_id = $10
	`

	tag, err := r.pool.Exec(ctx, query,
		lawyer.Name,
		lawyer.Email,
		lawyer.ExperienceYears,
		lawyer.CasesWon,
		lawyer.CasesLost,
		lawyer.Phone,
		lawyer.Address,
		lawyer.DateOfBirth,
		lawyer.Specialization,
		lawyer.LawyerID,
	)
	if isUniqueViolation(err) {
		return models.ErrDuplicateEmail
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *LawyerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM lawyers WHERE lawyer_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
