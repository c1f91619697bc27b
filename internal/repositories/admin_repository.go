package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"legalcase/internal/models"
)

// pgUniqueViolation is the SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	admin.Prepare()

	query := `
		INSERT INTO admins (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING admin_id
	`

	err := r.pool.QueryRow(ctx, query,
		admin.Name,
		admin.Email,
		admin.PasswordHash,
	).Scan(&admin.AdminID)

	if isUniqueViolation(err) {
		return models.ErrDuplicateEmail
	}
	return err
}

func (r *AdminRepository) FindByID(ctx context.Context, id int64) (*models.Admin, error) {
	query := `SELECT admin_id, name, email, password_hash
		FROM admins WHERE admin_id = $1`

	var admin models.Admin
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&admin.AdminID,
		&admin.Name,
		&admin.Email,
		&admin.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &admin, nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `SELECT admin_id, name, email, password_hash
		FROM admins WHERE email = $1`

	var admin models.Admin
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&admin.AdminID,
		&admin.Name,
		&admin.Email,
		&admin.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &admin, nil
}

func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	admin.Prepare()

	query := `
		UPDATE admins
		SET name = $1, email = $2, password_hash = $3
		WHERE admin_id = $4
	`

	tag, err := r.pool.Exec(ctx, query,
		admin.Name,
		admin.Email,
		admin.PasswordHash,
		admin.AdminID,
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
