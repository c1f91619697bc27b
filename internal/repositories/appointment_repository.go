package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"legalcase/internal/models"
)

// pgForeignKeyViolation is the SQLSTATE for foreign key violations.
const pgForeignKeyViolation = "23503"

// ErrInvalidReference is returned when an appointment names a client, lawyer
// or case that does not exist. The insert is rejected whole; no partial row
// persists.
var ErrInvalidReference = errors.New("referenced client, lawyer or case does not exist")

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

const appointmentColumns = `appointment_id, client_id, lawyer_id, case_id,
	appointment_date::text, appointment_time::text, appointment_status::text`

func scanAppointment(row pgx.Row) (*models.Appointment, error) {
	var a models.Appointment
	err := row.Scan(
		&a.AppointmentID,
		&a.ClientID,
		&a.LawyerID,
		&a.CaseID,
		&a.AppointmentDate,
		&a.AppointmentTime,
		&a.AppointmentStatus,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) List(ctx context.Context) ([]models.Appointment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+appointmentColumns+` FROM appointments ORDER BY appointment_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := []models.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, *a)
	}
	return appointments, rows.Err()
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id int64) (*models.Appointment, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE appointment_id = $1`, id)
	a, err := scanAppointment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return a, err
}

func (r *AppointmentRepository) Create(ctx context.Context, a *models.Appointment) error {
	query := `
		INSERT INTO appointments (client_id, lawyer_id, case_id,
			appointment_date, appointment_time, appointment_status)
		VALUES ($1, $2, $3, $4::date, $5::time, $6)
		RETURNING appointment_id
	`

	err := r.pool.QueryRow(ctx, query,
		a.ClientID,
		a.LawyerID,
		a.CaseID,
		a.AppointmentDate,
		a.AppointmentTime,
		a.AppointmentStatus,
	).Scan(&a.AppointmentID)

	if isForeignKeyViolation(err) {
		return ErrInvalidReference
	}
	return err
}

func (r *AppointmentRepository) Update(ctx context.Context, a *models.Appointment) error {
	query := `
		UPDATE appointments
		SET client_id = $1, lawyer_id = $2, case_id = $3,
			appointment_date = $4::date, appointment_time = $5::time,
			appointment_status = $6
		WHERE appointment_id = $7
	`

	tag, err := r.pool.Exec(ctx, query,
		a.ClientID,
		a.LawyerID,
		a.CaseID,
		a.AppointmentDate,
		a.AppointmentTime,
		a.AppointmentStatus,
		a.AppointmentID,
	)
	if isForeignKeyViolation(err) {
		return ErrInvalidReference
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE appointment_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
