package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepository serves the read-only joined views behind /view/:table and
// the /dashboard counters. Reports are plain rows; no entity structs.
type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// ErrUnknownTable is returned for a table name outside the known report set.
var ErrUnknownTable = fmt.Errorf("unknown table name")

var reportQueries = map[string]string{
	"cases": `
		SELECT c.case_id, c.title, c.status::text, c.description,
			cl.name AS client_name, l.name AS lawyer_name
		FROM cases c
		LEFT JOIN clients cl ON cl.client_id = c.client_id
		LEFT JOIN lawyers l ON l.lawyer_id = c.lawyer_id
		ORDER BY c.case_id`,

	"appointments": `
		SELECT a.appointment_id, a.appointment_date::text, a.appointment_time::text,
			a.appointment_status::text, cl.name AS client_name, l.name AS lawyer_name,
			cs.title AS case_title
		FROM appointments a
		JOIN clients cl ON cl.client_id = a.client_id
		JOIN lawyers l ON l.lawyer_id = a.lawyer_id
		LEFT JOIN cases cs ON cs.case_id = a.case_id
		ORDER BY a.appointment_date, a.appointment_time`,

	"clients": `
		SELECT cl.client_id, cl.name, cl.email, cl.phone,
			l.name AS lawyer_name, COUNT(c.case_id) AS case_count
		FROM clients cl
		LEFT JOIN lawyers l ON l.lawyer_id = cl.lawyer_id
		LEFT JOIN cases c ON c.client_id = cl.client_id
		GROUP BY cl.client_id, cl.name, cl.email, cl.phone, l.name
		ORDER BY cl.client_id`,

	"lawyers": `
		SELECT l.lawyer_id, l.name, l.specialization, l.experience_years,
			l.cases_won, l.cases_lost,
			COUNT(DISTINCT cl.client_id) AS client_count,
			COUNT(DISTINCT c.case_id) AS case_count
		FROM lawyers l
		LEFT JOIN clients cl ON cl.lawyer_id = l.lawyer_id
		LEFT JOIN cases c ON c.lawyer_id = l.lawyer_id
		GROUP BY l.lawyer_id, l.name, l.specialization, l.experience_years,
			l.cases_won, l.cases_lost
		ORDER BY l.lawyer_id`,
}

// View runs the joined report for one of the known table names.
func (r *ReportRepository) View(ctx context.Context, table string) ([]map[string]any, error) {
	query, ok := reportQueries[table]
	if !ok {
		return nil, ErrUnknownTable
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}

// DashboardCounts returns per-entity row counts.
func (r *ReportRepository) DashboardCounts(ctx context.Context) (map[string]int64, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM lawyers) AS lawyers,
			(SELECT COUNT(*) FROM clients) AS clients,
			(SELECT COUNT(*) FROM cases) AS cases,
			(SELECT COUNT(*) FROM appointments) AS appointments
	`

	var lawyers, clients, cases, appointments int64
	err := r.pool.QueryRow(ctx, query).Scan(&lawyers, &clients, &cases, &appointments)
	if err != nil {
		return nil, err
	}

	return map[string]int64{
		"lawyers":      lawyers,
		"clients":      clients,
		"cases":        cases,
		"appointments": appointments,
	}, nil
}

func collectRows(rows pgx.Rows) ([]map[string]any, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	result := []map[string]any{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make(map[string]any, len(fields))
		for i, field := range fields {
			row[field.Name] = values[i]
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
