package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations applies the schema in order. Every statement is idempotent
// so the list is safe to run on every startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		createEnumTypes,
		createAdminsTable,
		createLawyersTable,
		createClientsTable,
		createCasesTable,
		createAppointmentsTable,
	}

	for i, migration := range migrations {
		log.Printf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("All migrations completed successfully")
	return nil
}

const createEnumTypes = `
DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'case_status') THEN
    CREATE TYPE case_status AS ENUM ('Open', 'In Progress', 'Closed', 'Under Review', 'Awaiting Judgment');
  END IF;
END$$;

DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'appointment_status') THEN
    CREATE TYPE appointment_status AS ENUM ('Scheduled', 'Completed', 'Cancelled');
  END IF;
END$$;
`

const createAdminsTable = `
CREATE TABLE IF NOT EXISTS admins (
  admin_id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_admins_email ON admins(email);
`

const createLawyersTable = `
CREATE TABLE IF NOT EXISTS lawyers (
  lawyer_id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  experience_years INT NOT NULL,
  cases_won INT NOT NULL,
  cases_lost INT NOT NULL,
  phone VARCHAR(15),
  address TEXT,
  date_of_birth DATE NOT NULL,
  specialization TEXT
);

CREATE INDEX IF NOT EXISTS idx_lawyers_email ON lawyers(email);
`

const createClientsTable = `
CREATE TABLE IF NOT EXISTS clients (
  client_id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT,
  phone VARCHAR(15),
  address TEXT,
  lawyer_id BIGINT REFERENCES lawyers(lawyer_id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_clients_lawyer_id ON clients(lawyer_id);
`

const createCasesTable = `
CREATE TABLE IF NOT EXISTS cases (
  case_id BIGSERIAL PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  status case_status NOT NULL,
  client_id BIGINT REFERENCES clients(client_id) ON DELETE SET NULL,
  lawyer_id BIGINT REFERENCES lawyers(lawyer_id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_cases_client_id ON cases(client_id);
CREATE INDEX IF NOT EXISTS idx_cases_lawyer_id ON cases(lawyer_id);
`

const createAppointmentsTable = `
CREATE TABLE IF NOT EXISTS appointments (
  appointment_id BIGSERIAL PRIMARY KEY,
  client_id BIGINT NOT NULL REFERENCES clients(client_id) ON DELETE CASCADE,
  lawyer_id BIGINT NOT NULL REFERENCES lawyers(lawyer_id) ON DELETE CASCADE,
  case_id BIGINT REFERENCES cases(case_id) ON DELETE SET NULL,
  appointment_date DATE NOT NULL,
  appointment_time TIME NOT NULL,
  appointment_status appointment_status NOT NULL DEFAULT 'Scheduled'
);

CREATE INDEX IF NOT EXISTS idx_appointments_client_id ON appointments(client_id);
CREATE INDEX IF NOT EXISTS idx_appointments_lawyer_id ON appointments(lawyer_id);
CREATE INDEX IF NOT EXISTS idx_appointments_case_id ON appointments(case_id);
`
