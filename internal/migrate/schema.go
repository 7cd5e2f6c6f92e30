package migrate

import (
	"log"

	"github.com/jmoiron/sqlx"
)

// EnsureSchema creates the districts and monthly_performance tables on first
// run. Uses IF NOT EXISTS throughout so restarts against an existing
// database are harmless; only the minimal required structure is created.
func EnsureSchema(db *sqlx.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS districts (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            name_hindi TEXT NOT NULL DEFAULT '',
            code TEXT NOT NULL UNIQUE,
            latitude DOUBLE PRECISION,
            longitude DOUBLE PRECISION
        )`,
		`CREATE TABLE IF NOT EXISTS monthly_performance (
            id BIGSERIAL PRIMARY KEY,
            district_id BIGINT NOT NULL REFERENCES districts(id),
            month INT NOT NULL CHECK (month BETWEEN 1 AND 12),
            year INT NOT NULL,
            total_beneficiaries BIGINT NOT NULL DEFAULT 0,
            person_days_generated BIGINT NOT NULL DEFAULT 0,
            average_wage_per_day DOUBLE PRECISION NOT NULL DEFAULT 0,
            total_wage_outlay DOUBLE PRECISION NOT NULL DEFAULT 0,
            payments_released DOUBLE PRECISION NOT NULL DEFAULT 0,
            payment_completion_percentage DOUBLE PRECISION NOT NULL DEFAULT 0,
            total_works_completed BIGINT NOT NULL DEFAULT 0,
            total_works_ongoing BIGINT NOT NULL DEFAULT 0,
            women_beneficiaries BIGINT NOT NULL DEFAULT 0,
            sc_beneficiaries BIGINT NOT NULL DEFAULT 0,
            st_beneficiaries BIGINT NOT NULL DEFAULT 0,
            data_source TEXT NOT NULL DEFAULT '',
            fetched_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		// Upsert conflict target: one row per district per period.
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_district_period
            ON monthly_performance(district_id, month, year)`,
		`CREATE INDEX IF NOT EXISTS idx_performance_recent
            ON monthly_performance(district_id, year DESC, month DESC)`,
	}
	for i, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			log.Printf("Schema statement %d failed: %v", i, err)
			return err
		}
	}
	return nil
}
