package performance

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mgnrega-dashboard-go/pkg/model"
)

// HistoryWindow is the maximum number of trailing monthly rows served for a
// district, matching the dashboard's 12-month trend view.
const HistoryWindow = 12

// PerformanceService handles monthly performance rows in the metrics store.
type PerformanceService struct {
	db *sqlx.DB
}

// NewPerformanceService creates a new performance service
func NewPerformanceService(db *sqlx.DB) *PerformanceService {
	return &PerformanceService{db: db}
}

// Whole-row replacement on the natural key: re-ingesting a period always
// converges on the last run's payload rather than merging fields.
const upsertQuery = `
    INSERT INTO monthly_performance (
        district_id, month, year,
        total_beneficiaries, person_days_generated, average_wage_per_day,
        total_wage_outlay, payments_released, payment_completion_percentage,
        total_works_completed, total_works_ongoing,
        women_beneficiaries, sc_beneficiaries, st_beneficiaries,
        data_source, fetched_at
    ) VALUES (
        :district_id, :month, :year,
        :total_beneficiaries, :person_days_generated, :average_wage_per_day,
        :total_wage_outlay, :payments_released, :payment_completion_percentage,
        :total_works_completed, :total_works_ongoing,
        :women_beneficiaries, :sc_beneficiaries, :st_beneficiaries,
        :data_source, :fetched_at
    )
    ON CONFLICT (district_id, month, year) DO UPDATE SET
        total_beneficiaries = EXCLUDED.total_beneficiaries,
        person_days_generated = EXCLUDED.person_days_generated,
        average_wage_per_day = EXCLUDED.average_wage_per_day,
        total_wage_outlay = EXCLUDED.total_wage_outlay,
        payments_released = EXCLUDED.payments_released,
        payment_completion_percentage = EXCLUDED.payment_completion_percentage,
        total_works_completed = EXCLUDED.total_works_completed,
        total_works_ongoing = EXCLUDED.total_works_ongoing,
        women_beneficiaries = EXCLUDED.women_beneficiaries,
        sc_beneficiaries = EXCLUDED.sc_beneficiaries,
        st_beneficiaries = EXCLUDED.st_beneficiaries,
        data_source = EXCLUDED.data_source,
        fetched_at = EXCLUDED.fetched_at`

// UpsertBatch writes one batch of monthly rows inside a single transaction.
// Cross-row atomicity is whatever Postgres provides for the transaction; the
// caller treats any error as a failed batch and may safely retry the whole
// period.
func (s *PerformanceService) UpsertBatch(ctx context.Context, rows []model.MonthlyPerformance) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning upsert transaction: %v", model.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	for _, row := range rows {
		if _, err := tx.NamedExecContext(ctx, upsertQuery, row); err != nil {
			return fmt.Errorf("%w: upserting district %d period %02d/%d: %v",
				model.ErrStoreUnavailable, row.DistrictID, row.Month, row.Year, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing upsert batch: %v", model.ErrStoreUnavailable, err)
	}
	return nil
}

// RecentByDistrict returns up to limit rows ordered most recent first.
// A valid district with zero rows yields an empty slice, not an error.
func (s *PerformanceService) RecentByDistrict(ctx context.Context, districtID int64, limit int) ([]model.MonthlyPerformance, error) {
	if limit <= 0 || limit > HistoryWindow {
		limit = HistoryWindow
	}

	rows := []model.MonthlyPerformance{}
	err := s.db.SelectContext(ctx, &rows, `
        SELECT id, district_id, month, year,
               total_beneficiaries, person_days_generated, average_wage_per_day,
               total_wage_outlay, payments_released, payment_completion_percentage,
               total_works_completed, total_works_ongoing,
               women_beneficiaries, sc_beneficiaries, st_beneficiaries,
               data_source, fetched_at
        FROM monthly_performance
        WHERE district_id = $1
        ORDER BY year DESC, month DESC
        LIMIT $2
    `, districtID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: loading performance for district %d: %v", model.ErrStoreUnavailable, districtID, err)
	}
	return rows, nil
}
