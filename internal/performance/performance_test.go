package performance

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mgnrega-dashboard-go/pkg/model"
)

func newMockService(t *testing.T) (*PerformanceService, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewPerformanceService(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func sampleRow(districtID int64) model.MonthlyPerformance {
	return model.MonthlyPerformance{
		DistrictID:                  districtID,
		Month:                       3,
		Year:                        2024,
		TotalBeneficiaries:          160000,
		PersonDaysGenerated:         2800000,
		AverageWagePerDay:           261.50,
		TotalWageOutlay:             700000000,
		PaymentsReleased:            560000000,
		PaymentCompletionPercentage: 82.4,
		TotalWorksCompleted:         480,
		TotalWorksOngoing:           140,
		WomenBeneficiaries:          81000,
		SCBeneficiaries:             34000,
		STBeneficiaries:             6000,
		DataSource:                  "data.gov.in",
		FetchedAt:                   time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC),
	}
}

func TestUpsertBatchEmpty(t *testing.T) {
	svc, mock := newMockService(t)
	require.NoError(t, svc.UpsertBatch(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertBatchTransaction(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO monthly_performance").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO monthly_performance").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.UpsertBatch(context.Background(), []model.MonthlyPerformance{
		sampleRow(1), sampleRow(2),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertBatchConflictTarget(t *testing.T) {
	// The idempotency contract lives in the statement: one row per
	// (district_id, month, year), full replacement on conflict.
	assert.Contains(t, upsertQuery, "ON CONFLICT (district_id, month, year) DO UPDATE SET")
	assert.Contains(t, upsertQuery, "fetched_at = EXCLUDED.fetched_at")
	assert.NotContains(t, upsertQuery, "DO NOTHING")
}

func TestUpsertBatchRollbackOnError(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO monthly_performance").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := svc.UpsertBatch(context.Background(), []model.MonthlyPerformance{sampleRow(1)})
	assert.ErrorIs(t, err, model.ErrStoreUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentByDistrict(t *testing.T) {
	svc, mock := newMockService(t)

	cols := []string{
		"id", "district_id", "month", "year",
		"total_beneficiaries", "person_days_generated", "average_wage_per_day",
		"total_wage_outlay", "payments_released", "payment_completion_percentage",
		"total_works_completed", "total_works_ongoing",
		"women_beneficiaries", "sc_beneficiaries", "st_beneficiaries",
		"data_source", "fetched_at",
	}
	now := time.Now()
	rows := sqlmock.NewRows(cols).
		AddRow(2, 1, 3, 2024, 160000, 2800000, 261.5, 7e8, 5.6e8, 82.4, 480, 140, 81000, 34000, 6000, "data.gov.in", now).
		AddRow(1, 1, 2, 2024, 150000, 2600000, 255.0, 6.5e8, 5.2e8, 78.0, 455, 130, 76000, 31000, 5500, "data.gov.in", now)

	mock.ExpectQuery("FROM monthly_performance\\s+WHERE district_id = \\$1\\s+ORDER BY year DESC, month DESC\\s+LIMIT \\$2").
		WithArgs(int64(1), HistoryWindow).
		WillReturnRows(rows)

	got, err := svc.RecentByDistrict(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].Month)
	assert.Equal(t, 2, got[1].Month)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentByDistrictClampsLimit(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("FROM monthly_performance").
		WithArgs(int64(1), HistoryWindow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.RecentByDistrict(context.Background(), 1, 99)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentByDistrictEmpty(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("FROM monthly_performance").
		WithArgs(int64(7), 6).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := svc.RecentByDistrict(context.Background(), 7, 6)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
