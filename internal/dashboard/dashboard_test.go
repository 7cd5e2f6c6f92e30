package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mgnrega-dashboard-go/pkg/model"
)

type fakeCatalog struct {
	districts map[int64]model.District
}

func (f *fakeCatalog) GetDistrict(_ context.Context, id int64) (model.District, error) {
	d, ok := f.districts[id]
	if !ok {
		return model.District{}, model.ErrDistrictNotFound
	}
	return d, nil
}

type fakePerformance struct {
	rows map[int64][]model.MonthlyPerformance
	err  error
}

func (f *fakePerformance) RecentByDistrict(_ context.Context, districtID int64, limit int) ([]model.MonthlyPerformance, error) {
	if f.err != nil {
		return nil, f.err
	}
	rows := f.rows[districtID]
	if len(rows) > limit && limit > 0 {
		rows = rows[:limit]
	}
	return rows, nil
}

func row(month, year int, completion float64) model.MonthlyPerformance {
	return model.MonthlyPerformance{
		DistrictID:                  1,
		Month:                       month,
		Year:                        year,
		TotalBeneficiaries:          160000,
		PersonDaysGenerated:         2800000,
		AverageWagePerDay:           261.5,
		TotalWageOutlay:             700000000,
		PaymentsReleased:            560000000,
		PaymentCompletionPercentage: completion,
		TotalWorksCompleted:         480,
		TotalWorksOngoing:           140,
		WomenBeneficiaries:          80000,
		DataSource:                  "data.gov.in",
		FetchedAt:                   time.Now(),
	}
}

func newService(rows map[int64][]model.MonthlyPerformance) *DashboardService {
	catalog := &fakeCatalog{districts: map[int64]model.District{
		1: {ID: 1, Name: "Lucknow", NameHindi: "लखनऊ", Code: "UP-LKO"},
	}}
	return NewDashboardService(catalog, &fakePerformance{rows: rows}, nil, 0)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		completion float64
		level      string
	}{
		{80.0, "excellent"},
		{79.9, "good"},
		{95.2, "excellent"},
		{60.0, "good"},
		{59.9, "average"},
		{40.0, "average"},
		{39.9, "needs_improvement"},
		{0, "needs_improvement"},
		{112.5, "excellent"}, // feed not clamped to 100
	}
	for _, tt := range tests {
		got := StatusFor(tt.completion)
		assert.Equal(t, tt.level, got.Level, "completion %.1f", tt.completion)
		assert.NotEmpty(t, got.Label)
		assert.NotEmpty(t, got.LabelHindi)
	}
}

func TestWomenShare(t *testing.T) {
	share := WomenShare(80000, 160000)
	require.NotNil(t, share)
	assert.InDelta(t, 50.0, *share, 0.001)

	// Undefined when there are no beneficiaries: nil, never a division panic.
	assert.Nil(t, WomenShare(0, 0))
	assert.Nil(t, WomenShare(500, 0))
}

func TestFormatIndianGrouping(t *testing.T) {
	assert.Equal(t, "1,50,000", formatCount(150000))
	assert.Equal(t, "2,58,00,000", formatCount(25800000))
	assert.Equal(t, "480", formatCount(480))
	assert.Equal(t, "₹62,50,00,000", formatCurrency(625000000))
	assert.Equal(t, "₹261.50", formatWage(261.5))
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "मार्च/Mar 2024", periodLabel(3, 2024))
	assert.Equal(t, "Mar 2024", trendLabel(3, 2024))
	assert.Equal(t, "0/2024", periodLabel(0, 2024))
}

func TestBuildDashboard(t *testing.T) {
	rows := []model.MonthlyPerformance{
		row(3, 2024, 82.4), // most recent first, as stored
		row(2, 2024, 78.0),
		row(1, 2024, 67.5),
	}
	svc := newService(map[int64][]model.MonthlyPerformance{1: rows})

	resp, err := svc.BuildDashboard(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, resp.HasData)
	assert.Equal(t, 3, resp.MonthsOnFile)
	require.NotNil(t, resp.Current)
	assert.Equal(t, 3, resp.Current.Month)
	assert.Equal(t, "मार्च/Mar 2024", resp.PeriodLabel)
	require.NotNil(t, resp.Status)
	assert.Equal(t, "excellent", resp.Status.Level)
	require.NotNil(t, resp.WomenShare)
	assert.InDelta(t, 50.0, *resp.WomenShare, 0.001)
	require.NotNil(t, resp.Formatted)
	assert.Equal(t, "1,60,000", resp.Formatted.TotalBeneficiaries)

	// Trend is the stored rows re-ordered oldest to newest, untouched.
	require.Len(t, resp.Trend, 3)
	assert.Equal(t, 1, resp.Trend[0].Month)
	assert.Equal(t, 3, resp.Trend[2].Month)
	assert.Equal(t, 67.5, resp.Trend[0].CompletionPercent)
	assert.Equal(t, 82.4, resp.Trend[2].CompletionPercent)
}

func TestBuildDashboardSingleRowNoTrend(t *testing.T) {
	svc := newService(map[int64][]model.MonthlyPerformance{1: {row(3, 2024, 45.0)}})

	resp, err := svc.BuildDashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, resp.HasData)
	assert.Empty(t, resp.Trend)
	assert.Equal(t, "average", resp.Status.Level)
}

func TestBuildDashboardNoData(t *testing.T) {
	// A valid district with zero rows is a "no data" dashboard, clearly
	// distinct from an unknown district id.
	svc := newService(map[int64][]model.MonthlyPerformance{})

	resp, err := svc.BuildDashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, resp.HasData)
	assert.Equal(t, "Lucknow", resp.District.Name)
	assert.Nil(t, resp.Current)
	assert.Nil(t, resp.Status)
	assert.Nil(t, resp.WomenShare)
	assert.Zero(t, resp.MonthsOnFile)
}

func TestBuildDashboardUnknownDistrict(t *testing.T) {
	svc := newService(map[int64][]model.MonthlyPerformance{})

	_, err := svc.BuildDashboard(context.Background(), 999)
	assert.ErrorIs(t, err, model.ErrDistrictNotFound)
}

func TestBuildDashboardZeroBeneficiaries(t *testing.T) {
	r := row(3, 2024, 50.0)
	r.TotalBeneficiaries = 0
	r.WomenBeneficiaries = 0
	svc := newService(map[int64][]model.MonthlyPerformance{1: {r}})

	resp, err := svc.BuildDashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, resp.HasData)
	assert.Nil(t, resp.WomenShare)
}

func TestRecentPerformance(t *testing.T) {
	svc := newService(map[int64][]model.MonthlyPerformance{1: {row(3, 2024, 82.4), row(2, 2024, 78.0)}})

	resp, err := svc.RecentPerformance(context.Background(), 1, 12)
	require.NoError(t, err)
	assert.Equal(t, "UP-LKO", resp.District.Code)
	assert.Equal(t, 2, resp.Total)

	_, err = svc.RecentPerformance(context.Background(), 42, 12)
	assert.ErrorIs(t, err, model.ErrDistrictNotFound)
}
