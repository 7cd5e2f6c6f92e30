package ingest

import (
	"context"
	"math/rand"
	"time"

	"mgnrega-dashboard-go/pkg/model"
)

// SyntheticDataSource labels rows produced without a live feed so they can
// never be mistaken for published figures.
const SyntheticDataSource = "synthetic"

// Value ranges for generated payloads, mirroring typical district-scale
// MGNREGA figures. Women always stay below total beneficiaries so synthetic
// rows satisfy the ingestion validation policy.
const (
	minBeneficiaries    = 150_000
	spreadBeneficiaries = 50_000
	minPersonDays       = 2_500_000
	spreadPersonDays    = 1_000_000
	minDailyWage        = 250.0
	spreadDailyWage     = 50.0
	minWageOutlay       = 625_000_000.0
	spreadWageOutlay    = 250_000_000.0
	minPaymentsReleased = 500_000_000.0
	spreadPayments      = 200_000_000.0
	minCompletionPct    = 75.0
	spreadCompletionPct = 20.0
	minWorksCompleted   = 450
	spreadWorksDone     = 100
	minWorksOngoing     = 120
	spreadWorksOngoing  = 50
	minWomen            = 75_000
	spreadWomen         = 25_000
	minSC               = 30_000
	spreadSC            = 15_000
	minST               = 5_000
	spreadST            = 5_000
)

// SyntheticFeed generates placeholder payloads when no feed is configured,
// so the rest of the system can run without the live dependency.
type SyntheticFeed struct {
	rng *rand.Rand
}

// NewSyntheticFeed creates a generator with a time-seeded source.
func NewSyntheticFeed() *SyntheticFeed {
	return &SyntheticFeed{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// FetchDistrict returns a generated payload for the district and period.
// It never fails; the error return only satisfies the FeedClient contract.
func (f *SyntheticFeed) FetchDistrict(_ context.Context, district model.District, month, year int) (model.MonthlyPerformance, error) {
	return model.MonthlyPerformance{
		DistrictID:                  district.ID,
		Month:                       month,
		Year:                        year,
		TotalBeneficiaries:          minBeneficiaries + f.rng.Int63n(spreadBeneficiaries),
		PersonDaysGenerated:         minPersonDays + f.rng.Int63n(spreadPersonDays),
		AverageWagePerDay:           round2(minDailyWage + f.rng.Float64()*spreadDailyWage),
		TotalWageOutlay:             round2(minWageOutlay + f.rng.Float64()*spreadWageOutlay),
		PaymentsReleased:            round2(minPaymentsReleased + f.rng.Float64()*spreadPayments),
		PaymentCompletionPercentage: round2(minCompletionPct + f.rng.Float64()*spreadCompletionPct),
		TotalWorksCompleted:         minWorksCompleted + f.rng.Int63n(spreadWorksDone),
		TotalWorksOngoing:           minWorksOngoing + f.rng.Int63n(spreadWorksOngoing),
		WomenBeneficiaries:          minWomen + f.rng.Int63n(spreadWomen),
		SCBeneficiaries:             minSC + f.rng.Int63n(spreadSC),
		STBeneficiaries:             minST + f.rng.Int63n(spreadST),
		DataSource:                  SyntheticDataSource,
		FetchedAt:                   time.Now().UTC(),
	}, nil
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
