package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"mgnrega-dashboard-go/internal/metrics"
	"mgnrega-dashboard-go/internal/performance"
	"mgnrega-dashboard-go/pkg/model"
)

// DistrictSource resolves districts from the catalog.
type DistrictSource interface {
	GetDistrict(ctx context.Context, id int64) (model.District, error)
}

// PerformanceSource loads recent monthly rows, most recent first.
type PerformanceSource interface {
	RecentByDistrict(ctx context.Context, districtID int64, limit int) ([]model.MonthlyPerformance, error)
}

const cacheKeyPrefix = "dashboard:"

// DashboardService derives the display-ready scorecard for one district:
// status bucket, women's share, formatted figures and the trend series.
// Derivations never recompute feed-supplied totals.
type DashboardService struct {
	catalog     DistrictSource
	performance PerformanceSource
	redis       *redis.Client // optional; nil disables caching
	cacheTTL    time.Duration
}

// NewDashboardService creates a new dashboard service. redisClient may be
// nil, in which case every read goes straight to the store.
func NewDashboardService(catalog DistrictSource, perf PerformanceSource, redisClient *redis.Client, cacheTTL time.Duration) *DashboardService {
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &DashboardService{
		catalog:     catalog,
		performance: perf,
		redis:       redisClient,
		cacheTTL:    cacheTTL,
	}
}

// BuildDashboard assembles the aggregated payload for a district. An
// unknown id fails with ErrDistrictNotFound; a known district with zero
// rows returns a valid response with HasData=false.
func (s *DashboardService) BuildDashboard(ctx context.Context, districtID int64) (model.DashboardResponse, error) {
	if cached, ok := s.cacheGet(ctx, districtID); ok {
		return cached, nil
	}

	district, err := s.catalog.GetDistrict(ctx, districtID)
	if err != nil {
		return model.DashboardResponse{}, err
	}

	rows, err := s.performance.RecentByDistrict(ctx, districtID, performance.HistoryWindow)
	if err != nil {
		return model.DashboardResponse{}, err
	}

	resp := buildResponse(district, rows)
	s.cacheSet(ctx, districtID, resp)
	return resp, nil
}

// RecentPerformance returns the raw recent rows for a district, verifying
// the district exists first so an unknown id is a NotFound, not an empty
// list.
func (s *DashboardService) RecentPerformance(ctx context.Context, districtID int64, limit int) (model.PerformanceListResponse, error) {
	district, err := s.catalog.GetDistrict(ctx, districtID)
	if err != nil {
		return model.PerformanceListResponse{}, err
	}
	rows, err := s.performance.RecentByDistrict(ctx, districtID, limit)
	if err != nil {
		return model.PerformanceListResponse{}, err
	}
	return model.PerformanceListResponse{District: district, Rows: rows, Total: len(rows)}, nil
}

// buildResponse is pure: the whole derivation is a function of the district
// and its stored rows.
func buildResponse(district model.District, rows []model.MonthlyPerformance) model.DashboardResponse {
	resp := model.DashboardResponse{
		District:     district,
		MonthsOnFile: len(rows),
	}
	if len(rows) == 0 {
		return resp
	}

	current := rows[0]
	status := StatusFor(current.PaymentCompletionPercentage)

	resp.HasData = true
	resp.Current = &current
	resp.PeriodLabel = periodLabel(current.Month, current.Year)
	resp.Status = &status
	resp.WomenShare = WomenShare(current.WomenBeneficiaries, current.TotalBeneficiaries)
	resp.Formatted = formatMetrics(current)

	// Trend only when there is something to chart. Stored rows arrive most
	// recent first; the chart wants oldest to newest. Direct mapping, no
	// smoothing or gap-filling for missing months.
	if len(rows) > 1 {
		trend := make([]model.TrendPoint, 0, len(rows))
		for i := len(rows) - 1; i >= 0; i-- {
			r := rows[i]
			trend = append(trend, model.TrendPoint{
				Label:             trendLabel(r.Month, r.Year),
				Month:             r.Month,
				Year:              r.Year,
				Beneficiaries:     r.TotalBeneficiaries,
				PersonDays:        r.PersonDaysGenerated,
				CompletionPercent: r.PaymentCompletionPercentage,
			})
		}
		resp.Trend = trend
	}
	return resp
}

// InvalidateAll drops every cached dashboard. Called by the ingestion job
// after a successful run.
func (s *DashboardService) InvalidateAll(ctx context.Context) error {
	if s.redis == nil {
		return nil
	}
	iter := s.redis.Scan(ctx, 0, cacheKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.redis.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *DashboardService) cacheGet(ctx context.Context, districtID int64) (model.DashboardResponse, bool) {
	if s.redis == nil {
		return model.DashboardResponse{}, false
	}
	raw, err := s.redis.Get(ctx, cacheKey(districtID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Dashboard cache read failed: %v", err)
		}
		metrics.DashboardCacheMissesTotal.Inc()
		return model.DashboardResponse{}, false
	}
	var resp model.DashboardResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		metrics.DashboardCacheMissesTotal.Inc()
		return model.DashboardResponse{}, false
	}
	metrics.DashboardCacheHitsTotal.Inc()
	return resp, true
}

func (s *DashboardService) cacheSet(ctx context.Context, districtID int64, resp model.DashboardResponse) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, cacheKey(districtID), raw, s.cacheTTL).Err(); err != nil {
		log.Printf("Dashboard cache write failed: %v", err)
	}
}

func cacheKey(districtID int64) string {
	return fmt.Sprintf("%s%d", cacheKeyPrefix, districtID)
}
