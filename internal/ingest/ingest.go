package ingest

import (
	"context"
	"fmt"
	"log"
	"time"

	"mgnrega-dashboard-go/internal/metrics"
	"mgnrega-dashboard-go/pkg/model"
)

// CatalogSource supplies the district catalog for a run.
type CatalogSource interface {
	ListDistricts(ctx context.Context) ([]model.District, error)
}

// PerformanceWriter persists one batch of monthly rows idempotently.
type PerformanceWriter interface {
	UpsertBatch(ctx context.Context, rows []model.MonthlyPerformance) error
}

// FeedClient obtains one district's payload for a period. Implemented by
// DataGovClient and, when no feed is configured, SyntheticFeed.
type FeedClient interface {
	FetchDistrict(ctx context.Context, district model.District, month, year int) (model.MonthlyPerformance, error)
}

// CacheInvalidator drops cached dashboard payloads after a successful run.
type CacheInvalidator interface {
	InvalidateAll(ctx context.Context) error
}

// IngestionService refreshes monthly performance rows for the current
// period. Per-district feed failures are absorbed and counted; losing the
// catalog or the batch write aborts the whole run.
type IngestionService struct {
	catalog CatalogSource
	store   PerformanceWriter
	feed    FeedClient
	cache   CacheInvalidator // optional
	loc     *time.Location
}

// NewIngestionService creates a new ingestion service. cache may be nil.
func NewIngestionService(catalog CatalogSource, store PerformanceWriter, feed FeedClient, cache CacheInvalidator, loc *time.Location) *IngestionService {
	if loc == nil {
		loc = time.UTC
	}
	return &IngestionService{
		catalog: catalog,
		store:   store,
		feed:    feed,
		cache:   cache,
		loc:     loc,
	}
}

// RunOnce executes one ingestion run for the current calendar month in the
// reporting timezone. Re-running the same period is always safe: the batch
// is keyed on (district_id, month, year) and fully replaces existing rows.
func (s *IngestionService) RunOnce(ctx context.Context) (model.IngestReport, error) {
	start := time.Now()
	now := start.In(s.loc)
	month, year := int(now.Month()), now.Year()

	report := model.IngestReport{Month: month, Year: year}

	districts, err := s.catalog.ListDistricts(ctx)
	if err != nil {
		metrics.IngestRunsTotal.WithLabelValues("aborted").Inc()
		return report, fmt.Errorf("%w: loading district catalog: %v", model.ErrIngestionAborted, err)
	}
	report.Attempted = len(districts)

	rows := make([]model.MonthlyPerformance, 0, len(districts))
	for _, district := range districts {
		payload, err := s.feed.FetchDistrict(ctx, district, month, year)
		if err != nil {
			log.Printf("Feed fetch failed for district %s: %v", district.Code, err)
			report.Failures = append(report.Failures, model.IngestFailure{
				DistrictCode: district.Code,
				DistrictName: district.Name,
				Reason:       err.Error(),
			})
			continue
		}
		if err := validatePayload(payload); err != nil {
			log.Printf("Rejected payload for district %s: %v", district.Code, err)
			report.Failures = append(report.Failures, model.IngestFailure{
				DistrictCode: district.Code,
				DistrictName: district.Name,
				Reason:       err.Error(),
			})
			continue
		}
		if report.DataSource == "" {
			report.DataSource = payload.DataSource
		}
		rows = append(rows, payload)
	}

	if len(rows) > 0 {
		if err := s.store.UpsertBatch(ctx, rows); err != nil {
			metrics.IngestRunsTotal.WithLabelValues("aborted").Inc()
			return report, fmt.Errorf("%w: writing batch for %02d/%d: %v", model.ErrIngestionAborted, month, year, err)
		}
		metrics.IngestRowsWrittenTotal.Add(float64(len(rows)))
	}

	report.Succeeded = len(rows)
	report.Failed = len(report.Failures)
	report.DurationMs = time.Since(start).Milliseconds()
	report.FinishedAt = time.Now().UTC()

	if s.cache != nil {
		if err := s.cache.InvalidateAll(ctx); err != nil {
			// Stale dashboards expire by TTL anyway.
			log.Printf("Dashboard cache invalidation failed: %v", err)
		}
	}

	if report.Failed > 0 {
		metrics.IngestRunsTotal.WithLabelValues("partial").Inc()
	} else {
		metrics.IngestRunsTotal.WithLabelValues("success").Inc()
	}
	log.Printf("Ingestion run for %02d/%d: %d/%d districts written", month, year, report.Succeeded, report.Attempted)
	return report, nil
}

// RunScheduled performs one immediate run and then repeats on the interval.
// Intended to run in its own goroutine from the server entrypoint.
func (s *IngestionService) RunScheduled(interval time.Duration) {
	log.Printf("Starting ingestion scheduler, interval %s", interval)

	if _, err := s.RunOnce(context.Background()); err != nil {
		log.Printf("Scheduled ingestion run failed: %v", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if _, err := s.RunOnce(context.Background()); err != nil {
			log.Printf("Scheduled ingestion run failed: %v", err)
		}
	}
}
