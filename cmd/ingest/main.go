// One-shot ingestion run for external schedulers (cron, systemd timers).
// Exits non-zero when the run aborts; partial success is reported on stdout
// and exits zero, matching the job's failure policy.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"mgnrega-dashboard-go/internal/catalog"
	"mgnrega-dashboard-go/internal/ingest"
	"mgnrega-dashboard-go/internal/migrate"
	"mgnrega-dashboard-go/internal/performance"
	"mgnrega-dashboard-go/pkg/config"
)

func main() {
	cfg := config.LoadConfig()

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migrate.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}
	if err := migrate.SeedDistricts(db); err != nil {
		log.Fatalf("Failed to seed districts: %v", err)
	}

	var feed ingest.FeedClient
	if cfg.FeedURL != "" {
		feed = ingest.NewDataGovClient(ingest.FeedConfig{
			BaseURL:    cfg.FeedURL,
			APIKey:     cfg.FeedAPIKey,
			MaxRetries: 3,
			RetryDelay: 2 * time.Second,
		})
	} else {
		log.Printf("No FEED_URL configured, generating synthetic data")
		feed = ingest.NewSyntheticFeed()
	}

	loc, err := time.LoadLocation(cfg.ReportingTimezone)
	if err != nil {
		log.Printf("Invalid REPORTING_TIMEZONE %q, falling back to UTC: %v", cfg.ReportingTimezone, err)
		loc = time.UTC
	}

	svc := ingest.NewIngestionService(
		catalog.NewCatalogService(db),
		performance.NewPerformanceService(db),
		feed,
		nil,
		loc,
	)

	report, err := svc.RunOnce(context.Background())
	if err != nil {
		log.Fatalf("Ingestion run aborted: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatalf("Failed to encode report: %v", err)
	}
}
