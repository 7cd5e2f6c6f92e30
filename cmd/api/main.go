package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"mgnrega-dashboard-go/internal/catalog"
	"mgnrega-dashboard-go/internal/dashboard"
	"mgnrega-dashboard-go/internal/handler"
	"mgnrega-dashboard-go/internal/ingest"
	"mgnrega-dashboard-go/internal/metrics"
	"mgnrega-dashboard-go/internal/migrate"
	"mgnrega-dashboard-go/internal/performance"
	"mgnrega-dashboard-go/pkg/config"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Connect to database
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

	// Optional Redis cache for dashboard payloads
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		log.Printf("Dashboard caching enabled via Redis at %s", cfg.RedisAddr)
	}

	// Feed client: live feed when configured, synthetic generator otherwise
	var feed ingest.FeedClient
	if cfg.FeedURL != "" {
		feed = ingest.NewDataGovClient(ingest.FeedConfig{
			BaseURL:    cfg.FeedURL,
			APIKey:     cfg.FeedAPIKey,
			MaxRetries: 3,
			RetryDelay: 2 * time.Second,
		})
	} else {
		log.Printf("No FEED_URL configured, ingestion will generate synthetic data")
		feed = ingest.NewSyntheticFeed()
	}

	loc, err := time.LoadLocation(cfg.ReportingTimezone)
	if err != nil {
		log.Printf("Invalid REPORTING_TIMEZONE %q, falling back to UTC: %v", cfg.ReportingTimezone, err)
		loc = time.UTC
	}

	// Initialize services
	catalogService := catalog.NewCatalogService(db)
	performanceService := performance.NewPerformanceService(db)
	dashboardService := dashboard.NewDashboardService(catalogService, performanceService, redisClient, cfg.DashboardCacheTTL)
	ingestService := ingest.NewIngestionService(catalogService, performanceService, feed, dashboardService, loc)

	// Initialize handlers
	districtHandler := handler.NewDistrictHandler(catalogService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	ingestHandler := handler.NewIngestHandler(ingestService)

	// Start the scheduled ingestion in a goroutine
	go ingestService.RunScheduled(cfg.IngestInterval)

	// Set up Gin router
	router := gin.Default()
	router.Use(handler.MetricsMiddleware())

	corsConfig := cors.Config{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        86400, // 24 hours
	}
	router.Use(cors.New(corsConfig))

	// Public routes
	router.GET("/api/districts", districtHandler.GetDistricts)
	router.GET("/api/districts/nearest", districtHandler.FindNearest)
	router.GET("/api/districts/:id", districtHandler.GetDistrict)
	router.GET("/api/districts/:id/dashboard", dashboardHandler.GetDashboard)
	router.GET("/api/districts/:id/performance", dashboardHandler.GetPerformance)
	router.POST("/api/ingest/run", ingestHandler.RunIngestion)

	// Operational endpoints
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db_status": "connection_error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db_status": "connected"})
	})

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
