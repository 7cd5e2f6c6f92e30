package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mgnrega-dashboard-go/pkg/model"
)

// IngestRunner triggers one ingestion run for the current period.
type IngestRunner interface {
	RunOnce(ctx context.Context) (model.IngestReport, error)
}

// IngestHandler handles manual ingestion triggers
type IngestHandler struct {
	ingest IngestRunner
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(ingest IngestRunner) *IngestHandler {
	return &IngestHandler{ingest: ingest}
}

// RunIngestion handles POST /api/ingest/run. Partial failure is a 200 with
// the failure counts in the report; only an aborted run is an error.
func (h *IngestHandler) RunIngestion(c *gin.Context) {
	report, err := h.ingest.RunOnce(c.Request.Context())
	if err != nil {
		log.Printf("Manual ingestion run failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "डेटा अद्यतन विफल रहा / Data refresh failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, report)
}
