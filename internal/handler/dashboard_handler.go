package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mgnrega-dashboard-go/pkg/model"
)

// DashboardService is the slice of the aggregator the handler needs.
type DashboardService interface {
	BuildDashboard(ctx context.Context, districtID int64) (model.DashboardResponse, error)
	RecentPerformance(ctx context.Context, districtID int64, limit int) (model.PerformanceListResponse, error)
}

// DashboardHandler handles dashboard and performance HTTP requests
type DashboardHandler struct {
	dashboard DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetDashboard handles GET /api/districts/:id/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "अमान्य जिला पहचान / Invalid district id"})
		return
	}

	resp, err := h.dashboard.BuildDashboard(c.Request.Context(), id)
	if errors.Is(err, model.ErrDistrictNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "जिला नहीं मिला / District not found"})
		return
	}
	if err != nil {
		log.Printf("Error building dashboard for district %d: %v", id, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "प्रदर्शन डेटा लोड करने में त्रुटि / Error loading performance data"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPerformance handles GET /api/districts/:id/performance?limit=
func (h *DashboardHandler) GetPerformance(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "अमान्य जिला पहचान / Invalid district id"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "अमान्य सीमा / Invalid limit"})
			return
		}
	}

	resp, err := h.dashboard.RecentPerformance(c.Request.Context(), id, limit)
	if errors.Is(err, model.ErrDistrictNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "जिला नहीं मिला / District not found"})
		return
	}
	if err != nil {
		log.Printf("Error fetching performance for district %d: %v", id, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "प्रदर्शन डेटा लोड करने में त्रुटि / Error loading performance data"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
