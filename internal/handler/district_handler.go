package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mgnrega-dashboard-go/internal/metrics"
	"mgnrega-dashboard-go/pkg/model"
)

// CatalogService is the slice of the catalog the district handler needs.
type CatalogService interface {
	SearchDistricts(ctx context.Context, query string) ([]model.District, error)
	GetDistrict(ctx context.Context, id int64) (model.District, error)
	FindNearest(ctx context.Context, lat, lon float64) (model.District, error)
}

// DistrictHandler handles district catalog HTTP requests
type DistrictHandler struct {
	catalog CatalogService
}

// NewDistrictHandler creates a new district handler
func NewDistrictHandler(catalog CatalogService) *DistrictHandler {
	return &DistrictHandler{catalog: catalog}
}

// GetDistricts handles GET /api/districts?q=
func (h *DistrictHandler) GetDistricts(c *gin.Context) {
	districts, err := h.catalog.SearchDistricts(c.Request.Context(), c.Query("q"))
	if err != nil {
		log.Printf("Error listing districts: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "जिला लोड करने में त्रुटि / Error loading districts"})
		return
	}

	c.JSON(http.StatusOK, model.DistrictListResponse{Districts: districts, Total: len(districts)})
}

// GetDistrict handles GET /api/districts/:id
func (h *DistrictHandler) GetDistrict(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "अमान्य जिला पहचान / Invalid district id"})
		return
	}

	district, err := h.catalog.GetDistrict(c.Request.Context(), id)
	if errors.Is(err, model.ErrDistrictNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "जिला नहीं मिला / District not found"})
		return
	}
	if err != nil {
		log.Printf("Error fetching district %d: %v", id, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "जिला लोड करने में त्रुटि / Error loading district"})
		return
	}

	c.JSON(http.StatusOK, district)
}

// FindNearest handles GET /api/districts/nearest?lat=&lon=
// The lookup honors the request context, so a client abandoning a slow
// geolocation flow cancels the work instead of blocking the search path.
func (h *DistrictHandler) FindNearest(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "अमान्य निर्देशांक / Invalid coordinates"})
		return
	}

	metrics.NearestLookupsTotal.Inc()

	district, err := h.catalog.FindNearest(c.Request.Context(), lat, lon)
	if errors.Is(err, model.ErrNoCandidates) {
		c.JSON(http.StatusNotFound, gin.H{"error": "कोई जिला स्थान डेटा उपलब्ध नहीं / No district location data available"})
		return
	}
	if err != nil {
		log.Printf("Error resolving nearest district: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "स्थान का पता लगाने में त्रुटि / Error detecting location"})
		return
	}

	c.JSON(http.StatusOK, model.NearestDistrictResponse{
		District: district,
		Message:  "आपका जिला: " + district.NameHindi + " / Your district: " + district.Name,
	})
}
