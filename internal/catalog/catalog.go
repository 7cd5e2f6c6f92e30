package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	cache "github.com/patrickmn/go-cache"

	"mgnrega-dashboard-go/pkg/model"
)

const (
	snapshotKey = "districts:all"
	snapshotTTL = 5 * time.Minute
)

// CatalogService answers district listing, point-lookup and
// nearest-district queries. The full district set is small and read-mostly,
// so all list-shaped reads are served from an in-process snapshot cache.
type CatalogService struct {
	db       *sqlx.DB
	snapshot *cache.Cache
}

// NewCatalogService creates a new catalog service
func NewCatalogService(db *sqlx.DB) *CatalogService {
	return &CatalogService{
		db:       db,
		snapshot: cache.New(snapshotTTL, 2*snapshotTTL),
	}
}

// ListDistricts returns all districts ordered by name ascending. The result
// is a shared read-only snapshot: callers must not mutate it.
func (s *CatalogService) ListDistricts(ctx context.Context) ([]model.District, error) {
	if v, ok := s.snapshot.Get(snapshotKey); ok {
		return v.([]model.District), nil
	}

	var districts []model.District
	err := s.db.SelectContext(ctx, &districts, `
        SELECT id, name, name_hindi, code, latitude, longitude
        FROM districts
        ORDER BY name ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("%w: listing districts: %v", model.ErrStoreUnavailable, err)
	}

	s.snapshot.Set(snapshotKey, districts, cache.DefaultExpiration)
	return districts, nil
}

// SearchDistricts filters the catalog by a case-insensitive substring match
// over name, Hindi name and code. An empty query returns the full list.
func (s *CatalogService) SearchDistricts(ctx context.Context, query string) ([]model.District, error) {
	districts, err := s.ListDistricts(ctx)
	if err != nil {
		return nil, err
	}
	return filterDistricts(districts, query), nil
}

// GetDistrict returns one district by id.
func (s *CatalogService) GetDistrict(ctx context.Context, id int64) (model.District, error) {
	var district model.District
	err := s.db.GetContext(ctx, &district, `
        SELECT id, name, name_hindi, code, latitude, longitude
        FROM districts
        WHERE id = $1
    `, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.District{}, model.ErrDistrictNotFound
	}
	if err != nil {
		return model.District{}, fmt.Errorf("%w: loading district %d: %v", model.ErrStoreUnavailable, id, err)
	}
	return district, nil
}

// FindNearest maps a raw coordinate to the closest coordinate-bearing
// district. Pure given the current catalog snapshot, so concurrent callers
// always agree for the same input.
func (s *CatalogService) FindNearest(ctx context.Context, lat, lon float64) (model.District, error) {
	districts, err := s.ListDistricts(ctx)
	if err != nil {
		return model.District{}, err
	}
	return nearestDistrict(districts, lat, lon)
}

// nearestDistrict minimizes planar Euclidean distance in raw degree space.
// This is a documented approximation, not a great-circle distance: it is
// adequate at district granularity but biased at high latitudes. Ties break
// to the first district in catalog order.
func nearestDistrict(districts []model.District, lat, lon float64) (model.District, error) {
	var nearest model.District
	best := -1.0
	for _, d := range districts {
		if !d.HasCoordinates() {
			continue
		}
		dLat := lat - *d.Latitude
		dLon := lon - *d.Longitude
		// Squared distance; the ordering is the same and avoids the sqrt.
		dist := dLat*dLat + dLon*dLon
		if best < 0 || dist < best {
			best = dist
			nearest = d
		}
	}
	if best < 0 {
		return model.District{}, model.ErrNoCandidates
	}
	return nearest, nil
}

// filterDistricts is a pure function of (query, set), recomputed per call.
func filterDistricts(districts []model.District, query string) []model.District {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return districts
	}
	filtered := make([]model.District, 0, len(districts))
	for _, d := range districts {
		if strings.Contains(strings.ToLower(d.Name), query) ||
			strings.Contains(d.NameHindi, query) ||
			strings.Contains(strings.ToLower(d.Code), query) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}
