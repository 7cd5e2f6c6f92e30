package model

// District represents one administrative reporting unit. Districts are
// reference data: rows are created by the seeding migration and never
// mutated through the public API.
type District struct {
	ID        int64    `json:"id" db:"id"`
	Name      string   `json:"name" db:"name"`
	NameHindi string   `json:"name_hindi" db:"name_hindi"`
	Code      string   `json:"code" db:"code"`
	Latitude  *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude *float64 `json:"longitude,omitempty" db:"longitude"`
}

// HasCoordinates reports whether the district can participate in
// nearest-district resolution.
func (d District) HasCoordinates() bool {
	return d.Latitude != nil && d.Longitude != nil
}

// DistrictListResponse represents the response for district listing
type DistrictListResponse struct {
	Districts []District `json:"districts"`
	Total     int        `json:"total"`
}

// NearestDistrictResponse represents the response for a nearest-district lookup
type NearestDistrictResponse struct {
	District District `json:"district"`
	Message  string   `json:"message"`
}
