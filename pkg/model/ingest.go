package model

import "time"

// IngestFailure records one district skipped during an ingestion run.
type IngestFailure struct {
	DistrictCode string `json:"district_code"`
	DistrictName string `json:"district_name"`
	Reason       string `json:"reason"`
}

// IngestReport summarizes one ingestion run. Partial success is reported
// here, never swallowed: Attempted counts every district in the catalog,
// Succeeded only those whose row was written.
type IngestReport struct {
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Attempted  int             `json:"attempted"`
	Succeeded  int             `json:"succeeded"`
	Failed     int             `json:"failed"`
	Failures   []IngestFailure `json:"failures,omitempty"`
	DataSource string          `json:"data_source"`
	DurationMs int64           `json:"duration_ms"`
	FinishedAt time.Time       `json:"finished_at"`
}
