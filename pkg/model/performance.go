package model

import (
	"time"
)

// MonthlyPerformance is one district's MGNREGA metrics for one calendar
// month. At most one row exists per (district_id, month, year); the
// ingestion job replaces the whole row on re-ingest rather than merging
// fields.
type MonthlyPerformance struct {
	ID                          int64     `json:"id" db:"id"`
	DistrictID                  int64     `json:"district_id" db:"district_id"`
	Month                       int       `json:"month" db:"month"`
	Year                        int       `json:"year" db:"year"`
	TotalBeneficiaries          int64     `json:"total_beneficiaries" db:"total_beneficiaries"`
	PersonDaysGenerated         int64     `json:"person_days_generated" db:"person_days_generated"`
	AverageWagePerDay           float64   `json:"average_wage_per_day" db:"average_wage_per_day"`
	TotalWageOutlay             float64   `json:"total_wage_outlay" db:"total_wage_outlay"`
	PaymentsReleased            float64   `json:"payments_released" db:"payments_released"`
	PaymentCompletionPercentage float64   `json:"payment_completion_percentage" db:"payment_completion_percentage"`
	TotalWorksCompleted         int64     `json:"total_works_completed" db:"total_works_completed"`
	TotalWorksOngoing           int64     `json:"total_works_ongoing" db:"total_works_ongoing"`
	WomenBeneficiaries          int64     `json:"women_beneficiaries" db:"women_beneficiaries"`
	SCBeneficiaries             int64     `json:"sc_beneficiaries" db:"sc_beneficiaries"`
	STBeneficiaries             int64     `json:"st_beneficiaries" db:"st_beneficiaries"`
	DataSource                  string    `json:"data_source" db:"data_source"`
	FetchedAt                   time.Time `json:"fetched_at" db:"fetched_at"`
}

// PerformanceListResponse represents the response for recent performance rows
type PerformanceListResponse struct {
	District District             `json:"district"`
	Rows     []MonthlyPerformance `json:"rows"`
	Total    int                  `json:"total"`
}
