package model

// PerformanceStatus is the qualitative bucket derived from the payment
// completion percentage.
type PerformanceStatus struct {
	Level      string `json:"level"`       // excellent | good | average | needs_improvement
	Label      string `json:"label"`       // English label
	LabelHindi string `json:"label_hindi"` // Hindi label
}

// FormattedMetrics holds display-ready strings for the current period,
// formatted with Indian-system digit grouping.
type FormattedMetrics struct {
	TotalBeneficiaries string `json:"total_beneficiaries"`
	PersonDays         string `json:"person_days"`
	TotalWageOutlay    string `json:"total_wage_outlay"`
	PaymentsReleased   string `json:"payments_released"`
	AverageWagePerDay  string `json:"average_wage_per_day"`
	WorksCompleted     string `json:"works_completed"`
	WorksOngoing       string `json:"works_ongoing"`
	WomenBeneficiaries string `json:"women_beneficiaries"`
}

// TrendPoint is one month of the chart series, oldest first.
type TrendPoint struct {
	Label             string  `json:"label"`
	Month             int     `json:"month"`
	Year              int     `json:"year"`
	Beneficiaries     int64   `json:"beneficiaries"`
	PersonDays        int64   `json:"person_days"`
	CompletionPercent float64 `json:"completion_percent"`
}

// DashboardResponse is the aggregated payload for one district. HasData
// distinguishes a valid district with no performance rows from an unknown
// district id (which is an error, not a response).
type DashboardResponse struct {
	District     District            `json:"district"`
	HasData      bool                `json:"has_data"`
	PeriodLabel  string              `json:"period_label,omitempty"`
	Current      *MonthlyPerformance `json:"current,omitempty"`
	Status       *PerformanceStatus  `json:"status,omitempty"`
	WomenShare   *float64            `json:"women_share_percent,omitempty"`
	Formatted    *FormattedMetrics   `json:"formatted,omitempty"`
	Trend        []TrendPoint        `json:"trend,omitempty"`
	MonthsOnFile int                 `json:"months_on_file"`
}
