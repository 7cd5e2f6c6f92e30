package dashboard

import "mgnrega-dashboard-go/pkg/model"

// Status thresholds over the payment completion percentage. Bands are
// closed-open with the lower bound inclusive: 80.0 is Excellent, 79.9 Good.
const (
	ExcellentThreshold = 80.0
	GoodThreshold      = 60.0
	AverageThreshold   = 40.0
)

// StatusFor buckets a completion percentage. Pure function; values above
// 100 still land in Excellent since the feed is not clamped.
func StatusFor(completionPercent float64) model.PerformanceStatus {
	switch {
	case completionPercent >= ExcellentThreshold:
		return model.PerformanceStatus{Level: "excellent", Label: "Excellent", LabelHindi: "बेहतरीन"}
	case completionPercent >= GoodThreshold:
		return model.PerformanceStatus{Level: "good", Label: "Good", LabelHindi: "अच्छा"}
	case completionPercent >= AverageThreshold:
		return model.PerformanceStatus{Level: "average", Label: "Average", LabelHindi: "औसत"}
	default:
		return model.PerformanceStatus{Level: "needs_improvement", Label: "Needs Improvement", LabelHindi: "सुधार चाहिए"}
	}
}

// WomenShare computes women beneficiaries as a percentage of the total.
// Returns nil when the total is zero: the share is undefined, not 0 or NaN.
func WomenShare(women, total int64) *float64 {
	if total == 0 {
		return nil
	}
	share := float64(women) / float64(total) * 100
	return &share
}
