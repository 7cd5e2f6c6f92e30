package dashboard

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"mgnrega-dashboard-go/pkg/model"
)

// en-IN gives Indian-system digit grouping (1,50,000 / ₹62,50,00,000),
// matching how the figures are published.
var inPrinter = message.NewPrinter(language.MustParse("en-IN"))

// Bilingual month names for the period label, short English for chart ticks.
var (
	monthNames      = []string{"जनवरी/Jan", "फरवरी/Feb", "मार्च/Mar", "अप्रैल/Apr", "मई/May", "जून/Jun", "जुलाई/Jul", "अगस्त/Aug", "सितंबर/Sep", "अक्टूबर/Oct", "नवंबर/Nov", "दिसंबर/Dec"}
	monthNamesShort = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

func formatCount(n int64) string {
	return inPrinter.Sprintf("%d", n)
}

// formatCurrency rounds to whole rupees; paise are noise at outlay scale.
func formatCurrency(amount float64) string {
	return "₹" + inPrinter.Sprintf("%d", int64(math.Round(amount)))
}

// formatWage keeps paise: the daily wage is a small number where they matter.
func formatWage(amount float64) string {
	return "₹" + inPrinter.Sprintf("%.2f", amount)
}

func periodLabel(month, year int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d/%d", month, year)
	}
	return fmt.Sprintf("%s %d", monthNames[month-1], year)
}

func trendLabel(month, year int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d/%d", month, year)
	}
	return fmt.Sprintf("%s %d", monthNamesShort[month-1], year)
}

func formatMetrics(p model.MonthlyPerformance) *model.FormattedMetrics {
	return &model.FormattedMetrics{
		TotalBeneficiaries: formatCount(p.TotalBeneficiaries),
		PersonDays:         formatCount(p.PersonDaysGenerated),
		TotalWageOutlay:    formatCurrency(p.TotalWageOutlay),
		PaymentsReleased:   formatCurrency(p.PaymentsReleased),
		AverageWagePerDay:  formatWage(p.AverageWagePerDay),
		WorksCompleted:     formatCount(p.TotalWorksCompleted),
		WorksOngoing:       formatCount(p.TotalWorksOngoing),
		WomenBeneficiaries: formatCount(p.WomenBeneficiaries),
	}
}
