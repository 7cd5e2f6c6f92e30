package ingest

import (
	"errors"
	"fmt"

	"mgnrega-dashboard-go/pkg/model"
)

// Validation policy: a payload that claims more women beneficiaries than
// total beneficiaries, or any negative figure, is rejected for that district
// and counted as a per-district failure. The completion percentage is NOT
// clamped to 100 — the live feed legitimately exceeds it when arrears are
// cleared — but negatives are rejected.
var errInvalidPayload = errors.New("invalid feed payload")

func validatePayload(p model.MonthlyPerformance) error {
	if p.WomenBeneficiaries > p.TotalBeneficiaries {
		return fmt.Errorf("%w: women beneficiaries %d exceed total %d",
			errInvalidPayload, p.WomenBeneficiaries, p.TotalBeneficiaries)
	}
	if p.TotalBeneficiaries < 0 || p.PersonDaysGenerated < 0 ||
		p.TotalWorksCompleted < 0 || p.TotalWorksOngoing < 0 ||
		p.WomenBeneficiaries < 0 || p.SCBeneficiaries < 0 || p.STBeneficiaries < 0 {
		return fmt.Errorf("%w: negative count field", errInvalidPayload)
	}
	if p.AverageWagePerDay < 0 || p.TotalWageOutlay < 0 || p.PaymentsReleased < 0 {
		return fmt.Errorf("%w: negative monetary field", errInvalidPayload)
	}
	if p.PaymentCompletionPercentage < 0 {
		return fmt.Errorf("%w: negative completion percentage", errInvalidPayload)
	}
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("%w: month %d out of range", errInvalidPayload, p.Month)
	}
	return nil
}
