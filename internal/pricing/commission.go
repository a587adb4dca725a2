package pricing

import "rental-ledger/internal/domain"

// Commission splits the commission share of price. Half goes to insurance,
// assistance gets a flat daily fee, and the platform keeps what remains
// (never below zero). Each fee is rounded on its own; the small drift this
// leaves against the exact commission is accepted.
func (r Rules) Commission(price, duration int) domain.Commission {
	total := float64(price) * r.CommissionRate
	insurance := r.Rounding.Round(total / 2)
	assistance := duration * r.AssistanceDailyFee
	platform := r.Rounding.Round(max(total-float64(insurance+assistance), 0))
	return domain.Commission{
		InsuranceFee:  insurance,
		AssistanceFee: assistance,
		PlatformFee:   platform,
	}
}

// DeductibleReduction is the optional daily fee a driver pays to lower their deductible.
func (r Rules) DeductibleReduction(duration int, opted bool) int {
	if !opted {
		return 0
	}
	return duration * r.DeductibleDailyFee
}
