package pricing

// Price applies the degressive tier table to the daily price and adds the
// distance charge. Tiers are walked from the longest threshold down: each one
// takes the days beyond its threshold that no longer tier claimed. Whatever
// is left under the lowest threshold bills at full price.
//
// The sum is built in float64 in a fixed order and rounded once, so the result
// for a given input never depends on the platform.
func (r Rules) Price(duration, pricePerDay, pricePerKm, distance int) int {
	remaining := duration
	factor := 0.0
	for _, tier := range r.Tiers {
		days := max(remaining-tier.Threshold, 0)
		factor += tier.Rate * float64(days)
		remaining -= days
	}
	factor += float64(remaining)

	perDay := factor * float64(pricePerDay)
	perKm := distance * pricePerKm
	return r.Rounding.Round(perDay + float64(perKm))
}
