package pricing

import (
	"fmt"
)

// Tier is a degressive rate: every day beyond Threshold bills at Rate times
// the car's daily price, unless a longer tier already claimed it.
type Tier struct {
	Threshold int
	Rate      float64
}

// Rules is the immutable pricing configuration.
type Rules struct {
	// Tiers are ordered from the longest threshold down.
	Tiers              []Tier
	CommissionRate     float64
	AssistanceDailyFee int
	DeductibleDailyFee int
	Rounding           RoundingMode
}

// DefaultRules is the current rule set.
func DefaultRules() Rules {
	return Rules{
		Tiers: []Tier{
			{Threshold: 10, Rate: 0.5},
			{Threshold: 4, Rate: 0.7},
			{Threshold: 1, Rate: 0.9},
		},
		CommissionRate:     0.3,
		AssistanceDailyFee: 100,
		DeductibleDailyFee: 400,
		Rounding:           RoundHalfEven,
	}
}

// Validate checks that the tier table is well formed and that every rate and fee is in range.
func (r Rules) Validate() error {
	for i, tier := range r.Tiers {
		if tier.Threshold < 1 {
			return fmt.Errorf("tier %d: threshold %d must be at least 1", i, tier.Threshold)
		}
		if tier.Rate < 0 || tier.Rate > 1 {
			return fmt.Errorf("tier %d: rate %v must be within [0, 1]", i, tier.Rate)
		}
		if i > 0 && tier.Threshold >= r.Tiers[i-1].Threshold {
			return fmt.Errorf("tier %d: threshold %d must be below %d", i, tier.Threshold, r.Tiers[i-1].Threshold)
		}
	}
	if r.CommissionRate < 0 || r.CommissionRate > 1 {
		return fmt.Errorf("commission rate %v must be within [0, 1]", r.CommissionRate)
	}
	if r.AssistanceDailyFee < 0 {
		return fmt.Errorf("assistance daily fee %d must not be negative", r.AssistanceDailyFee)
	}
	if r.DeductibleDailyFee < 0 {
		return fmt.Errorf("deductible daily fee %d must not be negative", r.DeductibleDailyFee)
	}
	if _, err := ParseRoundingMode(string(r.Rounding)); err != nil {
		return err
	}
	return nil
}

// clone copies the tier table so callers cannot mutate an engine's rules.
func (r Rules) clone() Rules {
	c := r
	c.Tiers = append([]Tier(nil), r.Tiers...)
	if c.Rounding == "" {
		c.Rounding = RoundHalfEven
	}
	return c
}
