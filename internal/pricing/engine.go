// Package pricing holds the rental rules engine: duration, degressive price,
// commission split, deductible reduction, the per-actor ledger and the deltas
// produced by modifying a rental.
//
// Every function here is pure. An Engine can be shared freely between goroutines.
package pricing

import (
	"fmt"

	"rental-ledger/internal/domain"
)

// Engine prices rentals with a fixed set of Rules.
type Engine struct {
	rules Rules
}

// NewEngine validates rules and returns an Engine that owns a private copy of them.
func NewEngine(rules Rules) (*Engine, error) {
	rules = rules.clone()
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pricing rules: %w", err)
	}
	return &Engine{rules: rules}, nil
}

// Rules returns a copy of the engine's rules.
func (e *Engine) Rules() Rules {
	return e.rules.clone()
}

// Quote computes every figure derived from r.
func (e *Engine) Quote(r domain.Rental) domain.Quote {
	duration := Duration(r.StartDate, r.EndDate)
	price := e.rules.Price(duration, r.Car.PricePerDay, r.Car.PricePerKm, r.Distance)
	return domain.Quote{
		RentalID:            r.ID,
		Duration:            duration,
		Price:               price,
		Commission:          e.rules.Commission(price, duration),
		DeductibleReduction: e.rules.DeductibleReduction(duration, r.DeductibleReduction),
	}
}

// Actions returns the ledger of r.
func (e *Engine) Actions(r domain.Rental) []domain.Action {
	return Ledger(e.Quote(r))
}

// ModificationDelta applies m to original and reports how much money moves
// for each actor as a result.
func (e *Engine) ModificationDelta(original domain.Rental, m domain.RentalModification) domain.ModificationDelta {
	modified := m.Apply(original)
	return domain.ModificationDelta{
		ID:       m.ID,
		RentalID: original.ID,
		Actions:  Delta(e.Actions(original), e.Actions(modified)),
	}
}
