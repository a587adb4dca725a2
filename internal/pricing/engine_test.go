package pricing_test

import (
	"testing"
	"time"

	"rental-ledger/internal/domain"
	"rental-ledger/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceCar = domain.Car{ID: 1, PricePerDay: 2000, PricePerKm: 10}

func referenceRentals() []domain.Rental {
	return []domain.Rental{
		{ID: 1, Car: referenceCar, StartDate: date("2015-12-8"), EndDate: date("2015-12-8"), Distance: 100, DeductibleReduction: true},
		{ID: 2, Car: referenceCar, StartDate: date("2015-03-31"), EndDate: date("2015-04-01"), Distance: 300, DeductibleReduction: false},
		{ID: 3, Car: referenceCar, StartDate: date("2015-07-3"), EndDate: date("2015-07-14"), Distance: 1000, DeductibleReduction: true},
	}
}

func ptr[T any](v T) *T {
	return &v
}

func ledger(driver, owner, insurance, assistance, platform int) []domain.Action {
	return []domain.Action{
		{Who: domain.ActorDriver, Type: domain.ActionTypeDebit, Amount: driver},
		{Who: domain.ActorOwner, Type: domain.ActionTypeCredit, Amount: owner},
		{Who: domain.ActorInsurance, Type: domain.ActionTypeCredit, Amount: insurance},
		{Who: domain.ActorAssistance, Type: domain.ActionTypeCredit, Amount: assistance},
		{Who: domain.ActorPlatform, Type: domain.ActionTypeCredit, Amount: platform},
	}
}

func defaultEngine(tb testing.TB) *pricing.Engine {
	tb.Helper()
	engine, err := pricing.NewEngine(pricing.DefaultRules())
	require.NoError(tb, err)
	return engine
}

// netFlow is credits minus debits.
func netFlow(actions []domain.Action) int {
	net := 0
	for _, a := range actions {
		if a.Type == domain.ActionTypeDebit {
			net -= a.Amount
		} else {
			net += a.Amount
		}
	}
	return net
}

func TestEngine_Quote(t *testing.T) {
	engine := defaultEngine(t)
	rentals := referenceRentals()

	want := []domain.Quote{
		{RentalID: 1, Duration: 1, Price: 3000, Commission: domain.Commission{InsuranceFee: 450, AssistanceFee: 100, PlatformFee: 350}, DeductibleReduction: 400},
		{RentalID: 2, Duration: 2, Price: 6800, Commission: domain.Commission{InsuranceFee: 1020, AssistanceFee: 200, PlatformFee: 820}, DeductibleReduction: 0},
		{RentalID: 3, Duration: 12, Price: 27800, Commission: domain.Commission{InsuranceFee: 4170, AssistanceFee: 1200, PlatformFee: 2970}, DeductibleReduction: 4800},
	}
	for i, r := range rentals {
		assert.Equal(t, want[i], engine.Quote(r))
	}
}

func TestEngine_Actions(t *testing.T) {
	engine := defaultEngine(t)
	rentals := referenceRentals()

	tests := []struct {
		name   string
		rental domain.Rental
		want   []domain.Action
	}{
		{name: "one day with deductible reduction", rental: rentals[0], want: ledger(3400, 2100, 450, 100, 750)},
		{name: "two days without option", rental: rentals[1], want: ledger(6800, 4760, 1020, 200, 820)},
		{name: "twelve days with deductible reduction", rental: rentals[2], want: ledger(32600, 19460, 4170, 1200, 7770)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Actions(tt.rental)
			assert.Equal(t, tt.want, got)
			assert.Zero(t, netFlow(got))
		})
	}
}

func TestEngine_Actions_NetZero(t *testing.T) {
	engine := defaultEngine(t)
	start := date("2021-06-01")
	for duration := 0; duration < 40; duration++ {
		for _, distance := range []int{0, 1, 99, 1234} {
			for _, opted := range []bool{false, true} {
				r := domain.Rental{
					ID:                  duration,
					Car:                 domain.Car{PricePerDay: 1337, PricePerKm: 7},
					StartDate:           start,
					EndDate:             start.AddDate(0, 0, duration),
					Distance:            distance,
					DeductibleReduction: opted,
				}
				actions := engine.Actions(r)
				require.Len(t, actions, len(domain.LedgerActors))
				for i, who := range domain.LedgerActors {
					assert.Equal(t, who, actions[i].Who)
				}
				assert.Zero(t, netFlow(actions), "rental %+v", r)
			}
		}
	}
}

func TestEngine_ModificationDelta(t *testing.T) {
	engine := defaultEngine(t)
	rentals := referenceRentals()

	tests := []struct {
		name         string
		original     domain.Rental
		modification domain.RentalModification
		want         []domain.Action
	}{
		{
			name:         "longer and farther",
			original:     rentals[0],
			modification: domain.RentalModification{ID: 1, RentalID: 1, EndDate: ptr(date("2015-12-10")), Distance: ptr(150)},
			want:         ledger(4900, 2870, 615, 200, 1215),
		},
		{
			name:         "one day shorter flips every direction",
			original:     rentals[2],
			modification: domain.RentalModification{ID: 2, RentalID: 3, StartDate: ptr(date("2015-07-4"))},
			want: []domain.Action{
				{Who: domain.ActorDriver, Type: domain.ActionTypeCredit, Amount: 1400},
				{Who: domain.ActorOwner, Type: domain.ActionTypeDebit, Amount: 700},
				{Who: domain.ActorInsurance, Type: domain.ActionTypeDebit, Amount: 150},
				{Who: domain.ActorAssistance, Type: domain.ActionTypeDebit, Amount: 100},
				{Who: domain.ActorPlatform, Type: domain.ActionTypeDebit, Amount: 450},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.ModificationDelta(tt.original, tt.modification)
			assert.Equal(t, tt.modification.ID, got.ID)
			assert.Equal(t, tt.original.ID, got.RentalID)
			assert.Equal(t, tt.want, got.Actions)
		})
	}
}

func TestEngine_ModificationDelta_NoOverrides(t *testing.T) {
	engine := defaultEngine(t)
	for _, r := range referenceRentals() {
		got := engine.ModificationDelta(r, domain.RentalModification{ID: 9, RentalID: r.ID, Distance: ptr(0), StartDate: &time.Time{}})
		require.Len(t, got.Actions, 5)
		for i, a := range got.Actions {
			assert.Zero(t, a.Amount)
			// zero deltas keep the modified action's direction
			assert.Equal(t, engine.Actions(r)[i].Type, a.Type)
		}
	}
}

func TestEngine_ModificationDelta_ExplicitSameValues(t *testing.T) {
	engine := defaultEngine(t)
	for _, r := range referenceRentals() {
		m := domain.RentalModification{
			ID:        1,
			RentalID:  r.ID,
			StartDate: ptr(r.StartDate),
			EndDate:   ptr(r.EndDate),
			Distance:  ptr(r.Distance),
		}
		modified := m.Apply(r)
		assert.Equal(t, engine.Quote(r), engine.Quote(modified))
		assert.Equal(t, engine.Actions(r), engine.Actions(modified))
	}
}

func TestRentalModification_ApplyDoesNotMutate(t *testing.T) {
	original := referenceRentals()[0]
	snapshot := original

	m := domain.RentalModification{ID: 1, RentalID: 1, StartDate: ptr(date("2015-12-01")), EndDate: ptr(date("2015-12-20")), Distance: ptr(999)}
	modified := m.Apply(original)

	assert.Equal(t, snapshot, original)
	assert.Equal(t, date("2015-12-01"), modified.StartDate)
	assert.Equal(t, date("2015-12-20"), modified.EndDate)
	assert.Equal(t, 999, modified.Distance)
	assert.Equal(t, original.Car, modified.Car)
	assert.Equal(t, original.DeductibleReduction, modified.DeductibleReduction)
}

func TestNewEngine_CopiesRules(t *testing.T) {
	rules := pricing.DefaultRules()
	engine, err := pricing.NewEngine(rules)
	require.NoError(t, err)

	rules.Tiers[0].Rate = 1
	assert.Equal(t, 0.5, engine.Rules().Tiers[0].Rate)

	got := engine.Rules()
	got.Tiers[0].Rate = 1
	assert.Equal(t, 0.5, engine.Rules().Tiers[0].Rate)
}

func BenchmarkEngine_ModificationDelta(b *testing.B) {
	engine := defaultEngine(b)
	original := referenceRentals()[2]
	m := domain.RentalModification{ID: 2, RentalID: 3, StartDate: ptr(date("2015-07-04"))}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.ModificationDelta(original, m)
	}
}
