package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"rental-ledger/internal/domain"
	"rental-ledger/internal/pricing"
)

// PricingUseCase orchestrates the batch: read the document, resolve every
// reference, then price each rental or modification.
type PricingUseCase struct {
	repo   BatchRepository
	engine *pricing.Engine
	logger *slog.Logger
}

// NewPricingUseCase creates a new instance of the usecase. A nil logger uses slog.Default().
func NewPricingUseCase(repo BatchRepository, engine *pricing.Engine, logger *slog.Logger) *PricingUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &PricingUseCase{repo: repo, engine: engine, logger: logger.With("component", "usecase")}
}

// Price builds the report for mode from the document at inputPath.
// The first invalid record or dangling reference aborts the whole batch.
func (uc *PricingUseCase) Price(ctx context.Context, inputPath string, mode domain.ReportMode) (*domain.Report, error) {
	// Step 1: Data Ingestion
	batch, err := uc.repo.GetBatch(ctx, inputPath)
	if err != nil {
		return nil, fmt.Errorf("could not get batch: %w", err)
	}
	uc.logger.Debug("batch loaded",
		"cars", len(batch.Cars),
		"rentals", len(batch.Rentals),
		"modifications", len(batch.Modifications))

	// Step 2: Resolve references. Every rental must exist before any
	// modification is looked at.
	rentals, err := materializeRentals(batch)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 3: Pricing
	report := &domain.Report{Mode: mode}
	switch mode {
	case domain.ModeModifications:
		report.RentalModifications, err = uc.modificationDeltas(rentals, batch.Modifications)
		if err != nil {
			return nil, err
		}
	case domain.ModePrice, domain.ModeCommission, domain.ModeOptions, domain.ModeActions:
		report.Rentals = uc.rentalReports(rentals.ordered, mode)
	default:
		return nil, &domain.ValidationError{Field: "mode", Value: mode, Reason: "unsupported report mode"}
	}

	uc.logger.Info("batch priced",
		"mode", mode,
		"rentals", len(report.Rentals),
		"modifications", len(report.RentalModifications))
	return report, nil
}

func (uc *PricingUseCase) rentalReports(rentals []domain.Rental, mode domain.ReportMode) []domain.RentalReport {
	reports := make([]domain.RentalReport, 0, len(rentals))
	for _, r := range rentals {
		q := uc.engine.Quote(r)
		uc.logger.Debug("rental quoted", "rental_id", r.ID, "duration", q.Duration, "price", q.Price)

		entry := domain.RentalReport{ID: r.ID}
		switch mode {
		case domain.ModePrice:
			entry.Price = &q.Price
		case domain.ModeCommission:
			entry.Price = &q.Price
			entry.Commission = &q.Commission
		case domain.ModeOptions:
			entry.Price = &q.Price
			entry.Options = &domain.Options{DeductibleReduction: q.DeductibleReduction}
			entry.Commission = &q.Commission
		case domain.ModeActions:
			entry.Actions = pricing.Ledger(q)
		}
		reports = append(reports, entry)
	}
	return reports
}

func (uc *PricingUseCase) modificationDeltas(rentals *rentalIndex, modifications []domain.RentalModification) ([]domain.ModificationDelta, error) {
	deltas := make([]domain.ModificationDelta, 0, len(modifications))
	for i, m := range modifications {
		original, ok := rentals.byID[m.RentalID]
		if !ok {
			return nil, &domain.LookupError{Kind: "rental", ID: m.RentalID, Ref: fmt.Sprintf("rental_modifications[%d]", i)}
		}
		delta := uc.engine.ModificationDelta(original, m)
		uc.logger.Debug("modification priced", "modification_id", m.ID, "rental_id", m.RentalID)
		deltas = append(deltas, delta)
	}
	return deltas, nil
}

type rentalIndex struct {
	ordered []domain.Rental
	byID    map[int]domain.Rental
}

// materializeRentals resolves each rental's car. Duplicate ids are rejected
// rather than letting a later record silently replace an earlier one.
func materializeRentals(batch *domain.Batch) (*rentalIndex, error) {
	cars := make(map[int]domain.Car, len(batch.Cars))
	for i, car := range batch.Cars {
		if _, dup := cars[car.ID]; dup {
			return nil, &domain.ValidationError{Field: fmt.Sprintf("cars[%d].id", i), Value: car.ID, Reason: "duplicate car id"}
		}
		cars[car.ID] = car
	}

	idx := &rentalIndex{
		ordered: make([]domain.Rental, 0, len(batch.Rentals)),
		byID:    make(map[int]domain.Rental, len(batch.Rentals)),
	}
	for i, in := range batch.Rentals {
		ref := fmt.Sprintf("rentals[%d]", i)
		if _, dup := idx.byID[in.ID]; dup {
			return nil, &domain.ValidationError{Field: ref + ".id", Value: in.ID, Reason: "duplicate rental id"}
		}
		car, ok := cars[in.CarID]
		if !ok {
			return nil, &domain.LookupError{Kind: "car", ID: in.CarID, Ref: ref}
		}
		rental, err := domain.NewRental(in.ID, car, in.StartDate, in.EndDate, in.Distance, in.DeductibleReduction)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ref, err)
		}
		idx.ordered = append(idx.ordered, rental)
		idx.byID[rental.ID] = rental
	}
	return idx, nil
}
