package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"rental-ledger/internal/domain"
)

// StdioPath selects stdin for input and stdout for output.
const StdioPath = "-"

// Record fields are pointers so a missing key can be told apart from a zero.

type carRecord struct {
	ID          *int `json:"id"`
	PricePerDay *int `json:"price_per_day"`
	PricePerKm  *int `json:"price_per_km"`
}

type rentalRecord struct {
	ID                  *int    `json:"id"`
	CarID               *int    `json:"car_id"`
	StartDate           *string `json:"start_date"`
	EndDate             *string `json:"end_date"`
	Distance            *int    `json:"distance"`
	DeductibleReduction *bool   `json:"deductible_reduction"`
}

type modificationRecord struct {
	ID        *int    `json:"id"`
	RentalID  *int    `json:"rental_id"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Distance  *int    `json:"distance"`
}

type inputDocument struct {
	Cars                []carRecord          `json:"cars"`
	Rentals             []rentalRecord       `json:"rentals"`
	RentalModifications []modificationRecord `json:"rental_modifications"`
}

// JSONBatchRepository implements the BatchRepository interface for JSON documents.
type JSONBatchRepository struct {
	stdin io.Reader
}

// NewJSONBatchRepository creates a new repository instance reading "-" from os.Stdin.
func NewJSONBatchRepository() *JSONBatchRepository {
	return &JSONBatchRepository{stdin: os.Stdin}
}

// GetBatch reads and parses the input document at path.
func (r *JSONBatchRepository) GetBatch(ctx context.Context, path string) (*domain.Batch, error) {
	if path == StdioPath {
		return r.ReadBatch(ctx, r.stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer file.Close()

	batch, err := r.ReadBatch(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return batch, nil
}

// ReadBatch decodes a whole input document from src. Dates are parsed here, so
// a malformed one fails the batch before any pricing happens.
func (r *JSONBatchRepository) ReadBatch(ctx context.Context, src io.Reader) (*domain.Batch, error) {
	var doc inputDocument
	dec := json.NewDecoder(src)
	if err := dec.Decode(&doc); err != nil {
		return nil, &domain.ValidationError{Field: "document", Value: "", Reason: "malformed JSON", Err: err}
	}
	if err := dec.Decode(&json.RawMessage{}); err != io.EOF {
		return nil, &domain.ValidationError{Field: "document", Value: "", Reason: "unexpected data after the top-level object", Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	batch := &domain.Batch{
		Cars:          make([]domain.Car, 0, len(doc.Cars)),
		Rentals:       make([]domain.RentalInput, 0, len(doc.Rentals)),
		Modifications: make([]domain.RentalModification, 0, len(doc.RentalModifications)),
	}

	for i, rec := range doc.Cars {
		car, err := parseCar(fmt.Sprintf("cars[%d].", i), rec)
		if err != nil {
			return nil, err
		}
		batch.Cars = append(batch.Cars, car)
	}

	for i, rec := range doc.Rentals {
		rental, err := parseRental(fmt.Sprintf("rentals[%d].", i), rec)
		if err != nil {
			return nil, err
		}
		batch.Rentals = append(batch.Rentals, rental)
	}

	for i, rec := range doc.RentalModifications {
		m, err := parseModification(fmt.Sprintf("rental_modifications[%d].", i), rec)
		if err != nil {
			return nil, err
		}
		batch.Modifications = append(batch.Modifications, m)
	}

	return batch, nil
}

func parseCar(prefix string, rec carRecord) (domain.Car, error) {
	id, err := required(prefix+"id", rec.ID)
	if err != nil {
		return domain.Car{}, err
	}
	perDay, err := required(prefix+"price_per_day", rec.PricePerDay)
	if err != nil {
		return domain.Car{}, err
	}
	perKm, err := required(prefix+"price_per_km", rec.PricePerKm)
	if err != nil {
		return domain.Car{}, err
	}
	car, err := domain.NewCar(id, perDay, perKm)
	if err != nil {
		return domain.Car{}, withField(err, prefix)
	}
	return car, nil
}

func parseRental(prefix string, rec rentalRecord) (domain.RentalInput, error) {
	var in domain.RentalInput
	var err error
	if in.ID, err = required(prefix+"id", rec.ID); err != nil {
		return in, err
	}
	if in.CarID, err = required(prefix+"car_id", rec.CarID); err != nil {
		return in, err
	}
	start, err := required(prefix+"start_date", rec.StartDate)
	if err != nil {
		return in, err
	}
	if in.StartDate, err = domain.ParseDate(prefix+"start_date", start); err != nil {
		return in, err
	}
	end, err := required(prefix+"end_date", rec.EndDate)
	if err != nil {
		return in, err
	}
	if in.EndDate, err = domain.ParseDate(prefix+"end_date", end); err != nil {
		return in, err
	}
	if in.Distance, err = required(prefix+"distance", rec.Distance); err != nil {
		return in, err
	}
	if in.Distance < 0 {
		return in, &domain.ValidationError{Field: prefix + "distance", Value: in.Distance, Reason: "must not be negative"}
	}
	if in.DeductibleReduction, err = required(prefix+"deductible_reduction", rec.DeductibleReduction); err != nil {
		return in, err
	}
	return in, nil
}

// parseModification requires the ids. Every override key is optional.
func parseModification(prefix string, rec modificationRecord) (domain.RentalModification, error) {
	var m domain.RentalModification
	var err error
	if m.ID, err = required(prefix+"id", rec.ID); err != nil {
		return m, err
	}
	if m.RentalID, err = required(prefix+"rental_id", rec.RentalID); err != nil {
		return m, err
	}
	if m.StartDate, err = parseOptionalDate(prefix+"start_date", rec.StartDate); err != nil {
		return m, err
	}
	if m.EndDate, err = parseOptionalDate(prefix+"end_date", rec.EndDate); err != nil {
		return m, err
	}
	m.Distance = rec.Distance
	if m.Distance != nil && *m.Distance < 0 {
		return m, &domain.ValidationError{Field: prefix + "distance", Value: *m.Distance, Reason: "must not be negative"}
	}
	return m, nil
}

func required[T any](field string, v *T) (T, error) {
	if v == nil {
		var zero T
		return zero, &domain.ValidationError{Field: field, Value: nil, Reason: "is required"}
	}
	return *v, nil
}

// parseOptionalDate treats a missing or empty date as "no override".
func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func withField(err error, prefix string) error {
	if verr, ok := err.(*domain.ValidationError); ok {
		verr.Field = prefix + verr.Field
		return verr
	}
	return err
}
