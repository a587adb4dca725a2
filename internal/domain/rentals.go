package domain

import "time"

// Car is the priced vehicle. Prices are integer currency units (cents).
type Car struct {
	ID          int `json:"id"`
	PricePerDay int `json:"price_per_day"`
	PricePerKm  int `json:"price_per_km"`
}

// NewCar validates and builds a Car.
func NewCar(id, pricePerDay, pricePerKm int) (Car, error) {
	if pricePerDay < 0 {
		return Car{}, &ValidationError{Field: "price_per_day", Value: pricePerDay, Reason: "must not be negative"}
	}
	if pricePerKm < 0 {
		return Car{}, &ValidationError{Field: "price_per_km", Value: pricePerKm, Reason: "must not be negative"}
	}
	return Car{ID: id, PricePerDay: pricePerDay, PricePerKm: pricePerKm}, nil
}

// Rental is an immutable snapshot of a booking. The car is held by value, so
// copying a Rental never aliases another one.
type Rental struct {
	ID                  int
	Car                 Car
	StartDate           time.Time
	EndDate             time.Time
	Distance            int
	DeductibleReduction bool
}

// NewRental validates and builds a Rental. The end date may precede the start date.
func NewRental(id int, car Car, start, end time.Time, distance int, deductibleReduction bool) (Rental, error) {
	if distance < 0 {
		return Rental{}, &ValidationError{Field: "distance", Value: distance, Reason: "must not be negative"}
	}
	return Rental{
		ID:                  id,
		Car:                 car,
		StartDate:           start,
		EndDate:             end,
		Distance:            distance,
		DeductibleReduction: deductibleReduction,
	}, nil
}

// RentalInput is a rental record as read from the batch, before its car is resolved.
type RentalInput struct {
	ID                  int
	CarID               int
	StartDate           time.Time
	EndDate             time.Time
	Distance            int
	DeductibleReduction bool
}

// RentalModification carries optional overrides for an existing rental.
// A nil or zero override keeps the original value.
type RentalModification struct {
	ID        int
	RentalID  int
	StartDate *time.Time
	EndDate   *time.Time
	Distance  *int
}

// Apply returns the modified snapshot of r. r itself is left untouched.
func (m RentalModification) Apply(r Rental) Rental {
	modified := r
	if m.StartDate != nil && !m.StartDate.IsZero() {
		modified.StartDate = *m.StartDate
	}
	if m.EndDate != nil && !m.EndDate.IsZero() {
		modified.EndDate = *m.EndDate
	}
	if m.Distance != nil && *m.Distance != 0 {
		modified.Distance = *m.Distance
	}
	return modified
}

// Batch is the full input document.
type Batch struct {
	Cars          []Car
	Rentals       []RentalInput
	Modifications []RentalModification
}
