package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ReportMode selects which figures the output document carries.
type ReportMode string

const (
	ModePrice         ReportMode = "price"
	ModeCommission    ReportMode = "commission"
	ModeOptions       ReportMode = "options"
	ModeActions       ReportMode = "actions"
	ModeModifications ReportMode = "modifications"
)

// ParseReportMode validates a mode name. Matching is case-insensitive.
func ParseReportMode(s string) (ReportMode, error) {
	switch mode := ReportMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ModePrice, ModeCommission, ModeOptions, ModeActions, ModeModifications:
		return mode, nil
	}
	return "", &ValidationError{Field: "mode", Value: s, Reason: fmt.Sprintf("must be one of %s, %s, %s, %s, %s",
		ModePrice, ModeCommission, ModeOptions, ModeActions, ModeModifications)}
}

// Options lists the paid options of a rental.
type Options struct {
	DeductibleReduction int `json:"deductible_reduction"`
}

// RentalReport is one entry of the "rentals" output. Fields left nil are
// not part of the selected mode.
type RentalReport struct {
	ID         int         `json:"id"`
	Price      *int        `json:"price,omitempty"`
	Options    *Options    `json:"options,omitempty"`
	Commission *Commission `json:"commission,omitempty"`
	Actions    []Action    `json:"actions,omitempty"`
}

// ModificationDelta is the money that moves when a rental is modified.
type ModificationDelta struct {
	ID       int      `json:"id"`
	RentalID int      `json:"rental_id"`
	Actions  []Action `json:"actions"`
}

// Report is the top-level structure for the final JSON output.
type Report struct {
	Mode                ReportMode
	Rentals             []RentalReport
	RentalModifications []ModificationDelta
}

// MarshalJSON emits only the collection that belongs to the report mode.
func (r Report) MarshalJSON() ([]byte, error) {
	if r.Mode == ModeModifications {
		deltas := r.RentalModifications
		if deltas == nil {
			deltas = make([]ModificationDelta, 0)
		}
		return json.Marshal(struct {
			RentalModifications []ModificationDelta `json:"rental_modifications"`
		}{deltas})
	}
	rentals := r.Rentals
	if rentals == nil {
		rentals = make([]RentalReport, 0)
	}
	return json.Marshal(struct {
		Rentals []RentalReport `json:"rentals"`
	}{rentals})
}
