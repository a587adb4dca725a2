package domain

import (
	"fmt"
)

// ValidationError reports a structurally invalid record or value. It aborts the batch.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LookupError reports a reference to an entity that is not part of the batch.
type LookupError struct {
	Kind string // "car" or "rental"
	ID   int
	Ref  string // the record holding the dangling reference, e.g. "rentals[2]"
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s references unknown %s %d", e.Ref, e.Kind, e.ID)
}
