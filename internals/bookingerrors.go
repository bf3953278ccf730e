package internals

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCargo    = errors.New("invalid cargo")
	ErrInvalidSeat     = errors.New("invalid seat")
	ErrSeatConflict    = errors.New("seat already taken")
	ErrEmptyOrder      = errors.New("an order must contain at least one ticket")
	ErrJourneyNotFound = errors.New("journey not found")
	ErrInvalidField    = errors.New("invalid field")
)

// SeatError reports a cargo or seat outside the physical capacity of a train.
// Kind is ErrInvalidCargo or ErrInvalidSeat.
type SeatError struct {
	Kind  error
	Field string
	Value int
	Max   int
}

func (e *SeatError) Error() string {
	return fmt.Sprintf("%s must be between 1 and %d, not %d", e.Field, e.Max, e.Value)
}

func (e *SeatError) Unwrap() error {
	return e.Kind
}

// SeatConflictError names the (journey, cargo, seat) triple that is already claimed,
// either by a committed ticket or by another ticket of the same order.
type SeatConflictError struct {
	JourneyID int
	Cargo     int
	Seat      int
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("cargo %d seat %d on journey %d is already taken", e.Cargo, e.Seat, e.JourneyID)
}

func (e *SeatConflictError) Unwrap() error {
	return ErrSeatConflict
}

// FieldError is returned when reference data breaks one of its invariants
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}
