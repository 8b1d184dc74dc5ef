package domain

import (
	"fmt"
	"time"
)

type ReserveRequest struct {
	SeatID       int       `validate:"gt=0"`
	MovieID      int       `validate:"gt=0"`
	ShowTime     time.Time `validate:"required"`
	CustomerName string    `validate:"notblank,max=100"`
}

// ReservationError is the failure half of a reservation result. Kind is one
// of ErrInvalidInput, ErrRecordNotFound, ErrAlreadyBooked or ErrSystemFailure.
type ReservationError struct {
	Kind  error
	Cause error
}

func NewReservationError(kind, cause error) *ReservationError {
	return &ReservationError{Kind: kind, Cause: cause}
}

func (e *ReservationError) Error() string {
	if e.Cause == nil {
		return e.Kind.Error()
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Cause)
}

func (e *ReservationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Cause}
}

// Retryable reports whether the caller may submit the same request again.
func (e *ReservationError) Retryable() bool {
	return e.Kind == ErrSystemFailure
}
