package domain

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrAlreadyBooked       = errors.New("seat is already booked for this showtime")
	ErrConstraintViolation = errors.New("booking uniqueness constraint violated")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrSystemFailure       = errors.New("reservation could not be completed, please retry")
	ErrInvalidInput        = errors.New("invalid input")
	ErrTxConflict          = errors.New("transaction conflict")
	ErrLayoutNotDefined    = errors.New("hall layout not defined")
)
