package reservations

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAlreadyCancelled    = errors.New("reservation already cancelled")
	ErrInvalidInput        = errors.New("invalid input data")
	ErrInternal            = errors.New("internal service error")
)
