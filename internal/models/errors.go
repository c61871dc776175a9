package models

import "errors"

var (
	ErrServiceNotFound        = errors.New("service not found")
	ErrBookingNotFound        = errors.New("booking not found")
	ErrNoSeatsAvailable       = errors.New("no seats available on this service")
	ErrInvalidQuantity        = errors.New("invalid seat quantity")
	ErrInvalidService         = errors.New("invalid service")
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
)
