package handler

import (
	"errors"
	"strings"

	"github.com/Eursukkul/transit-booking/internal/models"
)

// userMessage turns a controller error into the line shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrServiceNotFound):
		return "Invalid Service ID."
	case errors.Is(err, models.ErrBookingNotFound):
		return "Booking ID not found."
	case errors.Is(err, models.ErrNoSeatsAvailable):
		return "Sorry, no seats available on this service."
	case errors.Is(err, models.ErrInvalidQuantity):
		return "Invalid seats requested."
	case errors.Is(err, models.ErrInvalidService):
		detail := strings.TrimPrefix(err.Error(), models.ErrInvalidService.Error()+": ")
		return "Invalid service details: " + detail
	case errors.Is(err, models.ErrPersistenceUnavailable):
		return "Could not save changes, nothing was modified. Please try again."
	default:
		return "Unexpected error: " + err.Error()
	}
}
