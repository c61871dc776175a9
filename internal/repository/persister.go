package repository

import (
	"context"
	"errors"

	"github.com/Eursukkul/transit-booking/internal/models"
)

// ErrNoData is returned by a Persister when nothing has been stored yet.
var ErrNoData = errors.New("no persisted data")

// Persister stores whole collections. Every save replaces what was there
// before; callers never see a partially written collection.
type Persister interface {
	LoadServices(ctx context.Context) ([]models.Service, error)
	SaveServices(ctx context.Context, services []models.Service) error
	LoadBookings(ctx context.Context) (bookings []models.Booking, nextBookingID int, err error)
	SaveBookings(ctx context.Context, bookings []models.Booking, nextBookingID int) error
}
