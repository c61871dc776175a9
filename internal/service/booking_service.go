package service

import (
	"context"
	"fmt"
	"log"

	"github.com/Eursukkul/transit-booking/internal/dto"
	"github.com/Eursukkul/transit-booking/internal/ledger"
	"github.com/Eursukkul/transit-booking/internal/models"
	"github.com/Eursukkul/transit-booking/internal/repository"
	"github.com/Eursukkul/transit-booking/pkg/rabbitmq"
)

// EventPublisher is satisfied by *rabbitmq.Publisher.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

type BookingService interface {
	CreateBooking(ctx context.Context, serviceID int, passengerName string, seatCount int, contact string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID int) (*models.Booking, error)
	GetBooking(ctx context.Context, id int) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
}

type bookingService struct {
	store     *repository.RecordStore
	publisher EventPublisher
}

// NewBookingService wires the controller to store. A nil publisher
// disables notifications.
func NewBookingService(store *repository.RecordStore, publisher EventPublisher) BookingService {
	return &bookingService{store: store, publisher: publisher}
}

func (s *bookingService) CreateBooking(ctx context.Context, serviceID int, passengerName string, seatCount int, contact string) (*models.Booking, error) {
	svc, ok := s.store.FindServiceByID(serviceID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", models.ErrServiceNotFound, serviceID)
	}
	if svc.SeatsAvailable <= 0 {
		return nil, models.ErrNoSeatsAvailable
	}

	cp := s.store.Checkpoint()
	if err := ledger.Reserve(svc, seatCount); err != nil {
		return nil, err
	}

	booking := models.Booking{
		BookingID:     s.store.AllocateBookingID(),
		ServiceID:     svc.ID,
		PassengerName: passengerName,
		SeatsBooked:   seatCount,
		Contact:       contact,
	}
	s.store.AppendBooking(booking)

	if err := persistOrRollback(ctx, s.store, cp, s.store.SaveServices, s.store.SaveBookings); err != nil {
		return nil, err
	}

	publish(s.publisher, rabbitmq.RoutingBookingCreated, dto.ToBookingEvent(booking, svc))
	return &booking, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID int) (*models.Booking, error) {
	booking, ok := s.store.FindBooking(bookingID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", models.ErrBookingNotFound, bookingID)
	}

	cp := s.store.Checkpoint()

	// The service may have gone away; the booking is dropped regardless.
	svc, found := s.store.FindServiceByID(booking.ServiceID)
	if found {
		ledger.Release(svc, booking.SeatsBooked)
	}
	s.store.RemoveBooking(bookingID)

	if err := persistOrRollback(ctx, s.store, cp, s.store.SaveServices, s.store.SaveBookings); err != nil {
		return nil, err
	}

	publish(s.publisher, rabbitmq.RoutingBookingCancelled, dto.ToBookingEvent(booking, svc))
	return &booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id int) (*models.Booking, error) {
	booking, ok := s.store.FindBooking(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", models.ErrBookingNotFound, id)
	}
	return &booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.store.Bookings(), nil
}

// persistOrRollback runs saves in order. On the first failure the store
// is restored to cp and the restored state is written back best-effort.
func persistOrRollback(ctx context.Context, store *repository.RecordStore, cp repository.Checkpoint, saves ...func(context.Context) error) error {
	for _, save := range saves {
		if err := save(ctx); err != nil {
			store.Rollback(cp)
			if restoreErr := store.Flush(ctx); restoreErr != nil {
				log.Printf("[BookingService] failed to restore persisted state: %v", restoreErr)
			}
			return err
		}
	}
	return nil
}

func publish(p EventPublisher, routingKey string, payload any) {
	if p == nil {
		return
	}
	if err := p.Publish(routingKey, payload); err != nil {
		log.Printf("[BookingService] publish %s failed: %v", routingKey, err)
	}
}
