package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Eursukkul/transit-booking/internal/models"
)

// RecordStore owns the in-memory services and bookings tables and the
// next booking id. It is not safe for concurrent use.
type RecordStore struct {
	persister     Persister
	services      []models.Service
	bookings      []models.Booking
	nextBookingID int
}

func NewRecordStore(persister Persister) *RecordStore {
	return &RecordStore{persister: persister, nextBookingID: 1}
}

// Load reads both collections. Services fall back to the default set and
// bookings fall back to empty; the returned error only reports a failure
// to persist the reseeded services.
func (s *RecordStore) Load(ctx context.Context) error {
	err := s.LoadServices(ctx)
	s.LoadBookings(ctx)
	return err
}

func (s *RecordStore) LoadServices(ctx context.Context) error {
	services, err := s.persister.LoadServices(ctx)
	if err == nil && len(services) > 0 {
		s.services = services
		return nil
	}
	// An empty stored catalog is treated like a missing one on every backend.
	if err != nil && !errors.Is(err, ErrNoData) {
		log.Printf("[RecordStore] services unreadable, reseeding defaults: %v", err)
	}

	s.services = DefaultServices()
	return s.SaveServices(ctx)
}

func (s *RecordStore) LoadBookings(ctx context.Context) {
	bookings, next, err := s.persister.LoadBookings(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoData) {
			log.Printf("[RecordStore] bookings unreadable, starting empty: %v", err)
		}
		bookings, next = nil, 1
	}

	for _, b := range bookings {
		if b.BookingID >= next {
			next = b.BookingID + 1
		}
	}
	if next < 1 {
		next = 1
	}
	s.bookings = bookings
	s.nextBookingID = next
}

func (s *RecordStore) SaveServices(ctx context.Context) error {
	if err := s.persister.SaveServices(ctx, s.services); err != nil {
		return fmt.Errorf("%w: save services: %w", models.ErrPersistenceUnavailable, err)
	}
	return nil
}

func (s *RecordStore) SaveBookings(ctx context.Context) error {
	if err := s.persister.SaveBookings(ctx, s.bookings, s.nextBookingID); err != nil {
		return fmt.Errorf("%w: save bookings: %w", models.ErrPersistenceUnavailable, err)
	}
	return nil
}

// Flush saves both collections, attempting bookings even if services fail.
func (s *RecordStore) Flush(ctx context.Context) error {
	return errors.Join(s.SaveServices(ctx), s.SaveBookings(ctx))
}

func (s *RecordStore) Services() []models.Service {
	return append([]models.Service(nil), s.services...)
}

func (s *RecordStore) Bookings() []models.Booking {
	return append([]models.Booking(nil), s.bookings...)
}

// FindServiceByID returns a pointer into the store. It stays valid until
// the next AppendService or Rollback.
func (s *RecordStore) FindServiceByID(id int) (*models.Service, bool) {
	for i := range s.services {
		if s.services[i].ID == id {
			return &s.services[i], true
		}
	}
	return nil, false
}

func (s *RecordStore) FindBooking(id int) (models.Booking, bool) {
	for _, b := range s.bookings {
		if b.BookingID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

func (s *RecordStore) AppendBooking(b models.Booking) {
	s.bookings = append(s.bookings, b)
}

func (s *RecordStore) RemoveBooking(id int) (models.Booking, bool) {
	for i, b := range s.bookings {
		if b.BookingID == id {
			s.bookings = append(s.bookings[:i:i], s.bookings[i+1:]...)
			return b, true
		}
	}
	return models.Booking{}, false
}

func (s *RecordStore) AppendService(svc models.Service) {
	s.services = append(s.services, svc)
}

// AllocateBookingID hands out the current counter value and advances it.
func (s *RecordStore) AllocateBookingID() int {
	id := s.nextBookingID
	s.nextBookingID++
	return id
}

func (s *RecordStore) NextBookingID() int {
	return s.nextBookingID
}

// NextServiceID is one past the highest existing id, or 1 when empty.
func (s *RecordStore) NextServiceID() int {
	highest := 0
	for _, svc := range s.services {
		if svc.ID > highest {
			highest = svc.ID
		}
	}
	return highest + 1
}

// Checkpoint is a deep copy of the store's state.
type Checkpoint struct {
	services      []models.Service
	bookings      []models.Booking
	nextBookingID int
}

func (s *RecordStore) Checkpoint() Checkpoint {
	return Checkpoint{
		services:      s.Services(),
		bookings:      s.Bookings(),
		nextBookingID: s.nextBookingID,
	}
}

func (s *RecordStore) Rollback(cp Checkpoint) {
	s.services = append([]models.Service(nil), cp.services...)
	s.bookings = append([]models.Booking(nil), cp.bookings...)
	s.nextBookingID = cp.nextBookingID
}
