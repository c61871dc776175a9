package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eursukkul/transit-booking/internal/models"
	"gorm.io/gorm"
)

// GormPersister stores the collections in relational tables. Each save
// rewrites a whole table inside one transaction.
type GormPersister struct {
	services ServiceRepository
	bookings BookingRepository
}

func NewGormPersister(db *gorm.DB) *GormPersister {
	return &GormPersister{
		services: NewServiceRepository(db),
		bookings: NewBookingRepository(db),
	}
}

func (p *GormPersister) LoadServices(ctx context.Context) ([]models.Service, error) {
	services, err := p.services.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}
	if len(services) == 0 {
		return nil, ErrNoData
	}
	return services, nil
}

func (p *GormPersister) SaveServices(ctx context.Context, services []models.Service) error {
	return p.services.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := p.services.ReplaceAll(ctx, tx, services); err != nil {
			return fmt.Errorf("replace services: %w", err)
		}
		return nil
	})
}

func (p *GormPersister) LoadBookings(ctx context.Context) ([]models.Booking, int, error) {
	bookings, err := p.bookings.FindAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("load bookings: %w", err)
	}

	next, err := p.bookings.NextID(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if len(bookings) == 0 {
			return nil, 0, ErrNoData
		}
		return bookings, 1, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("load booking counter: %w", err)
	}
	return bookings, next, nil
}

func (p *GormPersister) SaveBookings(ctx context.Context, bookings []models.Booking, nextBookingID int) error {
	return p.bookings.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := p.bookings.ReplaceAll(ctx, tx, bookings); err != nil {
			return fmt.Errorf("replace bookings: %w", err)
		}
		if err := p.bookings.SetNextID(ctx, tx, nextBookingID); err != nil {
			return fmt.Errorf("store booking counter: %w", err)
		}
		return nil
	})
}
