package repository

import (
	"context"

	"github.com/Eursukkul/transit-booking/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository interface {
	FindAll(ctx context.Context) ([]models.Booking, error)
	ReplaceAll(ctx context.Context, tx *gorm.DB, bookings []models.Booking) error
	NextID(ctx context.Context) (int, error)
	SetNextID(ctx context.Context, tx *gorm.DB, next int) error
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).Order("booking_id ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ReplaceAll swaps the table contents for bookings within tx.
func (r *bookingRepository) ReplaceAll(ctx context.Context, tx *gorm.DB, bookings []models.Booking) error {
	if err := tx.WithContext(ctx).Exec("DELETE FROM bookings").Error; err != nil {
		return err
	}
	if len(bookings) == 0 {
		return nil
	}
	rows := append([]models.Booking(nil), bookings...)
	return tx.WithContext(ctx).Create(&rows).Error
}

// NextID returns gorm.ErrRecordNotFound when the counter was never stored.
func (r *bookingRepository) NextID(ctx context.Context) (int, error) {
	var counter models.BookingCounter
	err := r.db.WithContext(ctx).
		Where("name = ?", models.BookingCounterName).
		First(&counter).Error
	if err != nil {
		return 0, err
	}
	return counter.Next, nil
}

func (r *bookingRepository) SetNextID(ctx context.Context, tx *gorm.DB, next int) error {
	return tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"next_value"}),
	}).Create(&models.BookingCounter{Name: models.BookingCounterName, Next: next}).Error
}
