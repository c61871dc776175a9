package repository

import (
	"context"

	"github.com/Eursukkul/transit-booking/internal/models"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	FindAll(ctx context.Context) ([]models.Service, error)
	ReplaceAll(ctx context.Context, tx *gorm.DB, services []models.Service) error
	GetDB() *gorm.DB
}

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) ReplaceAll(ctx context.Context, tx *gorm.DB, services []models.Service) error {
	if err := tx.WithContext(ctx).Exec("DELETE FROM services").Error; err != nil {
		return err
	}
	if len(services) == 0 {
		return nil
	}
	rows := append([]models.Service(nil), services...)
	return tx.WithContext(ctx).Create(&rows).Error
}
