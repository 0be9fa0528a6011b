package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonbook-backend/models"
)

type ServiceRepository interface {
	FindAll(ctx context.Context) ([]models.Service, error)
	FindActive(ctx context.Context) ([]models.Service, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountActive(ctx context.Context) (int64, error)
}

type GormServiceRepository struct {
	db *gorm.DB
}

func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

func (r *GormServiceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&services).Error; err != nil {
		return nil, translate("find all services", err)
	}
	return services, nil
}

func (r *GormServiceRepository) FindActive(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&services).Error
	if err != nil {
		return nil, translate("find active services", err)
	}
	return services, nil
}

func (r *GormServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		return nil, translate("find service by id", err)
	}
	return &service, nil
}

func (r *GormServiceRepository) Create(ctx context.Context, service *models.Service) error {
	return translate("create service", r.db.WithContext(ctx).Create(service).Error)
}

func (r *GormServiceRepository) Update(ctx context.Context, service *models.Service) error {
	return translate("update service", r.db.WithContext(ctx).Save(service).Error)
}

func (r *GormServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return translate("delete service", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormServiceRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("is_active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, translate("count active services", err)
	}
	return count, nil
}
