package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonbook-backend/models"
)

type OfferedServiceRepository interface {
	FindByStylist(ctx context.Context, stylistID uuid.UUID) ([]models.OfferedService, error)
	FindActiveByStylist(ctx context.Context, stylistID uuid.UUID) ([]models.OfferedService, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.OfferedService, error)
	FindByPair(ctx context.Context, stylistID, serviceID uuid.UUID) (*models.OfferedService, error)
	Create(ctx context.Context, offered *models.OfferedService) error
	Update(ctx context.Context, offered *models.OfferedService) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormOfferedServiceRepository struct {
	db *gorm.DB
}

func NewGormOfferedServiceRepository(db *gorm.DB) *GormOfferedServiceRepository {
	return &GormOfferedServiceRepository{db: db}
}

func (r *GormOfferedServiceRepository) FindByStylist(ctx context.Context, stylistID uuid.UUID) ([]models.OfferedService, error) {
	var offered []models.OfferedService
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("stylist_id = ?", stylistID).
		Order("created_at ASC").
		Find(&offered).Error
	if err != nil {
		return nil, translate("find offered services by stylist", err)
	}
	return offered, nil
}

func (r *GormOfferedServiceRepository) FindActiveByStylist(ctx context.Context, stylistID uuid.UUID) ([]models.OfferedService, error) {
	var offered []models.OfferedService
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("stylist_id = ? AND is_active = ?", stylistID, true).
		Order("created_at ASC").
		Find(&offered).Error
	if err != nil {
		return nil, translate("find active offered services", err)
	}
	return offered, nil
}

func (r *GormOfferedServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.OfferedService, error) {
	var offered models.OfferedService
	err := r.db.WithContext(ctx).
		Preload("Service").
		First(&offered, "id = ?", id).Error
	if err != nil {
		return nil, translate("find offered service by id", err)
	}
	return &offered, nil
}

func (r *GormOfferedServiceRepository) FindByPair(ctx context.Context, stylistID, serviceID uuid.UUID) (*models.OfferedService, error) {
	var offered models.OfferedService
	err := r.db.WithContext(ctx).
		Preload("Service").
		First(&offered, "stylist_id = ? AND service_id = ?", stylistID, serviceID).Error
	if err != nil {
		return nil, translate("find offered service by pair", err)
	}
	return &offered, nil
}

func (r *GormOfferedServiceRepository) Create(ctx context.Context, offered *models.OfferedService) error {
	return translate("create offered service", r.db.WithContext(ctx).Create(offered).Error)
}

func (r *GormOfferedServiceRepository) Update(ctx context.Context, offered *models.OfferedService) error {
	return translate("update offered service", r.db.WithContext(ctx).Save(offered).Error)
}

func (r *GormOfferedServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.OfferedService{}, "id = ?", id)
	if result.Error != nil {
		return translate("delete offered service", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
