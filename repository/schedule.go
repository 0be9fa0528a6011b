package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonbook-backend/models"
)

type ScheduleRepository interface {
	// FindByStylist returns the stylist's windows ordered by weekday, then
	// start time. The ordering is part of the contract, not the caller's job.
	FindByStylist(ctx context.Context, stylistID uuid.UUID) ([]models.WorkSchedule, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.WorkSchedule, error)
	Create(ctx context.Context, schedule *models.WorkSchedule) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormScheduleRepository struct {
	db *gorm.DB
}

func NewGormScheduleRepository(db *gorm.DB) *GormScheduleRepository {
	return &GormScheduleRepository{db: db}
}

func (r *GormScheduleRepository) FindByStylist(ctx context.Context, stylistID uuid.UUID) ([]models.WorkSchedule, error) {
	var schedules []models.WorkSchedule
	err := r.db.WithContext(ctx).
		Where("stylist_id = ?", stylistID).
		Order("weekday ASC, start_time ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, translate("find schedules by stylist", err)
	}
	return schedules, nil
}

func (r *GormScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.WorkSchedule, error) {
	var schedule models.WorkSchedule
	if err := r.db.WithContext(ctx).First(&schedule, "id = ?", id).Error; err != nil {
		return nil, translate("find schedule by id", err)
	}
	return &schedule, nil
}

func (r *GormScheduleRepository) Create(ctx context.Context, schedule *models.WorkSchedule) error {
	return translate("create schedule", r.db.WithContext(ctx).Create(schedule).Error)
}

func (r *GormScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.WorkSchedule{}, "id = ?", id)
	if result.Error != nil {
		return translate("delete schedule", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
