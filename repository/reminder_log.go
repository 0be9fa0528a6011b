package repository

import (
	"context"

	"gorm.io/gorm"

	"salonbook-backend/models"
)

type ReminderLogRepository interface {
	Create(ctx context.Context, log *models.ReminderLog) error
}

type GormReminderLogRepository struct {
	db *gorm.DB
}

func NewGormReminderLogRepository(db *gorm.DB) *GormReminderLogRepository {
	return &GormReminderLogRepository{db: db}
}

func (r *GormReminderLogRepository) Create(ctx context.Context, log *models.ReminderLog) error {
	return translate("create reminder log", r.db.WithContext(ctx).Create(log).Error)
}
