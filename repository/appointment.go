package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonbook-backend/models"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	// FindForDay returns a stylist's scheduled appointments within [from, to)
	// ordered by start time; the overlap check happens in the service layer.
	FindForDay(ctx context.Context, stylistID uuid.UUID, from, to time.Time) ([]models.Appointment, error)
	FindUpcomingByStylist(ctx context.Context, stylistID uuid.UUID, from time.Time) ([]models.Appointment, error)
	CountBetween(ctx context.Context, from, to time.Time) (int64, error)
	// FindDueReminders returns scheduled appointments starting within
	// [from, to) that have not had a reminder sent yet.
	FindDueReminders(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) error
}

type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return translate("create appointment", r.db.WithContext(ctx).Create(appointment).Error)
}

func (r *GormAppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Stylist").
		First(&appointment, "id = ?", id).Error
	if err != nil {
		return nil, translate("find appointment by id", err)
	}
	return &appointment, nil
}

func (r *GormAppointmentRepository) FindForDay(ctx context.Context, stylistID uuid.UUID, from, to time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Where("stylist_id = ? AND status = ? AND starts_at >= ? AND starts_at < ?",
			stylistID, models.AppointmentScheduled, from, to).
		Order("starts_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, translate("find appointments for day", err)
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) FindUpcomingByStylist(ctx context.Context, stylistID uuid.UUID, from time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where("stylist_id = ? AND status = ? AND starts_at >= ?",
			stylistID, models.AppointmentScheduled, from).
		Order("starts_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, translate("find upcoming appointments", err)
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("status = ? AND starts_at >= ? AND starts_at < ?",
			models.AppointmentScheduled, from, to).
		Count(&count).Error
	if err != nil {
		return 0, translate("count appointments", err)
	}
	return count, nil
}

func (r *GormAppointmentRepository) FindDueReminders(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Stylist").
		Where("status = ? AND reminder_sent_at IS NULL AND starts_at >= ? AND starts_at < ?",
			models.AppointmentScheduled, from, to).
		Order("starts_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, translate("find due reminders", err)
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("reminder_sent_at", at)
	if result.Error != nil {
		return translate("mark reminder sent", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
