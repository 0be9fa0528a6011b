package services

import (
	"context"

	"github.com/google/uuid"

	"salonbook-backend/apperrors"
	"salonbook-backend/logger"
	"salonbook-backend/models"
	"salonbook-backend/repository"
	"salonbook-backend/validation"
)

// ScheduleService manages weekly availability windows. Schedules are
// created and deleted, never edited in place.
type ScheduleService struct {
	schedules repository.ScheduleRepository
	stylists  repository.StylistRepository
	checker   *validation.Checker
	log       *logger.Logger
}

func NewScheduleService(
	schedules repository.ScheduleRepository,
	stylists repository.StylistRepository,
	checker *validation.Checker,
	log *logger.Logger,
) *ScheduleService {
	return &ScheduleService{schedules: schedules, stylists: stylists, checker: checker, log: log}
}

func (s *ScheduleService) ListForStylist(ctx context.Context, stylistID string) ([]models.WorkSchedule, error) {
	id, err := uuid.Parse(stylistID)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid stylist id")
	}
	schedules, err := s.schedules.FindByStylist(ctx, id)
	if err != nil {
		return nil, repoError(s.log, "Schedule", "list schedules", err)
	}
	return schedules, nil
}

func (s *ScheduleService) Create(ctx context.Context, in validation.ScheduleInput) (*models.WorkSchedule, error) {
	if err := s.checker.Check(in); err != nil {
		return nil, err
	}

	stylistID, err := uuid.Parse(in.StylistID)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid stylist id")
	}
	if _, err := s.stylists.FindByID(ctx, stylistID); err != nil {
		return nil, repoError(s.log, "Stylist", "load stylist for schedule", err)
	}

	schedule := &models.WorkSchedule{
		StylistID: stylistID,
		Weekday:   *in.Weekday,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}
	if err := s.schedules.Create(ctx, schedule); err != nil {
		return nil, repoError(s.log, "Schedule", "create schedule", err)
	}

	s.log.Info("schedule created", "id", schedule.ID, "stylist_id", stylistID, "weekday", schedule.Weekday)
	return schedule, nil
}

// Delete removes a window. acting scopes the call to the owning stylist;
// uuid.Nil skips the ownership check (admin flows).
func (s *ScheduleService) Delete(ctx context.Context, id string, acting uuid.UUID) error {
	scheduleID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.InvalidInput("Invalid schedule id")
	}

	schedule, err := s.schedules.FindByID(ctx, scheduleID)
	if err != nil {
		return repoError(s.log, "Schedule", "load schedule for delete", err)
	}
	if acting != uuid.Nil && schedule.StylistID != acting {
		return apperrors.Forbidden("Schedule belongs to another stylist")
	}

	if err := s.schedules.Delete(ctx, scheduleID); err != nil {
		return repoError(s.log, "Schedule", "delete schedule", err)
	}
	s.log.Info("schedule deleted", "id", scheduleID)
	return nil
}
