package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"salonbook-backend/apperrors"
	"salonbook-backend/logger"
	"salonbook-backend/models"
	"salonbook-backend/repository"
	"salonbook-backend/utils"
	"salonbook-backend/validation"
)

// BookingService handles public appointment booking: it resolves the
// offered service, checks the requested slot against the stylist's weekly
// windows and existing bookings, then records the appointment with the
// customer row for the submitted phone number.
type BookingService struct {
	offered      repository.OfferedServiceRepository
	schedules    repository.ScheduleRepository
	customers    repository.CustomerRepository
	appointments repository.AppointmentRepository
	checker      *validation.Checker
	log          *logger.Logger
}

func NewBookingService(
	offered repository.OfferedServiceRepository,
	schedules repository.ScheduleRepository,
	customers repository.CustomerRepository,
	appointments repository.AppointmentRepository,
	checker *validation.Checker,
	log *logger.Logger,
) *BookingService {
	return &BookingService{
		offered:      offered,
		schedules:    schedules,
		customers:    customers,
		appointments: appointments,
		checker:      checker,
		log:          log,
	}
}

func (s *BookingService) Book(ctx context.Context, in validation.BookingInput) (*models.Appointment, error) {
	if err := s.checker.Check(in); err != nil {
		return nil, err
	}

	stylistID, err := uuid.Parse(in.StylistID)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid stylist id")
	}
	serviceID, err := uuid.Parse(in.ServiceID)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid service id")
	}

	offered, err := s.offered.FindByPair(ctx, stylistID, serviceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			fields := apperrors.FieldErrors{}
			fields.Add("service_id", "is not offered by this stylist")
			return nil, apperrors.Validation(fields)
		}
		return nil, repoError(s.log, "Offered service", "resolve offered service", err)
	}
	if !offered.IsActive {
		fields := apperrors.FieldErrors{}
		fields.Add("service_id", "is not currently offered by this stylist")
		return nil, apperrors.Validation(fields)
	}

	day, err := time.ParseInLocation("2006-01-02", in.Date, time.Local)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid booking date")
	}
	startMinutes, err := utils.ParseClock(in.StartTime)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid booking time")
	}

	duration := offered.EffectiveDuration()
	startsAt := utils.ClockAt(day, startMinutes)
	endsAt := startsAt.Add(time.Duration(duration) * time.Minute)

	if err := s.checkWithinSchedule(ctx, stylistID, int(day.Weekday()), startMinutes, startMinutes+duration); err != nil {
		return nil, err
	}
	if err := s.checkNoOverlap(ctx, stylistID, day, startsAt, endsAt); err != nil {
		return nil, err
	}

	customer, err := s.customers.GetOrCreate(ctx, in.Name, in.Phone, in.Email)
	if err != nil {
		return nil, repoError(s.log, "Customer", "get or create customer", err)
	}

	appointment := &models.Appointment{
		CustomerID:      customer.ID,
		StylistID:       stylistID,
		ServiceID:       serviceID,
		StartsAt:        startsAt,
		DurationMinutes: duration,
		Price:           offered.EffectivePrice(),
		Status:          models.AppointmentScheduled,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, repoError(s.log, "Appointment", "create appointment", err)
	}

	s.log.Info("appointment booked",
		"id", appointment.ID,
		"stylist_id", stylistID,
		"service_id", serviceID,
		"starts_at", startsAt,
	)
	return appointment, nil
}

func (s *BookingService) UpcomingForStylist(ctx context.Context, stylistID string) ([]models.Appointment, error) {
	id, err := uuid.Parse(stylistID)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid stylist id")
	}
	appointments, err := s.appointments.FindUpcomingByStylist(ctx, id, time.Now())
	if err != nil {
		return nil, repoError(s.log, "Appointment", "list upcoming appointments", err)
	}
	return appointments, nil
}

func (s *BookingService) checkWithinSchedule(ctx context.Context, stylistID uuid.UUID, weekday, startMinutes, endMinutes int) error {
	schedules, err := s.schedules.FindByStylist(ctx, stylistID)
	if err != nil {
		return repoError(s.log, "Schedule", "load schedules for booking", err)
	}

	for _, window := range schedules {
		if window.Weekday != weekday {
			continue
		}
		windowStart, errStart := utils.ParseClock(window.StartTime)
		windowEnd, errEnd := utils.ParseClock(window.EndTime)
		if errStart != nil || errEnd != nil {
			continue
		}
		if startMinutes >= windowStart && endMinutes <= windowEnd {
			return nil
		}
	}

	fields := apperrors.FieldErrors{}
	fields.Add("start_time", "is outside the stylist's working hours")
	return apperrors.Validation(fields)
}

// checkNoOverlap is a best-effort pre-check like the stylist uniqueness
// query: two concurrent submissions can both pass, and the second write
// wins. Accepted for single-salon traffic.
func (s *BookingService) checkNoOverlap(ctx context.Context, stylistID uuid.UUID, day, startsAt, endsAt time.Time) error {
	dayStart := utils.BeginningOfDay(day)
	existing, err := s.appointments.FindForDay(ctx, stylistID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return repoError(s.log, "Appointment", "load appointments for overlap check", err)
	}

	for _, other := range existing {
		if other.StartsAt.Before(endsAt) && startsAt.Before(other.EndsAt()) {
			fields := apperrors.FieldErrors{}
			fields.Add("start_time", "conflicts with an existing booking")
			return apperrors.Validation(fields)
		}
	}
	return nil
}
