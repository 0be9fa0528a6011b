// services/reminder_service.go
package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"salonbook-backend/logger"
	"salonbook-backend/models"
	"salonbook-backend/repository"
)

// ReminderService sends an SMS to each customer with a scheduled
// appointment starting within the next day, once per appointment.
type ReminderService struct {
	appointments repository.AppointmentRepository
	logs         repository.ReminderLogRepository
	client       *twilio.RestClient
	from         string
	log          *logger.Logger
}

func NewReminderService(
	appointments repository.AppointmentRepository,
	logs repository.ReminderLogRepository,
	log *logger.Logger,
) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		appointments: appointments,
		logs:         logs,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_PHONE_NUMBER"),
		log:  log,
	}
}

// StartScheduler runs the reminder pass at the top of every hour.
func (s *ReminderService) StartScheduler() *cron.Cron {
	c := cron.New()
	c.AddFunc("0 * * * *", s.SendUpcomingReminders)
	c.Start()
	s.log.Info("reminder scheduler started")
	return c
}

func (s *ReminderService) SendUpcomingReminders() {
	ctx := context.Background()
	now := time.Now()

	due, err := s.appointments.FindDueReminders(ctx, now, now.Add(24*time.Hour))
	if err != nil {
		s.log.Error("failed to load due reminders", "error", err)
		return
	}
	if len(due) == 0 {
		return
	}

	s.log.Info("sending appointment reminders", "count", len(due))
	for _, appointment := range due {
		s.sendOne(ctx, appointment)
	}
}

func (s *ReminderService) sendOne(ctx context.Context, appointment models.Appointment) {
	message := fmt.Sprintf(
		"Hi %s, a reminder of your %s appointment with %s on %s.",
		appointment.Customer.Name,
		appointment.Service.Name,
		appointment.Stylist.Name,
		appointment.StartsAt.Format("Mon Jan 2 at 15:04"),
	)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(appointment.Customer.Phone)
	params.SetFrom(s.from)
	params.SetBody(message)

	status := "sent"
	errorMsg := ""
	_, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.log.Error("failed to send reminder",
			"appointment_id", appointment.ID,
			"phone", appointment.Customer.Phone,
			"error", err,
		)
		status = "failed"
		errorMsg = err.Error()
	}

	entry := &models.ReminderLog{
		AppointmentID: appointment.ID,
		Phone:         appointment.Customer.Phone,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		SentAt:        time.Now(),
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		s.log.Error("failed to write reminder log", "appointment_id", appointment.ID, "error", err)
	}

	if status == "sent" {
		if err := s.appointments.MarkReminderSent(ctx, appointment.ID, entry.SentAt); err != nil {
			s.log.Error("failed to mark reminder sent", "appointment_id", appointment.ID, "error", err)
		}
	}
}
