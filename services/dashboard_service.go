package services

import (
	"context"
	"sync"
	"time"

	"salonbook-backend/logger"
	"salonbook-backend/repository"
	"salonbook-backend/utils"
)

type DashboardOverview struct {
	ActiveServices    int64 `json:"active_services"`
	ActiveStylists    int64 `json:"active_stylists"`
	AppointmentsToday int64 `json:"appointments_today"`
}

// DashboardService aggregates the admin overview counts. The three counts
// are independent reads and run concurrently.
type DashboardService struct {
	services     repository.ServiceRepository
	stylists     repository.StylistRepository
	appointments repository.AppointmentRepository
	log          *logger.Logger
}

func NewDashboardService(
	services repository.ServiceRepository,
	stylists repository.StylistRepository,
	appointments repository.AppointmentRepository,
	log *logger.Logger,
) *DashboardService {
	return &DashboardService{services: services, stylists: stylists, appointments: appointments, log: log}
}

func (s *DashboardService) Overview(ctx context.Context) (*DashboardOverview, error) {
	var overview DashboardOverview
	errs := make([]error, 3)

	dayStart := utils.BeginningOfDay(time.Now())

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		overview.ActiveServices, errs[0] = s.services.CountActive(ctx)
	}()
	go func() {
		defer wg.Done()
		overview.ActiveStylists, errs[1] = s.stylists.CountActive(ctx)
	}()
	go func() {
		defer wg.Done()
		overview.AppointmentsToday, errs[2] = s.appointments.CountBetween(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, repoError(s.log, "Dashboard", "load dashboard counts", err)
		}
	}
	return &overview, nil
}
