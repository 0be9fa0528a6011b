package services

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"salonbook-backend/logger"
	"salonbook-backend/models"
	"salonbook-backend/repository"
)

// Mock repositories with overridable behavior per test. Methods without an
// override return the not-found sentinel or an empty result.

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Output: io.Discard})
}

type mockServiceRepo struct {
	findAllFunc     func(ctx context.Context) ([]models.Service, error)
	findActiveFunc  func(ctx context.Context) ([]models.Service, error)
	findByIDFunc    func(ctx context.Context, id uuid.UUID) (*models.Service, error)
	createFunc      func(ctx context.Context, service *models.Service) error
	updateFunc      func(ctx context.Context, service *models.Service) error
	deleteFunc      func(ctx context.Context, id uuid.UUID) error
	countActiveFunc func(ctx context.Context) (int64, error)
}

func (m *mockServiceRepo) FindAll(ctx context.Context) ([]models.Service, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockServiceRepo) FindActive(ctx context.Context) ([]models.Service, error) {
	if m.findActiveFunc != nil {
		return m.findActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockServiceRepo) Create(ctx context.Context, service *models.Service) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, service)
	}
	return nil
}

func (m *mockServiceRepo) Update(ctx context.Context, service *models.Service) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, service)
	}
	return nil
}

func (m *mockServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return repository.ErrNotFound
}

func (m *mockServiceRepo) CountActive(ctx context.Context) (int64, error) {
	if m.countActiveFunc != nil {
		return m.countActiveFunc(ctx)
	}
	return 0, nil
}

type mockStylistRepo struct {
	findAllFunc        func(ctx context.Context) ([]models.Stylist, error)
	findActiveFunc     func(ctx context.Context) ([]models.Stylist, error)
	findByIDFunc       func(ctx context.Context, id uuid.UUID) (*models.Stylist, error)
	createFunc         func(ctx context.Context, stylist *models.Stylist) error
	updateFunc         func(ctx context.Context, stylist *models.Stylist) error
	deleteFunc         func(ctx context.Context, id uuid.UUID) error
	countActiveFunc    func(ctx context.Context) (int64, error)
	findCollisionsFunc func(ctx context.Context, name, email, phone string, exclude uuid.UUID) ([]string, error)
}

func (m *mockStylistRepo) FindAll(ctx context.Context) ([]models.Stylist, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockStylistRepo) FindActive(ctx context.Context) ([]models.Stylist, error) {
	if m.findActiveFunc != nil {
		return m.findActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockStylistRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Stylist, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockStylistRepo) Create(ctx context.Context, stylist *models.Stylist) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, stylist)
	}
	return nil
}

func (m *mockStylistRepo) Update(ctx context.Context, stylist *models.Stylist) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, stylist)
	}
	return nil
}

func (m *mockStylistRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return repository.ErrNotFound
}

func (m *mockStylistRepo) CountActive(ctx context.Context) (int64, error) {
	if m.countActiveFunc != nil {
		return m.countActiveFunc(ctx)
	}
	return 0, nil
}

func (m *mockStylistRepo) FindCollisions(ctx context.Context, name, email, phone string, exclude uuid.UUID) ([]string, error) {
	if m.findCollisionsFunc != nil {
		return m.findCollisionsFunc(ctx, name, email, phone, exclude)
	}
	return nil, nil
}

type mockScheduleRepo struct {
	findByStylistFunc func(ctx context.Context, stylistID uuid.UUID) ([]models.WorkSchedule, error)
	findByIDFunc      func(ctx context.Context, id uuid.UUID) (*models.WorkSchedule, error)
	createFunc        func(ctx context.Context, schedule *models.WorkSchedule) error
	deleteFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *mockScheduleRepo) FindByStylist(ctx context.Context, stylistID uuid.UUID) ([]models.WorkSchedule, error) {
	if m.findByStylistFunc != nil {
		return m.findByStylistFunc(ctx, stylistID)
	}
	return nil, nil
}

func (m *mockScheduleRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.WorkSchedule, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockScheduleRepo) Create(ctx context.Context, schedule *models.WorkSchedule) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, schedule)
	}
	return nil
}

func (m *mockScheduleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return repository.ErrNotFound
}

type mockOfferedRepo struct {
	findByStylistFunc       func(ctx context.Context, stylistID uuid.UUID) ([]models.OfferedService, error)
	findActiveByStylistFunc func(ctx context.Context, stylistID uuid.UUID) ([]models.OfferedService, error)
	findByIDFunc            func(ctx context.Context, id uuid.UUID) (*models.OfferedService, error)
	findByPairFunc          func(ctx context.Context, stylistID, serviceID uuid.UUID) (*models.OfferedService, error)
	createFunc              func(ctx context.Context, offered *models.OfferedService) error
	updateFunc              func(ctx context.Context, offered *models.OfferedService) error
	deleteFunc              func(ctx context.Context, id uuid.UUID) error
}

func (m *mockOfferedRepo) FindByStylist(ctx context.Context, stylistID uuid.UUID) ([]models.OfferedService, error) {
	if m.findByStylistFunc != nil {
		return m.findByStylistFunc(ctx, stylistID)
	}
	return nil, nil
}

func (m *mockOfferedRepo) FindActiveByStylist(ctx context.Context, stylistID uuid.UUID) ([]models.OfferedService, error) {
	if m.findActiveByStylistFunc != nil {
		return m.findActiveByStylistFunc(ctx, stylistID)
	}
	return nil, nil
}

func (m *mockOfferedRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.OfferedService, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockOfferedRepo) FindByPair(ctx context.Context, stylistID, serviceID uuid.UUID) (*models.OfferedService, error) {
	if m.findByPairFunc != nil {
		return m.findByPairFunc(ctx, stylistID, serviceID)
	}
	return nil, repository.ErrNotFound
}

func (m *mockOfferedRepo) Create(ctx context.Context, offered *models.OfferedService) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, offered)
	}
	return nil
}

func (m *mockOfferedRepo) Update(ctx context.Context, offered *models.OfferedService) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, offered)
	}
	return nil
}

func (m *mockOfferedRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return repository.ErrNotFound
}

type mockCustomerRepo struct {
	findByIDFunc    func(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	getOrCreateFunc func(ctx context.Context, name, phone, email string) (*models.Customer, error)
}

func (m *mockCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockCustomerRepo) GetOrCreate(ctx context.Context, name, phone, email string) (*models.Customer, error) {
	if m.getOrCreateFunc != nil {
		return m.getOrCreateFunc(ctx, name, phone, email)
	}
	return &models.Customer{ID: uuid.New(), Name: name, Phone: phone, Email: email}, nil
}

type mockUserRepo struct {
	findByIDFunc         func(ctx context.Context, id uuid.UUID) (*models.User, error)
	findByIdentifierFunc func(ctx context.Context, identifier string) (*models.User, error)
	createFunc           func(ctx context.Context, user *models.User) error
	updateLastLoginFunc  func(ctx context.Context, id uuid.UUID, at time.Time) error
	updatePasswordFunc   func(ctx context.Context, id uuid.UUID, hashed string) error
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) FindByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	if m.findByIdentifierFunc != nil {
		return m.findByIdentifierFunc(ctx, identifier)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if m.updateLastLoginFunc != nil {
		return m.updateLastLoginFunc(ctx, id, at)
	}
	return nil
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hashed string) error {
	if m.updatePasswordFunc != nil {
		return m.updatePasswordFunc(ctx, id, hashed)
	}
	return repository.ErrNotFound
}

type mockAppointmentRepo struct {
	createFunc                func(ctx context.Context, appointment *models.Appointment) error
	findByIDFunc              func(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	findForDayFunc            func(ctx context.Context, stylistID uuid.UUID, from, to time.Time) ([]models.Appointment, error)
	findUpcomingByStylistFunc func(ctx context.Context, stylistID uuid.UUID, from time.Time) ([]models.Appointment, error)
	countBetweenFunc          func(ctx context.Context, from, to time.Time) (int64, error)
	findDueRemindersFunc      func(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	markReminderSentFunc      func(ctx context.Context, id uuid.UUID, at time.Time) error
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, appointment)
	}
	return nil
}

func (m *mockAppointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockAppointmentRepo) FindForDay(ctx context.Context, stylistID uuid.UUID, from, to time.Time) ([]models.Appointment, error) {
	if m.findForDayFunc != nil {
		return m.findForDayFunc(ctx, stylistID, from, to)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) FindUpcomingByStylist(ctx context.Context, stylistID uuid.UUID, from time.Time) ([]models.Appointment, error) {
	if m.findUpcomingByStylistFunc != nil {
		return m.findUpcomingByStylistFunc(ctx, stylistID, from)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	if m.countBetweenFunc != nil {
		return m.countBetweenFunc(ctx, from, to)
	}
	return 0, nil
}

func (m *mockAppointmentRepo) FindDueReminders(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	if m.findDueRemindersFunc != nil {
		return m.findDueRemindersFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	if m.markReminderSentFunc != nil {
		return m.markReminderSentFunc(ctx, id, at)
	}
	return nil
}
