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

// ServiceService manages the salon's service catalog.
type ServiceService struct {
	repo    repository.ServiceRepository
	checker *validation.Checker
	log     *logger.Logger
}

func NewServiceService(repo repository.ServiceRepository, checker *validation.Checker, log *logger.Logger) *ServiceService {
	return &ServiceService{repo: repo, checker: checker, log: log}
}

func (s *ServiceService) List(ctx context.Context) ([]models.Service, error) {
	services, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, repoError(s.log, "Service", "list services", err)
	}
	return services, nil
}

func (s *ServiceService) ListActive(ctx context.Context) ([]models.Service, error) {
	services, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, repoError(s.log, "Service", "list active services", err)
	}
	return services, nil
}

func (s *ServiceService) Get(ctx context.Context, id string) (*models.Service, error) {
	serviceID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid service id")
	}
	service, err := s.repo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, repoError(s.log, "Service", "get service", err)
	}
	return service, nil
}

func (s *ServiceService) Create(ctx context.Context, in validation.ServiceInput) (*models.Service, error) {
	if err := s.checker.Check(in); err != nil {
		return nil, err
	}

	service := &models.Service{
		Name:            in.Name,
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		Price:           in.Price,
		Category:        in.Category,
		IsActive:        in.IsActive,
	}
	if err := s.repo.Create(ctx, service); err != nil {
		return nil, repoError(s.log, "Service", "create service", err)
	}

	s.log.Info("service created", "id", service.ID, "name", service.Name)
	return service, nil
}

func (s *ServiceService) Update(ctx context.Context, in validation.ServiceEditInput) (*models.Service, error) {
	if err := s.checker.Check(in); err != nil {
		return nil, err
	}

	serviceID, err := uuid.Parse(in.ID)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid service id")
	}
	service, err := s.repo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, repoError(s.log, "Service", "load service for update", err)
	}

	service.Name = in.Name
	service.Description = in.Description
	service.DurationMinutes = in.DurationMinutes
	service.Price = in.Price
	service.Category = in.Category
	service.IsActive = in.IsActive

	if err := s.repo.Update(ctx, service); err != nil {
		return nil, repoError(s.log, "Service", "update service", err)
	}

	s.log.Info("service updated", "id", service.ID)
	return service, nil
}

func (s *ServiceService) Delete(ctx context.Context, id string) error {
	serviceID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.InvalidInput("Invalid service id")
	}
	if err := s.repo.Delete(ctx, serviceID); err != nil {
		return repoError(s.log, "Service", "delete service", err)
	}
	s.log.Info("service deleted", "id", serviceID)
	return nil
}
