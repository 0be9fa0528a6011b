package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"salonbook-backend/apperrors"
	"salonbook-backend/logger"
	"salonbook-backend/models"
	"salonbook-backend/repository"
	"salonbook-backend/validation"
)

// OfferedServiceService manages which catalog services a stylist offers,
// with optional price/duration overrides.
type OfferedServiceService struct {
	offered  repository.OfferedServiceRepository
	stylists repository.StylistRepository
	catalog  repository.ServiceRepository
	checker  *validation.Checker
	log      *logger.Logger
}

func NewOfferedServiceService(
	offered repository.OfferedServiceRepository,
	stylists repository.StylistRepository,
	catalog repository.ServiceRepository,
	checker *validation.Checker,
	log *logger.Logger,
) *OfferedServiceService {
	return &OfferedServiceService{
		offered:  offered,
		stylists: stylists,
		catalog:  catalog,
		checker:  checker,
		log:      log,
	}
}

func (s *OfferedServiceService) ListForStylist(ctx context.Context, stylistID string) ([]models.OfferedService, error) {
	id, err := uuid.Parse(stylistID)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid stylist id")
	}
	offered, err := s.offered.FindByStylist(ctx, id)
	if err != nil {
		return nil, repoError(s.log, "Offered service", "list offered services", err)
	}
	return offered, nil
}

// ListActiveForStylist returns the stylist's active offerings whose catalog
// service is itself still active; this is the public-facing view.
func (s *OfferedServiceService) ListActiveForStylist(ctx context.Context, stylistID string) ([]models.OfferedService, error) {
	id, err := uuid.Parse(stylistID)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid stylist id")
	}
	offered, err := s.offered.FindActiveByStylist(ctx, id)
	if err != nil {
		return nil, repoError(s.log, "Offered service", "list active offered services", err)
	}

	visible := offered[:0]
	for _, o := range offered {
		if o.Service.IsActive {
			visible = append(visible, o)
		}
	}
	return visible, nil
}

func (s *OfferedServiceService) Create(ctx context.Context, in validation.OfferedServiceInput) (*models.OfferedService, error) {
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

	if _, err := s.stylists.FindByID(ctx, stylistID); err != nil {
		return nil, repoError(s.log, "Stylist", "load stylist for offered service", err)
	}
	if _, err := s.catalog.FindByID(ctx, serviceID); err != nil {
		return nil, repoError(s.log, "Service", "load service for offered service", err)
	}

	// Pre-check for the pair; the composite unique index stays the backstop.
	if _, err := s.offered.FindByPair(ctx, stylistID, serviceID); err == nil {
		fields := apperrors.FieldErrors{}
		fields.Add("service_id", "is already offered by this stylist")
		return nil, apperrors.Duplicate("Service is already offered", fields)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, repoError(s.log, "Offered service", "check offered service pair", err)
	}

	offered := &models.OfferedService{
		StylistID:             stylistID,
		ServiceID:             serviceID,
		CustomPrice:           in.CustomPrice,
		CustomDurationMinutes: in.CustomDurationMinutes,
		IsActive:              in.IsActive,
	}
	if err := s.offered.Create(ctx, offered); err != nil {
		return nil, repoError(s.log, "Offered service", "create offered service", err)
	}

	s.log.Info("offered service created",
		"id", offered.ID,
		"stylist_id", stylistID,
		"service_id", serviceID,
	)
	return offered, nil
}

func (s *OfferedServiceService) SetActive(ctx context.Context, id string, active bool, acting uuid.UUID) (*models.OfferedService, error) {
	offeredID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid offered service id")
	}

	offered, err := s.offered.FindByID(ctx, offeredID)
	if err != nil {
		return nil, repoError(s.log, "Offered service", "load offered service", err)
	}
	if acting != uuid.Nil && offered.StylistID != acting {
		return nil, apperrors.Forbidden("Offered service belongs to another stylist")
	}

	offered.IsActive = active
	if err := s.offered.Update(ctx, offered); err != nil {
		return nil, repoError(s.log, "Offered service", "update offered service", err)
	}
	return offered, nil
}

func (s *OfferedServiceService) Delete(ctx context.Context, id string, acting uuid.UUID) error {
	offeredID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.InvalidInput("Invalid offered service id")
	}

	offered, err := s.offered.FindByID(ctx, offeredID)
	if err != nil {
		return repoError(s.log, "Offered service", "load offered service for delete", err)
	}
	if acting != uuid.Nil && offered.StylistID != acting {
		return apperrors.Forbidden("Offered service belongs to another stylist")
	}

	if err := s.offered.Delete(ctx, offeredID); err != nil {
		return repoError(s.log, "Offered service", "delete offered service", err)
	}
	s.log.Info("offered service deleted", "id", offeredID)
	return nil
}
