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

type StylistService struct {
	repo    repository.StylistRepository
	checker *validation.Checker
	log     *logger.Logger
}

func NewStylistService(repo repository.StylistRepository, checker *validation.Checker, log *logger.Logger) *StylistService {
	return &StylistService{repo: repo, checker: checker, log: log}
}

func (s *StylistService) List(ctx context.Context) ([]models.Stylist, error) {
	stylists, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, repoError(s.log, "Stylist", "list stylists", err)
	}
	return stylists, nil
}

func (s *StylistService) ListActive(ctx context.Context) ([]models.Stylist, error) {
	stylists, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, repoError(s.log, "Stylist", "list active stylists", err)
	}
	return stylists, nil
}

func (s *StylistService) Get(ctx context.Context, id string) (*models.Stylist, error) {
	stylistID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid stylist id")
	}
	stylist, err := s.repo.FindByID(ctx, stylistID)
	if err != nil {
		return nil, repoError(s.log, "Stylist", "get stylist", err)
	}
	return stylist, nil
}

func (s *StylistService) Create(ctx context.Context, in validation.StylistInput) (*models.Stylist, error) {
	if err := s.checker.Check(in); err != nil {
		return nil, err
	}
	if err := s.checkCollisions(ctx, in, uuid.Nil); err != nil {
		return nil, err
	}

	stylist := &models.Stylist{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Description: in.Description,
		IsActive:    in.IsActive,
	}
	if err := s.repo.Create(ctx, stylist); err != nil {
		return nil, repoError(s.log, "Stylist", "create stylist", err)
	}

	s.log.Info("stylist created", "id", stylist.ID, "name", stylist.Name)
	return stylist, nil
}

func (s *StylistService) Update(ctx context.Context, in validation.StylistEditInput) (*models.Stylist, error) {
	if err := s.checker.Check(in); err != nil {
		return nil, err
	}

	stylistID, err := uuid.Parse(in.ID)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid stylist id")
	}
	stylist, err := s.repo.FindByID(ctx, stylistID)
	if err != nil {
		return nil, repoError(s.log, "Stylist", "load stylist for update", err)
	}

	if err := s.checkCollisions(ctx, in.StylistInput, stylistID); err != nil {
		return nil, err
	}

	stylist.Name = in.Name
	stylist.Email = in.Email
	stylist.Phone = in.Phone
	stylist.Description = in.Description
	stylist.IsActive = in.IsActive

	if err := s.repo.Update(ctx, stylist); err != nil {
		return nil, repoError(s.log, "Stylist", "update stylist", err)
	}

	s.log.Info("stylist updated", "id", stylist.ID)
	return stylist, nil
}

func (s *StylistService) Delete(ctx context.Context, id string) error {
	stylistID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.InvalidInput("Invalid stylist id")
	}
	if err := s.repo.Delete(ctx, stylistID); err != nil {
		return repoError(s.log, "Stylist", "delete stylist", err)
	}
	s.log.Info("stylist deleted", "id", stylistID)
	return nil
}

// checkCollisions surfaces every colliding field at once so the user does
// not fix one duplicate only to discover the next on resubmit. The final
// authority stays with the unique indexes; this is a best-effort UX check.
func (s *StylistService) checkCollisions(ctx context.Context, in validation.StylistInput, exclude uuid.UUID) error {
	collisions, err := s.repo.FindCollisions(ctx, in.Name, in.Email, in.Phone, exclude)
	if err != nil {
		return repoError(s.log, "Stylist", "check stylist uniqueness", err)
	}
	if len(collisions) == 0 {
		return nil
	}

	fields := apperrors.FieldErrors{}
	for _, field := range collisions {
		fields.Add(field, "is already in use")
	}
	return apperrors.Duplicate("A stylist with these details already exists", fields)
}
