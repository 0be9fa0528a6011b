package services

import (
	"errors"

	"salonbook-backend/apperrors"
	"salonbook-backend/logger"
	"salonbook-backend/repository"
)

// repoError maps repository sentinels onto the user-facing taxonomy.
// Storage failures are logged here with their cause; the caller only ever
// sees the sanitized message.
func repoError(log *logger.Logger, resource, op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NotFound(resource)
	case errors.Is(err, repository.ErrDuplicate):
		return apperrors.Duplicate(resource+" already exists", nil)
	default:
		log.Error("storage failure", "op", op, "error", err)
		return apperrors.Storage(op, err)
	}
}
