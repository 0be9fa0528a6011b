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

type AuthService struct {
	users   repository.UserRepository
	checker *validation.Checker
	secret  string
	log     *logger.Logger
}

func NewAuthService(users repository.UserRepository, checker *validation.Checker, secret string, log *logger.Logger) *AuthService {
	return &AuthService{users: users, checker: checker, secret: secret, log: log}
}

// Register creates an admin account. The unique email index is the
// duplicate authority here; there is no pre-check.
func (s *AuthService) Register(ctx context.Context, in validation.RegisterInput) (*models.User, error) {
	if err := s.checker.Check(in); err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    in.Email,
		Phone:    in.Phone,
		Name:     in.Name,
		Password: in.Password, // hashed in BeforeCreate
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			fields := apperrors.FieldErrors{}
			fields.Add("email", "is already registered")
			return nil, apperrors.Duplicate("Account already exists", fields)
		}
		return nil, repoError(s.log, "User", "create user", err)
	}

	s.log.Info("user registered", "id", user.ID, "email", user.Email)
	return user, nil
}

// Login checks credentials and returns the user with a signed session
// token. Lookup and password failures are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in validation.LoginInput) (*models.User, string, error) {
	if err := s.checker.Check(in); err != nil {
		return nil, "", err
	}

	user, err := s.users.FindByIdentifier(ctx, in.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", apperrors.Unauthorized("Invalid credentials")
		}
		return nil, "", repoError(s.log, "User", "find user for login", err)
	}
	if !user.IsActive || !utils.CheckPasswordHash(in.Password, user.Password) {
		return nil, "", apperrors.Unauthorized("Invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Role, s.secret)
	if err != nil {
		s.log.Error("failed to sign session token", "error", err)
		return nil, "", apperrors.Storage("sign session token", err)
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		// Best effort; a stale last_login must not block sign-in.
		s.log.Warn("failed to update last login", "id", user.ID, "error", err)
	}

	return user, token, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, id string) (*models.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.Unauthorized("Invalid session")
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Unauthorized("Session user no longer exists")
		}
		return nil, repoError(s.log, "User", "load current user", err)
	}
	return user, nil
}

func (s *AuthService) SetPassword(ctx context.Context, id string, in validation.SetPasswordInput) error {
	if err := s.checker.Check(in); err != nil {
		return err
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.Unauthorized("Invalid session")
	}
	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return apperrors.Storage("hash password", err)
	}
	if err := s.users.UpdatePassword(ctx, userID, hashed); err != nil {
		return repoError(s.log, "User", "update password", err)
	}

	s.log.Info("password updated", "id", userID)
	return nil
}
