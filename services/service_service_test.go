package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook-backend/apperrors"
	"salonbook-backend/models"
	"salonbook-backend/validation"
)

func TestServiceCreate(t *testing.T) {
	var created *models.Service
	repo := &mockServiceRepo{
		createFunc: func(ctx context.Context, service *models.Service) error {
			created = service
			return nil
		},
	}
	svc := NewServiceService(repo, validation.NewChecker(), testLogger())

	got, err := svc.Create(context.Background(), validation.ServiceInput{
		Name:            "Haircut",
		DurationMinutes: 30,
		Price:           25,
		IsActive:        true,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created, got)
	assert.Equal(t, "Haircut", created.Name)
	assert.Equal(t, 30, created.DurationMinutes)
	assert.True(t, created.IsActive)
}

func TestServiceCreateInvalidInputSkipsRepo(t *testing.T) {
	called := false
	repo := &mockServiceRepo{
		createFunc: func(ctx context.Context, service *models.Service) error {
			called = true
			return nil
		},
	}
	svc := NewServiceService(repo, validation.NewChecker(), testLogger())

	_, err := svc.Create(context.Background(), validation.ServiceInput{Price: 25})
	require.Error(t, err)
	assert.False(t, called)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Fields["name"], "is required")
	assert.Contains(t, appErr.Fields["duration_minutes"], "is required")
}

func TestServiceGetInvalidID(t *testing.T) {
	svc := NewServiceService(&mockServiceRepo{}, validation.NewChecker(), testLogger())

	_, err := svc.Get(context.Background(), "not-a-uuid")
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidInput, appErr.Code)
}

func TestServiceGetMissing(t *testing.T) {
	svc := NewServiceService(&mockServiceRepo{}, validation.NewChecker(), testLogger())

	_, err := svc.Get(context.Background(), uuid.NewString())
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestServiceUpdate(t *testing.T) {
	id := uuid.New()
	existing := &models.Service{ID: id, Name: "Haircut", DurationMinutes: 30, Price: 25}

	var saved *models.Service
	repo := &mockServiceRepo{
		findByIDFunc: func(ctx context.Context, got uuid.UUID) (*models.Service, error) {
			assert.Equal(t, id, got)
			return existing, nil
		},
		updateFunc: func(ctx context.Context, service *models.Service) error {
			saved = service
			return nil
		},
	}
	svc := NewServiceService(repo, validation.NewChecker(), testLogger())

	_, err := svc.Update(context.Background(), validation.ServiceEditInput{
		ID: id.String(),
		ServiceInput: validation.ServiceInput{
			Name:            "Haircut",
			DurationMinutes: 45,
			Price:           55.5,
			IsActive:        true,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, id, saved.ID)
	assert.Equal(t, 45, saved.DurationMinutes)
	assert.Equal(t, 55.5, saved.Price)
}

func TestServiceDeleteMissing(t *testing.T) {
	svc := NewServiceService(&mockServiceRepo{}, validation.NewChecker(), testLogger())

	err := svc.Delete(context.Background(), uuid.NewString())
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
