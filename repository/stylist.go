package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonbook-backend/models"
)

type StylistRepository interface {
	FindAll(ctx context.Context) ([]models.Stylist, error)
	FindActive(ctx context.Context) ([]models.Stylist, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Stylist, error)
	Create(ctx context.Context, stylist *models.Stylist) error
	Update(ctx context.Context, stylist *models.Stylist) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountActive(ctx context.Context) (int64, error)

	// FindCollisions checks name, email and phone against existing rows,
	// excluding the given id (uuid.Nil for create flows), and returns every
	// colliding field name.
	FindCollisions(ctx context.Context, name, email, phone string, exclude uuid.UUID) ([]string, error)
}

type GormStylistRepository struct {
	db *gorm.DB
}

func NewGormStylistRepository(db *gorm.DB) *GormStylistRepository {
	return &GormStylistRepository{db: db}
}

func (r *GormStylistRepository) FindAll(ctx context.Context) ([]models.Stylist, error) {
	var stylists []models.Stylist
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&stylists).Error; err != nil {
		return nil, translate("find all stylists", err)
	}
	return stylists, nil
}

func (r *GormStylistRepository) FindActive(ctx context.Context) ([]models.Stylist, error) {
	var stylists []models.Stylist
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&stylists).Error
	if err != nil {
		return nil, translate("find active stylists", err)
	}
	return stylists, nil
}

func (r *GormStylistRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Stylist, error) {
	var stylist models.Stylist
	if err := r.db.WithContext(ctx).First(&stylist, "id = ?", id).Error; err != nil {
		return nil, translate("find stylist by id", err)
	}
	return &stylist, nil
}

func (r *GormStylistRepository) Create(ctx context.Context, stylist *models.Stylist) error {
	return translate("create stylist", r.db.WithContext(ctx).Create(stylist).Error)
}

func (r *GormStylistRepository) Update(ctx context.Context, stylist *models.Stylist) error {
	return translate("update stylist", r.db.WithContext(ctx).Save(stylist).Error)
}

func (r *GormStylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Stylist{}, "id = ?", id)
	if result.Error != nil {
		return translate("delete stylist", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormStylistRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Stylist{}).
		Where("is_active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, translate("count active stylists", err)
	}
	return count, nil
}

// FindCollisions runs the three field checks concurrently; they are
// independent reads, and the caller wants every collision in one round
// trip, not just the first.
func (r *GormStylistRepository) FindCollisions(ctx context.Context, name, email, phone string, exclude uuid.UUID) ([]string, error) {
	checks := []struct {
		field string
		value string
	}{
		{"name", name},
		{"email", email},
		{"phone", phone},
	}

	collisions := make([]string, len(checks))
	errs := make([]error, len(checks))

	var wg sync.WaitGroup
	for i, check := range checks {
		wg.Add(1)
		go func(i int, field, value string) {
			defer wg.Done()
			var count int64
			err := r.db.WithContext(ctx).
				Model(&models.Stylist{}).
				Where(field+" = ? AND id <> ?", value, exclude).
				Count(&count).Error
			if err != nil {
				errs[i] = translate("check stylist "+field, err)
				return
			}
			if count > 0 {
				collisions[i] = field
			}
		}(i, check.field, check.value)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	var found []string
	for _, field := range collisions {
		if field != "" {
			found = append(found, field)
		}
	}
	return found, nil
}
