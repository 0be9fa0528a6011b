package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonbook-backend/models"
)

type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	// GetOrCreate reuses the customer row for a known phone number and
	// refreshes the name/email it was submitted with.
	GetOrCreate(ctx context.Context, name, phone, email string) (*models.Customer, error)
}

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return nil, translate("find customer by id", err)
	}
	return &customer, nil
}

func (r *GormCustomerRepository) GetOrCreate(ctx context.Context, name, phone, email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).First(&customer, "phone = ?", phone).Error
	if err == nil {
		customer.Name = name
		if email != "" {
			customer.Email = email
		}
		if err := r.db.WithContext(ctx).Save(&customer).Error; err != nil {
			return nil, translate("update customer", err)
		}
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translate("find customer by phone", err)
	}

	customer = models.Customer{Name: name, Phone: phone, Email: email, IsActive: true}
	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, translate("create customer", err)
	}
	return &customer, nil
}
