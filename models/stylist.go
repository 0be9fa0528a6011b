package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stylist carries unique indexes on name, email and phone as the final
// authority behind the concurrent pre-check in the repository layer.
type Stylist struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone       string    `gorm:"uniqueIndex;not null" json:"phone"`
	Description string    `json:"description"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	WorkSchedules   []WorkSchedule   `gorm:"foreignKey:StylistID" json:"-"`
	OfferedServices []OfferedService `gorm:"foreignKey:StylistID" json:"-"`
}

func (s *Stylist) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
