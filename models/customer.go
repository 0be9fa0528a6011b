package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer rows are created the first time a phone number books an
// appointment and reused afterwards.
type Customer struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Phone     string     `gorm:"uniqueIndex;not null" json:"phone"`
	Email     string     `json:"email"`
	Notes     string     `json:"notes"`
	LastVisit *time.Time `json:"last_visit,omitempty"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`

	Appointments []Appointment `gorm:"foreignKey:CustomerID" json:"-"`

	gorm.Model `json:"-"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
