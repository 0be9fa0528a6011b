package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OfferedService links a stylist to a service from the catalog, with
// optional per-stylist price and duration overrides. One row per
// (stylist, service) pair, enforced by the composite unique index.
type OfferedService struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StylistID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stylist_service,priority:1" json:"stylist_id"`
	ServiceID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stylist_service,priority:2" json:"service_id"`
	CustomPrice           *float64  `gorm:"type:decimal(10,2)" json:"custom_price,omitempty"`
	CustomDurationMinutes *int      `json:"custom_duration_minutes,omitempty"`
	IsActive              bool      `gorm:"default:true" json:"is_active"`
	CreatedAt             time.Time `json:"created_at"`

	Service Service `gorm:"foreignKey:ServiceID" json:"service"`
}

func (o *OfferedService) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}

// EffectivePrice falls back to the base service price when no override is set.
func (o *OfferedService) EffectivePrice() float64 {
	if o.CustomPrice != nil {
		return *o.CustomPrice
	}
	return o.Service.Price
}

// EffectiveDuration falls back to the base service duration when no override is set.
func (o *OfferedService) EffectiveDuration() int {
	if o.CustomDurationMinutes != nil {
		return *o.CustomDurationMinutes
	}
	return o.Service.DurationMinutes
}
