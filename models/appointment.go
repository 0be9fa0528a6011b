package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment captures price and duration at booking time so later catalog
// edits do not rewrite history.
type Appointment struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"customer_id"`
	StylistID       uuid.UUID  `gorm:"type:uuid;index;not null" json:"stylist_id"`
	ServiceID       uuid.UUID  `gorm:"type:uuid;index;not null" json:"service_id"`
	StartsAt        time.Time  `gorm:"index;not null" json:"starts_at"`
	DurationMinutes int        `gorm:"not null" json:"duration_minutes"`
	Price           float64    `gorm:"type:decimal(10,2);not null" json:"price"`
	Status          string     `gorm:"type:varchar(20);default:'scheduled'" json:"status"`
	ReminderSentAt  *time.Time `json:"reminder_sent_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"customer"`
	Stylist  Stylist  `gorm:"foreignKey:StylistID" json:"stylist"`
	Service  Service  `gorm:"foreignKey:ServiceID" json:"service"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// EndsAt is the exclusive end of the booked slot.
func (a *Appointment) EndsAt() time.Time {
	return a.StartsAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}
