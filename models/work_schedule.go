package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkSchedule is one weekly availability window for a stylist.
// Weekday follows time.Weekday numbering: 0 = Sunday through 6 = Saturday.
// Times are "HH:MM" 24h strings; start < end is enforced at validation time.
type WorkSchedule struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StylistID uuid.UUID `gorm:"type:uuid;index;not null" json:"stylist_id"`
	Weekday   int       `gorm:"not null" json:"weekday"`
	StartTime string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5);not null" json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}

func (w *WorkSchedule) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return
}
