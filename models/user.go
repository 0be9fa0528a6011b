package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonbook-backend/utils"
)

const (
	RoleAdmin   = "admin"
	RoleStylist = "stylist"
)

// User is an account for the admin/stylist area. Stylist accounts link to
// their Stylist record through StylistID.
type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Phone     string     `json:"phone"`
	Password  string     `gorm:"not null" json:"-"`
	Name      string     `gorm:"not null" json:"name"`
	Role      string     `gorm:"type:varchar(20);not null" json:"role"`
	StylistID *uuid.UUID `gorm:"type:uuid;index" json:"stylist_id,omitempty"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`

	gorm.Model `json:"-"`
}

// Hash the password before the row is written.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
