package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. Role claims in tokens use these values verbatim.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Supported interface languages.
const (
	LanguageES = "ES"
	LanguageEN = "EN"
)

// User represents an account. UserID is the public login name chosen at
// registration; ID is the internal primary key.
type User struct {
	ID           string        `json:"id" gorm:"primaryKey;size:36"`
	UserID       string        `json:"userId" gorm:"uniqueIndex;not null"`
	Email        string        `json:"email" gorm:"uniqueIndex;not null"`
	Password     string        `json:"-" gorm:"not null"`
	Role         string        `json:"role" gorm:"not null;default:USER"`
	Country      *string       `json:"country,omitempty"`
	Language     string        `json:"language" gorm:"not null;default:ES"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
	DailyRecords []DailyRecord `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ActivityLogs []ActivityLog `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
