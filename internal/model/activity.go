package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity actions recorded in the audit trail.
const (
	ActionLogin               = "LOGIN"
	ActionLogout              = "LOGOUT"
	ActionRegister            = "REGISTER"
	ActionCreateRecord        = "CREATE_RECORD"
	ActionUpdateRecord        = "UPDATE_RECORD"
	ActionDeleteRecord        = "DELETE_RECORD"
	ActionViewDashboard       = "VIEW_DASHBOARD"
	ActionViewAdmin           = "VIEW_ADMIN"
	ActionCreateFeeling       = "CREATE_FEELING"
	ActionUpdateFeeling       = "UPDATE_FEELING"
	ActionDeleteFeeling       = "DELETE_FEELING"
	ActionCreateMeditation    = "CREATE_MEDITATION"
	ActionUpdateMeditation    = "UPDATE_MEDITATION"
	ActionDeleteMeditation    = "DELETE_MEDITATION"
	ActionCreateMeditationTag = "CREATE_MEDITATION_TAG"
	ActionUpdateMeditationTag = "UPDATE_MEDITATION_TAG"
	ActionDeleteMeditationTag = "DELETE_MEDITATION_TAG"
	ActionCreateUser          = "CREATE_USER"
	ActionUpdateUser          = "UPDATE_USER"
	ActionDeleteUser          = "DELETE_USER"
)

// ActivityLog is an append-only audit row. Rows are never updated or deleted
// by the application.
type ActivityLog struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    string    `json:"userId" gorm:"index;not null;size:36"`
	Action    string    `json:"action" gorm:"not null"`
	Details   string    `json:"details"`
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
}

func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
