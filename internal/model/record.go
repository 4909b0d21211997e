package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyRecord is one meditation session's before/after data for a user.
// A user may log several sessions on the same day; there is no per-day
// uniqueness constraint.
type DailyRecord struct {
	ID              string          `json:"id" gorm:"primaryKey;size:36"`
	UserID          string          `json:"userId" gorm:"index;not null;size:36"`
	Date            time.Time       `json:"date" gorm:"not null"`
	MeditationType  *string         `json:"meditationType,omitempty"`
	MeditationNotes *string         `json:"meditationNotes,omitempty"`
	FeelingRatings  []FeelingRating `json:"feelingRatings" gorm:"foreignKey:DailyRecordID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (r *DailyRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// FeelingRating is one feeling's before/after score within a DailyRecord.
// Either side may be absent: a nil rating means the feeling was not rated at
// that point, which is distinct from a rating of zero.
type FeelingRating struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	DailyRecordID string    `json:"dailyRecordId" gorm:"index;not null;size:36"`
	FeelingID     string    `json:"feelingId" gorm:"index;not null;size:36"`
	BeforeRating  *int      `json:"beforeRating" gorm:"check:before_rating IS NULL OR (before_rating >= 1 AND before_rating <= 10)"`
	AfterRating   *int      `json:"afterRating" gorm:"check:after_rating IS NULL OR (after_rating >= 1 AND after_rating <= 10)"`
	Feeling       Feeling   `json:"feeling" gorm:"foreignKey:FeelingID"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r *FeelingRating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
