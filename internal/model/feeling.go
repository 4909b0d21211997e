package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feeling categories. The category of a feeling never changes meaning once
// assigned: GOOD feelings are desirable states, BAD feelings undesirable ones.
const (
	CategoryGood = "GOOD"
	CategoryBad  = "BAD"
)

// Feeling is a named emotional state users rate before and after meditating.
// Names are kept in Spanish and English; NameEs is the canonical key used by
// the aggregation engine.
type Feeling struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	NameEs    string    `json:"nameEs" gorm:"not null"`
	NameEn    string    `json:"nameEn" gorm:"not null"`
	Category  string    `json:"category" gorm:"not null"`
	IsActive  bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (f *Feeling) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
