package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeditationTag is a topic label attached to catalog entries. Tag names drive
// the recommendation lexicon matching, compared case-insensitively.
type MeditationTag struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (t *MeditationTag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Meditation is a guided session in the catalog. Duration is in minutes.
type Meditation struct {
	ID          string          `json:"id" gorm:"primaryKey;size:36"`
	Title       string          `json:"title" gorm:"not null"`
	Description string          `json:"description" gorm:"not null"`
	YoutubeURL  string          `json:"youtubeUrl" gorm:"not null"`
	Duration    int             `json:"duration" gorm:"not null"`
	IsActive    bool            `json:"isActive" gorm:"not null;default:true"`
	Tags        []MeditationTag `json:"tags" gorm:"many2many:meditation_to_tags"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (m *Meditation) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// HasAnyTag reports whether any of the meditation's tag names, lowercased,
// appears in the given set.
func (m *Meditation) HasAnyTag(names map[string]struct{}) bool {
	for _, tag := range m.Tags {
		if _, ok := names[strings.ToLower(tag.Name)]; ok {
			return true
		}
	}
	return false
}
