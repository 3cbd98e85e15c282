package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AnnouncementInfo    = "INFO"
	AnnouncementWarning = "WARNING"
	AnnouncementUrgent  = "URGENT"
)

type Announcement struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Title      string     `gorm:"size:255;not null" json:"title"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	Type       string     `gorm:"size:20;not null;default:'INFO'" json:"type"`
	IsPinned   bool       `gorm:"default:false" json:"is_pinned"`
	PublishDate time.Time `gorm:"not null" json:"publish_date"`
	ExpiryDate *time.Time `json:"expiry_date"`

	CreatedBy uuid.UUID `gorm:"not null" json:"created_by"`
	Creator   User      `gorm:"foreignkey:CreatedBy" json:"creator,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
