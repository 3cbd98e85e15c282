package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationBookingApproved  = "BOOKING_APPROVED"
	NotificationBookingRejected  = "BOOKING_REJECTED"
	NotificationBookingReminder  = "BOOKING_REMINDER"
	NotificationBookingCancelled = "BOOKING_CANCELLED"
	NotificationRoomMaintenance  = "ROOM_MAINTENANCE"
	NotificationAnnouncement     = "ANNOUNCEMENT"
)

type Notification struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID  uuid.UUID `gorm:"not null;index" json:"user_id"`
	Type    string    `gorm:"size:30;not null" json:"type"`
	Title   string    `gorm:"size:255;not null" json:"title"`
	Message string    `gorm:"type:text;not null" json:"message"`
	IsRead  bool      `gorm:"default:false" json:"is_read"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
