package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoomTypeLecture     = "LECTURE"
	RoomTypeComputerLab = "COMPUTER_LAB"
	RoomTypeLaboratory  = "LABORATORY"
	RoomTypeMeeting     = "MEETING"
	RoomTypeStudy       = "STUDY"
)

type Room struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:100;not null;unique" json:"name"`
	Type        string    `gorm:"size:20;not null;default:'LECTURE'" json:"type"`
	Floor       *int      `json:"floor"`
	Building    *string   `gorm:"size:100" json:"building"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	Equipment   *string   `gorm:"type:text" json:"equipment"`
	Description *string   `gorm:"type:text" json:"description"`

	// Wall-clock "HH:MM" strings; nil means the room has no operating-hours window.
	OpenTime  *string `gorm:"size:5" json:"open_time"`
	CloseTime *string `gorm:"size:5" json:"close_time"`

	IsActive           bool `gorm:"default:true" json:"is_active"`
	MaxBookingHours    *int `json:"max_booking_hours"`
	AdvanceBookingDays *int `json:"advance_booking_days"`
	RequireApproval    bool `gorm:"default:true" json:"require_approval"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
