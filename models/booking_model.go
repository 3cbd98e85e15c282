package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

type Booking struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"not null;index" json:"user_id"`
	RoomID uuid.UUID `gorm:"not null;uniqueIndex:idx_recurring_instance" json:"room_id"`

	// Date is the calendar day normalized to midnight; StartTime and EndTime
	// are the absolute instants of the occupied [start, end) window.
	Date      time.Time `gorm:"not null;uniqueIndex:idx_recurring_instance;index:idx_room_day" json:"date"`
	StartTime time.Time `gorm:"not null;uniqueIndex:idx_recurring_instance" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Purpose   string `gorm:"type:text;not null" json:"purpose"`
	Attendees int    `gorm:"not null;default:1" json:"attendees"`
	Status    string `gorm:"size:20;not null;default:'PENDING'" json:"status"`

	AdminNote    *string    `gorm:"type:text" json:"admin_note"`
	CheckInTime  *time.Time `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
	IsNoShow     bool       `gorm:"default:false" json:"is_no_show"`

	// Set when this booking was generated from a recurring series. The
	// composite unique index makes re-expanding a series idempotent;
	// standalone bookings carry NULL here and are never blocked by it.
	RecurringBookingID *uuid.UUID `gorm:"uniqueIndex:idx_recurring_instance" json:"recurring_booking_id"`

	User             User              `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Room             Room              `gorm:"foreignkey:RoomID" json:"room,omitempty"`
	RecurringBooking *RecurringBooking `gorm:"foreignkey:RecurringBookingID" json:"recurring_booking,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
