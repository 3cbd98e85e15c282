package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PatternDaily  = "DAILY"
	PatternWeekly = "WEEKLY"
	PatternCustom = "CUSTOM"
)

// IntSlice stores a set of weekday indices as a JSON array column.
type IntSlice []int

func (s IntSlice) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *IntSlice) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return errors.New("unsupported type for IntSlice")
}

func (s IntSlice) Contains(n int) bool {
	for _, v := range s {
		if v == n {
			return true
		}
	}
	return false
}

type RecurringBooking struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"not null;index" json:"user_id"`
	RoomID uuid.UUID `gorm:"not null" json:"room_id"`

	StartDate time.Time  `gorm:"not null" json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	Pattern    string   `gorm:"size:20;not null" json:"pattern"`
	DaysOfWeek IntSlice `gorm:"type:text" json:"days_of_week"`

	// Wall-clock-of-day strings ("HH:MM") applied to every generated day.
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Purpose string `gorm:"type:text;not null" json:"purpose"`

	User     User      `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Room     Room      `gorm:"foreignkey:RoomID" json:"room,omitempty"`
	Bookings []Booking `gorm:"foreignkey:RecurringBookingID" json:"bookings,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *RecurringBooking) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
