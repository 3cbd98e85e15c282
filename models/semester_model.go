package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Semester struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`
	IsActive  bool      `gorm:"default:false" json:"is_active"`

	SpecialDates []SpecialDate `gorm:"foreignkey:SemesterID" json:"special_dates,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (s *Semester) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
