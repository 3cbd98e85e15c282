package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SpecialDateHoliday = "HOLIDAY"
	SpecialDateExam    = "EXAM"
	SpecialDateEvent   = "EVENT"
)

type SpecialDate struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Date        time.Time  `gorm:"not null" json:"date"`
	Type        string     `gorm:"size:20;not null" json:"type"`
	Description *string    `gorm:"type:text" json:"description"`
	SemesterID  *uuid.UUID `json:"semester_id"`

	Semester *Semester `gorm:"foreignkey:SemesterID" json:"semester,omitempty"`
}

func (s *SpecialDate) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
