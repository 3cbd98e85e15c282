package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleStudent        = "STUDENT"
	RoleTeacher        = "TEACHER"
	RoleStaff          = "STAFF"
	RoleDepartmentHead = "DEPARTMENT_HEAD"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username string    `gorm:"size:50;not null;unique" json:"username"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'STUDENT'" json:"role"`

	StudentID  *string `gorm:"size:20" json:"student_id"`
	TeacherID  *string `gorm:"size:20" json:"teacher_id"`
	Department *string `gorm:"size:100" json:"department"`
	Year       *int    `json:"year"`

	IsActive       bool       `gorm:"default:true" json:"is_active"`
	NoShowCount    int        `gorm:"default:0" json:"no_show_count"`
	IsSuspended    bool       `gorm:"default:false" json:"is_suspended"`
	SuspendedUntil *time.Time `json:"suspended_until"`

	CreatedAt time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
