package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jiraphat04/classroom_booking/database"
	"github.com/jiraphat04/classroom_booking/models"
	"gorm.io/gorm"
)

func TestZZDiagBatchApprove(t *testing.T) {
	setupTestDB(t)
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	student := createTestUser(t, models.RoleStudent)
	room := createTestRoom(t)

	pending, err := CreateBooking(bookingInput(room, day, 9, 10), actorFor(student))
	if err != nil {
		t.Fatalf("create pending: %v", err)
	}
	cancelled, err := CreateBooking(bookingInput(room, day, 10, 11), actorFor(student))
	if err != nil {
		t.Fatalf("create cancelled: %v", err)
	}
	if _, err := CancelBooking(cancelled.ID, actorFor(student)); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	var check models.Booking
	database.DB.First(&check, "id = ?", cancelled.ID)
	t.Logf("after cancel: status=%q", check.Status)

	ids := []uuid.UUID{pending.ID, cancelled.ID, uuid.New()}
	stmt := database.DB.Session(&gorm.Session{DryRun: true}).Model(&models.Booking{}).
		Where("id IN ? AND status = ?", ids, models.StatusPending).
		Update("status", models.StatusApproved).Statement
	t.Logf("SQL: %s  VARS: %v", stmt.SQL.String(), stmt.Vars)

	if _, err := BatchApproveBookings(ids); err != nil {
		t.Fatalf("batch: %v", err)
	}
	database.DB.First(&check, "id = ?", cancelled.ID)
	t.Logf("after batch: status=%q", check.Status)

	var reloaded models.Booking
	err1 := database.DB.First(&reloaded, "id = ?", pending.ID).Error
	t.Logf("reuse step1: err=%v id=%s status=%q", err1, reloaded.ID, reloaded.Status)
	err2 := database.DB.First(&reloaded, "id = ?", cancelled.ID).Error
	t.Logf("reuse step2: err=%v id=%s status=%q", err2, reloaded.ID, reloaded.Status)
}
