package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jiraphat04/classroom_booking/database"
	"github.com/jiraphat04/classroom_booking/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the shared database handle at a fresh in-memory store.
// Tests share the handle, so none of them run in parallel.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
		&models.RecurringBooking{},
		&models.Notification{},
		&models.Announcement{},
		&models.Semester{},
		&models.SpecialDate{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	database.DB = db
}

var fixtureSeq int

func createTestUser(t *testing.T, role string) *models.User {
	t.Helper()
	fixtureSeq++
	user := models.User{
		Username: fmt.Sprintf("user%d", fixtureSeq),
		FullName: fmt.Sprintf("Test User %d", fixtureSeq),
		Password: "hashed-password",
		Role:     role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

func createTestRoom(t *testing.T) *models.Room {
	t.Helper()
	fixtureSeq++
	room := models.Room{
		Name:     fmt.Sprintf("Room %d", fixtureSeq),
		Type:     models.RoomTypeLecture,
		Capacity: 30,
	}
	if err := database.DB.Create(&room).Error; err != nil {
		t.Fatalf("failed to create test room: %v", err)
	}
	return &room
}

func actorFor(user *models.User) Actor {
	return Actor{ID: user.ID, Role: user.Role}
}

// fixedClock pins the package clock for the duration of a test.
func fixedClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

// at anchors a wall-clock time on the given day, in the day's location.
func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}
