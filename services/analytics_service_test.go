package services

import (
	"testing"
	"time"

	"github.com/jiraphat04/classroom_booking/models"
)

func TestGetDashboardStats(t *testing.T) {
	setupTestDB(t)
	day, _ := DayWindow(time.Now())
	student := createTestUser(t, models.RoleStudent)
	teacher := createTestUser(t, models.RoleTeacher)
	roomA := createTestRoom(t)
	roomB := createTestRoom(t)

	if _, err := CreateBooking(bookingInput(roomA, day, 9, 10), actorFor(student)); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if _, err := CreateBooking(bookingInput(roomA, day, 10, 11), actorFor(teacher)); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if _, err := CreateBooking(bookingInput(roomB, day, 9, 10), actorFor(teacher)); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	stats, err := GetDashboardStats()
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}

	if stats.TotalBookings != 3 {
		t.Errorf("total bookings = %d, want 3", stats.TotalBookings)
	}
	if stats.PendingBookings != 1 {
		t.Errorf("pending bookings = %d, want 1", stats.PendingBookings)
	}
	if stats.ApprovedToday != 2 {
		t.Errorf("approved today = %d, want 2", stats.ApprovedToday)
	}
	if stats.TotalRooms != 2 || stats.AvailableRooms != 2 {
		t.Errorf("rooms = %d/%d, want 2/2", stats.AvailableRooms, stats.TotalRooms)
	}

	if len(stats.BookingTrend) != 7 {
		t.Fatalf("trend has %d points, want 7", len(stats.BookingTrend))
	}
	last := stats.BookingTrend[len(stats.BookingTrend)-1]
	if last.Count != 3 {
		t.Errorf("today's trend count = %d, want 3", last.Count)
	}

	if len(stats.TopRooms) == 0 || stats.TopRooms[0].RoomID != roomA.ID.String() {
		t.Errorf("top room should be the twice-booked one: %+v", stats.TopRooms)
	}
	if stats.TopRooms[0].Count != 2 {
		t.Errorf("top room count = %d, want 2", stats.TopRooms[0].Count)
	}

	byRole := make(map[string]int64, len(stats.BookingByRole))
	for _, r := range stats.BookingByRole {
		byRole[r.Role] = r.Count
	}
	if byRole[models.RoleTeacher] != 2 || byRole[models.RoleStudent] != 1 {
		t.Errorf("bookings by role = %v", byRole)
	}

	foundNine := false
	for _, h := range stats.PeakHours {
		if h.Hour == 9 && h.Count == 2 {
			foundNine = true
		}
	}
	if !foundNine {
		t.Errorf("peak hours missing the 09:00 pair: %+v", stats.PeakHours)
	}
}
