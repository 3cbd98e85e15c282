package services

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jiraphat04/classroom_booking/database"
	"github.com/jiraphat04/classroom_booking/models"
)

func bookingInput(room *models.Room, day time.Time, fromHour, toHour int) CreateBookingInput {
	return CreateBookingInput{
		RoomID:    room.ID,
		Date:      day,
		StartTime: at(day, fromHour, 0),
		EndTime:   at(day, toHour, 0),
		Purpose:   "group study",
		Attendees: 4,
	}
}

func TestCreateBooking(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	t.Run("student booking starts pending", func(t *testing.T) {
		setupTestDB(t)
		student := createTestUser(t, models.RoleStudent)
		room := createTestRoom(t)

		booking, err := CreateBooking(bookingInput(room, day, 9, 10), actorFor(student))
		if err != nil {
			t.Fatalf("CreateBooking: %v", err)
		}
		if booking.Status != models.StatusPending {
			t.Errorf("status = %s, want %s", booking.Status, models.StatusPending)
		}
	})

	t.Run("teacher booking is auto approved", func(t *testing.T) {
		setupTestDB(t)
		teacher := createTestUser(t, models.RoleTeacher)
		room := createTestRoom(t)

		booking, err := CreateBooking(bookingInput(room, day, 9, 10), actorFor(teacher))
		if err != nil {
			t.Fatalf("CreateBooking: %v", err)
		}
		if booking.Status != models.StatusApproved {
			t.Errorf("status = %s, want %s", booking.Status, models.StatusApproved)
		}
	})

	t.Run("staff booking still starts pending", func(t *testing.T) {
		setupTestDB(t)
		staff := createTestUser(t, models.RoleStaff)
		room := createTestRoom(t)

		booking, err := CreateBooking(bookingInput(room, day, 9, 10), actorFor(staff))
		if err != nil {
			t.Fatalf("CreateBooking: %v", err)
		}
		if booking.Status != models.StatusPending {
			t.Errorf("status = %s, want %s", booking.Status, models.StatusPending)
		}
	})

	t.Run("date is normalized to midnight", func(t *testing.T) {
		setupTestDB(t)
		student := createTestUser(t, models.RoleStudent)
		room := createTestRoom(t)

		in := bookingInput(room, at(day, 14, 30), 15, 16)
		booking, err := CreateBooking(in, actorFor(student))
		if err != nil {
			t.Fatalf("CreateBooking: %v", err)
		}
		if h, m := booking.Date.Hour(), booking.Date.Minute(); h != 0 || m != 0 {
			t.Errorf("date not normalized: %v", booking.Date)
		}
	})

	t.Run("overlapping booking is rejected with holder details", func(t *testing.T) {
		setupTestDB(t)
		first := createTestUser(t, models.RoleStudent)
		second := createTestUser(t, models.RoleStudent)
		room := createTestRoom(t)

		if _, err := CreateBooking(bookingInput(room, day, 9, 11), actorFor(first)); err != nil {
			t.Fatalf("first CreateBooking: %v", err)
		}

		_, err := CreateBooking(bookingInput(room, day, 10, 12), actorFor(second))
		if !IsConflict(err) {
			t.Fatalf("want conflict, got %v", err)
		}
		msg := err.Error()
		if !strings.Contains(msg, "09:00") || !strings.Contains(msg, "11:00") {
			t.Errorf("conflict message missing window: %q", msg)
		}
		if !strings.Contains(msg, first.FullName) {
			t.Errorf("conflict message missing holder name: %q", msg)
		}
	})

	t.Run("back to back bookings do not conflict", func(t *testing.T) {
		setupTestDB(t)
		first := createTestUser(t, models.RoleStudent)
		second := createTestUser(t, models.RoleStudent)
		room := createTestRoom(t)

		if _, err := CreateBooking(bookingInput(room, day, 9, 10), actorFor(first)); err != nil {
			t.Fatalf("first CreateBooking: %v", err)
		}
		if _, err := CreateBooking(bookingInput(room, day, 10, 11), actorFor(second)); err != nil {
			t.Fatalf("adjacent CreateBooking: %v", err)
		}
	})

	t.Run("cancelled booking does not block the slot", func(t *testing.T) {
		setupTestDB(t)
		first := createTestUser(t, models.RoleStudent)
		second := createTestUser(t, models.RoleStudent)
		room := createTestRoom(t)

		booking, err := CreateBooking(bookingInput(room, day, 9, 10), actorFor(first))
		if err != nil {
			t.Fatalf("first CreateBooking: %v", err)
		}
		if _, err := CancelBooking(booking.ID, actorFor(first)); err != nil {
			t.Fatalf("CancelBooking: %v", err)
		}

		if _, err := CreateBooking(bookingInput(room, day, 9, 10), actorFor(second)); err != nil {
			t.Fatalf("rebooking freed slot: %v", err)
		}
	})

	t.Run("same window in another room is fine", func(t *testing.T) {
		setupTestDB(t)
		student := createTestUser(t, models.RoleStudent)
		roomA := createTestRoom(t)
		roomB := createTestRoom(t)

		if _, err := CreateBooking(bookingInput(roomA, day, 9, 10), actorFor(student)); err != nil {
			t.Fatalf("room A CreateBooking: %v", err)
		}
		if _, err := CreateBooking(bookingInput(roomB, day, 9, 10), actorFor(student)); err != nil {
			t.Fatalf("room B CreateBooking: %v", err)
		}
	})

	t.Run("unknown room", func(t *testing.T) {
		setupTestDB(t)
		student := createTestUser(t, models.RoleStudent)

		in := bookingInput(&models.Room{ID: uuid.New()}, day, 9, 10)
		if _, err := CreateBooking(in, actorFor(student)); !IsNotFound(err) {
			t.Fatalf("want not found, got %v", err)
		}
	})

	t.Run("inactive room is rejected", func(t *testing.T) {
		setupTestDB(t)
		student := createTestUser(t, models.RoleStudent)
		room := createTestRoom(t)
		if err := database.DB.Model(room).Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate room: %v", err)
		}

		if _, err := CreateBooking(bookingInput(room, day, 9, 10), actorFor(student)); !IsConflict(err) {
			t.Fatalf("want conflict, got %v", err)
		}
	})

	t.Run("suspended user is rejected", func(t *testing.T) {
		setupTestDB(t)
		fixedClock(t, at(day, 8, 0))
		student := createTestUser(t, models.RoleStudent)
		room := createTestRoom(t)

		until := day.AddDate(0, 0, 7)
		err := database.DB.Model(student).Updates(map[string]interface{}{
			"is_suspended":    true,
			"suspended_until": until,
		}).Error
		if err != nil {
			t.Fatalf("suspend user: %v", err)
		}

		_, err = CreateBooking(bookingInput(room, day, 9, 10), actorFor(student))
		if !IsForbidden(err) {
			t.Fatalf("want forbidden, got %v", err)
		}
	})

	t.Run("elapsed suspension no longer blocks", func(t *testing.T) {
		setupTestDB(t)
		fixedClock(t, at(day, 8, 0))
		student := createTestUser(t, models.RoleStudent)
		room := createTestRoom(t)

		until := day.AddDate(0, 0, -1)
		err := database.DB.Model(student).Updates(map[string]interface{}{
			"is_suspended":    true,
			"suspended_until": until,
		}).Error
		if err != nil {
			t.Fatalf("suspend user: %v", err)
		}

		if _, err := CreateBooking(bookingInput(room, day, 9, 10), actorFor(student)); err != nil {
			t.Fatalf("CreateBooking after suspension lapsed: %v", err)
		}
	})
}

func TestCreateBookingConcurrent(t *testing.T) {
	setupTestDB(t)
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	alice := createTestUser(t, models.RoleStudent)
	bob := createTestUser(t, models.RoleStudent)
	room := createTestRoom(t)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for _, actor := range []Actor{actorFor(alice), actorFor(bob)} {
		wg.Add(1)
		go func(a Actor) {
			defer wg.Done()
			_, err := CreateBooking(bookingInput(room, day, 9, 10), a)
			errs <- err
		}(actor)
	}
	wg.Wait()
	close(errs)

	var ok, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case IsConflict(err):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || conflicts != 1 {
		t.Fatalf("got %d successes and %d conflicts, want exactly one of each", ok, conflicts)
	}

	var count int64
	database.DB.Model(&models.Booking{}).Where("room_id = ?", room.ID).Count(&count)
	if count != 1 {
		t.Fatalf("stored %d bookings, want 1", count)
	}
}

func TestApproveAndRejectBooking(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	t.Run("approve pending", func(t *testing.T) {
		setupTestDB(t)
		student := createTestUser(t, models.RoleStudent)
		room := createTestRoom(t)
		booking, _ := CreateBooking(bookingInput(room, day, 9, 10), actorFor(student))

		approved, err := ApproveBooking(booking.ID)
		if err != nil {
			t.Fatalf("ApproveBooking: %v", err)
		}
		if approved.Status != models.StatusApproved {
			t.Errorf("status = %s, want %s", approved.Status, models.StatusApproved)
		}
	})

	t.Run("reject records admin note", func(t *testing.T) {
		setupTestDB(t)
		student := createTestUser(t, models.RoleStudent)
		room := createTestRoom(t)
		booking, _ := CreateBooking(bookingInput(room, day, 9, 10), actorFor(student))

		note := "room reserved for maintenance"
		rejected, err := RejectBooking(booking.ID, &note)
		if err != nil {
			t.Fatalf("RejectBooking: %v", err)
		}
		if rejected.Status != models.StatusRejected {
			t.Errorf("status = %s, want %s", rejected.Status, models.StatusRejected)
		}
		if rejected.AdminNote == nil || *rejected.AdminNote != note {
			t.Errorf("admin note not stored: %v", rejected.AdminNote)
		}
	})

	t.Run("approve out of a terminal status still lands", func(t *testing.T) {
		setupTestDB(t)
		student := createTestUser(t, models.RoleStudent)
		room := createTestRoom(t)
		booking, _ := CreateBooking(bookingInput(room, day, 9, 10), actorFor(student))
		if _, err := CancelBooking(booking.ID, actorFor(student)); err != nil {
			t.Fatalf("CancelBooking: %v", err)
		}

		approved, err := ApproveBooking(booking.ID)
		if err != nil {
			t.Fatalf("ApproveBooking: %v", err)
		}
		if approved.Status != models.StatusApproved {
			t.Errorf("status = %s, want %s", approved.Status, models.StatusApproved)
		}
	})

	t.Run("missing booking", func(t *testing.T) {
		setupTestDB(t)
		if _, err := ApproveBooking(uuid.New()); !IsNotFound(err) {
			t.Fatalf("want not found, got %v", err)
		}
	})
}

func TestBatchApproveBookings(t *testing.T) {
	setupTestDB(t)
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	student := createTestUser(t, models.RoleStudent)
	room := createTestRoom(t)

	pending, _ := CreateBooking(bookingInput(room, day, 9, 10), actorFor(student))
	cancelled, _ := CreateBooking(bookingInput(room, day, 10, 11), actorFor(student))
	if _, err := CancelBooking(cancelled.ID, actorFor(student)); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	ids := []uuid.UUID{pending.ID, cancelled.ID, uuid.New()}
	count, err := BatchApproveBookings(ids)
	if err != nil {
		t.Fatalf("BatchApproveBookings: %v", err)
	}
	// The count reflects the ids requested, not the rows transitioned.
	if count != len(ids) {
		t.Errorf("count = %d, want %d", count, len(ids))
	}

	var reloaded models.Booking
	database.DB.First(&reloaded, "id = ?", pending.ID)
	if reloaded.Status != models.StatusApproved {
		t.Errorf("pending booking status = %s, want %s", reloaded.Status, models.StatusApproved)
	}
	database.DB.First(&reloaded, "id = ?", cancelled.ID)
	if reloaded.Status != models.StatusCancelled {
		t.Errorf("cancelled booking status = %s, want it untouched", reloaded.Status)
	}
}

func TestCancelBooking(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	t.Run("owner cancels own pending booking", func(t *testing.T) {
		setupTestDB(t)
		student := createTestUser(t, models.RoleStudent)
		room := createTestRoom(t)
		booking, _ := CreateBooking(bookingInput(room, day, 9, 10), actorFor(student))

		cancelled, err := CancelBooking(booking.ID, actorFor(student))
		if err != nil {
			t.Fatalf("CancelBooking: %v", err)
		}
		if cancelled.Status != models.StatusCancelled {
			t.Errorf("status = %s, want %s", cancelled.Status, models.StatusCancelled)
		}
	})

	t.Run("staff cancels someone else's booking", func(t *testing.T) {
		setupTestDB(t)
		student := createTestUser(t, models.RoleStudent)
		staff := createTestUser(t, models.RoleStaff)
		room := createTestRoom(t)
		booking, _ := CreateBooking(bookingInput(room, day, 9, 10), actorFor(student))

		if _, err := CancelBooking(booking.ID, actorFor(staff)); err != nil {
			t.Fatalf("CancelBooking: %v", err)
		}
	})

	t.Run("department head cannot cancel someone else's booking", func(t *testing.T) {
		setupTestDB(t)
		student := createTestUser(t, models.RoleStudent)
		head := createTestUser(t, models.RoleDepartmentHead)
		room := createTestRoom(t)
		booking, _ := CreateBooking(bookingInput(room, day, 9, 10), actorFor(student))

		if _, err := CancelBooking(booking.ID, actorFor(head)); !IsForbidden(err) {
			t.Fatalf("want forbidden, got %v", err)
		}
	})

	t.Run("other students are forbidden", func(t *testing.T) {
		setupTestDB(t)
		owner := createTestUser(t, models.RoleStudent)
		other := createTestUser(t, models.RoleStudent)
		room := createTestRoom(t)
		booking, _ := CreateBooking(bookingInput(room, day, 9, 10), actorFor(owner))

		if _, err := CancelBooking(booking.ID, actorFor(other)); !IsForbidden(err) {
			t.Fatalf("want forbidden, got %v", err)
		}
	})

	t.Run("rejected booking cannot be cancelled", func(t *testing.T) {
		setupTestDB(t)
		student := createTestUser(t, models.RoleStudent)
		room := createTestRoom(t)
		booking, _ := CreateBooking(bookingInput(room, day, 9, 10), actorFor(student))
		if _, err := RejectBooking(booking.ID, nil); err != nil {
			t.Fatalf("RejectBooking: %v", err)
		}

		if _, err := CancelBooking(booking.ID, actorFor(student)); !IsConflict(err) {
			t.Fatalf("want conflict, got %v", err)
		}
	})
}

func TestBookingVisibility(t *testing.T) {
	setupTestDB(t)
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	alice := createTestUser(t, models.RoleStudent)
	bob := createTestUser(t, models.RoleStudent)
	staff := createTestUser(t, models.RoleStaff)
	room := createTestRoom(t)

	aliceBooking, _ := CreateBooking(bookingInput(room, day, 9, 10), actorFor(alice))
	if _, err := CreateBooking(bookingInput(room, day, 10, 11), actorFor(bob)); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	t.Run("students see only their own bookings", func(t *testing.T) {
		bookings, err := FindAllBookings(actorFor(alice))
		if err != nil {
			t.Fatalf("FindAllBookings: %v", err)
		}
		if len(bookings) != 1 || bookings[0].UserID != alice.ID {
			t.Errorf("got %d bookings, want alice's single booking", len(bookings))
		}
	})

	t.Run("staff sees everything", func(t *testing.T) {
		bookings, err := FindAllBookings(actorFor(staff))
		if err != nil {
			t.Fatalf("FindAllBookings: %v", err)
		}
		if len(bookings) != 2 {
			t.Errorf("got %d bookings, want 2", len(bookings))
		}
	})

	t.Run("students cannot open another's booking", func(t *testing.T) {
		if _, err := FindBooking(aliceBooking.ID, actorFor(bob)); !IsForbidden(err) {
			t.Fatalf("want forbidden, got %v", err)
		}
	})

	t.Run("owner opens their booking with detail", func(t *testing.T) {
		booking, err := FindBooking(aliceBooking.ID, actorFor(alice))
		if err != nil {
			t.Fatalf("FindBooking: %v", err)
		}
		if booking.Room.ID != room.ID {
			t.Errorf("room not preloaded")
		}
	})
}

func TestCheckInAndOut(t *testing.T) {
	setupTestDB(t)
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	student := createTestUser(t, models.RoleStudent)
	room := createTestRoom(t)
	booking, _ := CreateBooking(bookingInput(room, day, 9, 10), actorFor(student))

	stamp := at(day, 9, 5)
	fixedClock(t, stamp)

	checkedIn, err := CheckIn(booking.ID)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if checkedIn.CheckInTime == nil || !checkedIn.CheckInTime.Equal(stamp) {
		t.Errorf("check-in time = %v, want %v", checkedIn.CheckInTime, stamp)
	}

	checkedOut, err := CheckOut(booking.ID)
	if err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if checkedOut.CheckOutTime == nil || !checkedOut.CheckOutTime.Equal(stamp) {
		t.Errorf("check-out time = %v, want %v", checkedOut.CheckOutTime, stamp)
	}
}

func TestCalendarView(t *testing.T) {
	setupTestDB(t)
	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	friday := monday.AddDate(0, 0, 4)
	student := createTestUser(t, models.RoleStudent)
	room := createTestRoom(t)

	if _, err := CreateBooking(bookingInput(room, tuesday, 13, 14), actorFor(student)); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if _, err := CreateBooking(bookingInput(room, tuesday, 9, 10), actorFor(student)); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if _, err := CreateBooking(bookingInput(room, monday, 9, 10), actorFor(student)); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	outside, err := CreateBooking(bookingInput(room, friday, 9, 10), actorFor(student))
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	// Cancelled bookings still show on the calendar.
	cancelled, _ := CreateBooking(bookingInput(room, monday, 15, 16), actorFor(student))
	if _, err := CancelBooking(cancelled.ID, actorFor(student)); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	view, err := CalendarView(monday, tuesday)
	if err != nil {
		t.Fatalf("CalendarView: %v", err)
	}
	if len(view) != 4 {
		t.Fatalf("got %d bookings, want 4", len(view))
	}
	for _, b := range view {
		if b.ID == outside.ID {
			t.Error("booking outside the range leaked into the view")
		}
	}
	for i := 1; i < len(view); i++ {
		prev, cur := view[i-1], view[i]
		if cur.Date.Before(prev.Date) {
			t.Fatalf("view not ordered by date: %v after %v", cur.Date, prev.Date)
		}
		if cur.Date.Equal(prev.Date) && cur.StartTime.Before(prev.StartTime) {
			t.Fatalf("view not ordered by start time within a day")
		}
	}
}

// A full pass through the lifecycle a walk-in student goes through.
func TestBookingLifecycleFlow(t *testing.T) {
	setupTestDB(t)
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	student := createTestUser(t, models.RoleStudent)
	staff := createTestUser(t, models.RoleStaff)
	room := createTestRoom(t)

	booking, err := CreateBooking(bookingInput(room, day, 9, 10), actorFor(student))
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if booking.Status != models.StatusPending {
		t.Fatalf("status = %s, want %s", booking.Status, models.StatusPending)
	}

	if _, err := FindBooking(booking.ID, actorFor(staff)); err != nil {
		t.Fatalf("staff FindBooking: %v", err)
	}
	if _, err := ApproveBooking(booking.ID); err != nil {
		t.Fatalf("ApproveBooking: %v", err)
	}

	fixedClock(t, at(day, 9, 2))
	if _, err := CheckIn(booking.ID); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if _, err := CheckOut(booking.ID); err != nil {
		t.Fatalf("CheckOut: %v", err)
	}

	var final models.Booking
	database.DB.First(&final, "id = ?", booking.ID)
	if final.Status != models.StatusApproved || final.CheckInTime == nil || final.CheckOutTime == nil {
		t.Fatalf("lifecycle did not land: status=%s in=%v out=%v", final.Status, final.CheckInTime, final.CheckOutTime)
	}
}
