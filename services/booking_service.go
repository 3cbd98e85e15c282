package services

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jiraphat04/classroom_booking/database"
	"github.com/jiraphat04/classroom_booking/models"
)

// now is swapped out by tests that need a fixed clock.
var now = time.Now

type CreateBookingInput struct {
	RoomID    uuid.UUID
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
	Purpose   string
	Attendees int
}

// FindConflicts returns every PENDING/APPROVED booking for the room whose
// [startTime, endTime) window overlaps the given one on the given day,
// oldest first so the earliest-created conflict is surfaced in messages.
func FindConflicts(roomID uuid.UUID, date, startTime, endTime time.Time, excludeBookingID *uuid.UUID) ([]models.Booking, error) {
	dayStart, dayEnd := DayWindow(date)

	q := database.DB.
		Preload("User").
		Where("room_id = ? AND date >= ? AND date < ?", roomID, dayStart, dayEnd).
		Where("status IN ?", []string{models.StatusPending, models.StatusApproved}).
		Order("created_at asc")
	if excludeBookingID != nil {
		q = q.Where("id <> ?", *excludeBookingID)
	}

	var candidates []models.Booking
	if err := q.Find(&candidates).Error; err != nil {
		return nil, err
	}

	var conflicts []models.Booking
	for _, b := range candidates {
		if Overlaps(startTime, endTime, b.StartTime, b.EndTime) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts, nil
}

func CreateBooking(in CreateBookingInput, actor Actor) (*models.Booking, error) {
	var requester models.User
	if err := database.DB.First(&requester, "id = ?", actor.ID).Error; err != nil {
		return nil, NotFoundf("user not found")
	}
	if requester.IsSuspended && requester.SuspendedUntil != nil && requester.SuspendedUntil.After(now()) {
		return nil, Forbiddenf("your account is suspended until %s due to repeated no-shows",
			requester.SuspendedUntil.Format("2006-01-02"))
	}

	var room models.Room
	if err := database.DB.First(&room, "id = ?", in.RoomID).Error; err != nil {
		return nil, NotFoundf("room not found")
	}
	if !room.IsActive {
		return nil, Conflictf("room is not available for booking")
	}

	mu := lockRoom(in.RoomID)
	defer mu.Unlock()

	conflicts, err := FindConflicts(in.RoomID, in.Date, in.StartTime, in.EndTime, nil)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		first := conflicts[0]
		return nil, Conflictf("room is already booked from %s to %s by %s",
			first.StartTime.Format("15:04"), first.EndTime.Format("15:04"), first.User.FullName)
	}

	status := models.StatusPending
	if actor.Role == models.RoleTeacher {
		status = models.StatusApproved
	}

	dayStart, _ := DayWindow(in.Date)
	booking := models.Booking{
		UserID:    actor.ID,
		RoomID:    in.RoomID,
		Date:      dayStart,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Purpose:   in.Purpose,
		Attendees: in.Attendees,
		Status:    status,
	}
	if err := database.DB.Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func FindAllBookings(actor Actor) ([]models.Booking, error) {
	var bookings []models.Booking
	if IsStaff(actor.Role) {
		err := database.DB.Preload("User").Preload("Room").Find(&bookings).Error
		return bookings, err
	}
	err := database.DB.Preload("Room").Where("user_id = ?", actor.ID).Find(&bookings).Error
	return bookings, err
}

func FindBooking(id uuid.UUID, actor Actor) (*models.Booking, error) {
	var booking models.Booking
	if err := database.DB.Preload("User").Preload("Room").First(&booking, "id = ?", id).Error; err != nil {
		return nil, NotFoundf("booking not found")
	}
	if !CanPerform(ActionView, actor.Role, booking.UserID, actor.ID) {
		return nil, Forbiddenf("you are not allowed to view this booking")
	}
	return &booking, nil
}

// ApproveBooking is an unguarded status write: approving out of a terminal
// status is allowed so staff can correct mistakes, but logged as an anomaly.
func ApproveBooking(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", id).Error; err != nil {
		return nil, NotFoundf("booking not found")
	}
	if booking.Status == models.StatusRejected || booking.Status == models.StatusCancelled {
		log.Printf("⚠️ anomaly: approving booking %s out of terminal status %s", booking.ID, booking.Status)
	}
	booking.Status = models.StatusApproved
	if err := database.DB.Save(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func RejectBooking(id uuid.UUID, adminNote *string) (*models.Booking, error) {
	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", id).Error; err != nil {
		return nil, NotFoundf("booking not found")
	}
	if booking.Status == models.StatusRejected || booking.Status == models.StatusCancelled {
		log.Printf("⚠️ anomaly: rejecting booking %s out of terminal status %s", booking.ID, booking.Status)
	}
	booking.Status = models.StatusRejected
	booking.AdminNote = adminNote
	if err := database.DB.Save(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// BatchApproveBookings transitions only the PENDING subset of the given ids;
// the rest are silently skipped. The returned count is the number of ids
// requested, not the number actually transitioned, matching the dashboard's
// long-standing expectation.
func BatchApproveBookings(ids []uuid.UUID) (int, error) {
	err := database.DB.Model(&models.Booking{}).
		Where("id IN ? AND status = ?", ids, models.StatusPending).
		Update("status", models.StatusApproved).Error
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

func CancelBooking(id uuid.UUID, actor Actor) (*models.Booking, error) {
	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", id).Error; err != nil {
		return nil, NotFoundf("booking not found")
	}
	if !CanPerform(ActionCancel, actor.Role, booking.UserID, actor.ID) {
		return nil, Forbiddenf("you are not allowed to cancel this booking")
	}
	if booking.Status != models.StatusPending && booking.Status != models.StatusApproved {
		return nil, Conflictf("cannot cancel a booking with status %s", booking.Status)
	}
	booking.Status = models.StatusCancelled
	if err := database.DB.Save(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// CheckIn and CheckOut stamp the respective timestamp without validating
// status or window membership; no-show marking is handled by the cron job.
func CheckIn(id uuid.UUID) (*models.Booking, error) {
	return stampBooking(id, func(b *models.Booking, t time.Time) { b.CheckInTime = &t })
}

func CheckOut(id uuid.UUID) (*models.Booking, error) {
	return stampBooking(id, func(b *models.Booking, t time.Time) { b.CheckOutTime = &t })
}

func stampBooking(id uuid.UUID, stamp func(*models.Booking, time.Time)) (*models.Booking, error) {
	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", id).Error; err != nil {
		return nil, NotFoundf("booking not found")
	}
	stamp(&booking, now())
	if err := database.DB.Save(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// CalendarView returns bookings of any status whose date falls inside
// [startDate, endDate], with owner and room detail for rendering.
func CalendarView(startDate, endDate time.Time) ([]models.Booking, error) {
	from, _ := DayWindow(startDate)
	_, to := DayWindow(endDate)

	var bookings []models.Booking
	err := database.DB.
		Preload("User").
		Preload("Room").
		Where("date >= ? AND date < ?", from, to).
		Order("date asc, start_time asc").
		Find(&bookings).Error
	return bookings, err
}
