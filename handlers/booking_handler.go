package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jiraphat04/classroom_booking/models"
	"github.com/jiraphat04/classroom_booking/notifications"
	"github.com/jiraphat04/classroom_booking/services"
)

type CreateBookingRequest struct {
	RoomID    string `json:"room_id" validate:"required,uuid"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"start_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime   string `json:"end_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Purpose   string `json:"purpose" validate:"required"`
	Attendees int    `json:"attendees" validate:"required,min=1"`
}

func CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	roomID, _ := uuid.Parse(req.RoomID)
	date, err := parseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date"})
	}
	startTime, _ := time.Parse(time.RFC3339, req.StartTime)
	endTime, _ := time.Parse(time.RFC3339, req.EndTime)
	if !endTime.After(startTime) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End time must be after start time"})
	}

	booking, err := services.CreateBooking(services.CreateBookingInput{
		RoomID:    roomID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Purpose:   req.Purpose,
		Attendees: req.Attendees,
	}, currentActor(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func GetBookings(c *fiber.Ctx) error {
	bookings, err := services.FindAllBookings(currentActor(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(bookings)
}

func GetBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}
	booking, err := services.FindBooking(id, currentActor(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(booking)
}

func ApproveBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}
	booking, err := services.ApproveBooking(id)
	if err != nil {
		return serviceError(c, err)
	}

	go notifications.Notify(booking.UserID, models.NotificationBookingApproved,
		"Booking approved",
		fmt.Sprintf("Your booking on %s from %s to %s has been approved.",
			booking.Date.Format("2006-01-02"), booking.StartTime.Format("15:04"), booking.EndTime.Format("15:04")))

	return c.JSON(fiber.Map{"message": "Booking approved"})
}

type RejectBookingRequest struct {
	AdminNote *string `json:"admin_note"`
}

func RejectBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}
	var req RejectBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	booking, err := services.RejectBooking(id, req.AdminNote)
	if err != nil {
		return serviceError(c, err)
	}

	message := fmt.Sprintf("Your booking on %s has been rejected.", booking.Date.Format("2006-01-02"))
	if req.AdminNote != nil && *req.AdminNote != "" {
		message += " Note: " + *req.AdminNote
	}
	go notifications.Notify(booking.UserID, models.NotificationBookingRejected, "Booking rejected", message)

	return c.JSON(fiber.Map{"message": "Booking rejected"})
}

type BatchApproveRequest struct {
	BookingIDs []string `json:"booking_ids" validate:"required,min=1,dive,uuid"`
}

func BatchApproveBookings(c *fiber.Ctx) error {
	var req BatchApproveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ids := make([]uuid.UUID, 0, len(req.BookingIDs))
	for _, raw := range req.BookingIDs {
		id, _ := uuid.Parse(raw)
		ids = append(ids, id)
	}

	count, err := services.BatchApproveBookings(ids)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("%d bookings approved", count), "count": count})
}

func CancelBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}
	booking, err := services.CancelBooking(id, currentActor(c))
	if err != nil {
		return serviceError(c, err)
	}

	go notifications.Notify(booking.UserID, models.NotificationBookingCancelled,
		"Booking cancelled",
		fmt.Sprintf("Your booking on %s from %s to %s has been cancelled.",
			booking.Date.Format("2006-01-02"), booking.StartTime.Format("15:04"), booking.EndTime.Format("15:04")))

	return c.JSON(fiber.Map{"message": "Booking cancelled"})
}

func CheckInBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}
	booking, err := services.CheckIn(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(booking)
}

func CheckOutBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}
	booking, err := services.CheckOut(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(booking)
}

func GetCalendarView(c *fiber.Ctx) error {
	startDate, err := parseDate(c.Query("startDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid startDate"})
	}
	endDate, err := parseDate(c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid endDate"})
	}

	bookings, err := services.CalendarView(startDate, endDate)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(bookings)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
