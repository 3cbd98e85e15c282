package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jiraphat04/classroom_booking/services"
)

type CreateRecurringRequest struct {
	RoomID     string  `json:"room_id" validate:"required,uuid"`
	StartDate  string  `json:"start_date" validate:"required"`
	EndDate    *string `json:"end_date,omitempty"`
	Pattern    string  `json:"pattern" validate:"required,oneof=DAILY WEEKLY CUSTOM"`
	DaysOfWeek []int   `json:"days_of_week,omitempty" validate:"omitempty,dive,min=0,max=6"`
	StartTime  string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string  `json:"end_time" validate:"required,datetime=15:04"`
	Purpose    string  `json:"purpose" validate:"required"`
}

func CreateRecurringBooking(c *fiber.Ctx) error {
	var req CreateRecurringRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	roomID, _ := uuid.Parse(req.RoomID)
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid start_date"})
	}
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := parseDate(*req.EndDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid end_date"})
		}
		endDate = &parsed
	}

	recurring, err := services.CreateRecurringBooking(services.CreateRecurringInput{
		RoomID:     roomID,
		StartDate:  startDate,
		EndDate:    endDate,
		Pattern:    req.Pattern,
		DaysOfWeek: req.DaysOfWeek,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Purpose:    req.Purpose,
	}, currentActor(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(recurring)
}

func GetRecurringBookings(c *fiber.Ctx) error {
	series, err := services.FindAllRecurringBookings(currentActor(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(series)
}

func GetRecurringBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("recurringId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid recurring booking id"})
	}
	recurring, err := services.FindRecurringBooking(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(recurring)
}

type UpdateRecurringRequest struct {
	EndDate *string `json:"end_date,omitempty"`
	Purpose *string `json:"purpose,omitempty"`
}

func UpdateRecurringBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("recurringId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid recurring booking id"})
	}
	var req UpdateRecurringRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := parseDate(*req.EndDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid end_date"})
		}
		endDate = &parsed
	}

	recurring, err := services.UpdateRecurringBooking(id, services.UpdateRecurringInput{
		EndDate: endDate,
		Purpose: req.Purpose,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(recurring)
}

func DeleteRecurringBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("recurringId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid recurring booking id"})
	}
	if err := services.RemoveRecurringBooking(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Recurring booking deleted"})
}
