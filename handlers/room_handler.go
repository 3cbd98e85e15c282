package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jiraphat04/classroom_booking/models"
	"github.com/jiraphat04/classroom_booking/services"
)

type RoomRequest struct {
	Name               string  `json:"name" validate:"required"`
	Type               string  `json:"type" validate:"required,oneof=LECTURE COMPUTER_LAB LABORATORY MEETING STUDY"`
	Floor              *int    `json:"floor,omitempty"`
	Building           *string `json:"building,omitempty"`
	Capacity           int     `json:"capacity" validate:"required,min=1"`
	Equipment          *string `json:"equipment,omitempty"`
	Description        *string `json:"description,omitempty"`
	OpenTime           *string `json:"open_time,omitempty" validate:"omitempty,datetime=15:04"`
	CloseTime          *string `json:"close_time,omitempty" validate:"omitempty,datetime=15:04"`
	IsActive           *bool   `json:"is_active,omitempty"`
	MaxBookingHours    *int    `json:"max_booking_hours,omitempty"`
	AdvanceBookingDays *int    `json:"advance_booking_days,omitempty"`
	RequireApproval    *bool   `json:"require_approval,omitempty"`
}

func CreateRoom(c *fiber.Ctx) error {
	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	room := models.Room{
		Name:               req.Name,
		Type:               req.Type,
		Floor:              req.Floor,
		Building:           req.Building,
		Capacity:           req.Capacity,
		Equipment:          req.Equipment,
		Description:        req.Description,
		OpenTime:           req.OpenTime,
		CloseTime:          req.CloseTime,
		IsActive:           true,
		MaxBookingHours:    req.MaxBookingHours,
		AdvanceBookingDays: req.AdvanceBookingDays,
		RequireApproval:    true,
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}
	if req.RequireApproval != nil {
		room.RequireApproval = *req.RequireApproval
	}

	if err := services.CreateRoom(&room); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create room"})
	}
	return c.Status(fiber.StatusCreated).JSON(room)
}

func GetRooms(c *fiber.Ctx) error {
	rooms, err := services.FindAllRooms()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(rooms)
}

func GetRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid room id"})
	}
	room, err := services.FindRoom(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(room)
}

func UpdateRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid room id"})
	}
	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	room, err := services.UpdateRoom(id, func(room *models.Room) {
		room.Name = req.Name
		room.Type = req.Type
		room.Floor = req.Floor
		room.Building = req.Building
		room.Capacity = req.Capacity
		room.Equipment = req.Equipment
		room.Description = req.Description
		room.OpenTime = req.OpenTime
		room.CloseTime = req.CloseTime
		room.MaxBookingHours = req.MaxBookingHours
		room.AdvanceBookingDays = req.AdvanceBookingDays
		if req.IsActive != nil {
			room.IsActive = *req.IsActive
		}
		if req.RequireApproval != nil {
			room.RequireApproval = *req.RequireApproval
		}
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(room)
}

func DeleteRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid room id"})
	}
	if err := services.DeleteRoom(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Room deleted"})
}

func GetAvailableRooms(c *fiber.Ctx) error {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date"})
	}
	startTime, err := time.Parse(time.RFC3339, c.Query("startTime"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid startTime"})
	}
	endTime, err := time.Parse(time.RFC3339, c.Query("endTime"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid endTime"})
	}

	rooms, err := services.AvailableRooms(date, startTime, endTime)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(rooms)
}
