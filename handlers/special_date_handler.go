package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jiraphat04/classroom_booking/database"
	"github.com/jiraphat04/classroom_booking/models"
)

type SpecialDateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=HOLIDAY EXAM EVENT"`
	Description *string `json:"description,omitempty"`
	SemesterID  *string `json:"semester_id,omitempty" validate:"omitempty,uuid"`
}

func CreateSpecialDate(c *fiber.Ctx) error {
	var req SpecialDateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date"})
	}

	specialDate := models.SpecialDate{
		Name:        req.Name,
		Date:        date,
		Type:        req.Type,
		Description: req.Description,
	}
	if req.SemesterID != nil {
		semesterID, _ := uuid.Parse(*req.SemesterID)
		specialDate.SemesterID = &semesterID
	}

	if err := database.DB.Create(&specialDate).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create special date"})
	}
	return c.Status(fiber.StatusCreated).JSON(specialDate)
}

func GetSpecialDates(c *fiber.Ctx) error {
	var specialDates []models.SpecialDate
	err := database.DB.
		Preload("Semester").
		Order("date asc").
		Find(&specialDates).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch special dates"})
	}
	return c.JSON(specialDates)
}

func GetSpecialDatesByMonth(c *fiber.Ctx) error {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid month"})
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
	}

	startDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	endDate := startDate.AddDate(0, 1, 0)

	var specialDates []models.SpecialDate
	err = database.DB.
		Preload("Semester").
		Where("date >= ? AND date < ?", startDate, endDate).
		Order("date asc").
		Find(&specialDates).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch special dates"})
	}
	return c.JSON(specialDates)
}

func DeleteSpecialDate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("specialDateId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid special date id"})
	}
	result := database.DB.Delete(&models.SpecialDate{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete special date"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Special date not found"})
	}
	return c.JSON(fiber.Map{"message": "Special date deleted"})
}
