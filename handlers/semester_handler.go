package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jiraphat04/classroom_booking/database"
	"github.com/jiraphat04/classroom_booking/models"
)

type SemesterRequest struct {
	Name      string `json:"name" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	IsActive  bool   `json:"is_active"`
}

func CreateSemester(c *fiber.Ctx) error {
	var req SemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid start_date"})
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid end_date"})
	}

	semester := models.Semester{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		IsActive:  req.IsActive,
	}
	if err := database.DB.Create(&semester).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create semester"})
	}
	return c.Status(fiber.StatusCreated).JSON(semester)
}

func GetSemesters(c *fiber.Ctx) error {
	var semesters []models.Semester
	err := database.DB.
		Preload("SpecialDates").
		Order("start_date desc").
		Find(&semesters).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch semesters"})
	}
	return c.JSON(semesters)
}

func GetActiveSemester(c *fiber.Ctx) error {
	var semester models.Semester
	err := database.DB.
		Preload("SpecialDates").
		Where("is_active = ?", true).
		First(&semester).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No active semester"})
	}
	return c.JSON(semester)
}

func GetSemester(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("semesterId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid semester id"})
	}
	var semester models.Semester
	if err := database.DB.Preload("SpecialDates").First(&semester, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Semester not found"})
	}
	return c.JSON(semester)
}

func UpdateSemester(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("semesterId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid semester id"})
	}
	var semester models.Semester
	if err := database.DB.First(&semester, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Semester not found"})
	}

	var req SemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if req.Name != "" {
		semester.Name = req.Name
	}
	if req.StartDate != "" {
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid start_date"})
		}
		semester.StartDate = startDate
	}
	if req.EndDate != "" {
		endDate, err := parseDate(req.EndDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid end_date"})
		}
		semester.EndDate = endDate
	}
	semester.IsActive = req.IsActive

	if err := database.DB.Save(&semester).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update semester"})
	}
	return c.JSON(semester)
}

func DeleteSemester(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("semesterId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid semester id"})
	}
	result := database.DB.Delete(&models.Semester{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete semester"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Semester not found"})
	}
	return c.JSON(fiber.Map{"message": "Semester deleted"})
}
