package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jiraphat04/classroom_booking/database"
	"github.com/jiraphat04/classroom_booking/models"
)

type AnnouncementRequest struct {
	Title       string  `json:"title" validate:"required"`
	Content     string  `json:"content" validate:"required"`
	Type        string  `json:"type" validate:"omitempty,oneof=INFO WARNING URGENT"`
	IsPinned    bool    `json:"is_pinned"`
	PublishDate *string `json:"publish_date,omitempty"`
	ExpiryDate  *string `json:"expiry_date,omitempty"`
}

func CreateAnnouncement(c *fiber.Ctx) error {
	var req AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	announcement := models.Announcement{
		Title:       req.Title,
		Content:     req.Content,
		Type:        models.AnnouncementInfo,
		IsPinned:    req.IsPinned,
		PublishDate: time.Now(),
		CreatedBy:   currentActor(c).ID,
	}
	if req.Type != "" {
		announcement.Type = req.Type
	}
	if req.PublishDate != nil {
		parsed, err := parseDate(*req.PublishDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid publish_date"})
		}
		announcement.PublishDate = parsed
	}
	if req.ExpiryDate != nil {
		parsed, err := parseDate(*req.ExpiryDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expiry_date"})
		}
		announcement.ExpiryDate = &parsed
	}

	if err := database.DB.Create(&announcement).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create announcement"})
	}
	return c.Status(fiber.StatusCreated).JSON(announcement)
}

// GetActiveAnnouncements returns published, unexpired announcements,
// pinned first then newest.
func GetActiveAnnouncements(c *fiber.Ctx) error {
	now := time.Now()
	var announcements []models.Announcement
	err := database.DB.
		Preload("Creator").
		Where("publish_date <= ?", now).
		Where("expiry_date IS NULL OR expiry_date >= ?", now).
		Order("is_pinned desc, publish_date desc").
		Find(&announcements).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch announcements"})
	}
	return c.JSON(announcements)
}

func GetAllAnnouncements(c *fiber.Ctx) error {
	var announcements []models.Announcement
	err := database.DB.
		Preload("Creator").
		Order("created_at desc").
		Find(&announcements).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch announcements"})
	}
	return c.JSON(announcements)
}

func DeleteAnnouncement(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("announcementId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid announcement id"})
	}
	result := database.DB.Delete(&models.Announcement{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete announcement"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Announcement not found"})
	}
	return c.JSON(fiber.Map{"message": "Announcement deleted"})
}
