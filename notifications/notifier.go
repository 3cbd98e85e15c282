package notifications

import (
	"log"

	"github.com/google/uuid"
	"github.com/jiraphat04/classroom_booking/database"
	"github.com/jiraphat04/classroom_booking/models"
	"github.com/jiraphat04/classroom_booking/websocket"
)

// Notify stores an in-app notification and hands it to the websocket hub
// for live delivery. Call sites fire it in a goroutine; a failed write is
// logged, never propagated into the booking flow.
func Notify(userID uuid.UUID, notificationType, title, message string) {
	notification := models.Notification{
		UserID:  userID,
		Type:    notificationType,
		Title:   title,
		Message: message,
	}
	if err := database.DB.Create(&notification).Error; err != nil {
		log.Printf("🔥 Failed to store notification for user %s: %v", userID, err)
		return
	}
	websocket.Push(&notification)
}

func FindByUser(userID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications).Error
	return notifications, err
}

func MarkAsRead(id uuid.UUID) error {
	return database.DB.Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func MarkAllAsRead(userID uuid.UUID) error {
	return database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func Remove(id uuid.UUID) error {
	return database.DB.Delete(&models.Notification{}, "id = ?", id).Error
}
