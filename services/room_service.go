package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/jiraphat04/classroom_booking/database"
	"github.com/jiraphat04/classroom_booking/models"
)

func CreateRoom(room *models.Room) error {
	return database.DB.Create(room).Error
}

func FindAllRooms() ([]models.Room, error) {
	var rooms []models.Room
	err := database.DB.Order("name asc").Find(&rooms).Error
	return rooms, err
}

func FindRoom(id uuid.UUID) (*models.Room, error) {
	var room models.Room
	if err := database.DB.First(&room, "id = ?", id).Error; err != nil {
		return nil, NotFoundf("room not found")
	}
	return &room, nil
}

func UpdateRoom(id uuid.UUID, apply func(*models.Room)) (*models.Room, error) {
	var room models.Room
	if err := database.DB.First(&room, "id = ?", id).Error; err != nil {
		return nil, NotFoundf("room not found")
	}
	apply(&room)
	if err := database.DB.Save(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// DeleteRoom removes the room row. Referential integrity with existing
// bookings is delegated to the store's foreign keys.
func DeleteRoom(id uuid.UUID) error {
	var room models.Room
	if err := database.DB.First(&room, "id = ?", id).Error; err != nil {
		return NotFoundf("room not found")
	}
	if err := database.DB.Delete(&room).Error; err != nil {
		return Conflictf("room cannot be deleted while bookings reference it")
	}
	return nil
}

// AvailableRooms returns the active rooms with no PENDING/APPROVED booking
// overlapping the given window, reusing the conflict checker per room.
func AvailableRooms(date, startTime, endTime time.Time) ([]models.Room, error) {
	var rooms []models.Room
	if err := database.DB.Where("is_active = ?", true).Order("name asc").Find(&rooms).Error; err != nil {
		return nil, err
	}

	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		conflicts, err := FindConflicts(room.ID, date, startTime, endTime, nil)
		if err != nil {
			return nil, err
		}
		if len(conflicts) == 0 {
			available = append(available, room)
		}
	}
	return available, nil
}
