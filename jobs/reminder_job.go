package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/jiraphat04/classroom_booking/database"
	"github.com/jiraphat04/classroom_booking/models"
	"github.com/jiraphat04/classroom_booking/notifications"
)

// SendBookingReminders notifies owners of APPROVED bookings starting in
// roughly one hour. The job runs every five minutes against a five-minute
// window, so each booking is picked up once.
func SendBookingReminders() {
	log.Println("Running job: SendBookingReminders...")

	current := now()
	lowerBound := current.Add(60 * time.Minute)
	upperBound := current.Add(65 * time.Minute)

	var upcoming []models.Booking
	err := database.DB.
		Preload("Room").
		Where("status = ? AND start_time BETWEEN ? AND ?", models.StatusApproved, lowerBound, upperBound).
		Find(&upcoming).Error
	if err != nil {
		log.Printf("Error checking for upcoming bookings: %v", err)
		return
	}

	if len(upcoming) == 0 {
		return
	}

	for _, booking := range upcoming {
		log.Printf("Sending reminder for booking ID: %s", booking.ID)
		go notifications.Notify(booking.UserID, models.NotificationBookingReminder,
			"Upcoming booking reminder",
			fmt.Sprintf("Your booking of %s starts at %s.",
				booking.Room.Name, booking.StartTime.Format("15:04")))
	}
}
