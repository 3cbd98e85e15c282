package jobs

import (
	"log"
	"time"

	"github.com/jiraphat04/classroom_booking/database"
	"github.com/jiraphat04/classroom_booking/models"
)

const (
	noShowSuspensionThreshold = 3
	suspensionDays            = 7
)

// now is swapped out by tests that need a fixed clock.
var now = time.Now

// MarkNoShows flags APPROVED bookings whose window has elapsed without a
// check-in, bumps the owner's no-show count, and suspends owners who cross
// the threshold.
func MarkNoShows() {
	log.Println("Running job: MarkNoShows...")

	current := now()

	var missed []models.Booking
	err := database.DB.
		Where("status = ? AND end_time < ? AND check_in_time IS NULL AND is_no_show = ?",
			models.StatusApproved, current, false).
		Find(&missed).Error
	if err != nil {
		log.Printf("Error checking for no-shows: %v", err)
		return
	}

	if len(missed) == 0 {
		log.Println("No missed bookings found.")
		return
	}

	for _, booking := range missed {
		booking.IsNoShow = true
		if err := database.DB.Save(&booking).Error; err != nil {
			log.Printf("Error marking booking %s as no-show: %v", booking.ID, err)
			continue
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", booking.UserID).Error; err != nil {
			continue
		}
		user.NoShowCount++
		if user.NoShowCount >= noShowSuspensionThreshold && !user.IsSuspended {
			until := current.AddDate(0, 0, suspensionDays)
			user.IsSuspended = true
			user.SuspendedUntil = &until
			log.Printf("Suspending user %s until %s after %d no-shows", user.ID, until.Format("2006-01-02"), user.NoShowCount)
		}
		if err := database.DB.Save(&user).Error; err != nil {
			log.Printf("Error updating no-show count for user %s: %v", user.ID, err)
		}
	}

	log.Printf("Marked %d booking(s) as no-show.", len(missed))
}
