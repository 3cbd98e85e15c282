package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/jiraphat04/classroom_booking/database"
	"github.com/jiraphat04/classroom_booking/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultSeriesDays bounds open-ended series: a series without an endDate
// expands startDate + 90 days.
const defaultSeriesDays = 90

type CreateRecurringInput struct {
	RoomID     uuid.UUID
	StartDate  time.Time
	EndDate    *time.Time
	Pattern    string
	DaysOfWeek []int
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM"
	Purpose    string
}

// CreateRecurringBooking persists the series definition first, then expands
// it into concrete booking instances. A series that generates zero
// instances is still kept.
func CreateRecurringBooking(in CreateRecurringInput, actor Actor) (*models.RecurringBooking, error) {
	var room models.Room
	if err := database.DB.First(&room, "id = ?", in.RoomID).Error; err != nil {
		return nil, NotFoundf("room not found")
	}

	startDay, _ := DayWindow(in.StartDate)
	recurring := models.RecurringBooking{
		UserID:     actor.ID,
		RoomID:     in.RoomID,
		StartDate:  startDay,
		EndDate:    in.EndDate,
		Pattern:    in.Pattern,
		DaysOfWeek: models.IntSlice(in.DaysOfWeek),
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		Purpose:    in.Purpose,
	}
	if err := database.DB.Create(&recurring).Error; err != nil {
		return nil, err
	}

	if _, err := GenerateBookings(recurring.ID); err != nil {
		return nil, err
	}
	return &recurring, nil
}

// GenerateBookings materializes a series into dated booking rows. Expansion
// is idempotent: rows already present for (series, room, date, startTime)
// are skipped through the store's uniqueness constraint rather than failing
// the batch. Generated instances deliberately bypass the conflict checker;
// series are exempt from the overlap invariant and only the uniqueness
// index applies.
func GenerateBookings(recurringID uuid.UUID) (int, error) {
	var recurring models.RecurringBooking
	if err := database.DB.Preload("User").First(&recurring, "id = ?", recurringID).Error; err != nil {
		return 0, NotFoundf("recurring booking with ID %s not found", recurringID)
	}

	endDate := recurring.StartDate.AddDate(0, 0, defaultSeriesDays)
	if recurring.EndDate != nil {
		endDate, _ = DayWindow(*recurring.EndDate)
	}

	status := models.StatusPending
	if recurring.User.Role == models.RoleTeacher {
		status = models.StatusApproved
	}

	var bookings []models.Booking
	day, _ := DayWindow(recurring.StartDate)
	for !day.After(endDate) {
		include := recurring.Pattern == models.PatternDaily ||
			(recurring.Pattern == models.PatternWeekly && recurring.DaysOfWeek.Contains(int(day.Weekday())))
		// CUSTOM is never auto-expanded.

		if include {
			startTime, err := atTimeOfDay(day, recurring.StartTime)
			if err != nil {
				return 0, err
			}
			endTime, err := atTimeOfDay(day, recurring.EndTime)
			if err != nil {
				return 0, err
			}

			seriesID := recurring.ID
			bookings = append(bookings, models.Booking{
				UserID:             recurring.UserID,
				RoomID:             recurring.RoomID,
				Date:               day,
				StartTime:          startTime,
				EndTime:            endTime,
				Purpose:            recurring.Purpose,
				Attendees:          1,
				Status:             status,
				RecurringBookingID: &seriesID,
			})
		}

		day = day.AddDate(0, 0, 1)
	}

	if len(bookings) == 0 {
		return 0, nil
	}
	err := database.DB.
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&bookings, 100).Error
	if err != nil {
		return 0, err
	}
	return len(bookings), nil
}

func atTimeOfDay(day time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, Conflictf("invalid time of day %q", hhmm)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

func FindAllRecurringBookings(actor Actor) ([]models.RecurringBooking, error) {
	q := database.DB.
		Preload("User").
		Preload("Room").
		Preload("Bookings", func(db *gorm.DB) *gorm.DB { return db.Order("date asc") }).
		Order("created_at desc")
	if !IsStaff(actor.Role) {
		q = q.Where("user_id = ?", actor.ID)
	}

	var series []models.RecurringBooking
	err := q.Find(&series).Error
	return series, err
}

func FindRecurringBooking(id uuid.UUID) (*models.RecurringBooking, error) {
	var recurring models.RecurringBooking
	err := database.DB.
		Preload("User").
		Preload("Room").
		Preload("Bookings", func(db *gorm.DB) *gorm.DB { return db.Order("date asc") }).
		First(&recurring, "id = ?", id).Error
	if err != nil {
		return nil, NotFoundf("recurring booking with ID %s not found", id)
	}
	return &recurring, nil
}

type UpdateRecurringInput struct {
	EndDate *time.Time
	Purpose *string
}

// UpdateRecurringBooking mutates series metadata only. Already-materialized
// instances are neither regenerated nor pruned; shortening endDate leaves
// existing future instances in place.
func UpdateRecurringBooking(id uuid.UUID, in UpdateRecurringInput) (*models.RecurringBooking, error) {
	var recurring models.RecurringBooking
	if err := database.DB.First(&recurring, "id = ?", id).Error; err != nil {
		return nil, NotFoundf("recurring booking with ID %s not found", id)
	}
	if in.EndDate != nil {
		recurring.EndDate = in.EndDate
	}
	if in.Purpose != nil {
		recurring.Purpose = *in.Purpose
	}
	if err := database.DB.Save(&recurring).Error; err != nil {
		return nil, err
	}
	return &recurring, nil
}

// RemoveRecurringBooking deletes future generated instances first, then the
// series row. Past instances are kept as history. Children go first so a
// store enforcing referential integrity never sees a dangling reference.
func RemoveRecurringBooking(id uuid.UUID) error {
	var recurring models.RecurringBooking
	if err := database.DB.First(&recurring, "id = ?", id).Error; err != nil {
		return NotFoundf("recurring booking with ID %s not found", id)
	}

	today, _ := DayWindow(now())
	err := database.DB.
		Where("recurring_booking_id = ? AND date >= ?", id, today).
		Delete(&models.Booking{}).Error
	if err != nil {
		return err
	}
	return database.DB.Delete(&recurring).Error
}
