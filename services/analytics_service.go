package services

import (
	"github.com/jiraphat04/classroom_booking/database"
	"github.com/jiraphat04/classroom_booking/models"
)

type TrendPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type RoomUsage struct {
	RoomID   string `json:"room_id"`
	RoomName string `json:"room_name"`
	Count    int64  `json:"count"`
}

type HourUsage struct {
	Hour  int   `json:"hour"`
	Count int64 `json:"count"`
}

type RoleUsage struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

type DashboardStats struct {
	TotalBookings   int64        `json:"total_bookings"`
	PendingBookings int64        `json:"pending_bookings"`
	ApprovedToday   int64        `json:"approved_today"`
	AvailableRooms  int64        `json:"available_rooms"`
	TotalRooms      int64        `json:"total_rooms"`
	BookingTrend    []TrendPoint `json:"booking_trend"`
	TopRooms        []RoomUsage  `json:"top_rooms"`
	PeakHours       []HourUsage  `json:"peak_hours"`
	BookingByRole   []RoleUsage  `json:"booking_by_role"`
}

func GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}
	today, _ := DayWindow(now())

	database.DB.Model(&models.Booking{}).Count(&stats.TotalBookings)
	database.DB.Model(&models.Booking{}).Where("status = ?", models.StatusPending).Count(&stats.PendingBookings)
	database.DB.Model(&models.Booking{}).
		Where("status = ? AND created_at >= ?", models.StatusApproved, today).
		Count(&stats.ApprovedToday)
	database.DB.Model(&models.Room{}).Count(&stats.TotalRooms)
	database.DB.Model(&models.Room{}).Where("is_active = ?", true).Count(&stats.AvailableRooms)

	trend, err := GetBookingTrend(7)
	if err != nil {
		return nil, err
	}
	stats.BookingTrend = trend

	topRooms, err := GetTopRooms(5)
	if err != nil {
		return nil, err
	}
	stats.TopRooms = topRooms

	peakHours, err := GetPeakHours()
	if err != nil {
		return nil, err
	}
	stats.PeakHours = peakHours

	byRole, err := GetBookingByRole()
	if err != nil {
		return nil, err
	}
	stats.BookingByRole = byRole

	return stats, nil
}

// GetBookingTrend counts bookings created per day over the last n days,
// oldest day first. Days without bookings appear with a zero count.
func GetBookingTrend(days int) ([]TrendPoint, error) {
	today, _ := DayWindow(now())
	startDate := today.AddDate(0, 0, -(days - 1))

	var bookings []models.Booking
	err := database.DB.
		Select("created_at").
		Where("created_at >= ?", startDate).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, days)
	for i := 0; i < days; i++ {
		counts[startDate.AddDate(0, 0, i).Format("2006-01-02")] = 0
	}
	for _, b := range bookings {
		key := b.CreatedAt.Format("2006-01-02")
		if _, ok := counts[key]; ok {
			counts[key]++
		}
	}

	trend := make([]TrendPoint, 0, days)
	for i := 0; i < days; i++ {
		key := startDate.AddDate(0, 0, i).Format("2006-01-02")
		trend = append(trend, TrendPoint{Date: key, Count: counts[key]})
	}
	return trend, nil
}

func GetTopRooms(limit int) ([]RoomUsage, error) {
	var rows []struct {
		RoomID string
		Count  int64
	}
	err := database.DB.Model(&models.Booking{}).
		Select("room_id, count(*) as count").
		Group("room_id").
		Order("count desc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	usage := make([]RoomUsage, 0, len(rows))
	for _, row := range rows {
		var room models.Room
		if err := database.DB.Select("name").First(&room, "id = ?", row.RoomID).Error; err == nil {
			usage = append(usage, RoomUsage{RoomID: row.RoomID, RoomName: room.Name, Count: row.Count})
		}
	}
	return usage, nil
}

func GetPeakHours() ([]HourUsage, error) {
	var bookings []models.Booking
	if err := database.DB.Select("start_time").Find(&bookings).Error; err != nil {
		return nil, err
	}

	counts := make(map[int]int64)
	for _, b := range bookings {
		counts[b.StartTime.Hour()]++
	}

	hours := make([]HourUsage, 0, 24)
	for h := 0; h < 24; h++ {
		if counts[h] > 0 {
			hours = append(hours, HourUsage{Hour: h, Count: counts[h]})
		}
	}
	return hours, nil
}

func GetBookingByRole() ([]RoleUsage, error) {
	var rows []RoleUsage
	err := database.DB.Model(&models.Booking{}).
		Select("users.role as role, count(*) as count").
		Joins("JOIN users ON users.id = bookings.user_id").
		Group("users.role").
		Order("count desc").
		Scan(&rows).Error
	return rows, err
}
