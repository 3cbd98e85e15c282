package database

import (
	"fmt"
	"log"

	config "github.com/jiraphat04/classroom_booking/configs"
	"github.com/jiraphat04/classroom_booking/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
		&models.RecurringBooking{},
		&models.Notification{},
		&models.Announcement{},
		&models.Semester{},
		&models.SpecialDate{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedStaff() {
	staffUsername := config.Config("STAFF_USERNAME")
	staffPassword := config.Config("STAFF_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("username = ?", staffUsername).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for staff user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Staff user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(staffPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash staff password: %v", err)
		return
	}

	staffUser := models.User{
		Username: staffUsername,
		FullName: config.Config("STAFF_FULL_NAME"),
		Password: string(hashedPassword),
		Role:     models.RoleStaff,
	}

	if err := DB.Create(&staffUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed staff user: %v", err)
		return
	}

	log.Println("✅ Staff user seeded successfully")
}
