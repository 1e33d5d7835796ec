package db

import (
	"errors"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ridequest/rideon-api/internal/models"
)

var DB *gorm.DB

// ErrInvalidCredentials covers both an unknown email and a failed
// password comparison so callers cannot tell the two apart.
var ErrInvalidCredentials = errors.New("invalid email or password")

func InitDB(dsn string) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := Init(gdb); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	log.Println("database connected and migrated")
}

// Init installs the handle and migrates the schema. Tests call it with
// an in-memory sqlite handle.
func Init(gdb *gorm.DB) error {
	DB = gdb
	return DB.AutoMigrate(
		&models.School{},
		&models.Parent{},
		&models.Volunteer{},
		&models.Student{},
		&models.Event{},
		&models.SchoolEvent{},
		&models.StudentEvent{},
		&models.VolunteerEvent{},
	)
}

func PingDB() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
