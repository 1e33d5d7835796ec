package db_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/ridequest/rideon-api/internal/db"
	"github.com/ridequest/rideon-api/internal/models"
)

// setupDB points the package handle at a fresh in-memory sqlite
// database so each test runs the real queries against a migrated
// schema.
func setupDB(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// one connection so every statement sees the same :memory: database
	sqlDB.SetMaxOpenConns(1)
	if err := db.Init(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
}

func mustCreateSchool(t *testing.T, name string) *models.School {
	t.Helper()
	school, err := db.CreateSchool(context.Background(), models.School{
		Name:    name,
		Address: "12 Main St",
		Day:     "Wednesday",
	})
	if err != nil {
		t.Fatalf("create school: %v", err)
	}
	return school
}

func mustCreateParent(t *testing.T, email string) *models.Parent {
	t.Helper()
	parent, err := db.CreateParent(context.Background(), models.Parent{
		Email:     email,
		FirstName: "Pat",
		LastName:  "Taylor",
		Phone:     "555-0101",
		Address:   "34 Oak Ave",
		Waiver:    true,
	}, "password")
	if err != nil {
		t.Fatalf("create parent: %v", err)
	}
	return parent
}

func mustCreateStudent(t *testing.T, parentID, schoolID uint, first string) *models.Student {
	t.Helper()
	student, err := db.CreateStudent(context.Background(), models.Student{
		FirstName: first,
		LastName:  "Taylor",
		Birthdate: "2014-04-01",
		BikeSize:  "S",
		ShirtSize: "M",
		Status:    "active",
		ParentID:  parentID,
		SchoolID:  schoolID,
	})
	if err != nil {
		t.Fatalf("create student: %v", err)
	}
	return student
}

func mustCreateVolunteer(t *testing.T, email string, schoolID *uint, facilitator bool) *models.Volunteer {
	t.Helper()
	volunteer, err := db.CreateVolunteer(context.Background(), models.Volunteer{
		Email:       email,
		FirstName:   "Val",
		LastName:    "Ng",
		Phone:       "555-0202",
		Facilitator: facilitator,
		SchoolID:    schoolID,
		Status:      "active",
	}, "password")
	if err != nil {
		t.Fatalf("create volunteer: %v", err)
	}
	return volunteer
}
