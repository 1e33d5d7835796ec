package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"

	"github.com/ridequest/rideon-api/internal/config"
	"github.com/ridequest/rideon-api/internal/db"
	"github.com/ridequest/rideon-api/internal/models"
)

// Development seeder: 5 schools, 30 parents with students, 15
// volunteers (5 facilitators), and one event per school with the
// enrollment fan-out. Every principal's password is "password".
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system env")
	}

	cfg := config.Load()
	db.InitDB(cfg.DBUrl)

	ctx := context.Background()

	shirtSizes := []string{"S", "M", "L"}
	bikeSizes := []string{"XS", "S", "M", "L", "XL"}
	statuses := []string{"active", "inactive"}
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

	var schools []models.School
	for i := 0; i < 5; i++ {
		school, err := db.CreateSchool(ctx, models.School{
			Name:    gofakeit.City() + " School",
			Address: gofakeit.Address().Street,
			Day:     gofakeit.RandomString(days),
		})
		if err != nil {
			log.Fatalf("seed school: %v", err)
		}
		schools = append(schools, *school)
	}

	var parents []models.Parent
	for i := 0; i < 30; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		parent, err := db.CreateParent(ctx, models.Parent{
			Email:     seedEmail(first, last, i),
			FirstName: first,
			LastName:  last,
			Phone:     gofakeit.Phone(),
			Address:   gofakeit.Address().Street,
			Waiver:    gofakeit.Bool(),
		}, "password")
		if err != nil {
			log.Fatalf("seed parent: %v", err)
		}
		parents = append(parents, *parent)
	}

	studentCount := 0
	for _, parent := range parents {
		school := schools[gofakeit.Number(0, len(schools)-1)]
		for n := gofakeit.Number(1, 3); n > 0; n-- {
			_, err := db.CreateStudent(ctx, models.Student{
				FirstName:  gofakeit.FirstName(),
				LastName:   parent.LastName,
				Birthdate:  gofakeit.DateRange(timeYearsAgo(14), timeYearsAgo(8)).Format("2006-01-02"),
				BikeSize:   gofakeit.RandomString(bikeSizes),
				ShirtSize:  gofakeit.RandomString(shirtSizes),
				EarnedBike: gofakeit.Bool(),
				Status:     gofakeit.RandomString(statuses),
				ParentID:   parent.ID,
				SchoolID:   school.ID,
			})
			if err != nil {
				log.Fatalf("seed student: %v", err)
			}
			studentCount++
		}
	}

	var facilitators []models.Volunteer
	for i := 0; i < 15; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		school := schools[gofakeit.Number(0, len(schools)-1)]
		schoolID := school.ID
		volunteer, err := db.CreateVolunteer(ctx, models.Volunteer{
			Email:           seedEmail(first, last, 100+i),
			FirstName:       first,
			LastName:        last,
			Birthdate:       gofakeit.DateRange(timeYearsAgo(65), timeYearsAgo(25)).Format("2006-01-02"),
			Interest:        gofakeit.Hobby(),
			Phone:           gofakeit.Phone(),
			Facilitator:     i < 5,
			PreferredSchool: school.Name,
			SchoolID:        &schoolID,
			Flexible:        gofakeit.Bool(),
			BackgroundCheck: gofakeit.Bool(),
			Status:          gofakeit.RandomString(statuses),
		}, "password")
		if err != nil {
			log.Fatalf("seed volunteer: %v", err)
		}
		if volunteer.Facilitator {
			facilitators = append(facilitators, *volunteer)
		}
	}

	for _, school := range schools {
		_, err := db.CreateEventForSchool(ctx, models.Event{
			Title:         "Ride at " + school.Name,
			Type:          "ride",
			Date:          gofakeit.FutureDate().Format("2006-01-02"),
			StartLocation: school.Name,
			EndLocation:   gofakeit.Address().Street,
			StartTime:     "15:30",
			EndTime:       "17:00",
		}, school.ID)
		if err != nil {
			log.Fatalf("seed event: %v", err)
		}
	}

	log.Printf("seeded %d schools, %d parents, %d students, 15 volunteers (%d facilitators), %d events",
		len(schools), len(parents), studentCount, len(facilitators), len(schools))
}

func seedEmail(first, last string, n int) string {
	return fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), n)
}

func timeYearsAgo(years int) time.Time {
	return time.Now().AddDate(-years, 0, 0)
}
