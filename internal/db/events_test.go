package db_test

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/ridequest/rideon-api/internal/db"
	"github.com/ridequest/rideon-api/internal/models"
)

func mustCreateEventForSchool(t *testing.T, schoolID uint) *models.Event {
	t.Helper()
	event, err := db.CreateEventForSchool(context.Background(), models.Event{
		Title:         "Wednesday Ride",
		Type:          "ride",
		Date:          "2026-09-16",
		StartLocation: "School lot",
		EndLocation:   "River park",
		StartTime:     "15:30",
		EndTime:       "17:00",
	}, schoolID)
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	return event
}

func countStudentRecords(t *testing.T, eventID uint) int64 {
	t.Helper()
	var n int64
	if err := db.DB.Model(&models.StudentEvent{}).Where("event_id = ?", eventID).Count(&n).Error; err != nil {
		t.Fatalf("count participation records: %v", err)
	}
	return n
}

// Event creation snapshots the school's roster: the student created
// before the event gets a participation record defaulted to
// not-absent, the student created after does not.
func TestEnrollmentSnapshot(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	school := mustCreateSchool(t, "Riverside")
	parent := mustCreateParent(t, "pat@example.com")
	studentA := mustCreateStudent(t, parent.ID, school.ID, "Avery")
	schoolID := school.ID
	volunteer := mustCreateVolunteer(t, "val@example.com", &schoolID, false)

	event := mustCreateEventForSchool(t, school.ID)

	roster, err := db.GetStudentsAttendanceByEventID(ctx, event.ID)
	if err != nil {
		t.Fatalf("attendance: %v", err)
	}
	if len(roster) != 1 {
		t.Fatalf("got %d participation records, want 1", len(roster))
	}
	if roster[0].StudentID != studentA.ID || roster[0].Absent {
		t.Errorf("unexpected record: %+v", roster[0])
	}
	if roster[0].ParentPhone != parent.Phone {
		t.Errorf("roster should carry parent contact, got %+v", roster[0])
	}

	volRoster, err := db.GetVolunteersAttendanceByEventID(ctx, event.ID)
	if err != nil {
		t.Fatalf("volunteer attendance: %v", err)
	}
	if len(volRoster) != 1 || volRoster[0].VolunteerID != volunteer.ID || volRoster[0].Absent {
		t.Errorf("unexpected volunteer roster: %+v", volRoster)
	}

	// later-added students are never retroactively enrolled
	studentB := mustCreateStudent(t, parent.ID, school.ID, "Blake")
	if n := countStudentRecords(t, event.ID); n != 1 {
		t.Errorf("got %d records after adding a student, want 1", n)
	}
	if _, err := db.SetStudentAbsence(ctx, event.ID, studentB.ID, true); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("absence toggle for an unenrolled student: got %v, want ErrRecordNotFound", err)
	}
	if n := countStudentRecords(t, event.ID); n != 1 {
		t.Errorf("failed toggle must not create rows, got %d", n)
	}

	// toggling enrolled student A shows up in the attendance list
	if _, err := db.SetStudentAbsence(ctx, event.ID, studentA.ID, true); err != nil {
		t.Fatalf("set absence: %v", err)
	}
	roster, err = db.GetStudentsAttendanceByEventID(ctx, event.ID)
	if err != nil {
		t.Fatalf("attendance: %v", err)
	}
	if len(roster) != 1 || !roster[0].Absent {
		t.Errorf("student A should be marked absent, got %+v", roster)
	}
}

func TestSetAbsenceIdempotent(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	school := mustCreateSchool(t, "Riverside")
	parent := mustCreateParent(t, "pat@example.com")
	student := mustCreateStudent(t, parent.ID, school.ID, "Avery")
	event := mustCreateEventForSchool(t, school.ID)

	first, err := db.SetStudentAbsence(ctx, event.ID, student.ID, true)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	second, err := db.SetStudentAbsence(ctx, event.ID, student.ID, true)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if first.ID != second.ID || !second.Absent {
		t.Errorf("repeated toggle changed state: %+v vs %+v", first, second)
	}
	if n := countStudentRecords(t, event.ID); n != 1 {
		t.Errorf("got %d records, want 1", n)
	}

	// and back
	cleared, err := db.SetStudentAbsence(ctx, event.ID, student.ID, false)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if cleared.Absent {
		t.Error("flag should be cleared")
	}
}

func TestEnrollmentRerunDoesNotDuplicate(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	school := mustCreateSchool(t, "Riverside")
	parent := mustCreateParent(t, "pat@example.com")
	mustCreateStudent(t, parent.ID, school.ID, "Avery")
	mustCreateStudent(t, parent.ID, school.ID, "Blake")
	event := mustCreateEventForSchool(t, school.ID)

	if err := db.EnrollParticipantsForEvent(ctx, school.ID, event.ID); err != nil {
		t.Fatalf("re-run enrollment: %v", err)
	}
	if n := countStudentRecords(t, event.ID); n != 2 {
		t.Errorf("got %d records after re-run, want 2", n)
	}
}

func TestVolunteerAbsence(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	school := mustCreateSchool(t, "Riverside")
	schoolID := school.ID
	volunteer := mustCreateVolunteer(t, "val@example.com", &schoolID, false)
	event := mustCreateEventForSchool(t, school.ID)

	record, err := db.SetVolunteerAbsence(ctx, event.ID, volunteer.ID, true)
	if err != nil {
		t.Fatalf("set absence: %v", err)
	}
	if !record.Absent {
		t.Errorf("unexpected record: %+v", record)
	}

	outsider := mustCreateVolunteer(t, "out@example.com", nil, false)
	if _, err := db.SetVolunteerAbsence(ctx, event.ID, outsider.ID, true); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("unenrolled volunteer: got %v, want ErrRecordNotFound", err)
	}
}

func TestEventsByMembership(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	school := mustCreateSchool(t, "Riverside")
	other := mustCreateSchool(t, "Hillcrest")
	parent := mustCreateParent(t, "pat@example.com")
	student := mustCreateStudent(t, parent.ID, school.ID, "Avery")
	schoolID := school.ID
	volunteer := mustCreateVolunteer(t, "val@example.com", &schoolID, false)

	event := mustCreateEventForSchool(t, school.ID)
	mustCreateEventForSchool(t, other.ID)

	studentEvents, err := db.GetEventsByStudentID(ctx, student.ID)
	if err != nil {
		t.Fatalf("student events: %v", err)
	}
	if len(studentEvents) != 1 || studentEvents[0].ID != event.ID {
		t.Errorf("student should see only their school's event, got %+v", studentEvents)
	}

	volunteerEvents, err := db.GetEventsByVolunteerID(ctx, volunteer.ID)
	if err != nil {
		t.Fatalf("volunteer events: %v", err)
	}
	if len(volunteerEvents) != 1 || volunteerEvents[0].ID != event.ID {
		t.Errorf("volunteer should see only their school's event, got %+v", volunteerEvents)
	}
}

func TestUpdateEvent(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	school := mustCreateSchool(t, "Riverside")
	event := mustCreateEventForSchool(t, school.ID)

	merged := *event
	merged.Title = "Rescheduled Ride"
	updated, err := db.UpdateEvent(ctx, event.ID, merged)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Rescheduled Ride" || updated.Type != event.Type {
		t.Errorf("unexpected update result: %+v", updated)
	}

	if _, err := db.UpdateEvent(ctx, 999, merged); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("missing event: got %v, want ErrRecordNotFound", err)
	}
}

func TestDeleteEventRemovesJoins(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	school := mustCreateSchool(t, "Riverside")
	parent := mustCreateParent(t, "pat@example.com")
	mustCreateStudent(t, parent.ID, school.ID, "Avery")
	event := mustCreateEventForSchool(t, school.ID)

	if err := db.DeleteEvent(ctx, event.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := db.GetEventByID(ctx, event.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("event should be gone, got %v", err)
	}
	if n := countStudentRecords(t, event.ID); n != 0 {
		t.Errorf("participation records should be gone, got %d", n)
	}
	var links int64
	if err := db.DB.Model(&models.SchoolEvent{}).Where("event_id = ?", event.ID).Count(&links).Error; err != nil {
		t.Fatalf("count links: %v", err)
	}
	if links != 0 {
		t.Errorf("school links should be gone, got %d", links)
	}
}
