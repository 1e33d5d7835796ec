package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/ridequest/rideon-api/internal/models"
)

func GetEventByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := DB.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func GetEventsBySchoolID(ctx context.Context, schoolID uint) ([]models.Event, error) {
	var events []models.Event
	err := DB.WithContext(ctx).
		Joins("INNER JOIN schools_events ON schools_events.event_id = events.id").
		Where("schools_events.school_id = ?", schoolID).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetEventsByStudentID resolves events through the student's current
// school membership, not through participation records, so a student
// moved to another school sees that school's events.
func GetEventsByStudentID(ctx context.Context, studentID uint) ([]models.Event, error) {
	var events []models.Event
	err := DB.WithContext(ctx).
		Joins("INNER JOIN schools_events ON schools_events.event_id = events.id").
		Joins("INNER JOIN students ON students.school_id = schools_events.school_id").
		Where("students.id = ?", studentID).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func GetEventsByVolunteerID(ctx context.Context, volunteerID uint) ([]models.Event, error) {
	var events []models.Event
	err := DB.WithContext(ctx).
		Joins("INNER JOIN schools_events ON schools_events.event_id = events.id").
		Joins("INNER JOIN volunteers ON volunteers.school_id = schools_events.school_id").
		Where("volunteers.id = ?", volunteerID).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent persists a bare event with no school link and no
// participants. Used when the creating facilitator has no assigned
// school.
func CreateEvent(ctx context.Context, e models.Event) (*models.Event, error) {
	if err := DB.WithContext(ctx).Create(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEventForSchool creates the event, links it to the school, and
// bulk-enrolls the school's current students and volunteers, all in
// one transaction so a failed enrollment cannot orphan the event.
func CreateEventForSchool(ctx context.Context, e models.Event, schoolID uint) (*models.Event, error) {
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&e).Error; err != nil {
			return err
		}
		link := models.SchoolEvent{SchoolID: schoolID, EventID: e.ID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		return enrollParticipants(tx, schoolID, e.ID)
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// EnrollParticipantsForEvent snapshots the school's current roster
// into participation records, defaulted to not-absent. Re-running it
// for the same pair is a no-op thanks to the unique participation
// indexes.
func EnrollParticipantsForEvent(ctx context.Context, schoolID, eventID uint) error {
	return enrollParticipants(DB.WithContext(ctx), schoolID, eventID)
}

func enrollParticipants(tx *gorm.DB, schoolID, eventID uint) error {
	if err := tx.Exec(`
		INSERT INTO students_events (student_id, event_id, absent)
		SELECT id, ?, FALSE FROM students WHERE school_id = ?
		ON CONFLICT DO NOTHING`, eventID, schoolID).Error; err != nil {
		return err
	}
	return tx.Exec(`
		INSERT INTO volunteers_events (volunteer_id, event_id, absent)
		SELECT id, ?, FALSE FROM volunteers WHERE school_id = ?
		ON CONFLICT DO NOTHING`, eventID, schoolID).Error
}

// SetStudentAbsence flips the absent flag on an existing participation
// record. It never inserts: an unenrolled student reports
// ErrRecordNotFound.
func SetStudentAbsence(ctx context.Context, eventID, studentID uint, absent bool) (*models.StudentEvent, error) {
	tx := DB.WithContext(ctx).Model(&models.StudentEvent{}).
		Where("event_id = ? AND student_id = ?", eventID, studentID).
		Update("absent", absent)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var record models.StudentEvent
	if err := DB.WithContext(ctx).
		Where("event_id = ? AND student_id = ?", eventID, studentID).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func SetVolunteerAbsence(ctx context.Context, eventID, volunteerID uint, absent bool) (*models.VolunteerEvent, error) {
	tx := DB.WithContext(ctx).Model(&models.VolunteerEvent{}).
		Where("event_id = ? AND volunteer_id = ?", eventID, volunteerID).
		Update("absent", absent)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var record models.VolunteerEvent
	if err := DB.WithContext(ctx).
		Where("event_id = ? AND volunteer_id = ?", eventID, volunteerID).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// GetStudentsAttendanceByEventID returns the enrolled students with
// the parent contact a facilitator calls about an absence.
func GetStudentsAttendanceByEventID(ctx context.Context, eventID uint) ([]models.StudentAttendance, error) {
	var rows []models.StudentAttendance
	err := DB.WithContext(ctx).Table("students_events").
		Select(`students.id AS student_id,
			students.first_name AS student_first_name,
			students.last_name AS student_last_name,
			parents.first_name AS parent_first_name,
			parents.last_name AS parent_last_name,
			parents.phone AS parent_phone,
			students_events.absent AS absent`).
		Joins("INNER JOIN students ON students.id = students_events.student_id").
		Joins("INNER JOIN parents ON parents.id = students.parent_id").
		Where("students_events.event_id = ?", eventID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func GetVolunteersAttendanceByEventID(ctx context.Context, eventID uint) ([]models.VolunteerAttendance, error) {
	var rows []models.VolunteerAttendance
	err := DB.WithContext(ctx).Table("volunteers_events").
		Select(`volunteers.id AS volunteer_id,
			volunteers.first_name AS volunteer_first_name,
			volunteers.last_name AS volunteer_last_name,
			volunteers.phone AS volunteer_phone,
			volunteers_events.absent AS absent`).
		Joins("INNER JOIN volunteers ON volunteers.id = volunteers_events.volunteer_id").
		Where("volunteers_events.event_id = ?", eventID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func UpdateEvent(ctx context.Context, id uint, e models.Event) (*models.Event, error) {
	tx := DB.WithContext(ctx).Model(&models.Event{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":          e.Title,
		"type":           e.Type,
		"date":           e.Date,
		"start_location": e.StartLocation,
		"end_location":   e.EndLocation,
		"start_time":     e.StartTime,
		"end_time":       e.EndTime,
	})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return GetEventByID(ctx, id)
}

// DeleteEvent removes the event along with its school links and
// participation records.
func DeleteEvent(ctx context.Context, id uint) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.StudentEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.VolunteerEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.SchoolEvent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, id).Error
	})
}
