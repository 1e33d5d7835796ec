package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ridequest/rideon-api/internal/auth"
	"github.com/ridequest/rideon-api/internal/db"
	"github.com/ridequest/rideon-api/internal/models"
)

// Each path segment narrows the authorization scope before the next
// segment's handler runs. Nested ids are checked against the set the
// parent segment already loaded, never looked up unrestricted, so
// swapping a path parameter cannot reach another principal's data.
const (
	parentProfileKey    = "scope.parentProfile"
	volunteerProfileKey = "scope.volunteerProfile"
	studentsKey         = "scope.students"
	studentKey          = "scope.student"
	eventsKey           = "scope.events"
	eventKey            = "scope.event"
)

// ParentScope enforces that the :id segment is the authenticated
// parent, then loads the profile and the parent's students.
func ParentScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
			return
		}
		parent, _ := auth.CurrentParent(c)
		if parent.ID != id {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		profile, err := db.GetParentByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
				return
			}
			abortInternal(c, err)
			return
		}
		students, err := db.GetStudentsByParentID(c.Request.Context(), id)
		if err != nil {
			abortInternal(c, err)
			return
		}
		c.Set(parentProfileKey, profile)
		c.Set(studentsKey, students)
		c.Next()
	}
}

// StudentScope verifies the :studentId segment against the student set
// ParentScope loaded, then reloads the student fresh and loads the
// student's events.
func StudentScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "studentId")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid student id"})
			return
		}
		students := c.MustGet(studentsKey).([]models.Student)
		if !containsStudent(students, id) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		student, err := db.GetStudentByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Student not found"})
				return
			}
			abortInternal(c, err)
			return
		}
		events, err := db.GetEventsByStudentID(c.Request.Context(), id)
		if err != nil {
			abortInternal(c, err)
			return
		}
		c.Set(studentKey, student)
		c.Set(eventsKey, events)
		c.Next()
	}
}

// VolunteerScope enforces that the :id segment is the authenticated
// volunteer, then loads the profile and the events of the volunteer's
// school.
func VolunteerScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
			return
		}
		volunteer, _ := auth.CurrentVolunteer(c)
		if volunteer.ID != id {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		profile, err := db.GetVolunteerByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
				return
			}
			abortInternal(c, err)
			return
		}
		events, err := db.GetEventsByVolunteerID(c.Request.Context(), id)
		if err != nil {
			abortInternal(c, err)
			return
		}
		c.Set(volunteerProfileKey, profile)
		c.Set(eventsKey, events)
		c.Next()
	}
}

// EventScope verifies the :eventId segment against the event set the
// enclosing scope loaded, then reloads the event fresh.
func EventScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "eventId")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
			return
		}
		events := c.MustGet(eventsKey).([]models.Event)
		if !containsEvent(events, id) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		event, err := db.GetEventByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Event not found"})
				return
			}
			abortInternal(c, err)
			return
		}
		c.Set(eventKey, event)
		c.Next()
	}
}

func scopedParent(c *gin.Context) *models.Parent {
	return c.MustGet(parentProfileKey).(*models.Parent)
}

func scopedVolunteer(c *gin.Context) *models.Volunteer {
	return c.MustGet(volunteerProfileKey).(*models.Volunteer)
}

func scopedStudents(c *gin.Context) []models.Student {
	return c.MustGet(studentsKey).([]models.Student)
}

func scopedStudent(c *gin.Context) *models.Student {
	return c.MustGet(studentKey).(*models.Student)
}

func scopedEvents(c *gin.Context) []models.Event {
	return c.MustGet(eventsKey).([]models.Event)
}

func scopedEvent(c *gin.Context) *models.Event {
	return c.MustGet(eventKey).(*models.Event)
}

func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(id), err
}

func containsStudent(students []models.Student, id uint) bool {
	for _, s := range students {
		if s.ID == id {
			return true
		}
	}
	return false
}

func containsEvent(events []models.Event, id uint) bool {
	for _, e := range events {
		if e.ID == id {
			return true
		}
	}
	return false
}

func abortInternal(c *gin.Context, err error) {
	log.Printf("internal error: %v", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
}
