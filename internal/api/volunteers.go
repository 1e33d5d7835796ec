package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ridequest/rideon-api/internal/auth"
	"github.com/ridequest/rideon-api/internal/db"
)

// RerouteVolunteer godoc
// @Summary      Redirect a volunteer to their role-appropriate tree
// @Tags         volunteers
// @Success      302
// @Security     BearerAuth
// @Router       /volunteers/ [get]
func RerouteVolunteer(c *gin.Context) {
	volunteer, _ := auth.CurrentVolunteer(c)
	facilitator, err := db.IsFacilitator(c.Request.Context(), volunteer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Volunteer not found"})
			return
		}
		abortInternal(c, err)
		return
	}
	base := "volunteer"
	if facilitator {
		base = "facilitator"
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/volunteers/%s/%d", base, volunteer.ID))
}

// GetVolunteerProfile godoc
// @Summary      Get volunteer profile
// @Tags         volunteers
// @Produce      json
// @Param        id  path  int  true  "Volunteer ID"
// @Success      201 {object} models.Volunteer
// @Failure      403 {object} map[string]string
// @Security     BearerAuth
// @Router       /volunteers/volunteer/{id} [get]
func GetVolunteerProfile(c *gin.Context) {
	c.JSON(http.StatusCreated, scopedVolunteer(c))
}

// ListVolunteerEvents godoc
// @Summary      List the events of the volunteer's school
// @Tags         volunteers
// @Produce      json
// @Param        id  path  int  true  "Volunteer ID"
// @Success      201 {array} models.Event
// @Security     BearerAuth
// @Router       /volunteers/volunteer/{id}/events [get]
func ListVolunteerEvents(c *gin.Context) {
	c.JSON(http.StatusCreated, scopedEvents(c))
}

// GetScopedEvent godoc
// @Summary      Get one event from the authorized set
// @Tags         volunteers
// @Produce      json
// @Param        id       path  int  true  "Volunteer ID"
// @Param        eventId  path  int  true  "Event ID"
// @Success      201 {object} models.Event
// @Failure      403 {object} map[string]string
// @Security     BearerAuth
// @Router       /volunteers/volunteer/{id}/events/{eventId} [get]
func GetScopedEvent(c *gin.Context) {
	c.JSON(http.StatusCreated, scopedEvent(c))
}

// ListEventStudents godoc
// @Summary      Student attendance for an event
// @Description  Enrolled students with parent contact and absent flag
// @Tags         volunteers
// @Produce      json
// @Param        id       path  int  true  "Volunteer ID"
// @Param        eventId  path  int  true  "Event ID"
// @Success      200 {array} models.StudentAttendance
// @Security     BearerAuth
// @Router       /volunteers/volunteer/{id}/events/{eventId}/students [get]
func ListEventStudents(c *gin.Context) {
	students, err := db.GetStudentsAttendanceByEventID(c.Request.Context(), scopedEvent(c).ID)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// ListEventVolunteers godoc
// @Summary      Volunteer attendance for an event
// @Tags         volunteers
// @Produce      json
// @Param        id       path  int  true  "Volunteer ID"
// @Param        eventId  path  int  true  "Event ID"
// @Success      200 {array} models.VolunteerAttendance
// @Security     BearerAuth
// @Router       /volunteers/volunteer/{id}/events/{eventId}/volunteers [get]
func ListEventVolunteers(c *gin.Context) {
	volunteers, err := db.GetVolunteersAttendanceByEventID(c.Request.Context(), scopedEvent(c).ID)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, volunteers)
}

// SetVolunteerAbsenceHandler godoc
// @Summary      Report or clear the volunteer's own absence
// @Tags         volunteers
// @Accept       json
// @Produce      json
// @Param        id       path  int             true  "Volunteer ID"
// @Param        eventId  path  int             true  "Event ID"
// @Param        body     body  AbsenceRequest  false "Absence flag (defaults to true)"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /volunteers/volunteer/{id}/events/{eventId}/absence [put]
func SetVolunteerAbsenceHandler(c *gin.Context) {
	var req AbsenceRequest
	_ = c.ShouldBindJSON(&req)
	absent := true
	if req.Absent != nil {
		absent = *req.Absent
	}
	volunteer := scopedVolunteer(c)
	record, err := db.SetVolunteerAbsence(c.Request.Context(), scopedEvent(c).ID, volunteer.ID, absent)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Volunteer is not enrolled in this event"})
			return
		}
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Volunteer absence updated.", "record": record})
}
