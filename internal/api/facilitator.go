package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ridequest/rideon-api/internal/db"
	"github.com/ridequest/rideon-api/internal/models"
)

// CreateEventRequest is the body for event creation. All fields are
// required.
type CreateEventRequest struct {
	Title         string `json:"title" binding:"required"`
	Type          string `json:"type" binding:"required"`
	Date          string `json:"date" binding:"required"`
	StartLocation string `json:"startLocation" binding:"required"`
	EndLocation   string `json:"endLocation" binding:"required"`
	StartTime     string `json:"startTime" binding:"required"`
	EndTime       string `json:"endTime" binding:"required"`
}

// CreateEventHandler godoc
// @Summary      Create an event for the facilitator's school
// @Description  Creates the event, links it to the school, and enrolls the school's current students and volunteers in one transaction
// @Tags         facilitator
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "Volunteer ID"
// @Param        body  body  CreateEventRequest  true  "Event"
// @Success      201   {object} map[string]interface{}
// @Failure      400   {object} map[string]string
// @Failure      403   {object} map[string]string
// @Security     BearerAuth
// @Router       /volunteers/facilitator/{id}/events [post]
func CreateEventHandler(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required event fields"})
		return
	}
	event := models.Event{
		Title:         req.Title,
		Type:          req.Type,
		Date:          req.Date,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
	}
	profile := scopedVolunteer(c)
	var created *models.Event
	var err error
	if profile.SchoolID != nil {
		created, err = db.CreateEventForSchool(c.Request.Context(), event, *profile.SchoolID)
	} else {
		created, err = db.CreateEvent(c.Request.Context(), event)
	}
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "New event added.", "event": created})
}

// UpdateEventRequest carries a partial event; unset fields keep their
// stored values.
type UpdateEventRequest struct {
	Title         *string `json:"title"`
	Type          *string `json:"type"`
	Date          *string `json:"date"`
	StartLocation *string `json:"startLocation"`
	EndLocation   *string `json:"endLocation"`
	StartTime     *string `json:"startTime"`
	EndTime       *string `json:"endTime"`
}

// UpdateEventHandler godoc
// @Summary      Update an event
// @Tags         facilitator
// @Accept       json
// @Produce      json
// @Param        id       path  int                 true  "Volunteer ID"
// @Param        eventId  path  int                 true  "Event ID"
// @Param        body     body  UpdateEventRequest  true  "Partial event"
// @Success      200 {object} models.Event
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /volunteers/facilitator/{id}/events/{eventId} [put]
func UpdateEventHandler(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	merged := *scopedEvent(c)
	if req.Title != nil {
		merged.Title = *req.Title
	}
	if req.Type != nil {
		merged.Type = *req.Type
	}
	if req.Date != nil {
		merged.Date = *req.Date
	}
	if req.StartLocation != nil {
		merged.StartLocation = *req.StartLocation
	}
	if req.EndLocation != nil {
		merged.EndLocation = *req.EndLocation
	}
	if req.StartTime != nil {
		merged.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		merged.EndTime = *req.EndTime
	}
	updated, err := db.UpdateEvent(c.Request.Context(), merged.ID, merged)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found to update"})
			return
		}
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteEventHandler godoc
// @Summary      Delete an event and its participation records
// @Tags         facilitator
// @Param        id       path  int  true  "Volunteer ID"
// @Param        eventId  path  int  true  "Event ID"
// @Success      204
// @Security     BearerAuth
// @Router       /volunteers/facilitator/{id}/events/{eventId} [delete]
func DeleteEventHandler(c *gin.Context) {
	if err := db.DeleteEvent(c.Request.Context(), scopedEvent(c).ID); err != nil {
		abortInternal(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
