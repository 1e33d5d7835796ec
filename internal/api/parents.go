package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ridequest/rideon-api/internal/db"
)

// GetParentProfile godoc
// @Summary      Get parent profile
// @Tags         parents
// @Produce      json
// @Param        id  path  int  true  "Parent ID"
// @Success      201 {object} models.Parent
// @Failure      403 {object} map[string]string
// @Security     BearerAuth
// @Router       /parents/{id} [get]
func GetParentProfile(c *gin.Context) {
	c.JSON(http.StatusCreated, scopedParent(c))
}

// UpdateParentRequest carries a partial parent profile. Unset fields
// keep their stored values. The password is required and re-hashed on
// every update, so the current one must be supplied when unchanged.
type UpdateParentRequest struct {
	Email     *string `json:"email"`
	Password  string  `json:"password" binding:"required"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Waiver    *bool   `json:"waiver"`
}

// UpdateParentProfile godoc
// @Summary      Update parent profile
// @Tags         parents
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "Parent ID"
// @Param        body  body  UpdateParentRequest  true  "Partial profile; password required"
// @Success      200   {object} models.Parent
// @Failure      400   {object} map[string]string
// @Security     BearerAuth
// @Router       /parents/{id} [put]
func UpdateParentProfile(c *gin.Context) {
	var req UpdateParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}
	merged := *scopedParent(c)
	if req.Email != nil {
		merged.Email = *req.Email
	}
	if req.FirstName != nil {
		merged.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		merged.LastName = *req.LastName
	}
	if req.Phone != nil {
		merged.Phone = *req.Phone
	}
	if req.Address != nil {
		merged.Address = *req.Address
	}
	if req.Waiver != nil {
		merged.Waiver = *req.Waiver
	}
	updated, err := db.UpdateParentInfo(c.Request.Context(), merged.ID, merged, req.Password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Parent not found"})
			return
		}
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListParentStudents godoc
// @Summary      List the parent's students
// @Tags         parents
// @Produce      json
// @Param        id  path  int  true  "Parent ID"
// @Success      201 {array} models.Student
// @Security     BearerAuth
// @Router       /parents/{id}/students [get]
func ListParentStudents(c *gin.Context) {
	c.JSON(http.StatusCreated, scopedStudents(c))
}

// GetStudent godoc
// @Summary      Get one of the parent's students
// @Tags         parents
// @Produce      json
// @Param        id         path  int  true  "Parent ID"
// @Param        studentId  path  int  true  "Student ID"
// @Success      201 {object} models.Student
// @Failure      403 {object} map[string]string
// @Security     BearerAuth
// @Router       /parents/{id}/students/{studentId} [get]
func GetStudent(c *gin.Context) {
	c.JSON(http.StatusCreated, scopedStudent(c))
}

// UpdateStudentRequest carries a partial student record; unset fields
// keep their stored values.
type UpdateStudentRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Birthdate  *string `json:"birthdate"`
	BikeSize   *string `json:"bike_size"`
	ShirtSize  *string `json:"shirt_size"`
	EarnedBike *bool   `json:"earned_bike"`
	Status     *string `json:"status"`
	ParentID   *uint   `json:"parent_id"`
	SchoolID   *uint   `json:"school_id"`
}

// UpdateStudentHandler godoc
// @Summary      Update one of the parent's students
// @Tags         parents
// @Accept       json
// @Produce      json
// @Param        id         path  int                   true  "Parent ID"
// @Param        studentId  path  int                   true  "Student ID"
// @Param        body       body  UpdateStudentRequest  true  "Partial student"
// @Success      200 {object} models.Student
// @Failure      400 {object} map[string]string
// @Security     BearerAuth
// @Router       /parents/{id}/students/{studentId} [put]
func UpdateStudentHandler(c *gin.Context) {
	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	merged := *scopedStudent(c)
	if req.FirstName != nil {
		merged.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		merged.LastName = *req.LastName
	}
	if req.Birthdate != nil {
		merged.Birthdate = *req.Birthdate
	}
	if req.BikeSize != nil {
		merged.BikeSize = *req.BikeSize
	}
	if req.ShirtSize != nil {
		merged.ShirtSize = *req.ShirtSize
	}
	if req.EarnedBike != nil {
		merged.EarnedBike = *req.EarnedBike
	}
	if req.Status != nil {
		merged.Status = *req.Status
	}
	if req.ParentID != nil {
		merged.ParentID = *req.ParentID
	}
	if req.SchoolID != nil {
		merged.SchoolID = *req.SchoolID
	}
	updated, err := db.UpdateStudent(c.Request.Context(), merged.ID, merged)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found to update"})
			return
		}
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListStudentEvents godoc
// @Summary      List the student's events
// @Tags         parents
// @Produce      json
// @Param        id         path  int  true  "Parent ID"
// @Param        studentId  path  int  true  "Student ID"
// @Success      201 {array} models.Event
// @Security     BearerAuth
// @Router       /parents/{id}/students/{studentId}/events [get]
func ListStudentEvents(c *gin.Context) {
	c.JSON(http.StatusCreated, scopedEvents(c))
}

// AbsenceRequest optionally carries the flag value; omitting it
// reports an absence.
type AbsenceRequest struct {
	Absent *bool `json:"absent"`
}

// SetStudentAbsenceHandler godoc
// @Summary      Report or clear a student's absence for an event
// @Tags         parents
// @Accept       json
// @Produce      json
// @Param        id         path  int             true  "Parent ID"
// @Param        studentId  path  int             true  "Student ID"
// @Param        eventId    path  int             true  "Event ID"
// @Param        body       body  AbsenceRequest  false "Absence flag (defaults to true)"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /parents/{id}/students/{studentId}/events/{eventId}/absence [put]
func SetStudentAbsenceHandler(c *gin.Context) {
	var req AbsenceRequest
	_ = c.ShouldBindJSON(&req)
	absent := true
	if req.Absent != nil {
		absent = *req.Absent
	}
	record, err := db.SetStudentAbsence(c.Request.Context(), scopedEvent(c).ID, scopedStudent(c).ID, absent)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student is not enrolled in this event"})
			return
		}
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student absence updated.", "record": record})
}
