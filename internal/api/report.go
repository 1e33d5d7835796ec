package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/ridequest/rideon-api/internal/db"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EventAttendanceReport godoc
// @Summary      Download the event attendance roster as a spreadsheet
// @Description  One sheet of students with parent contact, one sheet of volunteers, each with the absent flag
// @Tags         facilitator
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id       path  int  true  "Volunteer ID"
// @Param        eventId  path  int  true  "Event ID"
// @Success      200 {file} file
// @Security     BearerAuth
// @Router       /volunteers/facilitator/{id}/events/{eventId}/report [get]
func EventAttendanceReport(c *gin.Context) {
	event := scopedEvent(c)
	students, err := db.GetStudentsAttendanceByEventID(c.Request.Context(), event.ID)
	if err != nil {
		abortInternal(c, err)
		return
	}
	volunteers, err := db.GetVolunteersAttendanceByEventID(c.Request.Context(), event.ID)
	if err != nil {
		abortInternal(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", "Students")
	header := []interface{}{"Student", "Parent", "Parent phone", "Absent"}
	if err := f.SetSheetRow("Students", "A1", &header); err != nil {
		abortInternal(c, err)
		return
	}
	for i, s := range students {
		row := []interface{}{
			s.StudentFirstName + " " + s.StudentLastName,
			s.ParentFirstName + " " + s.ParentLastName,
			s.ParentPhone,
			s.Absent,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow("Students", cell, &row); err != nil {
			abortInternal(c, err)
			return
		}
	}

	if _, err := f.NewSheet("Volunteers"); err != nil {
		abortInternal(c, err)
		return
	}
	volHeader := []interface{}{"Volunteer", "Phone", "Absent"}
	if err := f.SetSheetRow("Volunteers", "A1", &volHeader); err != nil {
		abortInternal(c, err)
		return
	}
	for i, v := range volunteers {
		row := []interface{}{
			v.VolunteerFirstName + " " + v.VolunteerLastName,
			v.VolunteerPhone,
			v.Absent,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow("Volunteers", cell, &row); err != nil {
			abortInternal(c, err)
			return
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		abortInternal(c, err)
		return
	}
	filename := fmt.Sprintf("event-%d-attendance.xlsx", event.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
