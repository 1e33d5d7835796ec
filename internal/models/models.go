package models

// Parent owns zero or more students. The password column holds a
// bcrypt hash and is never serialized.
type Parent struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `gorm:"column:first_name" json:"first_name"`
	LastName  string `gorm:"column:last_name" json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Waiver    bool   `json:"waiver"`
}

func (Parent) TableName() string { return "parents" }

type Volunteer struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Email           string `gorm:"uniqueIndex;not null" json:"email"`
	Password        string `gorm:"not null" json:"-"`
	FirstName       string `gorm:"column:first_name" json:"first_name"`
	LastName        string `gorm:"column:last_name" json:"last_name"`
	Birthdate       string `json:"birthdate"`
	Interest        string `json:"interest"`
	Phone           string `json:"phone"`
	Facilitator     bool   `json:"facilitator"`
	PreferredSchool string `gorm:"column:preferred_school" json:"preferred_school"`
	SchoolID        *uint  `gorm:"column:school_id;index" json:"school_id"`
	Flexible        bool   `json:"flexible"`
	BackgroundCheck bool   `gorm:"column:background_check" json:"background_check"`
	Status          string `json:"status"`
}

func (Volunteer) TableName() string { return "volunteers" }

type School struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`
	Day     string `json:"day"` // weekly meeting day
}

func (School) TableName() string { return "schools" }

type Student struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	FirstName  string `gorm:"column:first_name" json:"first_name"`
	LastName   string `gorm:"column:last_name" json:"last_name"`
	Birthdate  string `json:"birthdate"`
	BikeSize   string `gorm:"column:bike_size" json:"bike_size"`
	ShirtSize  string `gorm:"column:shirt_size" json:"shirt_size"`
	EarnedBike bool   `gorm:"column:earned_bike" json:"earned_bike"`
	Status     string `json:"status"`
	ParentID   uint   `gorm:"column:parent_id;index;not null" json:"parent_id"`
	SchoolID   uint   `gorm:"column:school_id;index;not null" json:"school_id"`
}

func (Student) TableName() string { return "students" }

type Event struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Title         string `gorm:"not null" json:"title"`
	Type          string `json:"type"`
	Date          string `json:"date"`
	StartLocation string `gorm:"column:start_location" json:"start_location"`
	EndLocation   string `gorm:"column:end_location" json:"end_location"`
	StartTime     string `gorm:"column:start_time" json:"start_time"`
	EndTime       string `gorm:"column:end_time" json:"end_time"`
}

func (Event) TableName() string { return "events" }

// SchoolEvent links an event to every school it was created for.
type SchoolEvent struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	SchoolID uint `gorm:"column:school_id;index;not null" json:"school_id"`
	EventID  uint `gorm:"column:event_id;index;not null" json:"event_id"`
}

func (SchoolEvent) TableName() string { return "schools_events" }

// StudentEvent is a participation record: one row per student enrolled
// in an event, created in bulk when the event is linked to the
// student's school. The unique index keeps enrollment re-runs from
// duplicating rows.
type StudentEvent struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StudentID uint `gorm:"column:student_id;uniqueIndex:idx_student_event;not null" json:"student_id"`
	EventID   uint `gorm:"column:event_id;uniqueIndex:idx_student_event;not null" json:"event_id"`
	Absent    bool `gorm:"default:false" json:"absent"`
}

func (StudentEvent) TableName() string { return "students_events" }

type VolunteerEvent struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	VolunteerID uint `gorm:"column:volunteer_id;uniqueIndex:idx_volunteer_event;not null" json:"volunteer_id"`
	EventID     uint `gorm:"column:event_id;uniqueIndex:idx_volunteer_event;not null" json:"event_id"`
	Absent      bool `gorm:"default:false" json:"absent"`
}

func (VolunteerEvent) TableName() string { return "volunteers_events" }

// StudentAttendance is a read model for an event's student roster,
// including the parent contact a facilitator calls about an absence.
type StudentAttendance struct {
	StudentID        uint   `json:"student_id"`
	StudentFirstName string `json:"student_first_name"`
	StudentLastName  string `json:"student_last_name"`
	ParentFirstName  string `json:"parent_first_name"`
	ParentLastName   string `json:"parent_last_name"`
	ParentPhone      string `json:"parent_phone"`
	Absent           bool   `json:"absent"`
}

type VolunteerAttendance struct {
	VolunteerID        uint   `json:"volunteer_id"`
	VolunteerFirstName string `json:"volunteer_first_name"`
	VolunteerLastName  string `json:"volunteer_last_name"`
	VolunteerPhone     string `json:"volunteer_phone"`
	Absent             bool   `json:"absent"`
}
