package model

// Day is a day of the school week, 0 = Monday through 6 = Sunday.
type Day int

const (
	DayMonday Day = iota
	DayTuesday
	DayWednesday
	DayThursday
	DayFriday
	DaySaturday
	DaySunday
)

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Valid reports whether the day index is within the week.
func (d Day) Valid() bool {
	return d >= DayMonday && d <= DaySunday
}

func (d Day) String() string {
	if !d.Valid() {
		return "Unknown"
	}
	return dayNames[d]
}

// Period is one scheduled teaching slot within a classroom's day.
type Period struct {
	ID          int       `json:"id"`
	ClassroomID int       `json:"classroom_id"`
	Day         Day       `json:"day"`
	SubjectID   int       `json:"subject_id"`
	TeacherID   int       `json:"teacher_id"`
	Start       TimeOfDay `json:"start_time"`
	End         TimeOfDay `json:"end_time"`

	// Joined display fields, populated on reads.
	SubjectName string `json:"subject_name,omitempty"`
	TeacherName string `json:"teacher_name,omitempty"`
}

// DaySchedule is the set of periods for one classroom on one weekday.
type DaySchedule struct {
	Day     Day      `json:"day"`
	Periods []Period `json:"periods"`
}

// PeriodInput is one proposed slot in a day-schedule replacement.
type PeriodInput struct {
	SubjectID int    `json:"subject_id" binding:"required"`
	TeacherID int    `json:"teacher_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required,len=5"`
	EndTime   string `json:"end_time" binding:"required,len=5"`
}

// ReplaceDayScheduleRequest replaces a classroom's entire day wholesale.
// An empty period list clears the day.
type ReplaceDayScheduleRequest struct {
	Periods []PeriodInput `json:"periods" binding:"dive"`
}
