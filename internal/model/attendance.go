package model

import (
	"time"

	"github.com/google/uuid"
)

// MarkStatus is a student's presence flag within a session.
type MarkStatus int

const (
	MarkAbsent  MarkStatus = 0
	MarkPresent MarkStatus = 1
)

// Valid reports whether the status is one of the two allowed values.
func (s MarkStatus) Valid() bool {
	return s == MarkAbsent || s == MarkPresent
}

// AttendanceSession is one roll-call event: a teacher taking attendance
// for a specific period on a specific date. Immutable after creation.
type AttendanceSession struct {
	ID          uuid.UUID `json:"id"`
	SchoolID    int       `json:"school_id"`
	ClassroomID int       `json:"classroom_id"`
	SubjectID   int       `json:"subject_id"`
	TeacherID   int       `json:"teacher_id"`
	PeriodID    int       `json:"period_id"`
	TakenOn     time.Time `json:"taken_on"`
	CreatedAt   time.Time `json:"created_at"`
}

// AttendanceMark is one student's present/absent status within a session.
// There is exactly one mark per (session, student) pair.
type AttendanceMark struct {
	SessionID uuid.UUID  `json:"session_id"`
	StudentID int        `json:"student_id"`
	Status    MarkStatus `json:"status"`
}

// MarkInput is one student's status in a roll-call submission.
type MarkInput struct {
	StudentID int        `json:"student_id" binding:"required"`
	Status    MarkStatus `json:"status" binding:"oneof=0 1"`
}

// RecordAttendanceRequest submits a full roll call: the session scope plus
// one mark per student. Persisted all-or-nothing.
type RecordAttendanceRequest struct {
	ClassroomID int         `json:"classroom_id" binding:"required"`
	SubjectID   int         `json:"subject_id" binding:"required"`
	PeriodID    int         `json:"period_id" binding:"required"`
	TakenOn     string      `json:"taken_on" binding:"required,datetime=2006-01-02"`
	Marks       []MarkInput `json:"marks" binding:"required,min=1,dive"`
}

// AttendanceReportRow is one student's aggregated attendance. Derived, never
// persisted.
type AttendanceReportRow struct {
	StudentID    int     `json:"student_id"`
	Name         string  `json:"name"`
	Roll         string  `json:"roll"`
	PresentCount int     `json:"present_count"`
	Percentage   float64 `json:"percentage"`
}

// AttendanceReport is one page of the aggregated report. TotalClasses is the
// shared denominator and is constant across all pages of the same query.
type AttendanceReport struct {
	Rows         []AttendanceReportRow `json:"rows"`
	TotalItems   int                   `json:"total_items"`
	TotalClasses int                   `json:"total_classes"`
}

// AttendanceOverview is the school-wide snapshot the summary worker keeps in
// Redis for cheap dashboard reads.
type AttendanceOverview struct {
	Date          string    `json:"date"`
	SessionsToday int       `json:"sessions_today"`
	PresenceRate  float64   `json:"presence_rate"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FeedEvent is published on the school's attendance feed channel whenever a
// roll call is recorded.
type FeedEvent struct {
	SessionID     uuid.UUID `json:"session_id"`
	ClassroomID   int       `json:"classroom_id"`
	ClassroomName string    `json:"classroom_name,omitempty"`
	SubjectID     int       `json:"subject_id"`
	SubjectName   string    `json:"subject_name,omitempty"`
	TeacherID     int       `json:"teacher_id"`
	TeacherName   string    `json:"teacher_name,omitempty"`
	TakenOn       string    `json:"taken_on"`
	PresentCount  int       `json:"present_count"`
	TotalMarks    int       `json:"total_marks"`
	RecordedAt    time.Time `json:"recorded_at"`
}
