package model

import "time"

// Student is an enrolled pupil assigned to a classroom.
type Student struct {
	ID          int       `json:"id"`
	SchoolID    int       `json:"school_id"`
	ClassroomID int       `json:"classroom_id"`
	Name        string    `json:"name"`
	Roll        string    `json:"roll"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateStudentRequest is the payload for enrolling a new student.
type CreateStudentRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Roll        string `json:"roll" binding:"required,min=1,max=20"`
	ClassroomID int    `json:"classroom_id" binding:"required"`
}

// UpdateStudentRequest is the payload for updating an existing student.
type UpdateStudentRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Roll        string `json:"roll" binding:"required,min=1,max=20"`
	ClassroomID int    `json:"classroom_id" binding:"required"`
}
