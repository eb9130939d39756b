package model

import "time"

// Classroom is a class group within a school (e.g. "Grade 7 Blue").
type Classroom struct {
	ID         int       `json:"id"`
	SchoolID   int       `json:"school_id"`
	Name       string    `json:"name"`
	GradeLevel int       `json:"grade_level"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateClassroomRequest is the payload for creating or updating a classroom.
type CreateClassroomRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=100"`
	GradeLevel int    `json:"grade_level" binding:"required,min=1,max=13"`
}
