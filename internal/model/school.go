package model

import "time"

// School is the tenant root. Every other record belongs to exactly one school.
type School struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterSchoolRequest creates a school together with its principal account.
type RegisterSchoolRequest struct {
	SchoolName    string `json:"school_name" binding:"required,min=2,max=150"`
	SchoolAddress string `json:"school_address" binding:"omitempty,max=300"`
	PrincipalName string `json:"principal_name" binding:"required,min=2,max=100"`
	Email         string `json:"email" binding:"required,email,max=150"`
	Password      string `json:"password" binding:"required,min=6,max=128"`
}
