package model

import "time"

// Principal is the school administrator account.
type Principal struct {
	ID           int       `json:"id"`
	SchoolID     int       `json:"school_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginRequest is the payload for principal and teacher authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=150"`
	Password string `json:"password" binding:"required,min=4,max=128"`
}

// PrincipalLoginResponse is returned after successful principal login.
type PrincipalLoginResponse struct {
	Token     string    `json:"token"`
	Principal Principal `json:"principal"`
	School    School    `json:"school"`
}
