package models

import "time"

// Student represents a prospective student
type Student struct {
	ID              int64     `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	PhoneNumber     *string   `json:"phone_number"`
	SchoolID        *int64    `json:"school_id"`
	MainFormationID *int64    `json:"main_formation_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relations (populated on joined reads)
	School        *School    `json:"school,omitempty"`
	MainFormation *Formation `json:"main_formation,omitempty"`
}
