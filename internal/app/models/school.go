package models

import "time"

// School represents a school prospective students come from
type School struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	City      *string   `json:"city"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
