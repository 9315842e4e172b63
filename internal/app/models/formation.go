package models

import "time"

// Formation represents a degree program a prospective student may be
// interested in
type Formation struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	DegreeLevel *string   `json:"degree_level"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
