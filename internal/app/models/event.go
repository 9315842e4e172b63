package models

import "time"

// Event represents a recruiting event. Events only track their
// creation timestamp; there is no updated_at column.
type Event struct {
	ID            int64     `json:"id"`
	EventName     string    `json:"event_name"`
	EventDate     time.Time `json:"event_date"`
	EventLocation *string   `json:"event_location"`
	Description   *string   `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}
