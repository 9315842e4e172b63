package models

import "time"

// Interaction records that a student engaged with an event. The pair
// (student_id, event_id) is unique: at most one interaction per
// student per event.
type Interaction struct {
	ID              int64     `json:"id"`
	StudentID       int64     `json:"student_id"`
	EventID         int64     `json:"event_id"`
	InteractionDate time.Time `json:"interaction_date"`

	// Relations (populated on joined reads)
	Student *Student `json:"student,omitempty"`
	Event   *Event   `json:"event,omitempty"`
}
