package dto

// CreateEventRequest represents event creation data. EventDate must be
// a calendar date in strict YYYY-MM-DD form.
type CreateEventRequest struct {
	EventName     string  `json:"event_name" binding:"required"`
	EventDate     string  `json:"event_date" binding:"required"`
	EventLocation *string `json:"event_location"`
	Description   *string `json:"description"`
}

// UpdateEventRequest represents a partial event update
type UpdateEventRequest struct {
	EventName     *string `json:"event_name"`
	EventDate     *string `json:"event_date"`
	EventLocation *string `json:"event_location"`
	Description   *string `json:"description"`
}
