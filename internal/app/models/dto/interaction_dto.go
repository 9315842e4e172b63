package dto

// CreateInteractionRequest links a student to an event. Either side may
// be given as an id or as an inline object created in the same call.
type CreateInteractionRequest struct {
	StudentID *int64                `json:"student_id"`
	Student   *CreateStudentRequest `json:"student"`
	EventID   *int64                `json:"event_id"`
	Event     *CreateEventRequest   `json:"event"`
}
