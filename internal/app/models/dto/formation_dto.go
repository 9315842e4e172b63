package dto

// CreateFormationRequest represents formation creation data. Also used
// as the inline "main_formation" object on student creation.
type CreateFormationRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	DegreeLevel *string `json:"degree_level"`
}

// UpdateFormationRequest represents a partial formation update
type UpdateFormationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DegreeLevel *string `json:"degree_level"`
}
