package dto

// CreateSchoolRequest represents school creation data. Also used as the
// inline "school" object when creating a student in one call.
type CreateSchoolRequest struct {
	Name string  `json:"name" binding:"required"`
	City *string `json:"city"`
}

// UpdateSchoolRequest represents a partial school update; nil fields
// keep their prior value.
type UpdateSchoolRequest struct {
	Name *string `json:"name"`
	City *string `json:"city"`
}
