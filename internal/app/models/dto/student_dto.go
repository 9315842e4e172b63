package dto

// CreateStudentRequest represents student creation data. The school
// relation is supplied either as school_id or as an inline school
// object to be created in the same call; same for main_formation.
type CreateStudentRequest struct {
	FullName        string                  `json:"full_name" binding:"required"`
	Email           string                  `json:"email" binding:"required,email"`
	PhoneNumber     *string                 `json:"phone_number"`
	SchoolID        *int64                  `json:"school_id"`
	School          *CreateSchoolRequest    `json:"school"`
	MainFormationID *int64                  `json:"main_formation_id"`
	MainFormation   *CreateFormationRequest `json:"main_formation"`
}

// UpdateStudentRequest represents a partial student update. Supplying
// school_id or an inline school re-runs relation resolution; same for
// the formation pair.
type UpdateStudentRequest struct {
	FullName        *string                 `json:"full_name"`
	Email           *string                 `json:"email"`
	PhoneNumber     *string                 `json:"phone_number"`
	SchoolID        *int64                  `json:"school_id"`
	School          *CreateSchoolRequest    `json:"school"`
	MainFormationID *int64                  `json:"main_formation_id"`
	MainFormation   *CreateFormationRequest `json:"main_formation"`
}
