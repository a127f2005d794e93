package team

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	City        string `json:"city" binding:"max=100"`
	Description string `json:"description" binding:"max=1000"`
	// CoachID defaults to the caller when a coach creates the team.
	CoachID *uint `json:"coach_id"`
}

// UpdateTeamRequest is a partial update. Only admins may reassign the coach.
type UpdateTeamRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	CoachID     *uint   `json:"coach_id"`
}
