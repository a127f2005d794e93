package player

import "time"

type CreatePlayerRequest struct {
	UserID       uint       `json:"user_id" binding:"required"`
	TeamID       *uint      `json:"team_id"`
	JerseyNumber *int       `json:"jersey_number" binding:"omitempty,gte=0,lte=99"`
	Position     *string    `json:"position" binding:"omitempty,position"`
	Height       *int       `json:"height" binding:"omitempty,gt=0"`
	Weight       *int       `json:"weight" binding:"omitempty,gt=0"`
	Wingspan     *int       `json:"wingspan" binding:"omitempty,gt=0"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	Active       *bool      `json:"active"`
}

// UpdatePlayerRequest is a partial update. Moving a player to another team
// requires coaching both teams; ClearTeam releases the player.
type UpdatePlayerRequest struct {
	TeamID       *uint      `json:"team_id"`
	ClearTeam    bool       `json:"clear_team"`
	JerseyNumber *int       `json:"jersey_number" binding:"omitempty,gte=0,lte=99"`
	Position     *string    `json:"position" binding:"omitempty,position"`
	Height       *int       `json:"height" binding:"omitempty,gt=0"`
	Weight       *int       `json:"weight" binding:"omitempty,gt=0"`
	Wingspan     *int       `json:"wingspan" binding:"omitempty,gt=0"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	Active       *bool      `json:"active"`
}
