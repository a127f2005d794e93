// internal/models/team.go
package models

import (
	"time"
)

// Team is a basketball team. A coach coaches at most one team; statisticians
// on the staff record the team's box scores.
type Team struct {
	BaseModel
	Name        string   `json:"name" gorm:"uniqueIndex;not null"`
	City        string   `json:"city"`
	Description string   `json:"description"`
	CoachID     *uint    `json:"coach_id" gorm:"uniqueIndex"`
	Coach       *User    `json:"coach,omitempty" gorm:"foreignKey:CoachID;constraint:OnDelete:SET NULL;"`
	Staff       []User   `json:"staff,omitempty" gorm:"many2many:team_staff;constraint:OnDelete:CASCADE;"`
	Players     []Player `json:"players,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL;"`
}

// StaffIDs lists the user ids of the loaded staff association.
func (t Team) StaffIDs() []uint {
	ids := make([]uint, 0, len(t.Staff))
	for _, s := range t.Staff {
		ids = append(ids, s.ID)
	}
	return ids
}

// Position is a player's court position.
type Position string

const (
	PositionPointGuard    Position = "PG"
	PositionShootingGuard Position = "SG"
	PositionSmallForward  Position = "SF"
	PositionPowerForward  Position = "PF"
	PositionCenter        Position = "C"
)

var positionLabels = map[Position]string{
	PositionPointGuard:    "point_guard",
	PositionShootingGuard: "shooting_guard",
	PositionSmallForward:  "small_forward",
	PositionPowerForward:  "power_forward",
	PositionCenter:        "center",
}

func (p Position) Valid() bool {
	_, ok := positionLabels[p]
	return ok
}

// Display is the long position name, e.g. "Small Forward".
func (p Position) Display() string {
	if label, ok := positionLabels[p]; ok {
		return displayLabel(label)
	}
	return ""
}

// Player is the roster profile of a user holding the player role.
type Player struct {
	BaseModel
	UserID       uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	User         User       `json:"user" gorm:"constraint:OnDelete:CASCADE;"`
	TeamID       *uint      `json:"team_id" gorm:"uniqueIndex:idx_player_team_jersey"`
	JerseyNumber *int       `json:"jersey_number" gorm:"uniqueIndex:idx_player_team_jersey"`
	Position     *Position  `json:"position" gorm:"type:varchar(2)"`
	Height       *int       `json:"height,omitempty"`
	Weight       *int       `json:"weight,omitempty"`
	Wingspan     *int       `json:"wingspan,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	Active       bool       `json:"active"`
}
