package game

import (
	"time"

	"github.com/DhavalSuthar-24/hooptrack/internal/models"
)

type CreateGameRequest struct {
	HomeTeamID  uint      `json:"home_team_id" binding:"required"`
	AwayTeamID  uint      `json:"away_team_id" binding:"required,nefield=HomeTeamID"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Location    string    `json:"location" binding:"max=200"`
	Season      string    `json:"season" binding:"max=20"`
	Notes       string    `json:"notes" binding:"max=2000"`
}

// UpdateGameRequest edits game details. Scores are accepted only on a
// completed game; status changes go through UpdateStatusRequest.
type UpdateGameRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
	Location    *string    `json:"location" binding:"omitempty,max=200"`
	Season      *string    `json:"season" binding:"omitempty,max=20"`
	Notes       *string    `json:"notes" binding:"omitempty,max=2000"`
	HomeScore   *int       `json:"home_score" binding:"omitempty,gte=0"`
	AwayScore   *int       `json:"away_score" binding:"omitempty,gte=0"`
}

type UpdateStatusRequest struct {
	Status    string `json:"status" binding:"required,game_status"`
	HomeScore *int   `json:"home_score" binding:"omitempty,gte=0"`
	AwayScore *int   `json:"away_score" binding:"omitempty,gte=0"`
}

// GameResponse adds the computed winner to a game.
type GameResponse struct {
	models.Game
	WinnerID *uint `json:"winner_id"`
}

func newGameResponse(g *models.Game) GameResponse {
	return GameResponse{Game: *g, WinnerID: g.WinnerID()}
}
