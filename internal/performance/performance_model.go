package performance

import (
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
	"github.com/DhavalSuthar-24/hooptrack/internal/stats"
)

type CreatePerformanceRequest struct {
	PlayerID uint   `json:"player_id" binding:"required"`
	GameID   uint   `json:"game_id" binding:"required"`
	Notes    string `json:"notes" binding:"max=2000"`
	models.BoxScore
}

type CreateTeamPerformanceRequest struct {
	TeamID uint   `json:"team_id" binding:"required"`
	GameID uint   `json:"game_id" binding:"required"`
	Notes  string `json:"notes" binding:"max=2000"`
	models.BoxScore
}

// UpdateBoxScoreRequest replaces the counts of a box score. The player or
// team and the game it belongs to never change.
type UpdateBoxScoreRequest struct {
	Notes *string `json:"notes" binding:"omitempty,max=2000"`
	models.BoxScore
}

// PerformanceResponse is a player box score with its derived stats.
type PerformanceResponse struct {
	models.Performance
	Derived stats.Derived `json:"derived"`
}

// TeamPerformanceResponse is a team box score with its derived stats.
type TeamPerformanceResponse struct {
	models.TeamPerformance
	Derived stats.Derived `json:"derived"`
}
