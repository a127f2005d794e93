package stats

import (
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
)

// Record is a team's won-loss record.
type Record struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	GamesPlayed   int     `json:"games_played"`
	WinPercentage float64 `json:"win_percentage"`
}

// ComputeRecord scans the completed, fully scored games involving teamID.
// Ties are not wins, so they land in Losses. WinPercentage is 0, not
// undefined, when there are no games.
func ComputeRecord(teamID uint, games []models.Game) Record {
	var rec Record
	for _, g := range games {
		if !g.Involves(teamID) || g.Status != models.GameStatusCompleted || g.HomeScore == nil || g.AwayScore == nil {
			continue
		}
		rec.GamesPlayed++
		if g.HomeTeamID == teamID && *g.HomeScore > *g.AwayScore {
			rec.Wins++
		}
		if g.AwayTeamID == teamID && *g.AwayScore > *g.HomeScore {
			rec.Wins++
		}
	}
	rec.Losses = rec.GamesPlayed - rec.Wins
	if rec.GamesPlayed > 0 {
		rec.WinPercentage = round(float64(rec.Wins)/float64(rec.GamesPlayed), 3)
	}
	return rec
}
