package models

import (
	"time"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
)

type GameStatus string

const (
	GameStatusScheduled GameStatus = "scheduled"
	GameStatusLive      GameStatus = "live"
	GameStatusCompleted GameStatus = "completed"
	GameStatusCancelled GameStatus = "cancelled"
)

// gameTransitions lists the statuses reachable from each status. Completed
// and cancelled are terminal.
var gameTransitions = map[GameStatus][]GameStatus{
	GameStatusScheduled: {GameStatusLive, GameStatusCancelled},
	GameStatusLive:      {GameStatusCompleted, GameStatusCancelled},
	GameStatusCompleted: nil,
	GameStatusCancelled: nil,
}

func (s GameStatus) Valid() bool {
	_, ok := gameTransitions[s]
	return ok
}

// CanTransition reports whether a game may move from s to next.
func (s GameStatus) CanTransition(next GameStatus) bool {
	for _, allowed := range gameTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Game is a scheduled or played match between two distinct teams.
type Game struct {
	BaseModel
	HomeTeamID  uint       `json:"home_team_id" gorm:"not null;index"`
	HomeTeam    Team       `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	AwayTeamID  uint       `json:"away_team_id" gorm:"not null;index"`
	AwayTeam    Team       `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	ScheduledAt time.Time  `json:"scheduled_at" gorm:"not null;index"`
	Location    string     `json:"location"`
	Season      string     `json:"season" gorm:"index"`
	Status      GameStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled'"`
	HomeScore   *int       `json:"home_score"`
	AwayScore   *int       `json:"away_score"`
	Notes       string     `json:"notes,omitempty"`
	CreatedByID *uint      `json:"created_by_id"`
	CreatedBy   *User      `json:"-" gorm:"constraint:OnDelete:SET NULL;"`
}

// Validate checks the invariants a stored game must satisfy.
func (g Game) Validate() error {
	if g.HomeTeamID == 0 || g.AwayTeamID == 0 {
		return common.InvalidInput("home and away teams are required")
	}
	if g.HomeTeamID == g.AwayTeamID {
		return common.InvalidInput("home and away teams must differ")
	}
	if !g.Status.Valid() {
		return common.InvalidInput("unknown game status %q", g.Status)
	}
	if (g.HomeScore != nil && *g.HomeScore < 0) || (g.AwayScore != nil && *g.AwayScore < 0) {
		return common.InvalidInput("scores must be non-negative")
	}
	if g.Status != GameStatusCompleted && (g.HomeScore != nil || g.AwayScore != nil) {
		return common.InvalidInput("scores can only be set on a completed game")
	}
	return nil
}

// Involves reports whether teamID plays in the game.
func (g Game) Involves(teamID uint) bool {
	return g.HomeTeamID == teamID || g.AwayTeamID == teamID
}

// Winner returns the winning team id of a completed game with two unequal
// scores, and false otherwise (including ties).
func (g Game) Winner() (uint, bool) {
	if g.Status != GameStatusCompleted || g.HomeScore == nil || g.AwayScore == nil {
		return 0, false
	}
	switch {
	case *g.HomeScore > *g.AwayScore:
		return g.HomeTeamID, true
	case *g.AwayScore > *g.HomeScore:
		return g.AwayTeamID, true
	}
	return 0, false
}

// WinnerID is Winner as a nullable id, for responses.
func (g Game) WinnerID() *uint {
	if id, ok := g.Winner(); ok {
		return &id
	}
	return nil
}
