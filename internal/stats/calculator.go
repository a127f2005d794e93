// Package stats derives box-score percentages, season averages and won-loss
// records. Everything here is pure: no store access, no shared state.
package stats

import (
	"strconv"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
)

// Derived holds the values computed from one box score.
type Derived struct {
	TotalRebounds        int      `json:"total_rebounds"`
	FieldGoalPercentage  *float64 `json:"field_goal_percentage"`
	ThreePointPercentage *float64 `json:"three_point_percentage"`
	FreeThrowPercentage  *float64 `json:"free_throw_percentage"`
}

// Validate rejects negative counts.
func Validate(b models.BoxScore) error {
	counts := []struct {
		name  string
		value int
	}{
		{"minutes_played", b.MinutesPlayed},
		{"points", b.Points},
		{"field_goals_made", b.FieldGoalsMade},
		{"field_goals_attempted", b.FieldGoalsAttempted},
		{"three_pointers_made", b.ThreePointersMade},
		{"three_pointers_attempted", b.ThreePointersAttempted},
		{"free_throws_made", b.FreeThrowsMade},
		{"free_throws_attempted", b.FreeThrowsAttempted},
		{"offensive_rebounds", b.OffensiveRebounds},
		{"defensive_rebounds", b.DefensiveRebounds},
		{"assists", b.Assists},
		{"steals", b.Steals},
		{"blocks", b.Blocks},
		{"turnovers", b.Turnovers},
		{"personal_fouls", b.PersonalFouls},
	}
	for _, c := range counts {
		if c.value < 0 {
			return common.InvalidInput("%s must be non-negative, got %d", c.name, c.value)
		}
	}
	return nil
}

// Percentage is 100*made/attempted rounded to one decimal, or nil when
// nothing was attempted.
func Percentage(made, attempted int) (*float64, error) {
	if made < 0 || attempted < 0 {
		return nil, common.InvalidInput("made and attempted must be non-negative")
	}
	if attempted == 0 {
		return nil, nil
	}
	pct := round(float64(made)/float64(attempted)*100, 1)
	return &pct, nil
}

// Derive computes total rebounds and the three shooting percentages.
func Derive(b models.BoxScore) (Derived, error) {
	if err := Validate(b); err != nil {
		return Derived{}, err
	}
	// Validate already covered the sign checks Percentage repeats.
	fg, _ := Percentage(b.FieldGoalsMade, b.FieldGoalsAttempted)
	three, _ := Percentage(b.ThreePointersMade, b.ThreePointersAttempted)
	ft, _ := Percentage(b.FreeThrowsMade, b.FreeThrowsAttempted)
	return Derived{
		TotalRebounds:        b.OffensiveRebounds + b.DefensiveRebounds,
		FieldGoalPercentage:  fg,
		ThreePointPercentage: three,
		FreeThrowPercentage:  ft,
	}, nil
}

// round rounds the exact binary value of v to places decimals, half to even.
// 1.0/80 is slightly above 0.0125, so it becomes 0.013.
func round(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
