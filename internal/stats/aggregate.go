package stats

import (
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
)

// Averages are season per-game means. Every pointer is nil when no games
// were played; a percentage is also nil when no game had an attempt.
type Averages struct {
	GamesPlayed             int      `json:"games_played"`
	AvgPoints               *float64 `json:"avg_points"`
	AvgRebounds             *float64 `json:"avg_rebounds"`
	AvgAssists              *float64 `json:"avg_assists"`
	AvgSteals               *float64 `json:"avg_steals"`
	AvgBlocks               *float64 `json:"avg_blocks"`
	AvgTurnovers            *float64 `json:"avg_turnovers"`
	AvgMinutes              *float64 `json:"avg_minutes"`
	AvgFieldGoalPercentage  *float64 `json:"avg_field_goal_percentage"`
	AvgThreePointPercentage *float64 `json:"avg_three_point_percentage"`
	AvgFreeThrowPercentage  *float64 `json:"avg_free_throw_percentage"`
}

// mean accumulates values that may be missing.
type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v float64) {
	m.sum += v
	m.n++
}

func (m *mean) addPct(v *float64) {
	if v != nil {
		m.add(*v)
	}
}

func (m mean) value() *float64 {
	if m.n == 0 {
		return nil
	}
	v := m.sum / float64(m.n)
	return &v
}

// Average computes season averages over box scores. Percentages are
// averaged per game from the already rounded per-game figures, not
// recomputed from summed makes and attempts.
func Average(lines []models.BoxScore) (Averages, error) {
	var points, rebounds, assists, steals, blocks, turnovers, minutes, fg, three, ft mean
	for _, b := range lines {
		d, err := Derive(b)
		if err != nil {
			return Averages{}, err
		}
		points.add(float64(b.Points))
		rebounds.add(float64(d.TotalRebounds))
		assists.add(float64(b.Assists))
		steals.add(float64(b.Steals))
		blocks.add(float64(b.Blocks))
		turnovers.add(float64(b.Turnovers))
		minutes.add(float64(b.MinutesPlayed))
		fg.addPct(d.FieldGoalPercentage)
		three.addPct(d.ThreePointPercentage)
		ft.addPct(d.FreeThrowPercentage)
	}
	return Averages{
		GamesPlayed:             len(lines),
		AvgPoints:               points.value(),
		AvgRebounds:             rebounds.value(),
		AvgAssists:              assists.value(),
		AvgSteals:               steals.value(),
		AvgBlocks:               blocks.value(),
		AvgTurnovers:            turnovers.value(),
		AvgMinutes:              minutes.value(),
		AvgFieldGoalPercentage:  fg.value(),
		AvgThreePointPercentage: three.value(),
		AvgFreeThrowPercentage:  ft.value(),
	}, nil
}

// PerformanceLines extracts the box scores of player rows.
func PerformanceLines(perfs []models.Performance) []models.BoxScore {
	lines := make([]models.BoxScore, len(perfs))
	for i, p := range perfs {
		lines[i] = p.BoxScore
	}
	return lines
}

// TeamPerformanceLines extracts the box scores of team rows.
func TeamPerformanceLines(perfs []models.TeamPerformance) []models.BoxScore {
	lines := make([]models.BoxScore, len(perfs))
	for i, p := range perfs {
		lines[i] = p.BoxScore
	}
	return lines
}
