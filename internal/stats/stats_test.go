package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
)

func approx(t *testing.T, label string, got *float64, want float64) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s: got nil, want %v", label, want)
	}
	if math.Abs(*got-want) > 1e-9 {
		t.Fatalf("%s: got %v, want %v", label, *got, want)
	}
}

func isNil(t *testing.T, label string, got *float64) {
	t.Helper()
	if got != nil {
		t.Fatalf("%s: got %v, want nil", label, *got)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		made, attempted int
		want            *float64
	}{
		{7, 10, ptr(70.0)},
		{0, 0, nil},
		{5, 0, nil},
		{1, 3, ptr(33.3)},
		{2, 3, ptr(66.7)},
		{1, 16, ptr(6.2)},
		{3, 16, ptr(18.8)},
		{0, 4, ptr(0)},
		{9, 9, ptr(100)},
	}
	for _, tt := range tests {
		got, err := Percentage(tt.made, tt.attempted)
		if err != nil {
			t.Fatalf("Percentage(%d, %d): %v", tt.made, tt.attempted, err)
		}
		if tt.want == nil {
			isNil(t, "percentage", got)
			continue
		}
		approx(t, "percentage", got, *tt.want)
	}
}

func TestPercentageNullOnlyWithoutAttempts(t *testing.T) {
	for attempted := 0; attempted <= 12; attempted++ {
		for made := 0; made <= attempted; made++ {
			got, err := Percentage(made, attempted)
			if err != nil {
				t.Fatalf("Percentage(%d, %d): %v", made, attempted, err)
			}
			if (got == nil) != (attempted == 0) {
				t.Fatalf("Percentage(%d, %d) nil = %v", made, attempted, got == nil)
			}
			if got != nil {
				want := math.RoundToEven(float64(made)/float64(attempted)*1000) / 10
				approx(t, "percentage", got, want)
			}
		}
	}
}

func TestPercentageRejectsNegative(t *testing.T) {
	if _, err := Percentage(-1, 3); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDerive(t *testing.T) {
	d, err := Derive(models.BoxScore{
		FieldGoalsMade:      7,
		FieldGoalsAttempted: 10,
		OffensiveRebounds:   3,
		DefensiveRebounds:   8,
		FreeThrowsMade:      4,
		FreeThrowsAttempted: 5,
	})
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if d.TotalRebounds != 11 {
		t.Fatalf("total rebounds = %d, want 11", d.TotalRebounds)
	}
	approx(t, "fg", d.FieldGoalPercentage, 70.0)
	isNil(t, "three", d.ThreePointPercentage)
	approx(t, "ft", d.FreeThrowPercentage, 80.0)
}

func TestDeriveRejectsNegativeCounts(t *testing.T) {
	_, err := Derive(models.BoxScore{Points: 10, Steals: -2})
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAverageEmpty(t *testing.T) {
	avg, err := Average(nil)
	if err != nil {
		t.Fatalf("Average: %v", err)
	}
	if avg.GamesPlayed != 0 {
		t.Fatalf("games played = %d", avg.GamesPlayed)
	}
	for label, v := range map[string]*float64{
		"points": avg.AvgPoints, "rebounds": avg.AvgRebounds, "assists": avg.AvgAssists,
		"steals": avg.AvgSteals, "blocks": avg.AvgBlocks, "turnovers": avg.AvgTurnovers,
		"minutes": avg.AvgMinutes, "fg": avg.AvgFieldGoalPercentage,
		"three": avg.AvgThreePointPercentage, "ft": avg.AvgFreeThrowPercentage,
	} {
		isNil(t, label, v)
	}
}

func TestAverageAveragesPerGamePercentages(t *testing.T) {
	lines := []models.BoxScore{
		{MinutesPlayed: 30, Points: 20, FieldGoalsMade: 1, FieldGoalsAttempted: 3, OffensiveRebounds: 2, DefensiveRebounds: 4, Assists: 5},
		{MinutesPlayed: 34, Points: 10, FieldGoalsMade: 9, FieldGoalsAttempted: 10, DefensiveRebounds: 6, Assists: 1, ThreePointersMade: 2, ThreePointersAttempted: 4},
		{MinutesPlayed: 20, Points: 0, Turnovers: 3},
	}
	avg, err := Average(lines)
	if err != nil {
		t.Fatalf("Average: %v", err)
	}
	if avg.GamesPlayed != 3 {
		t.Fatalf("games played = %d", avg.GamesPlayed)
	}
	approx(t, "points", avg.AvgPoints, 10)
	approx(t, "rebounds", avg.AvgRebounds, 4)
	approx(t, "assists", avg.AvgAssists, 2)
	approx(t, "turnovers", avg.AvgTurnovers, 1)
	approx(t, "minutes", avg.AvgMinutes, 28)
	// (33.3 + 90.0) / 2; the third game had no attempts and is skipped.
	approx(t, "fg", avg.AvgFieldGoalPercentage, 61.65)
	approx(t, "three", avg.AvgThreePointPercentage, 50)
	isNil(t, "ft", avg.AvgFreeThrowPercentage)
}

func TestAverageRejectsNegativeCounts(t *testing.T) {
	if _, err := Average([]models.BoxScore{{Points: -1}}); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func game(home, away uint, status models.GameStatus, hs, as *int) models.Game {
	return models.Game{HomeTeamID: home, AwayTeamID: away, Status: status, HomeScore: hs, AwayScore: as}
}

func TestComputeRecord(t *testing.T) {
	games := []models.Game{
		game(1, 2, models.GameStatusCompleted, iptr(100), iptr(95)), // home win
		game(3, 1, models.GameStatusCompleted, iptr(70), iptr(88)),  // away win
		game(1, 4, models.GameStatusCompleted, iptr(90), iptr(90)),  // tie
		game(5, 1, models.GameStatusCompleted, iptr(101), iptr(99)), // away loss
		game(1, 2, models.GameStatusScheduled, nil, nil),
		game(1, 3, models.GameStatusCancelled, nil, nil),
		game(2, 3, models.GameStatusCompleted, iptr(50), iptr(40)), // not ours
	}
	rec := ComputeRecord(1, games)
	if rec.Wins != 2 || rec.Losses != 2 || rec.GamesPlayed != 4 {
		t.Fatalf("record = %+v", rec)
	}
	if rec.WinPercentage != 0.5 {
		t.Fatalf("win percentage = %v", rec.WinPercentage)
	}

	rec = ComputeRecord(3, games)
	if rec.Wins != 0 || rec.Losses != 2 || rec.WinPercentage != 0 {
		t.Fatalf("team 3 record = %+v", rec)
	}
}

func TestComputeRecordRounding(t *testing.T) {
	tests := []struct {
		wins, losses int
		want         float64
	}{
		{2, 1, 0.667},
		{1, 79, 0.013},
		{3, 77, 0.037},
		{1, 7, 0.125},
		{5, 3, 0.625},
		{1, 1999, 0.001},
	}
	for _, tt := range tests {
		var games []models.Game
		for i := 0; i < tt.wins; i++ {
			games = append(games, game(1, 2, models.GameStatusCompleted, iptr(10), iptr(1)))
		}
		for i := 0; i < tt.losses; i++ {
			games = append(games, game(1, 2, models.GameStatusCompleted, iptr(1), iptr(10)))
		}
		if rec := ComputeRecord(1, games); rec.WinPercentage != tt.want {
			t.Fatalf("%d-%d: win percentage = %v, want %v", tt.wins, tt.losses, rec.WinPercentage, tt.want)
		}
	}
}

func TestComputeRecordWithoutGames(t *testing.T) {
	rec := ComputeRecord(9, []models.Game{game(9, 2, models.GameStatusScheduled, nil, nil)})
	if rec != (Record{}) {
		t.Fatalf("expected zero record, got %+v", rec)
	}
}

func ptr(v float64) *float64 { return &v }
func iptr(v int) *int        { return &v }
