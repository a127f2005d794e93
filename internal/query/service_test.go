package query

import (
	"context"
	"errors"
	"testing"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
	"github.com/DhavalSuthar-24/hooptrack/internal/policy"
)

// fakeStore serves fixed rows and counts the list calls made against it.
type fakeStore struct {
	users   map[uint]*models.User
	teams   map[uint]*models.Team
	players map[uint]*models.Player
	games   map[uint]*models.Game
	perfs   map[uint]*models.Performance
	tps     map[uint]*models.TeamPerformance

	lists int
}

func (f *fakeStore) readers() Readers {
	return Readers{
		Users:            fakeUsers{f},
		Teams:            fakeTeams{f},
		Players:          fakePlayers{f},
		Games:            fakeGames{f},
		Performances:     fakePerformances{f},
		TeamPerformances: fakeTeamPerformances{f},
	}
}

type fakeUsers struct{ *fakeStore }
type fakeTeams struct{ *fakeStore }
type fakePlayers struct{ *fakeStore }
type fakeGames struct{ *fakeStore }
type fakePerformances struct{ *fakeStore }
type fakeTeamPerformances struct{ *fakeStore }

func lookup[T any](m map[uint]*T, resource string, id uint) (*T, error) {
	if v, ok := m[id]; ok {
		return v, nil
	}
	return nil, common.NotFound(resource, id)
}

func (f fakeUsers) GetByID(_ context.Context, id uint) (*models.User, error) {
	return lookup(f.users, "user", id)
}

func (f fakeTeams) GetByID(_ context.Context, id uint) (*models.Team, error) {
	return lookup(f.teams, "team", id)
}

func (f fakePlayers) GetByID(_ context.Context, id uint) (*models.Player, error) {
	return lookup(f.players, "player", id)
}

func (f fakePlayers) GetByUserID(_ context.Context, userID uint) (*models.Player, error) {
	for _, p := range f.players {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, common.NotFound("player profile for user", userID)
}

func (f fakeGames) GetByID(_ context.Context, id uint) (*models.Game, error) {
	return lookup(f.games, "game", id)
}

func (f fakeGames) ListByTeam(_ context.Context, teamID uint) ([]models.Game, error) {
	f.lists++
	var out []models.Game
	for _, g := range f.games {
		if g.Involves(teamID) {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f fakePerformances) GetByID(_ context.Context, id uint) (*models.Performance, error) {
	return lookup(f.perfs, "performance", id)
}

func (f fakePerformances) ListByPlayer(_ context.Context, playerID uint) ([]models.Performance, error) {
	f.lists++
	var out []models.Performance
	for _, p := range f.perfs {
		if p.PlayerID == playerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f fakeTeamPerformances) GetByID(_ context.Context, id uint) (*models.TeamPerformance, error) {
	return lookup(f.tps, "team performance", id)
}

func (f fakeTeamPerformances) ListByTeam(_ context.Context, teamID uint) ([]models.TeamPerformance, error) {
	f.lists++
	var out []models.TeamPerformance
	for _, tp := range f.tps {
		if tp.TeamID == teamID {
			out = append(out, *tp)
		}
	}
	return out, nil
}

func uptr(v uint) *uint { return &v }
func iptr(v int) *int   { return &v }

// newFakeStore: coach 1 runs team 10 with statistician 2 on staff; player
// user 3 (player 30) plays for team 10; team 11 is coachless. Game 100 is
// a completed 10-vs-11 game with one box score each.
func newFakeStore() *fakeStore {
	f := &fakeStore{
		users: map[uint]*models.User{
			1: {BaseModel: models.BaseModel{ID: 1}, Username: "coach", Role: models.RoleCoach},
			2: {BaseModel: models.BaseModel{ID: 2}, Username: "stat", Role: models.RoleStatistician},
			3: {BaseModel: models.BaseModel{ID: 3}, Username: "player", Role: models.RolePlayer},
			4: {BaseModel: models.BaseModel{ID: 4}, Username: "other", Role: models.RolePlayer},
		},
		players: map[uint]*models.Player{
			30: {BaseModel: models.BaseModel{ID: 30}, UserID: 3, TeamID: uptr(10)},
			40: {BaseModel: models.BaseModel{ID: 40}, UserID: 4, TeamID: uptr(11)},
		},
	}
	f.players[30].User = *f.users[3]
	f.players[30].JerseyNumber = iptr(23)
	f.teams = map[uint]*models.Team{
		10: {BaseModel: models.BaseModel{ID: 10}, Name: "Hawks", City: "Atlanta", CoachID: uptr(1), Staff: []models.User{*f.users[2]}},
		11: {BaseModel: models.BaseModel{ID: 11}, Name: "Bulls"},
	}
	game := &models.Game{
		BaseModel:  models.BaseModel{ID: 100},
		HomeTeamID: 10, HomeTeam: *f.teams[10],
		AwayTeamID: 11, AwayTeam: *f.teams[11],
		Status:    models.GameStatusCompleted,
		HomeScore: iptr(100), AwayScore: iptr(95),
	}
	f.games = map[uint]*models.Game{100: game}
	f.perfs = map[uint]*models.Performance{
		200: {BaseModel: models.BaseModel{ID: 200}, PlayerID: 30, Player: *f.players[30], GameID: 100, Game: *game,
			BoxScore: models.BoxScore{Points: 21, FieldGoalsMade: 7, FieldGoalsAttempted: 10, OffensiveRebounds: 2, DefensiveRebounds: 5}},
		201: {BaseModel: models.BaseModel{ID: 201}, PlayerID: 40, Player: *f.players[40], GameID: 100, Game: *game,
			BoxScore: models.BoxScore{Points: 4}},
	}
	f.tps = map[uint]*models.TeamPerformance{
		300: {BaseModel: models.BaseModel{ID: 300}, TeamID: 10, Team: *f.teams[10], GameID: 100, Game: *game,
			BoxScore: models.BoxScore{Points: 100, ThreePointersMade: 1, ThreePointersAttempted: 3}},
	}
	return f
}

func TestPrincipal(t *testing.T) {
	svc := NewService(newFakeStore().readers())
	ctx := context.Background()

	p, err := svc.Principal(ctx, 3)
	if err != nil {
		t.Fatalf("Principal: %v", err)
	}
	if p.Role != models.RolePlayer || p.TeamID == nil || *p.TeamID != 10 {
		t.Fatalf("player principal = %+v", p)
	}
	p, err = svc.Principal(ctx, 1)
	if err != nil || p.Role != models.RoleCoach || p.TeamID != nil {
		t.Fatalf("coach principal = %+v, %v", p, err)
	}
	if _, err := svc.Principal(ctx, 99); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAuthorizeBeforeCompute(t *testing.T) {
	f := newFakeStore()
	svc := NewService(f.readers())
	ctx := context.Background()
	nobody := policy.Principal{UserID: 50, Role: models.RoleUnspecified}

	if _, err := svc.PlayerAverages(ctx, nobody, 30); !errors.Is(err, common.ErrForbidden) {
		t.Fatalf("PlayerAverages: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.TeamAverages(ctx, nobody, 10); !errors.Is(err, common.ErrForbidden) {
		t.Fatalf("TeamAverages: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.TeamRecord(ctx, nobody, 10); !errors.Is(err, common.ErrForbidden) {
		t.Fatalf("TeamRecord: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.TeamSummary(ctx, nobody, 10); !errors.Is(err, common.ErrForbidden) {
		t.Fatalf("TeamSummary: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.DerivedStats(ctx, nobody, policy.KindPerformance, 200); !errors.Is(err, common.ErrForbidden) {
		t.Fatalf("DerivedStats: expected ErrForbidden, got %v", err)
	}
	if f.lists != 0 {
		t.Fatalf("store listed %d times for a denied caller", f.lists)
	}
}

func TestMissingRecordsAreNotFound(t *testing.T) {
	svc := NewService(newFakeStore().readers())
	ctx := context.Background()
	admin := policy.Principal{UserID: 9, Role: models.RoleAdmin}

	if _, err := svc.PlayerAverages(ctx, admin, 999); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.TeamRecord(ctx, admin, 999); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	err := svc.Authorize(ctx, admin, policy.ActionUpdate, Existing(policy.KindGame, 999))
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAuthorize(t *testing.T) {
	svc := NewService(newFakeStore().readers())
	ctx := context.Background()
	coach := policy.Principal{UserID: 1, Role: models.RoleCoach}
	stat := policy.Principal{UserID: 2, Role: models.RoleStatistician}
	player := policy.Principal{UserID: 3, Role: models.RolePlayer, TeamID: uptr(10)}

	tests := []struct {
		name   string
		p      policy.Principal
		action policy.Action
		ref    Ref
		want   error
	}{
		{"player updates other performance", player, policy.ActionUpdate, Existing(policy.KindPerformance, 201), common.ErrForbidden},
		{"player reads other performance", player, policy.ActionRead, Existing(policy.KindPerformance, 201), nil},
		{"player lists own roster", player, policy.ActionList, Collection(policy.KindPlayer, uptr(10)), nil},
		{"player lists other roster", player, policy.ActionList, Collection(policy.KindPlayer, uptr(11)), common.ErrForbidden},
		{"player reads opponent", player, policy.ActionRead, Existing(policy.KindPlayer, 40), common.ErrForbidden},
		{"staff statistician records", stat, policy.ActionCreate, Ref{Kind: policy.KindPerformance, PlayerID: 40, GameID: 100}, nil},
		{"staff statistician records team line", stat, policy.ActionCreate, Ref{Kind: policy.KindTeamPerformance, TeamID: uptr(10), GameID: 100}, nil},
		{"statistician records for opponent", stat, policy.ActionCreate, Ref{Kind: policy.KindTeamPerformance, TeamID: uptr(11), GameID: 100}, common.ErrForbidden},
		{"coach schedules home game", coach, policy.ActionCreate, Ref{Kind: policy.KindGame, TeamID: uptr(10), AwayTeamID: 11}, nil},
		{"coach creates own team", coach, policy.ActionCreate, Ref{Kind: policy.KindTeam, CoachID: uptr(1)}, nil},
		{"coach signs player to other team", coach, policy.ActionCreate, Ref{Kind: policy.KindPlayer, TeamID: uptr(11)}, common.ErrForbidden},
		{"draft against missing team", coach, policy.ActionCreate, Ref{Kind: policy.KindGame, TeamID: uptr(10), AwayTeamID: 77}, common.ErrNotFound},
		{"draft for missing player", stat, policy.ActionCreate, Ref{Kind: policy.KindPerformance, PlayerID: 77, GameID: 100}, common.ErrNotFound},
		{"unknown kind", coach, policy.ActionRead, Existing(policy.Kind(42), 1), common.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Authorize(ctx, tt.p, tt.action, tt.ref)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestComputations(t *testing.T) {
	svc := NewService(newFakeStore().readers())
	ctx := context.Background()
	player := policy.Principal{UserID: 3, Role: models.RolePlayer, TeamID: uptr(10)}

	d, err := svc.DerivedStats(ctx, player, policy.KindPerformance, 200)
	if err != nil {
		t.Fatalf("DerivedStats: %v", err)
	}
	if d.TotalRebounds != 7 || d.FieldGoalPercentage == nil || *d.FieldGoalPercentage != 70.0 {
		t.Fatalf("derived = %+v", d)
	}
	if _, err := svc.DerivedStats(ctx, player, policy.KindGame, 100); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for game kind, got %v", err)
	}

	avg, err := svc.PlayerAverages(ctx, player, 30)
	if err != nil {
		t.Fatalf("PlayerAverages: %v", err)
	}
	if avg.GamesPlayed != 1 || *avg.AvgPoints != 21 || *avg.AvgRebounds != 7 {
		t.Fatalf("averages = %+v", avg)
	}
	if avg.PlayerID != 30 || avg.PlayerName != "player" || avg.JerseyNumber == nil || *avg.JerseyNumber != 23 || *avg.TeamID != 10 {
		t.Fatalf("player identity = %+v", avg)
	}

	sum, err := svc.TeamSummary(ctx, player, 10)
	if err != nil {
		t.Fatalf("TeamSummary: %v", err)
	}
	if sum.TeamName != "Hawks" || sum.TeamCity != "Atlanta" {
		t.Fatalf("summary identity = %+v", sum)
	}
	if sum.Record.Wins != 1 || sum.Record.Losses != 0 || sum.Record.WinPercentage != 1 {
		t.Fatalf("record = %+v", sum.Record)
	}
	if sum.Averages.GamesPlayed != 1 || *sum.Averages.AvgThreePointPercentage != 33.3 {
		t.Fatalf("team averages = %+v", sum.Averages)
	}

	rec, err := svc.TeamRecord(ctx, player, 11)
	if err != nil {
		t.Fatalf("TeamRecord: %v", err)
	}
	if rec.Wins != 0 || rec.Losses != 1 || rec.WinPercentage != 0 {
		t.Fatalf("away record = %+v", rec)
	}

	season, err := svc.TeamAverages(ctx, player, 11)
	if err != nil {
		t.Fatalf("TeamAverages: %v", err)
	}
	if season.TeamID != 11 || season.TeamName != "Bulls" || season.GamesPlayed != 0 || season.AvgPoints != nil {
		t.Fatalf("empty team averages = %+v", season)
	}
}
