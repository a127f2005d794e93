package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	db, err := gorm.Open(sqlite.New(sqlite.Config{DSN: dsn, DriverName: "sqlite"}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fixture struct {
	repos *Repositories
	coach models.User
	stat  models.User
	user  models.User
	home  models.Team
	away  models.Team
	game  models.Game
	pl    models.Player
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{repos: NewRepositories(openTestDB(t))}

	f.coach = models.User{Username: "coach", Role: models.RoleCoach, IsActive: true}
	f.stat = models.User{Username: "stat", Role: models.RoleStatistician, IsActive: true}
	f.user = models.User{Username: "guard", FirstName: "Steph", LastName: "Curry", Role: models.RolePlayer, IsActive: true}
	for _, u := range []*models.User{&f.coach, &f.stat, &f.user} {
		if err := f.repos.Users.Create(ctx, u); err != nil {
			t.Fatalf("create user %s: %v", u.Username, err)
		}
	}

	f.home = models.Team{Name: "Hawks", CoachID: &f.coach.ID}
	f.away = models.Team{Name: "Bulls"}
	for _, team := range []*models.Team{&f.home, &f.away} {
		if err := f.repos.Teams.Create(ctx, team); err != nil {
			t.Fatalf("create team %s: %v", team.Name, err)
		}
	}

	f.pl = models.Player{UserID: f.user.ID, TeamID: &f.home.ID, JerseyNumber: intPtr(30), Active: true}
	if err := f.repos.Players.Create(ctx, &f.pl); err != nil {
		t.Fatalf("create player: %v", err)
	}

	f.game = models.Game{HomeTeamID: f.home.ID, AwayTeamID: f.away.ID, ScheduledAt: time.Now()}
	if err := f.repos.Games.Create(ctx, &f.game); err != nil {
		t.Fatalf("create game: %v", err)
	}
	return f
}

func intPtr(v int) *int { return &v }

func TestDuplicatePerformanceConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := models.Performance{PlayerID: f.pl.ID, GameID: f.game.ID, BoxScore: models.BoxScore{Points: 20}}
	if err := f.repos.Performances.Create(ctx, &first); err != nil {
		t.Fatalf("first create: %v", err)
	}
	second := models.Performance{PlayerID: f.pl.ID, GameID: f.game.ID, BoxScore: models.BoxScore{Points: 3}}
	if err := f.repos.Performances.Create(ctx, &second); !errors.Is(err, common.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	tp := models.TeamPerformance{TeamID: f.home.ID, GameID: f.game.ID}
	if err := f.repos.TeamPerformances.Create(ctx, &tp); err != nil {
		t.Fatalf("team performance: %v", err)
	}
	dup := models.TeamPerformance{TeamID: f.home.ID, GameID: f.game.ID}
	if err := f.repos.TeamPerformances.Create(ctx, &dup); !errors.Is(err, common.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestPerformanceForMissingGameIsNotFound(t *testing.T) {
	f := newFixture(t)
	perf := models.Performance{PlayerID: f.pl.ID, GameID: 9999}
	if err := f.repos.Performances.Create(context.Background(), &perf); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGameDeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	perf := models.Performance{PlayerID: f.pl.ID, GameID: f.game.ID}
	tp := models.TeamPerformance{TeamID: f.away.ID, GameID: f.game.ID}
	if err := f.repos.Performances.Create(ctx, &perf); err != nil {
		t.Fatal(err)
	}
	if err := f.repos.TeamPerformances.Create(ctx, &tp); err != nil {
		t.Fatal(err)
	}

	if err := f.repos.Games.Delete(ctx, f.game.ID); err != nil {
		t.Fatalf("delete game: %v", err)
	}
	if _, err := f.repos.Performances.GetByID(ctx, perf.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("performance survived game delete: %v", err)
	}
	if _, err := f.repos.TeamPerformances.GetByID(ctx, tp.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("team performance survived game delete: %v", err)
	}
	if err := f.repos.Games.Delete(ctx, f.game.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestTeamDeleteFreesPlayers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.repos.Teams.Delete(ctx, f.home.ID); err != nil {
		t.Fatalf("delete team: %v", err)
	}
	pl, err := f.repos.Players.GetByID(ctx, f.pl.ID)
	if err != nil {
		t.Fatalf("player deleted with team: %v", err)
	}
	if pl.TeamID != nil {
		t.Fatalf("player team = %d, want nil", *pl.TeamID)
	}
	if _, err := f.repos.Games.GetByID(ctx, f.game.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("game survived team delete: %v", err)
	}
}

func TestJerseyUniqueWithinTeam(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	newPlayerUser := func(name string) uint {
		u := models.User{Username: name, Role: models.RolePlayer}
		if err := f.repos.Users.Create(ctx, &u); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		return u.ID
	}

	clash := models.Player{UserID: newPlayerUser("clash"), TeamID: &f.home.ID, JerseyNumber: intPtr(30)}
	if err := f.repos.Players.Create(ctx, &clash); !errors.Is(err, common.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	otherTeam := models.Player{UserID: newPlayerUser("other"), TeamID: &f.away.ID, JerseyNumber: intPtr(30)}
	if err := f.repos.Players.Create(ctx, &otherTeam); err != nil {
		t.Fatalf("same jersey on another team: %v", err)
	}

	for _, name := range []string{"nojersey1", "nojersey2"} {
		p := models.Player{UserID: newPlayerUser(name), TeamID: &f.home.ID}
		if err := f.repos.Players.Create(ctx, &p); err != nil {
			t.Fatalf("null jersey %s: %v", name, err)
		}
	}
}

func TestPlayerProfileRequiresPlayerRole(t *testing.T) {
	f := newFixture(t)
	p := models.Player{UserID: f.coach.ID}
	if err := f.repos.Players.Create(context.Background(), &p); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStaffMembership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.repos.Teams.AddStaff(ctx, f.home.ID, f.stat.ID); err != nil {
		t.Fatalf("add staff: %v", err)
	}
	team, err := f.repos.Teams.GetByID(ctx, f.home.ID)
	if err != nil {
		t.Fatal(err)
	}
	if ids := team.StaffIDs(); len(ids) != 1 || ids[0] != f.stat.ID {
		t.Fatalf("staff = %v", ids)
	}
	if err := f.repos.Teams.AddStaff(ctx, f.home.ID, f.stat.ID); !errors.Is(err, common.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if err := f.repos.Teams.AddStaff(ctx, f.home.ID, f.coach.ID); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for coach, got %v", err)
	}

	if err := f.repos.Teams.RemoveStaff(ctx, f.home.ID, f.stat.ID); err != nil {
		t.Fatalf("remove staff: %v", err)
	}
	team, _ = f.repos.Teams.GetByID(ctx, f.home.ID)
	if len(team.Staff) != 0 {
		t.Fatalf("staff after removal = %v", team.StaffIDs())
	}
	if err := f.repos.Teams.RemoveStaff(ctx, f.home.ID, f.stat.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCoachCoachesOneTeam(t *testing.T) {
	f := newFixture(t)
	second := models.Team{Name: "Knicks", CoachID: &f.coach.ID}
	if err := f.repos.Teams.Create(context.Background(), &second); !errors.Is(err, common.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserDeleteClearsReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	perf := models.Performance{PlayerID: f.pl.ID, GameID: f.game.ID, CreatedByID: &f.stat.ID}
	if err := f.repos.Performances.Create(ctx, &perf); err != nil {
		t.Fatal(err)
	}
	if err := f.repos.Users.Delete(ctx, f.stat.ID); err != nil {
		t.Fatalf("delete statistician: %v", err)
	}
	got, err := f.repos.Performances.GetByID(ctx, perf.ID)
	if err != nil {
		t.Fatalf("performance deleted with creator: %v", err)
	}
	if got.CreatedByID != nil {
		t.Fatalf("created_by = %d, want nil", *got.CreatedByID)
	}

	if err := f.repos.Users.Delete(ctx, f.user.ID); err != nil {
		t.Fatalf("delete player user: %v", err)
	}
	if _, err := f.repos.Players.GetByID(ctx, f.pl.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("player profile survived user delete: %v", err)
	}
	if _, err := f.repos.Performances.GetByID(ctx, perf.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("performance survived player delete: %v", err)
	}
}

func TestGameUpdateValidates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	g, err := f.repos.Games.GetByID(ctx, f.game.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.HomeTeam.Staff) != 0 || g.HomeTeam.Name != "Hawks" {
		t.Fatalf("home team not preloaded: %+v", g.HomeTeam)
	}
	g.HomeScore = intPtr(10)
	if err := f.repos.Games.Update(ctx, g); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	g.Status = models.GameStatusCompleted
	g.AwayScore = intPtr(8)
	if err := f.repos.Games.Update(ctx, g); err != nil {
		t.Fatalf("update: %v", err)
	}

	games, err := f.repos.Games.ListByTeam(ctx, f.away.ID)
	if err != nil || len(games) != 1 {
		t.Fatalf("ListByTeam = %v, %v", games, err)
	}
	if games[0].WinnerID() == nil || *games[0].WinnerID() != f.home.ID {
		t.Fatalf("winner = %v", games[0].WinnerID())
	}
}

func TestListPlayersFuzzySearch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := models.User{Username: "bigman", FirstName: "Shaquille", LastName: "O'Neal", Role: models.RolePlayer}
	if err := f.repos.Users.Create(ctx, &u); err != nil {
		t.Fatal(err)
	}
	if err := f.repos.Players.Create(ctx, &models.Player{UserID: u.ID, Active: true}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"curry", []string{"guard"}},
		{"shq", []string{"bigman"}},
		{"Stepj Curry", []string{"guard"}},
		{"zzzz", nil},
	}
	for _, tt := range tests {
		players, total, err := f.repos.Players.List(ctx, PlayerFilter{Search: tt.query}, 1, 10)
		if err != nil {
			t.Fatalf("search %q: %v", tt.query, err)
		}
		if int(total) != len(tt.want) || len(players) != len(tt.want) {
			t.Fatalf("search %q: got %d players (total %d), want %v", tt.query, len(players), total, tt.want)
		}
		for i, p := range players {
			if p.User.Username != tt.want[i] {
				t.Fatalf("search %q: result %d = %s, want %s", tt.query, i, p.User.Username, tt.want[i])
			}
		}
	}

	active := true
	players, total, err := f.repos.Players.List(ctx, PlayerFilter{TeamID: &f.home.ID, Active: &active}, 1, 10)
	if err != nil || total != 1 || players[0].ID != f.pl.ID {
		t.Fatalf("team filter = %v (%d), %v", players, total, err)
	}
}
