package policy

import (
	"errors"
	"testing"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
)

func uptr(v uint) *uint { return &v }

var (
	admin       = Principal{UserID: 1, Role: RoleAdmin}
	coach       = Principal{UserID: 2, Role: RoleCoach}
	otherCoach  = Principal{UserID: 3, Role: RoleCoach}
	stat        = Principal{UserID: 4, Role: RoleStatistician}
	outsideStat = Principal{UserID: 5, Role: RoleStatistician}
	player      = Principal{UserID: 6, Role: RolePlayer, TeamID: uptr(10)}
	freeAgent   = Principal{UserID: 7, Role: RolePlayer}

	hawks  = Team{ID: 10, CoachID: uptr(2), StaffIDs: []uint{4}}
	bulls  = Team{ID: 11, CoachID: uptr(3)}
	nets   = Team{ID: 12}
	game   = Game{ID: 100, Home: hawks, Away: bulls}
	away   = Game{ID: 101, Home: bulls, Away: nets}
	mine   = Performance{ID: 200, PlayerUserID: 6, Game: game}
	theirs = Performance{ID: 201, PlayerUserID: 9, Game: game}
)

var allActions = []Action{ActionList, ActionRead, ActionCreate, ActionUpdate, ActionDelete}

func allResources() []Resource {
	return []Resource{
		User{ID: 6},
		hawks, bulls, nets,
		Player{ID: 50, UserID: 6, Team: &hawks},
		Player{ID: 51, UserID: 9},
		game, away, mine, theirs,
		TeamPerformance{ID: 300, Team: hawks, Game: game},
		Collection{Of: KindUser},
		Collection{Of: KindTeam},
		Collection{Of: KindPlayer, Team: &bulls},
		Collection{Of: KindGame},
	}
}

func TestAdminAllowedEverywhere(t *testing.T) {
	for _, r := range allResources() {
		for _, a := range allActions {
			if d := Authorize(admin, a, r); !d.Allowed {
				t.Fatalf("admin %s %T denied: %s", a, r, d.Reason)
			}
		}
	}
}

func TestUnknownInputsDeny(t *testing.T) {
	tests := []struct {
		name   string
		p      Principal
		action Action
		r      Resource
	}{
		{"unspecified role", Principal{UserID: 1, Role: models.RoleUnspecified}, ActionRead, game},
		{"out of range role", Principal{UserID: 1, Role: models.Role(42)}, ActionRead, game},
		{"unknown action", admin, Action(99), game},
		{"zero action", coach, Action(0), game},
		{"nil resource", admin, ActionRead, nil},
		{"unknown collection kind", coach, ActionList, Collection{Of: Kind(77)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Authorize(tt.p, tt.action, tt.r)
			if d.Allowed {
				t.Fatal("expected deny")
			}
			if !errors.Is(d.Err(), common.ErrForbidden) {
				t.Fatalf("expected ErrForbidden, got %v", d.Err())
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name   string
		p      Principal
		action Action
		r      Resource
		want   bool
	}{
		// Users
		{"coach lists users", coach, ActionList, Collection{Of: KindUser}, true},
		{"player cannot list users", player, ActionList, Collection{Of: KindUser}, false},
		{"player reads self", player, ActionRead, User{ID: 6}, true},
		{"player reads other user", player, ActionRead, User{ID: 2}, false},
		{"player cannot update self", player, ActionUpdate, User{ID: 6}, false},
		{"coach updates self", coach, ActionUpdate, User{ID: 2}, true},
		{"coach cannot update other", coach, ActionUpdate, User{ID: 4}, false},
		{"coach cannot create users", coach, ActionCreate, User{}, false},
		{"statistician cannot delete users", stat, ActionDelete, User{ID: 4}, false},

		// Teams
		{"coach creates own team", coach, ActionCreate, Team{CoachID: uptr(2)}, true},
		{"coach creates team for someone else", coach, ActionCreate, Team{CoachID: uptr(3)}, false},
		{"coach creates coachless team", coach, ActionCreate, Team{}, false},
		{"statistician cannot create team", stat, ActionCreate, Team{CoachID: uptr(4)}, false},
		{"coach updates own team", coach, ActionUpdate, hawks, true},
		{"coach cannot update other team", coach, ActionUpdate, bulls, false},
		{"coach deletes own team", coach, ActionDelete, hawks, true},
		{"staff statistician cannot update team", stat, ActionUpdate, hawks, false},
		{"player reads own team", player, ActionRead, hawks, true},
		{"player cannot read other team", player, ActionRead, bulls, false},
		{"free agent cannot read team", freeAgent, ActionRead, hawks, false},
		{"player lists own roster", player, ActionList, Collection{Of: KindPlayer, Team: &hawks}, true},
		{"player cannot list other roster", player, ActionList, Collection{Of: KindPlayer, Team: &bulls}, false},
		{"player cannot list all teams", player, ActionList, Collection{Of: KindTeam}, false},
		{"statistician lists teams", stat, ActionList, Collection{Of: KindTeam}, true},

		// Players
		{"player reads own profile", freeAgent, ActionRead, Player{ID: 52, UserID: 7}, true},
		{"player reads teammate", player, ActionRead, Player{ID: 53, UserID: 8, Team: &hawks}, true},
		{"player cannot read other roster", player, ActionRead, Player{ID: 54, UserID: 9, Team: &bulls}, false},
		{"player cannot edit own profile", player, ActionUpdate, Player{ID: 50, UserID: 6, Team: &hawks}, false},
		{"coach adds player to own team", coach, ActionCreate, Player{UserID: 9, Team: &hawks}, true},
		{"coach cannot add player to other team", coach, ActionCreate, Player{UserID: 9, Team: &bulls}, false},
		{"coach cannot create free agent", coach, ActionCreate, Player{UserID: 9}, false},
		{"statistician cannot edit player", stat, ActionUpdate, Player{ID: 50, UserID: 6, Team: &hawks}, false},

		// Games
		{"player reads game", player, ActionRead, away, true},
		{"player lists games", freeAgent, ActionList, Collection{Of: KindGame}, true},
		{"home coach creates game", coach, ActionCreate, game, true},
		{"away coach creates game", otherCoach, ActionCreate, game, true},
		{"uninvolved coach cannot create game", coach, ActionCreate, away, false},
		{"staff statistician updates game", stat, ActionUpdate, game, true},
		{"staff statistician cannot delete game", stat, ActionDelete, game, false},
		{"outside statistician cannot update game", outsideStat, ActionUpdate, game, false},
		{"player cannot update game", player, ActionUpdate, game, false},

		// Performances
		{"player reads other performance", player, ActionRead, theirs, true},
		{"player cannot update other performance", player, ActionUpdate, theirs, false},
		{"player cannot update own performance", player, ActionUpdate, mine, false},
		{"staff statistician records performance", stat, ActionCreate, theirs, true},
		{"staff statistician deletes performance", stat, ActionDelete, theirs, true},
		{"outside statistician cannot record", outsideStat, ActionCreate, theirs, false},
		{"coach cannot record performance", coach, ActionCreate, theirs, false},
		{"staff statistician cannot record other game", stat, ActionCreate, Performance{PlayerUserID: 9, Game: away}, false},
		{"player lists performances", player, ActionList, Collection{Of: KindPerformance}, true},
		{"collections cannot be written", stat, ActionCreate, Collection{Of: KindPerformance}, false},

		// Team performances
		{"staff statistician updates team performance", stat, ActionUpdate, TeamPerformance{ID: 300, Team: hawks, Game: game}, true},
		{"statistician cannot record for opponent", stat, ActionUpdate, TeamPerformance{ID: 301, Team: bulls, Game: game}, false},
		{"coach cannot record team performance", coach, ActionCreate, TeamPerformance{Team: hawks, Game: game}, false},
		{"player reads team performance", player, ActionRead, TeamPerformance{ID: 301, Team: bulls, Game: game}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Authorize(tt.p, tt.action, tt.r)
			if d.Allowed != tt.want {
				t.Fatalf("Authorize(%s) = %v (%s), want %v", tt.action, d.Allowed, d.Reason, tt.want)
			}
			if !tt.want && d.Reason == "" {
				t.Fatal("denial without a reason")
			}
		})
	}
}

func TestStatisticianAddedToStaff(t *testing.T) {
	team := Team{ID: 20, CoachID: uptr(2)}
	tp := TeamPerformance{ID: 400, Team: team, Game: Game{ID: 102, Home: team, Away: nets}}

	d := Authorize(outsideStat, ActionUpdate, tp)
	if d.Allowed {
		t.Fatal("statistician off staff should be denied")
	}
	if !errors.Is(d.Err(), common.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", d.Err())
	}

	tp.Team.StaffIDs = append(tp.Team.StaffIDs, outsideStat.UserID)
	if d := Authorize(outsideStat, ActionUpdate, tp); !d.Allowed {
		t.Fatalf("statistician on staff denied: %s", d.Reason)
	}
}

func TestDecisionsAreDeterministic(t *testing.T) {
	for _, p := range []Principal{coach, stat, player, freeAgent} {
		for _, r := range allResources() {
			for _, a := range allActions {
				if Authorize(p, a, r) != Authorize(p, a, r) {
					t.Fatalf("non-deterministic decision for %+v %s %T", p, a, r)
				}
			}
		}
	}
}

func TestChecks(t *testing.T) {
	if !IsTeamCoach(admin, nets) || !IsTeamStatistician(admin, nets) || !IsTeamMember(admin, nets) {
		t.Fatal("admin should pass every check")
	}
	if !IsTeamCoach(coach, hawks) || IsTeamCoach(coach, bulls) {
		t.Fatal("IsTeamCoach mismatch")
	}
	// A statistician id in CoachID does not make them coach.
	if IsTeamCoach(Principal{UserID: 2, Role: RoleStatistician}, hawks) {
		t.Fatal("role must be coach")
	}
	if !IsTeamStatistician(stat, hawks) || IsTeamStatistician(outsideStat, hawks) {
		t.Fatal("IsTeamStatistician mismatch")
	}
	if IsTeamStatistician(Principal{UserID: 4, Role: RoleCoach}, hawks) {
		t.Fatal("role must be statistician")
	}
	if !IsTeamMember(player, hawks) || IsTeamMember(player, bulls) || IsTeamMember(freeAgent, hawks) {
		t.Fatal("IsTeamMember mismatch for players")
	}
	if !IsTeamMember(stat, hawks) || !IsTeamMember(coach, hawks) || IsTeamMember(otherCoach, hawks) {
		t.Fatal("IsTeamMember mismatch for staff")
	}
}
