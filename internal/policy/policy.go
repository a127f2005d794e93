// Package policy decides whether a principal may perform an action on a
// resource. Decisions are pure functions of the principal and resource
// snapshots handed in; callers load the snapshots.
package policy

import (
	"fmt"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
)

type Action uint8

const (
	ActionList Action = iota + 1
	ActionRead
	ActionCreate
	ActionUpdate
	ActionDelete
)

var actionNames = map[Action]string{
	ActionList:   "list",
	ActionRead:   "read",
	ActionCreate: "create",
	ActionUpdate: "update",
	ActionDelete: "delete",
}

func (a Action) Valid() bool {
	_, ok := actionNames[a]
	return ok
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

func (a Action) writes() bool {
	return a == ActionCreate || a == ActionUpdate || a == ActionDelete
}

// Kind names a resource type.
type Kind uint8

const (
	KindUser Kind = iota + 1
	KindTeam
	KindPlayer
	KindGame
	KindPerformance
	KindTeamPerformance
)

var kindNames = map[Kind]string{
	KindUser:            "user",
	KindTeam:            "team",
	KindPlayer:          "player",
	KindGame:            "game",
	KindPerformance:     "performance",
	KindTeamPerformance: "team performance",
}

func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Principal is the caller. TeamID is set for players assigned to a team.
type Principal struct {
	UserID uint
	Role   models.Role
	TeamID *uint
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// Role aliases keep call sites short.
const (
	RolePlayer       = models.RolePlayer
	RoleCoach        = models.RoleCoach
	RoleStatistician = models.RoleStatistician
	RoleAdmin        = models.RoleAdmin
)

// Resource is one of the snapshot types below. The set is closed.
type Resource interface {
	Kind() Kind
	resource()
}

// User is a user account.
type User struct {
	ID uint
}

// Team is a team with its coach and statistician staff. It also serves as
// the team snapshot embedded in the other resources.
type Team struct {
	ID       uint
	CoachID  *uint
	StaffIDs []uint
}

// Player is a roster profile. Team is nil for free agents.
type Player struct {
	ID     uint
	UserID uint
	Team   *Team
}

type Game struct {
	ID   uint
	Home Team
	Away Team
}

// Performance is a player's box score in a game.
type Performance struct {
	ID           uint
	PlayerUserID uint
	Game         Game
}

// TeamPerformance is a team's box score in a game.
type TeamPerformance struct {
	ID   uint
	Team Team
	Game Game
}

// Collection is a list of resources of one kind, optionally scoped to a
// team.
type Collection struct {
	Of   Kind
	Team *Team
}

func (User) Kind() Kind            { return KindUser }
func (Team) Kind() Kind            { return KindTeam }
func (Player) Kind() Kind          { return KindPlayer }
func (Game) Kind() Kind            { return KindGame }
func (Performance) Kind() Kind     { return KindPerformance }
func (TeamPerformance) Kind() Kind { return KindTeamPerformance }
func (c Collection) Kind() Kind    { return c.Of }

func (User) resource()            {}
func (Team) resource()            {}
func (Player) resource()          {}
func (Game) resource()            {}
func (Performance) resource()     {}
func (TeamPerformance) resource() {}
func (Collection) resource()      {}

// Decision is the outcome of Authorize. Reason explains a denial.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision { return Decision{Allowed: true} }

func deny(format string, args ...interface{}) Decision {
	return Decision{Reason: fmt.Sprintf(format, args...)}
}

// Err is nil when allowed and a Forbidden error otherwise.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return common.Forbidden(d.Reason)
}

// Authorize decides whether p may perform action on r.
func Authorize(p Principal, action Action, r Resource) Decision {
	if !p.Role.Valid() {
		return deny("unknown role")
	}
	if !action.Valid() {
		return deny("unknown action %s", action)
	}
	if r == nil {
		return deny("no resource")
	}
	if p.IsAdmin() {
		return allow()
	}

	switch r := r.(type) {
	case User:
		return authorizeUser(p, action, r)
	case Team:
		return authorizeTeam(p, action, r)
	case Player:
		return authorizePlayer(p, action, r)
	case Game:
		return authorizeGame(p, action, r)
	case Performance:
		return authorizePerformance(p, action, r)
	case TeamPerformance:
		return authorizeTeamPerformance(p, action, r)
	case Collection:
		return authorizeCollection(p, action, r)
	default:
		return deny("unknown resource kind")
	}
}

// staff reports whether the role reads everything.
func staff(p Principal) bool {
	return p.Role == RoleCoach || p.Role == RoleStatistician
}

func authorizeUser(p Principal, action Action, u User) Decision {
	switch action {
	case ActionList, ActionRead:
		if staff(p) || u.ID == p.UserID {
			return allow()
		}
		return deny("players may only view their own account")
	case ActionUpdate:
		if staff(p) && u.ID == p.UserID {
			return allow()
		}
		return deny("only coaches and statisticians may edit their own account")
	default:
		return deny("only admins may %s users", action)
	}
}

func authorizeTeam(p Principal, action Action, t Team) Decision {
	if !action.writes() {
		if staff(p) || IsTeamMember(p, t) {
			return allow()
		}
		return deny("players may only view their own team")
	}
	if IsTeamCoach(p, t) {
		return allow()
	}
	return deny("only the team's coach may %s it", action)
}

func authorizePlayer(p Principal, action Action, pl Player) Decision {
	if !action.writes() {
		if staff(p) || pl.UserID == p.UserID || (pl.Team != nil && IsTeamMember(p, *pl.Team)) {
			return allow()
		}
		return deny("players may only view their own team's roster")
	}
	if pl.Team != nil && IsTeamCoach(p, *pl.Team) {
		return allow()
	}
	return deny("only the coach of the player's team may %s players", action)
}

func authorizeGame(p Principal, action Action, g Game) Decision {
	if !action.writes() {
		return allow()
	}
	if IsTeamCoach(p, g.Home) || IsTeamCoach(p, g.Away) {
		return allow()
	}
	if action == ActionUpdate && (IsTeamStatistician(p, g.Home) || IsTeamStatistician(p, g.Away)) {
		return allow()
	}
	return deny("only staff of a participating team may %s this game", action)
}

func authorizePerformance(p Principal, action Action, perf Performance) Decision {
	if !action.writes() {
		return allow()
	}
	if p.Role != RoleStatistician {
		return deny("only statisticians may record performances")
	}
	if IsTeamStatistician(p, perf.Game.Home) || IsTeamStatistician(p, perf.Game.Away) {
		return allow()
	}
	return deny("statistician is not on the staff of either team in this game")
}

func authorizeTeamPerformance(p Principal, action Action, tp TeamPerformance) Decision {
	if !action.writes() {
		return allow()
	}
	if p.Role != RoleStatistician {
		return deny("only statisticians may record team performances")
	}
	if IsTeamStatistician(p, tp.Team) {
		return allow()
	}
	return deny("statistician is not on the team's staff")
}

func authorizeCollection(p Principal, action Action, c Collection) Decision {
	if action != ActionList && action != ActionRead {
		return deny("collections can only be listed")
	}
	if !c.Of.Valid() {
		return deny("unknown resource kind")
	}
	if staff(p) {
		return allow()
	}
	switch c.Of {
	case KindGame, KindPerformance, KindTeamPerformance:
		return allow()
	case KindTeam, KindPlayer:
		if c.Team != nil && IsTeamMember(p, *c.Team) {
			return allow()
		}
		return deny("players may only list their own team")
	default:
		return deny("players may not list %ss", c.Of)
	}
}
