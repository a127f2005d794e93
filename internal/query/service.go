// Package query composes the store, the policy engine and the stats
// calculators. Every method authorizes before it lists rows or computes.
package query

import (
	"context"
	"errors"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
	"github.com/DhavalSuthar-24/hooptrack/internal/policy"
	"github.com/DhavalSuthar-24/hooptrack/internal/stats"
	"github.com/DhavalSuthar-24/hooptrack/internal/store"
)

type UserReader interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

type TeamReader interface {
	GetByID(ctx context.Context, id uint) (*models.Team, error)
}

type PlayerReader interface {
	GetByID(ctx context.Context, id uint) (*models.Player, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Player, error)
}

type GameReader interface {
	GetByID(ctx context.Context, id uint) (*models.Game, error)
	ListByTeam(ctx context.Context, teamID uint) ([]models.Game, error)
}

type PerformanceReader interface {
	GetByID(ctx context.Context, id uint) (*models.Performance, error)
	ListByPlayer(ctx context.Context, playerID uint) ([]models.Performance, error)
}

type TeamPerformanceReader interface {
	GetByID(ctx context.Context, id uint) (*models.TeamPerformance, error)
	ListByTeam(ctx context.Context, teamID uint) ([]models.TeamPerformance, error)
}

// Readers are the store lookups the service needs.
type Readers struct {
	Users            UserReader
	Teams            TeamReader
	Players          PlayerReader
	Games            GameReader
	Performances     PerformanceReader
	TeamPerformances TeamPerformanceReader
}

type Service struct {
	r Readers
}

func NewService(r Readers) *Service {
	return &Service{r: r}
}

// FromRepositories builds a Service over the gorm repositories.
func FromRepositories(repos *store.Repositories) *Service {
	return NewService(Readers{
		Users:            repos.Users,
		Teams:            repos.Teams,
		Players:          repos.Players,
		Games:            repos.Games,
		Performances:     repos.Performances,
		TeamPerformances: repos.TeamPerformances,
	})
}

// Principal loads the caller. Players carry their current team.
func (s *Service) Principal(ctx context.Context, userID uint) (policy.Principal, error) {
	user, err := s.r.Users.GetByID(ctx, userID)
	if err != nil {
		return policy.Principal{}, err
	}
	p := policy.Principal{UserID: user.ID, Role: user.Role}
	if user.Role == models.RolePlayer {
		profile, err := s.r.Players.GetByUserID(ctx, user.ID)
		switch {
		case err == nil:
			p.TeamID = profile.TeamID
		case !errors.Is(err, common.ErrNotFound):
			return policy.Principal{}, err
		}
	}
	return p, nil
}

// Authorize loads the snapshot ref points at and decides. It returns nil,
// a NotFound error for a missing record, or a Forbidden error.
func (s *Service) Authorize(ctx context.Context, p policy.Principal, action policy.Action, ref Ref) error {
	resource, err := s.resolve(ctx, action, ref)
	if err != nil {
		return err
	}
	return policy.Authorize(p, action, resource).Err()
}

// Performance loads a player box score the caller may read, with its
// derived stats.
func (s *Service) Performance(ctx context.Context, p policy.Principal, id uint) (*models.Performance, stats.Derived, error) {
	perf, err := s.r.Performances.GetByID(ctx, id)
	if err != nil {
		return nil, stats.Derived{}, err
	}
	if err := policy.Authorize(p, policy.ActionRead, performanceSnapshot(perf)).Err(); err != nil {
		return nil, stats.Derived{}, err
	}
	d, err := stats.Derive(perf.BoxScore)
	return perf, d, err
}

// TeamPerformance loads a team box score the caller may read, with its
// derived stats.
func (s *Service) TeamPerformance(ctx context.Context, p policy.Principal, id uint) (*models.TeamPerformance, stats.Derived, error) {
	tp, err := s.r.TeamPerformances.GetByID(ctx, id)
	if err != nil {
		return nil, stats.Derived{}, err
	}
	if err := policy.Authorize(p, policy.ActionRead, teamPerformanceSnapshot(tp)).Err(); err != nil {
		return nil, stats.Derived{}, err
	}
	d, err := stats.Derive(tp.BoxScore)
	return tp, d, err
}

// DerivedStats computes total rebounds and shooting percentages for one
// performance or team performance.
func (s *Service) DerivedStats(ctx context.Context, p policy.Principal, kind policy.Kind, id uint) (stats.Derived, error) {
	switch kind {
	case policy.KindPerformance:
		_, d, err := s.Performance(ctx, p, id)
		return d, err
	case policy.KindTeamPerformance:
		_, d, err := s.TeamPerformance(ctx, p, id)
		return d, err
	default:
		return stats.Derived{}, common.InvalidInput("derived stats are not defined for %s records", kind)
	}
}

// PlayerSeason is a player's identity alongside their per-game averages.
type PlayerSeason struct {
	PlayerID     uint             `json:"player_id"`
	PlayerName   string           `json:"player_name"`
	TeamID       *uint            `json:"team_id"`
	JerseyNumber *int             `json:"jersey_number"`
	Position     *models.Position `json:"position"`
	stats.Averages
}

// PlayerAverages computes the player's per-game season averages.
func (s *Service) PlayerAverages(ctx context.Context, p policy.Principal, playerID uint) (PlayerSeason, error) {
	player, err := s.r.Players.GetByID(ctx, playerID)
	if err != nil {
		return PlayerSeason{}, err
	}
	var scope *policy.Team
	if player.TeamID != nil {
		scope = &policy.Team{ID: *player.TeamID}
	}
	if err := policy.Authorize(p, policy.ActionList, policy.Collection{Of: policy.KindPerformance, Team: scope}).Err(); err != nil {
		return PlayerSeason{}, err
	}

	perfs, err := s.r.Performances.ListByPlayer(ctx, playerID)
	if err != nil {
		return PlayerSeason{}, err
	}
	avg, err := stats.Average(stats.PerformanceLines(perfs))
	if err != nil {
		return PlayerSeason{}, err
	}
	return PlayerSeason{
		PlayerID:     player.ID,
		PlayerName:   player.User.FullName(),
		TeamID:       player.TeamID,
		JerseyNumber: player.JerseyNumber,
		Position:     player.Position,
		Averages:     avg,
	}, nil
}

// TeamSeason is a team's identity alongside its per-game averages.
type TeamSeason struct {
	TeamID   uint   `json:"team_id"`
	TeamName string `json:"team_name"`
	TeamCity string `json:"team_city"`
	stats.Averages
}

// TeamAverages computes the team's per-game averages from its team
// performances.
func (s *Service) TeamAverages(ctx context.Context, p policy.Principal, teamID uint) (TeamSeason, error) {
	team, err := s.r.Teams.GetByID(ctx, teamID)
	if err != nil {
		return TeamSeason{}, err
	}
	if err := policy.Authorize(p, policy.ActionList, policy.Collection{Of: policy.KindTeamPerformance, Team: teamSnapshot(team)}).Err(); err != nil {
		return TeamSeason{}, err
	}
	avg, err := s.teamAverages(ctx, teamID)
	if err != nil {
		return TeamSeason{}, err
	}
	return TeamSeason{TeamID: team.ID, TeamName: team.Name, TeamCity: team.City, Averages: avg}, nil
}

func (s *Service) teamAverages(ctx context.Context, teamID uint) (stats.Averages, error) {
	tps, err := s.r.TeamPerformances.ListByTeam(ctx, teamID)
	if err != nil {
		return stats.Averages{}, err
	}
	return stats.Average(stats.TeamPerformanceLines(tps))
}

// TeamRecord computes the team's won-loss record.
func (s *Service) TeamRecord(ctx context.Context, p policy.Principal, teamID uint) (stats.Record, error) {
	team, err := s.r.Teams.GetByID(ctx, teamID)
	if err != nil {
		return stats.Record{}, err
	}
	if err := policy.Authorize(p, policy.ActionList, policy.Collection{Of: policy.KindGame, Team: teamSnapshot(team)}).Err(); err != nil {
		return stats.Record{}, err
	}
	return s.teamRecord(ctx, teamID)
}

func (s *Service) teamRecord(ctx context.Context, teamID uint) (stats.Record, error) {
	games, err := s.r.Games.ListByTeam(ctx, teamID)
	if err != nil {
		return stats.Record{}, err
	}
	return stats.ComputeRecord(teamID, games), nil
}

// Summary is a team's averages and record together.
type Summary struct {
	TeamID   uint           `json:"team_id"`
	TeamName string         `json:"team_name"`
	TeamCity string         `json:"team_city"`
	Averages stats.Averages `json:"averages"`
	Record   stats.Record   `json:"record"`
}

// TeamSummary answers TeamAverages and TeamRecord in one call.
func (s *Service) TeamSummary(ctx context.Context, p policy.Principal, teamID uint) (Summary, error) {
	team, err := s.r.Teams.GetByID(ctx, teamID)
	if err != nil {
		return Summary{}, err
	}
	snap := teamSnapshot(team)
	for _, kind := range []policy.Kind{policy.KindTeamPerformance, policy.KindGame} {
		if err := policy.Authorize(p, policy.ActionList, policy.Collection{Of: kind, Team: snap}).Err(); err != nil {
			return Summary{}, err
		}
	}

	avg, err := s.teamAverages(ctx, teamID)
	if err != nil {
		return Summary{}, err
	}
	rec, err := s.teamRecord(ctx, teamID)
	if err != nil {
		return Summary{}, err
	}
	return Summary{TeamID: team.ID, TeamName: team.Name, TeamCity: team.City, Averages: avg, Record: rec}, nil
}
