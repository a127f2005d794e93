package query

import (
	"context"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
	"github.com/DhavalSuthar-24/hooptrack/internal/policy"
)

// Ref identifies what an action targets. For list actions it names a
// collection, optionally scoped to TeamID. With a non-zero ID it names a
// stored record. Otherwise it describes a record about to be written, whose
// parents are given by the remaining fields.
type Ref struct {
	Kind policy.Kind
	ID   uint

	TeamID     *uint
	AwayTeamID uint
	PlayerID   uint
	GameID     uint
	CoachID    *uint
}

func Existing(kind policy.Kind, id uint) Ref {
	return Ref{Kind: kind, ID: id}
}

func Collection(kind policy.Kind, teamID *uint) Ref {
	return Ref{Kind: kind, TeamID: teamID}
}

func (s *Service) resolve(ctx context.Context, action policy.Action, ref Ref) (policy.Resource, error) {
	if !ref.Kind.Valid() {
		return nil, common.Forbidden("unknown resource kind")
	}
	switch {
	case action == policy.ActionList:
		return s.collection(ctx, ref)
	case ref.ID != 0:
		return s.existing(ctx, ref.Kind, ref.ID)
	default:
		return s.draft(ctx, ref)
	}
}

func (s *Service) collection(ctx context.Context, ref Ref) (policy.Resource, error) {
	c := policy.Collection{Of: ref.Kind}
	if ref.TeamID != nil {
		team, err := s.teamByID(ctx, *ref.TeamID)
		if err != nil {
			return nil, err
		}
		c.Team = &team
	}
	return c, nil
}

func (s *Service) existing(ctx context.Context, kind policy.Kind, id uint) (policy.Resource, error) {
	switch kind {
	case policy.KindUser:
		if _, err := s.r.Users.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return policy.User{ID: id}, nil
	case policy.KindTeam:
		return s.teamByID(ctx, id)
	case policy.KindPlayer:
		player, err := s.r.Players.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return s.playerSnapshot(ctx, player)
	case policy.KindGame:
		game, err := s.r.Games.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return gameSnapshot(game), nil
	case policy.KindPerformance:
		perf, err := s.r.Performances.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return performanceSnapshot(perf), nil
	case policy.KindTeamPerformance:
		tp, err := s.r.TeamPerformances.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return teamPerformanceSnapshot(tp), nil
	}
	return nil, common.InvalidInput("unknown resource kind %s", kind)
}

// draft builds the snapshot of a record that does not exist yet, or of a
// record's new parents on update.
func (s *Service) draft(ctx context.Context, ref Ref) (policy.Resource, error) {
	switch ref.Kind {
	case policy.KindUser:
		return policy.User{}, nil
	case policy.KindTeam:
		return policy.Team{CoachID: ref.CoachID}, nil
	case policy.KindPlayer:
		pl := policy.Player{}
		if ref.TeamID != nil {
			team, err := s.teamByID(ctx, *ref.TeamID)
			if err != nil {
				return nil, err
			}
			pl.Team = &team
		}
		return pl, nil
	case policy.KindGame:
		if ref.TeamID == nil || ref.AwayTeamID == 0 {
			return nil, common.InvalidInput("home and away teams are required")
		}
		home, err := s.teamByID(ctx, *ref.TeamID)
		if err != nil {
			return nil, err
		}
		away, err := s.teamByID(ctx, ref.AwayTeamID)
		if err != nil {
			return nil, err
		}
		return policy.Game{Home: home, Away: away}, nil
	case policy.KindPerformance:
		player, err := s.r.Players.GetByID(ctx, ref.PlayerID)
		if err != nil {
			return nil, err
		}
		game, err := s.r.Games.GetByID(ctx, ref.GameID)
		if err != nil {
			return nil, err
		}
		return policy.Performance{PlayerUserID: player.UserID, Game: gameSnapshot(game)}, nil
	case policy.KindTeamPerformance:
		if ref.TeamID == nil {
			return nil, common.InvalidInput("team is required")
		}
		team, err := s.teamByID(ctx, *ref.TeamID)
		if err != nil {
			return nil, err
		}
		game, err := s.r.Games.GetByID(ctx, ref.GameID)
		if err != nil {
			return nil, err
		}
		return policy.TeamPerformance{Team: team, Game: gameSnapshot(game)}, nil
	}
	return nil, common.InvalidInput("unknown resource kind %s", ref.Kind)
}

func (s *Service) teamByID(ctx context.Context, id uint) (policy.Team, error) {
	team, err := s.r.Teams.GetByID(ctx, id)
	if err != nil {
		return policy.Team{}, err
	}
	return *teamSnapshot(team), nil
}

func (s *Service) playerSnapshot(ctx context.Context, player *models.Player) (policy.Player, error) {
	pl := policy.Player{ID: player.ID, UserID: player.UserID}
	if player.TeamID != nil {
		team, err := s.teamByID(ctx, *player.TeamID)
		if err != nil {
			return policy.Player{}, err
		}
		pl.Team = &team
	}
	return pl, nil
}

func teamSnapshot(t *models.Team) *policy.Team {
	return &policy.Team{ID: t.ID, CoachID: t.CoachID, StaffIDs: t.StaffIDs()}
}

// gameSnapshot expects HomeTeam and AwayTeam loaded with their staff.
func gameSnapshot(g *models.Game) policy.Game {
	home, away := g.HomeTeam, g.AwayTeam
	home.ID, away.ID = g.HomeTeamID, g.AwayTeamID
	return policy.Game{ID: g.ID, Home: *teamSnapshot(&home), Away: *teamSnapshot(&away)}
}

func performanceSnapshot(perf *models.Performance) policy.Performance {
	return policy.Performance{ID: perf.ID, PlayerUserID: perf.Player.UserID, Game: gameSnapshot(&perf.Game)}
}

func teamPerformanceSnapshot(tp *models.TeamPerformance) policy.TeamPerformance {
	team := tp.Team
	team.ID = tp.TeamID
	return policy.TeamPerformance{ID: tp.ID, Team: *teamSnapshot(&team), Game: gameSnapshot(&tp.Game)}
}
