package store

import (
	"context"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
)

// similarityThreshold is the minimum normalised Levenshtein similarity for a
// name that is not a subsequence match to still count as a hit.
const similarityThreshold = 0.7

type PlayerFilter struct {
	TeamID   *uint
	Position *models.Position
	Active   *bool
	// Search matches player names fuzzily; results are ordered best first.
	Search string
}

// PlayerRepository defines the interface for player data operations
type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id uint) (*models.Player, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Player, error)
	List(ctx context.Context, filter PlayerFilter, page, limit int) ([]models.Player, int64, error)
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, id uint) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, player *models.Player) error {
	if err := r.checkUser(ctx, player.UserID); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(player).Error
	if err != nil {
		return translate(err, "player", player.ID)
	}
	return r.db.WithContext(ctx).Preload("User").First(player, player.ID).Error
}

func (r *playerRepository) GetByID(ctx context.Context, id uint) (*models.Player, error) {
	var player models.Player
	if err := r.db.WithContext(ctx).Preload("User").First(&player, id).Error; err != nil {
		return nil, translate(err, "player", id)
	}
	return &player, nil
}

func (r *playerRepository) GetByUserID(ctx context.Context, userID uint) (*models.Player, error) {
	var player models.Player
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&player).Error
	if err != nil {
		return nil, translate(err, "player profile for user", userID)
	}
	return &player, nil
}

func (r *playerRepository) List(ctx context.Context, filter PlayerFilter, page, limit int) ([]models.Player, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Player{})
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.Position != nil {
		query = query.Where("position = ?", *filter.Position)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	if strings.TrimSpace(filter.Search) == "" {
		var players []models.Player
		var total int64
		if err := query.Count(&total).Error; err != nil {
			return nil, 0, translate(err, "player", 0)
		}
		err := query.Preload("User").Scopes(paginate(page, limit)).Order("id").Find(&players).Error
		if err != nil {
			return nil, 0, translate(err, "player", 0)
		}
		return players, total, nil
	}

	var candidates []models.Player
	if err := query.Preload("User").Order("id").Find(&candidates).Error; err != nil {
		return nil, 0, translate(err, "player", 0)
	}
	matches := searchPlayers(candidates, filter.Search)
	return pageOf(matches, page, limit), int64(len(matches)), nil
}

func (r *playerRepository) Update(ctx context.Context, player *models.Player) error {
	res := r.db.WithContext(ctx).Model(player).Select("*").Omit(clause.Associations, "created_at").Updates(player)
	if res.Error != nil {
		return translate(res.Error, "player", player.ID)
	}
	if res.RowsAffected == 0 {
		return common.NotFound("player", player.ID)
	}
	return nil
}

// Delete removes the player profile and its performances. The user account
// stays.
func (r *playerRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Player{}, "player", id)
}

func (r *playerRepository) checkUser(ctx context.Context, userID uint) error {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return translate(err, "user", userID)
	}
	if user.Role != models.RolePlayer {
		return common.InvalidInput("user %d is a %s, only players can have a player profile", userID, user.Role)
	}
	return nil
}

type scoredPlayer struct {
	player models.Player
	rank   int
}

// searchPlayers keeps players whose full name or username contains the
// query as a subsequence, or is within Levenshtein reach of it, ranked by
// edit distance.
func searchPlayers(players []models.Player, query string) []models.Player {
	query = strings.ToLower(strings.TrimSpace(query))
	var hits []scoredPlayer
	for _, p := range players {
		best := -1
		for _, name := range []string{strings.ToLower(p.User.FullName()), strings.ToLower(p.User.Username)} {
			if name == "" {
				continue
			}
			rank := -1
			if fuzzy.MatchFold(query, name) {
				rank = fuzzy.RankMatchFold(query, name)
			} else {
				distance := fuzzy.LevenshteinDistance(query, name)
				maxLen := float64(max(len(query), len(name)))
				if 1-float64(distance)/maxLen > similarityThreshold {
					rank = distance
				}
			}
			if rank >= 0 && (best < 0 || rank < best) {
				best = rank
			}
		}
		if best >= 0 {
			hits = append(hits, scoredPlayer{player: p, rank: best})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })

	out := make([]models.Player, len(hits))
	for i, h := range hits {
		out[i] = h.player
	}
	return out
}

func pageOf(players []models.Player, page, limit int) []models.Player {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	start := (page - 1) * limit
	if start >= len(players) {
		return []models.Player{}
	}
	return players[start:min(start+limit, len(players))]
}
