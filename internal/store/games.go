package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
)

type GameFilter struct {
	TeamID *uint
	Status models.GameStatus
	Season string
}

// GameRepository defines the interface for game data operations
type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	// GetByID loads the game with both teams and their staff.
	GetByID(ctx context.Context, id uint) (*models.Game, error)
	List(ctx context.Context, filter GameFilter, page, limit int) ([]models.Game, int64, error)
	// ListByTeam returns every game the team plays in, oldest first.
	ListByTeam(ctx context.Context, teamID uint) ([]models.Game, error)
	Update(ctx context.Context, game *models.Game) error
	Delete(ctx context.Context, id uint) error
}

type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new instance of GameRepository
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(ctx context.Context, game *models.Game) error {
	if game.Status == "" {
		game.Status = models.GameStatusScheduled
	}
	if err := game.Validate(); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(game).Error
	return translate(err, "game", game.ID)
}

func (r *gameRepository) GetByID(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).
		Preload("HomeTeam.Staff").
		Preload("AwayTeam.Staff").
		First(&game, id).Error
	if err != nil {
		return nil, translate(err, "game", id)
	}
	return &game, nil
}

func (r *gameRepository) filtered(ctx context.Context, filter GameFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Game{})
	if filter.TeamID != nil {
		query = query.Where("home_team_id = ? OR away_team_id = ?", *filter.TeamID, *filter.TeamID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Season != "" {
		query = query.Where("season = ?", filter.Season)
	}
	return query
}

func (r *gameRepository) List(ctx context.Context, filter GameFilter, page, limit int) ([]models.Game, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, common.InvalidInput("unknown game status %q", filter.Status)
	}

	var games []models.Game
	var total int64
	query := r.filtered(ctx, filter)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "game", 0)
	}
	err := query.Scopes(paginate(page, limit)).Order("scheduled_at desc, id desc").Find(&games).Error
	if err != nil {
		return nil, 0, translate(err, "game", 0)
	}
	return games, total, nil
}

func (r *gameRepository) ListByTeam(ctx context.Context, teamID uint) ([]models.Game, error) {
	var games []models.Game
	err := r.filtered(ctx, GameFilter{TeamID: &teamID}).Order("scheduled_at, id").Find(&games).Error
	if err != nil {
		return nil, translate(err, "game", 0)
	}
	return games, nil
}

func (r *gameRepository) Update(ctx context.Context, game *models.Game) error {
	if err := game.Validate(); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(game).Select("*").Omit(clause.Associations, "created_at").Updates(game)
	if res.Error != nil {
		return translate(res.Error, "game", game.ID)
	}
	if res.RowsAffected == 0 {
		return common.NotFound("game", game.ID)
	}
	return nil
}

// Delete removes the game along with every performance recorded for it.
func (r *gameRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Game{}, "game", id)
}
