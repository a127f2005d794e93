package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
)

type PerformanceFilter struct {
	PlayerID *uint
	GameID   *uint
	// TeamID matches performances in games the team played.
	TeamID *uint
}

// PerformanceRepository defines the interface for player box score operations
type PerformanceRepository interface {
	Create(ctx context.Context, perf *models.Performance) error
	// GetByID loads the row with its player and its game's teams and staff.
	GetByID(ctx context.Context, id uint) (*models.Performance, error)
	List(ctx context.Context, filter PerformanceFilter, page, limit int) ([]models.Performance, int64, error)
	// ListByPlayer returns every row for the player in game order.
	ListByPlayer(ctx context.Context, playerID uint) ([]models.Performance, error)
	Update(ctx context.Context, perf *models.Performance) error
	Delete(ctx context.Context, id uint) error
}

type performanceRepository struct {
	db *gorm.DB
}

// NewPerformanceRepository creates a new instance of PerformanceRepository
func NewPerformanceRepository(db *gorm.DB) PerformanceRepository {
	return &performanceRepository{db: db}
}

func (r *performanceRepository) Create(ctx context.Context, perf *models.Performance) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(perf).Error
	return translate(err, "performance", perf.ID)
}

func (r *performanceRepository) GetByID(ctx context.Context, id uint) (*models.Performance, error) {
	var perf models.Performance
	err := r.db.WithContext(ctx).
		Preload("Player").
		Preload("Game.HomeTeam.Staff").
		Preload("Game.AwayTeam.Staff").
		First(&perf, id).Error
	if err != nil {
		return nil, translate(err, "performance", id)
	}
	return &perf, nil
}

func (r *performanceRepository) List(ctx context.Context, filter PerformanceFilter, page, limit int) ([]models.Performance, int64, error) {
	var perfs []models.Performance
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Performance{})
	if filter.PlayerID != nil {
		query = query.Where("performances.player_id = ?", *filter.PlayerID)
	}
	if filter.GameID != nil {
		query = query.Where("performances.game_id = ?", *filter.GameID)
	}
	if filter.TeamID != nil {
		query = query.Where("performances.game_id IN (?)",
			r.db.Model(&models.Game{}).Select("id").
				Where("home_team_id = ? OR away_team_id = ?", *filter.TeamID, *filter.TeamID))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "performance", 0)
	}
	err := query.Scopes(paginate(page, limit)).Order("performances.id").Find(&perfs).Error
	if err != nil {
		return nil, 0, translate(err, "performance", 0)
	}
	return perfs, total, nil
}

func (r *performanceRepository) ListByPlayer(ctx context.Context, playerID uint) ([]models.Performance, error) {
	var perfs []models.Performance
	err := r.db.WithContext(ctx).
		Joins("JOIN games ON games.id = performances.game_id").
		Where("performances.player_id = ?", playerID).
		Order("games.scheduled_at, performances.id").
		Find(&perfs).Error
	if err != nil {
		return nil, translate(err, "performance", 0)
	}
	return perfs, nil
}

func (r *performanceRepository) Update(ctx context.Context, perf *models.Performance) error {
	res := r.db.WithContext(ctx).Model(perf).Select("*").Omit(clause.Associations, "created_at").Updates(perf)
	if res.Error != nil {
		return translate(res.Error, "performance", perf.ID)
	}
	if res.RowsAffected == 0 {
		return common.NotFound("performance", perf.ID)
	}
	return nil
}

func (r *performanceRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Performance{}, "performance", id)
}
