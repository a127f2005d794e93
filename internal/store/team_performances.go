package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
)

type TeamPerformanceFilter struct {
	TeamID *uint
	GameID *uint
}

// TeamPerformanceRepository defines the interface for team box score operations
type TeamPerformanceRepository interface {
	Create(ctx context.Context, tp *models.TeamPerformance) error
	// GetByID loads the row with its team, its game's teams and their staff.
	GetByID(ctx context.Context, id uint) (*models.TeamPerformance, error)
	List(ctx context.Context, filter TeamPerformanceFilter, page, limit int) ([]models.TeamPerformance, int64, error)
	ListByTeam(ctx context.Context, teamID uint) ([]models.TeamPerformance, error)
	Update(ctx context.Context, tp *models.TeamPerformance) error
	Delete(ctx context.Context, id uint) error
}

type teamPerformanceRepository struct {
	db *gorm.DB
}

// NewTeamPerformanceRepository creates a new instance of TeamPerformanceRepository
func NewTeamPerformanceRepository(db *gorm.DB) TeamPerformanceRepository {
	return &teamPerformanceRepository{db: db}
}

func (r *teamPerformanceRepository) Create(ctx context.Context, tp *models.TeamPerformance) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(tp).Error
	return translate(err, "team performance", tp.ID)
}

func (r *teamPerformanceRepository) GetByID(ctx context.Context, id uint) (*models.TeamPerformance, error) {
	var tp models.TeamPerformance
	err := r.db.WithContext(ctx).
		Preload("Team.Staff").
		Preload("Game.HomeTeam.Staff").
		Preload("Game.AwayTeam.Staff").
		First(&tp, id).Error
	if err != nil {
		return nil, translate(err, "team performance", id)
	}
	return &tp, nil
}

func (r *teamPerformanceRepository) List(ctx context.Context, filter TeamPerformanceFilter, page, limit int) ([]models.TeamPerformance, int64, error) {
	var tps []models.TeamPerformance
	var total int64

	query := r.db.WithContext(ctx).Model(&models.TeamPerformance{})
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.GameID != nil {
		query = query.Where("game_id = ?", *filter.GameID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "team performance", 0)
	}
	err := query.Scopes(paginate(page, limit)).Order("id").Find(&tps).Error
	if err != nil {
		return nil, 0, translate(err, "team performance", 0)
	}
	return tps, total, nil
}

func (r *teamPerformanceRepository) ListByTeam(ctx context.Context, teamID uint) ([]models.TeamPerformance, error) {
	var tps []models.TeamPerformance
	err := r.db.WithContext(ctx).
		Joins("JOIN games ON games.id = team_performances.game_id").
		Where("team_performances.team_id = ?", teamID).
		Order("games.scheduled_at, team_performances.id").
		Find(&tps).Error
	if err != nil {
		return nil, translate(err, "team performance", 0)
	}
	return tps, nil
}

func (r *teamPerformanceRepository) Update(ctx context.Context, tp *models.TeamPerformance) error {
	res := r.db.WithContext(ctx).Model(tp).Select("*").Omit(clause.Associations, "created_at").Updates(tp)
	if res.Error != nil {
		return translate(res.Error, "team performance", tp.ID)
	}
	if res.RowsAffected == 0 {
		return common.NotFound("team performance", tp.ID)
	}
	return nil
}

func (r *teamPerformanceRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.TeamPerformance{}, "team performance", id)
}
