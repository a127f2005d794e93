package store

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
)

type TeamFilter struct {
	// ID restricts the listing to a single team, for callers scoped to
	// their own team.
	ID     *uint
	Search string
	City   string
}

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uint) (*models.Team, error)
	List(ctx context.Context, filter TeamFilter, page, limit int) ([]models.Team, int64, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id uint) error

	// Staff operations
	AddStaff(ctx context.Context, teamID, userID uint) error
	RemoveStaff(ctx context.Context, teamID, userID uint) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

// Create inserts the team row only; staff is managed through AddStaff.
func (r *teamRepository) Create(ctx context.Context, team *models.Team) error {
	if err := r.checkCoach(ctx, team.CoachID); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(team).Error
	return translate(err, "team", team.ID)
}

func (r *teamRepository) GetByID(ctx context.Context, id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).
		Preload("Coach").
		Preload("Staff", func(db *gorm.DB) *gorm.DB { return db.Order("users.id") }).
		First(&team, id).Error
	if err != nil {
		return nil, translate(err, "team", id)
	}
	return &team, nil
}

func (r *teamRepository) List(ctx context.Context, filter TeamFilter, page, limit int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Team{})
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if s := strings.ToLower(strings.TrimSpace(filter.Search)); s != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+s+"%")
	}
	if filter.City != "" {
		query = query.Where("LOWER(city) = ?", strings.ToLower(filter.City))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "team", 0)
	}
	err := query.Preload("Coach").Preload("Staff").
		Scopes(paginate(page, limit)).Order("name").Find(&teams).Error
	if err != nil {
		return nil, 0, translate(err, "team", 0)
	}
	return teams, total, nil
}

func (r *teamRepository) Update(ctx context.Context, team *models.Team) error {
	if err := r.checkCoach(ctx, team.CoachID); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(team).Select("*").Omit(clause.Associations, "created_at").Updates(team)
	if res.Error != nil {
		return translate(res.Error, "team", team.ID)
	}
	if res.RowsAffected == 0 {
		return common.NotFound("team", team.ID)
	}
	return nil
}

// Delete removes the team, its games and team performances. Its players
// become free agents.
func (r *teamRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Team{}, "team", id)
}

func (r *teamRepository) AddStaff(ctx context.Context, teamID, userID uint) error {
	team, user, err := r.teamAndUser(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if user.Role != models.RoleStatistician {
		return common.InvalidInput("user %d is a %s, only statisticians can join a team's staff", userID, user.Role)
	}
	for _, s := range team.Staff {
		if s.ID == userID {
			return common.Conflict("user %d is already on the staff of team %d", userID, teamID)
		}
	}
	err = r.db.WithContext(ctx).Model(team).Association("Staff").Append(user)
	return translate(err, "team staff", teamID)
}

func (r *teamRepository) RemoveStaff(ctx context.Context, teamID, userID uint) error {
	team, user, err := r.teamAndUser(ctx, teamID, userID)
	if err != nil {
		return err
	}
	onStaff := false
	for _, s := range team.Staff {
		if s.ID == userID {
			onStaff = true
			break
		}
	}
	if !onStaff {
		return common.NotFound("staff member", userID)
	}
	err = r.db.WithContext(ctx).Model(team).Association("Staff").Delete(user)
	return translate(err, "team staff", teamID)
}

func (r *teamRepository) teamAndUser(ctx context.Context, teamID, userID uint) (*models.Team, *models.User, error) {
	team, err := r.GetByID(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, nil, translate(err, "user", userID)
	}
	return team, &user, nil
}

// checkCoach verifies the referenced user exists and holds the coach role.
func (r *teamRepository) checkCoach(ctx context.Context, coachID *uint) error {
	if coachID == nil {
		return nil
	}
	var coach models.User
	if err := r.db.WithContext(ctx).First(&coach, *coachID).Error; err != nil {
		return translate(err, "coach", *coachID)
	}
	if coach.Role != models.RoleCoach {
		return common.InvalidInput("user %d is a %s, not a coach", *coachID, coach.Role)
	}
	return nil
}
