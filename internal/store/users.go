package store

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
)

// UserFilter narrows user listings. Zero values match everything.
type UserFilter struct {
	Role   models.Role
	Search string
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, filter UserFilter, page, limit int) ([]models.User, int64, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if !user.Role.Valid() {
		return common.InvalidInput("user role is required")
	}
	return translate(r.db.WithContext(ctx).Create(user).Error, "user", user.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err, "user", id)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err, "user", 0)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, filter UserFilter, page, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.WithContext(ctx).Model(&models.User{})
	if filter.Role.Valid() {
		query = query.Where("role = ?", filter.Role)
	}
	if s := strings.ToLower(strings.TrimSpace(filter.Search)); s != "" {
		like := "%" + s + "%"
		query = query.Where("LOWER(username) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "user", 0)
	}
	if err := query.Scopes(paginate(page, limit)).Order("id").Find(&users).Error; err != nil {
		return nil, 0, translate(err, "user", 0)
	}
	return users, total, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if !user.Role.Valid() {
		return common.InvalidInput("user role is required")
	}
	res := r.db.WithContext(ctx).Model(user).Select("*").Omit(clause.Associations, "created_at").Updates(user)
	if res.Error != nil {
		return translate(res.Error, "user", user.ID)
	}
	if res.RowsAffected == 0 {
		return common.NotFound("user", user.ID)
	}
	return nil
}

// Delete removes the user. Their player profile and its performances go
// with them; coach, staff and creator references are cleared.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.User{}, "user", id)
}
