// Package store holds the gorm repositories. Repository errors are
// translated to the kinds in internal/common.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/DhavalSuthar-24/hooptrack/internal/common"
	"github.com/DhavalSuthar-24/hooptrack/internal/models"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Migrate creates or updates the schema. Teams must precede players so the
// roster foreign key is registered before the players table is created.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Player{},
		&models.Game{},
		&models.Performance{},
		&models.TeamPerformance{},
	)
}

// Repositories bundles every repository over one connection.
type Repositories struct {
	Users            UserRepository
	Teams            TeamRepository
	Players          PlayerRepository
	Games            GameRepository
	Performances     PerformanceRepository
	TeamPerformances TeamPerformanceRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:            NewUserRepository(db),
		Teams:            NewTeamRepository(db),
		Players:          NewPlayerRepository(db),
		Games:            NewGameRepository(db),
		Performances:     NewPerformanceRepository(db),
		TeamPerformances: NewTeamPerformanceRepository(db),
	}
}

// paginate applies page/limit, clamping bad values to the defaults.
func paginate(page, limit int) func(*gorm.DB) *gorm.DB {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}

// translate maps driver and gorm errors onto the common error kinds.
func translate(err error, resource string, id uint) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return common.NotFound(resource, id)
	case isUniqueViolation(err):
		return common.Conflict("%s already exists", resource)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: %s references a missing record", common.ErrNotFound, resource)
	}
	return fmt.Errorf("%s: %w", resource, err)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
	}
	return false
}

// deleteByID deletes one row and reports NotFound when nothing matched.
func deleteByID(ctx context.Context, db *gorm.DB, model interface{}, resource string, id uint) error {
	res := db.WithContext(ctx).Delete(model, id)
	if res.Error != nil {
		return translate(res.Error, resource, id)
	}
	if res.RowsAffected == 0 {
		return common.NotFound(resource, id)
	}
	return nil
}
