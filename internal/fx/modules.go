package fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/hooptrack/config"
	"github.com/DhavalSuthar-24/hooptrack/internal/logger"
	"github.com/DhavalSuthar-24/hooptrack/internal/query"
	"github.com/DhavalSuthar-24/hooptrack/internal/store"
	"github.com/DhavalSuthar-24/hooptrack/pkg/validator"
	"github.com/DhavalSuthar-24/hooptrack/routes"
)

// ProvideDB connects and brings the schema up to date.
func ProvideDB(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := config.ConnectDB(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(db); err != nil {
		log.Error().Err(err).Msg("auto migrate failed")
		return nil, err
	}
	log.Info().Msg("auto migrate successful")
	return db, nil
}

func applyLogLevel(cfg *config.Config) {
	logger.SetGlobalLevel(cfg.App.LogLevel)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.LoadConfig),
	fx.Invoke(applyLogLevel),
	fx.Invoke(validator.Register),
	// storage
	fx.Provide(ProvideDB),
	fx.Provide(store.NewRepositories),
	// svc
	fx.Provide(query.FromRepositories),
	// http
	fx.Provide(routes.NewControllers),
	fx.Provide(routes.SetupRoutes),
)
