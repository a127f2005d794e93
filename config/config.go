package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultJWTSecret = "your-very-strong-access-secret"
)

type Config struct {
	App struct {
		Env         string `env:"APP_ENV"      envDefault:"development"`
		Port        string `env:"PORT"         envDefault:"8088"`
		FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
		LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`
	}
	DB struct {
		Driver     string `env:"DB_DRIVER"      envDefault:"postgres"`
		Host       string `env:"DB_HOST"        envDefault:"localhost"`
		Port       string `env:"DB_PORT"        envDefault:"5432"`
		User       string `env:"DB_USER"        envDefault:"postgres"`
		Password   string `env:"DB_PASSWORD"    envDefault:"password"`
		Name       string `env:"DB_NAME"        envDefault:"hooptrack"`
		SSLMode    string `env:"DB_SSLMODE"     envDefault:"disable"`
		SQLitePath string `env:"DB_SQLITE_PATH" envDefault:"hooptrack.db"`
	}
	JWT struct {
		AccessTokenSecret        string `env:"JWT_ACCESS_TOKEN_SECRET"         envDefault:"your-very-strong-access-secret"`
		AccessTokenExpiryMinutes int    `env:"JWT_ACCESS_TOKEN_EXPIRY_MINUTES" envDefault:"60"`
	}
	Security struct {
		BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
	}
}

func (c *Config) IsDevelopment() bool { return c.App.Env == "development" }

// AccessTokenTTL is the lifetime of issued access tokens.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.JWT.AccessTokenExpiryMinutes) * time.Minute
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig(log zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, relying on system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.JWT.AccessTokenSecret == defaultJWTSecret {
		log.Warn().Msg("using default JWT secret; set JWT_ACCESS_TOKEN_SECRET for production")
	}
	if cfg.DB.Driver == DriverPostgres && cfg.DB.Password == "password" && cfg.App.Env == "production" {
		log.Warn().Msg("using default DB password in production; set DB_PASSWORD")
	}

	log.Info().
		Str("env", cfg.App.Env).
		Str("port", cfg.App.Port).
		Str("db_driver", cfg.DB.Driver).
		Str("log_level", cfg.App.LogLevel).
		Msg("configuration loaded")
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER: unsupported driver %q", c.DB.Driver)
	}
	if c.JWT.AccessTokenExpiryMinutes <= 0 {
		return fmt.Errorf("JWT_ACCESS_TOKEN_EXPIRY_MINUTES must be positive, got %d", c.JWT.AccessTokenExpiryMinutes)
	}
	if c.Security.BcryptCost < 4 || c.Security.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.Security.BcryptCost)
	}
	if _, err := zerolog.ParseLevel(c.App.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// Dialector returns the gorm dialector for the configured driver.
func (c *Config) Dialector() gorm.Dialector {
	if c.DB.Driver == DriverSQLite {
		return sqlite.New(sqlite.Config{
			DSN:        c.DB.SQLitePath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
			DriverName: "sqlite",
		})
	}
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DB.Host,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.Port,
		c.DB.SSLMode,
	)
	return postgres.Open(dsn)
}

// ConnectDB opens the configured database. Constraint errors are translated
// to gorm's ErrDuplicatedKey and ErrForeignKeyViolated.
func ConnectDB(cfg *Config, log zerolog.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{TranslateError: true}
	if cfg.IsDevelopment() {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(cfg.Dialector(), gormConfig)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.DB.Driver).Msg("failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.DB.Driver == DriverSQLite {
		// Pragmas are per connection; a single writer keeps them applied.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	log.Info().Str("driver", cfg.DB.Driver).Msg("successfully connected to database")
	return db, nil
}
