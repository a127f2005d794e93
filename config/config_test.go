package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRY_MINUTES", "30")

	cfg, err := LoadConfig(zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.App.Port != "8088" {
		t.Fatalf("port = %q", cfg.App.Port)
	}
	if cfg.DB.Driver != DriverSQLite {
		t.Fatalf("driver = %q", cfg.DB.Driver)
	}
	if got := cfg.AccessTokenTTL().Minutes(); got != 30 {
		t.Fatalf("ttl = %v minutes", got)
	}
	if cfg.Security.BcryptCost != 10 {
		t.Fatalf("bcrypt cost = %d", cfg.Security.BcryptCost)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"driver", "DB_DRIVER", "mysql"},
		{"expiry", "JWT_ACCESS_TOKEN_EXPIRY_MINUTES", "0"},
		{"expiry not a number", "JWT_ACCESS_TOKEN_EXPIRY_MINUTES", "soon"},
		{"bcrypt", "BCRYPT_COST", "99"},
		{"log level", "LOG_LEVEL", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadConfig(zerolog.Nop()); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
