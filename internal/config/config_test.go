package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_CONN", "JWT_SECRET", "BCRYPT_COST", "CORS_ORIGIN", "MAINTENANCE_SCHEDULE"} {
		t.Setenv(key, "")
	}
	// t.Setenv cannot unset; override the ones that must be non-empty.
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_CONN", "portfolio.db")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("BCRYPT_COST", "10")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "portfolio.db", cfg.DBConn)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.Empty(t, cfg.MaintenanceSchedule)
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_CONN", "host=localhost dbname=portfolio")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("MAINTENANCE_SCHEDULE", "@daily")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "s3cr3t", cfg.JWTSecret)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.Equal(t, "@daily", cfg.MaintenanceSchedule)
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"empty secret", map[string]string{"JWT_SECRET": ""}, "JWT_SECRET is required"},
		{"empty conn", map[string]string{"DB_CONN": ""}, "DB_CONN is required"},
		{"unknown driver", map[string]string{"DB_DRIVER": "mysql"}, "DB_DRIVER must be"},
		{"bad cost", map[string]string{"BCRYPT_COST": "abc"}, "BCRYPT_COST must be an integer"},
		{"cost out of range", map[string]string{"BCRYPT_COST": "99"}, "BCRYPT_COST must be between"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_DRIVER", "sqlite")
			t.Setenv("DB_CONN", "portfolio.db")
			t.Setenv("JWT_SECRET", "secret")
			t.Setenv("BCRYPT_COST", "10")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := NewConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
