package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))
}

func TestBackendConfigured(t *testing.T) {
	tests := []struct {
		name     string
		dbHost   string
		dbPass   string
		secret   string
		expected bool
	}{
		{"all present", "db.example.com", "pw", "secret", true},
		{"missing host", "", "pw", "secret", false},
		{"missing password", "db.example.com", "", "secret", false},
		{"missing jwt secret", "db.example.com", "pw", "", false},
		{"all empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Database.Host = tt.dbHost
			cfg.Database.Password = tt.dbPass
			cfg.JWT.Secret = tt.secret

			assert.Equal(t, tt.expected, cfg.BackendConfigured())
		})
	}
}

func TestBackendMode(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, "mock", cfg.BackendMode())

	cfg.Database.Host = "localhost"
	cfg.Database.Password = "pw"
	cfg.JWT.Secret = "secret"
	assert.Equal(t, "real", cfg.BackendMode())
}

func TestLoadConfigDefaults(t *testing.T) {
	// No config file in this directory; the loader must fall back to
	// defaults instead of failing, since mock mode needs zero configuration.
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "http://localhost:7860", cfg.AI.ServiceURL)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireTime)
	assert.False(t, cfg.BackendConfigured())
	assert.Equal(t, "mock", cfg.BackendMode())
}

func TestLoadConfigExpireHours(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "jwt:\n  expire_hours: 12\n")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.JWT.ExpireHours)
	assert.Equal(t, 12*time.Hour, cfg.JWT.ExpireTime)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("DATABASE_PASSWORD", "supersecret")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.BackendConfigured())
	assert.Equal(t, "real", cfg.BackendMode())
}

func TestLoadConfigShortSecretRejectedInRelease(t *testing.T) {
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("DATABASE_PASSWORD", "supersecret")
	t.Setenv("JWT_SECRET", "tooshort")
	t.Setenv("SERVER_MODE", "release")

	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
