package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ExpandsEnvAndAppliesDefaults(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "s3cret")
	t.Setenv("TEST_JWT_SECRET", "jwt-secret")

	path := writeConfig(t, `
[database]
host = "localhost"
user = "booking"
password = "${TEST_DB_PASSWORD}"
dbname = "booking"

[auth]
jwt_secret = "${TEST_JWT_SECRET}"

[app]
public_holidays = ["2026-11-03", "2026-11-23"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "jwt-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "Asia/Tokyo", cfg.App.Timezone)
	assert.Equal(t, 3, cfg.App.TxMaxRetries)
	assert.Equal(t, []string{"2026-11-03", "2026-11-23"}, cfg.App.PublicHolidays)
	assert.False(t, cfg.Redis.Enabled())
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing jwt secret",
			content: "[database]\nhost = \"localhost\"\ndbname = \"booking\"\n",
		},
		{
			name:    "bad timezone",
			content: "[database]\nhost = \"localhost\"\ndbname = \"booking\"\n[auth]\njwt_secret = \"x\"\n[app]\ntimezone = \"Mars/Olympus\"\n",
		},
		{
			name:    "bad holiday",
			content: "[database]\nhost = \"localhost\"\ndbname = \"booking\"\n[auth]\njwt_secret = \"x\"\n[app]\npublic_holidays = [\"2026-13-01\"]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
