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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.local"
port = 5433
user = "salon"
password = "secret"
dbname = "salon"

[metrics]
enabled = true
service_name = "salon-service"

[rotation]
requeue_on_manual_assign = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "host=db.local port=5433 user=salon password=secret dbname=salon sslmode=disable", cfg.Database.DSN())
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path) // дефолт
	assert.True(t, cfg.Rotation.RequeueOnManualAssign)

	// Дефолты сервера сохраняются для неуказанных полей
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10, cfg.Reminder.Timeout)
}

func TestLoad_MissingDBName(t *testing.T) {
	path := writeConfig(t, `
[database]
user = "salon"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
