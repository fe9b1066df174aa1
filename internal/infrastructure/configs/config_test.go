package configs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := configs.Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "codernet", cfg.Mongo.Database)
	assert.Empty(t, cfg.RabbitMQ.URI)
	assert.Equal(t, "zap", cfg.Logger.Logger)
	assert.Equal(t, "json", cfg.Logger.Encoding)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  port: 9090
mongo:
  database: codernet_test
logger:
  logger: zerolog
`), 0o644))

	cfg, err := configs.Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "codernet_test", cfg.Mongo.Database)
	assert.Equal(t, "zerolog", cfg.Logger.Logger)

	// Untouched keys still fall back to defaults
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 20*time.Second, cfg.Mongo.ConnectionTimeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017")
	t.Setenv("RABBITMQ_URI", "amqp://guest:guest@mq:5672/")

	cfg, err := configs.Load("")
	require.NoError(t, err)

	assert.Equal(t, uint16(7070), cfg.HTTP.Port)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Mongo.URI)
	assert.Equal(t, "amqp://guest:guest@mq:5672/", cfg.RabbitMQ.URI)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := configs.Load("/nonexistent/config.yml")
	assert.Error(t, err)
}
