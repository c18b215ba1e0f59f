package factory

import (
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/mockify/internal/config"
	"github.com/mcoot/mockify/internal/model"
	filestorage "github.com/mcoot/mockify/internal/storage/file"
	"github.com/mcoot/mockify/internal/storage/memory"
	redisstorage "github.com/mcoot/mockify/internal/storage/redis"
)

func TestNewDefaultsToMemory(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)

	assert.IsType(t, &memory.Storage{}, app.Storage)
	assert.Equal(t, model.AIModeLocal, app.Interviewer.DefaultMode())
	assert.Len(t, app.Generators, 2)
	assert.NoError(t, app.Close())
}

func TestNewFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")

	app, err := New(Config{StorageType: StorageTypeFile, StatsFile: path})
	require.NoError(t, err)
	assert.IsType(t, &filestorage.Storage{}, app.Storage)
}

func TestNewRedisStorage(t *testing.T) {
	mini := miniredis.RunT(t)
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mini.Addr()

	app, err := New(Config{StorageType: StorageTypeRedis, RedisConfig: &redisCfg})
	require.NoError(t, err)
	assert.IsType(t, &redisstorage.Storage{}, app.Storage)
	assert.NoError(t, app.Close())
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown storage", Config{StorageType: "sqlite"}},
		{"redis without config", Config{StorageType: StorageTypeRedis}},
		{"file without path", Config{StorageType: StorageTypeFile}},
		{"bad mode", Config{AIMode: "hybrid"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestConfigFromServer(t *testing.T) {
	cfg := ConfigFromServer(config.Server{
		StorageType:  StorageTypeRedis,
		RedisURL:     "redis://cache:6379/0",
		AIMode:       model.AIModeCloud,
		OllamaURL:    "http://ollama:11434",
		GeminiAPIKey: "key",
	}, nil)

	require.NotNil(t, cfg.RedisConfig)
	assert.Equal(t, "redis://cache:6379/0", cfg.RedisConfig.URL)
	assert.Equal(t, model.AIModeCloud, cfg.AIMode)
	assert.Equal(t, "http://ollama:11434", cfg.Ollama.URL)
	assert.Equal(t, "key", cfg.Gemini.APIKey)
}
