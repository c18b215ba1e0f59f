package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/mockify/internal/config"
	"github.com/mcoot/mockify/internal/dependencies/clock"
	"github.com/mcoot/mockify/internal/llm"
	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/services/analysis"
	"github.com/mcoot/mockify/internal/services/interviewer"
	"github.com/mcoot/mockify/internal/services/resume"
	"github.com/mcoot/mockify/internal/storage"
	filestorage "github.com/mcoot/mockify/internal/storage/file"
	"github.com/mcoot/mockify/internal/storage/memory"
	redisstorage "github.com/mcoot/mockify/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeFile   = "file"
)

// App contains all wired backend components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock      clock.Clock
	Generators map[model.AIMode]llm.Generator

	// Services
	Interviewer *interviewer.Service
	Analysis    *analysis.Service
	Resume      *resume.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "file")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// StatsFile is the JSON document path (required if StorageType is "file")
	StatsFile string
	// AIMode picks the generator behind /interview/ask and reports. Defaults to local.
	AIMode model.AIMode
	Ollama llm.OllamaConfig
	Gemini llm.GeminiConfig
}

// ConfigFromServer maps server configuration onto factory configuration
func ConfigFromServer(cfg config.Server, logger *slog.Logger) Config {
	fc := Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		StatsFile:   cfg.StatsFile,
		AIMode:      cfg.AIMode,
		Ollama: llm.OllamaConfig{
			URL:   cfg.OllamaURL,
			Model: cfg.OllamaModel,
		},
		Gemini: llm.GeminiConfig{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		},
	}
	if cfg.StorageType == StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := NewStorage(cfg)
	if err != nil {
		return nil, err
	}

	mode := cfg.AIMode
	if mode == "" {
		mode = model.AIModeLocal
	}
	if _, err := model.ParseAIMode(string(mode)); err != nil {
		return nil, err
	}

	generators := map[model.AIMode]llm.Generator{
		model.AIModeLocal: llm.NewOllama(cfg.Ollama),
		model.AIModeCloud: llm.NewGemini(cfg.Gemini),
	}

	return newWithDependencies(store, clock.New(), generators, mode, logger), nil
}

// NewStorage creates the storage backend selected by cfg.StorageType
func NewStorage(cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	case StorageTypeFile:
		if cfg.StatsFile == "" {
			return nil, errors.New("StatsFile required when StorageType is file")
		}
		return filestorage.New(cfg.StatsFile)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'file'", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, generators map[model.AIMode]llm.Generator, mode model.AIMode, logger *slog.Logger) *App {
	return &App{
		Storage:     store,
		Clock:       clk,
		Generators:  generators,
		Interviewer: interviewer.New(generators, mode, logger),
		Analysis:    analysis.New(store, generators[mode], clk, logger),
		Resume:      resume.New(store, generators[mode], clk, logger),
	}
}

// Close releases storage connections
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
