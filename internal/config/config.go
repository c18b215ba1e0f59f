package config

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mcoot/mockify/internal/model"
)

// Client is the configuration every client component receives explicitly
type Client struct {
	APIBaseURL string
	AIMode     model.AIMode
	AppName    string
}

// DefaultProfile is used when MOCKIFY_PROFILE is unset
const DefaultProfile = "default"

const defaultAppName = "Mockify AI"

// profiles are the known environments a client can target
var profiles = map[string]Client{
	DefaultProfile: {
		APIBaseURL: "http://localhost:8080/api",
		AIMode:     model.AIModeCloud,
		AppName:    defaultAppName,
	},
	"local": {
		APIBaseURL: "http://127.0.0.1:8000",
		AIMode:     model.AIModeLocal,
		AppName:    defaultAppName,
	},
	"cloud": {
		APIBaseURL: "http://localhost:8080/api",
		AIMode:     model.AIModeCloud,
		AppName:    defaultAppName,
	},
}

// Profile returns the named client profile
func Profile(name string) (Client, error) {
	c, ok := profiles[name]
	if !ok {
		return Client{}, fmt.Errorf("unknown profile %q (known: %s)", name, strings.Join(ProfileNames(), ", "))
	}
	return c, nil
}

// ProfileNames lists the known profile names in sorted order
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadClient resolves client configuration from .env, MOCKIFY_PROFILE and per-field overrides
func LoadClient() (Client, error) {
	loadDotEnv()
	return clientFromEnv()
}

// LoadClientProfile is LoadClient with the profile chosen by the caller instead of MOCKIFY_PROFILE
func LoadClientProfile(name string) (Client, error) {
	loadDotEnv()
	return clientFromProfile(name)
}

func clientFromEnv() (Client, error) {
	return clientFromProfile(getEnvOrDefault("MOCKIFY_PROFILE", DefaultProfile))
}

func clientFromProfile(name string) (Client, error) {
	c, err := Profile(name)
	if err != nil {
		return Client{}, err
	}

	if v := os.Getenv("MOCKIFY_API_BASE_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("MOCKIFY_AI_MODE"); v != "" {
		mode, err := model.ParseAIMode(v)
		if err != nil {
			return Client{}, err
		}
		c.AIMode = mode
	}
	if v := os.Getenv("MOCKIFY_APP_NAME"); v != "" {
		c.AppName = v
	}

	return c, c.Validate()
}

// Validate checks the client configuration
func (c Client) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}
	if _, err := model.ParseAIMode(string(c.AIMode)); err != nil {
		return err
	}
	return nil
}

// Server holds backend process configuration
type Server struct {
	Port        int
	StorageType string
	RedisURL    string
	StatsFile   string
	LogLevel    string

	// AIMode picks the generator answering /interview endpoints
	AIMode model.AIMode

	OllamaURL    string
	OllamaModel  string
	GeminiAPIKey string
	GeminiModel  string

	// Web is the client configuration used by the server-rendered pages
	Web Client
}

// LoadServer resolves server configuration from .env and the environment
func LoadServer() (Server, error) {
	loadDotEnv()

	port := getEnvAsInt("PORT", 8080)
	mode, err := model.ParseAIMode(getEnvOrDefault("AI_MODE", string(model.AIModeLocal)))
	if err != nil {
		return Server{}, err
	}

	web, err := clientFromEnv()
	if err != nil {
		return Server{}, err
	}
	if os.Getenv("MOCKIFY_API_BASE_URL") == "" {
		// The pages talk to this process's own API unless told otherwise
		web.APIBaseURL = fmt.Sprintf("http://localhost:%d/api", port)
	}

	cfg := Server{
		Port:         port,
		StorageType:  getEnvOrDefault("STORAGE_TYPE", "memory"),
		RedisURL:     os.Getenv("REDIS_URL"),
		StatsFile:    getEnvOrDefault("STATS_FILE", "interview_stats.json"),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		AIMode:       mode,
		OllamaURL:    getEnvOrDefault("OLLAMA_URL", "http://127.0.0.1:11434"),
		OllamaModel:  getEnvOrDefault("OLLAMA_MODEL", "llama3"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		Web:          web,
	}

	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks the server configuration
func (s Server) Validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", s.Port)
	}
	switch s.StorageType {
	case "memory", "file":
	case "redis":
		if s.RedisURL == "" {
			return fmt.Errorf("REDIS_URL required when STORAGE_TYPE=redis")
		}
	default:
		return fmt.Errorf("invalid STORAGE_TYPE %q: must be memory, redis or file", s.StorageType)
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info
func (s Server) SlogLevel() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadDotEnv loads a .env file if present; a missing file is not an error
func loadDotEnv() {
	_ = godotenv.Load()
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid integer in environment, using default",
			slog.String("key", key),
			slog.Int("default", defaultVal),
		)
		return defaultVal
	}
	return value
}
