package cli

import (
	"os"
	"path/filepath"

	"github.com/mcoot/mockify/internal/config"
	"github.com/mcoot/mockify/internal/model"
)

// Config holds CLI configuration
type Config struct {
	// ServerURL overrides the profile's API base URL
	ServerURL   string
	Profile     string
	AIMode      string
	StorageFile string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		StorageFile: getEnvOrDefault("MOCKIFY_STORAGE_FILE", defaultStorageFile()),
		Output:      "text",
		Verbose:     false,
	}
}

// Resolve turns flags plus environment into client configuration.
// Flags win over MOCKIFY_* variables, which win over the profile.
func (c *Config) Resolve() (config.Client, error) {
	var client config.Client
	var err error
	if c.Profile != "" {
		client, err = config.LoadClientProfile(c.Profile)
	} else {
		client, err = config.LoadClient()
	}
	if err != nil {
		return config.Client{}, err
	}

	if c.ServerURL != "" {
		client.APIBaseURL = c.ServerURL
	}
	if c.AIMode != "" {
		mode, err := model.ParseAIMode(c.AIMode)
		if err != nil {
			return config.Client{}, err
		}
		client.AIMode = mode
	}
	return client, client.Validate()
}

func defaultStorageFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mockify/storage.json"
	}
	return filepath.Join(home, ".mockify", "storage.json")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
