// Package config loads and persists the client configuration: backend base
// URL, API key, and UI preferences. Stored as JSON under ~/.loreguard, with
// environment variables (including a local .env) taking precedence.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config is the persistent application configuration.
type Config struct {
	// Backend connection
	API APIConfig `json:"api"`

	// UI preferences
	UI UIConfig `json:"ui"`

	// Local library database path (empty = default under ~/.loreguard)
	LibraryPath string `json:"library_path,omitempty"`
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string `json:"base_url"`
	APIKey  string `json:"api_key,omitempty"`
	// PollSeconds controls how often the dashboard refreshes job health.
	PollSeconds int `json:"poll_seconds"`
}

// UIConfig holds UI preferences.
type UIConfig struct {
	Theme       string `json:"theme"`
	PageSize    int    `json:"page_size"`
	ShowDeleted bool   `json:"show_deleted_sources"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:     "http://localhost:8000",
			PollSeconds: 30,
		},
		UI: UIConfig{
			Theme:       "dark",
			PageSize:    50,
			ShowDeleted: true,
		},
	}
}

// Dir returns the data directory, ~/.loreguard.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".loreguard")
}

// path returns the config file location.
func path() string {
	return filepath.Join(Dir(), "config.json")
}

// Load reads config from disk, or returns defaults. A .env in the working
// directory is applied first so LOREGUARD_* variables work in dev checkouts
// without touching the real config file. Env always wins over the file.
func Load() (*Config, error) {
	godotenv.Load() // best effort; missing .env is fine

	cfg := DefaultConfig()

	data, err := os.ReadFile(path())
	if err == nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			cfg = DefaultConfig()
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path(), data, 0600) // restrictive: holds the API key
}

// applyEnv overlays environment variables onto the loaded values.
func (c *Config) applyEnv() {
	if v := os.Getenv("LOREGUARD_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("LOREGUARD_API_KEY"); v != "" {
		c.API.APIKey = v
	}
}

// Library returns the sqlite path for the local artifact library.
func (c *Config) Library() string {
	if c.LibraryPath != "" {
		return c.LibraryPath
	}
	return filepath.Join(Dir(), "library.db")
}
