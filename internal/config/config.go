// ABOUTME: Liftlog configuration: data directory and database path resolution.
// ABOUTME: JSON config file in XDG config dir, with env override for the db path.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Config stores liftlog configuration.
type Config struct {
	// DataDir is the root directory for data storage; liftlog.db lives here.
	// Supports ~ expansion. Defaults to ~/.local/share/liftlog.
	DataDir string `json:"data_dir,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DefaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// DBPath returns the database file path. The LIFTLOG_DB environment variable
// overrides the configured location, which is how tests and dev setups point
// at a scratch database.
func (c *Config) DBPath() string {
	if env := os.Getenv("LIFTLOG_DB"); env != "" {
		return ExpandPath(env)
	}
	return filepath.Join(c.GetDataDir(), "liftlog.db")
}

// DefaultDataDir returns the default data directory following the XDG spec.
func DefaultDataDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, _ := os.UserHomeDir()
		dataDir = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataDir, "liftlog")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "liftlog", "config.json")
}

// Load reads config from disk. A missing file yields the zero config.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
