package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultAPIKey is the public key of the demo workspace
	DefaultAPIKey     = "6xTcUFtlYAlCdh11zrKB"
	defaultListenAddr = "127.0.0.1:8080"
	configDirName     = ".comment-filter"
)

// Config holds the demo configuration
type Config struct {
	APIKey       string       `yaml:"api_key"`
	Organization Organization `yaml:"organization"`
	Document     Document     `yaml:"document"`
	DatabasePath string       `yaml:"database_path"`
	ListenAddr   string       `yaml:"listen_addr"`
	MetricsAddr  string       `yaml:"metrics_addr,omitempty"` // empty disables /metrics
	LogFile      string       `yaml:"log_file,omitempty"`     // diagnostics while the terminal UI runs
}

// DefaultConfigDir returns ~/.comment-filter
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// DefaultConfigPath returns the config file used when --config is not given
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultConfig returns the built-in demo configuration
func DefaultConfig() *Config {
	cfg := &Config{
		APIKey:       DefaultAPIKey,
		Organization: Organization{ID: "org-1", Name: "Acme Corporation"},
		Document:     Document{ID: "doc-filter-test", Name: "Filter Test Doc"},
		ListenAddr:   defaultListenAddr,
	}
	if dir, err := DefaultConfigDir(); err == nil {
		cfg.DatabasePath = filepath.Join(dir, "comments.db")
	} else {
		cfg.DatabasePath = "comments.db"
	}
	return cfg
}

// LoadConfig reads path over the defaults, then applies .env and environment
// overrides. A missing file at path is only an error when required is set.
func LoadConfig(path string, required bool) (*Config, error) {
	cfg := DefaultConfig()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		LogWarn("Failed to load .env: %v", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, &ConfigError{Path: path, Err: fmt.Errorf("failed to unmarshal config: %w", err)}
			}
			dropDefaultNames(cfg, data)
			LogDebug("loaded config from %s", path)
		case os.IsNotExist(err) && !required:
			LogDebug("no config at %s, using defaults", path)
		default:
			return nil, &ConfigError{Path: path, Err: err}
		}
	}

	cfg.applyEnv()
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// dropDefaultNames clears the default organization and document names when
// the file sets a new id without a name, so validate falls back to the id.
func dropDefaultNames(cfg *Config, data []byte) {
	var file struct {
		Organization Organization `yaml:"organization"`
		Document     Document     `yaml:"document"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return
	}
	if file.Organization.ID != "" && file.Organization.Name == "" {
		cfg.Organization.Name = ""
	}
	if file.Document.ID != "" && file.Document.Name == "" {
		cfg.Document.Name = ""
	}
}

func (c *Config) applyEnv() {
	c.APIKey = getEnv("COMMENT_FILTER_API_KEY", c.APIKey)
	c.DatabasePath = getEnv("COMMENT_FILTER_DB", c.DatabasePath)
	c.ListenAddr = getEnv("COMMENT_FILTER_ADDR", c.ListenAddr)
	c.MetricsAddr = getEnv("COMMENT_FILTER_METRICS_ADDR", c.MetricsAddr)
	c.LogFile = getEnv("COMMENT_FILTER_LOG_FILE", c.LogFile)
}

func (c *Config) validate(path string) error {
	switch {
	case c.APIKey == "":
		return &ConfigError{Path: path, Field: "api_key", Err: errors.New("must not be empty")}
	case c.Organization.ID == "":
		return &ConfigError{Path: path, Field: "organization.id", Err: errors.New("must not be empty")}
	case c.Document.ID == "":
		return &ConfigError{Path: path, Field: "document.id", Err: errors.New("must not be empty")}
	case c.DatabasePath == "":
		return &ConfigError{Path: path, Field: "database_path", Err: errors.New("must not be empty")}
	}
	if c.Document.Name == "" {
		c.Document.Name = c.Document.ID
	}
	if c.Organization.Name == "" {
		c.Organization.Name = c.Organization.ID
	}
	return nil
}

// Save writes the configuration as YAML, creating parent directories
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return &ConfigError{Path: path, Err: fmt.Errorf("failed to marshal config: %w", err)}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
