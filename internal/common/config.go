// Package common provides shared configuration and logging for the
// Xplainable MCP server.
package common

import (
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultHostname is the production Xplainable platform URL.
const DefaultHostname = "https://platform.xplainable.io"

// Config holds all configuration for the MCP server and CLI.
type Config struct {
	APIKey           string        `toml:"api_key"`
	Hostname         string        `toml:"hostname"`
	OrgID            string        `toml:"org_id"`
	TeamID           string        `toml:"team_id"`
	EnableWriteTools bool          `toml:"enable_write_tools"`
	RateLimitEnabled bool          `toml:"rate_limit_enabled"`
	Server           ServerConfig  `toml:"server"`
	Logging          LoggingConfig `toml:"logging"`
}

// ServerConfig holds MCP transport settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Hostname:         DefaultHostname,
		RateLimitEnabled: true,
		Server: ServerConfig{
			Name: "xplainable-mcp",
			Port: "8080",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/xplainable-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// LoadConfig loads configuration from optional TOML files with environment
// overrides. Later files override earlier ones; environment variables win
// over everything.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if key := os.Getenv("XPLAINABLE_API_KEY"); key != "" {
		config.APIKey = key
	}

	// XPLAINABLE_HOST is canonical; XPLAINABLE_HOSTNAME is accepted as an
	// alias for compatibility with older deployments.
	if host := os.Getenv("XPLAINABLE_HOST"); host != "" {
		config.Hostname = host
	} else if host := os.Getenv("XPLAINABLE_HOSTNAME"); host != "" {
		config.Hostname = host
	}

	if org := os.Getenv("XPLAINABLE_ORG_ID"); org != "" {
		config.OrgID = org
	}
	if team := os.Getenv("XPLAINABLE_TEAM_ID"); team != "" {
		config.TeamID = team
	}
	if v := os.Getenv("ENABLE_WRITE_TOOLS"); v != "" {
		config.EnableWriteTools = parseBool(v)
	}
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		config.RateLimitEnabled = parseBool(v)
	}
	if port := os.Getenv("XPLAINABLE_MCP_PORT"); port != "" {
		config.Server.Port = port
	}
	if level := os.Getenv("XPLAINABLE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// Validate checks that required settings are present. The API key is the only
// hard requirement; everything else has a workable default.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("XPLAINABLE_API_KEY is not set")
	}
	if c.APIKey == "your-api-key-here" {
		return fmt.Errorf("XPLAINABLE_API_KEY has not been configured (still using example value)")
	}
	return nil
}

func parseBool(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}
