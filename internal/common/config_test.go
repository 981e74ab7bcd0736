package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Hostname != DefaultHostname {
		t.Errorf("expected default hostname, got %s", cfg.Hostname)
	}
	if cfg.EnableWriteTools {
		t.Error("write tools should default to disabled")
	}
	if !cfg.RateLimitEnabled {
		t.Error("rate limiting should default to enabled")
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
}

func TestLoadConfigFromTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
api_key = "file-key"
hostname = "https://staging.xplainable.io"
enable_write_tools = true

[server]
port = "9090"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.APIKey != "file-key" {
		t.Errorf("expected file-key, got %s", cfg.APIKey)
	}
	if cfg.Hostname != "https://staging.xplainable.io" {
		t.Errorf("unexpected hostname %s", cfg.Hostname)
	}
	if !cfg.EnableWriteTools {
		t.Error("expected write tools enabled")
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadConfigSkipsMissingFiles(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Hostname != DefaultHostname {
		t.Errorf("expected defaults for missing file, got %s", cfg.Hostname)
	}
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`api_key = "file-key"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("XPLAINABLE_API_KEY", "env-key")
	t.Setenv("XPLAINABLE_HOST", "https://env.xplainable.io")
	t.Setenv("ENABLE_WRITE_TOOLS", "true")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("XPLAINABLE_MCP_PORT", "7070")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("env override lost, got %s", cfg.APIKey)
	}
	if cfg.Hostname != "https://env.xplainable.io" {
		t.Errorf("env hostname lost, got %s", cfg.Hostname)
	}
	if !cfg.EnableWriteTools {
		t.Error("expected write tools enabled via env")
	}
	if cfg.RateLimitEnabled {
		t.Error("expected rate limiting disabled via env")
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("env port lost, got %s", cfg.Server.Port)
	}
}

func TestHostnameAliasAccepted(t *testing.T) {
	t.Setenv("XPLAINABLE_HOST", "")
	t.Setenv("XPLAINABLE_HOSTNAME", "https://alias.xplainable.io")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Hostname != "https://alias.xplainable.io" {
		t.Errorf("alias ignored, got %s", cfg.Hostname)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		apiKey  string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"example value", "your-api-key-here", true},
		{"real key", "xp-abc123", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			cfg.APIKey = tc.apiKey
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	if !parseBool("true") || !parseBool("TRUE") || !parseBool(" true ") {
		t.Error("expected true variants to parse true")
	}
	if parseBool("false") || parseBool("1") || parseBool("yes") || parseBool("") {
		t.Error("expected non-true values to parse false")
	}
}
