package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadGuardConfig_FromYAML(t *testing.T) {
	path := writeFile(t, "config.yml", `
policy:
  mode: explicit
  codes: [401, 429]
logger:
  level: debug
  format: json
client:
  base_url: https://api.example.com
  timeout: 5s
`)

	cfg, err := LoadGuardConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Policy.Mode != "explicit" {
		t.Errorf("expected explicit mode, got %s", cfg.Policy.Mode)
	}
	if len(cfg.Policy.Codes) != 2 || cfg.Policy.Codes[0] != 401 {
		t.Errorf("expected codes [401 429], got %v", cfg.Policy.Codes)
	}
	if cfg.Logger.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logger.Level)
	}
	if cfg.Client.BaseURL != "https://api.example.com" {
		t.Errorf("expected base url, got %s", cfg.Client.BaseURL)
	}
	if cfg.Client.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.Client.Timeout)
	}

	p, err := cfg.Policy.Build()
	if err != nil {
		t.Fatalf("unexpected error building policy: %v", err)
	}
	if p.RaisesAll() {
		t.Error("expected explicit policy")
	}
}

func TestLoadGuardConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadGuardConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Policy.Mode != "all" {
		t.Errorf("expected default mode all, got %s", cfg.Policy.Mode)
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Logger.Level)
	}
	if cfg.Client.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.Client.Timeout)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yml", `
policy:
  mode: all
`)
	t.Setenv("POLICY_MODE", "explicit")

	cfg, err := LoadGuardConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Policy.Mode != "explicit" {
		t.Errorf("expected env override to explicit, got %s", cfg.Policy.Mode)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	envPath := writeFile(t, ".env", "LOGGER_LEVEL=warn\n")

	cfg, err := LoadGuardConfig("", WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logger.Level != "warn" {
		t.Errorf("expected level warn from env file, got %s", cfg.Logger.Level)
	}
}

func TestLoad_IgnoresUnboundEnvVars(t *testing.T) {
	t.Setenv("CLIENT_HEADERS", "not-a-map")
	t.Setenv("POLICY_CODES", "401")

	cfg, err := LoadGuardConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Client.Headers) != 0 {
		t.Errorf("expected unbound env var ignored, got %v", cfg.Client.Headers)
	}
	if len(cfg.Policy.Codes) != 0 {
		t.Errorf("expected codes untouched by env, got %v", cfg.Policy.Codes)
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	if _, err := LoadGuardConfig("/does/not/exist.yml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadGuardConfig_InvalidPolicyRejected(t *testing.T) {
	path := writeFile(t, "config.yml", `
policy:
  mode: sometimes
`)

	if _, err := LoadGuardConfig(path); err == nil {
		t.Error("expected validation error for unknown mode")
	}
}
