package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFileConfig_Defaults(t *testing.T) {
	cfg, err := LoadFileConfig("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.BackendURL != DefaultBackendURL {
		t.Errorf("Expected default backend URL %s, got %s", DefaultBackendURL, cfg.BackendURL)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("Expected default timeout 60s, got %s", cfg.Timeout)
	}
}

func TestLoadFileConfig_MissingFileIsFine(t *testing.T) {
	cfg, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if cfg.BackendURL != DefaultBackendURL {
		t.Errorf("Expected defaults, got backend URL %s", cfg.BackendURL)
	}
}

func TestLoadFileConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "backend_url: https://media.example.com\noutput_dir: /tmp/media\ntimeout: 30s\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.BackendURL != "https://media.example.com" {
		t.Errorf("Expected backend URL from file, got %s", cfg.BackendURL)
	}
	if cfg.OutputDir != "/tmp/media" {
		t.Errorf("Expected output dir from file, got %s", cfg.OutputDir)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Expected timeout 30s, got %s", cfg.Timeout)
	}
}

func TestLoadFileConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("backend_url: https://from-file.example.com\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("MEDIAGRAB_BACKEND_URL", "https://from-env.example.com")

	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.BackendURL != "https://from-env.example.com" {
		t.Errorf("Expected env override, got %s", cfg.BackendURL)
	}
}

func TestLoadFileConfig_InvalidBackendURL(t *testing.T) {
	t.Setenv("MEDIAGRAB_BACKEND_URL", "ftp://wrong")

	if _, err := LoadFileConfig(""); err == nil {
		t.Error("Expected validation error for non-http backend URL")
	}
}

func TestLoadFileConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("backend_url: [broken\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadFileConfig(path); err == nil {
		t.Error("Expected parse error for malformed YAML")
	}
}
