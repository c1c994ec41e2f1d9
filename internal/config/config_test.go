package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// setRequiredEnv fills in the keys validateConfig insists on.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("STORAGE_BUCKET", "test-bucket")
	t.Setenv("FIRESTORE_PROJECT_ID", "test-project")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Gemini.Model != "gemini-flash-latest" {
		t.Errorf("Model = %q, want gemini-flash-latest", cfg.Gemini.Model)
	}
	if cfg.Gemini.Timeout != 90*time.Second {
		t.Errorf("Gemini timeout = %v, want 90s", cfg.Gemini.Timeout)
	}
	if cfg.Storage.UploadTimeout != 60*time.Second {
		t.Errorf("Upload timeout = %v, want 60s", cfg.Storage.UploadTimeout)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9090"
  mode: production
gemini:
  model: gemini-pro
  timeout: 2m
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Mode != "production" {
		t.Errorf("Mode = %q, want production", cfg.Server.Mode)
	}
	if cfg.Gemini.Model != "gemini-pro" {
		t.Errorf("Model = %q, want gemini-pro", cfg.Gemini.Model)
	}
	if cfg.Gemini.Timeout != 2*time.Minute {
		t.Errorf("Gemini timeout = %v, want 2m", cfg.Gemini.Timeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("GEMINI_TIMEOUT", "45s")
	t.Setenv("LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("Port = %q, want env override 7070", cfg.Server.Port)
	}
	if cfg.Gemini.Timeout != 45*time.Second {
		t.Errorf("Gemini timeout = %v, want 45s", cfg.Gemini.Timeout)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadConfigMissingRequired(t *testing.T) {
	tests := []struct {
		name string
		omit string
		want string
	}{
		{"no gemini key", "GEMINI_API_KEY", "gemini API key"},
		{"no bucket", "STORAGE_BUCKET", "storage bucket"},
		{"no project", "FIRESTORE_PROJECT_ID", "firestore project ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.omit, "")

			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
			if err == nil {
				t.Fatal("LoadConfig succeeded, want validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GEMINI_TIMEOUT", "-5s")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadConfig succeeded with a negative timeout")
	}
}
