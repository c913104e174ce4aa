package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Zachkp/journey-portfolio/internal/particles"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PORT", "GIN_MODE", "RELAY", "THEME", "SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS",
		"TO_EMAIL", "EMAILJS_SERVICE_ID", "EMAILJS_TEMPLATE_ID", "EMAILJS_PUBLIC_KEY",
		"EMAILJS_PRIVATE_KEY", "RECAPTCHA_SITE_KEY", "RECAPTCHA_SECRET",
		"FIELD_COUNT", "FIELD_ROTATION", "FIELD_MAX_DISTANCE",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// TestLoadDefaults verifies loading with no env vars and no .env file
func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Relay != "emailjs" {
		t.Errorf("Expected emailjs relay, got %s", cfg.Relay)
	}
	if cfg.Theme != particles.Dark {
		t.Errorf("Expected dark theme, got %v", cfg.Theme)
	}
	if cfg.SMTP.Host != "smtp.gmail.com" || cfg.SMTP.Port != "587" {
		t.Errorf("Unexpected SMTP defaults: %+v", cfg.SMTP)
	}
	if cfg.Field != particles.DefaultConfig() {
		t.Errorf("Expected default field config, got %+v", cfg.Field)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nTHEME=light\nRELAY=SMTP\nFIELD_COUNT=42\nFIELD_ROTATION=0.01\nRECAPTCHA_SECRET=abc\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)

	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if cfg.Theme != particles.Light {
		t.Errorf("Expected light theme, got %v", cfg.Theme)
	}
	if cfg.Relay != "smtp" {
		t.Errorf("Expected relay smtp, got %s", cfg.Relay)
	}
	if cfg.Field.Count != 42 {
		t.Errorf("Expected 42 particles, got %d", cfg.Field.Count)
	}
	if cfg.Field.Rotation != 0.01 {
		t.Errorf("Expected rotation 0.01, got %f", cfg.Field.Rotation)
	}
	if cfg.Recaptcha.Secret != "abc" {
		t.Errorf("Expected recaptcha secret from file, got %q", cfg.Recaptcha.Secret)
	}
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT=9090\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "7070")

	if cfg := Load(path); cfg.Port != "7070" {
		t.Errorf("Expected environment port 7070, got %s", cfg.Port)
	}
}

func TestBadNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("FIELD_COUNT", "lots")
	t.Setenv("FIELD_MAX_DISTANCE", "far")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	if cfg.Field.Count != particles.DefaultCount {
		t.Errorf("Expected default count, got %d", cfg.Field.Count)
	}
	if cfg.Field.MaxDistance != particles.DefaultMaxDistance {
		t.Errorf("Expected default max distance, got %f", cfg.Field.MaxDistance)
	}
}

func TestZeroRotationFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("FIELD_ROTATION", "0")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	if cfg.Field.Rotation != 0 {
		t.Errorf("Expected FIELD_ROTATION=0 to stop rotation, got %f", cfg.Field.Rotation)
	}
}
