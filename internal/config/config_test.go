package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"YOUTUBE_API_KEY", "GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET",
		"GEMINI_API_KEY", "EMAIL_USERNAME", "EMAIL_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	writeConfig(t, `
youtube:
  api_key: file-key
  max_videos_per_channel: 200
analysis:
  period: last_90_days
export:
  output_dir: /tmp/reports
  format: both
channels:
  identifiers:
    - "@cookingdaily"
schedule: "30 8 * * 1"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.YouTube.APIKey != "file-key" {
		t.Errorf("APIKey = %q, want file-key", cfg.YouTube.APIKey)
	}
	if cfg.YouTube.MaxVideosPerChannel != 200 {
		t.Errorf("MaxVideosPerChannel = %d, want 200", cfg.YouTube.MaxVideosPerChannel)
	}
	if cfg.Analysis.Period != "last_90_days" {
		t.Errorf("Period = %q, want last_90_days", cfg.Analysis.Period)
	}
	if cfg.Export.OutputDir != "/tmp/reports" || cfg.Export.Format != "both" {
		t.Errorf("export config = %+v", cfg.Export)
	}
	if len(cfg.Channels.Identifiers) != 1 || cfg.Channels.Identifiers[0] != "@cookingdaily" {
		t.Errorf("Identifiers = %v", cfg.Channels.Identifiers)
	}
	if cfg.Schedule != "30 8 * * 1" {
		t.Errorf("Schedule = %q", cfg.Schedule)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load without config file should succeed: %v", err)
	}
	if cfg.YouTube.TokenFile != "youtube_token.json" {
		t.Errorf("TokenFile = %q", cfg.YouTube.TokenFile)
	}
	if cfg.AI.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q", cfg.AI.Model)
	}
	if cfg.Export.OutputDir != "exports" || cfg.Export.Format != "csv" {
		t.Errorf("export defaults = %+v", cfg.Export)
	}
	if cfg.Schedule != "0 9 * * *" {
		t.Errorf("Schedule = %q", cfg.Schedule)
	}
	if cfg.HasCredentials() {
		t.Error("HasCredentials should be false with nothing set")
	}
}

func TestLoadEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("YOUTUBE_API_KEY", "env-key")
	t.Setenv("GEMINI_API_KEY", "gem-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.YouTube.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env-key", cfg.YouTube.APIKey)
	}
	if cfg.AI.GeminiAPIKey != "gem-key" {
		t.Errorf("GeminiAPIKey = %q, want gem-key", cfg.AI.GeminiAPIKey)
	}
	if !cfg.HasCredentials() {
		t.Error("HasCredentials should be true with an API key")
	}
}

func TestLoadFilePrecedesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("YOUTUBE_API_KEY", "env-key")
	writeConfig(t, "youtube:\n  api_key: file-key\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.YouTube.APIKey != "file-key" {
		t.Errorf("APIKey = %q, file value should win", cfg.YouTube.APIKey)
	}
}

func TestLoadRejectsBadPeriod(t *testing.T) {
	clearEnv(t)
	writeConfig(t, "analysis:\n  period: fortnight\n")

	if _, err := Load(); err == nil {
		t.Fatal("Load should reject an unknown period")
	}
}

func TestLoadRejectsBadFormat(t *testing.T) {
	clearEnv(t)
	writeConfig(t, "export:\n  format: xlsx\n")

	if _, err := Load(); err == nil {
		t.Fatal("Load should reject an unknown export format")
	}
}

func TestLoadRejectsPartialEmail(t *testing.T) {
	clearEnv(t)
	writeConfig(t, "email:\n  username: bot@example.com\n")

	if _, err := Load(); err == nil {
		t.Fatal("Load should reject partial email configuration")
	}
}

func TestEmailConfigured(t *testing.T) {
	clearEnv(t)
	writeConfig(t, `
email:
  smtp_server: smtp.example.com
  smtp_port: 587
  username: bot@example.com
  password: secret
  from_email: bot@example.com
  to_email: owner@example.com
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.EmailConfigured() {
		t.Error("EmailConfigured should be true for a full email block")
	}
}
