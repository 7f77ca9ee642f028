// Package config loads the application configuration from a YAML file with
// environment-variable fallbacks for secrets.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	YouTube  YouTubeConfig  `yaml:"youtube"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Export   ExportConfig   `yaml:"export"`
	AI       AIConfig       `yaml:"ai"`
	Email    EmailConfig    `yaml:"email"`
	Channels ChannelsConfig `yaml:"channels"`
	Schedule string         `yaml:"schedule"`
}

type YouTubeConfig struct {
	// APIKey is the simplest credential and takes precedence. Without it the
	// OAuth client id/secret pair drives the device authorization flow.
	APIKey              string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
	ClientID            string `yaml:"client_id" env:"GOOGLE_CLIENT_ID"`
	ClientSecret        string `yaml:"client_secret" env:"GOOGLE_CLIENT_SECRET"`
	TokenFile           string `yaml:"token_file"`
	MaxVideosPerChannel int    `yaml:"max_videos_per_channel"` // 0 = fetch everything
}

// AnalysisConfig selects the date window and optionally overrides the
// heuristic constants baked into the aggregator. Zero values mean "use the
// default".
type AnalysisConfig struct {
	Period   string `yaml:"period"` // all | last_7_days | last_30_days | last_90_days | last_year
	FromDate string `yaml:"from_date"`
	ToDate   string `yaml:"to_date"`

	ShortsThresholdSeconds int     `yaml:"shorts_threshold_seconds"`
	ForecastWeeks          int     `yaml:"forecast_weeks"`
	SubsConversionRate     float64 `yaml:"subs_conversion_rate"`
	RuntimeWeight          float64 `yaml:"runtime_weight"`
	EngagementWeight       float64 `yaml:"engagement_weight"`
	TopicWeight            float64 `yaml:"topic_weight"`
	CommentsWeight         float64 `yaml:"comments_weight"`
	CommunityWeight        float64 `yaml:"community_weight"`
}

type ExportConfig struct {
	OutputDir string `yaml:"output_dir"`
	Format    string `yaml:"format"` // csv | json | both
	PerVideo  bool   `yaml:"per_video"`
}

type AIConfig struct {
	GeminiAPIKey string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Model        string `yaml:"model"`
}

type EmailConfig struct {
	SMTPServer string `yaml:"smtp_server"`
	SMTPPort   int    `yaml:"smtp_port"`
	Username   string `yaml:"username" env:"EMAIL_USERNAME"`
	Password   string `yaml:"password" env:"EMAIL_PASSWORD"`
	FromEmail  string `yaml:"from_email"`
	ToEmail    string `yaml:"to_email"`
}

// ChannelsConfig seeds the identifier list; the CLI can extend or replace it.
type ChannelsConfig struct {
	File        string   `yaml:"file"`
	Identifiers []string `yaml:"identifiers"`
}

var validPeriods = map[string]bool{
	"": true, "all": true, "last_7_days": true, "last_30_days": true,
	"last_90_days": true, "last_year": true,
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(configFile)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	case os.IsNotExist(err):
		// Environment variables alone are enough for a plain API-key run.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	if cfg.YouTube.APIKey == "" {
		cfg.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if cfg.YouTube.ClientID == "" {
		cfg.YouTube.ClientID = os.Getenv("GOOGLE_CLIENT_ID")
	}
	if cfg.YouTube.ClientSecret == "" {
		cfg.YouTube.ClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	}
	if cfg.YouTube.TokenFile == "" {
		cfg.YouTube.TokenFile = "youtube_token.json"
	}
	if cfg.AI.GeminiAPIKey == "" {
		cfg.AI.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gemini-2.5-flash"
	}
	if cfg.Email.Username == "" {
		cfg.Email.Username = os.Getenv("EMAIL_USERNAME")
	}
	if cfg.Email.Password == "" {
		cfg.Email.Password = os.Getenv("EMAIL_PASSWORD")
	}
	if cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = "exports"
	}
	if cfg.Export.Format == "" {
		cfg.Export.Format = "csv"
	}
	if cfg.Schedule == "" {
		cfg.Schedule = "0 9 * * *" // Daily at 9 AM
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if !validPeriods[c.Analysis.Period] {
		return fmt.Errorf("unknown analysis period %q (use all, last_7_days, last_30_days, last_90_days or last_year)", c.Analysis.Period)
	}
	switch strings.ToLower(c.Export.Format) {
	case "csv", "json", "both":
	default:
		return fmt.Errorf("unknown export format %q (use csv, json or both)", c.Export.Format)
	}
	if c.EmailConfigured() {
		if c.Email.SMTPServer == "" || c.Email.SMTPPort == 0 || c.Email.FromEmail == "" || c.Email.ToEmail == "" {
			return fmt.Errorf("email is partially configured: smtp_server, smtp_port, from_email and to_email are all required")
		}
	}
	return nil
}

// EmailConfigured reports whether the run report should be mailed.
func (c *Config) EmailConfigured() bool {
	return c.Email.Username != "" || c.Email.Password != "" || c.Email.SMTPServer != ""
}

// HasCredentials reports whether any YouTube credential is present.
func (c *Config) HasCredentials() bool {
	return c.YouTube.APIKey != "" || (c.YouTube.ClientID != "" && c.YouTube.ClientSecret != "")
}
