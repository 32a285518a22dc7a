package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.ServerPort != "8080" {
		t.Errorf("expected default server port '8080', got '%s'", cfg.ServerPort)
	}
	if cfg.MaxComments != 50 {
		t.Errorf("expected default max comments 50, got %d", cfg.MaxComments)
	}
	if cfg.MaxCommentsCap != 200 {
		t.Errorf("expected default max comments cap 200, got %d", cfg.MaxCommentsCap)
	}
	if cfg.CommentMaxLength != 200 {
		t.Errorf("expected default comment max length 200, got %d", cfg.CommentMaxLength)
	}
	if cfg.AnalyzeTimeout != 2*time.Minute {
		t.Errorf("expected default analyze timeout 2m, got %v", cfg.AnalyzeTimeout)
	}
	if cfg.GroqBaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("unexpected default Groq base URL: %s", cfg.GroqBaseURL)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_CONFIG_KEY", "value")

	if got := GetEnv("TEST_CONFIG_KEY", "default"); got != "value" {
		t.Errorf("expected 'value', got '%s'", got)
	}
	if got := GetEnv("TEST_CONFIG_MISSING", "default"); got != "default" {
		t.Errorf("expected 'default', got '%s'", got)
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "45s")
	t.Setenv("TEST_DURATION_BAD", "not-a-duration")

	if got := getEnvAsDuration("TEST_DURATION", time.Second); got != 45*time.Second {
		t.Errorf("expected 45s, got %v", got)
	}
	if got := getEnvAsDuration("TEST_DURATION_BAD", time.Second); got != time.Second {
		t.Errorf("expected fallback 1s, got %v", got)
	}
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := LoadConfig()
		cfg.YouTubeAPIKey = "test-key"
		return cfg
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing server port",
			modify:  func(c *Config) { c.ServerPort = "" },
			wantErr: true,
		},
		{
			name:    "missing YouTube API key",
			modify:  func(c *Config) { c.YouTubeAPIKey = "" },
			wantErr: true,
		},
		{
			name:    "zero analyze timeout",
			modify:  func(c *Config) { c.AnalyzeTimeout = 0 },
			wantErr: true,
		},
		{
			name:    "zero max comments",
			modify:  func(c *Config) { c.MaxComments = 0 },
			wantErr: true,
		},
		{
			name:    "cap below default",
			modify:  func(c *Config) { c.MaxCommentsCap = 10 },
			wantErr: true,
		},
		{
			name:    "missing model name",
			modify:  func(c *Config) { c.DefaultModel = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			err := ValidateConfig(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
