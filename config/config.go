package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/sirupsen/logrus"
)

type Config struct {
	ServerPort        string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	AnalyzeTimeout    time.Duration
	RateLimit         int
	RateLimitInterval time.Duration
	LogDir            string
	Debug             bool

	// Comment source settings
	YouTubeAPIKey  string
	MaxComments    int
	MaxCommentsCap int

	// Summarizer settings
	GroqBaseURL        string
	DefaultModel       string
	CommentMaxLength   int
	SummaryMaxTokens   int
	SummaryTemperature float32
}

func LoadConfig() *Config {
	return &Config{
		ServerPort:        GetEnv("SERVER_PORT", "8080"),
		ReadTimeout:       getEnvAsDuration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout:      getEnvAsDuration("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:       getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		AnalyzeTimeout:    getEnvAsDuration("ANALYZE_TIMEOUT", 2*time.Minute),
		RateLimit:         getEnvAsInt("RATE_LIMIT", 5),
		RateLimitInterval: getEnvAsDuration("RATE_LIMIT_INTERVAL", 1*time.Second),
		LogDir:            GetEnv("LOG_DIR", "./logs"),
		Debug:             getEnvAsBool("DEBUG", false),

		YouTubeAPIKey:  GetEnv("YOUTUBE_API_KEY", ""),
		MaxComments:    getEnvAsInt("MAX_COMMENTS", 50),
		MaxCommentsCap: getEnvAsInt("MAX_COMMENTS_CAP", 200),

		GroqBaseURL:        GetEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		DefaultModel:       GetEnv("MODEL_NAME", "llama-3.3-70b-versatile"),
		CommentMaxLength:   getEnvAsInt("COMMENT_MAX_LENGTH", 200),
		SummaryMaxTokens:   getEnvAsInt("SUMMARY_MAX_TOKENS", 1500),
		SummaryTemperature: getEnvAsFloat32("SUMMARY_TEMPERATURE", 0.5),
	}
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		logrus.WithFields(logrus.Fields{
			"key":          key,
			"value":        value,
			"defaultValue": defaultValue,
		}).Warn("Invalid duration, using default")
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		logrus.WithFields(logrus.Fields{
			"key":          key,
			"value":        value,
			"defaultValue": defaultValue,
		}).Warn("Invalid integer, using default")
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
		logrus.WithFields(logrus.Fields{
			"key":          key,
			"value":        value,
			"defaultValue": defaultValue,
		}).Warn("Invalid boolean, using default")
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatValue)
		}
		logrus.WithFields(logrus.Fields{
			"key":          key,
			"value":        value,
			"defaultValue": defaultValue,
		}).Warn("Invalid float, using default")
	}
	return defaultValue
}

func ValidateConfig(cfg *Config) error {
	if cfg.ServerPort == "" {
		return errors.New("server port is required")
	}
	if cfg.YouTubeAPIKey == "" {
		return errors.New("YouTube API key is required")
	}
	if cfg.AnalyzeTimeout <= 0 {
		return errors.New("analyze timeout must be greater than 0")
	}
	if cfg.ReadTimeout <= 0 {
		return errors.New("read timeout must be greater than 0")
	}
	if cfg.WriteTimeout <= 0 {
		return errors.New("write timeout must be greater than 0")
	}
	if cfg.IdleTimeout <= 0 {
		return errors.New("idle timeout must be greater than 0")
	}
	if cfg.MaxComments <= 0 {
		return errors.New("max comments must be greater than 0")
	}
	if cfg.MaxCommentsCap < cfg.MaxComments {
		return errors.New("max comments cap must be at least the default max comments")
	}
	if cfg.GroqBaseURL == "" {
		return errors.New("Groq base URL is required")
	}
	if cfg.DefaultModel == "" {
		return errors.New("default model name is required")
	}
	return nil
}
