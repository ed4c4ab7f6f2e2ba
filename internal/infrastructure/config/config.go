package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Log    LogConfig
	Redis  RedisConfig
	Models ModelsConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string
	Port int
	Mode string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// RedisConfig holds the optional result-cache configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	CacheTTL time.Duration
}

// ModelsConfig holds analytic engine configuration
type ModelsConfig struct {
	// LexiconName selects an embedded lexicon resource by identifier
	LexiconName string
	// LexiconPath, when set, loads the lexicon from a file instead
	LexiconPath string
	// CorpusPath, when set, trains the classifier from a YAML corpus file
	// instead of the embedded corpus
	CorpusPath string
}

// Load reads configuration from environment variables with defaults
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("ANALYSIS_SERVER_HOST", "0.0.0.0"),
			Port: getEnvInt("ANALYSIS_SERVER_PORT", 8080),
			Mode: getEnv("ANALYSIS_SERVER_MODE", "debug"),
		},
		Log: LogConfig{
			Level:  getEnv("ANALYSIS_LOG_LEVEL", "info"),
			Format: getEnv("ANALYSIS_LOG_FORMAT", "json"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("ANALYSIS_REDIS_ENABLED", false),
			Host:     getEnv("ANALYSIS_REDIS_HOST", "localhost"),
			Port:     getEnvInt("ANALYSIS_REDIS_PORT", 6379),
			Password: getEnv("ANALYSIS_REDIS_PASSWORD", ""),
			DB:       getEnvInt("ANALYSIS_REDIS_DB", 0),
			CacheTTL: time.Duration(getEnvInt("ANALYSIS_REDIS_CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Models: ModelsConfig{
			LexiconName: getEnv("ANALYSIS_MODELS_LEXICON_NAME", "en-base"),
			LexiconPath: getEnv("ANALYSIS_MODELS_LEXICON_PATH", ""),
			CorpusPath:  getEnv("ANALYSIS_MODELS_CORPUS_PATH", ""),
		},
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
