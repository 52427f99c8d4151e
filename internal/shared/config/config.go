package config

import (
	"fmt"
	"time"

	"cosmos-server/internal/shared/utils"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Frontend   FrontendConfig
	Logging    LoggingConfig
	RateLimit  RateLimitConfig
	Generation GenerationConfig
	Share      ShareConfig
}

type ServerConfig struct {
	Port            string
	URL             string
	Environment     string
	StaticDir       string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type FrontendConfig struct {
	URL       string
	CORSDebug bool
}

type LoggingConfig struct {
	Level      string
	Format     string
	JSONFormat bool
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstSize         int
	TrustProxy        bool
}

type GenerationConfig struct {
	PresetsPath    string
	MaxRequestBody int64
}

type ShareConfig struct {
	Secret     string
	Expiration time.Duration
}

var GlobalConfig *Config

func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	config := Load()

	if err := config.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	GlobalConfig = config
	return nil
}

// Load reads the configuration from the environment without validating it.
func Load() *Config {
	return &Config{
		Server:     loadServerConfig(),
		Frontend:   loadFrontendConfig(),
		Logging:    loadLoggingConfig(),
		RateLimit:  loadRateLimitConfig(),
		Generation: loadGenerationConfig(),
		Share:      loadShareConfig(),
	}
}

func loadServerConfig() ServerConfig {
	readTimeout := utils.GetEnvInt("SERVER_READ_TIMEOUT_SECONDS", 15)
	writeTimeout := utils.GetEnvInt("SERVER_WRITE_TIMEOUT_SECONDS", 30)
	idleTimeout := utils.GetEnvInt("SERVER_IDLE_TIMEOUT_SECONDS", 60)
	shutdownTimeout := utils.GetEnvInt("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 10)

	return ServerConfig{
		Port:            utils.GetEnv("SERVER_PORT", "8042"),
		URL:             utils.GetEnv("SERVER_URL", "http://localhost:8042"),
		Environment:     utils.GetEnv("ENVIRONMENT", "development"),
		StaticDir:       utils.GetEnv("STATIC_DIR", "static"),
		ReadTimeout:     time.Duration(readTimeout) * time.Second,
		WriteTimeout:    time.Duration(writeTimeout) * time.Second,
		IdleTimeout:     time.Duration(idleTimeout) * time.Second,
		ShutdownTimeout: time.Duration(shutdownTimeout) * time.Second,
	}
}

func loadFrontendConfig() FrontendConfig {
	return FrontendConfig{
		URL:       utils.GetEnv("FRONTEND_URL", "http://localhost:3000"),
		CORSDebug: utils.GetEnv("CORS_DEBUG", "") == "true",
	}
}

func loadLoggingConfig() LoggingConfig {
	environment := utils.GetEnv("ENVIRONMENT", "development")
	format := utils.GetEnv("LOG_FORMAT", "text")

	return LoggingConfig{
		Level:      utils.GetEnv("LOG_LEVEL", "debug"),
		Format:     format,
		JSONFormat: environment == "production" || format == "json",
	}
}

func loadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:           utils.GetEnv("RATE_LIMIT_ENABLED", "true") == "true",
		RequestsPerSecond: utils.GetEnvFloat("RATE_LIMIT_REQUESTS_PER_SECOND", 10),
		BurstSize:         utils.GetEnvInt("RATE_LIMIT_BURST_SIZE", 20),
		TrustProxy:        utils.GetEnvBool("RATE_LIMIT_TRUST_PROXY", false),
	}
}

func loadGenerationConfig() GenerationConfig {
	return GenerationConfig{
		PresetsPath:    utils.GetEnv("GENERATION_PRESETS_PATH", ""),
		MaxRequestBody: int64(utils.GetEnvInt("GENERATION_MAX_REQUEST_BYTES", 1<<20)),
	}
}

func loadShareConfig() ShareConfig {
	expiration := utils.GetEnvInt("SHARE_EXPIRATION_HOURS", 24*30)

	return ShareConfig{
		Secret:     utils.GetEnv("SHARE_SECRET", ""),
		Expiration: time.Duration(expiration) * time.Hour,
	}
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Server.URL == "" {
		return fmt.Errorf("SERVER_URL is required")
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS_PER_SECOND must be positive")
	}

	if c.Generation.MaxRequestBody <= 0 {
		return fmt.Errorf("GENERATION_MAX_REQUEST_BYTES must be positive")
	}

	if c.Share.Secret != "" && len(c.Share.Secret) < 32 {
		return fmt.Errorf("SHARE_SECRET must be at least 32 characters long")
	}

	if c.Share.Expiration <= 0 {
		return fmt.Errorf("SHARE_EXPIRATION_HOURS must be positive")
	}

	return nil
}

func (c *Config) SharingEnabled() bool {
	return c.Share.Secret != ""
}
