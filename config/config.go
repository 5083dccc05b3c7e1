package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Token    TokenConfig
	Password PasswordConfig
	Mail     MailConfig
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

// TokenConfig holds the secret and salt that bind confirmation tokens to this deployment.
type TokenConfig struct {
	SecretKey string
	Salt      string
	MaxAge    time.Duration
}

type PasswordConfig struct {
	BcryptCost int
}

type MailConfig struct {
	Server        string
	Port          int
	Username      string
	Password      string
	UseTLS        bool
	DefaultSender string
}

func Load() (*Config, error) {
	LoadDotEnv()

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDotEnv loads a .env file into the environment if one exists.
func LoadDotEnv() {
	// ignore error in production
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// FromEnv reads the configuration from the process environment without validating it.
func FromEnv() *Config {
	return &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Token: TokenConfig{
			SecretKey: getEnv("TOKEN_SECRET_KEY", ""),
			Salt:      getEnv("TOKEN_SALT", ""),
			MaxAge:    getEnvAsDuration("TOKEN_MAX_AGE", time.Hour),
		},
		Password: PasswordConfig{
			BcryptCost: getEnvAsInt("PASSWORD_BCRYPT_COST", 10),
		},
		Mail: MailConfig{
			Server:        getEnv("MAIL_SERVER", "localhost"),
			Port:          getEnvAsInt("MAIL_PORT", 587),
			Username:      getEnv("MAIL_USERNAME", ""),
			Password:      getEnv("MAIL_PASSWORD", ""),
			UseTLS:        getEnvAsBool("MAIL_USE_TLS", true),
			DefaultSender: getEnv("MAIL_DEFAULT_SENDER", ""),
		},
	}
}

func (c *Config) Validate() error {
	if c.Token.SecretKey == "" {
		return fmt.Errorf("TOKEN_SECRET_KEY is required")
	}

	if c.Token.Salt == "" {
		return fmt.Errorf("TOKEN_SALT is required")
	}

	if c.Token.MaxAge <= 0 {
		return fmt.Errorf("TOKEN_MAX_AGE must be positive")
	}

	if c.Mail.DefaultSender == "" {
		return fmt.Errorf("MAIL_DEFAULT_SENDER is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvAsDuration accepts Go durations ("90m") or a plain number of seconds ("3600").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
