package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/restevesd/arnes/internal/services"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultPort      = "8080"
	DefaultModelName = "avalanche_dog_boot_model.yaml"
	DefaultModelDir  = "."
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Port           string
	ModelName      string
	ModelDir       string
	PGURL          string
	ModelServerURL string
	MessageLocale  services.Locale
	LogLevel       log.Level
	LogFormat      string
	GinMode        string
}

// Load reads configuration from environment variables.
// A .env file (or the file named by ENV_FILE) is read first; variables already
// set in the shell take precedence over it.
func Load() (*Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	locale, err := services.ParseLocale(getEnv("MESSAGE_LOCALE", string(services.DefaultLocale)))
	if err != nil {
		return nil, fmt.Errorf("MESSAGE_LOCALE: %w", err)
	}

	level, err := log.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	logFormat := strings.ToLower(getEnv("LOG_FORMAT", "text"))
	if logFormat != "text" && logFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be 'text' or 'json', got %q", logFormat)
	}

	modelName := getEnv("MODEL_NAME", DefaultModelName)
	if strings.TrimSpace(modelName) == "" {
		return nil, fmt.Errorf("MODEL_NAME must not be blank")
	}

	return &Config{
		Port:           getEnv("PORT", DefaultPort),
		ModelName:      modelName,
		ModelDir:       getEnv("MODEL_DIR", DefaultModelDir),
		PGURL:          os.Getenv("PG_URL"),
		ModelServerURL: os.Getenv("MODEL_SERVER_URL"),
		MessageLocale:  locale,
		LogLevel:       level,
		LogFormat:      logFormat,
		GinMode:        os.Getenv("GIN_MODE"),
	}, nil
}

// ModelBackend names the estimator implementation the configuration selects
func (c *Config) ModelBackend() string {
	switch {
	case c.ModelServerURL != "":
		return "remote"
	case c.PGURL != "":
		return "postgres"
	default:
		return "file"
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
