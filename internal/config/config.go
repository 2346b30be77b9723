package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys
const (
	EnvLogLevel       = "HEALTHDSL_LOG_LEVEL"
	EnvLocale         = "HEALTHDSL_LOCALE"
	EnvFormat         = "HEALTHDSL_FORMAT"
	EnvOnlyFirstParty = "HEALTHDSL_ONLY_FIRST_PARTY"
)

// Config holds the application configuration
type Config struct {
	LogLevel       string
	Locale         string
	Format         string
	OnlyFirstParty bool
}

// Load reads the configuration from the environment
// The given .env files (default ".env") are loaded first; missing files are skipped
// and never override variables already set in the environment
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	onlyFirstParty, err := getEnvBool(EnvOnlyFirstParty, false)
	if err != nil {
		return Config{}, err
	}

	return Config{
		LogLevel:       getEnv(EnvLogLevel, "info"),
		Locale:         getEnv(EnvLocale, "en"),
		Format:         getEnv(EnvFormat, "table"),
		OnlyFirstParty: onlyFirstParty,
	}, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return parsed, nil
}
