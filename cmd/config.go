package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"deliveryapp/internal/adapters/out/console"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	defaultLogLevel  = "INFO"
	defaultLogPrefix = "delivery"
)

type Config struct {
	LogLevel  log.Lvl
	LogPrefix string
}

// LoadConfig reads LOG_LEVEL and LOG_PREFIX from the environment after
// loading envFile. A missing envFile is not an error; variables already set
// in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	level, err := console.ParseLevel(getEnv("LOG_LEVEL", defaultLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return Config{
		LogLevel:  level,
		LogPrefix: getEnv("LOG_PREFIX", defaultLogPrefix),
	}, nil
}

func getEnv(key string, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
