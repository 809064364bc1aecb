package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                   string
	HTTPHost              string
	HTTPPort              string
	HTTPReadHeaderTimeout time.Duration
	HTTPShutdownTimeout   time.Duration
	LivenessEndpoint      string
	SeedDemoHotel         bool
	DemoHotelName         string
	DemoBasePrice         float64
}

// Load reads an optional .env file from the working directory, then the environment.
// Variables already set in the environment win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	//nolint:exhaustruct
	cfg := Config{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPHost:         getEnv("HTTP_HOST", "localhost"),
		HTTPPort:         getEnv("HTTP_PORT", "8092"),
		LivenessEndpoint: getEnv("LIVENESS_ENDPOINT", "/liveness"),
		DemoHotelName:    getEnv("DEMO_HOTEL_NAME", "Grand Budapest"),
	}

	var err error

	if cfg.HTTPReadHeaderTimeout, err = parseDurationEnv("HTTP_READ_HEADER_TIMEOUT", 20*time.Second); err != nil { //nolint:gomnd
		return Config{}, err
	}

	if cfg.HTTPShutdownTimeout, err = parseDurationEnv("HTTP_SHUTDOWN_TIMEOUT", 4*time.Second); err != nil { //nolint:gomnd
		return Config{}, err
	}

	if cfg.SeedDemoHotel, err = parseBoolEnv("SEED_DEMO_HOTEL", true); err != nil {
		return Config{}, err
	}

	if cfg.DemoBasePrice, err = parseFloatEnv("DEMO_BASE_PRICE", 1299); err != nil { //nolint:gomnd
		return Config{}, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	return d, nil
}

func parseBoolEnv(key string, fallback bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}

	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}

	return b, nil
}

func parseFloatEnv(key string, fallback float64) (float64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	return f, nil
}
