package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Default values for optional settings.
const (
	DefaultServerAddress = "0.0.0.0:8080"
	DefaultRateLimit     = 5.0
	DefaultRateBurst     = 2
	DefaultMaxIterations = 1000
)

// Config stores the service settings read from the environment or a .env file.
// APIKeyHash is the bcrypt hash of the accepted API key; empty disables authentication.
type Config struct {
	ServerAddress string
	APIKeyHash    string
	RateLimit     float64
	RateBurst     int
	MaxIterations int
}

// Load reads the configuration. A missing .env file is not an error.
func Load(filenames ...string) (Config, error) {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := Config{
		ServerAddress: DefaultServerAddress,
		APIKeyHash:    os.Getenv("NSS_API_KEY_HASH"),
		RateLimit:     DefaultRateLimit,
		RateBurst:     DefaultRateBurst,
		MaxIterations: DefaultMaxIterations,
	}
	if v, ok := lookup("NSS_SERVER_ADDRESS"); ok {
		cfg.ServerAddress = v
	}
	if err := getFloat("NSS_RATE_LIMIT", &cfg.RateLimit); err != nil {
		return Config{}, err
	}
	if err := getInt("NSS_RATE_BURST", &cfg.RateBurst); err != nil {
		return Config{}, err
	}
	if err := getInt("NSS_MAX_ITERATIONS", &cfg.MaxIterations); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.ServerAddress == "" {
		return errors.New("NSS_SERVER_ADDRESS is required")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("NSS_RATE_LIMIT must be > 0, got %v", c.RateLimit)
	}
	if c.RateBurst < 1 {
		return fmt.Errorf("NSS_RATE_BURST must be >= 1, got %d", c.RateBurst)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("NSS_MAX_ITERATIONS must be >= 1, got %d", c.MaxIterations)
	}
	return nil
}

// lookup reports a variable as set only when it holds a non-empty value.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	return v, ok && v != ""
}

// getFloat overwrites dst when key is set, leaving the default otherwise.
func getFloat(key string, dst *float64) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

func getInt(key string, dst *int) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = i
	return nil
}
