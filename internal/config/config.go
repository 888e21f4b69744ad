package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// API holds the remote movies endpoint settings
type API struct {
	BaseURL string
	Timeout time.Duration
}

// UI holds timings of the terminal interface
type UI struct {
	AlertTTL       time.Duration
	SearchDebounce time.Duration
}

type Logging struct {
	Level     string
	Format    string
	File      string
	AddSource bool
}

// Stub configures the local fixture server
type Stub struct {
	Addr        string
	FixturePath string
}

// Config holds the whole application configuration
type Config struct {
	API     API
	UI      UI
	Logging Logging
	Stub    Stub
}

const logtag = "[config]"

// Load parses the -config flag from args, loads the env file it names (or
// .env when present) and builds the config from the environment
func Load(args []string) (*Config, error) {
	fset := flag.NewFlagSet("moviedeck", flag.ContinueOnError)
	configPath := fset.String("config", "", "path to env file")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			return nil, fmt.Errorf("%s load env from %s: %w", logtag, *configPath, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s load .env: %w", logtag, err)
	}

	return FromEnv(), nil
}

// FromEnv builds the config from the process environment only
func FromEnv() *Config {
	return &Config{
		API: API{
			BaseURL: getEnvAsString("MOVIES_BASE_URL", "https://webdev.alphacamp.io"),
			Timeout: getEnvAsDuration("HTTP_TIMEOUT", 10*time.Second),
		},
		UI: UI{
			AlertTTL:       getEnvAsDuration("ALERT_TTL", time.Second),
			SearchDebounce: getEnvAsDuration("SEARCH_DEBOUNCE", 300*time.Millisecond),
		},
		Logging: Logging{
			Level:     getEnvAsString("LOG_LEVEL", "info"),
			Format:    getEnvAsString("LOG_FORMAT", "text"),
			File:      getEnvAsString("LOG_FILE", "moviedeck.log"),
			AddSource: getEnvAsBool("LOG_SOURCE", false),
		},
		Stub: Stub{
			Addr:        getEnvAsString("STUB_ADDR", ":8080"),
			FixturePath: getEnvAsString("FIXTURE_PATH", ""),
		},
	}
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool reads an env var as bool or returns the default.
// A value that does not parse is logged and ignored.
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueBool, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("%s %s=%q is not a bool: %v, using %t", logtag, key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueBool
}

// getEnvAsDuration accepts Go durations ("300ms") and bare integers as
// milliseconds. Values that do not parse or are not positive fall back.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(valueStr)
	if err != nil {
		ms, atoiErr := strconv.Atoi(valueStr)
		if atoiErr != nil {
			log.Printf("%s %s=%q is not a duration, using %s", logtag, key, valueStr, defaultValue)
			return defaultValue
		}
		d = time.Duration(ms) * time.Millisecond
	}

	if d <= 0 {
		log.Printf("%s %s=%q must be positive, using %s", logtag, key, valueStr, defaultValue)
		return defaultValue
	}
	return d
}
