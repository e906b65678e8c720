package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"sort"
	"strconv"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/andrew-x/card-counter/models"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	// Secrets
	SessionSecret string
	Password      string

	// Card recognition service (optional; scan endpoint disabled if unset)
	RecognizerURL string
	RecognizerKey string

	// Value-map presets: built-ins plus any from the presets file
	PresetsPath string
	Presets     []models.Preset
}

// DriverName maps the configured database type to a database/sql driver.
func (c Config) DriverName() string {
	if c.DatabaseType == "postgres" {
		return "postgres"
	}
	return "sqlite"
}

// ParseFlags validates flags, falling back to env variables (a .env file
// is loaded first if present).
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	_ = godotenv.Load()

	fs := flag.NewFlagSet("card-counter", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.PresetsPath, "presets", "", "Path to a TOML file with extra value-map presets")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session token signing secret (prefer env)")
	fs.StringVar(&cfg.Password, "password", "", "Shared login password (prefer env)")
	fs.StringVar(&cfg.RecognizerURL, "recognizer-url", "", "Card recognition service URL")
	fs.StringVar(&cfg.RecognizerKey, "recognizer-key", "", "Card recognition service API key (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4170 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "card-counter.db"
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	if cfg.Password == "" {
		cfg.Password = os.Getenv("APP_PASSWORD")
	}
	if cfg.Password == "" {
		return Config{}, errors.New("APP_PASSWORD required")
	}

	// Recognition service is optional
	if cfg.RecognizerURL == "" {
		cfg.RecognizerURL = os.Getenv("RECOGNIZER_URL")
	}
	if cfg.RecognizerKey == "" {
		cfg.RecognizerKey = os.Getenv("RECOGNIZER_API_KEY")
	}

	if cfg.PresetsPath == "" {
		cfg.PresetsPath = os.Getenv("PRESETS_PATH")
	}
	presets, err := LoadPresets(cfg.PresetsPath)
	if err != nil {
		return Config{}, err
	}
	cfg.Presets = presets

	return cfg, nil
}

// LoadPresets returns the built-in presets plus any defined in the TOML
// file at path. An empty path or a missing file yields just the
// built-ins; a present but unreadable or malformed file is an error.
//
// File format:
//
//	[presets.tens]
//	"A" = 1
//	"10" = 10
//	"J" = 10
func LoadPresets(path string) ([]models.Preset, error) {
	presets := models.BuiltinPresets()
	if path == "" {
		return presets, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return presets, nil
		}
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}

	var raw struct {
		Presets map[string]models.ValueMap `toml:"presets"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse presets file: %w", err)
	}

	names := make([]string, 0, len(raw.Presets))
	for name := range raw.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for rank := range raw.Presets[name] {
			if !slices.Contains(models.Ranks, rank) {
				return nil, fmt.Errorf("preset %q maps unknown rank %q", name, rank)
			}
		}
		presets = append(presets, models.Preset{Name: name, Values: raw.Presets[name]})
	}

	return presets, nil
}
