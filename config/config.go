package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// execution environments
const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

// reference data backends
const (
	SourceEmbedded = "embedded"
	SourcePostgres = "postgres"
)

type Database struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	Seed     bool
}

// DSN returns the postgres connection string for the database.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		d.Host, d.User, d.Password, d.Name, d.Port)
}

type Config struct {
	Port                   string
	Env                    string
	RequireAPIKey          bool
	APIKeys                []string
	RateLimitPerMinute     int
	ReferenceSource        string
	Database               Database
	EmissionFactorsVersion string
	LogLevel               slog.Level
}

func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Load reads the configuration from the .env file (if any), the process
// environment and an optional yaml file. Environment values win over the file.
func Load(configFile string) (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("API_KEYS", "")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 1000)
	v.SetDefault("REFERENCE_SOURCE", SourceEmbedded)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "carbon_travel_db")
	v.SetDefault("DB_SEED", true)
	v.SetDefault("EMISSION_FACTORS_VERSION", "2024.2")
	v.SetDefault("LOG_LEVEL", "info")
}

func fromViper(v *viper.Viper) (Config, error) {
	env := strings.ToLower(v.GetString("ENV"))
	switch env {
	case EnvDevelopment, EnvTesting, EnvProduction:
	default:
		return Config{}, fmt.Errorf("invalid ENV %q", env)
	}

	source := strings.ToLower(v.GetString("REFERENCE_SOURCE"))
	if source != SourceEmbedded && source != SourcePostgres {
		return Config{}, fmt.Errorf("invalid REFERENCE_SOURCE %q", source)
	}

	// api keys are required in production unless explicitly disabled
	requireKey := env == EnvProduction
	if v.IsSet("REQUIRE_API_KEY") {
		requireKey = v.GetBool("REQUIRE_API_KEY")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	rateLimit := v.GetInt("RATE_LIMIT_PER_MINUTE")
	if rateLimit <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", rateLimit)
	}

	return Config{
		Port:               v.GetString("PORT"),
		Env:                env,
		RequireAPIKey:      requireKey,
		APIKeys:            splitList(v.GetString("API_KEYS")),
		RateLimitPerMinute: rateLimit,
		ReferenceSource:    source,
		Database: Database{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USERNAME"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			Seed:     v.GetBool("DB_SEED"),
		},
		EmissionFactorsVersion: v.GetString("EMISSION_FACTORS_VERSION"),
		LogLevel:               level,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// MustLoad is Load for startup code: it logs and exits on failure.
func MustLoad(configFile string) Config {
	cfg, err := Load(configFile)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}
	return cfg
}
