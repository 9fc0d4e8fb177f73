package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port           string
	GinMode        string
	Database       Database
	TokenSecret    string
	TokenTTL       time.Duration
	StripeKey      string
	Currency       string
	RequestTimeout time.Duration
	GatewayTimeout time.Duration
	LogFile        string
	LogLevel       string
	CORSOrigins    []string
	Seed           bool
}

// Database describes how to reach the document store.
type Database struct {
	Driver   string // "postgres" or "sqlite"
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
	Source   string // sqlite file, or a full postgres DSN overriding the fields above
}

// DSN builds the connection string for the configured driver.
func (d Database) DSN() string {
	if d.Source != "" {
		return d.Source
	}
	if d.Driver == "sqlite" {
		return "bistro.db"
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode, d.TimeZone,
	)
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	cfg := Config{
		Port:    getEnv("PORT", "7000"),
		GinMode: getEnv("GIN_MODE", "release"),
		Database: Database{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "password"),
			Name:     getEnv("DB_NAME", "bistroDb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			TimeZone: getEnv("DB_TIMEZONE", "UTC"),
			Source:   getEnv("DB_SOURCE", ""),
		},
		TokenSecret: getEnv("ACCESS_TOKEN_SECRET", ""),
		StripeKey:   getEnv("STRIPE_SECRET_KEY", ""),
		Currency:    strings.ToLower(getEnv("PAYMENT_CURRENCY", "usd")),
		LogFile:     getEnv("LOG_FILE", "./logs/app.log"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "")),
	}

	var err error
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 48*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.GatewayTimeout, err = getDuration("GATEWAY_TIMEOUT", 8*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = strconv.ParseBool(getEnv("SEED", "false")); err != nil {
		return Config{}, fmt.Errorf("SEED: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER: unsupported driver %q", c.Database.Driver)
	}
	// The gateway deadline is derived from the request context, so the
	// request budget must cover it.
	if c.RequestTimeout > 0 && c.RequestTimeout < c.GatewayTimeout {
		log.Printf("REQUEST_TIMEOUT %v is shorter than GATEWAY_TIMEOUT %v – raising it", c.RequestTimeout, c.GatewayTimeout)
		c.RequestTimeout = c.GatewayTimeout
	}
	if c.TokenSecret == "" {
		if c.Database.Driver != "sqlite" {
			return errors.New("ACCESS_TOKEN_SECRET is required")
		}
		log.Println("ACCESS_TOKEN_SECRET not set – using an insecure development secret")
		c.TokenSecret = "bistro-dev-secret"
	}
	return nil
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
