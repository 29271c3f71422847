package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	RunMigrations bool
	LogLevel      string

	JWTSecret string
	JWTIssuer string

	CORSAllowedOrigins []string
	RateLimit          string // ulule formatted, e.g. "100-M"
	RedisURL           string // optional, shared limiter store when set

	AuditSink string // log, postgres or both

	ForceClosePolicy    domain.ForceClosePolicy
	AutoVerifyHandovers bool

	CurrencyPrecision int
	ShutdownTimeout   time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "fuel-station-app")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("AUDIT_SINK", "both")
	viper.SetDefault("SHIFT_FORCE_CLOSE_POLICY", string(domain.ForceCloseZeroVolume))
	viper.SetDefault("SHIFT_AUTO_VERIFY_HANDOVERS", true)
	viper.SetDefault("DEFAULT_CURRENCY_PRECISION", 2)
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	// Environment variables override the defaults and the .env file.
	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:         viper.GetString("PGSQL_URL"),
		Port:                viper.GetString("PORT"),
		IsProduction:        viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:       viper.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:       viper.GetBool("RUN_MIGRATIONS"),
		LogLevel:            strings.ToLower(viper.GetString("LOG_LEVEL")),
		JWTSecret:           viper.GetString("JWT_SECRET"),
		JWTIssuer:           viper.GetString("JWT_ISSUER"),
		CORSAllowedOrigins:  splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:           viper.GetString("RATE_LIMIT"),
		RedisURL:            viper.GetString("REDIS_URL"),
		AuditSink:           strings.ToLower(viper.GetString("AUDIT_SINK")),
		ForceClosePolicy:    domain.ForceClosePolicy(strings.ToLower(viper.GetString("SHIFT_FORCE_CLOSE_POLICY"))),
		AutoVerifyHandovers: viper.GetBool("SHIFT_AUTO_VERIFY_HANDOVERS"),
		CurrencyPrecision:   viper.GetInt("DEFAULT_CURRENCY_PRECISION"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	shutdown, err := time.ParseDuration(viper.GetString("SHUTDOWN_TIMEOUT"))
	if err != nil {
		shutdown = 10 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT. Defaulting to %s.\n", shutdown)
	}
	cfg.ShutdownTimeout = shutdown

	switch cfg.ForceClosePolicy {
	case domain.ForceCloseZeroVolume, domain.ForceCloseSkip:
	default:
		return nil, fmt.Errorf("invalid SHIFT_FORCE_CLOSE_POLICY %q (want zero_volume or skip)", cfg.ForceClosePolicy)
	}

	switch cfg.AuditSink {
	case "log", "postgres", "both":
	default:
		return nil, fmt.Errorf("invalid AUDIT_SINK %q (want log, postgres or both)", cfg.AuditSink)
	}

	if cfg.CurrencyPrecision < 0 || cfg.CurrencyPrecision > 8 {
		return nil, fmt.Errorf("invalid DEFAULT_CURRENCY_PRECISION %d", cfg.CurrencyPrecision)
	}

	return cfg, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
