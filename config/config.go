package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort           = "8080"
	defaultDBUrl          = "sqlite:///site.db"
	defaultSecretKey      = "dev-key"
	defaultEnvLabel       = "staging"
	defaultRequestTimeout = 5 * time.Second
)

// PayPalConfig holds the payment processor settings. They are loaded so the
// deployment surface stays stable, but nothing in the application reads them yet.
type PayPalConfig struct {
	Env      string // "sandbox" or "production"
	ClientID string
	Secret   string
}

// EmailConfig holds the outgoing mail relay settings.
type EmailConfig struct {
	SMTPServer string
	Port       int
	UseTLS     bool
	User       string
	Pass       string
}

// Config holds all configuration for the application
type Config struct {
	Environment        string
	EnvLabel           string
	Port               string
	DBUrl              string
	SecretKey          string
	CORSAllowedOrigins []string
	SeedData           bool
	RequestTimeout     time.Duration
	PayPal             PayPalConfig
	Email              EmailConfig
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on system environment variables only.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		EnvLabel:           getenvDefault("ENV_LABEL", defaultEnvLabel),
		Port:               getenvDefault("PORT", defaultPort),
		DBUrl:              getenvDefault("DATABASE_URL", defaultDBUrl),
		SecretKey:          getenvDefault("SECRET_KEY", defaultSecretKey),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		PayPal: PayPalConfig{
			Env:      strings.ToLower(getenvDefault("PAYPAL_ENV", "sandbox")),
			ClientID: os.Getenv("PAYPAL_CLIENT_ID"),
			Secret:   os.Getenv("PAYPAL_SECRET"),
		},
		Email: EmailConfig{
			SMTPServer: getenvDefault("EMAIL_SMTP_SERVER", "localhost"),
			User:       os.Getenv("EMAIL_USER"),
			Pass:       os.Getenv("EMAIL_PASS"),
		},
	}

	if cfg.PayPal.Env != "sandbox" && cfg.PayPal.Env != "production" {
		return nil, fmt.Errorf("PAYPAL_ENV must be sandbox or production, got %q", cfg.PayPal.Env)
	}

	port, err := strconv.Atoi(getenvDefault("EMAIL_PORT", "587"))
	if err != nil || port <= 0 {
		return nil, fmt.Errorf("invalid EMAIL_PORT %q", os.Getenv("EMAIL_PORT"))
	}
	cfg.Email.Port = port

	if cfg.Email.UseTLS, err = parseBool("EMAIL_USE_TLS", true); err != nil {
		return nil, err
	}
	if cfg.SeedData, err = parseBool("SEED_DATA", true); err != nil {
		return nil, err
	}

	cfg.RequestTimeout = defaultRequestTimeout
	if s := os.Getenv("REQUEST_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q", s)
		}
		cfg.RequestTimeout = d
	}

	if env == "production" && (cfg.SecretKey == "" || cfg.SecretKey == defaultSecretKey) {
		return nil, fmt.Errorf("SECRET_KEY must be set in production")
	}

	return cfg, nil
}

// IsProduction reports whether GO_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseBool(key string, def bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q", key, s)
	}
	return b, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
