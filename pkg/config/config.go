package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"hotel-site/pkg/gallery"
)

// Config holds all configuration for the application
type Config struct {
	Port        string
	ViewsDir    string
	StaticDir   string
	CatalogFile string
	BucketName  string
	LogLevel    string
	DevMode     bool
	FormDelay   time.Duration
	CacheTTL    time.Duration

	FilterChange gallery.FilterChangePolicy
	Recovery     gallery.RecoveryPolicy
}

// ErrInvalidDuration is returned when a duration variable cannot be parsed
var ErrInvalidDuration = errors.New("invalid duration")

// ErrInvalidPolicy is returned when a lightbox policy variable is not recognised
var ErrInvalidPolicy = errors.New("invalid lightbox policy")

// ErrInvalidLogLevel is returned when LOG_LEVEL is not a known level
var ErrInvalidLogLevel = errors.New("invalid log level")

// LoadDotEnv loads a .env file from the working directory if one exists
func LoadDotEnv() {
	_ = godotenv.Load()
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		ViewsDir:    getenv("VIEWS_DIR", "./views"),
		StaticDir:   getenv("STATIC_DIR", "./public"),
		CatalogFile: os.Getenv("CATALOG_FILE"),
		BucketName:  os.Getenv("BUCKET_NAME"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
	}

	if v := os.Getenv("DEV_MODE"); v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("DEV_MODE: %w", err)
		}
		cfg.DevMode = dev
	}

	var err error
	if cfg.FormDelay, err = duration("FORM_DELAY", 800*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = duration("CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}

	if cfg.FilterChange, err = gallery.ParseFilterChangePolicy(os.Getenv("LIGHTBOX_ON_FILTER_CHANGE")); err != nil {
		return nil, fmt.Errorf("%w: LIGHTBOX_ON_FILTER_CHANGE: %v", ErrInvalidPolicy, err)
	}
	if cfg.Recovery, err = gallery.ParseRecoveryPolicy(os.Getenv("LIGHTBOX_RECOVERY")); err != nil {
		return nil, fmt.Errorf("%w: LIGHTBOX_RECOVERY: %v", ErrInvalidPolicy, err)
	}

	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}

	return cfg, nil
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// GalleryOptions returns the lightbox options derived from the configuration
func (c *Config) GalleryOptions() []gallery.Option {
	return []gallery.Option{
		gallery.WithFilterChangePolicy(c.FilterChange),
		gallery.WithRecoveryPolicy(c.Recovery),
	}
}

// LogServerStart logs where the site can be reached
func (c *Config) LogServerStart(logger *log.Logger) {
	logger.Info("Starting server", "port", c.Port, "dev", c.DevMode)
	logger.Info("Site URL", "url", fmt.Sprintf("http://localhost:%s/", c.Port))
	logger.Info("Gallery URL", "url", fmt.Sprintf("http://localhost:%s/gallery", c.Port))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidDuration, key, v)
	}
	return d, nil
}
