package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/glabrego/cargonav/internal/carrier"
	"github.com/glabrego/cargonav/internal/storage"
)

// Config holds runtime settings for the CLI app.
type Config struct {
	Store           string
	DBPath          string
	LogPath         string
	Debug           bool
	TrackingBaseURL string
	Locale          string
}

// LoadFromEnv reads the environment, fills defaults and validates the result.
func LoadFromEnv() (Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// FromEnv reads the environment without defaults or validation, so callers
// can apply their own overrides first.
func FromEnv() (Config, error) {
	cfg := Config{
		Store:           os.Getenv("CARGONAV_STORE"),
		DBPath:          os.Getenv("CARGONAV_DB_PATH"),
		LogPath:         os.Getenv("CARGONAV_LOG_PATH"),
		TrackingBaseURL: os.Getenv("CARGONAV_TRACKING_BASE_URL"),
		Locale:          os.Getenv("CARGONAV_LOCALE"),
	}

	if raw := strings.TrimSpace(os.Getenv("CARGONAV_DEBUG")); raw != "" {
		debug, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("CARGONAV_DEBUG must be a boolean: %s", raw)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}

// ApplyDefaults fills empty fields. The default DBPath depends on Store.
func (c *Config) ApplyDefaults() {
	if c.Store == "" {
		c.Store = storage.BackendSQLite
	}
	if c.DBPath == "" {
		switch c.Store {
		case storage.BackendFile:
			c.DBPath = "cargonav.json"
		default:
			c.DBPath = "cargonav.db"
		}
	}
	if c.LogPath == "" {
		c.LogPath = "cargonav.log"
	}
	if c.TrackingBaseURL == "" {
		c.TrackingBaseURL = carrier.DefaultBaseURL
	}
	if c.Locale == "" {
		c.Locale = carrier.DefaultLocale
	}
}

func (c Config) Validate() error {
	switch c.Store {
	case storage.BackendSQLite, storage.BackendFile, storage.BackendMemory:
	default:
		return fmt.Errorf("Store must be sqlite, file or memory: %s", c.Store)
	}
	if c.Store != storage.BackendMemory && c.DBPath == "" {
		return errors.New("DBPath is required")
	}
	if c.TrackingBaseURL == "" {
		return errors.New("TrackingBaseURL is required")
	}
	if c.TrackingBaseURL[len(c.TrackingBaseURL)-1] == '/' {
		return fmt.Errorf("TrackingBaseURL must not end with '/': %s", c.TrackingBaseURL)
	}
	parsed, err := url.Parse(c.TrackingBaseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("TrackingBaseURL must be an http(s) URL: %s", c.TrackingBaseURL)
	}
	if strings.ContainsAny(c.Locale, " &=") {
		return fmt.Errorf("Locale is not a locale tag: %q", c.Locale)
	}
	return nil
}

// Carrier returns the carrier the tracking URLs point to.
func (c Config) Carrier() (carrier.Carrier, error) {
	return carrier.New("UPS", c.TrackingBaseURL, c.Locale)
}
