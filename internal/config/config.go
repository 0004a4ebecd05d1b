// Package config reads the backend configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// HTTP Server
	Port   string
	APIURL string // External URL of the API, used for links and docs

	// Database
	DBPath string

	// Logging
	GinMode   string
	LogFormat string // "human" or "json", empty for the default of the gin mode

	// Router
	CORSAllowOrigins []string
	EnablePprof      bool

	// Reports
	ReportFetchTimeout      time.Duration // Timeout for fetching signature images
	ReportAllowPrivateHosts bool          // Fetch images from private addresses, for development setups
}

// Load reads the configuration from the environment. Variables from a
// .env file in the working directory are loaded first. They never
// override variables that are already set.
func Load() Config {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("Config")
	}

	return Config{
		Port:                    getEnv("PORT", "8080"),
		APIURL:                  getEnv("API_URL", ""),
		DBPath:                  getEnv("DB_PATH", "data/ledger.db"),
		GinMode:                 getEnv("GIN_MODE", "release"),
		LogFormat:               getEnv("LOG_FORMAT", ""),
		CORSAllowOrigins:        strings.Fields(getEnv("CORS_ALLOW_ORIGINS", "")),
		EnablePprof:             getEnv("ENABLE_PPROF", "false") == "true",
		ReportFetchTimeout:      getEnvDuration("REPORT_FETCH_TIMEOUT", 5*time.Second),
		ReportAllowPrivateHosts: getEnv("REPORT_ALLOW_PRIVATE_HOSTS", "false") == "true",
	}
}

// Validate returns an error listing all problems with the configuration.
func (c Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.APIURL == "" {
		problems = append(problems, "API_URL must be set")
	} else if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("invalid API_URL '%s': must be an absolute URL", c.APIURL))
	}

	if c.DBPath == "" {
		problems = append(problems, "DB_PATH must not be empty")
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		problems = append(problems, fmt.Sprintf("invalid GIN_MODE '%s': must be one of debug, release, test", c.GinMode))
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid LOG_FORMAT '%s': must be human or json", c.LogFormat))
	}

	if c.ReportFetchTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid REPORT_FETCH_TIMEOUT %v: must be positive", c.ReportFetchTimeout))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// BaseURL returns the parsed API URL. The configuration must be valid.
func (c Config) BaseURL() *url.URL {
	u, _ := url.Parse(c.APIURL)
	return u
}

// HumanLogs reports if logs should be written in human readable form.
func (c Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}
	return c.LogFormat == "human"
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
