package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"dampedfilter/internal/report"
)

// Config holds application configuration
type Config struct {
	Addr           string
	ResultsDir     string
	ParametersFile string
	LogLevel       logrus.Level
	Formats        []report.Format
	MaxUploadBytes int64
	Debug          bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Addr:           getEnv("DAMPEDFILTER_ADDR", ":8080"),
		ResultsDir:     getEnv("DAMPEDFILTER_RESULTS_DIR", "results"),
		ParametersFile: getEnv("DAMPEDFILTER_PARAMETERS_FILE", "parameters.txt"),
		Debug:          getEnvBool("DAMPEDFILTER_DEBUG", false),
	}

	level, err := logrus.ParseLevel(getEnv("DAMPEDFILTER_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("DAMPEDFILTER_LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level
	if cfg.Debug {
		cfg.LogLevel = logrus.DebugLevel
	}

	cfg.Formats, err = report.ParseFormats(getEnv("DAMPEDFILTER_FORMATS", "txt,json,yaml,xlsx,png"))
	if err != nil {
		return nil, fmt.Errorf("DAMPEDFILTER_FORMATS: %w", err)
	}

	cfg.MaxUploadBytes = 1 << 20
	if v := os.Getenv("DAMPEDFILTER_MAX_UPLOAD"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("DAMPEDFILTER_MAX_UPLOAD: invalid size %q", v)
		}
		cfg.MaxUploadBytes = n
	}

	return cfg, nil
}

// NewLogger builds the process logger for cfg.
func (c *Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(c.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return b
	}
	return defaultValue
}
