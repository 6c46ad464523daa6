package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Application environment (development, production, ...)
	Environment string `json:"environment"`

	// Logging configuration
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`

	// Ordering configuration
	Store      string `json:"store"`
	MenuFormat string `json:"menu_format"`
	// Echo lifecycle steps as plain text lines on stdout
	PrintSteps bool `json:"print_steps"`
}

// String returns a string representation of Config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, LogLevel: %s, LogFormat: %s, Store: %s, MenuFormat: %s, PrintSteps: %t}",
		c.Environment, c.LogLevel, c.LogFormat, c.Store, c.MenuFormat, c.PrintSteps)
}

// Level parses LogLevel into a logrus level
func (c *Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}

// Formatter returns the logrus formatter selected by LogFormat
func (c *Config) Formatter() logrus.Formatter {
	if c.LogFormat == "text" {
		return &logrus.TextFormatter{DisableTimestamp: true}
	}
	return &logrus.JSONFormatter{}
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It validates the log level and the enumerated formats
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")

	config := &Config{
		Environment: GetEnvWithDefault("APP_ENV", "development"),
		LogLevel:    strings.ToLower(GetEnvWithDefault("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(GetEnvWithDefault("LOG_FORMAT", "text")),
		Store:       strings.ToLower(GetEnvWithDefault("PIZZA_STORE", "ny")),
		MenuFormat:  strings.ToLower(GetEnvWithDefault("MENU_FORMAT", "text")),
		PrintSteps:  GetEnvAsType("PRINT_STEPS", true),
	}

	if _, err := config.Level(); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if config.LogFormat != "json" && config.LogFormat != "text" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be json or text", config.LogFormat)
	}
	if config.MenuFormat != "yaml" && config.MenuFormat != "text" {
		return nil, fmt.Errorf("invalid MENU_FORMAT %q: must be yaml or text", config.MenuFormat)
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}

// SetOutputLevel sets the level of the config package logger
func SetOutputLevel(level logrus.Level) {
	log.SetLevel(level)
}
