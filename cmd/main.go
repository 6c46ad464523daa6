package main

import (
	"fmt"
	"os"

	"github.com/franciscosanchezn/pizza-factory/internal/config"
	"github.com/franciscosanchezn/pizza-factory/internal/models"
	"github.com/franciscosanchezn/pizza-factory/internal/pizzeria"
	"github.com/franciscosanchezn/pizza-factory/internal/services"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var configuration *config.Config

func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration quietly, the logger is not configured yet
	config.SetOutputLevel(log.WarnLevel)
	configuration = loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	if err := newRootCmd().Execute(); err != nil {
		log.WithField("code", models.ErrorCode(err)).WithError(err).Error("Command failed")
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a debug message and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using system environment variables")
	}
}

// setUpLogger applies the configured level and format to the global logger
// and to the logger used by the pizza stores
func setUpLogger(conf *config.Config) {
	level, err := conf.Level()
	checkPanicErr(err)

	for _, l := range []*log.Logger{log.StandardLogger(), services.Logger()} {
		l.SetFormatter(conf.Formatter())
		l.SetLevel(level)
		l.SetOutput(os.Stderr)
	}
	config.SetOutputLevel(level)
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	checkPanicErr(validateConfig(conf))
	return conf
}

// validateConfig checks the settings that depend on the store registry
func validateConfig(conf *config.Config) error {
	if _, err := pizzeria.Lookup(conf.Store); err != nil {
		return fmt.Errorf("invalid PIZZA_STORE: %w", err)
	}
	return nil
}
