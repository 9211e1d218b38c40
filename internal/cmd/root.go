// Package cmd defines the lightbnb command line: serve, seed and version.
package cmd

import (
	"fmt"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lightbnb",
	Short: "LightBnB property rental API",
	Long: `LightBnB serves the property rental API backed by PostgreSQL.

Configuration comes from LIGHTBNB_ environment variables (or a .env file).
A double underscore nests keys, for example:

  LIGHTBNB_DATABASE__HOST=localhost
  LIGHTBNB_OBSERVABILITY__LOGGING__LEVEL=debug

Example usage:
  lightbnb seed
  lightbnb serve`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// bootstrap loads the config and builds the application logger.
func bootstrap() (*config.Config, *logger.LoggerService, *zerolog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return cfg, loggerService, &log, nil
}
