package main

import (
	"fmt"
	"os"

	"github.com/deploymenttheory/go-shortcut-composer/cmd"
	"github.com/deploymenttheory/go-shortcut-composer/internal/config"
	"github.com/deploymenttheory/go-shortcut-composer/internal/logger"
)

func main() {
	// Get app configuration file from environment if specified
	configFile := os.Getenv("SHORTCUT_COMPOSER_CONFIG")

	// 1. Initialize application configuration
	if err := config.Initialize(configFile); err != nil {
		// For app configuration errors, we print to stderr and exit since we can't continue
		fmt.Fprintf(os.Stderr, "Error initializing configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logging based on application configuration
	if err := initLogging(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	// 3. Run the CLI
	cmd.Execute()

	// Ensure logs are flushed before exit
	_ = logger.Sync()
}

func initLogging() error {
	return logger.InitLogger(logger.LoggerConfig{
		Debug:     config.Instance.Debug,
		LogFormat: config.Instance.LogFormat,
		LogFile:   config.Instance.LogFile,
	})
}
