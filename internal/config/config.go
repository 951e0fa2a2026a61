package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/deploymenttheory/go-shortcut-composer/internal/common/fsutil"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name used for config files and directories
	AppName = "go-shortcut-composer"

	// EnvPrefix is the prefix for environment variables
	EnvPrefix = "SHORTCUT_COMPOSER"
)

// AppConfig holds the application configuration
type AppConfig struct {
	// Core settings
	Debug     bool   `mapstructure:"debug"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`

	// Output settings for generated shortcut files
	Output struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"output"`

	// Document metadata applied to every generated shortcut unless overridden
	Document struct {
		MinClientVersion int    `mapstructure:"min_client_version"`
		ClientVersion    int    `mapstructure:"client_version"`
		ClientRelease    string `mapstructure:"client_release"`
		IconGlyph        int64  `mapstructure:"icon_glyph"`
		IconColor        uint32 `mapstructure:"icon_color"`
	} `mapstructure:"document"`

	// History settings for local usage records
	History struct {
		File string `mapstructure:"file"`
	} `mapstructure:"history"`

	// Signing settings for the host `shortcuts sign` command
	Signing struct {
		Mode string `mapstructure:"mode"` // anyone or people-who-know-me
	} `mapstructure:"signing"`
}

// Global variables
var (
	// Global configuration instance
	Instance AppConfig

	// Status indicators
	ConfigLoaded bool
	ConfigFile   string

	// Viper instance
	v *viper.Viper

	// Ensure thread safety
	initOnce sync.Once
)

// Initialize sets up the configuration system
func Initialize(cfgFile string) error {
	var err error

	initOnce.Do(func() {
		// Create a new viper instance
		v = viper.New()

		// Set default values
		setDefaults(v)

		// Load configuration from file if specified
		if cfgFile != "" {
			v.SetConfigFile(cfgFile)
		} else {
			// Set config name and type
			v.SetConfigName(AppName)
			v.SetConfigType("yaml")

			// Add default search paths
			v.AddConfigPath(".")
			if configDir, dirErr := fsutil.GetConfigDir(AppName); dirErr == nil {
				v.AddConfigPath(configDir)
			}
		}

		// Set up environment variables
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		v.AutomaticEnv()

		// Read configuration file
		if readErr := v.ReadInConfig(); readErr != nil {
			if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
				// Only capture error if the config file was found but couldn't be read
				err = fmt.Errorf("error reading config file: %w", readErr)
			}
			// Config file not found, using defaults and environment variables
			ConfigLoaded = false
			ConfigFile = ""
		} else {
			ConfigLoaded = true
			ConfigFile = v.ConfigFileUsed()
		}

		// Unmarshal config into struct
		if unmarshalErr := v.Unmarshal(&Instance); unmarshalErr != nil {
			err = fmt.Errorf("error parsing config: %w", unmarshalErr)
			return
		}
	})

	return err
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	// Core settings
	v.SetDefault("debug", false)
	v.SetDefault("log_format", "human")

	// Set default log file based on OS
	logDir, err := fsutil.GetLogDir(AppName)
	if err == nil {
		v.SetDefault("log_file", filepath.Join(logDir, "composer.log"))
	} else {
		v.SetDefault("log_file", "logs/composer.log")
	}

	// Output defaults
	outputDir, err := fsutil.GetOutputDir(AppName)
	if err == nil {
		v.SetDefault("output.dir", outputDir)
	} else {
		v.SetDefault("output.dir", "output")
	}

	// Document metadata defaults; zero values defer to the shortcut package
	v.SetDefault("document.min_client_version", 0)
	v.SetDefault("document.client_version", 0)
	v.SetDefault("document.client_release", "")
	v.SetDefault("document.icon_glyph", 0)
	v.SetDefault("document.icon_color", 0)

	// History defaults
	configDir, err := fsutil.GetConfigDir(AppName)
	if err == nil {
		v.SetDefault("history.file", filepath.Join(configDir, "history.json"))
	} else {
		v.SetDefault("history.file", "history.json")
	}

	// Signing defaults
	v.SetDefault("signing.mode", "anyone")
}
