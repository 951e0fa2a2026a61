package cmd

import (
	"github.com/deploymenttheory/go-shortcut-composer/internal/config"
	"github.com/deploymenttheory/go-shortcut-composer/internal/logger"
	"github.com/deploymenttheory/go-shortcut-composer/internal/template"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// engine holds the template registry shared by all commands
var engine = newEngine()

// rootCmd represents the base CLI command
var rootCmd = &cobra.Command{
	Use:   "go-shortcut-composer",
	Short: "A CLI tool for generating Shortcuts workflow files",
	Long: `go-shortcut-composer generates Apple Shortcuts workflow files from
reusable parameterized templates or from raw action lists, and hands the
results to the Shortcuts app for signing, installation and execution.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// CLI flags can override config settings
		debug, _ := cmd.Flags().GetBool("debug")
		logFormat, _ := cmd.Flags().GetString("log-format")

		if cmd.Flags().Changed("debug") {
			config.Instance.Debug = debug
		}

		if cmd.Flags().Changed("log-format") {
			config.Instance.LogFormat = logFormat
		}

		// If config file was explicitly specified via flag, reinitialize
		if cmd.Flags().Changed("config") && cfgFile != "" {
			// Only log an error, don't exit, as the config may still be usable
			if err := config.Initialize(cfgFile); err != nil {
				logger.LogError("Error loading config file", err, map[string]interface{}{
					"config_file": cfgFile,
				})
			}
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.LogError("Command execution failed", err, nil)
		// Let Cobra handle the exit
	}
}

func newEngine() *template.Engine {
	e := template.NewEngine()
	template.RegisterBuiltins(e)
	return e
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is search in standard locations)")

	// Debug flag
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	// Log format flag
	rootCmd.PersistentFlags().String("log-format", "human", "Log format: json or human")

	// Bind flags to viper settings
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(versionCmd)
}
