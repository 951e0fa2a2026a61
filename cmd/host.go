package cmd

import (
	"fmt"

	"github.com/deploymenttheory/go-shortcut-composer/internal/config"
	"github.com/deploymenttheory/go-shortcut-composer/internal/host"
	"github.com/spf13/cobra"
)

var (
	runInput          string
	signOutput        string
	importDeleteAfter bool
)

// listCmd lists the shortcuts installed in the Shortcuts app
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the shortcuts installed on this machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := host.NewCLI().List(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

// runCmd executes an installed shortcut by name
var runCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Run an installed shortcut",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, err := host.NewCLI().Run(cmd.Context(), args[0], runInput)
		if err != nil {
			return err
		}
		if output != "" {
			fmt.Print(output)
		}
		return nil
	},
}

// signCmd signs an existing shortcut file for sharing
var signCmd = &cobra.Command{
	Use:   "sign <file>",
	Short: "Sign a shortcut file with `shortcuts sign`",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		signer := host.NewSigner(host.SignMode(config.Instance.Signing.Mode))
		if err := signer.Sign(cmd.Context(), args[0], signOutput); err != nil {
			return err
		}
		fmt.Printf("Signed %s\n", signOutput)
		return nil
	},
}

// importCmd hands a shortcut file to the Shortcuts app for installation
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Open a shortcut file in the Shortcuts app",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := host.NewImporter().Import(cmd.Context(), args[0], importDeleteAfter)
		if err != nil {
			return err
		}
		fmt.Printf("Opened %s in Shortcuts\n", result.Path)
		if importDeleteAfter && !result.Removed {
			fmt.Println("Warning: temporary file could not be removed")
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "input text passed to the shortcut")

	signCmd.Flags().StringVarP(&signOutput, "output", "o", "", "path for the signed file")
	signCmd.MarkFlagRequired("output")

	importCmd.Flags().BoolVar(&importDeleteAfter, "delete-after", false, "delete the file after hand-off")

	rootCmd.AddCommand(listCmd, runCmd, signCmd, importCmd)
}
