package cmd

import (
	"fmt"
	"strconv"

	"github.com/deploymenttheory/go-shortcut-composer/internal/template"
	"github.com/spf13/cobra"
)

// templatesCmd lists the registered template catalog
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available shortcut templates",
	Run: func(cmd *cobra.Command, args []string) {
		for _, info := range engine.List() {
			fmt.Printf("%s (v%s): %s\n", info.Name, info.Version, info.Description)
			for _, param := range info.Params {
				line := fmt.Sprintf("  %-18s %s", param.Name, param.Type)
				if param.Required {
					line += " (required)"
				}
				if param.Default != nil {
					line += fmt.Sprintf(" (default %q)", defaultString(*param.Default))
				}
				if len(param.Options) > 0 {
					line += fmt.Sprintf(" options=%v", param.Options)
				}
				fmt.Println(line)
			}
		}
	},
}

func defaultString(v template.ParamValue) string {
	switch v.Kind() {
	case template.KindBoolean:
		return strconv.FormatBool(v.Bool())
	case template.KindNumber:
		return strconv.FormatFloat(v.Number(), 'f', -1, 64)
	default:
		return v.Text()
	}
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
