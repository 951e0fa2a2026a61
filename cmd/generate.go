package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/deploymenttheory/go-shortcut-composer/internal/config"
	"github.com/deploymenttheory/go-shortcut-composer/internal/generator"
	"github.com/deploymenttheory/go-shortcut-composer/internal/history"
	"github.com/deploymenttheory/go-shortcut-composer/internal/host"
	"github.com/deploymenttheory/go-shortcut-composer/internal/logger"
	"github.com/deploymenttheory/go-shortcut-composer/internal/shortcut"
	"github.com/deploymenttheory/go-shortcut-composer/internal/template"
	"github.com/spf13/cobra"
)

var (
	generateTemplate   string
	generateName       string
	generateOutputDir  string
	generateParams     []string
	generateParamsJSON string
	generateSign       bool
	generateImport     bool
)

// generateCmd expands a template into a shortcut file
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a shortcut file from a template",
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := collectParams()
		if err != nil {
			return err
		}

		actions, err := engine.Generate(generateTemplate, params)
		if err != nil {
			return err
		}

		gen := generator.New(generatorConfig(generateName, generateOutputDir))
		result, err := gen.Generate(actions)
		if err != nil {
			return err
		}

		logger.LogInfo("Generated shortcut", map[string]interface{}{
			"template": generateTemplate,
			"path":     result.Path,
			"size":     result.Size,
			"actions":  len(result.Document.Actions),
		})
		fmt.Printf("Generated %s (%d bytes, %d actions)\n", result.Path, result.Size, len(result.Document.Actions))

		recordHistory(generateTemplate, result)
		return postProcess(cmd.Context(), result.Path)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "", "template name (see `templates`)")
	generateCmd.Flags().StringVarP(&generateName, "name", "n", "", "display name for the generated shortcut")
	generateCmd.Flags().StringVarP(&generateOutputDir, "output-dir", "o", "", "directory for the generated file (default from config)")
	generateCmd.Flags().StringArrayVarP(&generateParams, "param", "p", nil, "template parameter as key=value (repeatable)")
	generateCmd.Flags().StringVar(&generateParamsJSON, "params", "", "template parameters as a JSON object")
	generateCmd.Flags().BoolVar(&generateSign, "sign", false, "sign the generated file with `shortcuts sign`")
	generateCmd.Flags().BoolVar(&generateImport, "import", false, "open the generated file in the Shortcuts app")
	generateCmd.MarkFlagRequired("template")

	rootCmd.AddCommand(generateCmd)
}

// collectParams merges --params JSON with repeated --param key=value flags.
// Flag values are supplied as text; the schema's coercion rules widen them.
func collectParams() (map[string]template.ParamValue, error) {
	params := make(map[string]template.ParamValue)

	if generateParamsJSON != "" {
		var raw map[string]interface{}
		if err := json.Unmarshal([]byte(generateParamsJSON), &raw); err != nil {
			return nil, fmt.Errorf("invalid --params JSON: %w", err)
		}
		for k, v := range raw {
			value, err := template.ParamFromAny(v)
			if err != nil {
				return nil, fmt.Errorf("parameter %q: %w", k, err)
			}
			params[k] = value
		}
	}

	for _, pair := range generateParams {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --param %q, expected key=value", pair)
		}
		params[key] = template.Text(value)
	}

	return params, nil
}

// generatorConfig builds a generator configuration from defaults and flags
func generatorConfig(name, outputDir string) generator.Config {
	if outputDir == "" {
		outputDir = config.Instance.Output.Dir
	}
	return generator.Config{
		OutputDir: outputDir,
		Document: shortcut.DocumentConfig{
			Name: name,
			Icon: shortcut.Icon{
				GlyphNumber: config.Instance.Document.IconGlyph,
				StartColor:  config.Instance.Document.IconColor,
			},
			MinimumClientVersion: config.Instance.Document.MinClientVersion,
			ClientVersion:        config.Instance.Document.ClientVersion,
			ClientRelease:        config.Instance.Document.ClientRelease,
		},
	}
}

// recordHistory appends a usage record; history is best-effort and failures
// are logged, never surfaced
func recordHistory(templateName string, result *generator.Result) {
	store := history.NewStore(config.Instance.History.File)
	err := store.Append(history.Entry{
		Template:    templateName,
		Name:        result.Document.Name,
		Path:        result.Path,
		GeneratedAt: time.Now(),
	})
	if err != nil {
		logger.LogWarn("Failed to record generation history", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// postProcess optionally signs and imports a generated file
func postProcess(ctx context.Context, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	signedPath := path
	if generateSign {
		signer := host.NewSigner(host.SignMode(config.Instance.Signing.Mode))
		signedPath = strings.TrimSuffix(path, shortcut.FileExtension) + "-signed" + shortcut.FileExtension
		if err := signer.Sign(ctx, path, signedPath); err != nil {
			return err
		}
		fmt.Printf("Signed %s\n", signedPath)
	}

	if generateImport {
		importer := host.NewImporter()
		// Delete the temporary signed copy after hand-off; keep the original
		result, err := importer.Import(ctx, signedPath, generateSign)
		if err != nil {
			return err
		}
		fmt.Printf("Opened %s in Shortcuts\n", result.Path)
	}

	return nil
}
