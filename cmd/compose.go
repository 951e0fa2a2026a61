package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/deploymenttheory/go-shortcut-composer/internal/common/fsutil"
	"github.com/deploymenttheory/go-shortcut-composer/internal/generator"
	"github.com/deploymenttheory/go-shortcut-composer/internal/logger"
	"github.com/deploymenttheory/go-shortcut-composer/internal/shortcut"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	composeFile      string
	composeName      string
	composeOutputDir string
)

// rawAction is one caller-authored action in a compose file
type rawAction struct {
	Identifier  string                 `json:"identifier" yaml:"identifier"`
	Parameters  map[string]interface{} `json:"parameters" yaml:"parameters"`
	ChainID     string                 `json:"chain_id,omitempty" yaml:"chain_id"`
	OutputLabel string                 `json:"output_label,omitempty" yaml:"output_label"`
}

// rawWorkflow is the document-level shape of a compose file
type rawWorkflow struct {
	Name    string      `json:"name" yaml:"name"`
	Actions []rawAction `json:"actions" yaml:"actions"`
}

// composeCmd builds a shortcut from a raw action list instead of a template
var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Generate a shortcut file from a raw action list",
	Long: `Compose reads a JSON or YAML file containing an ordered list of actions:

  name: Hello
  actions:
    - identifier: is.workflow.actions.gettext
      parameters:
        WFTextActionText: Hello

and writes them to a shortcut file without template expansion.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workflow, err := loadComposeFile(composeFile)
		if err != nil {
			return err
		}

		actions, err := buildActions(workflow.Actions)
		if err != nil {
			return err
		}

		name := composeName
		if name == "" {
			name = workflow.Name
		}

		gen := generator.New(generatorConfig(name, composeOutputDir))
		result, err := gen.Generate(actions)
		if err != nil {
			return err
		}

		logger.LogInfo("Composed shortcut", map[string]interface{}{
			"file":    composeFile,
			"path":    result.Path,
			"actions": len(result.Document.Actions),
		})
		fmt.Printf("Generated %s (%d bytes, %d actions)\n", result.Path, result.Size, len(result.Document.Actions))

		recordHistory("", result)
		return nil
	},
}

func init() {
	composeCmd.Flags().StringVarP(&composeFile, "file", "f", "", "JSON or YAML file with the action list")
	composeCmd.Flags().StringVarP(&composeName, "name", "n", "", "display name, overriding the file's name field")
	composeCmd.Flags().StringVarP(&composeOutputDir, "output-dir", "o", "", "directory for the generated file (default from config)")
	composeCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(composeCmd)
}

// loadComposeFile decodes a compose file. JSON files are decoded directly so
// integer parameters keep their integer identity; everything else is decoded
// as YAML. Both decoders keep parameter keys byte-for-byte: the action
// parameter namespace is case-sensitive.
func loadComposeFile(path string) (*rawWorkflow, error) {
	if !fsutil.FileExists(path) {
		return nil, fmt.Errorf("compose file not found: %s", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return loadComposeJSON(path)
	}

	data, err := fsutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading compose file: %w", err)
	}

	workflow := &rawWorkflow{}
	if err := yaml.Unmarshal(data, workflow); err != nil {
		return nil, fmt.Errorf("error parsing compose file: %w", err)
	}
	return workflow, nil
}

func loadComposeJSON(path string) (*rawWorkflow, error) {
	data, err := fsutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading compose file: %w", err)
	}

	workflow := &rawWorkflow{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	// Keep integer parameters integral instead of widening them to float64
	decoder.UseNumber()
	if err := decoder.Decode(workflow); err != nil {
		return nil, fmt.Errorf("error parsing compose file: %w", err)
	}
	return workflow, nil
}

// buildActions converts raw compose entries into document actions
func buildActions(raw []rawAction) ([]*shortcut.Action, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("compose file contains no actions")
	}

	actions := make([]*shortcut.Action, 0, len(raw))
	for i, entry := range raw {
		if entry.Identifier == "" {
			return nil, fmt.Errorf("action %d: identifier is required", i)
		}
		action := shortcut.NewAction(entry.Identifier)
		action.ChainID = entry.ChainID
		action.OutputLabel = entry.OutputLabel
		for _, key := range sortedKeys(entry.Parameters) {
			value, err := shortcut.ValueFromAny(entry.Parameters[key])
			if err != nil {
				return nil, fmt.Errorf("action %d parameter %q: %w", i, key, err)
			}
			action.Parameters.Set(key, value)
		}
		actions = append(actions, action)
	}
	return actions, nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
