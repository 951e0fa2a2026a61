package template

import (
	"encoding/json"
	"fmt"

	"github.com/deploymenttheory/go-shortcut-composer/internal/shortcut"
	"github.com/google/uuid"
)

// Semantic output names of the text actions
const (
	outputNameText     = "Text"
	outputNameUpdated  = "Updated Text"
	outputNameSplit    = "Split Text"
	outputNameCombined = "Combined Text"
)

// textOperation is one decoded descriptor from the operations JSON list
type textOperation struct {
	Type          string `json:"type"`
	Find          string `json:"find"`
	Replace       string `json:"replace"`
	CaseSensitive *bool  `json:"case_sensitive"`
	Regex         bool   `json:"regex"`
	Separator     string `json:"separator"`
}

// Case styles the change-case action understands, keyed by descriptor type
var caseStyles = map[string]string{
	"uppercase":       "UPPERCASE",
	"lowercase":       "lowercase",
	"capitalize":      "Capitalize Every Word",
	"titlecase":       "Capitalize with Title Case",
	"sentencecase":    "Capitalize with sentence case",
	"alternatingcase": "cApItAlIzE wItH aLtErNaTiNg CaSe",
}

func textPipelineTemplate() Definition {
	return Definition{
		Name:        "text-pipeline",
		Version:     "1.0.0",
		Description: "Run input text through an ordered list of transformations and display the result",
		Params: []ParamDef{
			{
				Name:     "input_text",
				Label:    "Input Text",
				Type:     TypeText,
				Required: true,
			},
			{
				Name:        "operations",
				Label:       "Operations",
				Type:        TypeText,
				Required:    true,
				Description: `JSON list of transformations, e.g. [{"type":"uppercase"},{"type":"replace","find":" ","replace":"_"}]`,
			},
			{
				Name:    "show_result",
				Label:   "Show Result",
				Type:    TypeBoolean,
				Default: paramDefault(Boolean(true)),
			},
		},
		Generate: generateTextPipeline,
	}
}

func generateTextPipeline(params map[string]ParamValue) ([]*shortcut.Action, error) {
	var operations []textOperation
	if err := json.Unmarshal([]byte(params["operations"].Text()), &operations); err != nil {
		return nil, &GenerationError{
			Template: "text-pipeline",
			Reason:   fmt.Sprintf("invalid operations JSON: %s", err.Error()),
		}
	}
	if len(operations) == 0 {
		return nil, &GenerationError{
			Template: "text-pipeline",
			Reason:   "operations list is empty",
		}
	}

	seed := shortcut.NewAction(shortcut.ActionGetText)
	seed.ChainID = uuid.NewString()
	seed.Parameters.Set("WFTextActionText", shortcut.Text(params["input_text"].Text()))

	actions := []*shortcut.Action{seed}
	prevID, prevName := seed.ChainID, outputNameText

	// Every transformation reads the previous step's output by reference,
	// never by re-embedding the text value
	for i, op := range operations {
		action, outputName, err := buildTextOperation(op, prevID, prevName)
		if err != nil {
			return nil, &GenerationError{
				Template: "text-pipeline",
				Reason:   fmt.Sprintf("operation %d: %s", i, err.Error()),
			}
		}
		action.ChainID = uuid.NewString()
		actions = append(actions, action)
		prevID, prevName = action.ChainID, outputName
	}

	if params["show_result"].Bool() {
		display := shortcut.NewAction(shortcut.ActionShowResult)
		display.OutputLabel = prevName
		display.Parameters.Set("Text", shortcut.OutputReference(prevID, prevName))
		actions = append(actions, display)
	}

	return actions, nil
}

func buildTextOperation(op textOperation, prevID, prevName string) (*shortcut.Action, string, error) {
	input := shortcut.OutputReference(prevID, prevName)

	if style, ok := caseStyles[op.Type]; ok {
		action := shortcut.NewAction(shortcut.ActionChangeCase)
		action.Parameters.Set("WFCaseType", shortcut.Text(style))
		action.Parameters.Set("WFInput", input)
		return action, outputNameUpdated, nil
	}

	switch op.Type {
	case "replace":
		if op.Find == "" {
			return nil, "", fmt.Errorf("replace requires a find field")
		}
		caseSensitive := true
		if op.CaseSensitive != nil {
			caseSensitive = *op.CaseSensitive
		}
		action := shortcut.NewAction(shortcut.ActionReplaceText)
		action.Parameters.Set("WFReplaceTextFind", shortcut.Text(op.Find))
		action.Parameters.Set("WFReplaceTextReplace", shortcut.Text(op.Replace))
		action.Parameters.Set("WFReplaceTextCaseSensitive", shortcut.Boolean(caseSensitive))
		action.Parameters.Set("WFReplaceTextRegularExpression", shortcut.Boolean(op.Regex))
		action.Parameters.Set("WFInput", input)
		return action, outputNameUpdated, nil

	case "split":
		action := shortcut.NewAction(shortcut.ActionSplitText)
		setSeparator(action, op.Separator)
		action.Parameters.Set("Text", input)
		return action, outputNameSplit, nil

	case "combine":
		action := shortcut.NewAction(shortcut.ActionCombineText)
		setSeparator(action, op.Separator)
		action.Parameters.Set("Text", input)
		return action, outputNameCombined, nil

	default:
		return nil, "", fmt.Errorf("unsupported text operation type %q", op.Type)
	}
}

// setSeparator maps a separator descriptor onto the split/combine parameter
// pair. Recognized keywords select a built-in separator; anything else is a
// literal custom separator string.
func setSeparator(action *shortcut.Action, separator string) {
	switch separator {
	case "", "newlines":
		action.Parameters.Set("WFTextSeparator", shortcut.Text("New Lines"))
	case "spaces":
		action.Parameters.Set("WFTextSeparator", shortcut.Text("Spaces"))
	case "every-character":
		action.Parameters.Set("WFTextSeparator", shortcut.Text("Every Character"))
	default:
		action.Parameters.Set("WFTextSeparator", shortcut.Text("Custom"))
		action.Parameters.Set("WFTextCustomSeparator", shortcut.Text(separator))
	}
}
