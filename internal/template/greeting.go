package template

import (
	"fmt"

	"github.com/deploymenttheory/go-shortcut-composer/internal/shortcut"
	"github.com/google/uuid"
)

func greetingTemplate() Definition {
	return Definition{
		Name:        "greeting",
		Version:     "1.0.0",
		Description: "Display a greeting message",
		Params: []ParamDef{
			{
				Name:    "name",
				Label:   "Name",
				Type:    TypeText,
				Default: paramDefault(Text("World")),
			},
		},
		Generate: generateGreeting,
	}
}

func generateGreeting(params map[string]ParamValue) ([]*shortcut.Action, error) {
	text := shortcut.NewAction(shortcut.ActionGetText)
	text.ChainID = uuid.NewString()
	text.Parameters.Set("WFTextActionText",
		shortcut.Text(fmt.Sprintf("Hello, %s!", params["name"].Text())))

	display := shortcut.NewAction(shortcut.ActionShowResult)
	display.OutputLabel = outputNameText
	display.Parameters.Set("Text", shortcut.OutputReference(text.ChainID, outputNameText))

	return []*shortcut.Action{text, display}, nil
}
