package template

import (
	"github.com/deploymenttheory/go-shortcut-composer/internal/shortcut"
	"github.com/google/uuid"
)

// Semantic output names the Shortcuts app assigns the involved actions
const (
	outputNameContentsOfURL   = "Contents of URL"
	outputNameDictionaryValue = "Dictionary Value"
)

func networkRequestTemplate() Definition {
	return Definition{
		Name:        "network-request",
		Version:     "1.0.0",
		Description: "Perform an HTTP request, optionally extract a value from the JSON response, and display the result",
		Params: []ParamDef{
			{
				Name:     "url",
				Label:    "URL",
				Type:     TypeURL,
				Required: true,
			},
			{
				Name:    "method",
				Label:   "HTTP Method",
				Type:    TypeChoice,
				Options: []string{"GET", "POST", "PUT", "DELETE"},
				Default: paramDefault(Choice("GET")),
			},
			{
				Name:        "auth_header",
				Label:       "Authorization Header",
				Type:        TypeText,
				Description: "Value for the Authorization header; empty means no header",
			},
			{
				Name:        "extract_path",
				Label:       "Extract Path",
				Type:        TypeText,
				Description: "Dictionary key to extract from the response; empty shows the raw response",
			},
		},
		Generate: generateNetworkRequest,
	}
}

func generateNetworkRequest(params map[string]ParamValue) ([]*shortcut.Action, error) {
	request := shortcut.NewAction(shortcut.ActionDownloadURL)
	request.ChainID = uuid.NewString()
	request.Parameters.Set("WFURL", shortcut.Text(params["url"].Text()))
	request.Parameters.Set("WFHTTPMethod", shortcut.Text(params["method"].Text()))

	if auth := params["auth_header"].Text(); auth != "" {
		headers := shortcut.NewParams()
		headers.Set("Authorization", shortcut.Text(auth))
		request.Parameters.Set("WFHTTPHeaders", shortcut.Map(headers))
	}

	actions := []*shortcut.Action{request}
	lastID, lastName := request.ChainID, outputNameContentsOfURL

	if path := params["extract_path"].Text(); path != "" {
		extract := shortcut.NewAction(shortcut.ActionGetDictionaryValue)
		extract.ChainID = uuid.NewString()
		extract.Parameters.Set("WFInput", shortcut.OutputReference(lastID, lastName))
		extract.Parameters.Set("WFDictionaryKey", shortcut.Text(path))
		actions = append(actions, extract)
		lastID, lastName = extract.ChainID, outputNameDictionaryValue
	}

	display := shortcut.NewAction(shortcut.ActionShowResult)
	display.OutputLabel = lastName
	display.Parameters.Set("Text", shortcut.OutputReference(lastID, lastName))
	actions = append(actions, display)

	return actions, nil
}
