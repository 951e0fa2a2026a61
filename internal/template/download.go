package template

import (
	"github.com/deploymenttheory/go-shortcut-composer/internal/shortcut"
	"github.com/google/uuid"
)

func fileDownloadTemplate() Definition {
	return Definition{
		Name:        "file-download",
		Version:     "1.0.0",
		Description: "Download a file from a URL and save it, optionally confirming with a notification",
		Params: []ParamDef{
			{
				Name:     "url",
				Label:    "URL",
				Type:     TypeURL,
				Required: true,
			},
			{
				Name:        "filename",
				Label:       "Destination Filename",
				Type:        TypeText,
				Description: "Destination path for the file; empty asks the user where to save",
			},
			{
				Name:    "show_confirmation",
				Label:   "Show Confirmation",
				Type:    TypeBoolean,
				Default: paramDefault(Boolean(true)),
			},
		},
		Generate: generateFileDownload,
	}
}

func generateFileDownload(params map[string]ParamValue) ([]*shortcut.Action, error) {
	request := shortcut.NewAction(shortcut.ActionDownloadURL)
	request.ChainID = uuid.NewString()
	request.Parameters.Set("WFURL", shortcut.Text(params["url"].Text()))
	request.Parameters.Set("WFHTTPMethod", shortcut.Text("GET"))

	save := shortcut.NewAction(shortcut.ActionSaveFile)
	save.Parameters.Set("WFInput", shortcut.OutputReference(request.ChainID, outputNameContentsOfURL))
	if filename := params["filename"].Text(); filename != "" {
		save.Parameters.Set("WFFileDestinationPath", shortcut.Text(filename))
		save.Parameters.Set("WFAskWhereToSave", shortcut.Boolean(false))
	} else {
		save.Parameters.Set("WFAskWhereToSave", shortcut.Boolean(true))
	}

	actions := []*shortcut.Action{request, save}

	if params["show_confirmation"].Bool() {
		notify := shortcut.NewAction(shortcut.ActionShowNotification)
		notify.Parameters.Set("WFNotificationActionTitle", shortcut.Text("Download Complete"))
		notify.Parameters.Set("WFNotificationActionBody", shortcut.Text(params["url"].Text()))
		actions = append(actions, notify)
	}

	return actions, nil
}
